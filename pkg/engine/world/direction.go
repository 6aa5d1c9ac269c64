package world

// Direction is one of the four cardinal directions. It doubles as the index
// into a cell's Walls array.
type Direction int

// North is the top of the screen (negative Y); the rest follow clockwise.
const (
	North Direction = iota
	East
	South
	West
)

var (
	directionNames  = [...]string{"North", "East", "South", "West"}
	directionDeltas = [...][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// AllDirections returns the directions in the order neighbours are scanned
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction pointing back; invalid values are returned unchanged
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the grid step (dx, dy) one cell in this direction
func (d Direction) Delta() (dx, dy int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// DirectionBetween returns the direction leading from (x0,y0) to the adjacent cell (x1,y1).
// ok is false when the cells are not orthogonal neighbours.
func DirectionBetween(x0, y0, x1, y1 int) (dir Direction, ok bool) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		if x0+dx == x1 && y0+dy == y1 {
			return d, true
		}
	}
	return North, false
}
