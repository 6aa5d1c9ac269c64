package generator

import (
	"math/rand"
	"time"

	"github.com/zyedidia/generic/stack"

	"darkmaze/pkg/engine/world"
)

// Backtracker carves a perfect maze with randomized depth-first backtracking.
// Every cell is reachable from every other cell by exactly one path.
type Backtracker struct {
	rng *rand.Rand
}

// NewBacktracker creates a generator drawing from rng.
// A nil rng is replaced with one seeded from the current time.
func NewBacktracker(rng *rand.Rand) *Backtracker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Backtracker{rng: rng}
}

// Name returns the generator's name
func (b *Backtracker) Name() string {
	return "Backtracker"
}

// frame is one level of the depth-first walk: a cell and the shuffled
// neighbour list it is working through.
type frame struct {
	x, y      int
	neighbors []world.Direction
	next      int
}

// Generate builds a width×height maze starting from cell (0,0).
// Non-positive dimensions are clamped to 1.
func (b *Backtracker) Generate(width, height int, cellSize float64) *world.Maze {
	m := world.NewMaze(width, height, cellSize)

	frames := stack.New[*frame]()
	frames.Push(b.enter(m, 0, 0))

	for frames.Size() > 0 {
		top := frames.Peek()
		if top.next >= len(top.neighbors) {
			frames.Pop()
			continue
		}

		dir := top.neighbors[top.next]
		top.next++

		dx, dy := dir.Delta()
		nx, ny := top.x+dx, top.y+dy
		// Neighbours were listed on entry; a deeper branch may have taken this one since
		if m.CellAt(nx, ny).Visited {
			continue
		}
		m.Carve(top.x, top.y, dir)
		frames.Push(b.enter(m, nx, ny))
	}

	return m
}

// enter marks the cell visited and returns its frame with unvisited neighbours shuffled.
func (b *Backtracker) enter(m *world.Maze, x, y int) *frame {
	m.CellAt(x, y).Visited = true

	var dirs []world.Direction
	for _, dir := range world.AllDirections() {
		if n := m.Neighbor(x, y, dir); n != nil && !n.Visited {
			dirs = append(dirs, dir)
		}
	}
	b.shuffle(dirs)

	return &frame{x: x, y: y, neighbors: dirs}
}

// shuffle is an unbiased Fisher-Yates shuffle
func (b *Backtracker) shuffle(dirs []world.Direction) {
	for i := len(dirs) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}
