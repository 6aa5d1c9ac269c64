// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single cell of a walled grid maze.
// A cell belongs to exactly one Maze and is only mutated while that maze is generated.
type Cell struct {
	// Grid position
	X int
	Y int

	// Walls indexed by Direction (North = top, East = right, South = bottom, West = left)
	Walls [4]bool

	// Generation-time visited flag
	Visited bool
}

// NewCell creates a cell at the given position with all four walls standing
func NewCell(x, y int) Cell {
	return Cell{
		X:     x,
		Y:     y,
		Walls: [4]bool{true, true, true, true},
	}
}

// HasWall returns true if the wall on the given side is standing
func (c *Cell) HasWall(dir Direction) bool {
	if c == nil || !dir.IsValid() {
		return true
	}
	return c.Walls[dir]
}

// Top reports the top wall
func (c *Cell) Top() bool { return c.HasWall(North) }

// Right reports the right wall
func (c *Cell) Right() bool { return c.HasWall(East) }

// Bottom reports the bottom wall
func (c *Cell) Bottom() bool { return c.HasWall(South) }

// Left reports the left wall
func (c *Cell) Left() bool { return c.HasWall(West) }

// WallCount returns how many of the four walls are standing
func (c *Cell) WallCount() int {
	n := 0
	for _, w := range c.Walls {
		if w {
			n++
		}
	}
	return n
}

// IsDeadEnd returns true if exactly one side of the cell is open
func (c *Cell) IsDeadEnd() bool {
	return c.WallCount() == 3
}
