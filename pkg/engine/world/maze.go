package world

import (
	"fmt"
	"math"
)

// Maze is a rectangular grid of walled cells in pixel space.
// Cells are stored row-major (Cells[y][x]). A maze is replaced wholesale
// when a new one is generated; nothing mutates it after generation.
type Maze struct {
	Width    int     // cells across
	Height   int     // cells down
	CellSize float64 // pixels per cell
	Cells    [][]Cell

	StartPos Vector2 // pixel centre of the start cell
	EndPos   Vector2 // pixel centre of the goal cell
}

// NewMaze creates a maze with every wall standing.
// Dimensions below 1 are raised to 1.
func NewMaze(width, height int, cellSize float64) *Maze {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	m := &Maze{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		Cells:    make([][]Cell, height),
	}

	for y := 0; y < height; y++ {
		m.Cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			m.Cells[y][x] = NewCell(x, y)
		}
	}

	m.StartPos = m.CellCenter(0, 0)
	m.EndPos = m.CellCenter(width-1, height-1)

	return m
}

// InBounds checks if an x/y position is within grid bounds
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// CellAt returns the cell at the given position, or nil if out of bounds
func (m *Maze) CellAt(x, y int) *Cell {
	if !m.InBounds(x, y) {
		return nil
	}
	return &m.Cells[y][x]
}

// Neighbor returns the cell adjacent to (x,y) in the given direction, or nil at the edge
func (m *Maze) Neighbor(x, y int, dir Direction) *Cell {
	if !dir.IsValid() {
		return nil
	}
	dx, dy := dir.Delta()
	return m.CellAt(x+dx, y+dy)
}

// Carve removes the wall between (x,y) and its neighbour in dir, on both sides.
// Returns false if there is no neighbour in that direction.
func (m *Maze) Carve(x, y int, dir Direction) bool {
	current := m.CellAt(x, y)
	neighbor := m.Neighbor(x, y, dir)
	if current == nil || neighbor == nil {
		return false
	}
	current.Walls[dir] = false
	neighbor.Walls[dir.Opposite()] = false
	return true
}

// Passable returns true if a player could step from (x,y) towards dir without crossing a wall
func (m *Maze) Passable(x, y int, dir Direction) bool {
	cell := m.CellAt(x, y)
	if cell == nil || m.Neighbor(x, y, dir) == nil {
		return false
	}
	return !cell.HasWall(dir)
}

// PassableNeighbors returns the cells reachable in one step from (x,y)
func (m *Maze) PassableNeighbors(x, y int) []*Cell {
	var out []*Cell
	for _, dir := range AllDirections() {
		if m.Passable(x, y, dir) {
			out = append(out, m.Neighbor(x, y, dir))
		}
	}
	return out
}

// CellCenter returns the pixel centre of the cell at (x,y)
func (m *Maze) CellCenter(x, y int) Vector2 {
	half := m.CellSize / 2
	return Vector2{
		X: float64(x)*m.CellSize + half,
		Y: float64(y)*m.CellSize + half,
	}
}

// CellOf returns the grid coordinates containing the pixel position p.
// The result may be out of bounds.
func (m *Maze) CellOf(p Vector2) (x, y int) {
	if m.CellSize <= 0 {
		return 0, 0
	}
	return int(math.Floor(p.X / m.CellSize)), int(math.Floor(p.Y / m.CellSize))
}

// PixelWidth returns the width of the playfield in pixels
func (m *Maze) PixelWidth() float64 {
	return float64(m.Width) * m.CellSize
}

// PixelHeight returns the height of the playfield in pixels
func (m *Maze) PixelHeight() float64 {
	return float64(m.Height) * m.CellSize
}

// Center returns the fallback placement point used when no valid cell is found:
// the centre of the cell at (Width/2, Height/2).
func (m *Maze) Center() Vector2 {
	half := m.CellSize / 2
	return Vector2{
		X: float64(m.Width)/2*m.CellSize + half,
		Y: float64(m.Height)/2*m.CellSize + half,
	}
}

// ClampToBounds keeps p inside the playfield rectangle
func (m *Maze) ClampToBounds(p Vector2) Vector2 {
	return p.Clamp(0, 0, m.PixelWidth(), m.PixelHeight())
}

// ForEachCell iterates over all cells in row-major order
func (m *Maze) ForEachCell(fn func(cell *Cell)) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			fn(&m.Cells[y][x])
		}
	}
}

// RemovedWallPairs counts interior walls that have been carved away.
// Each shared edge is counted once (from its east/south side).
func (m *Maze) RemovedWallPairs() int {
	count := 0
	m.ForEachCell(func(cell *Cell) {
		if m.Passable(cell.X, cell.Y, East) {
			count++
		}
		if m.Passable(cell.X, cell.Y, South) {
			count++
		}
	})
	return count
}

// Validate checks the maze for common issues and returns an error description or empty string if valid
func (m *Maze) Validate() string {
	if m.Width <= 0 || m.Height <= 0 {
		return "Maze has invalid dimensions"
	}

	if len(m.Cells) != m.Height {
		return "Maze row count does not match height"
	}

	for y := 0; y < m.Height; y++ {
		if len(m.Cells[y]) != m.Width {
			return fmt.Sprintf("Maze row %d has %d cells, want %d", y, len(m.Cells[y]), m.Width)
		}
		for x := 0; x < m.Width; x++ {
			cell := &m.Cells[y][x]
			if cell.X != x || cell.Y != y {
				return fmt.Sprintf("Cell at (%d,%d) reports position (%d,%d)", x, y, cell.X, cell.Y)
			}
			for _, dir := range AllDirections() {
				neighbor := m.Neighbor(x, y, dir)
				if neighbor == nil {
					if !cell.HasWall(dir) {
						return fmt.Sprintf("Cell (%d,%d) is open to the %s edge of the maze", x, y, dir)
					}
					continue
				}
				if cell.HasWall(dir) != neighbor.HasWall(dir.Opposite()) {
					return fmt.Sprintf("Wall between (%d,%d) and (%d,%d) is one-sided", x, y, neighbor.X, neighbor.Y)
				}
			}
		}
	}

	return ""
}
