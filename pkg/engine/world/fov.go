package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// CellsInRadius returns every cell whose centre lies within radius pixels of center.
// Walls are ignored; cells are returned in row-major order.
func CellsInRadius(m *Maze, center Vector2, radius float64) []*Cell {
	if m == nil || radius <= 0 {
		return nil
	}

	var result []*Cell
	m.ForEachCell(func(cell *Cell) {
		if m.CellCenter(cell.X, cell.Y).Dist(center) <= radius {
			result = append(result, cell)
		}
	})
	return result
}

// CalculateFOV returns the cells visible from center within radius when walls block sight.
// A cell is visible if it can be reached from the centre's cell through open walls
// without leaving the radius. The centre's own cell is always visible.
func CalculateFOV(m *Maze, center Vector2, radius float64) []*Cell {
	if m == nil {
		return nil
	}
	cx, cy := m.CellOf(center)
	start := m.CellAt(cx, cy)
	if start == nil {
		return nil
	}

	seen := mapset.New[*Cell]()
	seen.Put(start)
	result := []*Cell{start}

	q := queue.New[*Cell]()
	q.Enqueue(start)
	for !q.Empty() {
		c := q.Dequeue()
		for _, n := range m.PassableNeighbors(c.X, c.Y) {
			if seen.Has(n) {
				continue
			}
			seen.Put(n)
			if m.CellCenter(n.X, n.Y).Dist(center) > radius {
				continue
			}
			result = append(result, n)
			q.Enqueue(n)
		}
	}
	return result
}
