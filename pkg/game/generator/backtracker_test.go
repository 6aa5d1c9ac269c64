// Package generator tests maze generation: connectivity, acyclicity, wall symmetry
// and determinism for a given seed.
package generator

import (
	"math/rand"
	"testing"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"darkmaze/pkg/engine/world"
)

// countReachableCells returns the number of cells reachable from (0,0) through open walls.
func countReachableCells(m *world.Maze) int {
	start := m.CellAt(0, 0)
	visited := mapset.New[*world.Cell]()
	visited.Put(start)
	q := queue.New[*world.Cell]()
	q.Enqueue(start)
	for !q.Empty() {
		c := q.Dequeue()
		for _, n := range m.PassableNeighbors(c.X, c.Y) {
			if !visited.Has(n) {
				visited.Put(n)
				q.Enqueue(n)
			}
		}
	}
	return visited.Size()
}

func newSeeded(seed int64) *Backtracker {
	return NewBacktracker(rand.New(rand.NewSource(seed)))
}

func TestBacktracker_AllCellsReachable(t *testing.T) {
	sizes := []struct{ w, h int }{{12, 12}, {1, 1}, {1, 9}, {9, 1}, {5, 7}, {30, 20}}
	for i, sz := range sizes {
		m := newSeeded(int64(i + 1)).Generate(sz.w, sz.h, 32)
		reachable := countReachableCells(m)
		if reachable != sz.w*sz.h {
			t.Errorf("%dx%d: reachable cells %d != total %d", sz.w, sz.h, reachable, sz.w*sz.h)
		}
	}
}

func TestBacktracker_IsSpanningTree(t *testing.T) {
	// A connected graph with n vertices and n-1 edges is acyclic.
	for seed := int64(1); seed <= 20; seed++ {
		m := newSeeded(seed).Generate(12, 12, 32)
		if got, want := m.RemovedWallPairs(), 12*12-1; got != want {
			t.Errorf("seed %d: removed wall pairs %d, want %d", seed, got, want)
		}
	}
}

func TestBacktracker_WallsSymmetric(t *testing.T) {
	m := newSeeded(7).Generate(12, 12, 32)
	if msg := m.Validate(); msg != "" {
		t.Errorf("Validate() = %q", msg)
	}
}

func TestBacktracker_AllCellsVisited(t *testing.T) {
	m := newSeeded(3).Generate(8, 8, 32)
	m.ForEachCell(func(c *world.Cell) {
		if !c.Visited {
			t.Errorf("cell (%d,%d) never visited", c.X, c.Y)
		}
		if c.WallCount() == 4 {
			t.Errorf("cell (%d,%d) is sealed", c.X, c.Y)
		}
	})
}

func TestBacktracker_Deterministic(t *testing.T) {
	a := newSeeded(42).Generate(12, 12, 32)
	b := newSeeded(42).Generate(12, 12, 32)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if a.Cells[y][x].Walls != b.Cells[y][x].Walls {
				t.Fatalf("cell (%d,%d) differs between runs with the same seed", x, y)
			}
		}
	}

	c := newSeeded(43).Generate(12, 12, 32)
	same := true
	for y := 0; y < 12 && same; y++ {
		for x := 0; x < 12; x++ {
			if a.Cells[y][x].Walls != c.Cells[y][x].Walls {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical mazes")
	}
}

func TestBacktracker_StartAndEnd(t *testing.T) {
	m := newSeeded(1).Generate(12, 12, 32)
	if m.StartPos != world.Vec(16, 16) {
		t.Errorf("StartPos = %v, want (16,16)", m.StartPos)
	}
	if m.EndPos != world.Vec(368, 368) {
		t.Errorf("EndPos = %v, want (368,368)", m.EndPos)
	}
}

func TestBacktracker_ClampsDimensions(t *testing.T) {
	m := newSeeded(1).Generate(0, -3, 32)
	if m.Width != 1 || m.Height != 1 {
		t.Errorf("Generate(0,-3) dims = %dx%d, want 1x1", m.Width, m.Height)
	}
	if m.RemovedWallPairs() != 0 {
		t.Errorf("1x1 maze removed %d wall pairs, want 0", m.RemovedWallPairs())
	}
}

func TestShuffle_Permutation(t *testing.T) {
	b := newSeeded(5)
	counts := make(map[world.Direction]int)
	for i := 0; i < 1000; i++ {
		dirs := world.AllDirections()
		b.shuffle(dirs)
		seen := mapset.New[world.Direction]()
		for _, d := range dirs {
			seen.Put(d)
		}
		if seen.Size() != 4 {
			t.Fatalf("shuffle lost an element: %v", dirs)
		}
		counts[dirs[0]]++
	}
	// Each direction should lead roughly a quarter of the time
	for d, n := range counts {
		if n < 180 || n > 320 {
			t.Errorf("%s first %d/1000 times, expected about 250", d, n)
		}
	}
}
