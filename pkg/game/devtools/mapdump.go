// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/entities"
	"darkmaze/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell interior.
// If revealedOnly is true, cells the player cannot see return '#'.
func cellSymbol(snap *state.Snapshot, x, y int, revealedOnly bool) rune {
	m := snap.Maze
	center := m.CellCenter(x, y)
	if revealedOnly && !snap.Visibility.Visible(center) {
		return '#'
	}

	inCell := func(p world.Vector2) bool {
		cx, cy := m.CellOf(p)
		return cx == x && cy == y
	}
	if inCell(snap.Player.Position) {
		return '@'
	}
	for _, e := range snap.Enemies {
		if inCell(e.Position) {
			return 'G'
		}
	}
	for _, item := range snap.Items {
		if !inCell(item.Position) {
			continue
		}
		switch {
		case item.IsFake:
			return '?'
		case item.Type.IsUtility():
			return 'u'
		default:
			return 'i'
		}
	}
	if inCell(m.EndPos) {
		return 'E'
	}
	return '.'
}

// writeMapGrid writes the maze as a (2h+1)x(2w+1) grid with walls between cells
func writeMapGrid(w io.Writer, snap *state.Snapshot, revealedOnly bool) {
	m := snap.Maze
	for row := 0; row <= 2*m.Height; row++ {
		for col := 0; col <= 2*m.Width; col++ {
			x, y := col/2, row/2
			switch {
			case row%2 == 1 && col%2 == 1:
				fmt.Fprintf(w, "%c", cellSymbol(snap, x, y, revealedOnly))
			case row%2 == 1 && x < m.Width && !m.CellAt(x, y).Left():
				fmt.Fprint(w, " ")
			case col%2 == 1 && y < m.Height && !m.CellAt(x, y).Top():
				fmt.Fprint(w, " ")
			default:
				fmt.Fprint(w, "#")
			}
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes a full debug dump: metadata, legend, the revealed map,
// the full map, and item and ghost lists. Pass a snapshot that includes hidden
// entities (Session.RevealedSnapshot) to see everything on the full map.
func WriteMapDump(w io.Writer, snap *state.Snapshot, seed int64) error {
	if !snap.Valid() {
		return fmt.Errorf("no maze")
	}
	m := snap.Maze
	px, py := m.CellOf(snap.Player.Position)
	ex, ey := m.CellOf(m.EndPos)

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (maze layout, items, ghosts) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", snap.SessionID)
	fmt.Fprintf(w, "seed: %d\n", seed)
	fmt.Fprintf(w, "level: %d\n", snap.Scene.Level)
	fmt.Fprintf(w, "scene: %s\n", snap.Scene.Type)
	fmt.Fprintf(w, "state: %s\n", snap.State)
	fmt.Fprintf(w, "maze: %dx%d cells of %v px\n", m.Width, m.Height, m.CellSize)
	fmt.Fprintf(w, "removed_wall_pairs: %d\n", m.RemovedWallPairs())
	fmt.Fprintf(w, "player_cell: %d,%d\n", px, py)
	fmt.Fprintf(w, "exit_cell: %d,%d\n", ex, ey)
	deadEnds := 0
	m.ForEachCell(func(c *world.Cell) {
		if c.IsDeadEnd() {
			deadEnds++
		}
	})
	fmt.Fprintf(w, "dead_ends: %d\n", deadEnds)
	radius := snap.Visibility.Radius
	fmt.Fprintf(w, "cells_in_light_radius: %d (%d reachable without crossing a wall)\n",
		len(world.CellsInRadius(m, snap.Player.Position, radius)),
		len(world.CalculateFOV(m, snap.Player.Position, radius)))
	if problem := m.Validate(); problem != "" {
		fmt.Fprintf(w, "validation: %s\n", problem)
	} else {
		fmt.Fprintln(w, "validation: ok")
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = empty  # = wall or unseen  @ = player  E = exit  G = ghost  i = collectible  u = battery or medkit  ? = fake item")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (visible cells only; unseen = #) ---")
	writeMapGrid(w, snap, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	writeMapGrid(w, snap, false)
	fmt.Fprintln(w, "")

	// --- Items, ordered by cell ---
	items := append([]entities.Item(nil), snap.Items...)
	sort.Slice(items, func(i, j int) bool {
		ix, iy := m.CellOf(items[i].Position)
		jx, jy := m.CellOf(items[j].Position)
		if iy != jy {
			return iy < jy
		}
		return ix < jx
	})
	fmt.Fprintf(w, "--- Items (%d) ---\n", len(items))
	for _, item := range items {
		x, y := m.CellOf(item.Position)
		fmt.Fprintf(w, "%s at %d,%d fake=%v\n", item.Type, x, y, item.IsFake)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintf(w, "--- Ghosts (%d) ---\n", len(snap.Enemies))
	for _, e := range snap.Enemies {
		x, y := m.CellOf(e.Position)
		fmt.Fprintf(w, "%s at %d,%d state=%s\n", e.ID, x, y, e.State)
	}
	return nil
}

// DumpMapToFile writes WriteMapDump output to map.txt in the working directory
// and returns its absolute path.
func DumpMapToFile(snap *state.Snapshot, seed int64) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, snap, seed); err != nil {
		return "", err
	}
	return absPath, nil
}
