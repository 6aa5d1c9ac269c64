// Package generator builds the mazes the player explores.
package generator

import (
	"darkmaze/pkg/engine/world"
)

// MazeGenerator is an interface for maze generation algorithms
type MazeGenerator interface {
	Generate(width, height int, cellSize float64) *world.Maze
	Name() string
}
