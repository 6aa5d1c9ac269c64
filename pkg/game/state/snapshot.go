package state

import (
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/audio"
	"darkmaze/pkg/game/entities"
	"darkmaze/pkg/game/flashlight"
	"darkmaze/pkg/game/inventory"
	"darkmaze/pkg/game/scene"
)

// Snapshot is a consistent copy of one frame for renderers.
// Apart from Maze, nothing in it aliases live simulation state; the maze is
// never mutated after generation and is swapped out whole on scene change.
type Snapshot struct {
	SessionID string
	Frame     uint64
	State     GameState

	Player     Player
	Maze       *world.Maze
	Flashlight flashlight.State
	Battery    float64 // percentage

	// Only what the player can currently see
	Items   []entities.Item
	Enemies []entities.Enemy

	Scene         scene.Scene
	SceneName     string
	Transitioning bool

	Inventory  []inventory.Slot
	Visibility scene.Visibility
	Tempo      audio.Tempo

	Message  string
	Messages []string

	Debuffed bool
	FPS      int

	// Thresholds the HUD warns at, from the session's config
	SanityLevels config.SanityConfig
}

// Valid reports whether the snapshot carries a frame
func (s *Snapshot) Valid() bool {
	return s != nil && s.Maze != nil
}
