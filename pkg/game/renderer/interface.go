package renderer

import (
	"context"

	"darkmaze/pkg/game/state"
)

// Renderer defines the interface for game frontends.
// Implementations drive the session from their own frame loop and draw its snapshots.
type Renderer interface {
	// Init prepares the display (colors, window)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws one snapshot
	RenderFrame(snap *state.Snapshot)

	// Run runs the frame loop until the player quits or ctx is cancelled
	Run(ctx context.Context) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame draws a snapshot with the current renderer
func RenderFrame(snap *state.Snapshot) {
	if Current != nil && snap.Valid() {
		Current.RenderFrame(snap)
	}
}

// Run runs the current renderer's frame loop
func Run(ctx context.Context) error {
	if Current == nil {
		return nil
	}
	return Current.Run(ctx)
}
