// Package ebiten draws the maze in a window and drives the game session from
// Ebiten's fixed-rate Update callback.
package ebiten

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/state"
)

// EbitenRenderer is the graphical frontend
type EbitenRenderer struct {
	session *gameplay.Session
	ctx     context.Context

	// Logical screen size
	windowWidth  int
	windowHeight int

	// Latest frame, written by Update and read by Draw
	snapshot      *state.Snapshot
	snapshotMutex sync.RWMutex

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a renderer for session
func New(session *gameplay.Session) *EbitenRenderer {
	return &EbitenRenderer{
		session: session,
		ctx:     context.Background(),
	}
}

// Init sizes the window to fit the maze and sets the tick rate
func (e *EbitenRenderer) Init() {
	m := e.session.Maze()
	e.windowWidth = int(m.PixelWidth()) + 2*mapMargin
	e.windowHeight = int(m.PixelHeight()) + 2*mapMargin + hudHeight

	ebiten.SetWindowSize(e.windowWidth*2, e.windowHeight*2)
	ebiten.SetWindowTitle("Dark Maze")
	ebiten.SetTPS(e.session.Config().Engine.TicksPerSecond)
}

// Clear drops the stored frame so Draw shows an empty screen
func (e *EbitenRenderer) Clear() {
	e.snapshotMutex.Lock()
	e.snapshot = nil
	e.snapshotMutex.Unlock()
}

// RenderFrame stores the snapshot for the next Draw call
func (e *EbitenRenderer) RenderFrame(snap *state.Snapshot) {
	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

// currentSnapshot returns the frame to draw
func (e *EbitenRenderer) currentSnapshot() *state.Snapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}

// Run opens the window and blocks until the player quits or ctx is cancelled
func (e *EbitenRenderer) Run(ctx context.Context) error {
	e.ctx = ctx
	if e.windowWidth == 0 {
		e.Init()
	}
	e.RenderFrame(e.session.Snapshot())

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		log.Printf("Window closed")
		return nil
	}
	return err
}
