package gameplay

import (
	"time"

	"darkmaze/pkg/engine/clock"
	"darkmaze/pkg/engine/input"
)

// frameContext is the bookkeeping carried from one frame to the next
type frameContext struct {
	started   time.Time
	lastFrame time.Time
	frames    uint64

	fpsWindow time.Time
	fpsFrames int
	fps       int

	lastHit  time.Time
	everHit  bool
	debuffed bool
	debuffAt time.Time // expiry

	flashlightKey input.EdgeTrigger

	transitionStart time.Time
	messageTimer    clock.Handle
	transitionTimer clock.Handle
}

func newFrameContext(now time.Time) frameContext {
	return frameContext{
		started:   now,
		lastFrame: now,
		fpsWindow: now,
	}
}

// tick records a new frame at now and returns its length in seconds,
// capped at maxDelta so a stalled process does not teleport anything.
func (f *frameContext) tick(now time.Time, maxDelta float64) float64 {
	dt := now.Sub(f.lastFrame).Seconds()
	f.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if maxDelta > 0 && dt > maxDelta {
		dt = maxDelta
	}

	f.frames++
	f.fpsFrames++
	if now.Sub(f.fpsWindow) >= time.Second {
		f.fps = f.fpsFrames
		f.fpsFrames = 0
		f.fpsWindow = now
	}
	return dt
}

// elapsed is the game time in seconds
func (f *frameContext) elapsed(now time.Time) float64 {
	return now.Sub(f.started).Seconds()
}
