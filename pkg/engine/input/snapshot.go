// Package input turns device events into the per-frame boolean input snapshot
// consumed by the simulation.
package input

// Snapshot is the input state sampled once per frame.
// Every field is a level signal: true for as long as the key is held.
type Snapshot struct {
	Up         bool
	Down       bool
	Left       bool
	Right      bool
	Sprint     bool
	Flashlight bool
}

// FromHeld builds a snapshot from the set of held actions
func FromHeld(held Held) Snapshot {
	return Snapshot{
		Up:         held.Has(ActionMoveUp),
		Down:       held.Has(ActionMoveDown),
		Left:       held.Has(ActionMoveLeft),
		Right:      held.Has(ActionMoveRight),
		Sprint:     held.Has(ActionSprint),
		Flashlight: held.Has(ActionFlashlight),
	}
}

// Axis returns the raw movement axis in {-1,0,1}² (screen coordinates, +Y down)
func (s Snapshot) Axis() (dx, dy float64) {
	if s.Up {
		dy--
	}
	if s.Down {
		dy++
	}
	if s.Left {
		dx--
	}
	if s.Right {
		dx++
	}
	return dx, dy
}

// EdgeTrigger converts a level signal into one pulse per press
type EdgeTrigger struct {
	prev bool
}

// Update records the current level and reports whether it just went from released to held
func (e *EdgeTrigger) Update(level bool) bool {
	rising := level && !e.prev
	e.prev = level
	return rising
}

// Reset forgets the previous level
func (e *EdgeTrigger) Reset() {
	e.prev = false
}
