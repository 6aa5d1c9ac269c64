package input

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionSprint

	// Equipment
	ActionFlashlight

	// Meta
	ActionRestart
	ActionMute
	ActionQuit
)

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (WASD and arrows)
	"w":           ActionMoveUp,
	"arrow_up":    ActionMoveUp,
	"s":           ActionMoveDown,
	"arrow_down":  ActionMoveDown,
	"a":           ActionMoveLeft,
	"arrow_left":  ActionMoveLeft,
	"d":           ActionMoveRight,
	"arrow_right": ActionMoveRight,

	"shift": ActionSprint,

	"f": ActionFlashlight,

	"r":      ActionRestart,
	"m":      ActionMute,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToAction applies the current bindings to a raw code
func MapToAction(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionSprint:
		return "Sprint"
	case ActionFlashlight:
		return "Flashlight"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// BoundCodes returns every code bound to the action, sorted
func BoundCodes(a Action) []string {
	var codes []string
	for code, act := range bindings {
		if act == a {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Held is the set of actions whose keys are currently down
type Held = mapset.Set[Action]

// HeldFromCodes maps every held raw code through the bindings
func HeldFromCodes(codes []string) Held {
	held := mapset.New[Action]()
	for _, c := range codes {
		if act := MapToAction(c); act != ActionNone {
			held.Put(act)
		}
	}
	return held
}
