// Package scene defines the themed variants of the maze the player is moved
// between. The player never chooses a scene; a new one is drawn at random
// every few seconds or when an event forces it.
package scene

import (
	"math/rand"

	"darkmaze/pkg/game/i18n"
)

// Type is a scene theme
type Type int

const (
	Normal Type = iota
	Dark
	Twisted
	Crimson
	Void
)

// typeCount is the number of scene types (for random draws)
const typeCount = 5

// Descriptor describes how a scene looks and how dangerous it is
type Descriptor struct {
	Type       Type
	NameKey    string  // i18n key
	DescKey    string  // i18n key
	Darkness   float64 // global fog opacity 0-1
	GhostSpeed float64 // pixels per second
}

// Descriptors holds every scene type, indexed by Type
var Descriptors = [typeCount]Descriptor{
	{Type: Normal, NameKey: "SCENE_NORMAL", DescKey: "SCENE_NORMAL_DESC", Darkness: 0.7, GhostSpeed: 40},
	{Type: Dark, NameKey: "SCENE_DARK", DescKey: "SCENE_DARK_DESC", Darkness: 0.85, GhostSpeed: 50},
	{Type: Twisted, NameKey: "SCENE_TWISTED", DescKey: "SCENE_TWISTED_DESC", Darkness: 0.75, GhostSpeed: 45},
	{Type: Crimson, NameKey: "SCENE_CRIMSON", DescKey: "SCENE_CRIMSON_DESC", Darkness: 0.8, GhostSpeed: 55},
	{Type: Void, NameKey: "SCENE_VOID", DescKey: "SCENE_VOID_DESC", Darkness: 0.9, GhostSpeed: 60},
}

// Describe returns the descriptor for t, or Normal's for an unknown type
func Describe(t Type) Descriptor {
	if t < 0 || int(t) >= typeCount {
		return Descriptors[Normal]
	}
	return Descriptors[t]
}

// Name returns the translated scene name.
// Uses i18n.Get with constant keys so catalogue extraction sees them.
func (t Type) Name() string {
	switch t {
	case Dark:
		return i18n.Get("SCENE_DARK")
	case Twisted:
		return i18n.Get("SCENE_TWISTED")
	case Crimson:
		return i18n.Get("SCENE_CRIMSON")
	case Void:
		return i18n.Get("SCENE_VOID")
	default:
		return i18n.Get("SCENE_NORMAL")
	}
}

// Description returns the translated flavour line for the scene
func (t Type) Description() string {
	switch t {
	case Dark:
		return i18n.Get("SCENE_DARK_DESC")
	case Twisted:
		return i18n.Get("SCENE_TWISTED_DESC")
	case Crimson:
		return i18n.Get("SCENE_CRIMSON_DESC")
	case Void:
		return i18n.Get("SCENE_VOID_DESC")
	default:
		return i18n.Get("SCENE_NORMAL_DESC")
	}
}

// String returns the descriptor's name key
func (t Type) String() string {
	return Describe(t).NameKey
}

// RandomType draws a scene type uniformly; it may repeat the current one
func RandomType(rng *rand.Rand) Type {
	return Type(rng.Intn(typeCount))
}

// NextSceneDelay draws the seconds until the next scene change, uniform in [min,max)
func NextSceneDelay(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// Scene is the player's progress through the current scene
type Scene struct {
	Type           Type
	Level          int
	ItemsCollected int
	TimeInScene    float64 // seconds
}

// New returns the first scene of a game
func New() Scene {
	return Scene{Type: Normal, Level: 1}
}

// Advance moves to the next level with the given type and resets the counters
func (s *Scene) Advance(t Type) {
	s.Type = t
	s.Level++
	s.ItemsCollected = 0
	s.TimeInScene = 0
}
