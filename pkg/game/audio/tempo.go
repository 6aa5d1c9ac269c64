// Package audio computes how the background music should sound from the
// player's condition. It produces numbers only; playback belongs to a frontend.
package audio

import (
	"math"

	"darkmaze/pkg/game/scene"
)

// Profile is the music setting of a scene
type Profile struct {
	Volume float64
	Rate   float64
}

// Profiles maps scene types to their base music profile
var Profiles = map[scene.Type]Profile{
	scene.Normal:  {Volume: 0.3, Rate: 1.0},
	scene.Dark:    {Volume: 0.4, Rate: 0.9},
	scene.Twisted: {Volume: 0.35, Rate: 1.1},
	scene.Crimson: {Volume: 0.5, Rate: 1.2},
	scene.Void:    {Volume: 0.25, Rate: 0.8},
}

const (
	restingBPM       = 75
	maxVolumeBoost   = 1.5
	minRate          = 0.8
	maxRate          = 1.3
	sanityThreshold  = 30
	fluctuationDepth = 0.2
	wobbleSpeed      = 1000.0 / 200 // radians per second
	minFluctuating   = 0.1
)

// Tempo is the music output for one frame
type Tempo struct {
	Volume float64 // 0-1
	Rate   float64 // playback speed multiplier
	Muted  bool
}

// Model tracks the scene profile and mute switch
type Model struct {
	profile Profile
	muted   bool
}

// NewModel creates a model for the Normal scene
func NewModel() *Model {
	return &Model{profile: Profiles[scene.Normal]}
}

// OnSceneTransition switches to the profile of the new scene
func (m *Model) OnSceneTransition(t scene.Type) {
	if p, ok := Profiles[t]; ok {
		m.profile = p
	}
}

// ToggleMute flips the mute switch
func (m *Model) ToggleMute() {
	m.muted = !m.muted
}

// Tempo computes volume and rate. Heart rate raises both; below the low sanity
// threshold the volume wobbles around the scene base instead. elapsed is the
// session time in seconds and drives the wobble.
func (m *Model) Tempo(heartRate, sanity, elapsed float64) Tempo {
	volume := m.profile.Volume * math.Min(maxVolumeBoost, heartRate/restingBPM)
	rate := math.Max(minRate, math.Min(maxRate, 0.8+(heartRate-60)/100))

	if sanity < sanityThreshold {
		distortion := (sanityThreshold - sanity) / sanityThreshold
		wobble := math.Sin(elapsed*wobbleSpeed) * distortion * fluctuationDepth
		volume = math.Max(minFluctuating, m.profile.Volume+wobble)
	}

	return Tempo{
		Volume: math.Max(0, math.Min(1, volume)),
		Rate:   rate,
		Muted:  m.muted,
	}
}
