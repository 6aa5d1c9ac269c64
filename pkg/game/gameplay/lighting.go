package gameplay

import (
	"time"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/scene"
)

// updateFlashlight toggles the light once per press of the flashlight key and drains the battery
func (s *Session) updateFlashlight(in input.Snapshot, dt float64) {
	if s.frame.flashlightKey.Update(in.Flashlight) {
		s.light.Toggle()
	}
	s.light.Update(dt, s.player.HeartRate)
}

// refresh recomputes what the player can see and how the music sounds
func (s *Session) refresh(now time.Time) {
	light := s.light.State()
	s.visibility = scene.ComputeVisibility(scene.Viewer{
		Position:  s.player.Position,
		Direction: s.light.ShakeDirection(s.player.Direction),
		Light:     light,
		HeartRate: s.player.HeartRate,
		Sanity:    s.player.Sanity,
		Scene:     s.scene.Type,
	}, s.cfg.Fog, s.cfg.Sanity)

	s.tempo = s.audio.Tempo(s.player.HeartRate, s.player.Sanity, s.frame.elapsed(now))
}
