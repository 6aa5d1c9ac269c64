package gameplay

import (
	"log"
	"time"

	"darkmaze/pkg/game/config"
)

// updateHeartRate eases the heart rate towards the target for the current activity
func (s *Session) updateHeartRate(dt float64) {
	hc := s.cfg.HeartRate
	p := &s.player

	target := hc.Base
	switch {
	case p.IsSprinting:
		target = hc.Sprinting
	case p.IsMoving:
		target = hc.Walking
	}
	p.HeartRate += (target - p.HeartRate) * dt * hc.Responsiveness
}

// updateDebuff expires the slow-down and, while healthy, rolls for a new one
// with a chance that grows with the heart rate stage
func (s *Session) updateDebuff(now time.Time, dt float64) {
	if s.frame.debuffed && now.After(s.frame.debuffAt) {
		s.frame.debuffed = false
	}
	if s.frame.debuffed {
		return
	}

	chance := debuffChance(s.cfg.HeartRate, s.player.HeartRate) * dt
	if chance > 0 && s.rng.Float64() < chance {
		s.applyDebuff(now, 1)
	}
}

// applyDebuff slows the player for factor times the base debuff duration
func (s *Session) applyDebuff(now time.Time, factor float64) {
	s.frame.debuffed = true
	s.frame.debuffAt = now.Add(config.Seconds(s.cfg.HeartRate.DebuffSeconds * factor))
	log.Printf("Debuff until %s (%.0f bpm)", s.frame.debuffAt.Format("15:04:05.000"), s.player.HeartRate)
}

// debuffChance is the per-second debuff probability at bpm
func debuffChance(hc config.HeartRateConfig, bpm float64) float64 {
	switch {
	case bpm >= hc.Stage3:
		return hc.Stage3Chance
	case bpm >= hc.Stage2:
		return hc.Stage2Chance
	case bpm >= hc.Stage1:
		return hc.Stage1Chance
	default:
		return 0
	}
}
