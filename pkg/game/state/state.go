// Package state holds the mutable game state shared by the simulation and the
// immutable snapshots handed to renderers.
package state

import (
	"math"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
)

// GameState is the top-level phase of a session
type GameState int

// Game states. Menu and Paused exist for frontends; the simulation never enters them.
const (
	Menu GameState = iota
	Playing
	Paused
	GameOver
	Victory
)

// String returns the state name
func (s GameState) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	case Victory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended
func (s GameState) Terminal() bool {
	return s == GameOver || s == Victory
}

// Stat bounds
const (
	StatMin = 0
	StatMax = 100
)

// Player is the player character
type Player struct {
	Position world.Vector2
	Velocity world.Vector2

	Health    float64
	Luck      float64
	Sanity    float64
	HeartRate float64 // beats per minute

	IsMoving    bool
	IsSprinting bool
	Direction   float64 // facing in radians
}

// NewPlayer creates a player at pos with starting stats from cfg
func NewPlayer(pos world.Vector2, cfg *config.Config) Player {
	return Player{
		Position:  pos,
		Health:    cfg.Player.MaxHealth,
		Luck:      cfg.Luck.Initial,
		Sanity:    cfg.Sanity.Initial,
		HeartRate: cfg.HeartRate.Base,
	}
}

// Clamp keeps v within [StatMin, StatMax]
func Clamp(v float64) float64 {
	return math.Max(StatMin, math.Min(StatMax, v))
}

// AddHealth changes health by delta within bounds
func (p *Player) AddHealth(delta float64) {
	p.Health = Clamp(p.Health + delta)
}

// AddSanity changes sanity by delta within bounds
func (p *Player) AddSanity(delta float64) {
	p.Sanity = Clamp(p.Sanity + delta)
}

// AddLuck changes luck by delta within bounds
func (p *Player) AddLuck(delta float64) {
	p.Luck = Clamp(p.Luck + delta)
}

// IsDead reports whether health has run out
func (p *Player) IsDead() bool {
	return p.Health <= 0
}
