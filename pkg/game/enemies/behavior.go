package enemies

import (
	"math"
	"math/rand"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/entities"
)

// BehaviorPolicy decides an enemy's state and velocity for one tick.
// Position integration and clamping are done by the System afterwards.
type BehaviorPolicy interface {
	Steer(e *entities.Enemy, playerPos world.Vector2, rng *rand.Rand)
	Name() string
}

// Wander drifts in a straight line and occasionally picks a new heading.
// The chance is per tick, not per second, so turn rate follows the frame rate.
type Wander struct {
	DirectionChangeChance float64
}

// Name returns the policy name
func (w Wander) Name() string { return config.BehaviorWander }

// Steer forces the wander state and sets velocity along the heading
func (w Wander) Steer(e *entities.Enemy, _ world.Vector2, rng *rand.Rand) {
	e.State = entities.StateWander
	e.Target = nil
	if rng.Float64() < w.DirectionChangeChance {
		e.Direction = rng.Float64() * 2 * math.Pi
	}
	e.Velocity = world.FromAngle(e.Direction, e.Speed)
}

// Chase heads straight for the player while within detection radius and wanders otherwise
type Chase struct {
	Wander Wander
}

// Name returns the policy name
func (c Chase) Name() string { return config.BehaviorChase }

// Steer updates the chase target or falls back to wandering
func (c Chase) Steer(e *entities.Enemy, playerPos world.Vector2, rng *rand.Rand) {
	if e.Position.Dist(playerPos) >= e.DetectionRadius {
		c.Wander.Steer(e, playerPos, rng)
		return
	}

	e.State = entities.StateChase
	target := playerPos
	e.Target = &target

	delta := target.Sub(e.Position)
	dist := delta.Len()
	if dist <= 1 {
		e.Velocity = world.Vector2{}
		return
	}
	e.Velocity = delta.Scale(e.Speed / dist)
	e.Direction = delta.Angle()
}

// PolicyFor maps a configured behavior name to its policy, defaulting to Wander
func PolicyFor(cfg config.EnemyConfig) BehaviorPolicy {
	w := Wander{DirectionChangeChance: cfg.DirectionChangeChance}
	if cfg.Behavior == config.BehaviorChase {
		return Chase{Wander: w}
	}
	return w
}
