// Package enemies spawns and moves the ghosts that haunt the maze.
package enemies

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/entities"
)

const maxSpawnAttempts = 100

// System owns the enemies of the current scene
type System struct {
	cfg    config.EnemyConfig
	rng    *rand.Rand
	policy BehaviorPolicy
	speed  float64

	enemies []*entities.Enemy
	nextID  int
}

// NewSystem creates an empty enemy system using the configured behavior policy
func NewSystem(cfg config.EnemyConfig, rng *rand.Rand) *System {
	return &System{
		cfg:    cfg,
		rng:    rng,
		policy: PolicyFor(cfg),
		speed:  cfg.Speed,
	}
}

// SetPolicy replaces the behavior policy
func (s *System) SetPolicy(p BehaviorPolicy) {
	s.policy = p
}

// Policy returns the active behavior policy
func (s *System) Policy() BehaviorPolicy {
	return s.policy
}

// SetSpeed sets the speed of future spawns and of every live enemy
func (s *System) SetSpeed(speed float64) {
	s.speed = speed
	for _, e := range s.enemies {
		e.Speed = speed
	}
}

// GenerateEnemies replaces all enemies with GhostCount fresh ghosts
func (s *System) GenerateEnemies(m *world.Maze) []*entities.Enemy {
	s.enemies = nil
	s.nextID = 0
	for i := 0; i < s.cfg.GhostCount; i++ {
		id := fmt.Sprintf("ghost-%d", s.nextID)
		s.nextID++
		s.SpawnAt(id, s.randomPosition(m))
	}
	return s.enemies
}

// randomPosition picks a cell centre outside the safe block around the start corner
func (s *System) randomPosition(m *world.Maze) world.Vector2 {
	safe := s.cfg.SpawnSafeCells
	for attempt := 0; attempt < maxSpawnAttempts; attempt++ {
		x := s.rng.Intn(m.Width)
		y := s.rng.Intn(m.Height)
		if x < safe && y < safe {
			continue
		}
		return m.CellCenter(x, y)
	}
	return m.EndPos
}

// SpawnAt adds a ghost with a random heading at pos
func (s *System) SpawnAt(id string, pos world.Vector2) *entities.Enemy {
	e := &entities.Enemy{
		ID:              id,
		Type:            entities.EnemyGhost,
		Position:        pos,
		State:           entities.StateWander,
		Direction:       s.rng.Float64() * 2 * math.Pi,
		Speed:           s.speed,
		DetectionRadius: s.cfg.DetectionRadius,
		CanPassWalls:    true,
	}
	s.enemies = append(s.enemies, e)
	return e
}

// SpawnGhostNear adds a ghost uniformly within ±spread of pos on each axis
func (s *System) SpawnGhostNear(pos world.Vector2, spread float64) *entities.Enemy {
	offset := world.Vec(
		(s.rng.Float64()*2-1)*spread,
		(s.rng.Float64()*2-1)*spread,
	)
	return s.SpawnAt("ghost-event-"+uuid.NewString(), pos.Add(offset))
}

// Update steers every enemy, integrates its position and keeps it inside the playfield.
// Ghosts pass through walls.
func (s *System) Update(dt float64, playerPos world.Vector2, m *world.Maze) {
	for _, e := range s.enemies {
		s.policy.Steer(e, playerPos, s.rng)
		e.Position = m.ClampToBounds(e.Position.Add(e.Velocity.Scale(dt)))
	}
}

// CheckCollision returns the first enemy within CollisionRadius of pos, or nil
func (s *System) CheckCollision(pos world.Vector2) *entities.Enemy {
	for _, e := range s.enemies {
		if e.Position.Dist(pos) < s.cfg.CollisionRadius {
			return e
		}
	}
	return nil
}

// Enemies returns the live enemies
func (s *System) Enemies() []*entities.Enemy {
	return s.enemies
}
