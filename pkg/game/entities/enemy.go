package entities

import (
	"darkmaze/pkg/engine/world"
)

// EnemyType represents the kind of enemy. Only ghosts exist.
type EnemyType int

const (
	EnemyGhost EnemyType = iota
)

// EnemyState is the behavior an enemy is currently running
type EnemyState int

const (
	StateWander EnemyState = iota
	StateChase
	StatePatrol // declared, never entered
)

// String returns the state name
func (s EnemyState) String() string {
	switch s {
	case StateWander:
		return "wander"
	case StateChase:
		return "chase"
	case StatePatrol:
		return "patrol"
	default:
		return "unknown"
	}
}

// Enemy is a hostile entity roaming the maze
type Enemy struct {
	ID       string
	Type     EnemyType
	Position world.Vector2
	Velocity world.Vector2
	State    EnemyState

	Direction       float64 // heading in radians
	Speed           float64 // pixels per second
	DetectionRadius float64
	CanPassWalls    bool

	Target *world.Vector2 // set while chasing
}

// Clone returns a copy that shares nothing with e
func (e *Enemy) Clone() Enemy {
	c := *e
	if e.Target != nil {
		t := *e.Target
		c.Target = &t
	}
	return c
}
