package gameplay

import (
	"math"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
)

// CollisionPolicy decides where the player ends up when moving from one point to another
type CollisionPolicy interface {
	Resolve(m *world.Maze, from, to world.Vector2) world.Vector2
	Name() string
}

// FreeMovement lets the player walk through walls. Only the playfield edge stops them.
type FreeMovement struct{}

// Name returns the config name of the policy
func (FreeMovement) Name() string { return config.CollisionFree }

// Resolve keeps to inside the maze
func (FreeMovement) Resolve(m *world.Maze, _, to world.Vector2) world.Vector2 {
	return m.ClampToBounds(to)
}

// WallCollision blocks movement through standing walls and slides along them
type WallCollision struct {
	Radius        float64
	WallThickness float64
}

// Name returns the config name of the policy
func (WallCollision) Name() string { return config.CollisionWalls }

// Resolve tries the full move, then each axis alone, and stays put if all are blocked
func (w WallCollision) Resolve(m *world.Maze, from, to world.Vector2) world.Vector2 {
	if !w.Blocked(m, to) {
		return to
	}
	if tryX := world.Vec(to.X, from.Y); !w.Blocked(m, tryX) {
		return tryX
	}
	if tryY := world.Vec(from.X, to.Y); !w.Blocked(m, tryY) {
		return tryY
	}
	return from
}

// Blocked reports whether a body of Radius at p overlaps a wall of its cell.
// Points outside the maze are always blocked.
func (w WallCollision) Blocked(m *world.Maze, p world.Vector2) bool {
	x, y := m.CellOf(p)
	cell := m.CellAt(x, y)
	if cell == nil {
		return true
	}

	relX := p.X - float64(x)*m.CellSize
	relY := p.Y - float64(y)*m.CellSize

	switch {
	case cell.Top() && relY-w.Radius < w.WallThickness:
		return true
	case cell.Bottom() && relY+w.Radius > m.CellSize-w.WallThickness:
		return true
	case cell.Left() && relX-w.Radius < w.WallThickness:
		return true
	case cell.Right() && relX+w.Radius > m.CellSize-w.WallThickness:
		return true
	}
	return false
}

// CollisionFor returns the policy named in config, defaulting to free movement
func CollisionFor(name string, cfg *config.Config) CollisionPolicy {
	if name == config.CollisionWalls {
		return WallCollision{Radius: cfg.Player.Radius, WallThickness: cfg.Maze.WallThickness}
	}
	return FreeMovement{}
}

// updateMovement moves the player from the held direction keys
func (s *Session) updateMovement(in input.Snapshot, dt float64) {
	p := &s.player
	pc := s.cfg.Player

	vx, vy := in.Axis()
	moving := vx != 0 || vy != 0

	if vx != 0 && vy != 0 {
		vx *= pc.DiagonalFactor
		vy *= pc.DiagonalFactor
	}

	speed := pc.Speed
	if in.Sprint && moving {
		speed *= pc.SprintMultiplier
	}
	if s.frame.debuffed {
		speed *= s.cfg.HeartRate.DebuffSpeed
	}

	p.Velocity = world.Vec(vx*speed, vy*speed)
	p.IsMoving = moving
	p.IsSprinting = in.Sprint && moving

	next := p.Position.Add(p.Velocity.Scale(dt))
	p.Position = s.collision.Resolve(s.maze, p.Position, next)

	if moving {
		p.Direction = math.Atan2(p.Velocity.Y, p.Velocity.X)
	}
}
