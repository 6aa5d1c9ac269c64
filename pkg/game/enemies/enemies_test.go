package enemies

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/entities"
)

func newTestSystem(seed int64, mutate func(*config.EnemyConfig)) (*System, *world.Maze) {
	cfg := config.Default().Enemies
	if mutate != nil {
		mutate(&cfg)
	}
	return NewSystem(cfg, rand.New(rand.NewSource(seed))), world.NewMaze(12, 12, 32)
}

func TestGenerateEnemies(t *testing.T) {
	s, m := newTestSystem(1, nil)
	for round := 0; round < 50; round++ {
		ghosts := s.GenerateEnemies(m)
		if len(ghosts) != 4 {
			t.Fatalf("GenerateEnemies produced %d ghosts, want 4", len(ghosts))
		}
		for i, g := range ghosts {
			x, y := m.CellOf(g.Position)
			if x < 3 && y < 3 {
				t.Fatalf("ghost %s spawned in the safe corner (%d,%d)", g.ID, x, y)
			}
			if g.Direction < 0 || g.Direction >= 2*math.Pi {
				t.Errorf("ghost %s direction %v outside [0,2π)", g.ID, g.Direction)
			}
			if g.Speed != 40 || g.DetectionRadius != 120 || !g.CanPassWalls {
				t.Errorf("ghost %s = %+v, want speed 40, detection 120, passes walls", g.ID, *g)
			}
			if want := "ghost-" + string(rune('0'+i)); g.ID != want {
				t.Errorf("ghost %d ID = %s, want %s", i, g.ID, want)
			}
		}
	}
}

func TestGenerateEnemies_TinyMazeFallsBack(t *testing.T) {
	s, _ := newTestSystem(2, nil)
	m := world.NewMaze(2, 2, 32)
	for _, g := range s.GenerateEnemies(m) {
		if g.Position != m.EndPos {
			t.Errorf("ghost %s at %v, want fallback to end %v", g.ID, g.Position, m.EndPos)
		}
	}
}

func TestUpdate_ClampsToPlayfield(t *testing.T) {
	s, m := newTestSystem(3, func(c *config.EnemyConfig) { c.DirectionChangeChance = 0 })
	g := s.SpawnAt("edge", world.Vec(1, 1))
	g.Direction = math.Pi * 1.25 // up-left, out of the maze
	for i := 0; i < 60; i++ {
		s.Update(1.0/60, world.Vec(300, 300), m)
	}
	if g.Position.X != 0 || g.Position.Y != 0 {
		t.Errorf("ghost at %v, want clamped to (0,0)", g.Position)
	}

	g.Position = world.Vec(384, 384)
	g.Direction = math.Pi / 4
	s.Update(0.5, world.Vec(0, 0), m)
	if g.Position.X != 384 || g.Position.Y != 384 {
		t.Errorf("ghost at %v, want clamped to (384,384)", g.Position)
	}
}

func TestWander_KeepsHeadingWithoutTurnRoll(t *testing.T) {
	s, m := newTestSystem(4, func(c *config.EnemyConfig) { c.DirectionChangeChance = 0 })
	g := s.SpawnAt("straight", world.Vec(100, 100))
	g.Direction = 0
	s.Update(1, world.Vec(100, 100), m)
	if math.Abs(g.Position.X-140) > 1e-9 || math.Abs(g.Position.Y-100) > 1e-9 {
		t.Errorf("ghost moved to %v, want (140,100)", g.Position)
	}
	if g.State != entities.StateWander {
		t.Errorf("state = %v, want wander even near the player", g.State)
	}
}

func TestChase_SteersTowardsPlayer(t *testing.T) {
	s, m := newTestSystem(5, func(c *config.EnemyConfig) {
		c.Behavior = config.BehaviorChase
		c.DirectionChangeChance = 0
	})
	if s.Policy().Name() != config.BehaviorChase {
		t.Fatalf("policy = %s, want chase", s.Policy().Name())
	}
	g := s.SpawnAt("hunter", world.Vec(100, 100))
	player := world.Vec(200, 100)

	s.Update(0.5, player, m)
	if g.State != entities.StateChase {
		t.Fatalf("state = %v, want chase within detection radius", g.State)
	}
	if g.Target == nil || *g.Target != player {
		t.Errorf("target = %v, want %v", g.Target, player)
	}
	if math.Abs(g.Position.X-120) > 1e-9 || math.Abs(g.Position.Y-100) > 1e-9 {
		t.Errorf("ghost at %v, want (120,100)", g.Position)
	}

	far := world.Vec(380, 380)
	s.Update(0.1, far, m)
	if g.State != entities.StateWander || g.Target != nil {
		t.Errorf("out of range: state %v target %v, want wander with no target", g.State, g.Target)
	}
}

func TestChase_StopsOnTarget(t *testing.T) {
	s, m := newTestSystem(6, func(c *config.EnemyConfig) { c.Behavior = config.BehaviorChase })
	g := s.SpawnAt("close", world.Vec(100, 100))
	s.Update(1, world.Vec(100.5, 100), m)
	if g.Velocity != (world.Vector2{}) {
		t.Errorf("velocity = %v within 1px of target, want zero", g.Velocity)
	}
}

func TestCheckCollision(t *testing.T) {
	s, _ := newTestSystem(7, nil)
	a := s.SpawnAt("a", world.Vec(50, 50))
	s.SpawnAt("b", world.Vec(55, 50))
	if got := s.CheckCollision(world.Vec(60, 50)); got != a {
		t.Errorf("CheckCollision = %v, want first enemy in order", got)
	}
	if got := s.CheckCollision(world.Vec(75, 50)); got != nil {
		t.Errorf("CheckCollision at exactly 20px = %v, want nil", got.ID)
	}
}

func TestSpawnGhostNear(t *testing.T) {
	s, _ := newTestSystem(8, nil)
	origin := world.Vec(200, 200)
	for i := 0; i < 100; i++ {
		g := s.SpawnGhostNear(origin, 50)
		if math.Abs(g.Position.X-200) > 50 || math.Abs(g.Position.Y-200) > 50 {
			t.Fatalf("ghost spawned at %v, outside ±50 of %v", g.Position, origin)
		}
		if !strings.HasPrefix(g.ID, "ghost-event-") {
			t.Fatalf("event ghost ID %q lacks ghost-event- prefix", g.ID)
		}
	}
	if len(s.Enemies()) != 100 {
		t.Errorf("Enemies() = %d, want 100", len(s.Enemies()))
	}
}

func TestSetSpeed(t *testing.T) {
	s, m := newTestSystem(9, nil)
	s.GenerateEnemies(m)
	s.SetSpeed(60)
	for _, g := range s.Enemies() {
		if g.Speed != 60 {
			t.Errorf("ghost %s speed %v, want 60", g.ID, g.Speed)
		}
	}
	if g := s.SpawnAt("late", world.Vec(0, 0)); g.Speed != 60 {
		t.Errorf("new spawn speed %v, want 60", g.Speed)
	}
}
