// Package gameplay runs the frame loop of a game: movement, heart rate,
// flashlight, ghosts, pickups, random events and scene changes.
package gameplay

import (
	"math/rand"
	"time"

	"darkmaze/pkg/engine/clock"
	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/audio"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/enemies"
	"darkmaze/pkg/game/events"
	"darkmaze/pkg/game/flashlight"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/inventory"
	"darkmaze/pkg/game/items"
	"darkmaze/pkg/game/scene"
	"darkmaze/pkg/game/state"
)

// Session owns every subsystem of one game and advances them together.
// It is not safe for concurrent use; frontends call Update and Snapshot
// from their own frame loop.
type Session struct {
	id  string
	cfg *config.Config

	clock     clock.Clock
	sched     *clock.Scheduler
	rng       *rand.Rand
	eventSrc  events.Source
	generator generator.MazeGenerator
	collision CollisionPolicy

	maze      *world.Maze
	player    state.Player
	items     *items.System
	enemies   *enemies.System
	light     *flashlight.Controller
	table     *events.Table
	inventory *inventory.Inventory
	audio     *audio.Model
	messages  *state.MessageLog

	gameState     state.GameState
	scene         scene.Scene
	nextSceneTime float64
	transitioning bool

	visibility scene.Visibility
	tempo      audio.Tempo

	frame frameContext
}

// Option configures a Session
type Option func(*Session)

// WithClock sets the time source. Tests pass a clock.Mock.
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithRand sets the random source shared by all subsystems
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithSeed seeds a new random source
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithEventSource sets the source of the event trigger and selection rolls.
// By default the shared random source is used.
func WithEventSource(src events.Source) Option {
	return func(s *Session) { s.eventSrc = src }
}

// WithGenerator replaces the maze generator
func WithGenerator(g generator.MazeGenerator) Option {
	return func(s *Session) { s.generator = g }
}

// WithCollision replaces the configured collision policy
func WithCollision(p CollisionPolicy) Option {
	return func(s *Session) { s.collision = p }
}

// NewSession builds a session and starts the first game
func NewSession(cfg *config.Config, opts ...Option) *Session {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Session{
		cfg:   cfg,
		clock: clock.NewReal(),
		sched: clock.NewScheduler(),
		audio: audio.NewModel(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.eventSrc == nil {
		s.eventSrc = s.rng
	}
	if s.generator == nil {
		s.generator = generator.NewBacktracker(s.rng)
	}
	if s.collision == nil {
		s.collision = CollisionFor(cfg.Player.Collision, cfg)
	}

	s.table = events.TableFromWeights(cfg.Events.Weights)
	s.items = items.NewSystem(cfg.Items, s.rng)
	s.enemies = enemies.NewSystem(cfg.Enemies, s.rng)
	s.light = flashlight.NewController(cfg.Flashlight, s.rng)
	s.inventory = inventory.New(cfg.Items.InventorySlots)
	s.messages = state.NewMessageLog(cfg.Engine.MaxMessages)

	s.newGame()
	return s
}

// Update advances the game by one frame using the time elapsed since the last one.
// It does nothing once the game is over or won.
func (s *Session) Update(in input.Snapshot) {
	if s.gameState != state.Playing {
		return
	}

	now := s.clock.Now()
	dt := s.frame.tick(now, s.cfg.Engine.MaxFrameDelta)
	defer s.refresh(now)

	s.updateMovement(in, dt)
	s.updateHeartRate(dt)
	s.updateDebuff(now, dt)
	s.updateFlashlight(in, dt)

	s.enemies.Update(dt, s.player.Position, s.maze)
	s.checkEnemyHit(now)

	s.checkItemPickup(now)
	if s.gameState == state.Victory {
		return
	}

	s.sched.Run(now)
	s.updateSceneTimer(now, dt)
	s.checkGameOver()
}

// Restart throws the current game away and starts a new one
func (s *Session) Restart() {
	s.newGame()
}

// ID returns the identifier of the current game
func (s *Session) ID() string {
	return s.id
}

// State returns the phase of the game
func (s *Session) State() state.GameState {
	return s.gameState
}

// Player returns a copy of the player
func (s *Session) Player() state.Player {
	return s.player
}

// Scene returns a copy of the current scene
func (s *Session) Scene() scene.Scene {
	return s.scene
}

// Maze returns the maze of the current scene
func (s *Session) Maze() *world.Maze {
	return s.maze
}

// Config returns the configuration the session was built with
func (s *Session) Config() *config.Config {
	return s.cfg
}

// ToggleMute flips the music mute switch
func (s *Session) ToggleMute() {
	s.audio.ToggleMute()
}
