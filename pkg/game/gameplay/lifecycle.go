package gameplay

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/scene"
	"darkmaze/pkg/game/state"
)

// newGame resets every subsystem and builds the first scene
func (s *Session) newGame() {
	now := s.clock.Now()

	s.id = uuid.NewString()
	s.sched.Clear()
	s.frame = newFrameContext(now)
	s.messages.Reset()
	s.inventory.Clear()
	s.light.Reset()

	s.scene = scene.New()
	s.nextSceneTime = scene.NextSceneDelay(s.rng, s.cfg.Scenes.MinSeconds, s.cfg.Scenes.MaxSeconds)
	s.transitioning = false
	s.audio.OnSceneTransition(s.scene.Type)
	s.enemies.SetSpeed(scene.Describe(s.scene.Type).GhostSpeed)

	s.player = state.NewPlayer(world.Vector2{}, s.cfg)
	s.buildScene()
	s.gameState = state.Playing

	log.Printf("Game %s started with %s (%dx%d)", s.id, s.generator.Name(), s.maze.Width, s.maze.Height)
	s.refresh(now)
}

// buildScene generates a maze, fills it and puts the player at its start.
// Luck starts over with every maze; fake items are rolled with the fresh value.
func (s *Session) buildScene() {
	mc := s.cfg.Maze
	s.maze = s.generator.Generate(mc.Width, mc.Height, mc.CellSize)
	s.player.Luck = s.cfg.Luck.Initial
	s.items.GenerateItemsWithLuck(s.maze, s.player.Luck)
	s.enemies.GenerateEnemies(s.maze)

	s.player.Position = s.maze.StartPos
	s.player.Velocity = world.Vector2{}
}

// updateSceneTimer starts a scene change once the player has spent long enough in this one.
// A scene entered earlier in this frame starts counting on the next one.
func (s *Session) updateSceneTimer(now time.Time, dt float64) {
	if s.transitioning && s.frame.transitionStart.Equal(now) {
		return
	}
	s.scene.TimeInScene += dt
	if !s.transitioning && s.scene.TimeInScene >= s.nextSceneTime {
		s.beginSceneTransition(now)
	}
}

// beginSceneTransition moves to the next level at once and swaps the maze in
// after the transition delay. A request while one is pending advances again
// and restarts the delay.
func (s *Session) beginSceneTransition(now time.Time) {
	t := scene.RandomType(s.rng)
	s.scene.Advance(t)
	s.nextSceneTime = scene.NextSceneDelay(s.rng, s.cfg.Scenes.MinSeconds, s.cfg.Scenes.MaxSeconds)
	s.transitioning = true
	s.frame.transitionStart = now

	s.audio.OnSceneTransition(t)
	s.enemies.SetSpeed(scene.Describe(t).GhostSpeed)

	s.sched.Cancel(s.frame.transitionTimer)
	s.frame.transitionTimer = s.sched.After(now, config.Seconds(s.cfg.Scenes.TransitionSeconds), s.completeSceneTransition)

	log.Printf("Scene change to level %d (%s), next in %.1fs", s.scene.Level, t, s.nextSceneTime)
}

// completeSceneTransition regenerates the scene once the transition delay is over
func (s *Session) completeSceneTransition() {
	s.transitioning = false
	s.buildScene()
	logMessage(s, s.frame.lastFrame, fmt.Sprintf(i18n.Get("SCENE_ENTER"), s.scene.Level, s.scene.Type.Name()))
}

// checkGameOver ends the game when the player has no health left
func (s *Session) checkGameOver() {
	if !s.player.IsDead() {
		return
	}
	s.gameState = state.GameOver
	s.sched.Clear()
	log.Printf("Game %s over on level %d", s.id, s.scene.Level)
}
