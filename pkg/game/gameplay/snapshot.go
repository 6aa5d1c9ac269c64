package gameplay

import (
	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/entities"
	"darkmaze/pkg/game/state"
)

// Snapshot copies the current frame for a renderer. Items and enemies the
// player cannot see are left out.
func (s *Session) Snapshot() *state.Snapshot {
	return s.snapshot(s.visibility.Visible)
}

// RevealedSnapshot is Snapshot with every item and enemy included, for debug dumps
func (s *Session) RevealedSnapshot() *state.Snapshot {
	return s.snapshot(func(world.Vector2) bool { return true })
}

func (s *Session) snapshot(include func(world.Vector2) bool) *state.Snapshot {
	snap := &state.Snapshot{
		SessionID:     s.id,
		Frame:         s.frame.frames,
		State:         s.gameState,
		Player:        s.player,
		Maze:          s.maze,
		Flashlight:    s.light.State(),
		Battery:       s.light.BatteryPercentage(),
		Scene:         s.scene,
		SceneName:     s.scene.Type.Name(),
		Transitioning: s.transitioning,
		Inventory:     s.inventory.Slots(),
		Visibility:    s.visibility,
		Tempo:         s.tempo,
		Message:       s.messages.Current(),
		Messages:      s.messages.Messages(),
		Debuffed:      s.frame.debuffed,
		FPS:           s.frame.fps,
		SanityLevels:  s.cfg.Sanity,
	}

	for _, item := range s.items.Uncollected() {
		if include(item.Position) {
			snap.Items = append(snap.Items, *item)
		}
	}
	for _, e := range s.enemies.Enemies() {
		if include(e.Position) {
			snap.Enemies = append(snap.Enemies, e.Clone())
		}
	}
	return snap
}

// CollectedTotal counts every collectible in the inventory
func (s *Session) CollectedTotal() int {
	total := 0
	for _, slot := range s.inventory.Slots() {
		total += slot.Count
	}
	return total
}

// ItemsRemaining counts items of type t still on the floor, or all of them for ItemNone
func (s *Session) ItemsRemaining(t entities.ItemType) int {
	n := 0
	for _, item := range s.items.Uncollected() {
		if t == entities.ItemNone || item.Type == t {
			n++
		}
	}
	return n
}
