package gameplay

import (
	"fmt"
	"log"
	"time"

	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/entities"
	"darkmaze/pkg/game/events"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/state"
)

// logMessage shows a banner message and clears it again after the configured time.
// A newer message replaces the banner and restarts the timer.
func logMessage(s *Session, now time.Time, msg string) {
	s.messages.AddMessage(msg)

	s.sched.Cancel(s.frame.messageTimer)
	s.frame.messageTimer = s.sched.After(now, config.Seconds(s.cfg.Events.MessageSeconds), s.messages.ClearCurrent)
}

// checkEnemyHit hurts the player when a ghost touches them, at most once per cooldown
func (s *Session) checkEnemyHit(now time.Time) {
	hit := s.enemies.CheckCollision(s.player.Position)
	if hit == nil {
		return
	}

	cooldown := config.Seconds(s.cfg.Enemies.HitCooldownSeconds)
	if s.frame.everHit && now.Sub(s.frame.lastHit) < cooldown {
		return
	}
	s.frame.lastHit = now
	s.frame.everHit = true

	s.player.AddHealth(-s.cfg.Enemies.Damage)
	s.player.AddLuck(-s.cfg.Enemies.LuckPenalty)
	s.player.AddSanity(-s.cfg.Sanity.GhostLoss)
	logMessage(s, now, i18n.Get("GHOST_HIT"))
}

// checkItemPickup collects at most one item under the player and applies it
func (s *Session) checkItemPickup(now time.Time) {
	item := s.items.CheckPickup(s.player.Position)
	if item == nil {
		return
	}

	switch {
	case item.Type == entities.ItemBattery:
		s.light.RechargeBattery(s.cfg.Items.BatteryRecharge)
		logMessage(s, now, i18n.Get("PICKUP_BATTERY"))
	case item.Type == entities.ItemMedkit:
		s.player.AddHealth(s.cfg.Items.MedkitHeal)
		logMessage(s, now, i18n.Get("PICKUP_MEDKIT"))
	case item.Type.IsSpecies():
		s.collect(item, now)
	}
}

// collect puts a collectible in the inventory and may fire a random event
func (s *Session) collect(item *entities.Item, now time.Time) {
	if s.inventory.Add(item.Type) {
		logMessage(s, now, fmt.Sprintf(i18n.Get("PICKUP_COLLECTIBLE"), i18n.Get(item.Type.String())))
	} else {
		s.messages.Record(i18n.Get("INVENTORY_FULL"))
	}
	s.scene.ItemsCollected++

	if !events.ShouldTrigger(item.IsFake, s.cfg.Events.TriggerChance, s.eventSrc) {
		return
	}
	kind := s.table.Roll(s.eventSrc)
	logMessage(s, now, eventMessage(kind, s.cfg.Events))
	s.applyEvent(kind, now)
}

// applyEvent carries out the effect of a random event
func (s *Session) applyEvent(kind events.Kind, now time.Time) {
	ec := s.cfg.Events
	p := &s.player

	switch kind {
	case events.EscapePortal:
		s.gameState = state.Victory
		log.Printf("Escape portal opened on level %d", s.scene.Level)
	case events.SpawnGhost:
		s.enemies.SpawnGhostNear(p.Position, s.cfg.Enemies.EventSpawnSpread)
	case events.Damage:
		p.AddHealth(-ec.HealthDelta)
	case events.SanityLoss:
		p.AddSanity(-ec.SanityDelta)
	case events.Curse:
		s.applyDebuff(now, ec.CurseFactor)
	case events.Heal:
		p.AddHealth(ec.HealthDelta)
	case events.SanityRestore:
		p.AddSanity(ec.SanityDelta)
	case events.LuckBoost:
		p.AddLuck(ec.LuckBoost)
	case events.Treasure:
		s.items.SpawnItem(entities.ItemMedkit, s.maze, false)
		s.items.SpawnItem(entities.ItemBattery, s.maze, false)
	case events.SceneTransition:
		s.beginSceneTransition(now)
	}
}

// eventMessage returns the localized banner of an event
func eventMessage(kind events.Kind, ec config.EventConfig) string {
	// Constant keys so the catalogue can be checked against the code
	switch kind {
	case events.EscapePortal:
		return i18n.Get("EVENT_ESCAPE_PORTAL")
	case events.SpawnGhost:
		return i18n.Get("EVENT_SPAWN_GHOST")
	case events.Damage:
		return fmt.Sprintf(i18n.Get("EVENT_DAMAGE"), int(ec.HealthDelta))
	case events.SanityLoss:
		return fmt.Sprintf(i18n.Get("EVENT_SANITY_LOSS"), int(ec.SanityDelta))
	case events.Curse:
		return i18n.Get("EVENT_CURSE")
	case events.Heal:
		return fmt.Sprintf(i18n.Get("EVENT_HEAL"), int(ec.HealthDelta))
	case events.SanityRestore:
		return fmt.Sprintf(i18n.Get("EVENT_SANITY_RESTORE"), int(ec.SanityDelta))
	case events.LuckBoost:
		return fmt.Sprintf(i18n.Get("EVENT_LUCK_BOOST"), int(ec.LuckBoost))
	case events.Treasure:
		return i18n.Get("EVENT_TREASURE")
	case events.SceneTransition:
		return i18n.Get("EVENT_SCENE_TRANSITION")
	default:
		return i18n.Get("EVENT_NOTHING")
	}
}
