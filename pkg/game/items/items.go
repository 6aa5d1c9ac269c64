// Package items places pickups in the maze and detects when the player reaches them.
package items

import (
	"fmt"
	"math"
	"math/rand"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/entities"
)

// System owns the items of the current scene
type System struct {
	cfg    config.ItemConfig
	rng    *rand.Rand
	items  []*entities.Item
	nextID int
}

// NewSystem creates an empty item system
func NewSystem(cfg config.ItemConfig, rng *rand.Rand) *System {
	return &System{cfg: cfg, rng: rng}
}

// GenerateItems replaces all items with a fresh scatter: batteries, then medkits,
// then collectibles of uniformly random species. IDs restart at item-0.
func (s *System) GenerateItems(m *world.Maze) []*entities.Item {
	s.scatter(m, func() bool { return false })
	return s.items
}

// GenerateItemsWithLuck scatters like GenerateItems, but each collectible is fake
// with probability FakeChance(luck).
func (s *System) GenerateItemsWithLuck(m *world.Maze, luck float64) []*entities.Item {
	chance := s.FakeChance(luck)
	s.scatter(m, func() bool { return s.rng.Float64() < chance })
	return s.items
}

func (s *System) scatter(m *world.Maze, fake func() bool) {
	s.items = nil
	s.nextID = 0

	for i := 0; i < s.cfg.BatteryCount; i++ {
		s.SpawnItem(entities.ItemBattery, m, false)
	}
	for i := 0; i < s.cfg.MedkitCount; i++ {
		s.SpawnItem(entities.ItemMedkit, m, false)
	}

	species := entities.Species()
	for i := 0; i < s.cfg.SpeciesCount; i++ {
		t := species[s.rng.Intn(len(species))]
		s.SpawnItem(t, m, fake())
	}
}

// FakeChance is the probability a collectible spawns fake: lower luck, more fakes
func (s *System) FakeChance(luck float64) float64 {
	return math.Max(0, (100-luck)/100*s.cfg.FakeItemMaxChance)
}

// SpawnItem adds one item at a random valid position
func (s *System) SpawnItem(t entities.ItemType, m *world.Maze, isFake bool) *entities.Item {
	return s.SpawnAt(t, s.RandomValidPosition(m), isFake)
}

// SpawnAt adds one item at an exact position
func (s *System) SpawnAt(t entities.ItemType, pos world.Vector2, isFake bool) *entities.Item {
	item := &entities.Item{
		ID:       fmt.Sprintf("item-%d", s.nextID),
		Type:     t,
		Position: pos,
		IsFake:   isFake,
	}
	s.nextID++
	s.items = append(s.items, item)
	return item
}

// RandomValidPosition picks a cell centre away from the start and end corners.
// Cells within one step (including diagonals) of either corner are rejected.
// After MaxPlacementAttempts failures the maze centre is used.
func (s *System) RandomValidPosition(m *world.Maze) world.Vector2 {
	for attempt := 0; attempt < s.cfg.MaxPlacementAttempts; attempt++ {
		x := s.rng.Intn(m.Width)
		y := s.rng.Intn(m.Height)
		if nearCorner(x, y, 0, 0) || nearCorner(x, y, m.Width-1, m.Height-1) {
			continue
		}
		return m.CellCenter(x, y)
	}
	return m.Center()
}

func nearCorner(x, y, cx, cy int) bool {
	return abs(x-cx) <= 1 && abs(y-cy) <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CheckPickup collects and returns the first uncollected item within PickupRadius of pos.
// At most one item is collected per call.
func (s *System) CheckPickup(pos world.Vector2) *entities.Item {
	for _, item := range s.items {
		if item.IsCollected {
			continue
		}
		if item.Position.Dist(pos) < s.cfg.PickupRadius {
			item.IsCollected = true
			return item
		}
	}
	return nil
}

// Items returns every item of the scene, collected or not
func (s *System) Items() []*entities.Item {
	return s.items
}

// Uncollected returns the items still on the floor
func (s *System) Uncollected() []*entities.Item {
	var out []*entities.Item
	for _, item := range s.items {
		if !item.IsCollected {
			out = append(out, item)
		}
	}
	return out
}

// CollectedCount counts collected items of type t, or of every type when t is ItemNone
func (s *System) CollectedCount(t entities.ItemType) int {
	n := 0
	for _, item := range s.items {
		if item.IsCollected && (t == entities.ItemNone || item.Type == t) {
			n++
		}
	}
	return n
}
