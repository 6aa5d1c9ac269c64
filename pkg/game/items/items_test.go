package items

import (
	"math"
	"math/rand"
	"testing"

	"darkmaze/pkg/engine/world"
	"darkmaze/pkg/game/config"
	"darkmaze/pkg/game/entities"
)

func newTestSystem(seed int64) (*System, *world.Maze) {
	cfg := config.Default()
	return NewSystem(cfg.Items, rand.New(rand.NewSource(seed))), world.NewMaze(12, 12, 32)
}

func TestGenerateItems_Counts(t *testing.T) {
	s, m := newTestSystem(1)
	items := s.GenerateItems(m)
	if len(items) != 19 {
		t.Fatalf("GenerateItems produced %d items, want 19", len(items))
	}
	for i, item := range items {
		switch {
		case i < 2 && item.Type != entities.ItemBattery:
			t.Errorf("item %d type %v, want battery", i, item.Type)
		case i >= 2 && i < 4 && item.Type != entities.ItemMedkit:
			t.Errorf("item %d type %v, want medkit", i, item.Type)
		case i >= 4 && !item.Type.IsSpecies():
			t.Errorf("item %d type %v, want a collectible species", i, item.Type)
		}
		if item.IsFake {
			t.Errorf("item %d is fake without a luck roll", i)
		}
	}
	if items[0].ID != "item-0" || items[18].ID != "item-18" {
		t.Errorf("IDs = %s..%s, want item-0..item-18", items[0].ID, items[18].ID)
	}
}

func TestGenerateItems_ResetsIDs(t *testing.T) {
	s, m := newTestSystem(2)
	s.GenerateItems(m)
	items := s.GenerateItems(m)
	if len(items) != 19 || items[0].ID != "item-0" {
		t.Errorf("second GenerateItems: %d items, first ID %s", len(items), items[0].ID)
	}
}

func TestRandomValidPosition_AvoidsCorners(t *testing.T) {
	s, m := newTestSystem(3)
	for i := 0; i < 500; i++ {
		p := s.RandomValidPosition(m)
		x, y := m.CellOf(p)
		if x <= 1 && y <= 1 {
			t.Fatalf("position %v in start corner cell (%d,%d)", p, x, y)
		}
		if x >= 10 && y >= 10 {
			t.Fatalf("position %v in end corner cell (%d,%d)", p, x, y)
		}
		if p != m.CellCenter(x, y) {
			t.Fatalf("position %v is not a cell centre", p)
		}
	}
}

func TestRandomValidPosition_Fallback(t *testing.T) {
	// Every cell of a 2x2 maze touches a corner
	s, _ := newTestSystem(4)
	m := world.NewMaze(2, 2, 32)
	if p := s.RandomValidPosition(m); p != world.Vec(48, 48) {
		t.Errorf("fallback position = %v, want (48,48)", p)
	}
}

func TestCheckPickup(t *testing.T) {
	s, _ := newTestSystem(5)
	a := s.SpawnAt(entities.ItemBattery, world.Vec(100, 100), false)
	b := s.SpawnAt(entities.ItemMedkit, world.Vec(110, 100), false)

	if got := s.CheckPickup(world.Vec(200, 200)); got != nil {
		t.Fatalf("CheckPickup far away = %v, want nil", got.ID)
	}
	if got := s.CheckPickup(world.Vec(105, 100)); got != a {
		t.Fatalf("first CheckPickup = %v, want the first item in slice order", got)
	}
	if got := s.CheckPickup(world.Vec(105, 100)); got != b {
		t.Fatalf("second CheckPickup = %v, want the second item", got)
	}
	if got := s.CheckPickup(world.Vec(105, 100)); got != nil {
		t.Errorf("third CheckPickup = %v, want nil", got.ID)
	}
	if s.CollectedCount(entities.ItemNone) != 2 || s.CollectedCount(entities.ItemBattery) != 1 {
		t.Errorf("CollectedCount all=%d battery=%d", s.CollectedCount(entities.ItemNone), s.CollectedCount(entities.ItemBattery))
	}
	if len(s.Uncollected()) != 0 {
		t.Errorf("Uncollected() = %d items, want 0", len(s.Uncollected()))
	}
}

func TestCheckPickup_RadiusIsStrict(t *testing.T) {
	s, _ := newTestSystem(6)
	s.SpawnAt(entities.ItemStone, world.Vec(0, 0), false)
	if s.CheckPickup(world.Vec(30, 0)) != nil {
		t.Error("item at exactly the pickup radius was collected")
	}
	if s.CheckPickup(world.Vec(29.9, 0)) == nil {
		t.Error("item just inside the pickup radius was not collected")
	}
}

func TestFakeChance(t *testing.T) {
	s, _ := newTestSystem(7)
	tests := []struct {
		luck float64
		want float64
	}{
		{100, 0},
		{80, 0.06},
		{0, 0.3},
		{120, 0},
	}
	for _, tt := range tests {
		if got := s.FakeChance(tt.luck); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FakeChance(%v) = %v, want %v", tt.luck, got, tt.want)
		}
	}
}

func TestGenerateItemsWithLuck_OnlyCollectiblesFake(t *testing.T) {
	s, m := newTestSystem(8)
	fakes := 0
	for round := 0; round < 50; round++ {
		for _, item := range s.GenerateItemsWithLuck(m, 0) {
			if item.IsFake {
				if item.Type.IsUtility() {
					t.Fatalf("utility item %s spawned fake", item.ID)
				}
				fakes++
			}
		}
	}
	// 750 collectibles at 30%
	if fakes < 150 || fakes > 300 {
		t.Errorf("fakes = %d over 750 collectibles, expected about 225", fakes)
	}
}
