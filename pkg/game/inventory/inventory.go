// Package inventory holds the collectibles the player is carrying.
package inventory

import (
	"darkmaze/pkg/game/entities"
)

// DefaultSlots is the stock inventory size
const DefaultSlots = 4

// Slot is one inventory cell. An empty slot has Count 0 and Item ItemNone.
type Slot struct {
	Item  entities.ItemType
	Count int
}

// Empty reports whether the slot holds nothing
func (s Slot) Empty() bool {
	return s.Count == 0
}

// Inventory is a fixed number of stacking slots
type Inventory struct {
	slots []Slot
}

// New creates an inventory with n empty slots (at least one)
func New(n int) *Inventory {
	if n < 1 {
		n = 1
	}
	return &Inventory{slots: make([]Slot, n)}
}

// Add stacks t onto a slot already holding it, otherwise takes the first empty slot.
// Returns false, leaving the inventory untouched, when neither exists.
func (inv *Inventory) Add(t entities.ItemType) bool {
	for i := range inv.slots {
		if !inv.slots[i].Empty() && inv.slots[i].Item == t {
			inv.slots[i].Count++
			return true
		}
	}
	for i := range inv.slots {
		if inv.slots[i].Empty() {
			inv.slots[i] = Slot{Item: t, Count: 1}
			return true
		}
	}
	return false
}

// Count returns how many of t are carried
func (inv *Inventory) Count(t entities.ItemType) int {
	n := 0
	for _, s := range inv.slots {
		if s.Item == t {
			n += s.Count
		}
	}
	return n
}

// Slots returns a copy of the slots
func (inv *Inventory) Slots() []Slot {
	return append([]Slot(nil), inv.slots...)
}

// Clear empties every slot
func (inv *Inventory) Clear() {
	for i := range inv.slots {
		inv.slots[i] = Slot{}
	}
}
