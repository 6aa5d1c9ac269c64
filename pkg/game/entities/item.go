package entities

import (
	"darkmaze/pkg/engine/world"
)

// ItemType is the closed set of things that can lie on the maze floor
type ItemType int

const (
	ItemNone ItemType = iota

	// Utility items are consumed on pickup
	ItemBattery
	ItemMedkit

	// Collectible species go to the inventory and may trigger events
	ItemAncientCoin
	ItemCrystal
	ItemSkull
	ItemBook
	ItemPotion
	ItemArtifact
	ItemMushroom
	ItemFeather
	ItemStone
	ItemFlower
	ItemEye
	ItemTooth
)

// ItemInfo contains display information for each item type
type ItemInfo struct {
	NameKey string // i18n key
	Icon    string // single glyph for text renderers
}

// ItemTypes maps item types to their display information
var ItemTypes = map[ItemType]ItemInfo{
	ItemBattery:     {NameKey: "ITEM_BATTERY", Icon: "■"},
	ItemMedkit:      {NameKey: "ITEM_MEDKIT", Icon: "+"},
	ItemAncientCoin: {NameKey: "ITEM_ANCIENT_COIN", Icon: "$"},
	ItemCrystal:     {NameKey: "ITEM_CRYSTAL", Icon: "◆"},
	ItemSkull:       {NameKey: "ITEM_SKULL", Icon: "☠"},
	ItemBook:        {NameKey: "ITEM_BOOK", Icon: "▤"},
	ItemPotion:      {NameKey: "ITEM_POTION", Icon: "!"},
	ItemArtifact:    {NameKey: "ITEM_ARTIFACT", Icon: "※"},
	ItemMushroom:    {NameKey: "ITEM_MUSHROOM", Icon: "♣"},
	ItemFeather:     {NameKey: "ITEM_FEATHER", Icon: "~"},
	ItemStone:       {NameKey: "ITEM_STONE", Icon: "o"},
	ItemFlower:      {NameKey: "ITEM_FLOWER", Icon: "✿"},
	ItemEye:         {NameKey: "ITEM_EYE", Icon: "◉"},
	ItemTooth:       {NameKey: "ITEM_TOOTH", Icon: "v"},
}

// Species returns the twelve collectible types in declaration order
func Species() []ItemType {
	return []ItemType{
		ItemAncientCoin, ItemCrystal, ItemSkull, ItemBook, ItemPotion, ItemArtifact,
		ItemMushroom, ItemFeather, ItemStone, ItemFlower, ItemEye, ItemTooth,
	}
}

// IsUtility returns true for items consumed on pickup (battery, medkit)
func (t ItemType) IsUtility() bool {
	return t == ItemBattery || t == ItemMedkit
}

// IsSpecies returns true for collectibles
func (t ItemType) IsSpecies() bool {
	return t >= ItemAncientCoin && t <= ItemTooth
}

// String returns the i18n key of the item type
func (t ItemType) String() string {
	if info, ok := ItemTypes[t]; ok {
		return info.NameKey
	}
	return "ITEM_NONE"
}

// Item is something lying in the maze
type Item struct {
	ID          string
	Type        ItemType
	Position    world.Vector2
	IsCollected bool
	IsFake      bool // fake collectibles always trigger an event
}
