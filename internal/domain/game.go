package domain

import (
	"fmt"
	"maps"
	"slices"

	"github.com/osse101/placecraft/internal/random"
)

// GameStatistics counts move outcomes. Only move resolution updates it.
type GameStatistics struct {
	MovesCount  uint64 `json:"moves_count"`
	Wins        uint64 `json:"wins"`
	Loses       uint64 `json:"loses"`
	WinsInARow  uint64 `json:"wins_in_a_row"`
	LosesInARow uint64 `json:"loses_in_a_row"`
}

// Game is the whole world of one player. It is owned by a single writer;
// every operation takes it by pointer and runs to completion.
type Game struct {
	Places     []Place                 `json:"places"`
	Equipment  []Slot                  `json:"equipment"`
	Inventory  []Slot                  `json:"inventory"`
	Difficulty Difficulty              `json:"difficulty"`
	Treasure   map[TreasureType]uint64 `json:"treasure"`
	Resources  map[ResourceType]uint64 `json:"resources"`
	Seed       random.Seed             `json:"seed"`
	RNG        *random.RNG             `json:"rng"`
	Statistics GameStatistics          `json:"statistics"`
}

// CurrentCraftingInfo snapshots the live difficulty and place count.
func (g *Game) CurrentCraftingInfo() CraftingInfo {
	return CraftingInfo{
		PossibleRolls: g.Difficulty.Clone(),
		PlacesCount:   len(g.Places),
	}
}

// Clone returns a deep copy, including the generator position.
func (g *Game) Clone() *Game {
	places := make([]Place, len(g.Places))
	for i, p := range g.Places {
		places[i] = p.Clone()
	}
	if g.Places == nil {
		places = nil
	}
	var rng *random.RNG
	if g.RNG != nil {
		rng = g.RNG.Clone()
	}
	return &Game{
		Places:     places,
		Equipment:  cloneSlots(g.Equipment),
		Inventory:  cloneSlots(g.Inventory),
		Difficulty: g.Difficulty.Clone(),
		Treasure:   maps.Clone(g.Treasure),
		Resources:  maps.Clone(g.Resources),
		Seed:       g.Seed,
		RNG:        rng,
		Statistics: g.Statistics,
	}
}

// InventoryItem returns the item at an inventory index.
func (g *Game) InventoryItem(index int) (Item, error) {
	return slotItem(g.Inventory, index, "inventory")
}

// EquipmentItem returns the item at an equipment index.
func (g *Game) EquipmentItem(index int) (Item, error) {
	return slotItem(g.Equipment, index, "equipment")
}

// EquippedItems returns the occupied equipment slots in order.
func (g *Game) EquippedItems() []Item {
	items := make([]Item, 0, len(g.Equipment))
	for _, s := range g.Equipment {
		if item, ok := s.Item(); ok {
			items = append(items, item)
		}
	}
	return items
}

// AddToInventory appends items as new slots, never reusing empty ones, so
// indexes handed out earlier stay valid.
func (g *Game) AddToInventory(items ...Item) {
	for _, item := range items {
		g.Inventory = append(g.Inventory, Occupied(item))
	}
}

// OccupiedInventoryIndexes lists the indexes of occupied inventory slots.
func (g *Game) OccupiedInventoryIndexes() []int {
	var idx []int
	for i, s := range g.Inventory {
		if !s.IsEmpty() {
			idx = append(idx, i)
		}
	}
	return slices.Clip(idx)
}

func slotItem(slots []Slot, index int, container string) (Item, error) {
	if index < 0 || index >= len(slots) {
		return Item{}, NewIndexError(container, index, len(slots))
	}
	item, ok := slots[index].Item()
	if !ok {
		return Item{}, NewEmptySlotError(container, index)
	}
	return item, nil
}

// SpendTreasure debits amount of t, or fails without touching the balance.
func (g *Game) SpendTreasure(t TreasureType, amount uint64) error {
	have := g.Treasure[t]
	if have < amount {
		return fmt.Errorf("%w: costs %d %s, you have %d", ErrInsufficientTreasure, amount, t, have)
	}
	if amount == 0 {
		return nil
	}
	g.Treasure[t] = have - amount
	return nil
}
