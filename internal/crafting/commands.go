package crafting

import (
	"fmt"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/inventory"
	"github.com/osse101/placecraft/internal/utils"
)

// Result describes a crafted item after a successful command.
type Result struct {
	InventoryIndex int             `json:"inventory_index"`
	ModifierIndex  int             `json:"modifier_index"`
	Modifier       domain.Modifier `json:"modifier"`
	Sacrificed     []int           `json:"sacrificed"`
	GoldSpent      uint64          `json:"gold_spent"`
}

// AddModifier rolls a new modifier onto the inventory item at target.
//
// An item with n modifiers needs exactly n sacrifices, each carrying at
// least n modifiers, and goldPerModifier*(n+1) Gold. The modifier is rolled
// against the current difficulty, which also becomes the item's crafting
// info. Nothing changes when any of this fails.
func AddModifier(g *domain.Game, target int, sacrifices []inventory.IndexSpecifier, goldPerModifier uint64) (Result, error) {
	item, err := g.InventoryItem(target)
	if err != nil {
		return Result{}, err
	}
	n := len(item.Modifiers)
	if len(sacrifices) != n {
		return Result{}, fmt.Errorf("%w: "+ErrMsgSacrificeCountFmt, domain.ErrInvalidSacrifice, n, n, len(sacrifices))
	}
	sacrificed, err := inventory.Resolve(g, target, sacrifices, inventory.MinModifiers(n))
	if err != nil {
		return Result{}, err
	}
	cost := utils.SatMul(goldPerModifier, uint64(n)+1)
	if err := g.SpendTreasure(domain.TreasureGold, cost); err != nil {
		return Result{}, err
	}

	info := g.CurrentCraftingInfo()
	mod := RollModifier(info, g.RNG)
	item = item.Clone()
	item.CraftingInfo = info
	item.Modifiers = append(item.Modifiers, mod)
	g.Inventory[target] = domain.Occupied(item)
	consume(g, sacrificed)

	return Result{
		InventoryIndex: target,
		ModifierIndex:  n,
		Modifier:       mod,
		Sacrificed:     sacrificed,
		GoldSpent:      cost,
	}, nil
}

// RerollModifier replaces modifier modIndex of the inventory item at target
// with a fresh roll against the current difficulty. It consumes one
// sacrifice with at least one modifier and gold Gold.
func RerollModifier(g *domain.Game, target, modIndex int, sacrifices []inventory.IndexSpecifier, gold uint64) (Result, error) {
	item, err := g.InventoryItem(target)
	if err != nil {
		return Result{}, err
	}
	if modIndex < 0 || modIndex >= len(item.Modifiers) {
		return Result{}, fmt.Errorf("%w: "+ErrMsgModifierIndexFmt, domain.ErrIndexOutOfRange, len(item.Modifiers), modIndex)
	}
	if len(sacrifices) != RerollSacrifices {
		return Result{}, fmt.Errorf("%w: reroll needs %d sacrificed item, got %d",
			domain.ErrInvalidSacrifice, RerollSacrifices, len(sacrifices))
	}
	sacrificed, err := inventory.Resolve(g, target, sacrifices, inventory.MinModifiers(1))
	if err != nil {
		return Result{}, err
	}
	if err := g.SpendTreasure(domain.TreasureGold, gold); err != nil {
		return Result{}, err
	}

	info := g.CurrentCraftingInfo()
	mod := RollModifier(info, g.RNG)
	item = item.Clone()
	item.CraftingInfo = info
	item.Modifiers[modIndex] = mod
	g.Inventory[target] = domain.Occupied(item)
	consume(g, sacrificed)

	return Result{
		InventoryIndex: target,
		ModifierIndex:  modIndex,
		Modifier:       mod,
		Sacrificed:     sacrificed,
		GoldSpent:      gold,
	}, nil
}

func consume(g *domain.Game, indexes []int) {
	for _, i := range indexes {
		g.Inventory[i] = domain.EmptySlot()
	}
}
