package game

import (
	"fmt"
	"slices"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/place"
	"github.com/osse101/placecraft/internal/utils"
)

// Equip swaps the inventory slot with the equipment slot. Either side may
// be empty, but not both.
func Equip(g *domain.Game, inventoryIndex, equipmentIndex int) error {
	if err := checkIndex(containerInventory, inventoryIndex, len(g.Inventory)); err != nil {
		return err
	}
	if err := checkIndex(containerEquipment, equipmentIndex, len(g.Equipment)); err != nil {
		return err
	}
	if g.Inventory[inventoryIndex].IsEmpty() && g.Equipment[equipmentIndex].IsEmpty() {
		return fmt.Errorf("%w: inventory slot %d and equipment slot %d are both empty",
			domain.ErrEmptySlot, inventoryIndex, equipmentIndex)
	}
	g.Inventory[inventoryIndex], g.Equipment[equipmentIndex] = g.Equipment[equipmentIndex], g.Inventory[inventoryIndex]
	return nil
}

// SwapEquipment exchanges two equipment slots, changing the order items
// are evaluated in.
func SwapEquipment(g *domain.Game, i, j int) error {
	if err := checkIndex(containerEquipment, i, len(g.Equipment)); err != nil {
		return err
	}
	if err := checkIndex(containerEquipment, j, len(g.Equipment)); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("%w: equipment slot %d cannot be swapped with itself", domain.ErrInvalidInput, i)
	}
	g.Equipment[i], g.Equipment[j] = g.Equipment[j], g.Equipment[i]
	return nil
}

// MoveInventory moves the slot at from to position to, shifting the slots
// in between.
func MoveInventory(g *domain.Game, from, to int) error {
	if err := checkIndex(containerInventory, from, len(g.Inventory)); err != nil {
		return err
	}
	if err := checkIndex(containerInventory, to, len(g.Inventory)); err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%w: inventory slot %d is already at %d", domain.ErrInvalidInput, from, to)
	}
	slot := g.Inventory[from]
	g.Inventory = slices.Delete(g.Inventory, from, from+1)
	g.Inventory = slices.Insert(g.Inventory, to, slot)
	return nil
}

// CompactInventory drops every empty inventory slot and returns how many
// were removed.
func CompactInventory(g *domain.Game) int {
	before := len(g.Inventory)
	g.Inventory = slices.DeleteFunc(g.Inventory, domain.Slot.IsEmpty)
	return before - len(g.Inventory)
}

// ExpandPlaces buys one more place. The price grows with the number of
// places the world already has.
func ExpandPlaces(g *domain.Game, rules Rules) (domain.Place, uint64, error) {
	if len(g.Places) >= rules.MaxPlaces {
		return domain.Place{}, 0, fmt.Errorf("%w: %d places", domain.ErrAtMaximum, len(g.Places))
	}
	cost := utils.SatMul(rules.ExpandPlacesGoldCost, uint64(len(g.Places)))
	if err := g.SpendTreasure(domain.TreasureGold, cost); err != nil {
		return domain.Place{}, 0, err
	}
	p := place.Generate(g.Difficulty, len(g.Places)+1, g.RNG)
	g.Places = append(g.Places, p)
	return p.Clone(), cost, nil
}

// ExpandEquipmentSlots buys one more empty equipment slot.
func ExpandEquipmentSlots(g *domain.Game, rules Rules) (uint64, error) {
	if len(g.Equipment) >= rules.MaxEquipmentSlots {
		return 0, fmt.Errorf("%w: %d equipment slots", domain.ErrAtMaximum, len(g.Equipment))
	}
	cost := utils.SatMul(rules.ExpandEquipmentGoldCost, uint64(len(g.Equipment)))
	if err := g.SpendTreasure(domain.TreasureGold, cost); err != nil {
		return 0, err
	}
	g.Equipment = append(g.Equipment, domain.EmptySlot())
	return cost, nil
}

func checkIndex(container string, index, length int) error {
	if index < 0 || index >= length {
		return domain.NewIndexError(container, index, length)
	}
	return nil
}
