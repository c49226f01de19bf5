// Package game implements the player commands on a world. Every function
// takes the world exclusively and either applies a command in full or
// returns a validation error without changing anything.
package game

import (
	"github.com/osse101/placecraft/internal/crafting"
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/inventory"
	"github.com/osse101/placecraft/internal/move"
	"github.com/osse101/placecraft/internal/place"
	"github.com/osse101/placecraft/internal/random"
)

// NewGame creates the genesis world for seed.
func NewGame(seed random.Seed, rules Rules) *domain.Game {
	rng := random.New(seed)
	difficulty := domain.GenesisDifficulty()

	placeCount := max(rules.StartingPlaces, 1)
	places := make([]domain.Place, 0, placeCount)
	for range placeCount {
		places = append(places, place.Generate(difficulty, placeCount, rng))
	}

	equipment := make([]domain.Slot, max(rules.StartingEquipmentSlots, 1))
	equipment[0] = domain.Occupied(StarterItem(difficulty, placeCount))

	return &domain.Game{
		Places:     places,
		Equipment:  equipment,
		Inventory:  []domain.Slot{},
		Difficulty: difficulty,
		Treasure:   map[domain.TreasureType]uint64{domain.TreasureGold: 0},
		Resources:  map[domain.ResourceType]uint64{domain.ResourceMana: 0},
		Seed:       seed,
		RNG:        rng,
	}
}

// StarterItem is the item every world starts with equipped: a single
// modifier with no costs dealing flat Physical damage.
func StarterItem(d domain.Difficulty, placeCount int) domain.Item {
	return domain.Item{
		Modifiers: []domain.Modifier{{
			Costs: []domain.Cost{},
			Gains: []domain.Gain{domain.NewFlatDamage(domain.DamagePhysical, domain.StarterDamage)},
		}},
		CraftingInfo: domain.CraftingInfo{PossibleRolls: d.Clone(), PlacesCount: placeCount},
	}
}

// Move resolves a move to the place at placeIndex.
func Move(g *domain.Game, placeIndex int) move.Report {
	return move.Resolve(g, placeIndex)
}

// AddModifier crafts a new modifier onto the inventory item at target.
func AddModifier(g *domain.Game, rules Rules, target int, sacrifices []inventory.IndexSpecifier) (crafting.Result, error) {
	return crafting.AddModifier(g, target, sacrifices, rules.AddModifierGoldCost)
}

// RerollModifier rerolls one modifier of the inventory item at target.
func RerollModifier(g *domain.Game, rules Rules, target, modIndex int, sacrifices []inventory.IndexSpecifier) (crafting.Result, error) {
	return crafting.RerollModifier(g, target, modIndex, sacrifices, rules.RerollGoldCost)
}
