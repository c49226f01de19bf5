// Package crafting rolls item modifiers and implements the commands that
// spend treasure and sacrificed items to add or reroll them.
package crafting

import (
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/random"
	"github.com/osse101/placecraft/internal/utils"
)

// budget carries the values every cost and gain roll is derived from.
type budget struct {
	rng         *random.RNG
	difficulty  domain.Difficulty
	placesCount int
	attack      []domain.DamageType
	sumMax      uint64
	maxCost     uint64
	accumulated uint64
	scale       uint64
}

func newBudget(info domain.CraftingInfo, rng *random.RNG) *budget {
	d := info.PossibleRolls
	sumMax := d.SumMaxResistance()
	return &budget{
		rng:         rng,
		difficulty:  d,
		placesCount: info.PlacesCount,
		attack:      d.MinResistanceTypes(),
		sumMax:      sumMax,
		maxCost:     sumMax / uint64(max(d.MaxSimultaneousResistances, 1)),
		scale:       max(sumMax/uint64(max(len(d.MaxResistance), 1)), 1),
	}
}

func (b *budget) remaining() uint64 {
	return utils.SatSub(b.maxCost, b.accumulated)
}

// RollModifier rolls one modifier under info.
//
// Costs are drawn first, each adding its contribution to a budget capped at
// the sum of maximum resistances divided by the simultaneous-resistance
// limit. The gains are then sized to spend exactly the accumulated cost.
func RollModifier(info domain.CraftingInfo, rng *random.RNG) domain.Modifier {
	b := newBudget(info, rng)
	return domain.Modifier{
		Costs: b.rollCosts(),
		Gains: b.rollGains(),
	}
}

func (b *budget) rollCosts() []domain.Cost {
	numberOfCosts := b.rng.RangeInclusive(0, int(b.difficulty.MaxSimultaneousResistances))
	costs := make([]domain.Cost, 0, numberOfCosts)
	for i := 0; i < numberOfCosts; i++ {
		if b.accumulated >= b.maxCost {
			continue
		}
		roller := costRollers[b.rng.IntN(costKindDraws)]
		cost, contribution := roller(b)
		b.accumulated = utils.SatAdd(b.accumulated, min(b.remaining(), contribution))
		costs = append(costs, cost)
	}
	return costs
}

func (b *budget) rollGains() []domain.Gain {
	d := b.difficulty
	minimumElements := min(len(d.MinResistance), int(d.MinSimultaneousResistances))
	maximumElements := max(min(len(d.MaxResistance), int(d.MaxSimultaneousResistances)), minimumElements)

	templates := gainTemplates(b.attack)
	gains := make([]domain.Gain, 0, maximumElements-minimumElements+1)
	leftover := b.accumulated
	for i := minimumElements; i <= maximumElements; i++ {
		var bonus uint64
		switch {
		case i == maximumElements:
			bonus = leftover
		case leftover == 0:
			// nothing left to split; the gain still rolls at its floor value
		default:
			bonus = b.rng.Uint64Inclusive(1, leftover)
		}
		leftover -= bonus

		tmpl := random.Choose(b.rng, templates)
		gains = append(gains, tmpl.instantiate(bonus, b.scale))
	}
	return gains
}
