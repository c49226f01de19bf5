// Package place generates encounters from the world difficulty.
package place

import (
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/random"
	"github.com/osse101/placecraft/internal/utils"
)

// Generate rolls a new place under d. placeCount is the number of places the
// world currently has; more places dilute the difficulty part of the reward.
//
// The draw order is fixed: the resistance count, then for each pick the
// candidate type, followed by its value when the type is new.
func Generate(d domain.Difficulty, placeCount int, rng *random.RNG) domain.Place {
	unlocked := len(d.UnlockedTypes())
	lo := min(unlocked, int(d.MinSimultaneousResistances))
	hi := min(unlocked, int(d.MaxSimultaneousResistances))
	resistanceNumbers := rng.RangeInclusive(lo, hi)

	candidates := d.MinResistanceTypes()
	resistanceNumbers = min(resistanceNumbers, len(candidates))

	resistance := make(map[domain.DamageType]uint64, resistanceNumbers)
	var resistanceSum uint64
	for len(resistance) < resistanceNumbers {
		t := random.Choose(rng, candidates)
		if _, taken := resistance[t]; taken {
			continue
		}
		value := rng.Uint64Inclusive(d.MinResistance[t], d.MaxResistance[t])
		resistance[t] = value
		resistanceSum = utils.SatAdd(resistanceSum, value)
	}

	return domain.Place{
		Resistance:              resistance,
		Reward:                  map[domain.TreasureType]uint64{domain.TreasureGold: Reward(d, placeCount, resistanceSum, len(resistance))},
		ItemRewardPossibleRolls: d.Clone(),
	}
}

// Reward computes the Gold paid by a place whose rolled resistances add up
// to resistanceSum over rolled types.
func Reward(d domain.Difficulty, placeCount int, resistanceSum uint64, rolled int) uint64 {
	fromResistance := utils.SatMul(resistanceSum/uint64(len(domain.AllDamageTypes)), uint64(rolled))

	values := len(d.MinResistance) + len(d.MaxResistance)
	total := utils.SatAdd(d.SumMinResistance(), d.SumMaxResistance())
	average := total / uint64(max(values, 1))
	fromDifficulty := max(average/uint64(max(placeCount, 1)), 1)

	return utils.SatAdd(fromResistance, fromDifficulty)
}
