package crafting

import (
	"slices"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/random"
	"github.com/osse101/placecraft/internal/utils"
)

// costRoller builds one cost and returns how much of the budget it
// consumes. Minimum requirements consume the rolled value; maximum
// requirements consume the headroom they take away.
type costRoller func(b *budget) (domain.Cost, uint64)

// costRollers is indexed by the cost-kind draw.
var costRollers = [costKindDraws]costRoller{
	0:  rollFlatItemResource,
	1:  rollFlatMinItemResourceRequirement,
	2:  rollFlatMaxItemResourceRequirement,
	3:  withAttackType(rollFlatMinAttackRequirement),
	4:  withAttackType(rollFlatMaxAttackRequirement),
	5:  rollFlatSumMinAttackRequirement,
	6:  rollFlatSumMaxAttackRequirement,
	7:  withAttackType(rollFlatMinResistanceRequirement),
	8:  withAttackType(rollFlatMaxResistanceRequirement),
	9:  rollFlatMinSumResistanceRequirement,
	10: rollFlatMaxSumResistanceRequirement,
	11: rollPlaceLimitedByIndexModulus,
	12: rollMinWinsInARow,
	13: rollMaxWinsInARow,
}

// withAttackType picks the damage type for a typed cost. A difficulty
// without damage types has nothing to pick from and falls back to a
// resource cost.
func withAttackType(roll func(b *budget, t domain.DamageType) (domain.Cost, uint64)) costRoller {
	return func(b *budget) (domain.Cost, uint64) {
		if len(b.attack) == 0 {
			return rollFlatItemResource(b)
		}
		return roll(b, random.Choose(b.rng, b.attack))
	}
}

func rollFlatItemResource(b *budget) (domain.Cost, uint64) {
	amount := b.rng.Uint64Inclusive(1, max(b.remaining(), 1))
	return domain.NewFlatItemResource(domain.ResourceMana, amount), amount
}

func rollFlatMinItemResourceRequirement(b *budget) (domain.Cost, uint64) {
	amount := b.rng.Uint64Inclusive(1, max(b.maxCost, 1))
	return domain.NewFlatMinItemResourceRequirement(domain.ResourceMana, amount), amount
}

func rollFlatMaxItemResourceRequirement(b *budget) (domain.Cost, uint64) {
	amount := b.rng.Uint64Inclusive(0, b.maxCost)
	return domain.NewFlatMaxItemResourceRequirement(domain.ResourceMana, amount), b.maxCost - amount
}

func rollFlatMinAttackRequirement(b *budget, t domain.DamageType) (domain.Cost, uint64) {
	amount := b.rng.Uint64Inclusive(0, b.difficulty.MaxResistance[t])
	return domain.NewFlatMinAttackRequirement(t, amount), amount
}

func rollFlatMaxAttackRequirement(b *budget, t domain.DamageType) (domain.Cost, uint64) {
	lo, hi := b.resistanceBounds(t)
	amount := b.rng.Uint64Inclusive(lo, hi)
	return domain.NewFlatMaxAttackRequirement(t, amount), utils.SatSub(hi, amount)
}

func rollFlatSumMinAttackRequirement(b *budget) (domain.Cost, uint64) {
	amount := b.rng.Uint64Inclusive(0, b.sumMax)
	return domain.NewFlatSumMinAttackRequirement(amount), amount
}

func rollFlatSumMaxAttackRequirement(b *budget) (domain.Cost, uint64) {
	amount := b.rng.Uint64Inclusive(0, b.sumMax)
	return domain.NewFlatSumMaxAttackRequirement(amount), b.sumMax - amount
}

func rollFlatMinResistanceRequirement(b *budget, t domain.DamageType) (domain.Cost, uint64) {
	lo, hi := b.resistanceBounds(t)
	amount := b.rng.Uint64Inclusive(lo, hi)
	return domain.NewFlatMinResistanceRequirement(t, amount), utils.SatSub(amount, lo)
}

func rollFlatMaxResistanceRequirement(b *budget, t domain.DamageType) (domain.Cost, uint64) {
	lo, hi := b.resistanceBounds(t)
	amount := b.rng.Uint64Inclusive(lo, hi)
	return domain.NewFlatMaxResistanceRequirement(t, amount), utils.SatSub(hi, amount)
}

func rollFlatMinSumResistanceRequirement(b *budget) (domain.Cost, uint64) {
	amount := b.rng.Uint64Inclusive(0, b.sumMax)
	return domain.NewFlatMinSumResistanceRequirement(amount), amount
}

func rollFlatMaxSumResistanceRequirement(b *budget) (domain.Cost, uint64) {
	amount := b.rng.Uint64Inclusive(0, b.sumMax)
	return domain.NewFlatMaxSumResistanceRequirement(amount), b.sumMax - amount
}

func rollPlaceLimitedByIndexModulus(b *budget) (domain.Cost, uint64) {
	upper := min(max(b.placesCount, MinIndexModulus), MaxIndexModulus)
	modulus := b.rng.RangeInclusive(MinIndexModulus, upper)
	allowed := b.rng.RangeInclusive(1, modulus-1)

	// partial Fisher-Yates over the possible remainders
	pool := make([]uint64, modulus)
	for i := range pool {
		pool[i] = uint64(i)
	}
	for i := 0; i < allowed; i++ {
		j := b.rng.Range(i, modulus)
		pool[i], pool[j] = pool[j], pool[i]
	}
	remainders := slices.Clone(pool[:allowed])
	slices.Sort(remainders)

	contribution := utils.MulDiv(b.maxCost, uint64(modulus-allowed), uint64(modulus))
	return domain.NewPlaceLimitedByIndexModulus(uint64(modulus), remainders), contribution
}

func rollMinWinsInARow(b *budget) (domain.Cost, uint64) {
	n := b.rng.Uint64Inclusive(MinWinStreakRequirement, MaxWinStreakRequirement)
	return domain.NewMinWinsInARow(n), utils.MulDiv(b.maxCost, n, MaxWinStreakRequirement)
}

func rollMaxWinsInARow(b *budget) (domain.Cost, uint64) {
	n := b.rng.Uint64Inclusive(0, MaxWinStreakRequirement)
	return domain.NewMaxWinsInARow(n), utils.MulDiv(b.maxCost, MaxWinStreakRequirement-n, MaxWinStreakRequirement)
}

// resistanceBounds returns [min, max] for t, tolerating a max below min.
func (b *budget) resistanceBounds(t domain.DamageType) (uint64, uint64) {
	lo := b.difficulty.MinResistance[t]
	hi := max(b.difficulty.MaxResistance[t], lo)
	return lo, hi
}
