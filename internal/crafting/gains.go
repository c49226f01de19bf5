package crafting

import (
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/utils"
)

// gainTemplate is a gain with its target fixed and its amount still to be
// derived from the share of the cost budget it receives.
type gainTemplate struct {
	base  domain.Gain
	value func(bonus, scale uint64) uint64
}

func (t gainTemplate) instantiate(bonus, scale uint64) domain.Gain {
	g := t.base
	g.Amount = max(t.value(bonus, scale), 1)
	return g
}

func flatValue(bonus, _ uint64) uint64 {
	return bonus
}

func percentValue(bonus, scale uint64) uint64 {
	return utils.MulDiv(bonus, percentBase, scale)
}

func highestFlatValue(bonus, _ uint64) uint64 {
	return utils.MulDiv(bonus, highestFlatNumerator, highestFlatDenominator)
}

func lowestFlatValue(bonus, _ uint64) uint64 {
	return bonus / lowestDivisor
}

func lowestPercentValue(bonus, scale uint64) uint64 {
	return percentValue(bonus, scale) / lowestDivisor
}

func treasurePercentValue(bonus, scale uint64) uint64 {
	return utils.MulDiv(bonus, treasurePercentBase, scale)
}

func rewardedItemsValue(bonus, scale uint64) uint64 {
	return bonus / scale
}

// gainTemplates lists every gain the roll engine can pick from, in a fixed
// order: per-type damage, percentage damage, resources, per-type reduction,
// percentage reduction, the four highest/lowest gains, treasure, items.
func gainTemplates(attack []domain.DamageType) []gainTemplate {
	templates := make([]gainTemplate, 0, 4*len(attack)+len(domain.AllResourceTypes)+len(domain.AllTreasureTypes)+5)
	for _, t := range attack {
		templates = append(templates, gainTemplate{domain.NewFlatDamage(t, 0), flatValue})
	}
	for _, t := range attack {
		templates = append(templates, gainTemplate{domain.NewPercentageIncreaseDamage(t, 0), percentValue})
	}
	for _, r := range domain.AllResourceTypes {
		templates = append(templates, gainTemplate{domain.NewFlatItemResourceGain(r, 0), flatValue})
	}
	for _, t := range attack {
		templates = append(templates, gainTemplate{domain.NewFlatResistanceReduction(t, 0), flatValue})
	}
	for _, t := range attack {
		templates = append(templates, gainTemplate{domain.NewPercentageIncreaseResistanceReduction(t, 0), percentValue})
	}
	templates = append(templates,
		gainTemplate{domain.NewFlatDamageAgainstHighestResistance(0), highestFlatValue},
		gainTemplate{domain.NewPercentageIncreaseDamageAgainstHighestResistance(0), percentValue},
		gainTemplate{domain.NewFlatDamageAgainstLowestResistance(0), lowestFlatValue},
		gainTemplate{domain.NewPercentageIncreaseDamageAgainstLowestResistance(0), lowestPercentValue},
	)
	for _, t := range domain.AllTreasureTypes {
		templates = append(templates, gainTemplate{domain.NewPercentageIncreaseTreasure(t, 0), treasurePercentValue})
	}
	templates = append(templates, gainTemplate{domain.NewFlatIncreaseRewardedItems(0), rewardedItemsValue})
	return templates
}
