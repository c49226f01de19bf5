package domain

import "fmt"

// GainKind tags a Gain variant.
type GainKind string

const (
	GainFlatDamage                                       GainKind = "FlatDamage"
	GainPercentageIncreaseDamage                         GainKind = "PercentageIncreaseDamage"
	GainFlatItemResource                                 GainKind = "FlatItemResource"
	GainFlatResistanceReduction                          GainKind = "FlatResistanceReduction"
	GainPercentageIncreaseResistanceReduction            GainKind = "PercentageIncreaseResistanceReduction"
	GainFlatDamageAgainstHighestResistance               GainKind = "FlatDamageAgainstHighestResistance"
	GainPercentageIncreaseDamageAgainstHighestResistance GainKind = "PercentageIncreaseDamageAgainstHighestResistance"
	GainFlatDamageAgainstLowestResistance                GainKind = "FlatDamageAgainstLowestResistance"
	GainPercentageIncreaseDamageAgainstLowestResistance  GainKind = "PercentageIncreaseDamageAgainstLowestResistance"
	GainPercentageIncreaseTreasure                       GainKind = "PercentageIncreaseTreasure"
	GainFlatIncreaseRewardedItems                        GainKind = "FlatIncreaseRewardedItems"
)

// AllGainKinds lists every gain variant.
var AllGainKinds = []GainKind{
	GainFlatDamage,
	GainPercentageIncreaseDamage,
	GainFlatItemResource,
	GainFlatResistanceReduction,
	GainPercentageIncreaseResistanceReduction,
	GainFlatDamageAgainstHighestResistance,
	GainPercentageIncreaseDamageAgainstHighestResistance,
	GainFlatDamageAgainstLowestResistance,
	GainPercentageIncreaseDamageAgainstLowestResistance,
	GainPercentageIncreaseTreasure,
	GainFlatIncreaseRewardedItems,
}

// Gain is an effect a modifier applies once all of its costs hold.
type Gain struct {
	Kind         GainKind     `json:"kind"`
	DamageType   DamageType   `json:"damage_type,omitempty"`
	ResourceType ResourceType `json:"resource_type,omitempty"`
	TreasureType TreasureType `json:"treasure_type,omitempty"`
	Amount       uint64       `json:"amount"`
}

// String renders the gain as Kind(args).
func (g Gain) String() string {
	switch {
	case g.DamageType != "":
		return fmt.Sprintf("%s(%s, %d)", g.Kind, g.DamageType, g.Amount)
	case g.ResourceType != "":
		return fmt.Sprintf("%s(%s, %d)", g.Kind, g.ResourceType, g.Amount)
	case g.TreasureType != "":
		return fmt.Sprintf("%s(%s, %d)", g.Kind, g.TreasureType, g.Amount)
	default:
		return fmt.Sprintf("%s(%d)", g.Kind, g.Amount)
	}
}

func NewFlatDamage(t DamageType, amount uint64) Gain {
	return Gain{Kind: GainFlatDamage, DamageType: t, Amount: amount}
}

func NewPercentageIncreaseDamage(t DamageType, pct uint64) Gain {
	return Gain{Kind: GainPercentageIncreaseDamage, DamageType: t, Amount: pct}
}

func NewFlatItemResourceGain(r ResourceType, amount uint64) Gain {
	return Gain{Kind: GainFlatItemResource, ResourceType: r, Amount: amount}
}

func NewFlatResistanceReduction(t DamageType, amount uint64) Gain {
	return Gain{Kind: GainFlatResistanceReduction, DamageType: t, Amount: amount}
}

func NewPercentageIncreaseResistanceReduction(t DamageType, pct uint64) Gain {
	return Gain{Kind: GainPercentageIncreaseResistanceReduction, DamageType: t, Amount: pct}
}

func NewFlatDamageAgainstHighestResistance(amount uint64) Gain {
	return Gain{Kind: GainFlatDamageAgainstHighestResistance, Amount: amount}
}

func NewPercentageIncreaseDamageAgainstHighestResistance(pct uint64) Gain {
	return Gain{Kind: GainPercentageIncreaseDamageAgainstHighestResistance, Amount: pct}
}

func NewFlatDamageAgainstLowestResistance(amount uint64) Gain {
	return Gain{Kind: GainFlatDamageAgainstLowestResistance, Amount: amount}
}

func NewPercentageIncreaseDamageAgainstLowestResistance(pct uint64) Gain {
	return Gain{Kind: GainPercentageIncreaseDamageAgainstLowestResistance, Amount: pct}
}

func NewPercentageIncreaseTreasure(t TreasureType, pct uint64) Gain {
	return Gain{Kind: GainPercentageIncreaseTreasure, TreasureType: t, Amount: pct}
}

func NewFlatIncreaseRewardedItems(amount uint64) Gain {
	return Gain{Kind: GainFlatIncreaseRewardedItems, Amount: amount}
}
