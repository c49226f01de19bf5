package domain

import "maps"

// Place is an encounter: per-damage-type resistances to overcome and the
// treasure paid out when they are.
type Place struct {
	Resistance              map[DamageType]uint64   `json:"resistance"`
	Reward                  map[TreasureType]uint64 `json:"reward"`
	ItemRewardPossibleRolls Difficulty              `json:"item_reward_possible_rolls"`
}

// Clone returns a deep copy.
func (p Place) Clone() Place {
	return Place{
		Resistance:              maps.Clone(p.Resistance),
		Reward:                  maps.Clone(p.Reward),
		ItemRewardPossibleRolls: p.ItemRewardPossibleRolls.Clone(),
	}
}

// HighestResistance returns the damage type with the largest resistance.
// Ties go to the earliest declared type. ok is false for a place without
// resistances.
func (p Place) HighestResistance() (DamageType, bool) {
	return p.extremeResistance(func(candidate, best uint64) bool { return candidate > best })
}

// LowestResistance returns the damage type with the smallest resistance.
// Ties go to the earliest declared type.
func (p Place) LowestResistance() (DamageType, bool) {
	return p.extremeResistance(func(candidate, best uint64) bool { return candidate < best })
}

func (p Place) extremeResistance(better func(candidate, best uint64) bool) (DamageType, bool) {
	var (
		best  DamageType
		value uint64
		found bool
	)
	for _, t := range SortedKeys(p.Resistance) {
		v := p.Resistance[t]
		if !found || better(v, value) {
			best, value, found = t, v, true
		}
	}
	return best, found
}
