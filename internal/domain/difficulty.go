package domain

import (
	"maps"

	"github.com/osse101/placecraft/internal/utils"
)

// Difficulty bounds what places and item modifiers can roll.
// MinResistance and MaxResistance always share the same key set.
type Difficulty struct {
	MaxResistance              map[DamageType]uint64 `json:"max_resistance"`
	MinResistance              map[DamageType]uint64 `json:"min_resistance"`
	MaxSimultaneousResistances uint8                 `json:"max_simultaneous_resistances"`
	MinSimultaneousResistances uint8                 `json:"min_simultaneous_resistances"`
}

// GenesisDifficulty is the difficulty of a freshly created world.
func GenesisDifficulty() Difficulty {
	return Difficulty{
		MaxResistance:              map[DamageType]uint64{DamagePhysical: GenesisMaxResistance},
		MinResistance:              map[DamageType]uint64{DamagePhysical: GenesisMinResistance},
		MaxSimultaneousResistances: 1,
		MinSimultaneousResistances: 1,
	}
}

// Clone returns a deep copy.
func (d Difficulty) Clone() Difficulty {
	d.MaxResistance = maps.Clone(d.MaxResistance)
	d.MinResistance = maps.Clone(d.MinResistance)
	return d
}

// UnlockedTypes returns the union of both resistance key sets in
// declaration order.
func (d Difficulty) UnlockedTypes() []DamageType {
	var unlocked []DamageType
	for _, t := range AllDamageTypes {
		_, inMax := d.MaxResistance[t]
		_, inMin := d.MinResistance[t]
		if inMax || inMin {
			unlocked = append(unlocked, t)
		}
	}
	return unlocked
}

// MinResistanceTypes returns the keys of MinResistance in declaration order.
func (d Difficulty) MinResistanceTypes() []DamageType {
	return SortedKeys(d.MinResistance)
}

// SumMaxResistance adds every maximum resistance with saturation.
func (d Difficulty) SumMaxResistance() uint64 {
	return utils.SumValues(d.MaxResistance)
}

// SumMinResistance adds every minimum resistance with saturation.
func (d Difficulty) SumMinResistance() uint64 {
	return utils.SumValues(d.MinResistance)
}
