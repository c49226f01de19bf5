package domain

// Genesis world values
const (
	GenesisMaxResistance = 2
	GenesisMinResistance = 1

	// StarterDamage is the flat Physical damage of the item every world starts with.
	StarterDamage = 1
)

// DefaultItemGain is how many items a won place grants before any
// FlatIncreaseRewardedItems gain.
const DefaultItemGain = 1
