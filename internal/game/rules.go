package game

// Rules holds the tunable costs and limits of the world commands.
type Rules struct {
	StartingPlaces         int `env:"STARTING_PLACES" envDefault:"3" validate:"min=1"`
	StartingEquipmentSlots int `env:"STARTING_EQUIPMENT_SLOTS" envDefault:"1" validate:"min=1"`

	AddModifierGoldCost     uint64 `env:"ADD_MODIFIER_GOLD_COST" envDefault:"10"`
	RerollGoldCost          uint64 `env:"REROLL_GOLD_COST" envDefault:"10"`
	ExpandPlacesGoldCost    uint64 `env:"EXPAND_PLACES_GOLD_COST" envDefault:"20"`
	ExpandEquipmentGoldCost uint64 `env:"EXPAND_EQUIPMENT_GOLD_COST" envDefault:"50"`
	DifficultyGoldCost      uint64 `env:"DIFFICULTY_GOLD_COST" envDefault:"5"`

	MaxPlaces         int `env:"MAX_PLACES" envDefault:"64" validate:"gtefield=StartingPlaces"`
	MaxEquipmentSlots int `env:"MAX_EQUIPMENT_SLOTS" envDefault:"16" validate:"gtefield=StartingEquipmentSlots"`
}

// DefaultRules returns the rules a world uses when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		StartingPlaces:          DefaultStartingPlaces,
		StartingEquipmentSlots:  DefaultStartingEquipmentSlots,
		AddModifierGoldCost:     DefaultAddModifierGoldCost,
		RerollGoldCost:          DefaultRerollGoldCost,
		ExpandPlacesGoldCost:    DefaultExpandPlacesGoldCost,
		ExpandEquipmentGoldCost: DefaultExpandEquipmentGoldCost,
		DifficultyGoldCost:      DefaultDifficultyGoldCost,
		MaxPlaces:               DefaultMaxPlaces,
		MaxEquipmentSlots:       DefaultMaxEquipmentSlots,
	}
}
