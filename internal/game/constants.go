package game

// ==================== Rule Defaults ====================

const (
	DefaultStartingPlaces         = 3
	DefaultStartingEquipmentSlots = 1

	DefaultAddModifierGoldCost     = 10
	DefaultRerollGoldCost          = 10
	DefaultExpandPlacesGoldCost    = 20
	DefaultExpandEquipmentGoldCost = 50
	DefaultDifficultyGoldCost      = 5

	DefaultMaxPlaces         = 64
	DefaultMaxEquipmentSlots = 16
)

// MaxSimultaneousResistances bounds the simultaneous-resistance counts; a
// place cannot resist more types than exist.
const MaxSimultaneousResistances = 9

// ==================== Containers ====================

const (
	containerInventory = "inventory"
	containerEquipment = "equipment"
	containerPlaces    = "places"
)
