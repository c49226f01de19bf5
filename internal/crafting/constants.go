package crafting

// ==================== Modifier Rolls ====================

// costKindDraws is the size of the cost-kind draw, one index per cost kind.
const costKindDraws = 14

// Win-streak requirement bounds. A streak requirement of n consumes
// n/MaxWinStreakRequirement of the cost budget.
const (
	MinWinStreakRequirement = 1
	MaxWinStreakRequirement = 10
)

// Index modulus bounds for PlaceLimitedByIndexModulus.
const (
	MinIndexModulus = 2
	MaxIndexModulus = 32
)

// Gain scaling. Percentages are expressed against the average maximum
// resistance of the crafting difficulty.
const (
	percentBase = 100

	// highest-resistance flat damage gets 3/4 of the bonus
	highestFlatNumerator   = 3
	highestFlatDenominator = 4

	// lowest-resistance gains get half
	lowestDivisor = 2

	// treasure percentage per bonus point, relative to scale
	treasurePercentBase = 50
)

// ==================== Crafting Commands ====================

// Error messages
const (
	ErrMsgSacrificeCountFmt = "item with %d modifiers needs %d sacrificed items, got %d"
	ErrMsgModifierIndexFmt  = "item has %d modifiers, no modifier %d"
)

// RerollSacrifices is the number of items a reroll consumes.
const RerollSacrifices = 1
