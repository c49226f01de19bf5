package move

// ==================== Item Report Effects ====================

// EffectGainsApplied is the effect of an item whose costs were all paid.
const EffectGainsApplied = "Costs paid and all gains executed."

// Cost failure formats. Every failure names the required amount and what
// was actually available.
const (
	FailMinItemResourceFmt  = "Requires at least %d %s, but only %d available."
	FailMaxItemResourceFmt  = "Requires at most %d %s, but %d available."
	FailMinAttackFmt        = "Requires at least %d %s damage, current damage: %s."
	FailMaxAttackFmt        = "Requires at most %d %s damage, current damage: %s."
	FailSumMinAttackFmt     = "Requires at least %d total damage, current damage: %s."
	FailSumMaxAttackFmt     = "Requires at most %d total damage, current damage: %s."
	FailMinResistanceFmt    = "Requires place %s resistance of at least %d, place has %d."
	FailMaxResistanceFmt    = "Requires place %s resistance of at most %d, place has %d."
	FailMinSumResistanceFmt = "Requires place total resistance of at least %d, place has %d."
	FailMaxSumResistanceFmt = "Requires place total resistance of at most %d, place has %d."
	FailIndexModulusFmt     = "Requires place index %d modulo %d to be one of %s, remainder is %d."
	FailMinWinsFmt          = "Requires at least %d wins in a row, current streak is %d."
	FailMaxWinsFmt          = "Requires at most %d wins in a row, current streak is %d."
	FailResourcePaymentFmt  = "Costs %d %s, but only %d available."
)

// ==================== Move Outcome ====================

const (
	ReasonPlaceOutOfRangeFmt = "place %d does not exist, there are %d places"
	ReasonNotOvercome        = "No item overcame the place's resistances."
)

// maxRewardedItems caps the items granted by one win.
const maxRewardedItems = 1 << 16
