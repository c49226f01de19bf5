package command

// Verbs understood by the line protocol
const (
	VerbHelp    = "help"
	VerbState   = "state"
	VerbMove    = "move"
	VerbEquip   = "equip"
	VerbSwap    = "swap"
	VerbReorder = "reorder"
	VerbCompact = "compact"
	VerbCraft   = "craft"
	VerbReroll  = "reroll"
	VerbExpand  = "expand"
	VerbReduce  = "reduce"
	VerbSeed    = "seed"
	VerbSave    = "save"
)

// Targets of expand and reduce
const (
	TargetPlaces       = "places"
	TargetEquipment    = "equipment"
	TargetMax          = "max"
	TargetMin          = "min"
	TargetSimultaneous = "simultaneous"
)

// MaxSacrifices bounds how many index specifiers one craft may name
const MaxSacrifices = 64

// Usage lines returned by help, in the order they are listed
var Usages = []string{
	"help",
	"state",
	"move <place>",
	"equip <inventory> <slot>",
	"swap <slot> <slot>",
	"reorder <from> <to>",
	"compact",
	"craft <inventory> [sacrifice...]",
	"reroll <inventory> <modifier> <sacrifice>",
	"expand places|equipment",
	"expand max|min <damage> <amount>",
	"reduce max|min <damage> <amount>",
	"expand simultaneous max|min",
	"reduce simultaneous max|min",
	"seed",
	"save",
}

// Error messages
const (
	ErrMsgEmptyCommand  = "empty command"
	ErrMsgUsageFmt      = "usage: %s"
	ErrMsgNotANumberFmt = "argument %q is not a number"
	ErrMsgInternal      = "internal error"
)

// Log messages
const (
	LogMsgCommandExecuted = "Command executed"
	LogMsgCommandRejected = "Command rejected"
	LogMsgCommandFailed   = "Command failed"
	LogMsgPublishFailed   = "Failed to publish world event"
)
