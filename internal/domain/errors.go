package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgIndexOutOfRange      = "index out of range"
	ErrMsgEmptySlot            = "slot is empty"
	ErrMsgInsufficientTreasure = "insufficient treasure"
	ErrMsgInvalidSacrifice     = "invalid sacrifice"
	ErrMsgDifficultyBounds     = "difficulty bounds violated"
	ErrMsgAtMaximum            = "already at maximum"
	ErrMsgAtMinimum            = "already at minimum"
	ErrMsgUnknownDamageType    = "unknown damage type"
	ErrMsgInvalidInput         = "invalid input"
	ErrMsgUnknownCommand       = "unknown command"
	ErrMsgWorldNotFound        = "world not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrIndexOutOfRange      = errors.New(ErrMsgIndexOutOfRange)
	ErrEmptySlot            = errors.New(ErrMsgEmptySlot)
	ErrInsufficientTreasure = errors.New(ErrMsgInsufficientTreasure)
	ErrInvalidSacrifice     = errors.New(ErrMsgInvalidSacrifice)
	ErrDifficultyBounds     = errors.New(ErrMsgDifficultyBounds)
	ErrAtMaximum            = errors.New(ErrMsgAtMaximum)
	ErrAtMinimum            = errors.New(ErrMsgAtMinimum)
	ErrUnknownDamageType    = errors.New(ErrMsgUnknownDamageType)
	ErrInvalidInput         = errors.New(ErrMsgInvalidInput)
	ErrUnknownCommand       = errors.New(ErrMsgUnknownCommand)
	ErrWorldNotFound        = errors.New(ErrMsgWorldNotFound)
)

// NewIndexError reports index outside a container of length slots.
func NewIndexError(container string, index, length int) error {
	return fmt.Errorf("%w: %s index %d, %s has %d slots", ErrIndexOutOfRange, container, index, container, length)
}

// NewEmptySlotError reports an empty slot where an item was required.
func NewEmptySlotError(container string, index int) error {
	return fmt.Errorf("%w: %s slot %d", ErrEmptySlot, container, index)
}
