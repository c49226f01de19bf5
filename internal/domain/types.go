package domain

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// DamageType is an element a place can resist and an item can deal.
type DamageType string

const (
	DamagePhysical   DamageType = "Physical"
	DamageFire       DamageType = "Fire"
	DamageFrost      DamageType = "Frost"
	DamageLightning  DamageType = "Lightning"
	DamageLight      DamageType = "Light"
	DamageDarkness   DamageType = "Darkness"
	DamageNature     DamageType = "Nature"
	DamageCorruption DamageType = "Corruption"
	DamageHoly       DamageType = "Holy"
)

// AllDamageTypes lists damage types in declaration order. Every ordered
// iteration over damage types uses this order.
var AllDamageTypes = []DamageType{
	DamagePhysical,
	DamageFire,
	DamageFrost,
	DamageLightning,
	DamageLight,
	DamageDarkness,
	DamageNature,
	DamageCorruption,
	DamageHoly,
}

// TreasureType is a reward currency.
type TreasureType string

const (
	TreasureGold TreasureType = "Gold"
)

// AllTreasureTypes lists treasure types in declaration order.
var AllTreasureTypes = []TreasureType{TreasureGold}

// ResourceType is a pool spent and refilled while resolving moves.
type ResourceType string

const (
	ResourceMana ResourceType = "Mana"
)

// AllResourceTypes lists resource types in declaration order.
var AllResourceTypes = []ResourceType{ResourceMana}

// Order returns the declaration index of t, or -1 when t is unknown.
func (t DamageType) Order() int {
	return slices.Index(AllDamageTypes, t)
}

// Valid reports whether t is a declared damage type.
func (t DamageType) Valid() bool {
	return t.Order() >= 0
}

// Order returns the declaration index of t, or -1 when t is unknown.
func (t TreasureType) Order() int {
	return slices.Index(AllTreasureTypes, t)
}

// Order returns the declaration index of t, or -1 when t is unknown.
func (t ResourceType) Order() int {
	return slices.Index(AllResourceTypes, t)
}

type ordered interface {
	~string
	Order() int
}

// SortedKeys returns the keys of m ordered by declaration order.
func SortedKeys[K ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		return a.Order() - b.Order()
	})
	return keys
}

func parseNamed[T ~string](kind, input string, all []T) (T, error) {
	// Casers carry state, so each call folds with its own.
	folder := cases.Fold()
	want := folder.String(strings.TrimSpace(input))
	for _, candidate := range all {
		if folder.String(string(candidate)) == want {
			return candidate, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", unknownKindErr(kind), input)
}

func unknownKindErr(kind string) error {
	switch kind {
	case "damage type":
		return ErrUnknownDamageType
	default:
		return ErrInvalidInput
	}
}

// ParseDamageType matches a damage type name case-insensitively.
func ParseDamageType(input string) (DamageType, error) {
	return parseNamed("damage type", input, AllDamageTypes)
}

// ParseTreasureType matches a treasure type name case-insensitively.
func ParseTreasureType(input string) (TreasureType, error) {
	return parseNamed("treasure type", input, AllTreasureTypes)
}

// ParseResourceType matches a resource type name case-insensitively.
func ParseResourceType(input string) (ResourceType, error) {
	return parseNamed("resource type", input, AllResourceTypes)
}
