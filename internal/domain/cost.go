package domain

import (
	"fmt"
	"slices"
	"strings"
)

// CostKind tags a Cost variant.
type CostKind string

const (
	CostFlatItemResource                CostKind = "FlatItemResource"
	CostFlatMinItemResourceRequirement  CostKind = "FlatMinItemResourceRequirement"
	CostFlatMaxItemResourceRequirement  CostKind = "FlatMaxItemResourceRequirement"
	CostFlatMinAttackRequirement        CostKind = "FlatMinAttackRequirement"
	CostFlatMaxAttackRequirement        CostKind = "FlatMaxAttackRequirement"
	CostFlatSumMinAttackRequirement     CostKind = "FlatSumMinAttackRequirement"
	CostFlatSumMaxAttackRequirement     CostKind = "FlatSumMaxAttackRequirement"
	CostFlatMinResistanceRequirement    CostKind = "FlatMinResistanceRequirement"
	CostFlatMaxResistanceRequirement    CostKind = "FlatMaxResistanceRequirement"
	CostFlatMinSumResistanceRequirement CostKind = "FlatMinSumResistanceRequirement"
	CostFlatMaxSumResistanceRequirement CostKind = "FlatMaxSumResistanceRequirement"
	CostPlaceLimitedByIndexModulus      CostKind = "PlaceLimitedByIndexModulus"
	CostMinWinsInARow                   CostKind = "MinWinsInARow"
	CostMaxWinsInARow                   CostKind = "MaxWinsInARow"
)

// AllCostKinds lists every cost variant.
var AllCostKinds = []CostKind{
	CostFlatItemResource,
	CostFlatMinItemResourceRequirement,
	CostFlatMaxItemResourceRequirement,
	CostFlatMinAttackRequirement,
	CostFlatMaxAttackRequirement,
	CostFlatSumMinAttackRequirement,
	CostFlatSumMaxAttackRequirement,
	CostFlatMinResistanceRequirement,
	CostFlatMaxResistanceRequirement,
	CostFlatMinSumResistanceRequirement,
	CostFlatMaxSumResistanceRequirement,
	CostPlaceLimitedByIndexModulus,
	CostMinWinsInARow,
	CostMaxWinsInARow,
}

// Cost is an activation requirement on a modifier. Kind selects which of
// the payload fields are meaningful.
type Cost struct {
	Kind         CostKind     `json:"kind"`
	DamageType   DamageType   `json:"damage_type,omitempty"`
	ResourceType ResourceType `json:"resource_type,omitempty"`
	Amount       uint64       `json:"amount"`
	Modulus      uint64       `json:"modulus,omitempty"`
	Remainders   []uint64     `json:"remainders,omitempty"`
}

// Clone returns a deep copy.
func (c Cost) Clone() Cost {
	c.Remainders = slices.Clone(c.Remainders)
	return c
}

// String renders the cost as Kind(args).
func (c Cost) String() string {
	switch c.Kind {
	case CostFlatItemResource, CostFlatMinItemResourceRequirement, CostFlatMaxItemResourceRequirement:
		return fmt.Sprintf("%s(%s, %d)", c.Kind, c.ResourceType, c.Amount)
	case CostFlatMinAttackRequirement, CostFlatMaxAttackRequirement,
		CostFlatMinResistanceRequirement, CostFlatMaxResistanceRequirement:
		return fmt.Sprintf("%s(%s, %d)", c.Kind, c.DamageType, c.Amount)
	case CostPlaceLimitedByIndexModulus:
		parts := make([]string, len(c.Remainders))
		for i, r := range c.Remainders {
			parts[i] = fmt.Sprint(r)
		}
		return fmt.Sprintf("%s(%d, [%s])", c.Kind, c.Modulus, strings.Join(parts, ", "))
	default:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Amount)
	}
}

func NewFlatItemResource(r ResourceType, amount uint64) Cost {
	return Cost{Kind: CostFlatItemResource, ResourceType: r, Amount: amount}
}

func NewFlatMinItemResourceRequirement(r ResourceType, amount uint64) Cost {
	return Cost{Kind: CostFlatMinItemResourceRequirement, ResourceType: r, Amount: amount}
}

func NewFlatMaxItemResourceRequirement(r ResourceType, amount uint64) Cost {
	return Cost{Kind: CostFlatMaxItemResourceRequirement, ResourceType: r, Amount: amount}
}

func NewFlatMinAttackRequirement(t DamageType, amount uint64) Cost {
	return Cost{Kind: CostFlatMinAttackRequirement, DamageType: t, Amount: amount}
}

func NewFlatMaxAttackRequirement(t DamageType, amount uint64) Cost {
	return Cost{Kind: CostFlatMaxAttackRequirement, DamageType: t, Amount: amount}
}

func NewFlatSumMinAttackRequirement(amount uint64) Cost {
	return Cost{Kind: CostFlatSumMinAttackRequirement, Amount: amount}
}

func NewFlatSumMaxAttackRequirement(amount uint64) Cost {
	return Cost{Kind: CostFlatSumMaxAttackRequirement, Amount: amount}
}

func NewFlatMinResistanceRequirement(t DamageType, amount uint64) Cost {
	return Cost{Kind: CostFlatMinResistanceRequirement, DamageType: t, Amount: amount}
}

func NewFlatMaxResistanceRequirement(t DamageType, amount uint64) Cost {
	return Cost{Kind: CostFlatMaxResistanceRequirement, DamageType: t, Amount: amount}
}

func NewFlatMinSumResistanceRequirement(amount uint64) Cost {
	return Cost{Kind: CostFlatMinSumResistanceRequirement, Amount: amount}
}

func NewFlatMaxSumResistanceRequirement(amount uint64) Cost {
	return Cost{Kind: CostFlatMaxSumResistanceRequirement, Amount: amount}
}

func NewPlaceLimitedByIndexModulus(modulus uint64, remainders []uint64) Cost {
	return Cost{Kind: CostPlaceLimitedByIndexModulus, Modulus: modulus, Remainders: remainders}
}

func NewMinWinsInARow(n uint64) Cost {
	return Cost{Kind: CostMinWinsInARow, Amount: n}
}

func NewMaxWinsInARow(n uint64) Cost {
	return Cost{Kind: CostMaxWinsInARow, Amount: n}
}
