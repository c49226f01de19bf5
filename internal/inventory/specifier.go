// Package inventory resolves the inventory slots a command refers to.
package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/placecraft/internal/domain"
)

// SpecifierKind tags how an IndexSpecifier locates its slot.
type SpecifierKind uint8

const (
	// Absolute names the slot index directly.
	Absolute SpecifierKind = iota
	// RelativePositive scans forward from pivot+offset.
	RelativePositive
	// RelativeNegative scans backward from pivot-offset.
	RelativeNegative
)

// IndexSpecifier refers to an inventory slot, either by index or relative
// to a pivot slot.
type IndexSpecifier struct {
	Kind  SpecifierKind
	Value int
}

// AbsoluteIndex refers to slot i.
func AbsoluteIndex(i int) IndexSpecifier {
	return IndexSpecifier{Kind: Absolute, Value: i}
}

// After refers to the first usable slot at or after pivot+k.
func After(k int) IndexSpecifier {
	return IndexSpecifier{Kind: RelativePositive, Value: k}
}

// Before refers to the first usable slot at or before pivot-k.
func Before(k int) IndexSpecifier {
	return IndexSpecifier{Kind: RelativeNegative, Value: k}
}

// String renders the wire form: "5", "+2" or "-1".
func (s IndexSpecifier) String() string {
	switch s.Kind {
	case RelativePositive:
		return "+" + strconv.Itoa(s.Value)
	case RelativeNegative:
		return "-" + strconv.Itoa(s.Value)
	default:
		return strconv.Itoa(s.Value)
	}
}

// ParseIndexSpecifier parses the wire form of a specifier. A leading '+'
// or '-' makes it relative to the pivot.
func ParseIndexSpecifier(input string) (IndexSpecifier, error) {
	input = strings.TrimSpace(input)
	kind := Absolute
	digits := input
	switch {
	case strings.HasPrefix(input, "+"):
		kind, digits = RelativePositive, input[1:]
	case strings.HasPrefix(input, "-"):
		kind, digits = RelativeNegative, input[1:]
	}

	if digits == "" || strings.ContainsAny(digits, "+-") {
		return IndexSpecifier{}, fmt.Errorf("%w: index specifier %q", domain.ErrInvalidInput, input)
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return IndexSpecifier{}, fmt.Errorf("%w: index specifier %q", domain.ErrInvalidInput, input)
	}
	return IndexSpecifier{Kind: kind, Value: value}, nil
}

// ParseIndexSpecifiers parses each input in order.
func ParseIndexSpecifiers(inputs []string) ([]IndexSpecifier, error) {
	specs := make([]IndexSpecifier, 0, len(inputs))
	for _, in := range inputs {
		spec, err := ParseIndexSpecifier(in)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
