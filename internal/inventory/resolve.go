package inventory

import (
	"fmt"
	"math"

	"github.com/osse101/placecraft/internal/domain"
)

// SlotCheck is an extra condition a resolved slot must meet.
type SlotCheck func(index int, item domain.Item) error

// MinModifiers requires the item to carry at least n modifiers.
func MinModifiers(n int) SlotCheck {
	return func(index int, item domain.Item) error {
		if len(item.Modifiers) < n {
			return fmt.Errorf("%w: item %d has %d modifiers, needs at least %d",
				domain.ErrInvalidSacrifice, index, len(item.Modifiers), n)
		}
		return nil
	}
}

// Resolve turns specs into concrete inventory indexes, in specifier order.
//
// Every resolved slot is occupied, differs from pivot and from the other
// resolved slots, and passes every check. An absolute specifier that breaks
// a rule fails the whole resolution; a relative one skips slots that break
// a rule and fails only when it runs off the inventory. g is never mutated.
func Resolve(g *domain.Game, pivot int, specs []IndexSpecifier, checks ...SlotCheck) ([]int, error) {
	r := resolver{
		inventory: g.Inventory,
		pivot:     pivot,
		claimed:   make(map[int]struct{}, len(specs)),
		checks:    checks,
	}

	indexes := make([]int, 0, len(specs))
	for _, spec := range specs {
		idx, err := r.resolve(spec)
		if err != nil {
			return nil, err
		}
		r.claimed[idx] = struct{}{}
		indexes = append(indexes, idx)
	}
	return indexes, nil
}

type resolver struct {
	inventory []domain.Slot
	pivot     int
	claimed   map[int]struct{}
	checks    []SlotCheck
}

func (r *resolver) resolve(spec IndexSpecifier) (int, error) {
	switch spec.Kind {
	case Absolute:
		return r.absolute(spec.Value)
	case RelativePositive:
		start := forward(r.pivot, spec.Value)
		for i := max(start, 0); i < len(r.inventory); i++ {
			if r.usable(i) == nil {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: did not find any items from index %d until end of inventory",
			domain.ErrInvalidSacrifice, start)
	case RelativeNegative:
		start := r.pivot - spec.Value
		if start < 0 {
			return 0, fmt.Errorf("%w: %s reaches before the start of inventory from index %d",
				domain.ErrInvalidInput, spec, r.pivot)
		}
		for i := min(start, len(r.inventory)-1); i >= 0; i-- {
			if r.usable(i) == nil {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: did not find any items from index %d until start of inventory",
			domain.ErrInvalidSacrifice, start)
	default:
		return 0, fmt.Errorf("%w: index specifier kind %d", domain.ErrInvalidInput, spec.Kind)
	}
}

// forward returns pivot+k, saturating at math.MaxInt so a huge offset never
// wraps around to the front of the inventory.
func forward(pivot, k int) int {
	if k > 0 && pivot > math.MaxInt-k {
		return math.MaxInt
	}
	return pivot + k
}

func (r *resolver) absolute(i int) (int, error) {
	if i < 0 || i >= len(r.inventory) {
		return 0, domain.NewIndexError("inventory", i, len(r.inventory))
	}
	if err := r.usable(i); err != nil {
		return 0, err
	}
	return i, nil
}

// usable reports why slot i cannot be resolved, or nil when it can.
func (r *resolver) usable(i int) error {
	if i == r.pivot {
		return fmt.Errorf("%w: index %d cannot be the same as the crafted item", domain.ErrInvalidSacrifice, i)
	}
	if _, taken := r.claimed[i]; taken {
		return fmt.Errorf("%w: index %d is already selected", domain.ErrInvalidSacrifice, i)
	}
	item, ok := r.inventory[i].Item()
	if !ok {
		return domain.NewEmptySlotError("inventory", i)
	}
	for _, check := range r.checks {
		if err := check(i, item); err != nil {
			return err
		}
	}
	return nil
}
