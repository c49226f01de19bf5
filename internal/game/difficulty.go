package game

import (
	"fmt"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/place"
	"github.com/osse101/placecraft/internal/utils"
)

// DifficultyChange is the outcome of a difficulty command.
type DifficultyChange struct {
	Difficulty    domain.Difficulty `json:"difficulty"`
	GoldSpent     uint64            `json:"gold_spent"`
	RerolledPlace *int              `json:"rerolled_place,omitempty"`
}

// ExpandMaxResistance raises the maximum resistance of t by amount. A type
// that is not unlocked yet is unlocked with minimum and maximum at amount.
func ExpandMaxResistance(g *domain.Game, rules Rules, t domain.DamageType, amount uint64) (DifficultyChange, error) {
	if err := checkAmount(t, amount); err != nil {
		return DifficultyChange{}, err
	}
	return changeDifficulty(g, rules, amount, false, func(d *domain.Difficulty) error {
		current, unlocked := d.MaxResistance[t]
		if !unlocked {
			d.MaxResistance[t] = amount
			d.MinResistance[t] = amount
			return nil
		}
		d.MaxResistance[t] = utils.SatAdd(current, amount)
		return nil
	})
}

// ExpandMinResistance raises the minimum resistance of t by amount, up to
// its maximum.
func ExpandMinResistance(g *domain.Game, rules Rules, t domain.DamageType, amount uint64) (DifficultyChange, error) {
	if err := checkAmount(t, amount); err != nil {
		return DifficultyChange{}, err
	}
	return changeDifficulty(g, rules, amount, false, func(d *domain.Difficulty) error {
		lo, hi, err := bounds(d, t)
		if err != nil {
			return err
		}
		if utils.SatAdd(lo, amount) > hi {
			return fmt.Errorf("%w: %s minimum %d plus %d exceeds maximum %d",
				domain.ErrDifficultyBounds, t, lo, amount, hi)
		}
		d.MinResistance[t] = lo + amount
		return nil
	})
}

// ReduceMaxResistance lowers the maximum resistance of t by amount, down
// to its minimum.
func ReduceMaxResistance(g *domain.Game, rules Rules, t domain.DamageType, amount uint64) (DifficultyChange, error) {
	if err := checkAmount(t, amount); err != nil {
		return DifficultyChange{}, err
	}
	return changeDifficulty(g, rules, amount, true, func(d *domain.Difficulty) error {
		lo, hi, err := bounds(d, t)
		if err != nil {
			return err
		}
		if amount > hi || hi-amount < lo {
			return fmt.Errorf("%w: %s maximum %d minus %d is below minimum %d",
				domain.ErrDifficultyBounds, t, hi, amount, lo)
		}
		d.MaxResistance[t] = hi - amount
		return nil
	})
}

// ReduceMinResistance lowers the minimum resistance of t by amount.
func ReduceMinResistance(g *domain.Game, rules Rules, t domain.DamageType, amount uint64) (DifficultyChange, error) {
	if err := checkAmount(t, amount); err != nil {
		return DifficultyChange{}, err
	}
	return changeDifficulty(g, rules, amount, true, func(d *domain.Difficulty) error {
		lo, _, err := bounds(d, t)
		if err != nil {
			return err
		}
		if amount > lo {
			return fmt.Errorf("%w: %s minimum %d cannot be reduced by %d",
				domain.ErrDifficultyBounds, t, lo, amount)
		}
		d.MinResistance[t] = lo - amount
		return nil
	})
}

// ExpandMaxSimultaneous allows places to roll one more resistance at once.
func ExpandMaxSimultaneous(g *domain.Game, rules Rules) (DifficultyChange, error) {
	return changeDifficulty(g, rules, 1, false, func(d *domain.Difficulty) error {
		if d.MaxSimultaneousResistances >= MaxSimultaneousResistances {
			return fmt.Errorf("%w: %d simultaneous resistances", domain.ErrAtMaximum, d.MaxSimultaneousResistances)
		}
		d.MaxSimultaneousResistances++
		return nil
	})
}

// ExpandMinSimultaneous raises the minimum simultaneous resistances, up to
// the maximum.
func ExpandMinSimultaneous(g *domain.Game, rules Rules) (DifficultyChange, error) {
	return changeDifficulty(g, rules, 1, false, func(d *domain.Difficulty) error {
		if d.MinSimultaneousResistances >= d.MaxSimultaneousResistances {
			return fmt.Errorf("%w: minimum simultaneous resistances %d already reach maximum %d",
				domain.ErrDifficultyBounds, d.MinSimultaneousResistances, d.MaxSimultaneousResistances)
		}
		d.MinSimultaneousResistances++
		return nil
	})
}

// ReduceMaxSimultaneous lowers the maximum simultaneous resistances. It
// never drops below the minimum or below one.
func ReduceMaxSimultaneous(g *domain.Game, rules Rules) (DifficultyChange, error) {
	return changeDifficulty(g, rules, 1, true, func(d *domain.Difficulty) error {
		if d.MaxSimultaneousResistances <= 1 {
			return fmt.Errorf("%w: %d simultaneous resistances", domain.ErrAtMinimum, d.MaxSimultaneousResistances)
		}
		if d.MaxSimultaneousResistances <= d.MinSimultaneousResistances {
			return fmt.Errorf("%w: maximum simultaneous resistances %d already at minimum %d",
				domain.ErrDifficultyBounds, d.MaxSimultaneousResistances, d.MinSimultaneousResistances)
		}
		d.MaxSimultaneousResistances--
		return nil
	})
}

// ReduceMinSimultaneous lowers the minimum simultaneous resistances.
func ReduceMinSimultaneous(g *domain.Game, rules Rules) (DifficultyChange, error) {
	return changeDifficulty(g, rules, 1, true, func(d *domain.Difficulty) error {
		if d.MinSimultaneousResistances == 0 {
			return fmt.Errorf("%w: 0 minimum simultaneous resistances", domain.ErrAtMinimum)
		}
		d.MinSimultaneousResistances--
		return nil
	})
}

// changeDifficulty applies edit to a copy of the difficulty and commits it
// only once the edit and the payment both succeed. Reductions reroll one
// place so the world reflects the easier difficulty.
func changeDifficulty(g *domain.Game, rules Rules, units uint64, reroll bool, edit func(d *domain.Difficulty) error) (DifficultyChange, error) {
	d := g.Difficulty.Clone()
	if d.MaxResistance == nil {
		d.MaxResistance = make(map[domain.DamageType]uint64)
	}
	if d.MinResistance == nil {
		d.MinResistance = make(map[domain.DamageType]uint64)
	}
	if err := edit(&d); err != nil {
		return DifficultyChange{}, err
	}
	cost := utils.SatMul(rules.DifficultyGoldCost, units)
	if err := g.SpendTreasure(domain.TreasureGold, cost); err != nil {
		return DifficultyChange{}, err
	}
	g.Difficulty = d

	change := DifficultyChange{Difficulty: d.Clone(), GoldSpent: cost}
	if reroll && len(g.Places) > 0 {
		idx := g.RNG.IntN(len(g.Places))
		g.Places[idx] = place.Generate(g.Difficulty, len(g.Places), g.RNG)
		change.RerolledPlace = &idx
	}
	return change, nil
}

func checkAmount(t domain.DamageType, amount uint64) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownDamageType, t)
	}
	if amount == 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	return nil
}

func bounds(d *domain.Difficulty, t domain.DamageType) (uint64, uint64, error) {
	hi, unlocked := d.MaxResistance[t]
	if !unlocked {
		return 0, 0, fmt.Errorf("%w: %s is not unlocked", domain.ErrDifficultyBounds, t)
	}
	return d.MinResistance[t], hi, nil
}
