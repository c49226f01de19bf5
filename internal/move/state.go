package move

import (
	"fmt"
	"maps"
	"strings"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/utils"
)

// State is the running evaluation of one move. Damage, reduction, treasure
// bonus and item gain start empty and only grow through gains; Resources
// is the world pool and is charged in place.
type State struct {
	Place      domain.Place
	PlaceIndex int
	WinsInARow uint64

	Damage              map[domain.DamageType]uint64
	ResistanceReduction map[domain.DamageType]uint64
	TreasureBonus       map[domain.TreasureType]uint64
	ItemGain            uint64
	Resources           map[domain.ResourceType]uint64
}

// NewState starts the evaluation of a move to place index idx of g.
func NewState(g *domain.Game, idx int) *State {
	if g.Resources == nil {
		g.Resources = make(map[domain.ResourceType]uint64)
	}
	return &State{
		Place:               g.Places[idx],
		PlaceIndex:          idx,
		WinsInARow:          g.Statistics.WinsInARow,
		Damage:              make(map[domain.DamageType]uint64),
		ResistanceReduction: make(map[domain.DamageType]uint64),
		TreasureBonus:       make(map[domain.TreasureType]uint64),
		ItemGain:            domain.DefaultItemGain,
		Resources:           g.Resources,
	}
}

// CheckCost evaluates one cost against s and returns the failure message,
// or "" when the cost holds. FlatItemResource always holds here; it is
// charged through the item's resource cost instead.
func CheckCost(c domain.Cost, s *State) string {
	switch c.Kind {
	case domain.CostFlatItemResource:
		return ""
	case domain.CostFlatMinItemResourceRequirement:
		if have := s.Resources[c.ResourceType]; have < c.Amount {
			return fmt.Sprintf(FailMinItemResourceFmt, c.Amount, c.ResourceType, have)
		}
	case domain.CostFlatMaxItemResourceRequirement:
		if have := s.Resources[c.ResourceType]; have > c.Amount {
			return fmt.Sprintf(FailMaxItemResourceFmt, c.Amount, c.ResourceType, have)
		}
	case domain.CostFlatMinAttackRequirement:
		if s.Damage[c.DamageType] < c.Amount {
			return fmt.Sprintf(FailMinAttackFmt, c.Amount, c.DamageType, FormatDamage(s.Damage))
		}
	case domain.CostFlatMaxAttackRequirement:
		if s.Damage[c.DamageType] > c.Amount {
			return fmt.Sprintf(FailMaxAttackFmt, c.Amount, c.DamageType, FormatDamage(s.Damage))
		}
	case domain.CostFlatSumMinAttackRequirement:
		if utils.SumValues(s.Damage) < c.Amount {
			return fmt.Sprintf(FailSumMinAttackFmt, c.Amount, FormatDamage(s.Damage))
		}
	case domain.CostFlatSumMaxAttackRequirement:
		if utils.SumValues(s.Damage) > c.Amount {
			return fmt.Sprintf(FailSumMaxAttackFmt, c.Amount, FormatDamage(s.Damage))
		}
	case domain.CostFlatMinResistanceRequirement:
		if have := s.Place.Resistance[c.DamageType]; have < c.Amount {
			return fmt.Sprintf(FailMinResistanceFmt, c.DamageType, c.Amount, have)
		}
	case domain.CostFlatMaxResistanceRequirement:
		if have := s.Place.Resistance[c.DamageType]; have > c.Amount {
			return fmt.Sprintf(FailMaxResistanceFmt, c.DamageType, c.Amount, have)
		}
	case domain.CostFlatMinSumResistanceRequirement:
		if sum := utils.SumValues(s.Place.Resistance); sum < c.Amount {
			return fmt.Sprintf(FailMinSumResistanceFmt, c.Amount, sum)
		}
	case domain.CostFlatMaxSumResistanceRequirement:
		if sum := utils.SumValues(s.Place.Resistance); sum > c.Amount {
			return fmt.Sprintf(FailMaxSumResistanceFmt, c.Amount, sum)
		}
	case domain.CostPlaceLimitedByIndexModulus:
		modulus := max(c.Modulus, 1)
		remainder := uint64(s.PlaceIndex) % modulus
		for _, allowed := range c.Remainders {
			if allowed == remainder {
				return ""
			}
		}
		return fmt.Sprintf(FailIndexModulusFmt, s.PlaceIndex, c.Modulus, formatRemainders(c.Remainders), remainder)
	case domain.CostMinWinsInARow:
		if s.WinsInARow < c.Amount {
			return fmt.Sprintf(FailMinWinsFmt, c.Amount, s.WinsInARow)
		}
	case domain.CostMaxWinsInARow:
		if s.WinsInARow > c.Amount {
			return fmt.Sprintf(FailMaxWinsFmt, c.Amount, s.WinsInARow)
		}
	default:
		panic(fmt.Sprintf("move: unknown cost kind %q", c.Kind))
	}
	return ""
}

// ApplyGain applies one gain to s. Percentage gains only raise entries that
// already exist.
func ApplyGain(g domain.Gain, s *State) {
	switch g.Kind {
	case domain.GainFlatDamage:
		addFlat(s.Damage, g.DamageType, g.Amount)
	case domain.GainPercentageIncreaseDamage:
		addPercentage(s.Damage, g.DamageType, g.Amount)
	case domain.GainFlatItemResource:
		addFlat(s.Resources, g.ResourceType, g.Amount)
	case domain.GainFlatResistanceReduction:
		addFlat(s.ResistanceReduction, g.DamageType, g.Amount)
	case domain.GainPercentageIncreaseResistanceReduction:
		addPercentage(s.ResistanceReduction, g.DamageType, g.Amount)
	case domain.GainFlatDamageAgainstHighestResistance:
		if t, ok := s.Place.HighestResistance(); ok {
			addFlat(s.Damage, t, g.Amount)
		}
	case domain.GainPercentageIncreaseDamageAgainstHighestResistance:
		if t, ok := s.Place.HighestResistance(); ok {
			addPercentage(s.Damage, t, g.Amount)
		}
	case domain.GainFlatDamageAgainstLowestResistance:
		if t, ok := s.Place.LowestResistance(); ok {
			addFlat(s.Damage, t, g.Amount)
		}
	case domain.GainPercentageIncreaseDamageAgainstLowestResistance:
		if t, ok := s.Place.LowestResistance(); ok {
			addPercentage(s.Damage, t, g.Amount)
		}
	case domain.GainPercentageIncreaseTreasure:
		addFlat(s.TreasureBonus, g.TreasureType, g.Amount)
	case domain.GainFlatIncreaseRewardedItems:
		s.ItemGain = utils.SatAdd(s.ItemGain, g.Amount)
	default:
		panic(fmt.Sprintf("move: unknown gain kind %q", g.Kind))
	}
}

// Overcome reports whether damage plus resistance reduction meets every
// resistance of the place. A type missing from both maps counts as zero.
func (s *State) Overcome() bool {
	combined := make(map[domain.DamageType]uint64, len(s.Damage))
	maps.Copy(combined, s.Damage)
	for t, v := range s.ResistanceReduction {
		combined[t] = utils.SatAdd(combined[t], v)
	}
	for t, required := range s.Place.Resistance {
		if combined[t] < required {
			return false
		}
	}
	return true
}

// Rewards returns the place reward with the accumulated treasure bonus
// applied to each currency.
func (s *State) Rewards() map[domain.TreasureType]uint64 {
	rewards := make(map[domain.TreasureType]uint64, len(s.Place.Reward))
	for t, amount := range s.Place.Reward {
		if bonus, ok := s.TreasureBonus[t]; ok {
			amount = utils.ApplyPercentage(amount, bonus)
		}
		rewards[t] = amount
	}
	return rewards
}

func addFlat[K comparable](m map[K]uint64, key K, amount uint64) {
	m[key] = utils.SatAdd(m[key], amount)
}

func addPercentage[K comparable](m map[K]uint64, key K, pct uint64) {
	if old, ok := m[key]; ok {
		m[key] = utils.ApplyPercentage(old, pct)
	}
}

// FormatDamage renders a damage map in declaration order, e.g.
// "{Physical: 3, Fire: 1}".
func FormatDamage(damage map[domain.DamageType]uint64) string {
	parts := make([]string, 0, len(damage))
	for _, t := range domain.SortedKeys(damage) {
		parts = append(parts, fmt.Sprintf("%s: %d", t, damage[t]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatRemainders(remainders []uint64) string {
	parts := make([]string, len(remainders))
	for i, r := range remainders {
		parts[i] = fmt.Sprint(r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
