// Package move resolves a move: the equipped items are evaluated in order
// against one place until one of them overcomes its resistances.
package move

import (
	"fmt"
	"maps"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/place"
	"github.com/osse101/placecraft/internal/utils"
)

// ItemReport is the evaluation trail entry of one equipped item. The maps
// are snapshots taken after the item was evaluated.
type ItemReport struct {
	Item                domain.Item                    `json:"item"`
	Damage              map[domain.DamageType]uint64   `json:"damage"`
	ResistanceReduction map[domain.DamageType]uint64   `json:"resistance_reduction"`
	TreasureBonus       map[domain.TreasureType]uint64 `json:"treasure_bonus"`
	ItemGain            uint64                         `json:"item_gain"`
	Effect              string                         `json:"effect"`
	ResourceCost        map[domain.ResourceType]uint64 `json:"resource_cost,omitempty"`
	Resources           map[domain.ResourceType]uint64 `json:"resources"`
}

// Report is the outcome of a move. Won moves carry the rewards and the
// place that replaced the one overcome.
type Report struct {
	Won           bool                           `json:"won"`
	PlaceIndex    int                            `json:"place_index"`
	Items         []ItemReport                   `json:"items"`
	Rewards       map[domain.TreasureType]uint64 `json:"rewards,omitempty"`
	ItemsRewarded uint64                         `json:"items_rewarded,omitempty"`
	NewPlace      *domain.Place                  `json:"new_place,omitempty"`
	Reason        string                         `json:"reason,omitempty"`
}

// Resolve moves to the place at idx and mutates g with the outcome.
//
// Items after the winning one are never evaluated. An idx outside the place
// list fails with no item reports and leaves the statistics untouched.
func Resolve(g *domain.Game, idx int) Report {
	if idx < 0 || idx >= len(g.Places) {
		return Report{
			PlaceIndex: idx,
			Items:      []ItemReport{},
			Reason:     fmt.Sprintf(ReasonPlaceOutOfRangeFmt, idx, len(g.Places)),
		}
	}

	s := NewState(g, idx)
	report := Report{PlaceIndex: idx, Items: []ItemReport{}}
	g.Statistics.MovesCount = utils.SatAdd(g.Statistics.MovesCount, 1)

	for _, item := range g.EquippedItems() {
		entry, paid := evaluate(item, s)
		report.Items = append(report.Items, entry)
		if !paid || !s.Overcome() {
			continue
		}

		claim(g, s, &report)
		return report
	}

	st := &g.Statistics
	st.Loses = utils.SatAdd(st.Loses, 1)
	st.LosesInARow = utils.SatAdd(st.LosesInARow, 1)
	st.WinsInARow = 0
	report.Reason = ReasonNotOvercome
	return report
}

// evaluate checks every cost of item, charges its resource cost and applies
// its gains. State is untouched when a cost fails.
func evaluate(item domain.Item, s *State) (ItemReport, bool) {
	resourceCost := make(map[domain.ResourceType]uint64)
	for _, m := range item.Modifiers {
		for _, c := range m.Costs {
			if failure := CheckCost(c, s); failure != "" {
				return snapshot(item, s, failure, nil), false
			}
			if c.Kind == domain.CostFlatItemResource {
				addFlat(resourceCost, c.ResourceType, c.Amount)
			}
		}
	}

	for _, r := range domain.SortedKeys(resourceCost) {
		if have, want := s.Resources[r], resourceCost[r]; have < want {
			return snapshot(item, s, fmt.Sprintf(FailResourcePaymentFmt, want, r, have), nil), false
		}
	}
	for r, amount := range resourceCost {
		s.Resources[r] -= amount
	}

	for _, m := range item.Modifiers {
		for _, gain := range m.Gains {
			ApplyGain(gain, s)
		}
	}
	return snapshot(item, s, EffectGainsApplied, resourceCost), true
}

// claim pays out a won place and replaces it.
func claim(g *domain.Game, s *State, report *Report) {
	st := &g.Statistics
	st.Wins = utils.SatAdd(st.Wins, 1)
	st.WinsInARow = utils.SatAdd(st.WinsInARow, 1)
	st.LosesInARow = 0

	rewards := s.Rewards()
	if g.Treasure == nil {
		g.Treasure = make(map[domain.TreasureType]uint64, len(rewards))
	}
	for t, amount := range rewards {
		g.Treasure[t] = utils.SatAdd(g.Treasure[t], amount)
	}

	info := domain.CraftingInfo{
		PossibleRolls: s.Place.ItemRewardPossibleRolls.Clone(),
		PlacesCount:   len(g.Places),
	}
	// ItemGain is player-controlled; the inventory grows by at most what
	// can be addressed.
	count := min(s.ItemGain, maxRewardedItems)
	for range count {
		g.AddToInventory(domain.Item{Modifiers: []domain.Modifier{}, CraftingInfo: info.Clone()})
	}

	newPlace := place.Generate(g.Difficulty, len(g.Places), g.RNG)
	g.Places[s.PlaceIndex] = newPlace

	report.Won = true
	report.Rewards = rewards
	report.ItemsRewarded = count
	replacement := newPlace.Clone()
	report.NewPlace = &replacement
}

func snapshot(item domain.Item, s *State, effect string, cost map[domain.ResourceType]uint64) ItemReport {
	return ItemReport{
		Item:                item.Clone(),
		Damage:              maps.Clone(s.Damage),
		ResistanceReduction: maps.Clone(s.ResistanceReduction),
		TreasureBonus:       maps.Clone(s.TreasureBonus),
		ItemGain:            s.ItemGain,
		Effect:              effect,
		ResourceCost:        cost,
		Resources:           maps.Clone(s.Resources),
	}
}
