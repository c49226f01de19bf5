package domain

import (
	"bytes"
	"encoding/json"
	"slices"
)

// CraftingInfo is the difficulty snapshot a modifier is rolled against.
type CraftingInfo struct {
	PossibleRolls Difficulty `json:"possible_rolls"`
	PlacesCount   int        `json:"places_count"`
}

// Clone returns a deep copy.
func (c CraftingInfo) Clone() CraftingInfo {
	c.PossibleRolls = c.PossibleRolls.Clone()
	return c
}

// Modifier is one rule bundle on an item: every cost must hold for the
// gains to apply.
type Modifier struct {
	Costs []Cost `json:"costs"`
	Gains []Gain `json:"gains"`
}

// Clone returns a deep copy.
func (m Modifier) Clone() Modifier {
	costs := make([]Cost, len(m.Costs))
	for i, c := range m.Costs {
		costs[i] = c.Clone()
	}
	if m.Costs == nil {
		costs = nil
	}
	return Modifier{Costs: costs, Gains: slices.Clone(m.Gains)}
}

// Item is a piece of gear. Items are values; copying one never shares state.
type Item struct {
	Modifiers    []Modifier   `json:"modifiers"`
	CraftingInfo CraftingInfo `json:"crafting_info"`
}

// Clone returns a deep copy.
func (i Item) Clone() Item {
	var mods []Modifier
	if i.Modifiers != nil {
		mods = make([]Modifier, len(i.Modifiers))
		for idx, m := range i.Modifiers {
			mods[idx] = m.Clone()
		}
	}
	return Item{Modifiers: mods, CraftingInfo: i.CraftingInfo.Clone()}
}

// Slot is an equipment or inventory position that is either occupied by an
// item or empty. Emptying a slot never shifts the indexes of other slots.
type Slot struct {
	item     Item
	occupied bool
}

// Occupied returns a slot holding item.
func Occupied(item Item) Slot {
	return Slot{item: item, occupied: true}
}

// EmptySlot returns an empty slot.
func EmptySlot() Slot {
	return Slot{}
}

// Item returns the held item and whether the slot is occupied.
func (s Slot) Item() (Item, bool) {
	return s.item, s.occupied
}

// IsEmpty reports whether the slot holds nothing.
func (s Slot) IsEmpty() bool {
	return !s.occupied
}

// Clone returns a deep copy.
func (s Slot) Clone() Slot {
	if !s.occupied {
		return Slot{}
	}
	return Occupied(s.item.Clone())
}

var jsonNull = []byte("null")

// MarshalJSON writes the item, or null for an empty slot.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.occupied {
		return jsonNull, nil
	}
	return json.Marshal(s.item)
}

// UnmarshalJSON reads an item, or null as an empty slot.
func (s *Slot) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*s = Slot{}
		return nil
	}
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	*s = Occupied(item)
	return nil
}

func cloneSlots(slots []Slot) []Slot {
	if slots == nil {
		return nil
	}
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = s.Clone()
	}
	return out
}
