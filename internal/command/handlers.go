package command

import (
	"context"

	"github.com/osse101/placecraft/internal/crafting"
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/inventory"
	"github.com/osse101/placecraft/internal/metrics"
	"github.com/osse101/placecraft/internal/move"
	"github.com/osse101/placecraft/internal/random"
)

// StateView is the player-visible part of a world
type StateView struct {
	World      string                         `json:"world"`
	Seed       random.Seed                    `json:"seed"`
	Places     []domain.Place                 `json:"places"`
	Equipment  []domain.Slot                  `json:"equipment"`
	Inventory  []domain.Slot                  `json:"inventory"`
	Difficulty domain.Difficulty              `json:"difficulty"`
	Treasure   map[domain.TreasureType]uint64 `json:"treasure"`
	Resources  map[domain.ResourceType]uint64 `json:"resources"`
	Statistics domain.GameStatistics          `json:"statistics"`
}

// SlotsView is returned by commands that rearrange slots
type SlotsView struct {
	Equipment []domain.Slot `json:"equipment"`
	Inventory []domain.Slot `json:"inventory"`
	Removed   int           `json:"removed,omitempty"`
}

// ExpansionView is returned by expand places and expand equipment
type ExpansionView struct {
	Places         int           `json:"places,omitempty"`
	Place          *domain.Place `json:"place,omitempty"`
	EquipmentSlots int           `json:"equipment_slots,omitempty"`
	GoldSpent      uint64        `json:"gold_spent"`
}

// SeedView is returned by seed
type SeedView struct {
	Seed  random.Seed `json:"seed"`
	Draws uint64      `json:"draws"`
}

func (d *Dispatcher) help(_ context.Context, _ string, _ []string) (any, error) {
	return map[string][]string{"commands": Usages}, nil
}

func (d *Dispatcher) state(ctx context.Context, world string, args []string) (any, error) {
	if err := expectArgs(args, 0, 0, VerbState); err != nil {
		return nil, err
	}
	var view StateView
	err := d.worlds.View(ctx, world, func(g *domain.Game) error {
		snap := g.Clone()
		view = StateView{
			World:      world,
			Seed:       snap.Seed,
			Places:     snap.Places,
			Equipment:  snap.Equipment,
			Inventory:  snap.Inventory,
			Difficulty: snap.Difficulty,
			Treasure:   snap.Treasure,
			Resources:  snap.Resources,
			Statistics: snap.Statistics,
		}
		return nil
	})
	return view, err
}

func (d *Dispatcher) move(ctx context.Context, world string, args []string) (any, error) {
	if err := expectArgs(args, 1, 1, Usages[2]); err != nil {
		return nil, err
	}
	place, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	if err := validateArgs(moveArgs{Place: place}); err != nil {
		return nil, err
	}

	// A place that does not exist is rejected before the world is touched,
	// so nothing is saved or published for it.
	var report move.Report
	err = d.worlds.Update(ctx, world, func(g *domain.Game) error {
		if place >= len(g.Places) {
			return domain.NewIndexError(TargetPlaces, place, len(g.Places))
		}
		report = game.Move(g, place)
		return nil
	})
	if err == nil {
		metrics.RecordMove(report)
	}
	return report, err
}

func (d *Dispatcher) equip(ctx context.Context, world string, args []string) (any, error) {
	nums, err := d.indexes(args, 2, Usages[3])
	if err != nil {
		return nil, err
	}
	if err := validateArgs(equipArgs{Inventory: nums[0], Slot: nums[1]}); err != nil {
		return nil, err
	}
	return d.rearrange(ctx, world, func(g *domain.Game) error {
		return game.Equip(g, nums[0], nums[1])
	})
}

func (d *Dispatcher) swap(ctx context.Context, world string, args []string) (any, error) {
	nums, err := d.indexes(args, 2, Usages[4])
	if err != nil {
		return nil, err
	}
	if err := validateArgs(swapArgs{First: nums[0], Second: nums[1]}); err != nil {
		return nil, err
	}
	return d.rearrange(ctx, world, func(g *domain.Game) error {
		return game.SwapEquipment(g, nums[0], nums[1])
	})
}

func (d *Dispatcher) reorder(ctx context.Context, world string, args []string) (any, error) {
	nums, err := d.indexes(args, 2, Usages[5])
	if err != nil {
		return nil, err
	}
	if err := validateArgs(reorderArgs{From: nums[0], To: nums[1]}); err != nil {
		return nil, err
	}
	return d.rearrange(ctx, world, func(g *domain.Game) error {
		return game.MoveInventory(g, nums[0], nums[1])
	})
}

func (d *Dispatcher) compact(ctx context.Context, world string, args []string) (any, error) {
	if err := expectArgs(args, 0, 0, VerbCompact); err != nil {
		return nil, err
	}
	removed := 0
	view, err := d.rearrange(ctx, world, func(g *domain.Game) error {
		removed = game.CompactInventory(g)
		return nil
	})
	view.Removed = removed
	return view, err
}

func (d *Dispatcher) indexes(args []string, n int, usage string) ([]int, error) {
	if err := expectArgs(args, n, n, usage); err != nil {
		return nil, err
	}
	return parseInts(args)
}

func (d *Dispatcher) rearrange(ctx context.Context, world string, op func(g *domain.Game) error) (SlotsView, error) {
	var view SlotsView
	err := d.worlds.Update(ctx, world, func(g *domain.Game) error {
		if err := op(g); err != nil {
			return err
		}
		snap := g.Clone()
		view = SlotsView{Equipment: snap.Equipment, Inventory: snap.Inventory}
		return nil
	})
	return view, err
}

func (d *Dispatcher) craft(ctx context.Context, world string, args []string) (any, error) {
	if err := expectArgs(args, 1, -1, Usages[7]); err != nil {
		return nil, err
	}
	target, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	if err := validateArgs(craftArgs{Inventory: target, Sacrifices: args[1:]}); err != nil {
		return nil, err
	}
	specs, err := inventory.ParseIndexSpecifiers(args[1:])
	if err != nil {
		return nil, err
	}

	var result crafting.Result
	err = d.worlds.Update(ctx, world, func(g *domain.Game) error {
		var err error
		result, err = game.AddModifier(g, d.worlds.Rules(), target, specs)
		return err
	})
	if err == nil {
		metrics.ModifiersRolled.WithLabelValues(VerbCraft).Inc()
	}
	return result, err
}

func (d *Dispatcher) reroll(ctx context.Context, world string, args []string) (any, error) {
	if err := expectArgs(args, 3, -1, Usages[8]); err != nil {
		return nil, err
	}
	nums, err := parseInts(args[:2])
	if err != nil {
		return nil, err
	}
	if err := validateArgs(rerollArgs{Inventory: nums[0], Modifier: nums[1], Sacrifices: args[2:]}); err != nil {
		return nil, err
	}
	specs, err := inventory.ParseIndexSpecifiers(args[2:])
	if err != nil {
		return nil, err
	}

	var result crafting.Result
	err = d.worlds.Update(ctx, world, func(g *domain.Game) error {
		var err error
		result, err = game.RerollModifier(g, d.worlds.Rules(), nums[0], nums[1], specs)
		return err
	})
	if err == nil {
		metrics.ModifiersRolled.WithLabelValues(VerbReroll).Inc()
	}
	return result, err
}

func (d *Dispatcher) seed(ctx context.Context, world string, args []string) (any, error) {
	if err := expectArgs(args, 0, 0, VerbSeed); err != nil {
		return nil, err
	}
	var view SeedView
	err := d.worlds.View(ctx, world, func(g *domain.Game) error {
		view = SeedView{Seed: g.Seed, Draws: g.RNG.Draws()}
		return nil
	})
	return view, err
}

func (d *Dispatcher) save(ctx context.Context, world string, args []string) (any, error) {
	if err := expectArgs(args, 0, 0, VerbSave); err != nil {
		return nil, err
	}
	if err := d.worlds.Save(ctx, world); err != nil {
		return nil, err
	}
	return map[string]string{"saved": world}, nil
}
