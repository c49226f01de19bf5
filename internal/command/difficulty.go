package command

import (
	"context"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/metrics"
)

type resistanceOp func(g *domain.Game, rules game.Rules, t domain.DamageType, amount uint64) (game.DifficultyChange, error)

type simultaneousOp func(g *domain.Game, rules game.Rules) (game.DifficultyChange, error)

var (
	expandResistance = map[string]resistanceOp{
		TargetMax: game.ExpandMaxResistance,
		TargetMin: game.ExpandMinResistance,
	}
	reduceResistance = map[string]resistanceOp{
		TargetMax: game.ReduceMaxResistance,
		TargetMin: game.ReduceMinResistance,
	}
	expandSimultaneous = map[string]simultaneousOp{
		TargetMax: game.ExpandMaxSimultaneous,
		TargetMin: game.ExpandMinSimultaneous,
	}
	reduceSimultaneous = map[string]simultaneousOp{
		TargetMax: game.ReduceMaxSimultaneous,
		TargetMin: game.ReduceMinSimultaneous,
	}
)

func (d *Dispatcher) expand(ctx context.Context, world string, args []string) (any, error) {
	if len(args) == 0 {
		return nil, usageError(VerbExpand + " places|equipment|max|min|simultaneous ...")
	}
	switch args[0] {
	case TargetPlaces:
		return d.expandPlaces(ctx, world, args[1:])
	case TargetEquipment:
		return d.expandEquipment(ctx, world, args[1:])
	case TargetSimultaneous:
		return d.simultaneous(ctx, world, args[1:], expandSimultaneous, Usages[12])
	default:
		return d.resistance(ctx, world, args, expandResistance, Usages[10])
	}
}

func (d *Dispatcher) reduce(ctx context.Context, world string, args []string) (any, error) {
	if len(args) == 0 {
		return nil, usageError(VerbReduce + " max|min|simultaneous ...")
	}
	if args[0] == TargetSimultaneous {
		return d.simultaneous(ctx, world, args[1:], reduceSimultaneous, Usages[13])
	}
	return d.resistance(ctx, world, args, reduceResistance, Usages[11])
}

func (d *Dispatcher) expandPlaces(ctx context.Context, world string, args []string) (any, error) {
	if err := expectArgs(args, 0, 0, Usages[9]); err != nil {
		return nil, err
	}
	var view ExpansionView
	err := d.worlds.Update(ctx, world, func(g *domain.Game) error {
		p, cost, err := game.ExpandPlaces(g, d.worlds.Rules())
		if err != nil {
			return err
		}
		view = ExpansionView{Places: len(g.Places), Place: &p, GoldSpent: cost}
		return nil
	})
	if err == nil {
		metrics.PlacesGenerated.WithLabelValues(metrics.CauseExpansion).Inc()
	}
	return view, err
}

func (d *Dispatcher) expandEquipment(ctx context.Context, world string, args []string) (any, error) {
	if err := expectArgs(args, 0, 0, Usages[9]); err != nil {
		return nil, err
	}
	var view ExpansionView
	err := d.worlds.Update(ctx, world, func(g *domain.Game) error {
		cost, err := game.ExpandEquipmentSlots(g, d.worlds.Rules())
		if err != nil {
			return err
		}
		view = ExpansionView{EquipmentSlots: len(g.Equipment), GoldSpent: cost}
		return nil
	})
	return view, err
}

func (d *Dispatcher) resistance(ctx context.Context, world string, args []string, ops map[string]resistanceOp, usage string) (any, error) {
	if err := expectArgs(args, 3, 3, usage); err != nil {
		return nil, err
	}
	amount, err := parseUint(args[2])
	if err != nil {
		return nil, err
	}
	if err := validateArgs(resistanceArgs{Bound: args[0], Damage: args[1], Amount: amount}); err != nil {
		return nil, err
	}
	damage, err := domain.ParseDamageType(args[1])
	if err != nil {
		return nil, err
	}

	op := ops[args[0]]
	return d.changeDifficulty(ctx, world, func(g *domain.Game) (game.DifficultyChange, error) {
		return op(g, d.worlds.Rules(), damage, amount)
	})
}

func (d *Dispatcher) simultaneous(ctx context.Context, world string, args []string, ops map[string]simultaneousOp, usage string) (any, error) {
	if err := expectArgs(args, 1, 1, usage); err != nil {
		return nil, err
	}
	if err := validateArgs(simultaneousArgs{Bound: args[0]}); err != nil {
		return nil, err
	}
	op := ops[args[0]]
	return d.changeDifficulty(ctx, world, func(g *domain.Game) (game.DifficultyChange, error) {
		return op(g, d.worlds.Rules())
	})
}

func (d *Dispatcher) changeDifficulty(ctx context.Context, world string, op func(g *domain.Game) (game.DifficultyChange, error)) (game.DifficultyChange, error) {
	var change game.DifficultyChange
	err := d.worlds.Update(ctx, world, func(g *domain.Game) error {
		var err error
		change, err = op(g)
		return err
	})
	if err != nil {
		return change, err
	}
	if change.RerolledPlace != nil {
		metrics.PlacesGenerated.WithLabelValues(metrics.CauseDifficulty).Inc()
	}
	return change, nil
}
