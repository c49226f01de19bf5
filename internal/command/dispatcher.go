// Package command implements the player line protocol: one command per line
// in, one JSON reply per line out.
package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/event"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/logger"
	"github.com/osse101/placecraft/internal/metrics"
	"github.com/osse101/placecraft/internal/move"
	"github.com/osse101/placecraft/internal/tracing"
)

// Worlds is the registry surface commands run against
type Worlds interface {
	Update(ctx context.Context, name string, fn func(g *domain.Game) error) error
	View(ctx context.Context, name string, fn func(g *domain.Game) error) error
	Save(ctx context.Context, name string) error
	Rules() game.Rules
}

// Reply is written back for every command line
type Reply struct {
	OK      bool   `json:"ok"`
	Command string `json:"command"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type handlerFunc func(ctx context.Context, world string, args []string) (any, error)

// Dispatcher routes parsed commands to game operations
type Dispatcher struct {
	worlds   Worlds
	bus      event.Bus
	handlers map[string]handlerFunc
}

// NewDispatcher creates a dispatcher over worlds. Applied commands are
// published on bus, which may be nil.
func NewDispatcher(worlds Worlds, bus event.Bus) *Dispatcher {
	d := &Dispatcher{worlds: worlds, bus: bus}
	d.handlers = map[string]handlerFunc{
		VerbHelp:    d.help,
		VerbState:   d.state,
		VerbMove:    d.move,
		VerbEquip:   d.equip,
		VerbSwap:    d.swap,
		VerbReorder: d.reorder,
		VerbCompact: d.compact,
		VerbCraft:   d.craft,
		VerbReroll:  d.reroll,
		VerbExpand:  d.expand,
		VerbReduce:  d.reduce,
		VerbSeed:    d.seed,
		VerbSave:    d.save,
	}
	return d
}

// Execute runs one protocol line against world and always returns a reply.
func (d *Dispatcher) Execute(ctx context.Context, world, line string) Reply {
	start := time.Now()
	req, err := Parse(line)
	if err != nil {
		return Reply{Error: err.Error()}
	}

	handler, ok := d.handlers[req.Verb]
	if !ok {
		err := fmt.Errorf("%w: %q, try %q", domain.ErrUnknownCommand, req.Verb, VerbHelp)
		return Reply{Command: req.Verb, Error: err.Error()}
	}

	ctx, span := tracing.Tracer(tracing.TracerCommand).Start(ctx, req.Verb,
		trace.WithAttributes(
			attribute.String(tracing.AttrVerb, req.Verb),
			attribute.String(tracing.AttrWorld, world),
		))
	defer span.End()

	data, err := handler(ctx, world, req.Args)
	elapsed := time.Since(start)
	metrics.RecordCommand(req.Verb, err, elapsed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	log := logger.FromContext(ctx)
	switch {
	case err == nil:
		log.Debug(LogMsgCommandExecuted, "verb", req.Verb, "duration", elapsed)
		d.publish(ctx, world, req, data)
		return Reply{OK: true, Command: req.Verb, Data: data}
	case IsRejection(err):
		log.Debug(LogMsgCommandRejected, "verb", req.Verb, "error", err)
		return Reply{Command: req.Verb, Error: err.Error()}
	default:
		log.Error(LogMsgCommandFailed, "verb", req.Verb, "error", err)
		return Reply{Command: req.Verb, Error: ErrMsgInternal}
	}
}

// readOnly verbs never change a world and are not published
var readOnly = map[string]bool{
	VerbHelp:  true,
	VerbState: true,
	VerbSeed:  true,
}

func (d *Dispatcher) publish(ctx context.Context, world string, req Request, data any) {
	if d.bus == nil || readOnly[req.Verb] {
		return
	}
	requestID := logger.GetRequestID(ctx)
	events := []event.Event{event.NewCommandEvent(world, req.Verb, req.Args, requestID)}
	if report, ok := data.(move.Report); ok {
		events = append(events, event.NewMoveEvent(world, event.MovePayloadV1{
			PlaceIndex:    report.PlaceIndex,
			Won:           report.Won,
			Rewards:       report.Rewards,
			ItemsRewarded: report.ItemsRewarded,
			Reason:        report.Reason,
		}, requestID))
	}
	for _, evt := range events {
		if err := d.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event", evt.Type, "error", err)
		}
	}
}

var rejections = []error{
	domain.ErrIndexOutOfRange,
	domain.ErrEmptySlot,
	domain.ErrInsufficientTreasure,
	domain.ErrInvalidSacrifice,
	domain.ErrDifficultyBounds,
	domain.ErrAtMaximum,
	domain.ErrAtMinimum,
	domain.ErrUnknownDamageType,
	domain.ErrInvalidInput,
	domain.ErrUnknownCommand,
}

// IsRejection reports whether err is a player input error, as opposed to a
// server fault. Rejections leave the world untouched.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
