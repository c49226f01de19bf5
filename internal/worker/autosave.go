package worker

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/logger"
	"github.com/osse101/placecraft/internal/metrics"
	"github.com/osse101/placecraft/internal/tracing"
)

// Saver is the part of the world store an autosave needs
type Saver interface {
	Save(ctx context.Context, name string, g *domain.Game) error
}

// AutosaveJob writes the latest snapshot of one world. Snapshot is called
// when the job runs, so saves queued behind each other write the newest
// state; it returns nil when someone else already wrote it.
type AutosaveJob struct {
	Store    Saver
	World    string
	Snapshot func() *domain.Game
	// Lock, when set, is held from Snapshot until Done returns so two saves
	// of the same world never interleave.
	Lock sync.Locker
	// Done, when set, receives the saved snapshot and the result.
	Done func(g *domain.Game, err error)
}

// Name implements Job
func (j *AutosaveJob) Name() string {
	return AutosaveJobName
}

// Process implements Job
func (j *AutosaveJob) Process(ctx context.Context) error {
	if j.Lock != nil {
		j.Lock.Lock()
		defer j.Lock.Unlock()
	}
	g := j.Snapshot()
	if g == nil {
		return nil
	}
	ctx = logger.WithWorld(ctx, j.World)
	ctx, span := tracing.Tracer(tracing.TracerWorker).Start(ctx, AutosaveJobName,
		trace.WithAttributes(attribute.String(tracing.AttrWorld, j.World)))
	defer span.End()

	start := time.Now()
	err := j.Store.Save(ctx, j.World, g)
	elapsed := time.Since(start)
	metrics.RecordAutosave(err, elapsed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if j.Done != nil {
		j.Done(g, err)
	}
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgWorldSaved, "moves", g.Statistics.MovesCount, "duration", elapsed)
	return nil
}
