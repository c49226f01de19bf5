// Package world owns the named worlds a server hosts. Every command on a
// world runs under that world's lock; worlds stay in an LRU cache in front
// of the store and are written back by autosave jobs.
package world

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/placecraft/internal/concurrency"
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/logger"
	"github.com/osse101/placecraft/internal/metrics"
	"github.com/osse101/placecraft/internal/random"
	"github.com/osse101/placecraft/internal/storage"
	"github.com/osse101/placecraft/internal/worker"
)

// Options tunes a Registry
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	// Seed, when set, seeds every newly created world.
	Seed *random.Seed
}

// Registry serializes access to named worlds
type Registry struct {
	store storage.Store
	pool  *worker.Pool
	rules game.Rules
	seed  *random.Seed

	locks     *concurrency.LockManager
	saveLocks *concurrency.LockManager
	cache     *worldCache

	// pending holds snapshots queued for saving but not yet written. It is
	// checked before the store so an evicted world never reloads stale.
	pendingMu sync.Mutex
	pending   map[string]*domain.Game
	queued    map[string]bool

	newSeed func() (random.Seed, error)
}

// NewRegistry creates a registry over store; autosaves run on pool.
func NewRegistry(store storage.Store, pool *worker.Pool, rules game.Rules, opts Options) *Registry {
	return &Registry{
		store:     store,
		pool:      pool,
		rules:     rules,
		seed:      opts.Seed,
		locks:     concurrency.NewLockManager(),
		saveLocks: concurrency.NewLockManager(),
		cache:     newWorldCache(opts.CacheSize, opts.CacheTTL),
		pending:   make(map[string]*domain.Game),
		queued:    make(map[string]bool),
		newSeed:   random.NewSeed,
	}
}

// Rules returns the game rules worlds are played under.
func (r *Registry) Rules() game.Rules {
	return r.rules
}

// Update runs fn on the live world, creating it on first use, and queues an
// autosave when fn succeeds.
func (r *Registry) Update(ctx context.Context, name string, fn func(g *domain.Game) error) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	return r.locks.WithLock(name, func() error {
		g, err := r.get(ctx, name, true)
		if err != nil {
			return err
		}
		if err := fn(g); err != nil {
			return err
		}
		r.scheduleSave(ctx, name, g.Clone())
		return nil
	})
}

// View runs fn on the live world without saving. It creates the world on
// first use, like Update.
func (r *Registry) View(ctx context.Context, name string, fn func(g *domain.Game) error) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	return r.locks.WithLock(name, func() error {
		g, err := r.get(ctx, name, true)
		if err != nil {
			return err
		}
		return fn(g)
	})
}

// Snapshot returns a copy of an existing world. It never creates one and
// returns domain.ErrWorldNotFound instead.
func (r *Registry) Snapshot(ctx context.Context, name string) (*domain.Game, error) {
	if err := storage.ValidateName(name); err != nil {
		return nil, err
	}
	var snap *domain.Game
	err := r.locks.WithLock(name, func() error {
		g, err := r.get(ctx, name, false)
		if err != nil {
			return err
		}
		snap = g.Clone()
		return nil
	})
	return snap, err
}

// Save writes the world now, bypassing the autosave queue.
func (r *Registry) Save(ctx context.Context, name string) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	return r.locks.WithLock(name, func() error {
		g, err := r.get(ctx, name, true)
		if err != nil {
			return err
		}
		snap := g.Clone()
		return r.saveLocks.WithLock(name, func() error {
			if err := r.store.Save(ctx, name, snap); err != nil {
				return fmt.Errorf("save world %s: %w", name, err)
			}
			r.pendingMu.Lock()
			delete(r.pending, name)
			r.pendingMu.Unlock()
			return nil
		})
	})
}

// List returns the stored worlds.
func (r *Registry) List(ctx context.Context) ([]domain.WorldSummary, error) {
	return r.store.List(ctx)
}

// Ping checks the backing store.
func (r *Registry) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// Loaded reports how many worlds are in memory.
func (r *Registry) Loaded() int {
	return r.cache.Len()
}

// Flush synchronously writes every snapshot still waiting for its autosave.
// It is called on shutdown after the worker pool has drained and, between
// shutdowns, by CheckpointJob to retry autosaves that failed.
func (r *Registry) Flush(ctx context.Context) error {
	r.pendingMu.Lock()
	names := make([]string, 0, len(r.pending))
	for name := range r.pending {
		names = append(names, name)
	}
	r.pendingMu.Unlock()

	var errs []error
	for _, name := range names {
		err := r.saveLocks.WithLock(name, func() error {
			snap := r.takePending(name)
			if snap == nil {
				return nil
			}
			if err := r.store.Save(ctx, name, snap); err != nil {
				return fmt.Errorf("flush world %s: %w", name, err)
			}
			r.finishSave(name, snap)
			return nil
		})
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if len(names) > 0 {
		logger.FromContext(ctx).Info(LogMsgWorldsFlushed, "count", len(names))
	}
	return nil
}

// get returns the live game for name. Callers hold the world lock.
func (r *Registry) get(ctx context.Context, name string, create bool) (*domain.Game, error) {
	if g, ok := r.cache.Get(name); ok {
		return g, nil
	}

	r.pendingMu.Lock()
	unsaved, ok := r.pending[name]
	r.pendingMu.Unlock()
	if ok {
		g := unsaved.Clone()
		r.cache.Set(name, g)
		return g, nil
	}

	g, err := r.store.Load(ctx, name)
	switch {
	case err == nil:
		logger.FromContext(ctx).Info(LogMsgWorldLoaded, logger.AttrKeyWorld, name, "moves", g.Statistics.MovesCount)
	case errors.Is(err, domain.ErrWorldNotFound) && create:
		if g, err = r.create(ctx, name); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}
	r.cache.Set(name, g)
	return g, nil
}

func (r *Registry) create(ctx context.Context, name string) (*domain.Game, error) {
	var seed random.Seed
	if r.seed != nil {
		seed = *r.seed
	} else {
		var err error
		if seed, err = r.newSeed(); err != nil {
			return nil, fmt.Errorf("create world %s: %w", name, err)
		}
	}
	g := game.NewGame(seed, r.rules)
	metrics.PlacesGenerated.WithLabelValues(metrics.CauseGenesis).Add(float64(len(g.Places)))
	logger.FromContext(ctx).Info(LogMsgWorldCreated, logger.AttrKeyWorld, name, "seed", seed.String())
	r.scheduleSave(ctx, name, g.Clone())
	return g, nil
}

// scheduleSave records snap as the newest unsaved state and queues one
// autosave job unless one is already waiting.
func (r *Registry) scheduleSave(ctx context.Context, name string, snap *domain.Game) {
	r.pendingMu.Lock()
	r.pending[name] = snap
	alreadyQueued := r.queued[name]
	r.queued[name] = true
	r.pendingMu.Unlock()
	if alreadyQueued {
		return
	}

	job := &worker.AutosaveJob{
		Store:    r.store,
		World:    name,
		Lock:     r.saveLocks.GetLock(name),
		Snapshot: func() *domain.Game { return r.takePending(name) },
		Done: func(g *domain.Game, err error) {
			// A failed snapshot stays pending for the next save or Flush.
			if err == nil {
				r.finishSave(name, g)
			}
		},
	}
	if err := r.pool.Enqueue(job); err != nil {
		r.pendingMu.Lock()
		delete(r.queued, name)
		r.pendingMu.Unlock()
		logger.FromContext(ctx).Warn(LogMsgAutosaveNotQueued, logger.AttrKeyWorld, name, "error", err)
	}
}

// takePending returns the newest unsaved snapshot and lets later changes
// queue a new job. The snapshot stays in pending until it is written.
func (r *Registry) takePending(name string) *domain.Game {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()
	delete(r.queued, name)
	return r.pending[name]
}

// finishSave forgets snap unless a newer snapshot replaced it meanwhile.
func (r *Registry) finishSave(name string, snap *domain.Game) {
	r.pendingMu.Lock()
	defer r.pendingMu.Unlock()
	if r.pending[name] == snap {
		delete(r.pending, name)
	}
}
