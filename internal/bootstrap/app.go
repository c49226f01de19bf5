// Package bootstrap wires configuration, storage, the world registry and
// both servers into a running application.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/placecraft/internal/command"
	"github.com/osse101/placecraft/internal/config"
	"github.com/osse101/placecraft/internal/event"
	"github.com/osse101/placecraft/internal/random"
	"github.com/osse101/placecraft/internal/scheduler"
	"github.com/osse101/placecraft/internal/server"
	"github.com/osse101/placecraft/internal/sse"
	"github.com/osse101/placecraft/internal/storage"
	"github.com/osse101/placecraft/internal/worker"
	"github.com/osse101/placecraft/internal/world"
)

// App holds every long-lived component
type App struct {
	Store     storage.Store
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
	Registry  *world.Registry
	Events    *sse.Hub
	Line      *server.LineServer
	Admin     *server.AdminServer
}

// NewApp opens the store and builds the registry and servers. Nothing
// listens until Run.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	opts := world.Options{
		CacheSize: cfg.WorldCacheSize,
		CacheTTL:  cfg.WorldCacheTTL,
	}
	if cfg.WorldSeed != "" {
		seed, err := random.ParseSeed(cfg.WorldSeed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidWorldSeed, err)
		}
		opts.Seed = &seed
	}

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pool := worker.NewPool(cfg.AutosaveWorkers, AutosaveQueueSize, AutosaveJobTimeout)
	pool.Start()

	registry := world.NewRegistry(store, pool, cfg.Rules, opts)
	detector := server.NewSuspiciousActivityDetector()

	sched := scheduler.New(pool)
	if cfg.CheckpointInterval > 0 {
		sched.Schedule(cfg.CheckpointInterval, &world.CheckpointJob{Registry: registry})
	}

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	app := &App{
		Store:     store,
		Pool:      pool,
		Scheduler: sched,
		Registry:  registry,
		Events:    hub,
		Line: server.NewLineServer(cfg.Port, command.NewDispatcher(registry, bus), server.LineOptions{
			DefaultWorld: cfg.DefaultWorld,
			IdleTimeout:  cfg.IdleTimeout,
			MaxLineBytes: cfg.MaxLineBytes,
			Detector:     detector,
		}),
	}
	if cfg.HTTPPort != 0 {
		app.Admin = server.NewAdminServer(cfg.HTTPPort, registry, server.AdminOptions{
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			Detector:       detector,
			Events:         hub,
			ServiceName:    cfg.ServiceName,
			Version:        cfg.Version,
		})
	}
	return app, nil
}

// Run serves until ctx is cancelled or a server fails. It does not shut
// anything down; call GracefulShutdown afterwards.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		if err := a.Line.ListenAndServe(); err != nil && !errors.Is(err, server.ErrServerClosed) {
			errCh <- fmt.Errorf("line server: %w", err)
		}
	}()
	if a.Admin != nil {
		go func() {
			if err := a.Admin.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("admin server: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		slog.Info(LogMsgShutdownSignal)
		return nil
	case err := <-errCh:
		return err
	}
}

// Components returns what GracefulShutdown needs to stop the app
func (a *App) Components() ShutdownComponents {
	return ShutdownComponents{
		Line:      a.Line,
		Admin:     a.Admin,
		Events:    a.Events,
		Scheduler: a.Scheduler,
		Pool:      a.Pool,
		Registry:  a.Registry,
		Store:     a.Store,
	}
}
