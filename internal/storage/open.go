package storage

import (
	"context"
	"fmt"

	"github.com/osse101/placecraft/internal/config"
	"github.com/osse101/placecraft/internal/database/postgres"
	"github.com/osse101/placecraft/internal/database/sqlite"
	"github.com/osse101/placecraft/internal/logger"
	"github.com/osse101/placecraft/internal/storage/file"
)

// Open builds the backend named by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	var (
		store Store
		err   error
	)
	switch cfg.StorageDriver {
	case config.StorageDriverFile:
		store, err = file.Open(cfg.DataDir)
	case config.StorageDriverSQLite:
		store, err = sqlite.Open(ctx, cfg.SQLitePath)
	case config.StorageDriverPostgres:
		store, err = postgres.Open(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StorageDriver, err)
	}
	logger.FromContext(ctx).Info(LogMsgStoreOpened, "driver", cfg.StorageDriver)
	return store, nil
}
