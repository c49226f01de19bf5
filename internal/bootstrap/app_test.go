package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/placecraft/internal/config"
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/random"
	"github.com/osse101/placecraft/internal/storage/file"
)

const testSeedHex = "000102030405060708090a0b0c0d0e0f"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StorageDriver:   config.StorageDriverFile,
		DataDir:         t.TempDir(),
		DefaultWorld:    "default",
		WorldSeed:       testSeedHex,
		WorldCacheSize:  4,
		WorldCacheTTL:   time.Minute,
		AutosaveWorkers: 1,
		MaxLineBytes:    4096,
		Rules:           game.DefaultRules(),
	}
}

func TestNewApp_RunAndShutdown(t *testing.T) {
	cfg := testConfig(t)
	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, app.Admin, "HTTP_PORT 0 disables the admin server")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.NoError(t, app.Registry.Update(context.Background(), "alpha", func(g *domain.Game) error {
		g.Treasure[domain.TreasureGold] = 42
		return nil
	}))

	cancel()
	require.NoError(t, <-done)

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	GracefulShutdown(shutdownCtx, app.Components())

	// Every world is on disk once shutdown returns
	store, err := file.Open(cfg.DataDir)
	require.NoError(t, err)
	g, err := store.Load(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), g.Treasure[domain.TreasureGold])

	seed, err := random.ParseSeed(testSeedHex)
	require.NoError(t, err)
	assert.Equal(t, seed, g.Seed)
}

func TestNewApp_InvalidSeed(t *testing.T) {
	cfg := testConfig(t)
	cfg.WorldSeed = "zz"

	app, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), ErrMsgInvalidWorldSeed)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}

func TestSetupLogger_WritesFileAndRotates(t *testing.T) {
	dir := t.TempDir()
	for i := range LogFileRetentionLimit + 2 {
		name := filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2020-01-01_00-00-%02d", i)))
		require.NoError(t, os.WriteFile(name, nil, 0o644))
	}

	cfg := testConfig(t)
	cfg.LogDir = dir
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	require.NoError(t, f.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)

	_, err = os.Stat(filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, "2020-01-01_00-00-00")))
	assert.True(t, os.IsNotExist(err), "oldest log is removed")
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	cfg := testConfig(t)
	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	assert.Nil(t, f)
}
