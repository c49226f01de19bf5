package world

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/random"
	"github.com/osse101/placecraft/internal/storage/file"
	"github.com/osse101/placecraft/internal/storage/storagetest"
	"github.com/osse101/placecraft/internal/worker"
)

var testSeed = random.Seed{0xab, 0xcd}

func idlePool() *worker.Pool {
	// Never started: jobs stay queued so tests control when saves happen.
	return worker.NewPool(1, 64, time.Second)
}

func addGold(amount uint64) func(*domain.Game) error {
	return func(g *domain.Game) error {
		g.Treasure[domain.TreasureGold] += amount
		return nil
	}
}

func gold(t *testing.T, r *Registry, name string) uint64 {
	t.Helper()
	var got uint64
	require.NoError(t, r.View(context.Background(), name, func(g *domain.Game) error {
		got = g.Treasure[domain.TreasureGold]
		return nil
	}))
	return got
}

func TestRegistry_CreatesWorldOnFirstUse(t *testing.T) {
	store := &storagetest.MockStore{}
	store.On("Load", mock.Anything, "fresh").Return(nil, domain.ErrWorldNotFound).Once()
	r := NewRegistry(store, idlePool(), game.DefaultRules(), Options{CacheSize: 4, Seed: &testSeed})

	var seed random.Seed
	require.NoError(t, r.View(context.Background(), "fresh", func(g *domain.Game) error {
		seed = g.Seed
		return nil
	}))
	assert.Equal(t, testSeed, seed)
	assert.Equal(t, 1, r.Loaded())

	// Second access is served from the cache.
	require.NoError(t, r.View(context.Background(), "fresh", func(*domain.Game) error { return nil }))
	store.AssertExpectations(t)
}

func TestRegistry_RandomSeedWhenUnset(t *testing.T) {
	store := &storagetest.MockStore{}
	store.On("Load", mock.Anything, mock.Anything).Return(nil, domain.ErrWorldNotFound)
	r := NewRegistry(store, idlePool(), game.DefaultRules(), Options{CacheSize: 4})
	r.newSeed = func() (random.Seed, error) { return random.Seed{42}, nil }

	snap := requireSnapshotAfterView(t, r, "a")
	assert.Equal(t, random.Seed{42}, snap.Seed)

	r.newSeed = func() (random.Seed, error) { return random.Seed{}, errors.New("no entropy") }
	err := r.View(context.Background(), "b", func(*domain.Game) error { return nil })
	assert.ErrorContains(t, err, "no entropy")
}

func requireSnapshotAfterView(t *testing.T, r *Registry, name string) *domain.Game {
	t.Helper()
	require.NoError(t, r.View(context.Background(), name, func(*domain.Game) error { return nil }))
	snap, err := r.Snapshot(context.Background(), name)
	require.NoError(t, err)
	return snap
}

func TestRegistry_SnapshotDoesNotCreate(t *testing.T) {
	store := &storagetest.MockStore{}
	store.On("Load", mock.Anything, "ghost").Return(nil, domain.ErrWorldNotFound)
	r := NewRegistry(store, idlePool(), game.DefaultRules(), Options{CacheSize: 4})

	_, err := r.Snapshot(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrWorldNotFound)
	assert.Zero(t, r.Loaded())
}

func TestRegistry_RejectsBadNames(t *testing.T) {
	r := NewRegistry(&storagetest.MockStore{}, idlePool(), game.DefaultRules(), Options{CacheSize: 4})
	ctx := context.Background()

	assert.ErrorIs(t, r.Update(ctx, "../x", addGold(1)), domain.ErrInvalidInput)
	assert.ErrorIs(t, r.View(ctx, "", addGold(1)), domain.ErrInvalidInput)
	_, err := r.Snapshot(ctx, "a b")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, r.Save(ctx, "a/b"), domain.ErrInvalidInput)
}

func TestRegistry_StoreErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")
	store := &storagetest.MockStore{}
	store.On("Load", mock.Anything, "w").Return(nil, boom)
	r := NewRegistry(store, idlePool(), game.DefaultRules(), Options{CacheSize: 4})

	assert.ErrorIs(t, r.Update(context.Background(), "w", addGold(1)), boom)
}

func TestRegistry_FailedUpdateQueuesNothing(t *testing.T) {
	store := &storagetest.MockStore{}
	store.On("Load", mock.Anything, "w").Return(nil, domain.ErrWorldNotFound)
	r := NewRegistry(store, idlePool(), game.DefaultRules(), Options{CacheSize: 4, Seed: &testSeed})
	ctx := context.Background()

	require.NoError(t, r.View(ctx, "w", func(*domain.Game) error { return nil }))
	r.pending = map[string]*domain.Game{}

	err := r.Update(ctx, "w", func(*domain.Game) error { return domain.ErrInvalidInput })
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, r.pending)
}

func TestRegistry_EvictedWorldReloadsUnsavedState(t *testing.T) {
	store := &storagetest.MockStore{}
	store.On("Load", mock.Anything, mock.Anything).Return(nil, domain.ErrWorldNotFound)
	r := NewRegistry(store, idlePool(), game.DefaultRules(), Options{CacheSize: 1, Seed: &testSeed})
	ctx := context.Background()

	require.NoError(t, r.Update(ctx, "one", addGold(5)))
	require.NoError(t, r.Update(ctx, "two", addGold(1)))
	require.Equal(t, 1, r.Loaded())

	assert.Equal(t, uint64(5), gold(t, r, "one"))
	store.AssertNumberOfCalls(t, "Load", 2)
}

func TestRegistry_SaveWritesImmediately(t *testing.T) {
	store := &storagetest.MockStore{}
	store.On("Load", mock.Anything, "w").Return(nil, domain.ErrWorldNotFound)
	store.On("Save", mock.Anything, "w", mock.MatchedBy(func(g *domain.Game) bool {
		return g.Treasure[domain.TreasureGold] == 9
	})).Return(nil).Once()
	r := NewRegistry(store, idlePool(), game.DefaultRules(), Options{CacheSize: 4, Seed: &testSeed})
	ctx := context.Background()

	require.NoError(t, r.Update(ctx, "w", addGold(9)))
	require.NoError(t, r.Save(ctx, "w"))

	// Nothing is left for the flush.
	require.NoError(t, r.Flush(ctx))
	store.AssertExpectations(t)
}

func TestRegistry_FlushWritesWhenPoolStopped(t *testing.T) {
	store := &storagetest.MockStore{}
	store.On("Load", mock.Anything, "w").Return(nil, domain.ErrWorldNotFound)
	store.On("Save", mock.Anything, "w", mock.MatchedBy(func(g *domain.Game) bool {
		return g.Treasure[domain.TreasureGold] == 3
	})).Return(nil).Once()

	pool := idlePool()
	require.NoError(t, pool.Shutdown(context.Background()))
	r := NewRegistry(store, pool, game.DefaultRules(), Options{CacheSize: 4, Seed: &testSeed})
	ctx := context.Background()

	require.NoError(t, r.Update(ctx, "w", addGold(3)))
	require.NoError(t, r.Flush(ctx))
	store.AssertExpectations(t)

	// A failed flush keeps the snapshot.
	store.ExpectedCalls = nil
	store.On("Save", mock.Anything, "w", mock.Anything).Return(errors.New("disk full"))
	require.NoError(t, r.Update(ctx, "w", addGold(1)))
	assert.ErrorContains(t, r.Flush(ctx), "disk full")
	assert.Len(t, r.pending, 1)
}

func TestRegistry_AutosavePersistsLatestState(t *testing.T) {
	store, err := file.Open(t.TempDir())
	require.NoError(t, err)
	pool := worker.NewPool(2, 64, time.Second)
	pool.Start()
	r := NewRegistry(store, pool, game.DefaultRules(), Options{CacheSize: 4, Seed: &testSeed})
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 40 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Update(ctx, "shared", addGold(1)))
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(40), gold(t, r, "shared"))

	require.NoError(t, pool.Shutdown(ctx))
	require.NoError(t, r.Flush(ctx))
	assert.Empty(t, r.pending)

	saved, err := store.Load(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, uint64(40), saved.Treasure[domain.TreasureGold])
	assert.Equal(t, testSeed, saved.Seed)

	summaries, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "shared", summaries[0].Name)
	assert.NoError(t, r.Ping(ctx))
}
