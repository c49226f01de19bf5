package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/random"
)

func openTestStore(t *testing.T) (*WorldStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "worlds", "test.db")
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func playedWorld(seed byte, moves int) *domain.Game {
	g := game.NewGame(random.Seed{seed}, game.DefaultRules())
	for i := range moves {
		game.Move(g, i%len(g.Places))
	}
	return g
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestWorldStore_RoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	original := playedWorld(1, 40)
	require.NoError(t, store.Save(ctx, "alpha", original))

	loaded, err := store.Load(ctx, "alpha")
	require.NoError(t, err)
	assert.JSONEq(t, toJSON(t, original), toJSON(t, loaded))
	assert.Equal(t, toJSON(t, game.Move(original, 2)), toJSON(t, game.Move(loaded, 2)))
}

func TestWorldStore_LoadMissing(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrWorldNotFound)
}

func TestWorldStore_SaveUpsertsAndLists(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	require.NoError(t, store.Save(ctx, "zeta", playedWorld(2, 0)))
	require.NoError(t, store.Save(ctx, "zeta", playedWorld(2, 7)))
	require.NoError(t, store.Save(ctx, "alpha", playedWorld(3, 0)))

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "alpha", summaries[0].Name)
	assert.Equal(t, "zeta", summaries[1].Name)
	assert.Equal(t, uint64(7), summaries[1].Moves)
	assert.Equal(t, random.Seed{2}, summaries[1].Seed)
	assert.Equal(t, 3, summaries[1].Places)
	assert.Equal(t, fixed, summaries[1].UpdatedAt)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "keep", playedWorld(4, 3)))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	g, err := reopened.Load(ctx, "keep")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), g.Statistics.MovesCount)
	assert.NoError(t, reopened.Ping(ctx))
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), " ")
	assert.Error(t, err)
}
