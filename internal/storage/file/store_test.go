package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/random"
	"github.com/osse101/placecraft/internal/validation"
)

func newWorld(t *testing.T, seed byte, moves int) *domain.Game {
	t.Helper()
	g := game.NewGame(random.Seed{seed}, game.DefaultRules())
	for i := range moves {
		game.Move(g, i%len(g.Places))
	}
	return g
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	original := newWorld(t, 1, 25)
	require.NoError(t, store.Save(ctx, "alpha", original))

	loaded, err := store.Load(ctx, "alpha")
	require.NoError(t, err)
	assert.JSONEq(t, mustJSON(t, original), mustJSON(t, loaded))

	// The restored generator continues the same sequence.
	a := game.Move(original, 0)
	b := game.Move(loaded, 0)
	assert.Equal(t, mustJSON(t, a), mustJSON(t, b))
	assert.Equal(t, original.RNG.Draws(), loaded.RNG.Draws())
}

func TestStore_LoadMissing(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrWorldNotFound)
}

func TestStore_LoadRejectsCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"places": []}`), 0o644))

	_, err = store.Load(context.Background(), "broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), validation.ErrMsgSchemaValidationFailed)
}

func TestStore_SaveOverwritesAndLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "w", newWorld(t, 2, 0)))
	later := newWorld(t, 2, 10)
	require.NoError(t, store.Save(ctx, "w", later))

	loaded, err := store.Load(ctx, "w")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), loaded.Statistics.MovesCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "w.json", entries[0].Name())
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "zeta", newWorld(t, 3, 4)))
	require.NoError(t, store.Save(ctx, "alpha", newWorld(t, 4, 0)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	summaries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "alpha", summaries[0].Name)
	assert.Equal(t, random.Seed{4}, summaries[0].Seed)
	assert.Equal(t, "zeta", summaries[1].Name)
	assert.Equal(t, uint64(4), summaries[1].Moves)
	assert.False(t, summaries[1].UpdatedAt.IsZero())
}

func TestStore_PingAndContext(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "nested", "worlds"))
	require.NoError(t, err)
	assert.NoError(t, store.Ping(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, store.Save(ctx, "w", newWorld(t, 5, 0)), context.Canceled)
	_, err = store.Load(ctx, "w")
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, os.RemoveAll(filepath.Join(dir, "nested")))
	assert.Error(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close())
}

func TestOpen_RequiresDir(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}
