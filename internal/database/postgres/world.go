// Package postgres stores world snapshots in PostgreSQL as JSONB.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/placecraft/internal/database"
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/random"
)

const (
	queryLoadWorld = `SELECT snapshot FROM worlds WHERE name = $1`

	querySaveWorld = `
		INSERT INTO worlds (name, seed, snapshot, moves, places, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE
		SET seed = EXCLUDED.seed,
			snapshot = EXCLUDED.snapshot,
			moves = EXCLUDED.moves,
			places = EXCLUDED.places,
			updated_at = NOW()
	`

	queryListWorlds = `SELECT name, seed, moves, places, updated_at FROM worlds ORDER BY name`
)

// WorldStore implements the world store for PostgreSQL
type WorldStore struct {
	db *pgxpool.Pool
}

// NewWorldStore wraps an already migrated pool
func NewWorldStore(db *pgxpool.Pool) *WorldStore {
	return &WorldStore{db: db}
}

// Open connects, applies migrations through the database/sql adapter and
// returns a store that owns the pool.
func Open(ctx context.Context, connString string, maxConns int32, maxIdle, maxLife time.Duration) (*WorldStore, error) {
	pool, err := database.NewPool(ctx, connString, maxConns, maxIdle, maxLife)
	if err != nil {
		return nil, err
	}
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := database.Migrate(ctx, sqlDB, database.DialectPostgres); err != nil {
		pool.Close()
		return nil, err
	}
	return NewWorldStore(pool), nil
}

// Load returns the stored snapshot for name
func (s *WorldStore) Load(ctx context.Context, name string) (*domain.Game, error) {
	var snapshot []byte
	err := s.db.QueryRow(ctx, queryLoadWorld, name).Scan(&snapshot)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorldNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load world %s: %w", name, err)
	}

	var g domain.Game
	if err := json.Unmarshal(snapshot, &g); err != nil {
		return nil, fmt.Errorf("failed to decode world %s: %w", name, err)
	}
	return &g, nil
}

// Save upserts the snapshot and its listing columns
func (s *WorldStore) Save(ctx context.Context, name string, g *domain.Game) error {
	snapshot, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to encode world %s: %w", name, err)
	}
	_, err = s.db.Exec(ctx, querySaveWorld,
		name,
		g.Seed.String(),
		string(snapshot),
		clampInt64(g.Statistics.MovesCount),
		len(g.Places),
	)
	if err != nil {
		return fmt.Errorf("failed to save world %s: %w", name, err)
	}
	return nil
}

// List returns every stored world ordered by name
func (s *WorldStore) List(ctx context.Context) ([]domain.WorldSummary, error) {
	rows, err := s.db.Query(ctx, queryListWorlds)
	if err != nil {
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}
	defer rows.Close()

	var summaries []domain.WorldSummary
	for rows.Next() {
		var (
			summary domain.WorldSummary
			seed    string
			moves   int64
		)
		if err := rows.Scan(&summary.Name, &seed, &moves, &summary.Places, &summary.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan world row: %w", err)
		}
		if summary.Seed, err = random.ParseSeed(seed); err != nil {
			return nil, fmt.Errorf("world %s: %w", summary.Name, err)
		}
		summary.Moves = uint64(max(moves, 0))
		summary.UpdatedAt = summary.UpdatedAt.UTC()
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate worlds: %w", err)
	}
	return summaries, nil
}

// Ping checks the pool
func (s *WorldStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *WorldStore) Close() error {
	s.db.Close()
	return nil
}

func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
