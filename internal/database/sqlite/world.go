// Package sqlite stores world snapshots in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osse101/placecraft/internal/database"
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/random"
)

const (
	driverName = "sqlite"
	dsnPragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	queryLoadWorld = `SELECT snapshot FROM worlds WHERE name = ?`

	querySaveWorld = `
		INSERT INTO worlds (name, seed, snapshot, moves, places, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE
		SET seed = excluded.seed,
			snapshot = excluded.snapshot,
			moves = excluded.moves,
			places = excluded.places,
			updated_at = excluded.updated_at
	`

	queryListWorlds = `SELECT name, seed, moves, places, updated_at FROM worlds ORDER BY name`
)

// WorldStore persists worlds in SQLite
type WorldStore struct {
	db  *sql.DB
	now func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating when needed) the database at path and applies
// embedded migrations.
func Open(ctx context.Context, path string) (*WorldStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open(driverName, cleanPath+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// A single connection serializes writers; SQLite allows only one anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &WorldStore{db: db, now: time.Now}, nil
}

// Load returns the stored snapshot for name
func (s *WorldStore) Load(ctx context.Context, name string) (*domain.Game, error) {
	var snapshot string
	err := s.db.QueryRowContext(ctx, queryLoadWorld, name).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorldNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load world %s: %w", name, err)
	}

	var g domain.Game
	if err := json.Unmarshal([]byte(snapshot), &g); err != nil {
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
	now := toMillis(s.now())
	moves := int64(math.MaxInt64)
	if g.Statistics.MovesCount < math.MaxInt64 {
		moves = int64(g.Statistics.MovesCount)
	}
	_, err = s.db.ExecContext(ctx, querySaveWorld,
		name, g.Seed.String(), string(snapshot), moves, len(g.Places), now, now)
	if err != nil {
		return fmt.Errorf("failed to save world %s: %w", name, err)
	}
	return nil
}

// List returns every stored world ordered by name
func (s *WorldStore) List(ctx context.Context) ([]domain.WorldSummary, error) {
	rows, err := s.db.QueryContext(ctx, queryListWorlds)
	if err != nil {
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}
	defer rows.Close()

	var summaries []domain.WorldSummary
	for rows.Next() {
		var (
			summary   domain.WorldSummary
			seed      string
			moves     int64
			updatedAt int64
		)
		if err := rows.Scan(&summary.Name, &seed, &moves, &summary.Places, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan world row: %w", err)
		}
		if summary.Seed, err = random.ParseSeed(seed); err != nil {
			return nil, fmt.Errorf("world %s: %w", summary.Name, err)
		}
		summary.Moves = uint64(max(moves, 0))
		summary.UpdatedAt = fromMillis(updatedAt)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate worlds: %w", err)
	}
	return summaries, nil
}

// Ping checks the database handle
func (s *WorldStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the SQLite handle
func (s *WorldStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
