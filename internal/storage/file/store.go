// Package file stores each world as one JSON document in a directory.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/validation"
)

const (
	extension = ".json"
	dirPerm   = 0o755
	filePerm  = 0o644
)

// Store keeps world snapshots under dir/<name>.json
type Store struct {
	dir string
}

// Open creates dir when missing and returns a store rooted there.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("data dir is required")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &Store{dir: filepath.Clean(dir)}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+extension)
}

// Load reads and schema-checks a snapshot.
func (s *Store) Load(ctx context.Context, name string) (*domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.load(name)
}

func (s *Store) load(name string) (*domain.Game, error) {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrWorldNotFound, name)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := validation.ValidateWorld(data); err != nil {
		return nil, fmt.Errorf("world %s: %w", name, err)
	}
	var g domain.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return &g, nil
}

// Save writes the snapshot to a temp file in the same directory and renames
// it over the previous one.
func (s *Store) Save(ctx context.Context, name string, g *domain.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal world %s: %w", name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// List summarizes every stored world, sorted by name.
func (s *Store) List(ctx context.Context) ([]domain.WorldSummary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data dir %s: %w", s.dir, err)
	}
	summaries := make([]domain.WorldSummary, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), extension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), extension)
		g, err := s.load(name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, domain.Summarize(name, g, info.ModTime().UTC()))
	}
	slices.SortFunc(summaries, func(a, b domain.WorldSummary) int {
		return strings.Compare(a.Name, b.Name)
	})
	return summaries, nil
}

// Ping checks that the data directory is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", s.dir)
	}
	return nil
}

// Close is a no-op; files are closed after every write.
func (s *Store) Close() error {
	return nil
}
