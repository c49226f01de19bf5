// Package storage persists whole-world snapshots. A world is always written
// and read as one document, so a crash never leaves it half saved.
package storage

import (
	"context"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/placecraft/internal/domain"
)

//go:generate mockery --name=Store --output=storagetest --outpkg=storagetest --filename=mock_store.go --structname=MockStore

// Store is implemented by every snapshot backend
type Store interface {
	// Load returns domain.ErrWorldNotFound when name has never been saved.
	Load(ctx context.Context, name string) (*domain.Game, error)
	Save(ctx context.Context, name string, g *domain.Game) error
	List(ctx context.Context) ([]domain.WorldSummary, error)
	Ping(ctx context.Context) error
	Close() error
}

var (
	validate    = validator.New(validator.WithRequiredStructEnabled())
	namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

func init() {
	if err := validate.RegisterValidation("worldname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// ValidateName rejects world names that are unsafe as file names or keys.
func ValidateName(name string) error {
	if err := validate.Var(name, NameValidationTag); err != nil {
		return fmt.Errorf("%w: world name %q must be 1-%d letters, digits, '-' or '_'",
			domain.ErrInvalidInput, name, MaxNameLength)
	}
	return nil
}
