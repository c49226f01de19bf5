package domain

import (
	"time"

	"github.com/osse101/placecraft/internal/random"
)

// WorldSummary describes a stored world without loading its snapshot.
type WorldSummary struct {
	Name      string      `json:"name"`
	Seed      random.Seed `json:"seed"`
	Moves     uint64      `json:"moves"`
	Places    int         `json:"places"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Summarize builds the listing entry for a world snapshot.
func Summarize(name string, g *Game, updatedAt time.Time) WorldSummary {
	return WorldSummary{
		Name:      name,
		Seed:      g.Seed,
		Moves:     g.Statistics.MovesCount,
		Places:    len(g.Places),
		UpdatedAt: updatedAt,
	}
}
