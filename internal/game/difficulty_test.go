package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/placecraft/internal/domain"
)

func richGame(t *testing.T) (*domain.Game, Rules) {
	t.Helper()
	rules := DefaultRules()
	g := NewGame(testSeed(t), rules)
	g.Treasure[domain.TreasureGold] = 1000
	return g, rules
}

func TestExpandMaxResistance(t *testing.T) {
	g, rules := richGame(t)

	change, err := ExpandMaxResistance(g, rules, domain.DamageFire, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), change.GoldSpent)
	assert.Nil(t, change.RerolledPlace)
	assert.Equal(t, uint64(4), g.Difficulty.MaxResistance[domain.DamageFire])
	assert.Equal(t, uint64(4), g.Difficulty.MinResistance[domain.DamageFire])

	_, err = ExpandMaxResistance(g, rules, domain.DamagePhysical, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), g.Difficulty.MaxResistance[domain.DamagePhysical])
	assert.Equal(t, uint64(1), g.Difficulty.MinResistance[domain.DamagePhysical])
	assert.Equal(t, uint64(965), g.Treasure[domain.TreasureGold])
}

func TestResistanceBounds(t *testing.T) {
	tests := []struct {
		name    string
		run     func(g *domain.Game, rules Rules) (DifficultyChange, error)
		wantErr error
		reroll  bool
		check   func(t *testing.T, d domain.Difficulty)
	}{
		{
			name: "expand min up to max",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ExpandMinResistance(g, rules, domain.DamagePhysical, 1)
			},
			check: func(t *testing.T, d domain.Difficulty) {
				assert.Equal(t, uint64(2), d.MinResistance[domain.DamagePhysical])
			},
		},
		{
			name: "expand min past max",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ExpandMinResistance(g, rules, domain.DamagePhysical, 2)
			},
			wantErr: domain.ErrDifficultyBounds,
		},
		{
			name: "expand min of locked type",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ExpandMinResistance(g, rules, domain.DamageHoly, 1)
			},
			wantErr: domain.ErrDifficultyBounds,
		},
		{
			name: "reduce max down to min",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ReduceMaxResistance(g, rules, domain.DamagePhysical, 1)
			},
			reroll: true,
			check: func(t *testing.T, d domain.Difficulty) {
				assert.Equal(t, uint64(1), d.MaxResistance[domain.DamagePhysical])
			},
		},
		{
			name: "reduce max below min",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ReduceMaxResistance(g, rules, domain.DamagePhysical, 2)
			},
			wantErr: domain.ErrDifficultyBounds,
		},
		{
			name: "reduce min to zero",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ReduceMinResistance(g, rules, domain.DamagePhysical, 1)
			},
			reroll: true,
			check: func(t *testing.T, d domain.Difficulty) {
				assert.Equal(t, uint64(0), d.MinResistance[domain.DamagePhysical])
			},
		},
		{
			name: "reduce min below zero",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ReduceMinResistance(g, rules, domain.DamagePhysical, 2)
			},
			wantErr: domain.ErrDifficultyBounds,
		},
		{
			name: "zero amount",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ExpandMaxResistance(g, rules, domain.DamagePhysical, 0)
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "unknown damage type",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ExpandMaxResistance(g, rules, domain.DamageType("Poison"), 1)
			},
			wantErr: domain.ErrUnknownDamageType,
		},
		{
			name: "expand max simultaneous",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ExpandMaxSimultaneous(g, rules)
			},
			check: func(t *testing.T, d domain.Difficulty) {
				assert.Equal(t, uint8(2), d.MaxSimultaneousResistances)
			},
		},
		{
			name: "expand min simultaneous at max",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ExpandMinSimultaneous(g, rules)
			},
			wantErr: domain.ErrDifficultyBounds,
		},
		{
			name: "reduce max simultaneous at one",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ReduceMaxSimultaneous(g, rules)
			},
			wantErr: domain.ErrAtMinimum,
		},
		{
			name: "reduce min simultaneous",
			run: func(g *domain.Game, rules Rules) (DifficultyChange, error) {
				return ReduceMinSimultaneous(g, rules)
			},
			reroll: true,
			check: func(t *testing.T, d domain.Difficulty) {
				assert.Equal(t, uint8(0), d.MinSimultaneousResistances)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rules := richGame(t)
			before := g.Clone()

			change, err := tt.run(g, rules)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, g.Difficulty, change.Difficulty)
			assert.Equal(t, uint64(995), g.Treasure[domain.TreasureGold])
			if tt.reroll {
				require.NotNil(t, change.RerolledPlace)
				assert.Less(t, *change.RerolledPlace, len(g.Places))
			} else {
				assert.Nil(t, change.RerolledPlace)
			}
			tt.check(t, g.Difficulty)
		})
	}
}

func TestSimultaneousLimits(t *testing.T) {
	g, rules := richGame(t)

	for range MaxSimultaneousResistances - 1 {
		_, err := ExpandMaxSimultaneous(g, rules)
		require.NoError(t, err)
	}
	_, err := ExpandMaxSimultaneous(g, rules)
	assert.ErrorIs(t, err, domain.ErrAtMaximum)

	_, err = ExpandMinSimultaneous(g, rules)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), g.Difficulty.MinSimultaneousResistances)

	_, err = ReduceMaxSimultaneous(g, rules)
	require.NoError(t, err)
	assert.Equal(t, uint8(MaxSimultaneousResistances-1), g.Difficulty.MaxSimultaneousResistances)
}
