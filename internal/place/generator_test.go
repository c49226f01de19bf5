package place

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/random"
)

var testSeed = random.Seed{42, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 7}

func multiTypeDifficulty() domain.Difficulty {
	return domain.Difficulty{
		MaxResistance: map[domain.DamageType]uint64{
			domain.DamagePhysical: 40, domain.DamageFire: 30, domain.DamageFrost: 20, domain.DamageHoly: 90,
		},
		MinResistance: map[domain.DamageType]uint64{
			domain.DamagePhysical: 10, domain.DamageFire: 5, domain.DamageFrost: 20, domain.DamageHoly: 45,
		},
		MaxSimultaneousResistances: 3,
		MinSimultaneousResistances: 2,
	}
}

func TestGenerate_SingleTypeCoverage(t *testing.T) {
	d := domain.Difficulty{
		MaxResistance:              map[domain.DamageType]uint64{domain.DamageFire: 12},
		MinResistance:              map[domain.DamageType]uint64{domain.DamageFire: 4},
		MaxSimultaneousResistances: 5,
		MinSimultaneousResistances: 1,
	}
	rng := random.New(testSeed)

	for i := 0; i < 1000; i++ {
		p := Generate(d, 3, rng)
		require.Len(t, p.Resistance, 1)
		value, ok := p.Resistance[domain.DamageFire]
		require.True(t, ok)
		assert.GreaterOrEqual(t, value, uint64(4))
		assert.LessOrEqual(t, value, uint64(12))
	}
}

func TestGenerate_RespectsSimultaneousBounds(t *testing.T) {
	d := multiTypeDifficulty()
	rng := random.New(testSeed)
	sizes := map[int]int{}

	for i := 0; i < 500; i++ {
		p := Generate(d, 4, rng)
		sizes[len(p.Resistance)]++
		for typ, value := range p.Resistance {
			assert.GreaterOrEqual(t, value, d.MinResistance[typ])
			assert.LessOrEqual(t, value, d.MaxResistance[typ])
		}
		assert.Equal(t, d, p.ItemRewardPossibleRolls)
		assert.Positive(t, p.Reward[domain.TreasureGold])
	}

	assert.Positive(t, sizes[2])
	assert.Positive(t, sizes[3])
	assert.Len(t, sizes, 2)
}

func TestGenerate_ZeroSimultaneousIsFree(t *testing.T) {
	d := multiTypeDifficulty()
	d.MinSimultaneousResistances = 0
	d.MaxSimultaneousResistances = 0

	p := Generate(d, 1, random.New(testSeed))
	assert.Empty(t, p.Resistance)
	assert.Positive(t, p.Reward[domain.TreasureGold])
}

func TestGenerate_Deterministic(t *testing.T) {
	d := multiTypeDifficulty()
	a := random.New(testSeed)
	b := random.New(testSeed)

	for i := 0; i < 200; i++ {
		assert.Equal(t, Generate(d, i, a), Generate(d, i, b))
	}
}

func TestGenerate_DoesNotMutateDifficulty(t *testing.T) {
	d := multiTypeDifficulty()
	before := d.Clone()
	p := Generate(d, 2, random.New(testSeed))

	p.ItemRewardPossibleRolls.MaxResistance[domain.DamageFire] = 1000
	assert.Equal(t, before, d)
}

func TestReward(t *testing.T) {
	d := multiTypeDifficulty()
	// average of all eight bounds is (80+180)/8 = 32

	tests := []struct {
		name       string
		placeCount int
		sum        uint64
		rolled     int
		expected   uint64
	}{
		{"difficulty only", 4, 0, 0, 8},
		{"zero places floors divisor", 0, 0, 0, 32},
		{"resistance part", 4, 90, 2, 10*2 + 8},
		{"difficulty part floors to one", 1000, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reward(d, tt.placeCount, tt.sum, tt.rolled))
		})
	}
}
