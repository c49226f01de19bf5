package game

import (
	"encoding/json"
	"testing"

	"github.com/osse101/placecraft/internal/crafting"
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/random"
)

// Compare runs with benchstat:
//
//	go test -run=^$ -bench=. -count=10 ./internal/game > new.txt
//	benchstat old.txt new.txt

var benchSeed = random.Seed{0x0f, 0x0e, 0x0d, 0x0c}

func BenchmarkNewGame(b *testing.B) {
	rules := DefaultRules()
	b.ReportAllocs()
	for b.Loop() {
		_ = NewGame(benchSeed, rules)
	}
}

func BenchmarkMove(b *testing.B) {
	g := NewGame(benchSeed, DefaultRules())
	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_ = Move(g, i%len(g.Places))
		i++
	}
}

func BenchmarkRollModifier(b *testing.B) {
	g := NewGame(benchSeed, DefaultRules())
	info := g.CurrentCraftingInfo()
	b.ReportAllocs()
	for b.Loop() {
		_ = crafting.RollModifier(info, g.RNG)
	}
}

func BenchmarkSnapshotRoundTrip(b *testing.B) {
	g := NewGame(benchSeed, DefaultRules())
	for i := range 100 {
		_ = Move(g, i%len(g.Places))
	}
	b.ReportAllocs()
	for b.Loop() {
		data, err := json.Marshal(g)
		if err != nil {
			b.Fatal(err)
		}
		var back domain.Game
		if err := json.Unmarshal(data, &back); err != nil {
			b.Fatal(err)
		}
	}
}
