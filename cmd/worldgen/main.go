// Command worldgen prints the genesis snapshot of a world and, optionally,
// a sample of modifiers rolled from its starting crafting budget. It is a
// debugging aid for checking that a seed regenerates the same world.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/osse101/placecraft/internal/crafting"
	"github.com/osse101/placecraft/internal/domain"
	"github.com/osse101/placecraft/internal/game"
	"github.com/osse101/placecraft/internal/logger"
	"github.com/osse101/placecraft/internal/random"
	"github.com/osse101/placecraft/internal/validation"
)

type output struct {
	World     json.RawMessage   `json:"world"`
	Modifiers []domain.Modifier `json:"modifiers,omitempty"`
}

func main() {
	seedHex := flag.String("seed", "", "World seed as 32 hex characters (random when empty)")
	places := flag.Int("places", game.DefaultStartingPlaces, "Number of starting places")
	modifiers := flag.Int("modifiers", 0, "Number of sample modifiers to roll after genesis")
	verbose := flag.Bool("v", false, "Log generation details to stderr")
	flag.Parse()

	if *verbose {
		logger.InitLoggerWithWriter(logger.DevelopmentConfig(), os.Stderr)
	}

	seed, err := parseSeed(*seedHex)
	if err != nil {
		log.Fatalf("Invalid seed: %v", err)
	}
	if *places < 1 || *places > game.DefaultMaxPlaces {
		log.Fatalf("places must be between 1 and %d", game.DefaultMaxPlaces)
	}
	if *modifiers < 0 {
		log.Fatalf("modifiers must not be negative")
	}

	rules := game.DefaultRules()
	rules.StartingPlaces = *places
	g := game.NewGame(seed, rules)
	slog.Debug("Generated world", "seed", seed.String(), "places", len(g.Places), "draws", g.RNG.Draws())

	world, err := json.Marshal(g)
	if err != nil {
		log.Fatalf("Failed to encode world: %v", err)
	}
	if err := validation.ValidateWorld(world); err != nil {
		log.Fatalf("Generated world failed validation: %v", err)
	}

	out := output{World: world}
	for range *modifiers {
		out.Modifiers = append(out.Modifiers, crafting.RollModifier(g.CurrentCraftingInfo(), g.RNG))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Generated world %s with %d places\n", seed, len(g.Places))
}

func parseSeed(text string) (random.Seed, error) {
	if text == "" {
		return random.NewSeed()
	}
	return random.ParseSeed(text)
}
