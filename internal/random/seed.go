// Package random provides the seeded generator every world draws from.
//
// A world is created from a 16-byte Seed. The same seed and the same sequence
// of draws always produce the same values, on every platform, so a world can
// be regenerated from its seed and replayed for debugging.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// SeedSize is the length of a world seed in bytes.
const SeedSize = 16

// Seed is the fixed-length world seed.
type Seed [SeedSize]byte

// NewSeed draws a seed from the system entropy source.
func NewSeed() (Seed, error) {
	var s Seed
	if _, err := crand.Read(s[:]); err != nil {
		return Seed{}, fmt.Errorf("read random seed: %w", err)
	}
	return s, nil
}

// ParseSeed decodes the hex form produced by Seed.String.
func ParseSeed(text string) (Seed, error) {
	raw, err := hex.DecodeString(text)
	if err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	if len(raw) != SeedSize {
		return Seed{}, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(raw))
	}
	var s Seed
	copy(s[:], raw)
	return s, nil
}

// String renders the seed as lowercase hex.
func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// MarshalText implements encoding.TextMarshaler.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Seed) UnmarshalText(text []byte) error {
	parsed, err := ParseSeed(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Seed) halves() (uint64, uint64) {
	return binary.LittleEndian.Uint64(s[:8]), binary.LittleEndian.Uint64(s[8:])
}
