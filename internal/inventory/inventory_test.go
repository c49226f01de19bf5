package inventory

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/placecraft/internal/domain"
)

// gameWith builds an inventory where modifiers[i] < 0 marks an empty slot
// and any other value an item with that many modifiers.
func gameWith(modifiers ...int) *domain.Game {
	inv := make([]domain.Slot, len(modifiers))
	for i, n := range modifiers {
		if n < 0 {
			inv[i] = domain.EmptySlot()
			continue
		}
		inv[i] = domain.Occupied(domain.Item{Modifiers: make([]domain.Modifier, n)})
	}
	return &domain.Game{Inventory: inv}
}

func TestParseIndexSpecifier(t *testing.T) {
	tests := []struct {
		input   string
		want    IndexSpecifier
		wantErr bool
	}{
		{"5", AbsoluteIndex(5), false},
		{"+2", After(2), false},
		{"-1", Before(1), false},
		{" 0 ", AbsoluteIndex(0), false},
		{"+", IndexSpecifier{}, true},
		{"--1", IndexSpecifier{}, true},
		{"abc", IndexSpecifier{}, true},
		{"", IndexSpecifier{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseIndexSpecifier(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) IndexSpecifier {
	t.Helper()
	spec, err := ParseIndexSpecifier(s)
	require.NoError(t, err)
	return spec
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		game    *domain.Game
		pivot   int
		specs   []IndexSpecifier
		checks  []SlotCheck
		want    []int
		wantErr error
		errMsg  string
	}{
		{
			name:  "absolute indexes in order",
			game:  gameWith(0, 0, 0, 0),
			pivot: 0,
			specs: []IndexSpecifier{AbsoluteIndex(3), AbsoluteIndex(1)},
			want:  []int{3, 1},
		},
		{
			name:    "absolute equal to pivot",
			game:    gameWith(0, 0),
			pivot:   1,
			specs:   []IndexSpecifier{AbsoluteIndex(1)},
			wantErr: domain.ErrInvalidSacrifice,
			errMsg:  "cannot be the same",
		},
		{
			name:    "duplicate absolute",
			game:    gameWith(0, 0, 0),
			pivot:   0,
			specs:   []IndexSpecifier{AbsoluteIndex(2), AbsoluteIndex(2)},
			wantErr: domain.ErrInvalidSacrifice,
			errMsg:  "already selected",
		},
		{
			name:    "absolute empty slot",
			game:    gameWith(0, -1),
			pivot:   0,
			specs:   []IndexSpecifier{AbsoluteIndex(1)},
			wantErr: domain.ErrEmptySlot,
		},
		{
			name:    "absolute out of range",
			game:    gameWith(0, 0),
			pivot:   0,
			specs:   []IndexSpecifier{AbsoluteIndex(9)},
			wantErr: domain.ErrIndexOutOfRange,
		},
		{
			name:  "relative positive skips empty and claimed slots",
			game:  gameWith(0, -1, 0, 0),
			pivot: 0,
			specs: []IndexSpecifier{AbsoluteIndex(2), After(1)},
			want:  []int{2, 3},
		},
		{
			name:  "relative positive zero skips the pivot",
			game:  gameWith(0, 0),
			pivot: 0,
			specs: []IndexSpecifier{After(0)},
			want:  []int{1},
		},
		{
			name:    "relative positive runs off the end",
			game:    gameWith(0, 0, -1),
			pivot:   0,
			specs:   []IndexSpecifier{After(1), After(1)},
			wantErr: domain.ErrInvalidSacrifice,
			errMsg:  "did not find any items from index 1 until end of inventory",
		},
		{
			name:    "relative positive offset past the int range",
			game:    gameWith(1, 1, 1),
			pivot:   2,
			specs:   []IndexSpecifier{After(math.MaxInt)},
			wantErr: domain.ErrInvalidSacrifice,
			errMsg:  "until end of inventory",
		},
		{
			name:  "relative negative scans backward",
			game:  gameWith(0, 0, -1, 0),
			pivot: 3,
			specs: []IndexSpecifier{Before(1), Before(1)},
			want:  []int{1, 0},
		},
		{
			name:    "relative negative runs off the start",
			game:    gameWith(-1, 0, 0),
			pivot:   2,
			specs:   []IndexSpecifier{Before(1), Before(1)},
			wantErr: domain.ErrInvalidSacrifice,
			errMsg:  "did not find any items from index 1 until start of inventory",
		},
		{
			name:    "relative negative before index zero",
			game:    gameWith(0, 0),
			pivot:   0,
			specs:   []IndexSpecifier{Before(2)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:   "relative skips items failing checks",
			game:   gameWith(0, 0, 2),
			pivot:  0,
			specs:  []IndexSpecifier{After(1)},
			checks: []SlotCheck{MinModifiers(1)},
			want:   []int{2},
		},
		{
			name:    "absolute fails check",
			game:    gameWith(0, 0),
			pivot:   0,
			specs:   []IndexSpecifier{AbsoluteIndex(1)},
			checks:  []SlotCheck{MinModifiers(1)},
			wantErr: domain.ErrInvalidSacrifice,
			errMsg:  "has 0 modifiers, needs at least 1",
		},
		{
			name:  "no specifiers",
			game:  gameWith(0),
			pivot: 0,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.game.Clone()
			got, err := Resolve(tt.game, tt.pivot, tt.specs, tt.checks...)
			assert.Equal(t, before, tt.game)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_HugeRelativeOffsetStaysForward(t *testing.T) {
	g := gameWith(1, 1, 1)
	spec, err := ParseIndexSpecifier("+" + strconv.Itoa(math.MaxInt))
	require.NoError(t, err)

	got, err := Resolve(g, 0, []IndexSpecifier{spec})

	require.ErrorIs(t, err, domain.ErrInvalidSacrifice)
	assert.Nil(t, got)
	assert.Equal(t, gameWith(1, 1, 1), g)
}

func TestForward(t *testing.T) {
	assert.Equal(t, 5, forward(2, 3))
	assert.Equal(t, 1, forward(2, -1))
	assert.Equal(t, math.MaxInt, forward(2, math.MaxInt))
	assert.Equal(t, math.MaxInt, forward(math.MaxInt, 1))
}
