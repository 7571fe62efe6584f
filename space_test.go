package hypertune

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInSpace checks that an assignment has total coverage of the space and
// that every value is within its dimension's bounds.
func assertInSpace(t *testing.T, space Space, params Assignment) {
	t.Helper()

	require.Len(t, params, len(space))

	for name, dim := range space {
		value, ok := params[name]
		require.True(t, ok, "missing dimension %q", name)

		switch d := dim.(type) {
		case Continuous:
			v, ok := value.(float64)
			require.True(t, ok, "dimension %q: expected float64, got %T", name, value)
			assert.GreaterOrEqual(t, v, d.Min)
			assert.LessOrEqual(t, v, d.Max)
		case Integer:
			v, ok := value.(int)
			require.True(t, ok, "dimension %q: expected int, got %T", name, value)
			assert.GreaterOrEqual(t, v, d.Min)
			assert.LessOrEqual(t, v, d.Max)
		case Discrete:
			assert.Contains(t, d.Values, value, "dimension %q", name)
		default:
			t.Fatalf("dimension %q: unexpected descriptor %T", name, dim)
		}
	}
}

func TestNewSpaceRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name    string
		dims    map[string]Dimension
		wantErr error
	}{
		{
			name:    "nil dimension",
			dims:    map[string]Dimension{"x": nil},
			wantErr: ErrNilDimension,
		},
		{
			name:    "inverted continuous bounds",
			dims:    map[string]Dimension{"x": Continuous{Min: 2, Max: 1}},
			wantErr: ErrInvalidBounds,
		},
		{
			name:    "inverted integer bounds",
			dims:    map[string]Dimension{"x": Integer{Min: 5, Max: 2}},
			wantErr: ErrInvalidBounds,
		},
		{
			name:    "empty discrete values",
			dims:    map[string]Dimension{"x": Discrete{}},
			wantErr: ErrEmptyDiscrete,
		},
		{
			name:    "incomparable discrete value",
			dims:    map[string]Dimension{"x": Discrete{Values: []any{[]int{1, 2}}}},
			wantErr: ErrIncomparableValue,
		},
		{
			name:    "nil discrete value",
			dims:    map[string]Dimension{"x": Discrete{Values: []any{nil}}},
			wantErr: ErrIncomparableValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSpace(tt.dims)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			// Every validation failure is also detectable by the root
			// sentinel.
			assert.ErrorIs(t, err, ErrInvalidSpace)
		})
	}
}

func TestValidateGuardsMapLiteralSpaces(t *testing.T) {
	// A space assembled without NewSpace still fails fast at first use.
	space := Space{"x": Continuous{Min: 3, Max: 1}}

	assert.ErrorIs(t, space.Validate(), ErrInvalidBounds)
}

func TestSampleCoversEveryDimensionWithinBounds(t *testing.T) {
	space, err := NewSpace(map[string]Dimension{
		"rate":   Continuous{Min: -1, Max: 3},
		"count":  Integer{Min: 2, Max: 9},
		"method": Discrete{Values: []any{"a", "b", "c"}},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		assertInSpace(t, space, space.Sample(rng))
	}
}

func TestSampleEmptySpace(t *testing.T) {
	space, err := NewSpace(map[string]Dimension{})
	require.NoError(t, err)

	params := space.Sample(rand.New(rand.NewSource(1)))

	assert.NotNil(t, params)
	assert.Empty(t, params)
}

func TestSampleDeterministicForSeed(t *testing.T) {
	space, err := NewSpace(map[string]Dimension{
		"x": Continuous{Min: 0, Max: 1},
		"k": Integer{Min: 0, Max: 100},
		"c": Discrete{Values: []any{"red", "green", "blue"}},
	})
	require.NoError(t, err)

	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		assert.Equal(t, space.Sample(a), space.Sample(b))
	}
}

func TestDistanceIdentityAndSymmetry(t *testing.T) {
	space, err := NewSpace(map[string]Dimension{
		"x": Continuous{Min: 0, Max: 10},
		"k": Integer{Min: 0, Max: 4},
		"c": Discrete{Values: []any{"a", "b"}},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		p := space.Sample(rng)
		q := space.Sample(rng)

		assert.Zero(t, space.Distance(p, p))
		assert.InDelta(t, space.Distance(p, q), space.Distance(q, p), 1e-12)
	}
}

func TestDistanceMixedDimensions(t *testing.T) {
	space, err := NewSpace(map[string]Dimension{
		"x": Continuous{Min: 0, Max: 10},
		"k": Integer{Min: 0, Max: 4},
		"c": Discrete{Values: []any{"a", "b"}},
	})
	require.NoError(t, err)

	a := Assignment{"x": 2.0, "k": 1, "c": "a"}
	b := Assignment{"x": 7.0, "k": 3, "c": "b"}

	// (5/10)^2 + (2/4)^2 + 1 = 1.5
	assert.InDelta(t, 1.224744871, space.Distance(a, b), 1e-8)
}

func TestDistanceDegenerateRange(t *testing.T) {
	// A single-point range contributes nothing rather than dividing by zero.
	space, err := NewSpace(map[string]Dimension{
		"fixed": Continuous{Min: 2, Max: 2},
		"pin":   Integer{Min: 3, Max: 3},
	})
	require.NoError(t, err)

	a := Assignment{"fixed": 2.0, "pin": 3}

	assert.Zero(t, space.Distance(a, a))
}
