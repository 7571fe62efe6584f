package hypertune

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//////
// Const, vars, types.
//////

// Space configuration errors. All validation failures wrap ErrInvalidSpace so
// callers can detect misconfiguration with a single errors.Is check.
var (
	// ErrInvalidSpace is the root of all space-validation errors.
	ErrInvalidSpace = errors.New("invalid hyperparameter space")

	// ErrNilDimension indicates a dimension name mapped to no descriptor.
	ErrNilDimension = fmt.Errorf("%w: nil dimension", ErrInvalidSpace)

	// ErrInvalidBounds indicates min > max on a continuous or integer
	// dimension.
	ErrInvalidBounds = fmt.Errorf("%w: invalid bounds", ErrInvalidSpace)

	// ErrEmptyDiscrete indicates a discrete dimension with no candidate
	// values.
	ErrEmptyDiscrete = fmt.Errorf("%w: discrete dimension has no values", ErrInvalidSpace)

	// ErrIncomparableValue indicates a discrete candidate value whose type
	// does not support equality (e.g. a slice or map), which the distance
	// computation requires.
	ErrIncomparableValue = fmt.Errorf("%w: discrete value is not comparable", ErrInvalidSpace)
)

// Dimension describes the allowed values of one hyperparameter. Exactly three
// shapes exist: Continuous, Discrete, and Integer. The interface is sealed;
// anything else fails validation at space construction, never silently later.
type Dimension interface {
	// validate reports a configuration error for this dimension, if any.
	validate(name string) error

	// sample draws one uniform value from the dimension.
	sample(rng *rand.Rand) any

	// contribution returns this dimension's term of the squared normalized
	// distance between two values drawn from it.
	contribution(a, b any) float64
}

// Continuous is a real-valued dimension spanning the inclusive range
// [Min, Max]. Sampled values are float64.
type Continuous struct {
	Min float64
	Max float64
}

// Discrete is a categorical dimension. Sampling picks uniformly among Values;
// the candidate values keep their literal type in assignments. Values must be
// comparable (strings, numbers, bools).
type Discrete struct {
	Values []any
}

// Integer is an integer-valued dimension spanning the inclusive range
// [Min, Max]. Sampled values are int.
type Integer struct {
	Min int
	Max int
}

// Space maps parameter names to their dimensions. A space is immutable for
// the duration of an optimization run; construct it once via NewSpace and
// reuse it across runs freely.
type Space map[string]Dimension

//////
// Factory.
//////

// NewSpace builds a validated search space from dimension descriptors.
//
// Every descriptor must be one of Continuous, Discrete, or Integer, with
// coherent bounds or a non-empty value list. Invalid descriptors are rejected
// here, at construction time, rather than skipped during sampling.
//
// Usage example:
//
//	space, err := hypertune.NewSpace(map[string]hypertune.Dimension{
//	    "learning_rate": hypertune.Continuous{Min: 1e-4, Max: 0.1},
//	    "batch_size":    hypertune.Discrete{Values: []any{16, 32, 64, 128}},
//	    "num_layers":    hypertune.Integer{Min: 1, Max: 8},
//	})
//
// An empty map is a valid (empty) space; sampling it yields an empty
// assignment.
func NewSpace(dims map[string]Dimension) (Space, error) {
	s := make(Space, len(dims))

	for name, dim := range dims {
		if dim == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilDimension, name)
		}

		if err := dim.validate(name); err != nil {
			return nil, err
		}

		s[name] = dim
	}

	return s, nil
}

//////
// Methods.
//////

// Validate re-checks every dimension of the space. NewSpace already performs
// this check; Validate exists as a first-use guard for spaces assembled as
// map literals without going through the factory.
func (s Space) Validate() error {
	for _, name := range s.names() {
		dim := s[name]
		if dim == nil {
			return fmt.Errorf("%w: %q", ErrNilDimension, name)
		}

		if err := dim.validate(name); err != nil {
			return err
		}
	}

	return nil
}

// Sample draws one independent uniform assignment from the space: uniform
// real for continuous dimensions, uniform pick for discrete dimensions, and
// uniform integer over the inclusive range for integer dimensions.
//
// Sample is a pure function of the space and the supplied random source; it
// mutates no shared state, so reproducibility is entirely determined by the
// rng handed in. Dimensions are visited in sorted name order so a seeded rng
// yields the same assignment sequence on every run.
func (s Space) Sample(rng *rand.Rand) Assignment {
	params := make(Assignment, len(s))

	for _, name := range s.names() {
		params[name] = s[name].sample(rng)
	}

	return params
}

// Distance returns the normalized distance between two assignments drawn from
// this space: per dimension, the range-scaled squared difference for
// continuous and integer dimensions and a 0/1 mismatch indicator for discrete
// dimensions, combined as the square root of the sum.
//
// Distance is symmetric and Distance(p, p) == 0 for every in-space point p.
func (s Space) Distance(a, b Assignment) float64 {
	var sum float64

	for name, dim := range s {
		sum += dim.contribution(a[name], b[name])
	}

	return math.Sqrt(sum)
}

// names returns the dimension names in sorted order. Go map iteration order
// is randomized, so every code path that consumes the rng walks this slice
// instead to keep seeded runs reproducible.
func (s Space) names() []string {
	names := maps.Keys(s)
	slices.Sort(names)

	return names
}

//////
// Dimension implementations.
//////

func (d Continuous) validate(name string) error {
	if d.Min > d.Max {
		return fmt.Errorf("%w: %q: min %v greater than max %v", ErrInvalidBounds, name, d.Min, d.Max)
	}

	return nil
}

func (d Continuous) sample(rng *rand.Rand) any {
	return d.Min + rng.Float64()*(d.Max-d.Min)
}

func (d Continuous) contribution(a, b any) float64 {
	span := d.Max - d.Min
	if span == 0 {
		// Degenerate range: both values can only be Min.
		return 0
	}

	diff := (numeric(a) - numeric(b)) / span

	return diff * diff
}

func (d Discrete) validate(name string) error {
	if len(d.Values) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyDiscrete, name)
	}

	for i, v := range d.Values {
		if v == nil || !reflect.TypeOf(v).Comparable() {
			return fmt.Errorf("%w: %q value %d (%T)", ErrIncomparableValue, name, i, v)
		}
	}

	return nil
}

func (d Discrete) sample(rng *rand.Rand) any {
	return d.Values[rng.Intn(len(d.Values))]
}

func (d Discrete) contribution(a, b any) float64 {
	if a != b {
		return 1
	}

	return 0
}

func (d Integer) validate(name string) error {
	if d.Min > d.Max {
		return fmt.Errorf("%w: %q: min %d greater than max %d", ErrInvalidBounds, name, d.Min, d.Max)
	}

	return nil
}

func (d Integer) sample(rng *rand.Rand) any {
	return d.Min + rng.Intn(d.Max-d.Min+1)
}

func (d Integer) contribution(a, b any) float64 {
	span := float64(d.Max - d.Min)
	if span == 0 {
		return 0
	}

	diff := (numeric(a) - numeric(b)) / span

	return diff * diff
}

// numeric converts an assignment value to float64 for distance arithmetic.
// Sampled values are always float64 or int; anything else contributes zero.
func numeric(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}
