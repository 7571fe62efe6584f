package hypertune

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

//////
// Const, vars, types.
//////

// minPredictionStd is the floor applied to predicted uncertainty. Keeping the
// standard deviation strictly positive keeps the acquisition functions
// well-defined at and arbitrarily close to observed points.
const minPredictionStd = 0.01

// surrogate is a nearest-neighbor stand-in for a fitted Gaussian Process.
// Instead of learning kernel hyperparameters and inverting a covariance
// matrix, it predicts an unseen point from the single closest observation:
// the neighbor's score becomes the mean, and the normalized distance to that
// neighbor becomes the uncertainty. Uncertainty therefore grows with distance
// from known data, a deliberately crude way to push the acquisition step
// toward unexplored regions.
//
// Fields:
// - space: The search space, used for normalized distance computation
// - scoreMean: Empirical mean of all observed scores (cached by fit)
// - scoreStd: Empirical standard deviation of all observed scores
// - fitted: Whether fit has seen at least one observation
//
// Memory usage:
//   - O(1); the surrogate stores only summary scalars and reads the
//     observation history owned by the optimizer.
//
// A surrogate instance belongs to exactly one optimizer and is never shared
// between concurrent runs.
type surrogate struct {
	// space is the search domain distances are normalized against.
	space Space

	// scoreMean is the empirical mean of observed scores.
	scoreMean float64

	// scoreStd is the empirical standard deviation of observed scores.
	scoreStd float64

	// fitted reports whether the cached statistics are meaningful.
	fitted bool
}

//////
// Methods.
//////

// fit recomputes the cached summary statistics of the observed scores. The
// statistics serve as a coarse prior for telemetry and diagnostics; the call
// has no side effect beyond caching these two scalars.
//
// The standard deviation is the population form so that a single observation
// yields 0 rather than NaN.
func (s *surrogate) fit(history []Observation) {
	if len(history) == 0 {
		s.scoreMean = 0
		s.scoreStd = 0
		s.fitted = false

		return
	}

	scores := make([]float64, len(history))
	for i, o := range history {
		scores[i] = o.Score
	}

	s.scoreMean = stat.Mean(scores, nil)
	s.scoreStd = stat.PopStdDev(scores, nil)
	s.fitted = true
}

// predict estimates the score and uncertainty at a candidate point from the
// observations gathered so far.
//
// Parameters:
// - candidate: The assignment to predict (must cover the space)
// - history: All observations recorded so far, in evaluation order
//
// Returns:
//   - Prediction: The neutral prior {Mean: 0, Std: 1} when no observations
//     exist; otherwise {Mean: nearest neighbor's score,
//     Std: max(0.01, distance to that neighbor)}.
//
// The nearest neighbor is selected by normalized distance (see
// Space.Distance); ties keep the earliest observation.
//
// Performance considerations:
// - O(n·d) per call for n observations and d dimensions
// - Called once per candidate, so refinement steps cost O(candidates·n·d).
func (s *surrogate) predict(candidate Assignment, history []Observation) Prediction {
	if len(history) == 0 {
		return Prediction{Mean: 0, Std: 1}
	}

	nearestScore := history[0].Score
	nearestDist := s.space.Distance(candidate, history[0].Params)

	for _, o := range history[1:] {
		if d := s.space.Distance(candidate, o.Params); d < nearestDist {
			nearestDist = d
			nearestScore = o.Score
		}
	}

	return Prediction{
		Mean: nearestScore,
		Std:  math.Max(minPredictionStd, nearestDist),
	}
}

//////
// Factory.
//////

// newSurrogate creates a surrogate bound to the given search space.
func newSurrogate(space Space) *surrogate {
	return &surrogate{space: space}
}
