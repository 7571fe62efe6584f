package hypertune

import (
	"math"
	"math/rand"
)

//////
// Available acquisition functions.
// Each function scores a candidate point from the surrogate's prediction,
// balancing exploration (uncertain areas) and exploitation (areas predicted
// to score well). Higher acquisition values mark more promising points.
//////

// ExpectedImprovement calculates the expected amount by which a candidate
// will beat the current best observed score.
//
// How it works:
// - Combines the probability of improvement with the magnitude of improvement
// - Balances how likely and how large the improvement might be
// - The default, and the most commonly used acquisition function
//
// Parameters:
// - mean: Predicted score at this point
// - std: Uncertainty in the prediction
// - params.Best: Best score observed so far
// - params.Xi: Minimum improvement margin (0 for the plain formula)
//
// Formula:
//
//	z  = (mean - best - xi) / std
//	EI = (mean - best - xi)·Φ(z) + std·φ(z)
//
// where Φ and φ are the standard normal CDF and PDF. When std is exactly
// zero the prediction carries no uncertainty and EI is defined as 0.
func ExpectedImprovement(mean, std float64, params AcquisitionParams) float64 {
	if std == 0 {
		return 0
	}

	improvement := mean - params.Best - params.Xi
	z := improvement / std

	return improvement*normalCDF(z) + std*normalPDF(z)
}

// UpperConfidenceBound scores a candidate by its optimistic plausible value.
//
// How it works:
// - Adds a multiple of the uncertainty to the predicted mean
// - Beta controls the trade-off: higher Beta explores more
//
// Parameters:
// - mean: Predicted score at this point
// - std: Uncertainty in the prediction
// - params.Beta: Exploration weight (2.0 is a reasonable default)
func UpperConfidenceBound(mean, std float64, params AcquisitionParams) float64 {
	return mean + params.Beta*std
}

// ProbabilityOfImprovement scores a candidate by the probability that it
// beats the current best observed score by at least Xi.
//
// How it works:
// - Conservative strategy: only cares whether a point improves, not by how much
// - Useful when reliable small gains beat risky large ones
//
// Parameters:
// - mean: Predicted score at this point
// - std: Uncertainty in the prediction
// - params.Best: Best score observed so far
// - params.Xi: Minimum improvement margin
func ProbabilityOfImprovement(mean, std float64, params AcquisitionParams) float64 {
	if std == 0 {
		return 0
	}

	z := (mean - params.Best - params.Xi) / std

	return normalCDF(z)
}

//////
// Candidate selection.
//////

// selectNext picks the next point to evaluate by Monte-Carlo maximization of
// the acquisition function: it draws numCandidates random points from the
// space, scores each against the surrogate's prediction, and keeps the one
// with the strictly greatest acquisition value (the first candidate wins
// ties, since the comparison is a strict >).
//
// This is an approximation of acquisition maximization, not exact
// optimization; its quality depends on the candidate count.
func selectNext(
	rng *rand.Rand,
	space Space,
	surr *surrogate,
	history []Observation,
	numCandidates int,
	acquire AcquisitionFunc,
	params AcquisitionParams,
) Assignment {
	var next Assignment

	bestAcq := math.Inf(-1)

	for i := 0; i < numCandidates; i++ {
		candidate := space.Sample(rng)
		pred := surr.predict(candidate, history)

		if acq := acquire(pred.Mean, pred.Std, params); acq > bestAcq {
			bestAcq = acq
			next = candidate
		}
	}

	if next == nil {
		// Reachable only if the acquisition returned NaN for every
		// candidate; fall back to a plain random draw.
		next = space.Sample(rng)
	}

	return next
}
