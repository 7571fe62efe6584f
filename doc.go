// Package hypertune provides sequential hyperparameter optimization over
// mixed continuous/discrete/integer search spaces, maximizing an expensive
// black-box objective with a simplified surrogate model and an Expected
// Improvement acquisition rule.
//
// # Features
//
// The package includes the following key features:
//
//   - Mixed search spaces: continuous ranges, discrete value sets, and
//     inclusive integer ranges, freely combined and validated at
//     construction time
//   - Two-phase search: initial random exploration followed by
//     surrogate-guided refinement with early stopping on convergence
//   - Nearest-neighbor surrogate: a cheap stand-in for a Gaussian Process
//     whose uncertainty grows with distance from observed data
//   - Multiple acquisition functions: Expected Improvement (default),
//     Upper Confidence Bound, and Probability of Improvement
//   - Reproducible runs: an explicit seed drives a per-run random source;
//     no ambient global randomness
//   - Progress monitoring: per-evaluation updates via channel and optional
//     structured logging via log/slog
//   - Preset spaces: ready-made spaces for neural network, gradient
//     boosting, and support vector machine tuning
//
// # Basic usage
//
//	space, err := hypertune.NewSpace(map[string]hypertune.Dimension{
//	    "learning_rate": hypertune.Continuous{Min: 1e-4, Max: 0.1},
//	    "batch_size":    hypertune.Discrete{Values: []any{16, 32, 64}},
//	    "num_layers":    hypertune.Integer{Min: 1, Max: 8},
//	})
//	if err != nil {
//	    // invalid dimension descriptor
//	}
//
//	config := hypertune.DefaultConfig()
//	config.Iterations = 40
//	config.Seed = 42
//
//	opt, err := hypertune.New(space, config)
//	if err != nil {
//	    // inconsistent configuration
//	}
//
//	result, err := opt.Optimize(func(params hypertune.Assignment) (float64, error) {
//	    return trainAndScore(params) // higher is better
//	})
//	if err != nil {
//	    // the objective failed; no partial result exists
//	}
//
//	fmt.Println(result.BestParams, result.BestScore)
//
// # How it works
//
//  1. Exploration: InitialSamples random points are drawn uniformly from the
//     space and evaluated to seed the observation history.
//  2. Refinement: each remaining iteration fits the surrogate on the history,
//     draws NumCandidates random candidates, scores them with the acquisition
//     function against the surrogate's mean/uncertainty prediction, and
//     evaluates the most promising one.
//  3. Convergence: from iteration 10 onward, the run stops early when the
//     best score of the last five evaluations improves on everything before
//     them by less than 0.1%.
//
// # Error handling
//
// The package is fail-fast throughout. Invalid spaces are rejected at
// construction (never silently skipped), inconsistent configurations are
// rejected by New, and any error from the objective aborts the run
// immediately with no partial result and no retry: silently discarding a
// failed evaluation would bias the search toward regions with undetected
// failures.
//
// # Concurrency
//
// Execution is single-threaded by design: each refinement step's choice of
// next point depends on every prior result, so objective evaluations are
// issued strictly sequentially, never in parallel. An Optimizer instance is
// NOT safe for concurrent Optimize calls; create one instance per in-flight
// run. The core has no cancellation mechanism — a caller wanting early
// termination should enforce a timeout inside the objective and report a
// sentinel score.
package hypertune
