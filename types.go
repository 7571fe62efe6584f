package hypertune

// ObjectiveFunc defines the signature for the scoring oracle being optimized.
// It receives one complete parameter assignment and returns a single numeric
// score, where HIGHER scores are better.
//
// Parameters:
//   - params: A complete assignment covering every dimension of the search
//     space. Values are typed per dimension: float64 for continuous
//     dimensions, int for integer dimensions, and the literal candidate
//     value for discrete dimensions.
//
// Returns:
// - float64: The score achieved with these parameters (higher is better)
// - error: Return nil if the evaluation succeeded, or an error if it failed
//
// Usage example:
//
//	objective := func(params hypertune.Assignment) (float64, error) {
//	    lr := params["learning_rate"].(float64)
//	    depth := params["num_layers"].(int)
//
//	    accuracy, err := trainAndValidate(lr, depth)
//	    if err != nil {
//	        return 0, fmt.Errorf("training failed: %w", err)
//	    }
//
//	    return accuracy, nil
//	}
//
// Contract notes:
//   - Invoked strictly sequentially, never concurrently with itself
//   - May block for as long as it needs (e.g. a full training run)
//   - Any returned error aborts the optimization run immediately; no partial
//     result is produced and no retry is attempted
//   - A caller wanting early termination should build a timeout into the
//     objective itself and report a sentinel score
type ObjectiveFunc func(params Assignment) (float64, error)

// Assignment maps every dimension name in a Space to a concrete value of the
// matching type. Assignments produced by this package always have total
// coverage: no missing and no extra keys relative to the space they were
// drawn from.
type Assignment map[string]any

// Observation records one completed objective evaluation.
//
// Observations are append-only; Iteration values are strictly increasing
// integers starting at 0, assigned in evaluation order.
type Observation struct {
	// Params is the assignment that was evaluated.
	Params Assignment

	// Score is the objective value returned for Params (higher is better).
	Score float64

	// Iteration is the 0-based evaluation index within the run.
	Iteration int
}

// Prediction is the surrogate model's estimate for an unevaluated point.
type Prediction struct {
	// Mean is the predicted score at the point.
	Mean float64

	// Std is the predicted uncertainty. It is always at least a small
	// positive floor, never exactly zero, so acquisition functions stay
	// well-defined.
	Std float64
}

// Result holds the outcome of one optimization run.
//
// A Result is only produced for a run that completed every evaluation it
// attempted; if the objective fails, Optimize returns an error and no Result.
type Result struct {
	// BestParams is the assignment of the first observation that achieved
	// BestScore (stable tie-break by evaluation order).
	BestParams Assignment

	// BestScore is the maximum score across all observations.
	BestScore float64

	// History contains every observation in evaluation order.
	History []Observation

	// ConvergenceRate is a post-hoc heuristic in [0,1] measuring how
	// quickly the run approached its final best score. It is 0 when the
	// history has fewer than 2 entries. It is a summary only and plays no
	// part in stopping the loop.
	ConvergenceRate float64
}

// AcquisitionFunc defines the signature for acquisition functions used to
// decide which candidate point to evaluate next. Higher return values
// indicate more promising points (this package maximizes the objective).
//
// Parameters:
// - mean: The surrogate's predicted score at a candidate point
// - std: The surrogate's predicted uncertainty at that point
// - params: Additional parameters needed by specific acquisition functions
//
// Built-in acquisition functions:
// - ExpectedImprovement: Expected magnitude of improvement (default)
// - UpperConfidenceBound: Optimistic mean-plus-uncertainty bound
// - ProbabilityOfImprovement: Probability of beating the current best
//
// Implementation notes for custom acquisition functions:
// - Must handle std == 0 explicitly (return 0, never divide by it)
// - Should be deterministic for a given input
// - Must properly use parameters from AcquisitionParams.
type AcquisitionFunc func(mean, std float64, params AcquisitionParams) float64

// AcquisitionParams holds parameters used by the acquisition functions to
// balance exploring uncertain regions against exploiting known good ones.
type AcquisitionParams struct {
	// Beta controls the exploration-exploitation trade-off in the
	// UpperConfidenceBound acquisition function.
	// - Higher values (e.g., 3.0) favor exploring uncertain areas
	// - Lower values (e.g., 0.5) favor exploiting known good areas
	Beta float64

	// Xi is a minimum-improvement margin used by ExpectedImprovement and
	// ProbabilityOfImprovement. Zero keeps the plain improvement formula;
	// small positive values (0.01 to 0.1) push toward exploration.
	Xi float64

	// Best is the best (highest) score observed so far. It is updated by
	// the optimizer before each refinement step; callers configuring a run
	// can leave it at zero.
	Best float64
}

// Phase labels for ProgressUpdate.
const (
	// PhaseExploration is the initial unguided random-sampling phase.
	PhaseExploration = "exploration"

	// PhaseRefinement is the surrogate-guided sampling phase.
	PhaseRefinement = "refinement"
)

// ProgressUpdate represents the state of the optimization process after one
// objective evaluation. Updates are an observability side channel; dropping
// them never affects the run's outcome.
type ProgressUpdate struct {
	// Phase is PhaseExploration or PhaseRefinement.
	Phase string

	// Iteration is the 0-based index of the evaluation just completed.
	Iteration int

	// TotalIterations is the evaluation budget for the run.
	TotalIterations int

	// Params holds the assignment that was just evaluated.
	Params Assignment

	// Score is the objective value returned for Params.
	Score float64

	// BestParams holds the best assignment found so far.
	BestParams Assignment

	// BestScore is the best score found so far.
	BestScore float64
}
