package hypertune

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"
)

//////
// Const, vars, types.
//////

// Default budgets, matching DefaultConfig.
const (
	// DefaultIterations is the default total number of objective
	// evaluations per run, exploration included.
	DefaultIterations = 50

	// DefaultInitialSamples is the default number of purely random
	// exploration draws before refinement starts.
	DefaultInitialSamples = 10

	// DefaultNumCandidates is the default number of random candidates
	// scored by the acquisition function per refinement step.
	DefaultNumCandidates = 1000
)

// Convergence detection constants.
const (
	// convergenceMinIteration is the first 0-based iteration at which the
	// convergence check may fire.
	convergenceMinIteration = 10

	// convergenceWindow is the number of trailing observations compared
	// against everything before them.
	convergenceWindow = 5

	// convergenceTolerance is the relative-improvement factor: the run has
	// converged when the trailing window's best score is within 0.1% of
	// the best score seen before the window.
	convergenceTolerance = 1.001

	// convergenceRateThreshold is the fraction of the final best score a
	// running score must reach to count as "arrived" for the post-hoc
	// convergence-rate summary.
	convergenceRateThreshold = 0.95
)

// Optimizer configuration and run errors.
var (
	// ErrInvalidConfig indicates an inconsistent Config passed to New.
	ErrInvalidConfig = errors.New("invalid optimizer config")

	// ErrNilObjective indicates Optimize was called without an objective.
	ErrNilObjective = errors.New("objective function is required")
)

// Config holds all configuration parameters for one optimization run.
//
// Fields explanation:
// - Iterations: Total objective evaluations, exploration included
// - InitialSamples: Random exploration draws before refinement starts
// - NumCandidates: Random candidates scored per refinement step
// - Acquisition: Strategy for choosing the next point to evaluate
// - AcqParams: Parameters for the acquisition function
// - Seed: Seed for the run's random source (0 = time-based)
// - ProgressChan: Optional channel for per-evaluation progress updates
// - Logger: Optional structured logger for per-evaluation telemetry
//
// Usage example:
//
//	config := hypertune.DefaultConfig()
//	config.Iterations = 100
//	config.Seed = 42 // reproducible run
//
// Zero-valued fields are replaced with defaults by New, so a zero Config is
// usable as-is.
type Config struct {
	// Iterations is the total evaluation budget for the run: exploration
	// uses iterations 0..InitialSamples-1 and refinement the remainder.
	// The objective is invoked at most Iterations times.
	Iterations int

	// InitialSamples is the number of random points evaluated before the
	// surrogate-guided phase begins. Must not exceed Iterations.
	InitialSamples int

	// NumCandidates is the number of random candidates considered per
	// refinement step. Higher values approximate acquisition maximization
	// more closely but cost more per step.
	NumCandidates int

	// Acquisition selects the next point to evaluate during refinement.
	// Defaults to ExpectedImprovement.
	Acquisition AcquisitionFunc

	// AcqParams holds the parameters for the acquisition function. The
	// Best field is maintained by the optimizer during the run.
	AcqParams AcquisitionParams

	// Seed seeds the run's random source. A zero seed falls back to the
	// current time, making runs non-reproducible.
	Seed int64

	// ProgressChan receives a ProgressUpdate after every evaluation. Sends
	// are non-blocking: updates are dropped when the channel is full. Nil
	// disables progress reporting.
	ProgressChan chan<- ProgressUpdate

	// Logger, when non-nil, records each evaluation and the surrogate's
	// summary statistics at debug level.
	Logger *slog.Logger
}

// Optimizer searches a hyperparameter space for the assignment maximizing a
// caller-supplied objective, using random exploration followed by
// surrogate-guided refinement with an acquisition function.
//
// An Optimizer owns its random source and surrogate state. It is NOT safe
// for concurrent use: running two Optimize calls on one instance at the same
// time is a misuse with undefined results. Create one Optimizer per
// in-flight run; sequential reuse of a single instance is fine.
type Optimizer struct {
	space  Space
	config Config
	rng    *rand.Rand
	surr   *surrogate
}

//////
// Exported functionalities.
//////

// DefaultConfig returns a default configuration: 50 iterations, 10 initial
// samples, 1000 candidates per refinement step, and Expected Improvement as
// the acquisition function.
func DefaultConfig() Config {
	return Config{
		Iterations:     DefaultIterations,
		InitialSamples: DefaultInitialSamples,
		NumCandidates:  DefaultNumCandidates,
		Acquisition:    ExpectedImprovement,
		AcqParams: AcquisitionParams{
			Beta: 2.0,
			Xi:   0,
		},
	}
}

// New creates an Optimizer over the given space.
//
// The space is validated here (first-use guard for map-literal spaces) and
// zero-valued Config fields are filled with defaults. New returns an error
// when the space contains an invalid dimension or when InitialSamples
// exceeds the Iterations budget.
func New(space Space, config Config) (*Optimizer, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}

	if config.Iterations <= 0 {
		config.Iterations = DefaultIterations
	}

	if config.InitialSamples <= 0 {
		config.InitialSamples = DefaultInitialSamples
	}

	if config.NumCandidates <= 0 {
		config.NumCandidates = DefaultNumCandidates
	}

	if config.Acquisition == nil {
		config.Acquisition = ExpectedImprovement
	}

	if config.InitialSamples > config.Iterations {
		return nil, fmt.Errorf(
			"%w: initial samples (%d) exceed iteration budget (%d)",
			ErrInvalidConfig, config.InitialSamples, config.Iterations,
		)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Optimizer{
		space:  space,
		config: config,
		rng:    rand.New(rand.NewSource(seed)),
		surr:   newSurrogate(space),
	}, nil
}

// Optimize runs the full search and returns the best assignment found.
//
// Phases:
//  1. Exploration: InitialSamples random points are drawn and evaluated to
//     seed the observation history.
//  2. Refinement: for each remaining iteration, the surrogate is fitted on
//     the history, the acquisition function selects the next point, the
//     point is evaluated, and the convergence check runs. When the trailing
//     window of scores shows less than 0.1% relative improvement over
//     everything before it, the loop stops early and the remaining budget
//     is not spent.
//
// The objective is invoked at most Iterations times, strictly sequentially.
// Any error it returns propagates immediately, wrapped with the iteration
// index and recoverable via errors.Is/errors.As; in that case no Result is
// returned.
func (o *Optimizer) Optimize(objective ObjectiveFunc) (*Result, error) {
	if objective == nil {
		return nil, ErrNilObjective
	}

	history := make([]Observation, 0, o.config.Iterations)

	var bestParams Assignment

	bestScore := math.Inf(-1)

	// evaluate invokes the objective once and records the observation.
	// This is the single suspension point of the run: the objective may
	// block on I/O or long computation, and the loop always waits for it.
	evaluate := func(phase string, iteration int, params Assignment) error {
		score, err := objective(params)
		if err != nil {
			return fmt.Errorf("objective evaluation at iteration %d: %w", iteration, err)
		}

		history = append(history, Observation{
			Params:    params,
			Score:     score,
			Iteration: iteration,
		})

		if score > bestScore {
			bestScore = score
			bestParams = params
		}

		if o.config.Logger != nil {
			o.config.Logger.Debug("evaluated point",
				"phase", phase,
				"iteration", iteration,
				"score", score,
				"best_score", bestScore,
			)
		}

		o.sendProgress(phase, iteration, params, score, bestParams, bestScore)

		return nil
	}

	// Phase 1: random exploration.
	for i := 0; i < o.config.InitialSamples; i++ {
		if err := evaluate(PhaseExploration, i, o.space.Sample(o.rng)); err != nil {
			return nil, err
		}
	}

	// Phase 2: surrogate-guided refinement.
	for i := o.config.InitialSamples; i < o.config.Iterations; i++ {
		o.surr.fit(history)

		if o.config.Logger != nil {
			o.config.Logger.Debug("surrogate fitted",
				"observations", len(history),
				"score_mean", o.surr.scoreMean,
				"score_std", o.surr.scoreStd,
			)
		}

		acqParams := o.config.AcqParams
		acqParams.Best = bestScore

		next := selectNext(
			o.rng, o.space, o.surr, history,
			o.config.NumCandidates, o.config.Acquisition, acqParams,
		)

		if err := evaluate(PhaseRefinement, i, next); err != nil {
			return nil, err
		}

		if converged(history, i) {
			if o.config.Logger != nil {
				o.config.Logger.Debug("converged early",
					"iteration", i,
					"evaluations", len(history),
				)
			}

			break
		}
	}

	return &Result{
		BestParams:      bestParams,
		BestScore:       bestScore,
		History:         history,
		ConvergenceRate: convergenceRate(history),
	}, nil
}

//////
// Unexported functionalities.
//////

// sendProgress publishes a non-blocking progress update. Updates are dropped
// when the channel is full rather than stalling the run.
func (o *Optimizer) sendProgress(
	phase string,
	iteration int,
	params Assignment,
	score float64,
	bestParams Assignment,
	bestScore float64,
) {
	if o.config.ProgressChan == nil {
		return
	}

	update := ProgressUpdate{
		Phase:           phase,
		Iteration:       iteration,
		TotalIterations: o.config.Iterations,
		Params:          params,
		Score:           score,
		BestParams:      bestParams,
		BestScore:       bestScore,
	}

	select {
	case o.config.ProgressChan <- update:
	default:
	}
}

// converged reports whether the run has stalled: at 0-based iteration 10 or
// later, the best score of the trailing window must exceed the best score of
// everything before the window by more than 0.1% for the run to continue.
//
// The prior window can only be empty in degenerate configurations; an empty
// maximum is treated as "not yet converged", never a crash.
func converged(history []Observation, iteration int) bool {
	if iteration < convergenceMinIteration {
		return false
	}

	if len(history) <= convergenceWindow {
		// The prior window would be empty.
		return false
	}

	split := len(history) - convergenceWindow

	maxPrior := math.Inf(-1)
	for _, o := range history[:split] {
		maxPrior = math.Max(maxPrior, o.Score)
	}

	maxRecent := math.Inf(-1)
	for _, o := range history[split:] {
		maxRecent = math.Max(maxRecent, o.Score)
	}

	return maxRecent <= convergenceTolerance*maxPrior
}

// convergenceRate summarizes, after the fact, how quickly the run approached
// its final best score: 1 - k/n, where k is the first 1-based index whose
// score reaches 95% of the final best and n is the history length. Returns 0
// when the history has fewer than 2 entries or no score reaches the
// threshold.
func convergenceRate(history []Observation) float64 {
	n := len(history)
	if n < 2 {
		return 0
	}

	best := math.Inf(-1)
	for _, o := range history {
		best = math.Max(best, o.Score)
	}

	threshold := convergenceRateThreshold * best

	for k, o := range history {
		if o.Score >= threshold {
			return 1 - float64(k+1)/float64(n)
		}
	}

	return 0
}
