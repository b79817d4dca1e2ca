package numeric

import "github.com/arclattice/sketch2d/constraint"

// Config tunes the numeric engine. A zero Config is not usable; use
// DefaultConfig.
type Config struct {
	// Epsilon is the convergence tolerance for required-strength
	// relations (spec §4.2, default 1e-3).
	Epsilon float64

	// MaxIterations is the step cap (spec §4.2, default 100); reaching it
	// without convergence is reported as non-converging.
	MaxIterations int

	// Weights maps each constraint.Strength to the quadratic penalty
	// weight its relations receive in the weighted least-squares step.
	// Required must dominate Strong must dominate Medium must dominate
	// Weak (spec §4.1, Strength mapping).
	Weights map[constraint.Strength]float64
}

// DefaultConfig returns the engine's default tuning: epsilon 1e-3, a
// 100-step cap, and a strength ladder spaced three orders of magnitude
// apart per band so a single required relation always outweighs any
// number of weaker ones a typical sketch would combine.
func DefaultConfig() Config {
	return Config{
		Epsilon:       1e-3,
		MaxIterations: 100,
		Weights: map[constraint.Strength]float64{
			constraint.Required: 1e9,
			constraint.Strong:   1e6,
			constraint.Medium:   1e3,
			constraint.Weak:     1,
		},
	}
}

func (cfg Config) weightFor(s constraint.Strength) float64 {
	if w, ok := cfg.Weights[s]; ok {
		return w
	}
	return cfg.Weights[constraint.Medium]
}

// Result is the numeric engine's report (spec §4.2 and §6).
type Result struct {
	// Success is true iff every required-strength relation's residual is
	// within Config.Epsilon (scaled per relation.Relation.Scale) and the
	// iteration cap was not exhausted.
	Success bool

	// Variables maps every global variable id in the solved system to its
	// final value (both the ones the engine moved and the fixed anchors).
	Variables map[string]float64

	// Error is non-empty iff Success is false; it names the first
	// diagnostic message the engine itself produced (spec §4.2, Success
	// criterion), not a diagnostics-package classification.
	Error string

	// Iterations is the number of Gauss-Newton loop passes made, rejected
	// and singular steps included; it is reported as 1 for a system with
	// no free variables, where no step is taken.
	Iterations int

	// NonConverging is true iff the iteration cap was reached without the
	// step size settling — spec §7's "Non-converging" path, which the
	// diagnostics package classifies as numerical_instability without
	// running its other detectors.
	NonConverging bool

	// Warnings carries through relation.Warning values from the lowering
	// step (unsupported constraint types, mismatched equal() operands),
	// so a caller can surface them even on a successful solve.
	Warnings []string
}
