package sketch2d

import (
	"github.com/arclattice/sketch2d/config"
	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/diagnostics"
	"github.com/arclattice/sketch2d/geom"
	"github.com/arclattice/sketch2d/numeric"
	"github.com/arclattice/sketch2d/project"
)

// Option tunes a Solve call; it is an alias of config.Option so callers
// only need one options vocabulary.
type Option = config.Option

// WithEpsilon overrides the required-relation convergence tolerance.
var WithEpsilon = config.WithEpsilon

// WithMaxIterations overrides the iteration cap.
var WithMaxIterations = config.WithMaxIterations

// Result is Solve's top-level report: the numeric outcome, the projected
// entity set (nil on failure), and, only when the numeric solve failed,
// the diagnostics classification (nil when validation rejected the input).
type Result struct {
	Success  bool
	Entities map[string]*geom.Entity
	Warnings []string
	Error    string
	Failure  *diagnostics.SolverFailure
}

// Solve validates sys, lowers and solves its constraints, and on success
// projects the result onto a cloned copy of every entity. A validation
// error returns at once with Error set and no Failure. When the numeric
// solve fails it runs the diagnostics analyzer and attaches a
// SolverFailure. sys itself is never mutated, success or failure.
func Solve(sys *constraint.System, opts ...Option) Result {
	if err := sys.Validate(); err != nil {
		return Result{Success: false, Error: err.Error()}
	}

	cfg := config.Build(opts...)
	numResult := numeric.Solve(sys, cfg)

	if !numResult.Success {
		failure := diagnostics.AnalyzeSolverFailure(numResult, sys)
		return Result{
			Success:  false,
			Warnings: numResult.Warnings,
			Error:    numResult.Error,
			Failure:  &failure,
		}
	}

	entities := sys.Entities()
	projected := make(map[string]*geom.Entity, len(entities))
	for id, e := range entities {
		projected[id] = project.Entity(e, numResult.Variables)
	}

	return Result{
		Success:  true,
		Entities: projected,
		Warnings: numResult.Warnings,
	}
}
