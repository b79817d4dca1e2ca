package diagnostics

import (
	"fmt"

	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/numeric"
)

// AnalyzeSolverFailure combines the detectors into the single
// human-actionable record spec §4.3.6 describes. When result reports
// NonConverging, the classification short-circuits straight to
// numerical_instability — that reason is reserved for the numeric engine
// itself and is never produced by the detectors below. Otherwise it tries
// over-constraint, then conflicts, then degeneracy, in that order, and
// falls back to unknown if none of them fire.
func AnalyzeSolverFailure(result numeric.Result, sys *constraint.System) SolverFailure {
	if result.NonConverging {
		return SolverFailure{
			Reason:    ReasonNumericalInstability,
			CanRevert: true,
			Details:   "solver did not converge within the iteration cap",
		}
	}

	dof := DetectOverConstrained(sys)
	if dof.OverConstrained {
		return SolverFailure{
			Reason:                 ReasonOverConstrained,
			ProblematicConstraints: dof.Candidates,
			Suggestion:             "remove or suppress one of the flagged constraints",
			CanRevert:              true,
			Details:                fmt.Sprintf("expected %d degrees of freedom, constraints remove %d", dof.Expected, dof.Removed),
		}
	}

	conflicts := DetectConflicts(sys)
	if len(conflicts.Conflicts) > 0 {
		return SolverFailure{
			Reason:                 ReasonConflicting,
			ProblematicConstraints: conflicts.ProblematicIDs,
			Suggestion:             "the flagged constraints cannot all hold at once",
			CanRevert:              true,
			Details:                conflicts.Conflicts[0].Reason,
		}
	}

	degeneracies := DetectDegenerate(sys)
	if len(degeneracies) > 0 {
		return SolverFailure{
			Reason:                 ReasonDegenerate,
			ProblematicConstraints: degenerateConstraintIDs(degeneracies),
			Suggestion:             "fix the degenerate geometry before solving",
			CanRevert:              true,
			Details:                degeneracies[0].Reason,
		}
	}

	return SolverFailure{
		Reason:    ReasonUnknown,
		CanRevert: true,
		Details:   result.Error,
	}
}

func degenerateConstraintIDs(issues []DegeneracyIssue) []string {
	var ids []string
	for _, iss := range issues {
		if iss.ConstraintID != "" {
			ids = append(ids, iss.ConstraintID)
		}
	}
	return ids
}
