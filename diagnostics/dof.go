package diagnostics

import (
	"math"

	"github.com/arclattice/sketch2d/constraint"
)

// dofRemoved is the closed per-type DOF-removal table (spec §4.3.1).
var dofRemoved = map[constraint.Type]int{
	constraint.TypeCoincident: 2,
	constraint.TypeConcentric: 2,
	constraint.TypeMidpoint:   2,
	constraint.TypeFix:        3,

	constraint.TypeHorizontal:    1,
	constraint.TypeVertical:      1,
	constraint.TypeParallel:      1,
	constraint.TypePerpendicular: 1,
	constraint.TypeTangent:       1,
	constraint.TypeEqual:         1,
	constraint.TypeDistance:      1,
	constraint.TypeRadius:        1,
	constraint.TypeDiameter:      1,
	constraint.TypeAngle:         1,
}

// DetectOverConstrained computes the system's degree-of-freedom balance
// (spec §4.3.1): expected DOF is the sum of every entity's free (unfixed)
// variables; removed DOF sums the closed per-type table over every
// non-suppressed constraint. A negative delta means the system demands
// more than its entities have to give; a delta over half of expected
// means most of the sketch is still unconstrained.
func DetectOverConstrained(sys *constraint.System) DOFReport {
	expected := 0
	for _, e := range sys.Entities() {
		for _, v := range e.Variables {
			if !v.Fixed {
				expected++
			}
		}
	}

	removed := 0
	for _, c := range sys.ActiveConstraints() {
		removed += dofRemoved[c.Type]
	}

	delta := expected - removed
	report := DOFReport{Expected: expected, Removed: removed, Delta: delta}

	switch {
	case delta < 0:
		report.OverConstrained = true
		report.Severity = SeverityError
		report.Candidates = DetectRedundant(sys)
	case float64(delta) > float64(expected)/2 && expected > 0:
		report.UnderConstrained = true
		report.Severity = SeverityWarning
	}
	return report
}

// roundedHalf implements the "1.5x, rounded down" threshold in
// DetectRedundant without pulling in math.Floor at every call site.
func roundedHalf(n int) int {
	return int(math.Floor(1.5 * float64(n)))
}
