package diagnostics

import (
	"math"
	"sort"
	"strings"

	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/geom"
)

const degenerateLengthThreshold = 1e-3

// DetectDegenerate scans every entity and every non-suppressed constraint
// for the malformed-geometry shapes spec §4.3.3 defines: non-positive
// circle/arc radii, near-zero-length lines, any "length"-named variable
// gone negative, and radius/diameter/distance constraint values outside
// their valid range.
func DetectDegenerate(sys *constraint.System) []DegeneracyIssue {
	var issues []DegeneracyIssue

	for _, id := range sortedEntityIDs(sys) {
		e, _ := sys.Entity(id)
		issues = append(issues, entityDegeneracy(e)...)
	}
	for _, c := range sys.ActiveConstraints() {
		if issue, ok := constraintDegeneracy(c); ok {
			issues = append(issues, issue)
		}
	}
	return issues
}

func entityDegeneracy(e *geom.Entity) []DegeneracyIssue {
	var issues []DegeneracyIssue

	if e.Kind == geom.KindCircle || e.Kind == geom.KindArc {
		if r, ok := e.Variable("radius"); ok && r.Value <= 0 {
			issues = append(issues, DegeneracyIssue{EntityID: e.ID, Reason: "zero or negative radius"})
		}
	}
	if e.Kind == geom.KindLine {
		sx, _ := e.Variable("start_x")
		sy, _ := e.Variable("start_y")
		ex, _ := e.Variable("end_x")
		ey, _ := e.Variable("end_y")
		dx, dy := ex.Value-sx.Value, ey.Value-sy.Value
		if math.Sqrt(dx*dx+dy*dy) < degenerateLengthThreshold {
			issues = append(issues, DegeneracyIssue{EntityID: e.ID, Reason: "zero length"})
		}
	}
	for name, v := range e.Variables {
		if strings.Contains(name, "length") && v.Value < 0 {
			issues = append(issues, DegeneracyIssue{EntityID: e.ID, Reason: "negative length"})
		}
	}
	return issues
}

func constraintDegeneracy(c constraint.Constraint) (DegeneracyIssue, bool) {
	switch c.Type {
	case constraint.TypeRadius, constraint.TypeDiameter:
		if v, present, err := c.NumericParameter("value"); present && err == nil && v <= 0 {
			return DegeneracyIssue{ConstraintID: c.ID, Reason: "non-positive radius/diameter value"}, true
		}
	case constraint.TypeDistance:
		if v, present, err := c.NumericParameter("value", "distance"); present && err == nil && v < 0 {
			return DegeneracyIssue{ConstraintID: c.ID, Reason: "negative distance value"}, true
		}
	}
	return DegeneracyIssue{}, false
}

func sortedEntityIDs(sys *constraint.System) []string {
	entities := sys.Entities()
	ids := make([]string, 0, len(entities))
	for id := range entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
