package diagnostics

import (
	"math"
	"sort"

	"github.com/arclattice/sketch2d/constraint"
)

// entitySet builds a canonical, order-independent key for a constraint's
// EntityIDs so two constraints referencing "the same entities" can be
// compared regardless of the order they were given in.
func entitySet(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	key := ""
	for _, id := range sorted {
		key += id + "\x00"
	}
	return key
}

func normalizedRadius(c constraint.Constraint) (float64, bool) {
	switch c.Type {
	case constraint.TypeRadius:
		v, present, err := c.NumericParameter("value")
		return v, present && err == nil
	case constraint.TypeDiameter:
		v, present, err := c.NumericParameter("value")
		return v / 2, present && err == nil
	default:
		return 0, false
	}
}

// DetectConflicts scans every pair of non-suppressed constraints sharing
// the same entity-id set (as a set, order irrelevant) for the three
// pairwise conflict shapes spec §4.3.2 defines: horizontal+vertical on
// one line, two disagreeing distance values, and two disagreeing
// radius/diameter values on the same circle (diameter halved first).
func DetectConflicts(sys *constraint.System) ConflictReport {
	cs := sys.ActiveConstraints()
	var report ConflictReport
	problematic := make(map[string]struct{})

	for i := 0; i < len(cs); i++ {
		for j := i + 1; j < len(cs); j++ {
			a, b := cs[i], cs[j]
			if entitySet(a.EntityIDs) != entitySet(b.EntityIDs) {
				continue
			}
			reason, conflicted := conflictReason(a, b)
			if !conflicted {
				continue
			}
			report.Conflicts = append(report.Conflicts, Conflict{ConstraintIDs: [2]string{a.ID, b.ID}, Reason: reason})
			problematic[a.ID] = struct{}{}
			problematic[b.ID] = struct{}{}
		}
	}

	for id := range problematic {
		report.ProblematicIDs = append(report.ProblematicIDs, id)
	}
	sort.Strings(report.ProblematicIDs)
	return report
}

func conflictReason(a, b constraint.Constraint) (string, bool) {
	types := map[constraint.Type]bool{a.Type: true, b.Type: true}
	if len(types) == 2 && types[constraint.TypeHorizontal] && types[constraint.TypeVertical] {
		return "horizontal and vertical on the same line", true
	}

	if a.Type == constraint.TypeDistance && b.Type == constraint.TypeDistance {
		av, aok, _ := a.NumericParameter("value", "distance")
		bv, bok, _ := b.NumericParameter("value", "distance")
		if aok && bok && math.Abs(av-bv) > 1e-3 {
			return "conflicting distance values", true
		}
	}

	aIsRadiusLike := a.Type == constraint.TypeRadius || a.Type == constraint.TypeDiameter
	bIsRadiusLike := b.Type == constraint.TypeRadius || b.Type == constraint.TypeDiameter
	if aIsRadiusLike && bIsRadiusLike {
		ar, aok := normalizedRadius(a)
		br, bok := normalizedRadius(b)
		if aok && bok && math.Abs(ar-br) > 1e-3 {
			return "conflicting radius values", true
		}
	}

	return "", false
}
