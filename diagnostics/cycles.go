package diagnostics

import (
	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/diagnostics/depgraph"
)

// DetectCircularDependencies builds the undirected dependency graph of
// spec §4.3.5 — one vertex per non-suppressed constraint id, an edge
// between any two constraints sharing at least one entity id — and
// returns the lexicographically smallest of the cycles a deterministic DFS
// finds (see depgraph.Graph.FirstCycle). Cycles are common in
// valid closed shapes (a rectangle's four coincident corners form one),
// so this is informational, not an error.
func DetectCircularDependencies(sys *constraint.System) (cycle []string, found bool) {
	cs := sys.ActiveConstraints()
	g := depgraph.New()
	for _, c := range cs {
		g.AddVertex(c.ID)
	}
	for i := 0; i < len(cs); i++ {
		for j := i + 1; j < len(cs); j++ {
			if sharesEntity(cs[i], cs[j]) {
				g.AddEdge(cs[i].ID, cs[j].ID)
			}
		}
	}
	return g.FirstCycle()
}

func sharesEntity(a, b constraint.Constraint) bool {
	set := make(map[string]struct{}, len(a.EntityIDs))
	for _, id := range a.EntityIDs {
		set[id] = struct{}{}
	}
	for _, id := range b.EntityIDs {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
