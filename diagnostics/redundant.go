package diagnostics

import (
	"sort"

	"github.com/arclattice/sketch2d/constraint"
)

// DetectRedundant flags constraints touching an entity whose reference
// count from non-suppressed constraints exceeds 1.5x its variable count
// (rounded down) — spec §4.3.4's heuristic for "this entity is probably
// over-referenced". The returned list is de-duplicated and sorted.
func DetectRedundant(sys *constraint.System) []string {
	entities := sys.Entities()
	refCount := make(map[string]int, len(entities))
	touching := make(map[string][]string)

	for _, c := range sys.ActiveConstraints() {
		seen := make(map[string]bool)
		for _, id := range c.EntityIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			refCount[id]++
			touching[id] = append(touching[id], c.ID)
		}
	}

	flagged := make(map[string]struct{})
	for id, e := range entities {
		threshold := roundedHalf(len(e.Variables))
		if refCount[id] > threshold {
			for _, cid := range touching[id] {
				flagged[cid] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(flagged))
	for cid := range flagged {
		out = append(out, cid)
	}
	sort.Strings(out)
	return out
}
