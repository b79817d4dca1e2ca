// Package constraint defines the tagged constraint descriptor type,
// constraint strengths, and the System that ties a map of geom.Entity to
// an ordered list of Constraint values.
//
// A System owns its entities and constraints for the duration of a solve:
// the solver and diagnostics packages treat it as read-only input and
// never write through it (spec §8, Non-mutation). Insertion order over
// Constraints is preserved and is load-bearing — it is the order used by
// diagnostics reports (DOF accounting order, conflict-scan order) so that
// failure reports are stable across runs (spec §5, Ordering guarantees).
// The dependency-cycle finder does not follow insertion order: it visits
// constraint ids in sorted order and reports the lexicographically
// smallest cycle it finds.
package constraint
