// Package diagnostics analyzes a constraint.System independently of the
// numeric engine (spec §4.3): degree-of-freedom accounting, a pairwise
// conflict scan, a per-entity degeneracy scan, a redundant-constraint
// heuristic, and a dependency-graph cycle finder built on
// diagnostics/depgraph. AnalyzeSolverFailure combines them into a single
// SolverFailure, picking the first detector that fires in the order
// over-constraint, conflicting, degenerate, unknown — matching the
// teacher's pattern of a small ordered chain of independent checks rather
// than one monolithic pass.
//
// Every exported detector is a pure function of its input: none mutate
// the System, and none depend on one another's results except through
// AnalyzeSolverFailure's explicit ordering and DetectOverConstrained,
// which reports DetectRedundant's hints as its Candidates.
package diagnostics
