// Package depgraph is a small undirected graph kernel dedicated to
// constraint dependency analysis (spec §4.3.5): vertices are constraint
// ids, edges join constraints that share at least one entity id. It is a
// trimmed, renamed adaptation of the teacher's core.Graph plus
// dfs.DetectCycles — no weights, no multi-edges, no mixed directedness,
// since the dependency graph never needs them.
//
// Determinism: FirstCycle visits vertices in sorted id order and, within
// a vertex, its edges in sorted neighbor-id order, so the same graph
// always yields the same cycle (or no-cycle) result.
package depgraph
