// Package geom defines the planar entities a sketch is built from, their
// per-kind scalar variables, and the mapping between an entity-local
// variable name (e.g. "radius") and its globally-scoped identifier in the
// flat variable space the numeric engine operates over.
//
// Entity kinds and their variable sets are a closed, build-time-known
// table (point, line, circle, arc, ellipse, slot, polygon, spline) rather
// than an open interface hierarchy: adding a kind means editing the table
// in types.go, not implementing a new type that satisfies some Entity
// interface. See Kind and kindVariables.
//
// Complexity: every operation in this package is O(k) in the number of
// variables of a single entity (at most 5, for spline control points it
// is O(n) in control-point count); there is no traversal over a System.
package geom
