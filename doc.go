// Package sketch2d is a 2D geometric constraint solver for parametric
// CAD sketching.
//
// A sketch is a constraint.System: a flat catalog of geom.Entity values
// (points, lines, circles, arcs, ellipses, slots, polygons, splines) and
// an ordered list of constraints relating their variables. Solve lowers
// that system into scalar relations (package relation), drives them to a
// consistent assignment with a Levenberg-Marquardt-damped Gauss-Newton
// engine (package numeric), and on failure classifies why (package
// diagnostics) so a caller can surface an actionable message instead of a
// bare "didn't converge".
//
// Persistence lives in package serialize (the v1.0 JSON/YAML wire
// format); entity/geometry adapters live in package geom;
// write-back-to-caller projection lives in package project.
//
// Solve never mutates its input: every entity and constraint the caller
// passed in is still exactly as given after the call returns, success or
// failure.
package sketch2d
