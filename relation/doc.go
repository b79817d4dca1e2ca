// Package relation lowers constraint.Constraint values into scalar
// Relation values over the flat global variable space defined by geom:
// each relation is a function of a handful of global variable ids whose
// root is zero exactly when the source constraint is satisfied, per the
// translation table in spec §4.1.
//
// The dispatch table in build.go is normative and mirrors the spec's
// table one constraint Type at a time; TypeAngle is the one deliberate
// exception (spec §9: left as a warned-and-skipped stub).
package relation
