package relation

import (
	"errors"

	"github.com/arclattice/sketch2d/constraint"
)

// Sentinel errors for relation package operations.
var (
	// ErrMissingEntity indicates a builder could not resolve one of a
	// constraint's operand entities (should not happen after
	// constraint.System.Validate has run).
	ErrMissingEntity = errors.New("relation: missing operand entity")

	// ErrMissingParameter indicates a required numeric parameter was absent.
	ErrMissingParameter = errors.New("relation: missing required parameter")

	// ErrUnsupportedPointKey indicates a point1/point2 parameter value on a
	// line or slot operand other than "start" or "end" (or empty); the key
	// is ignored for point and circle-like operands.
	ErrUnsupportedPointKey = errors.New("relation: unsupported point key")

	// ErrUnsupportedOperandKinds indicates a constraint whose operand
	// entity kinds the translation table does not define a relation for
	// (e.g. equal() between a point and a circle).
	ErrUnsupportedOperandKinds = errors.New("relation: unsupported operand kinds")
)

// Unsupported is a sentinel error returned by a builder for a constraint
// type that is recognized but intentionally unimplemented (spec §9:
// TypeAngle). BuildAll turns it into a Warning and skips the constraint
// rather than failing the whole build, per spec §7's "Unsupported
// constraint type" handling.
var Unsupported = errors.New("relation: constraint type not supported")

// Relation is one scalar equation g(vars...) = 0 lowered from a single
// constraint. Vars lists the global variable ids the relation reads, in
// deterministic sorted order (spec §4.2, Determinism) so Jacobian column
// assembly in package numeric is reproducible.
//
// Scale normalizes the convergence check for relations whose natural
// residual is in squared units (distance, tangent, ...): per spec §9,
// "distance residuals are checked on the squared form; epsilon should be
// compared to d²'s scale ... when d > 1000". A zero Scale means 1 (no
// rescaling needed at ordinary magnitudes).
type Relation struct {
	ConstraintID   string
	ConstraintType constraint.Type
	Strength       constraint.Strength
	Vars           []string
	Eval           func(values map[string]float64) float64
	Scale          float64
}

// Warning records a constraint that the builder recognized but could not
// lower into a relation: either an explicitly unsupported type (angle) or
// mismatched operand kinds for a type whose relation depends on kind
// (equal). The numeric engine copies these into its Result.Warnings and
// otherwise proceeds (spec §7).
type Warning struct {
	ConstraintID string
	Message      string
}
