package geom

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for geom package operations.
var (
	// ErrEmptyEntityID indicates an Entity was constructed with an empty id.
	ErrEmptyEntityID = errors.New("geom: entity id is empty")

	// ErrUnknownKind indicates a Kind value outside the closed variable table.
	ErrUnknownKind = errors.New("geom: unknown entity kind")

	// ErrUnknownVariable indicates a local variable name not in the kind's table.
	ErrUnknownVariable = errors.New("geom: unknown variable for kind")
)

// Kind identifies the shape of a planar entity. The set is closed: every
// valid Kind has a fixed, total variable-name table in kindVariables.
type Kind string

// The eight entity kinds the solver understands, per spec §3.
const (
	KindPoint   Kind = "point"
	KindLine    Kind = "line"
	KindCircle  Kind = "circle"
	KindArc     Kind = "arc"
	KindEllipse Kind = "ellipse"
	KindSlot    Kind = "slot"
	KindPolygon Kind = "polygon"
	KindSpline  Kind = "spline"
)

// kindVariables lists the fixed, total local variable names for every
// non-spline kind. Spline is handled separately (SplineVariables) because
// its variable count depends on the number of control points.
var kindVariables = map[Kind][]string{
	KindPoint:   {"x", "y"},
	KindLine:    {"start_x", "start_y", "end_x", "end_y"},
	KindCircle:  {"center_x", "center_y", "radius"},
	KindArc:     {"center_x", "center_y", "radius", "start_angle", "end_angle"},
	KindEllipse: {"center_x", "center_y", "major", "minor", "rotation"},
	KindSlot:    {"start_x", "start_y", "end_x", "end_y", "width"},
	KindPolygon: {"center_x", "center_y", "radius", "rotation"},
}

// SplineVariables returns the local variable names for a spline with n
// control points: cp_0_x, cp_0_y, cp_1_x, cp_1_y, ... in index order.
// Complexity: O(n).
func SplineVariables(controlPoints int) []string {
	vars := make([]string, 0, controlPoints*2)
	for i := 0; i < controlPoints; i++ {
		vars = append(vars, fmt.Sprintf("cp_%d_x", i), fmt.Sprintf("cp_%d_y", i))
	}
	return vars
}

// Variables returns the local variable names for kind, in the fixed order
// of the spec's per-kind table. For KindSpline, controlPoints determines
// how many cp_i_{x,y} pairs are returned; it is ignored for every other
// kind. Returns ErrUnknownKind for a kind outside the closed table.
func Variables(kind Kind, controlPoints int) ([]string, error) {
	if kind == KindSpline {
		return SplineVariables(controlPoints), nil
	}
	vars, ok := kindVariables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	// Defensive copy: callers must not be able to mutate the shared table.
	out := make([]string, len(vars))
	copy(out, vars)
	return out, nil
}

// SolverVariable is a single scalar the engine may read or solve for.
// Fixed variables are anchors: the engine must not move them.
type SolverVariable struct {
	Value float64
	Fixed bool
}

// Entity is an opaquely-identified planar shape plus its scalar variables.
// Variable name-sets per Kind are closed and total (see Variables); an
// Entity never carries extra or missing variables for its Kind.
type Entity struct {
	ID        string
	Kind      Kind
	Variables map[string]SolverVariable
}

// GlobalID returns the flat, globally-scoped variable identifier for the
// local variable name on this entity: "{EntityId}_{localName}". Distinct
// entities never share a global id, so this yields a flat variable space
// across an entire System.
func (e *Entity) GlobalID(localName string) string {
	return e.ID + "_" + localName
}

// Variable returns the named local variable's current value, and whether
// it was found.
func (e *Entity) Variable(localName string) (SolverVariable, bool) {
	v, ok := e.Variables[localName]
	return v, ok
}

// SortedVariableNames returns the entity's local variable names in
// deterministic lexicographic order, used anywhere iteration order would
// otherwise affect floating point accumulation order (numeric determinism,
// spec §4.2).
func (e *Entity) SortedVariableNames() []string {
	names := make([]string, 0, len(e.Variables))
	for name := range e.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of e. The numeric engine and diagnostics must
// never mutate a caller's Entity in place (spec §8, Non-mutation); Clone
// is how a System snapshot is taken before a solve.
func (e *Entity) Clone() *Entity {
	if e == nil {
		return nil
	}
	vars := make(map[string]SolverVariable, len(e.Variables))
	for k, v := range e.Variables {
		vars[k] = v
	}
	return &Entity{ID: e.ID, Kind: e.Kind, Variables: vars}
}

// NewEntity constructs an Entity of the given kind with every variable in
// its closed table initialized to zero, unfixed. controlPoints is only
// consulted for KindSpline. Returns ErrEmptyEntityID or ErrUnknownKind on
// malformed input.
func NewEntity(id string, kind Kind, controlPoints int) (*Entity, error) {
	if id == "" {
		return nil, ErrEmptyEntityID
	}
	names, err := Variables(kind, controlPoints)
	if err != nil {
		return nil, err
	}
	vars := make(map[string]SolverVariable, len(names))
	for _, n := range names {
		vars[n] = SolverVariable{}
	}
	return &Entity{ID: id, Kind: kind, Variables: vars}, nil
}
