package constraint

import "fmt"

// ValidationError reports a malformed-input failure (spec §7): an empty
// or unknown entity id, or a parameter of the wrong value kind. Offender
// names the id or field at fault so callers can surface it verbatim in a
// failure message.
type ValidationError struct {
	ConstraintID string
	Offender     string
	Err          error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("constraint %q: %s: %v", e.ConstraintID, e.Offender, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// numericKeysByType lists which parameter keys, if present, must be
// numeric for a given constraint Type. Only keys relevant to that type's
// relation(s) are checked; unrecognized keys are ignored here (they are
// simply unused by the relation builder).
var numericKeysByType = map[Type][]string{
	TypeDistance: {"value", "distance"},
	TypeRadius:   {"value"},
	TypeDiameter: {"value"},
	TypeAngle:    {"value"},
}

// Validate checks every constraint in s against the malformed-input
// taxonomy of spec §7: every id in Constraint.EntityIDs must resolve in
// s's entities, and any recognized numeric parameter must actually be a
// numeric Go value. It does not run the diagnostics detectors (degenerate
// geometry, conflicts, over-constraint) — those are implemented in package
// diagnostics. Returns the first
// malformed-input error found, walking constraints in insertion order.
func (s *System) Validate() error {
	entities := s.Entities()
	for _, c := range s.Constraints() {
		for _, id := range c.EntityIDs {
			if id == "" {
				return &ValidationError{ConstraintID: c.ID, Offender: "entity id", Err: fmt.Errorf("empty entity id")}
			}
			if _, ok := entities[id]; !ok {
				return &ValidationError{ConstraintID: c.ID, Offender: id, Err: fmt.Errorf("unknown entity %q", id)}
			}
		}
		for _, key := range numericKeysByType[c.Type] {
			if _, _, err := c.NumericParameter(key); err != nil {
				return &ValidationError{ConstraintID: c.ID, Offender: key, Err: err}
			}
		}
	}
	return nil
}
