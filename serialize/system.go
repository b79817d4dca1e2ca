package serialize

import (
	"sort"

	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/geom"
)

// FromSystem renders sys as a Document. Entities are emitted in sorted id
// order (the System's own map has no order); constraints are emitted in
// their insertion order, preserving the Round-trip testable property's
// "constraint list equality as ordered sequences" (spec §8).
func FromSystem(sys *constraint.System) *Document {
	d := &Document{Version: Version}

	entities := sys.Entities()
	ids := make([]string, 0, len(entities))
	for id := range entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		e := entities[id]
		geometry := make(map[string]float64, len(e.Variables))
		fixed := make(map[string]bool)
		for name, v := range e.Variables {
			geometry[name] = v.Value
			if v.Fixed {
				fixed[name] = true
			}
		}
		wireEntity := Entity{ID: e.ID, Type: string(e.Kind), Geometry: geometry}
		if len(fixed) > 0 {
			wireEntity.Fixed = fixed
		}
		d.Entities = append(d.Entities, wireEntity)
	}
	if d.Entities == nil {
		d.Entities = []Entity{}
	}

	for _, c := range sys.Constraints() {
		d.Constraints = append(d.Constraints, Constraint{
			ID:         c.ID,
			Type:       string(c.Type),
			EntityIDs:  append([]string(nil), c.EntityIDs...),
			Parameters: c.Parameters,
			Strength:   string(c.Strength),
			Suppressed: c.Suppressed,
			IsAuto:     c.IsAuto,
		})
	}
	if d.Constraints == nil {
		d.Constraints = []Constraint{}
	}
	return d
}

// ToSystem converts a validated Document into a constraint.System. The
// number of control points for a spline entity is derived from the
// geometry map's own cp_N_{x,y} keys, since the wire format carries no
// separate count field.
func ToSystem(d *Document) (*constraint.System, error) {
	sys := constraint.NewSystem()

	for _, we := range d.Entities {
		kind := geom.Kind(we.Type)
		controlPoints := splineControlPointCount(we.Geometry)
		e, err := geom.CreateEntityGeometry(we.ID, kind, we.Geometry, we.Fixed, controlPoints)
		if err != nil {
			return nil, err
		}
		if err := sys.AddEntity(e); err != nil {
			return nil, err
		}
	}

	for _, wc := range d.Constraints {
		if err := sys.AddConstraint(constraint.Constraint{
			ID:         wc.ID,
			Type:       constraint.Type(wc.Type),
			EntityIDs:  append([]string(nil), wc.EntityIDs...),
			Parameters: wc.Parameters,
			Strength:   constraint.Strength(wc.Strength),
			Suppressed: wc.Suppressed,
			IsAuto:     wc.IsAuto,
		}); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

// splineControlPointCount counts the highest cp_N index present in
// geometry and returns N+1, or 0 if geometry carries no cp_ keys.
func splineControlPointCount(geometry map[string]float64) int {
	max := -1
	for name := range geometry {
		if idx, ok := controlPointIndex(name); ok && idx > max {
			max = idx
		}
	}
	return max + 1
}

// controlPointIndex parses a "cp_<N>_x" or "cp_<N>_y" local variable
// name and returns N. ok is false for any name not matching that shape.
func controlPointIndex(name string) (idx int, ok bool) {
	const prefix = "cp_"
	if len(name) < len(prefix) || name[:len(prefix)] != prefix {
		return 0, false
	}
	rest := name[len(prefix):]
	sep := -1
	for i, c := range rest {
		if c == '_' {
			sep = i
			break
		}
	}
	if sep <= 0 {
		return 0, false
	}
	n := 0
	for _, c := range rest[:sep] {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
