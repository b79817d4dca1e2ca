package project

import "github.com/arclattice/sketch2d/geom"

// apply writes every local variable in names back onto a clone of e from
// results, skipping any whose global id is absent.
func apply(e *geom.Entity, results map[string]float64, names []string) *geom.Entity {
	out := e.Clone()
	for _, name := range names {
		if v, ok := results[e.GlobalID(name)]; ok {
			sv := out.Variables[name]
			sv.Value = v
			out.Variables[name] = sv
		}
	}
	return out
}

// Point writes a solved {x, y} back onto a point entity.
func Point(e *geom.Entity, results map[string]float64) *geom.Entity {
	return apply(e, results, []string{"x", "y"})
}

// Line writes solved endpoints back onto a line entity.
func Line(e *geom.Entity, results map[string]float64) *geom.Entity {
	return apply(e, results, []string{"start_x", "start_y", "end_x", "end_y"})
}

// Circle writes a solved center and radius back onto a circle entity.
func Circle(e *geom.Entity, results map[string]float64) *geom.Entity {
	return apply(e, results, []string{"center_x", "center_y", "radius"})
}

// Arc writes a solved center, radius, and angle span back onto an arc entity.
func Arc(e *geom.Entity, results map[string]float64) *geom.Entity {
	return apply(e, results, []string{"center_x", "center_y", "radius", "start_angle", "end_angle"})
}

// Ellipse writes a solved center, axes, and rotation back onto an ellipse entity.
func Ellipse(e *geom.Entity, results map[string]float64) *geom.Entity {
	return apply(e, results, []string{"center_x", "center_y", "major", "minor", "rotation"})
}

// Slot writes solved endpoints and width back onto a slot entity.
func Slot(e *geom.Entity, results map[string]float64) *geom.Entity {
	return apply(e, results, []string{"start_x", "start_y", "end_x", "end_y", "width"})
}

// Polygon writes a solved center, radius, and rotation back onto a regular polygon entity.
func Polygon(e *geom.Entity, results map[string]float64) *geom.Entity {
	return apply(e, results, []string{"center_x", "center_y", "radius", "rotation"})
}

// Spline writes every solved control-point coordinate back onto a spline
// entity. Control point count is derived from e's own variable set, not
// passed separately, since Entity is the only source of truth for it.
func Spline(e *geom.Entity, results map[string]float64) *geom.Entity {
	return apply(e, results, e.SortedVariableNames())
}

// Entity dispatches to the kind-specific projector for e.Kind. An
// unrecognized kind is returned unmodified (cloned but untouched) rather
// than erroring, matching spec §4.4's "no error paths" contract.
func Entity(e *geom.Entity, results map[string]float64) *geom.Entity {
	switch e.Kind {
	case geom.KindPoint:
		return Point(e, results)
	case geom.KindLine:
		return Line(e, results)
	case geom.KindCircle:
		return Circle(e, results)
	case geom.KindArc:
		return Arc(e, results)
	case geom.KindEllipse:
		return Ellipse(e, results)
	case geom.KindSlot:
		return Slot(e, results)
	case geom.KindPolygon:
		return Polygon(e, results)
	case geom.KindSpline:
		return Spline(e, results)
	default:
		return e.Clone()
	}
}
