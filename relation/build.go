package relation

import (
	"fmt"
	"math"
	"sort"

	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/geom"
)

// builderFunc lowers one constraint against the system's entity catalog
// into zero or more Relations. A nil slice returned with Unsupported or
// ErrUnsupportedOperandKinds as the error signals "recognized but not
// lowerable"; BuildAll turns that, like any builder error, into a Warning.
type builderFunc func(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error)

// dispatch is the normative per-type translation table of spec §4.1.
var dispatch = map[constraint.Type]builderFunc{
	constraint.TypeCoincident:    buildCoincident,
	constraint.TypeHorizontal:    buildHorizontal,
	constraint.TypeVertical:      buildVertical,
	constraint.TypeParallel:      buildParallel,
	constraint.TypePerpendicular: buildPerpendicular,
	constraint.TypeTangent:       buildTangent,
	constraint.TypeEqual:         buildEqual,
	constraint.TypeConcentric:    buildConcentric,
	constraint.TypeSymmetric:     buildSymmetric,
	constraint.TypeFix:           buildFix,
	constraint.TypeMidpoint:      buildMidpoint,
	constraint.TypeDistance:      buildDistance,
	constraint.TypeRadius:        buildRadius,
	constraint.TypeDiameter:      buildDiameter,
	constraint.TypeAngle:         buildAngle,
}

// BuildAll lowers every active (non-suppressed) constraint in sys into
// Relations, in constraint insertion order, via the dispatch table.
// Constraints of an unrecognized Type are reported as warnings (spec §7,
// "Unsupported constraint type — logged as a warning, constraint
// skipped"), as are constraints a builder recognizes but cannot lower
// (angle; equal() between incompatible kinds).
func BuildAll(sys *constraint.System) ([]Relation, []Warning, error) {
	entities := sys.Entities()
	var relations []Relation
	var warnings []Warning

	for _, c := range sys.ActiveConstraints() {
		build, ok := dispatch[c.Type]
		if !ok {
			warnings = append(warnings, Warning{ConstraintID: c.ID, Message: fmt.Sprintf("unrecognized constraint type %q", c.Type)})
			continue
		}
		rels, err := build(c, entities)
		if err != nil {
			warnings = append(warnings, Warning{ConstraintID: c.ID, Message: err.Error()})
			continue
		}
		for i := range rels {
			rels[i].ConstraintID = c.ID
			rels[i].ConstraintType = c.Type
			if rels[i].Strength == "" {
				rels[i].Strength = c.Strength
			}
			sort.Strings(rels[i].Vars)
		}
		relations = append(relations, rels...)
	}
	return relations, warnings, nil
}

func entity(entities map[string]*geom.Entity, id string) (*geom.Entity, error) {
	e, ok := entities[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingEntity, id)
	}
	return e, nil
}

// quadraticScale returns the convergence-check rescale factor for a
// quadratic-form relation whose characteristic linear magnitude is
// target (e.g. a distance or radius value). Per spec §9, ordinary
// magnitudes (<=1000) need no rescaling; beyond that, the squared-form
// residual is compared against a proportionally larger tolerance so a
// fixed absolute epsilon remains meaningful at scales up to 10^4.
func quadraticScale(target float64) float64 {
	t := math.Abs(target) / 1000.0
	if t <= 1.0 {
		return 1.0
	}
	return t * t
}

// lineVector returns (dx, dy) = (end - start) for line l.
func lineVector(values map[string]float64, l *geom.Entity) (dx, dy float64) {
	dx = values[l.GlobalID("end_x")] - values[l.GlobalID("start_x")]
	dy = values[l.GlobalID("end_y")] - values[l.GlobalID("start_y")]
	return
}

func buildHorizontal(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	l, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	sy, ey := l.GlobalID("start_y"), l.GlobalID("end_y")
	return []Relation{{
		Vars: []string{sy, ey},
		Eval: func(v map[string]float64) float64 { return v[sy] - v[ey] },
	}}, nil
}

func buildVertical(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	l, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	sx, ex := l.GlobalID("start_x"), l.GlobalID("end_x")
	return []Relation{{
		Vars: []string{sx, ex},
		Eval: func(v map[string]float64) float64 { return v[sx] - v[ex] },
	}}, nil
}

func buildParallel(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	l1, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	l2, err := entity(entities, c.EntityIDs[1])
	if err != nil {
		return nil, err
	}
	vars := []string{l1.GlobalID("start_x"), l1.GlobalID("start_y"), l1.GlobalID("end_x"), l1.GlobalID("end_y"),
		l2.GlobalID("start_x"), l2.GlobalID("start_y"), l2.GlobalID("end_x"), l2.GlobalID("end_y")}
	return []Relation{{
		Vars: vars,
		Eval: func(v map[string]float64) float64 {
			dx1, dy1 := lineVector(v, l1)
			dx2, dy2 := lineVector(v, l2)
			return dy1*dx2 - dy2*dx1
		},
	}}, nil
}

func buildPerpendicular(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	l1, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	l2, err := entity(entities, c.EntityIDs[1])
	if err != nil {
		return nil, err
	}
	vars := []string{l1.GlobalID("start_x"), l1.GlobalID("start_y"), l1.GlobalID("end_x"), l1.GlobalID("end_y"),
		l2.GlobalID("start_x"), l2.GlobalID("start_y"), l2.GlobalID("end_x"), l2.GlobalID("end_y")}
	return []Relation{{
		Vars: vars,
		Eval: func(v map[string]float64) float64 {
			dx1, dy1 := lineVector(v, l1)
			dx2, dy2 := lineVector(v, l2)
			return dx1*dx2 + dy1*dy2
		},
	}}, nil
}

// resolvePointKey maps a coincident point1/point2 parameter (default
// "start" for lines, "center" for circle-like kinds, and the implicit
// {x,y} pair for a bare point) to the entity's local x/y variable names.
func resolvePointKey(e *geom.Entity, key string) (xLocal, yLocal string, err error) {
	switch e.Kind {
	case geom.KindPoint:
		return "x", "y", nil
	case geom.KindLine, geom.KindSlot:
		switch key {
		case "", "start":
			return "start_x", "start_y", nil
		case "end":
			return "end_x", "end_y", nil
		default:
			return "", "", fmt.Errorf("%w: %q", ErrUnsupportedPointKey, key)
		}
	case geom.KindCircle, geom.KindArc, geom.KindEllipse, geom.KindPolygon:
		return "center_x", "center_y", nil
	default:
		return "", "", fmt.Errorf("%w: kind %q", ErrUnsupportedOperandKinds, e.Kind)
	}
}

func buildCoincident(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	a, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	b, err := entity(entities, c.EntityIDs[1])
	if err != nil {
		return nil, err
	}
	key1, _, _ := c.StringParameter("point1")
	key2, _, _ := c.StringParameter("point2")
	ax, ay, err := resolvePointKey(a, key1)
	if err != nil {
		return nil, err
	}
	bx, by, err := resolvePointKey(b, key2)
	if err != nil {
		return nil, err
	}
	agx, agy := a.GlobalID(ax), a.GlobalID(ay)
	bgx, bgy := b.GlobalID(bx), b.GlobalID(by)
	return []Relation{
		{Vars: []string{agx, bgx}, Eval: func(v map[string]float64) float64 { return v[agx] - v[bgx] }},
		{Vars: []string{agy, bgy}, Eval: func(v map[string]float64) float64 { return v[agy] - v[bgy] }},
	}, nil
}

func buildConcentric(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	a, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	b, err := entity(entities, c.EntityIDs[1])
	if err != nil {
		return nil, err
	}
	ax, ay := a.GlobalID("center_x"), a.GlobalID("center_y")
	bx, by := b.GlobalID("center_x"), b.GlobalID("center_y")
	return []Relation{
		{Vars: []string{ax, bx}, Eval: func(v map[string]float64) float64 { return v[ax] - v[bx] }},
		{Vars: []string{ay, by}, Eval: func(v map[string]float64) float64 { return v[ay] - v[by] }},
	}, nil
}

func buildMidpoint(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	p, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	l, err := entity(entities, c.EntityIDs[1])
	if err != nil {
		return nil, err
	}
	px, py := p.GlobalID("x"), p.GlobalID("y")
	sx, sy := l.GlobalID("start_x"), l.GlobalID("start_y")
	ex, ey := l.GlobalID("end_x"), l.GlobalID("end_y")
	return []Relation{
		{Vars: []string{px, sx, ex}, Eval: func(v map[string]float64) float64 { return v[px] - (v[sx]+v[ex])/2 }},
		{Vars: []string{py, sy, ey}, Eval: func(v map[string]float64) float64 { return v[py] - (v[sy]+v[ey])/2 }},
	}, nil
}

func buildDistance(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	p, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	q, err := entity(entities, c.EntityIDs[1])
	if err != nil {
		return nil, err
	}
	// Both "value" and "distance" parameter keys are accepted (spec §9).
	d, present, err := c.NumericParameter("value", "distance")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, fmt.Errorf("%w: value", ErrMissingParameter)
	}
	px, py := p.GlobalID("x"), p.GlobalID("y")
	qx, qy := q.GlobalID("x"), q.GlobalID("y")
	return []Relation{{
		Vars:  []string{px, py, qx, qy},
		Scale: quadraticScale(d),
		Eval: func(v map[string]float64) float64 {
			dx := v[qx] - v[px]
			dy := v[qy] - v[py]
			return dx*dx + dy*dy - d*d
		},
	}}, nil
}

func buildRadius(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	circle, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	r, present, err := c.NumericParameter("value")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, fmt.Errorf("%w: value", ErrMissingParameter)
	}
	rg := circle.GlobalID("radius")
	return []Relation{{
		Vars: []string{rg},
		Eval: func(v map[string]float64) float64 { return v[rg] - r },
	}}, nil
}

func buildDiameter(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	circle, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	d, present, err := c.NumericParameter("value")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, fmt.Errorf("%w: value", ErrMissingParameter)
	}
	rg := circle.GlobalID("radius")
	return []Relation{{
		Vars: []string{rg},
		Eval: func(v map[string]float64) float64 { return v[rg] - d/2 },
	}}, nil
}

func lengthSquared(values map[string]float64, l *geom.Entity) float64 {
	dx, dy := lineVector(values, l)
	return dx*dx + dy*dy
}

func buildEqual(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	a, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	b, err := entity(entities, c.EntityIDs[1])
	if err != nil {
		return nil, err
	}
	switch {
	case a.Kind == geom.KindLine && b.Kind == geom.KindLine:
		vars := []string{a.GlobalID("start_x"), a.GlobalID("start_y"), a.GlobalID("end_x"), a.GlobalID("end_y"),
			b.GlobalID("start_x"), b.GlobalID("start_y"), b.GlobalID("end_x"), b.GlobalID("end_y")}
		return []Relation{{
			Vars: vars,
			Eval: func(v map[string]float64) float64 { return lengthSquared(v, a) - lengthSquared(v, b) },
		}}, nil
	case a.Kind == geom.KindCircle && b.Kind == geom.KindCircle:
		ar, br := a.GlobalID("radius"), b.GlobalID("radius")
		return []Relation{{
			Vars: []string{ar, br},
			Eval: func(v map[string]float64) float64 { return v[ar] - v[br] },
		}}, nil
	default:
		return nil, fmt.Errorf("%w: equal(%s, %s)", ErrUnsupportedOperandKinds, a.Kind, b.Kind)
	}
}

// buildTangent relates a circle and a line: the squared distance from
// the circle's center to the (infinite) line equals the squared radius.
// Expressed without division so the relation stays polynomial and well
// behaved even as the line's length approaches zero (degenerate lines
// are flagged separately by diagnostics):
//
//	cross = (L.end_y-L.start_y)*(C.cx-L.start_x) - (L.end_x-L.start_x)*(C.cy-L.start_y)
//	cross^2 - C.radius^2 * |L|^2 = 0
func buildTangent(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	circle, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	line, err := entity(entities, c.EntityIDs[1])
	if err != nil {
		return nil, err
	}
	cx, cy, r := circle.GlobalID("center_x"), circle.GlobalID("center_y"), circle.GlobalID("radius")
	sx, sy := line.GlobalID("start_x"), line.GlobalID("start_y")
	vars := []string{cx, cy, r, sx, sy, line.GlobalID("end_x"), line.GlobalID("end_y")}
	return []Relation{{
		Vars:  vars,
		Scale: quadraticScale(1000), // cross/length products compound scale fast; keep a conservative floor.
		Eval: func(v map[string]float64) float64 {
			dx, dy := lineVector(v, line)
			cross := dy*(v[cx]-v[sx]) - dx*(v[cy]-v[sy])
			return cross*cross - v[r]*v[r]*(dx*dx+dy*dy)
		},
	}}, nil
}

func buildFix(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	e, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	var rels []Relation
	for _, name := range e.SortedVariableNames() {
		name := name
		gid := e.GlobalID(name)
		v0, _ := e.Variable(name)
		anchor := v0.Value
		rels = append(rels, Relation{
			// fix anchors every variable at strong strength regardless of
			// the constraint's own Strength field (spec §4.1 translation
			// table: "an anchoring equation v = v0 at strong strength").
			Strength: constraint.Strong,
			Vars:     []string{gid},
			Eval:     func(v map[string]float64) float64 { return v[gid] - anchor },
		})
	}
	return rels, nil
}

// reflectPoint reflects (px,py) across the line through (sx,sy)-(ex,ey).
func reflectPoint(px, py, sx, sy, ex, ey float64) (rx, ry float64) {
	dx, dy := ex-sx, ey-sy
	denom := dx*dx + dy*dy
	if denom == 0 {
		return px, py
	}
	t := ((px-sx)*dx + (py-sy)*dy) / denom
	fx, fy := sx+t*dx, sy+t*dy
	return 2*fx - px, 2*fy - py
}

func buildSymmetric(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	if len(c.EntityIDs) < 3 {
		return nil, fmt.Errorf("%w: symmetric requires [a, b, axis]", ErrMissingParameter)
	}
	a, err := entity(entities, c.EntityIDs[0])
	if err != nil {
		return nil, err
	}
	b, err := entity(entities, c.EntityIDs[1])
	if err != nil {
		return nil, err
	}
	axis, err := entity(entities, c.EntityIDs[2])
	if err != nil {
		return nil, err
	}
	if axis.Kind != geom.KindLine {
		return nil, fmt.Errorf("%w: symmetric axis must be a line", ErrUnsupportedOperandKinds)
	}
	asx, asy := axis.GlobalID("start_x"), axis.GlobalID("start_y")
	aex, aey := axis.GlobalID("end_x"), axis.GlobalID("end_y")

	reflectVarPair := func(pxName, pyName string) (Relation, Relation) {
		pgx, pgy := a.GlobalID(pxName), a.GlobalID(pyName)
		bgx, bgy := b.GlobalID(pxName), b.GlobalID(pyName)
		vars := []string{pgx, pgy, bgx, bgy, asx, asy, aex, aey}
		rx := Relation{Vars: vars, Eval: func(v map[string]float64) float64 {
			x, _ := reflectPoint(v[pgx], v[pgy], v[asx], v[asy], v[aex], v[aey])
			return x - v[bgx]
		}}
		ry := Relation{Vars: vars, Eval: func(v map[string]float64) float64 {
			_, y := reflectPoint(v[pgx], v[pgy], v[asx], v[asy], v[aex], v[aey])
			return y - v[bgy]
		}}
		return rx, ry
	}

	switch {
	case a.Kind == geom.KindPoint && b.Kind == geom.KindPoint:
		rx, ry := reflectVarPair("x", "y")
		return []Relation{rx, ry}, nil
	case a.Kind == geom.KindLine && b.Kind == geom.KindLine:
		rx1, ry1 := reflectVarPair("start_x", "start_y")
		rx2, ry2 := reflectVarPair("end_x", "end_y")
		return []Relation{rx1, ry1, rx2, ry2}, nil
	default:
		return nil, fmt.Errorf("%w: symmetric(%s, %s)", ErrUnsupportedOperandKinds, a.Kind, b.Kind)
	}
}

// buildAngle is a deliberate stub (spec §9): the angle constraint's
// relation over direction-vector dot/cross products is left unimplemented
// in first implementations. BuildAll turns this Unsupported error into a
// Warning and skips the constraint, matching spec §7's "unsupported
// constraint type" handling.
func buildAngle(c constraint.Constraint, entities map[string]*geom.Entity) ([]Relation, error) {
	return nil, Unsupported
}
