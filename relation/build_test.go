package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/geom"
	"github.com/arclattice/sketch2d/relation"
)

func mustLine(t *testing.T, id string, sx, sy, ex, ey float64) *geom.Entity {
	t.Helper()
	e, err := geom.NewEntity(id, geom.KindLine, 0)
	require.NoError(t, err)
	e.Variables["start_x"] = geom.SolverVariable{Value: sx}
	e.Variables["start_y"] = geom.SolverVariable{Value: sy}
	e.Variables["end_x"] = geom.SolverVariable{Value: ex}
	e.Variables["end_y"] = geom.SolverVariable{Value: ey}
	return e
}

func mustPoint(t *testing.T, id string, x, y float64) *geom.Entity {
	t.Helper()
	e, err := geom.NewEntity(id, geom.KindPoint, 0)
	require.NoError(t, err)
	e.Variables["x"] = geom.SolverVariable{Value: x}
	e.Variables["y"] = geom.SolverVariable{Value: y}
	return e
}

func valuesOf(entities ...*geom.Entity) map[string]float64 {
	out := make(map[string]float64)
	for _, e := range entities {
		for name, v := range e.Variables {
			out[e.GlobalID(name)] = v.Value
		}
	}
	return out
}

func TestBuildAll_Horizontal(t *testing.T) {
	s := constraint.NewSystem()
	l := mustLine(t, "L", 0, 0, 100, 10)
	require.NoError(t, s.AddEntity(l))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c1", Type: constraint.TypeHorizontal, EntityIDs: []string{"L"}, Strength: constraint.Required}))

	rels, warnings, err := relation.BuildAll(s)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, rels, 1)
	assert.Equal(t, 10.0, rels[0].Eval(valuesOf(l)))
}

func TestBuildAll_Distance_AcceptsBothParamKeys(t *testing.T) {
	p := mustPoint(t, "p", 0, 0)
	q := mustPoint(t, "q", 3, 4)
	values := valuesOf(p, q)

	for _, key := range []string{"value", "distance"} {
		s := constraint.NewSystem()
		require.NoError(t, s.AddEntity(p))
		require.NoError(t, s.AddEntity(q))
		require.NoError(t, s.AddConstraint(constraint.Constraint{
			ID: "c1", Type: constraint.TypeDistance, EntityIDs: []string{"p", "q"},
			Parameters: map[string]interface{}{key: 5.0}, Strength: constraint.Required,
		}))
		rels, _, err := relation.BuildAll(s)
		require.NoError(t, err)
		require.Len(t, rels, 1)
		assert.InDelta(t, 0, rels[0].Eval(values), 1e-9, "key %q", key)
	}
}

func TestBuildAll_Angle_IsWarnedAndSkipped(t *testing.T) {
	s := constraint.NewSystem()
	l1 := mustLine(t, "L1", 0, 0, 10, 0)
	l2 := mustLine(t, "L2", 0, 0, 0, 10)
	require.NoError(t, s.AddEntity(l1))
	require.NoError(t, s.AddEntity(l2))
	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "c1", Type: constraint.TypeAngle, EntityIDs: []string{"L1", "L2"},
		Parameters: map[string]interface{}{"value": 90.0},
	}))

	rels, warnings, err := relation.BuildAll(s)
	require.NoError(t, err)
	assert.Empty(t, rels)
	require.Len(t, warnings, 1)
	assert.Equal(t, "c1", warnings[0].ConstraintID)
}

func TestBuildAll_Coincident_LineEndpoints(t *testing.T) {
	s := constraint.NewSystem()
	l1 := mustLine(t, "L1", 0, 0, 10, 0)
	l2 := mustLine(t, "L2", 10, 0, 20, 5)
	require.NoError(t, s.AddEntity(l1))
	require.NoError(t, s.AddEntity(l2))
	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "c1", Type: constraint.TypeCoincident, EntityIDs: []string{"L1", "L2"},
		Parameters: map[string]interface{}{"point1": "end", "point2": "start"},
	}))

	rels, warnings, err := relation.BuildAll(s)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, rels, 2)
	values := valuesOf(l1, l2)
	for _, r := range rels {
		assert.InDelta(t, 0, r.Eval(values), 1e-9)
	}
}

func TestBuildAll_Equal_MismatchedKinds_Warns(t *testing.T) {
	s := constraint.NewSystem()
	p := mustPoint(t, "p", 0, 0)
	c, err := geom.NewEntity("c", geom.KindCircle, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddEntity(p))
	require.NoError(t, s.AddEntity(c))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c1", Type: constraint.TypeEqual, EntityIDs: []string{"p", "c"}}))

	rels, warnings, err := relation.BuildAll(s)
	require.NoError(t, err)
	assert.Empty(t, rels)
	require.Len(t, warnings, 1)
}

func TestBuildAll_Fix_AnchorsEveryVariableAtStrong(t *testing.T) {
	s := constraint.NewSystem()
	p := mustPoint(t, "p", 3, 4)
	require.NoError(t, s.AddEntity(p))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c1", Type: constraint.TypeFix, EntityIDs: []string{"p"}, Strength: constraint.Weak}))

	rels, _, err := relation.BuildAll(s)
	require.NoError(t, err)
	require.Len(t, rels, 2)
	for _, r := range rels {
		assert.Equal(t, constraint.Strong, r.Strength, "fix always anchors at strong strength")
	}
}
