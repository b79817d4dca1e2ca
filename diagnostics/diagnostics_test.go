package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/diagnostics"
	"github.com/arclattice/sketch2d/geom"
	"github.com/arclattice/sketch2d/numeric"
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

func TestDetectOverConstrained_NegativeDeltaFlags(t *testing.T) {
	s := constraint.NewSystem()
	p := mustPoint(t, "p", 0, 0)
	require.NoError(t, s.AddEntity(p))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c1", Type: constraint.TypeFix, EntityIDs: []string{"p"}}))
	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "c2", Type: constraint.TypeDistance, EntityIDs: []string{"p", "p"},
		Parameters: map[string]interface{}{"value": 1.0},
	}))

	report := diagnostics.DetectOverConstrained(s)
	assert.True(t, report.OverConstrained)
	assert.Less(t, report.Delta, 0)
}

func TestDetectOverConstrained_UnderConstrainedWarns(t *testing.T) {
	s := constraint.NewSystem()
	p := mustPoint(t, "p", 0, 0)
	require.NoError(t, s.AddEntity(p))

	report := diagnostics.DetectOverConstrained(s)
	assert.True(t, report.UnderConstrained)
	assert.Equal(t, diagnostics.SeverityWarning, report.Severity)
}

func TestDetectConflicts_HorizontalVertical(t *testing.T) {
	s := constraint.NewSystem()
	l := mustLine(t, "L", 0, 0, 10, 10)
	require.NoError(t, s.AddEntity(l))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c1", Type: constraint.TypeHorizontal, EntityIDs: []string{"L"}}))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c2", Type: constraint.TypeVertical, EntityIDs: []string{"L"}}))

	report := diagnostics.DetectConflicts(s)
	require.Len(t, report.Conflicts, 1)
	assert.ElementsMatch(t, []string{"c1", "c2"}, report.ProblematicIDs)
}

func TestDetectConflicts_DisagreeingDistances(t *testing.T) {
	s := constraint.NewSystem()
	p := mustPoint(t, "p", 0, 0)
	q := mustPoint(t, "q", 3, 4)
	require.NoError(t, s.AddEntity(p))
	require.NoError(t, s.AddEntity(q))
	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "d1", Type: constraint.TypeDistance, EntityIDs: []string{"p", "q"}, Parameters: map[string]interface{}{"value": 50.0},
	}))
	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "d2", Type: constraint.TypeDistance, EntityIDs: []string{"p", "q"}, Parameters: map[string]interface{}{"value": 75.0},
	}))

	report := diagnostics.DetectConflicts(s)
	require.Len(t, report.Conflicts, 1)
}

func TestDetectConflicts_RadiusDiameterAgreementIsNotAConflict(t *testing.T) {
	s := constraint.NewSystem()
	c, err := geom.NewEntity("c", geom.KindCircle, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddEntity(c))
	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "r1", Type: constraint.TypeRadius, EntityIDs: []string{"c"}, Parameters: map[string]interface{}{"value": 5.0},
	}))
	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "d1", Type: constraint.TypeDiameter, EntityIDs: []string{"c"}, Parameters: map[string]interface{}{"value": 10.0},
	}))

	report := diagnostics.DetectConflicts(s)
	assert.Empty(t, report.Conflicts)
}

func TestDetectDegenerate_ZeroLengthLine(t *testing.T) {
	s := constraint.NewSystem()
	l := mustLine(t, "line-1", 5, 5, 5, 5)
	require.NoError(t, s.AddEntity(l))

	issues := diagnostics.DetectDegenerate(s)
	require.Len(t, issues, 1)
	assert.Equal(t, "line-1", issues[0].EntityID)
	assert.Contains(t, issues[0].Reason, "zero length")
}

func TestDetectDegenerate_NonPositiveRadius(t *testing.T) {
	s := constraint.NewSystem()
	c, err := geom.NewEntity("c", geom.KindCircle, 0)
	require.NoError(t, err)
	c.Variables["radius"] = geom.SolverVariable{Value: -1}
	require.NoError(t, s.AddEntity(c))

	issues := diagnostics.DetectDegenerate(s)
	require.Len(t, issues, 1)
	assert.Equal(t, "c", issues[0].EntityID)
}

func TestDetectRedundant_FlagsOverReferencedEntity(t *testing.T) {
	s := constraint.NewSystem()
	p := mustPoint(t, "p", 0, 0)
	require.NoError(t, s.AddEntity(p))
	for i := 0; i < 4; i++ {
		require.NoError(t, s.AddConstraint(constraint.Constraint{
			ID: "fix" + string(rune('a'+i)), Type: constraint.TypeFix, EntityIDs: []string{"p"},
		}))
	}

	redundant := diagnostics.DetectRedundant(s)
	assert.NotEmpty(t, redundant)
}

func TestDetectCircularDependencies_ClosedRectangleHasCycle(t *testing.T) {
	s := constraint.NewSystem()
	for _, id := range []string{"L1", "L2", "L3", "L4"} {
		require.NoError(t, s.AddEntity(mustLine(t, id, 0, 0, 1, 1)))
	}
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c1", Type: constraint.TypeCoincident, EntityIDs: []string{"L1", "L2"}}))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c2", Type: constraint.TypeCoincident, EntityIDs: []string{"L2", "L3"}}))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c3", Type: constraint.TypeCoincident, EntityIDs: []string{"L3", "L4"}}))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "c4", Type: constraint.TypeCoincident, EntityIDs: []string{"L4", "L1"}}))

	_, found := diagnostics.DetectCircularDependencies(s)
	assert.True(t, found)
}

func TestAnalyzeSolverFailure_NonConvergingIsNumericalInstability(t *testing.T) {
	s := constraint.NewSystem()
	failure := diagnostics.AnalyzeSolverFailure(numeric.Result{NonConverging: true}, s)
	assert.Equal(t, diagnostics.ReasonNumericalInstability, failure.Reason)
}

func TestAnalyzeSolverFailure_ConflictingDistanceScenario(t *testing.T) {
	s := constraint.NewSystem()
	p := mustPoint(t, "p", 0, 0)
	q := mustPoint(t, "q", 3, 4)
	require.NoError(t, s.AddEntity(p))
	require.NoError(t, s.AddEntity(q))
	require.NoError(t, s.AddConstraint(constraint.Constraint{ID: "fix", Type: constraint.TypeFix, EntityIDs: []string{"p"}}))
	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "d1", Type: constraint.TypeDistance, EntityIDs: []string{"p", "q"}, Parameters: map[string]interface{}{"value": 50.0},
	}))
	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "d2", Type: constraint.TypeDistance, EntityIDs: []string{"p", "q"}, Parameters: map[string]interface{}{"value": 75.0},
	}))

	failure := diagnostics.AnalyzeSolverFailure(numeric.Result{}, s)
	assert.Equal(t, diagnostics.ReasonConflicting, failure.Reason)
	assert.ElementsMatch(t, []string{"d1", "d2"}, failure.ProblematicConstraints)
}
