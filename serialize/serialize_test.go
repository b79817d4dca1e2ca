package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/geom"
	"github.com/arclattice/sketch2d/serialize"
)

func buildSystem(t *testing.T) *constraint.System {
	t.Helper()
	s := constraint.NewSystem()
	p, err := geom.NewEntity("p", geom.KindPoint, 0)
	require.NoError(t, err)
	p.Variables["x"] = geom.SolverVariable{Value: 1, Fixed: true}
	p.Variables["y"] = geom.SolverVariable{Value: 2}
	require.NoError(t, s.AddEntity(p))

	q, err := geom.NewEntity("q", geom.KindPoint, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddEntity(q))

	require.NoError(t, s.AddConstraint(constraint.Constraint{
		ID: "d1", Type: constraint.TypeDistance, EntityIDs: []string{"p", "q"},
		Parameters: map[string]interface{}{"value": 5.0}, Strength: constraint.Required,
	}))
	return s
}

func TestRoundTrip_JSON(t *testing.T) {
	s := buildSystem(t)
	doc := serialize.FromSystem(s)

	raw, err := serialize.MarshalJSON(doc)
	require.NoError(t, err)

	decoded, err := serialize.UnmarshalJSON(raw)
	require.NoError(t, err)

	roundTripped, err := serialize.ToSystem(decoded)
	require.NoError(t, err)

	assert.ElementsMatch(t, keys(s.Entities()), keys(roundTripped.Entities()))
	assert.Equal(t, s.Constraints(), roundTripped.Constraints())
}

func TestRoundTrip_YAML(t *testing.T) {
	s := buildSystem(t)
	doc := serialize.FromSystem(s)

	raw, err := serialize.MarshalYAML(doc)
	require.NoError(t, err)

	decoded, err := serialize.UnmarshalYAML(raw)
	require.NoError(t, err)

	roundTripped, err := serialize.ToSystem(decoded)
	require.NoError(t, err)
	assert.ElementsMatch(t, keys(s.Entities()), keys(roundTripped.Entities()))
}

func TestValidate_RejectsMissingVersion(t *testing.T) {
	doc := &serialize.Document{Entities: []serialize.Entity{}, Constraints: []serialize.Constraint{}}
	assert.ErrorIs(t, doc.Validate(), serialize.ErrMissingVersion)
}

func TestValidate_RejectsUnknownEntityReference(t *testing.T) {
	doc := &serialize.Document{
		Version:  serialize.Version,
		Entities: []serialize.Entity{},
		Constraints: []serialize.Constraint{
			{ID: "c1", Type: "fix", EntityIDs: []string{"nonexistent"}},
		},
	}
	assert.ErrorIs(t, doc.Validate(), serialize.ErrUnknownEntityRef)
}

func TestValidate_RejectsEntityMissingFields(t *testing.T) {
	doc := &serialize.Document{
		Version:     serialize.Version,
		Entities:    []serialize.Entity{{ID: "p"}},
		Constraints: []serialize.Constraint{},
	}
	assert.ErrorIs(t, doc.Validate(), serialize.ErrEntityMissingField)
}

func keys(m map[string]*geom.Entity) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
