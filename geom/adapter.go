package geom

// RawGeometry carries the per-kind scalar inputs from a persistence or UI
// layer (spec §6, create_entity_geometry). Keys are local variable names
// (e.g. "start_x", "radius"); any key outside the kind's closed table is
// rejected.
type RawGeometry map[string]float64

// CreateEntityGeometry populates a new Entity's variable map from a
// persistence-layer shape. Variables present in raw are set from it (and
// marked fixed only if the caller also lists them in fixed); every other
// variable in the kind's table is initialized to zero. controlPoints is
// only consulted for KindSpline. Returns ErrUnknownVariable if raw
// contains a key outside the kind's table.
func CreateEntityGeometry(entityID string, kind Kind, raw RawGeometry, fixed map[string]bool, controlPoints int) (*Entity, error) {
	e, err := NewEntity(entityID, kind, controlPoints)
	if err != nil {
		return nil, err
	}
	for name, value := range raw {
		if _, ok := e.Variables[name]; !ok {
			return nil, ErrUnknownVariable
		}
		e.Variables[name] = SolverVariable{Value: value, Fixed: fixed[name]}
	}
	return e, nil
}

// UpdateEntityGeometry writes solved values from results back onto a copy
// of entity. Keys in results are global ids ("{EntityId}_{localName}");
// any local variable whose global id is missing from results passes
// through untouched, per spec §4.4 (no error paths, missing values leave
// the field unchanged).
func UpdateEntityGeometry(entity *Entity, results map[string]float64) *Entity {
	updated := entity.Clone()
	for name, variable := range updated.Variables {
		if v, ok := results[updated.GlobalID(name)]; ok {
			variable.Value = v
			updated.Variables[name] = variable
		}
	}
	return updated
}

// CalculateDOF returns the entity's kind-clamped free-variable count: the
// number of variables not marked Fixed. A fix constraint is not consulted
// here — it is a derived property applied by the caller (spec §3
// invariants); CalculateDOF only reports the entity's own variable flags.
func CalculateDOF(entity *Entity) int {
	dof := 0
	for _, v := range entity.Variables {
		if !v.Fixed {
			dof++
		}
	}
	return dof
}
