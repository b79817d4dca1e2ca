package serialize

// Version is the wire format version this package reads and writes.
const Version = "1.0"

// Document is the top-level v1.0 wire shape (spec §6).
type Document struct {
	Version     string       `json:"version" yaml:"version"`
	Metadata    Metadata     `json:"metadata" yaml:"metadata"`
	Entities    []Entity     `json:"entities" yaml:"entities"`
	Constraints []Constraint `json:"constraints" yaml:"constraints"`
	Parameters  []Parameter  `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Metadata is the optional provenance block.
type Metadata struct {
	CreatedAt     string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	ModifiedAt    string `json:"modified_at,omitempty" yaml:"modified_at,omitempty"`
	SolverVersion string `json:"solver_version,omitempty" yaml:"solver_version,omitempty"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Author        string `json:"author,omitempty" yaml:"author,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Entity is the wire shape of one geom.Entity.
type Entity struct {
	ID       string             `json:"id" yaml:"id"`
	Type     string             `json:"type" yaml:"type"`
	Geometry map[string]float64 `json:"geometry" yaml:"geometry"`
	Fixed    map[string]bool    `json:"fixed,omitempty" yaml:"fixed,omitempty"`
}

// Constraint is the wire shape of one constraint.Constraint.
type Constraint struct {
	ID         string                 `json:"id" yaml:"id"`
	Type       string                 `json:"type" yaml:"type"`
	EntityIDs  []string               `json:"entity_ids" yaml:"entity_ids"`
	Parameters map[string]interface{} `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Strength   string                 `json:"strength,omitempty" yaml:"strength,omitempty"`
	Suppressed bool                   `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
	IsAuto     bool                   `json:"is_auto,omitempty" yaml:"is_auto,omitempty"`
}

// Parameter is a named, unit-bearing scalar a sketch can expose to its
// constraints (spec §6); the solver itself does not consume Parameters
// directly, they are a persistence-layer convenience for driving
// constraint values from a shared pool.
type Parameter struct {
	Name        string  `json:"name" yaml:"name"`
	Value       float64 `json:"value" yaml:"value"`
	Unit        string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Expression  string  `json:"expression,omitempty" yaml:"expression,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}
