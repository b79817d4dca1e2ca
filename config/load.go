package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/numeric"
)

// engineFile is the on-disk YAML shape for engine tuning, decoded
// separately from numeric.Config so the file format can stay
// human-friendly (plain string strength names) while the typed config
// keeps constraint.Strength keys.
type engineFile struct {
	Epsilon       float64            `yaml:"epsilon"`
	MaxIterations int                `yaml:"max_iterations"`
	Weights       map[string]float64 `yaml:"weights"`
}

// LoadYAML reads an engine tuning file from path and returns the
// resulting numeric.Config, starting from DefaultConfig and overlaying
// only the fields the file sets. A zero or missing epsilon/max_iterations
// leaves the default in place rather than zeroing it out.
func LoadYAML(path string) (numeric.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return numeric.Config{}, fmt.Errorf("config: LoadYAML: %w", err)
	}

	var file engineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return numeric.Config{}, fmt.Errorf("config: LoadYAML: yaml: %w", err)
	}

	cfg := numeric.DefaultConfig()
	if file.Epsilon > 0 {
		cfg.Epsilon = file.Epsilon
	}
	if file.MaxIterations > 0 {
		cfg.MaxIterations = file.MaxIterations
	}
	for name, weight := range file.Weights {
		cfg.Weights[constraint.Strength(name)] = weight
	}
	return cfg, nil
}
