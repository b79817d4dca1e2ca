package config

import (
	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/numeric"
)

// Option customizes a numeric.Config before a solve begins.
type Option func(*numeric.Config)

// WithEpsilon overrides the required-relation convergence tolerance.
// Panics if epsilon is not positive: a non-positive tolerance can never
// be satisfied and would silently turn every solve into a non-convergence.
func WithEpsilon(epsilon float64) Option {
	if epsilon <= 0 {
		panic("config: WithEpsilon(epsilon<=0)")
	}
	return func(c *numeric.Config) { c.Epsilon = epsilon }
}

// WithMaxIterations overrides the Gauss-Newton iteration cap. Panics if
// max is not positive.
func WithMaxIterations(max int) Option {
	if max <= 0 {
		panic("config: WithMaxIterations(max<=0)")
	}
	return func(c *numeric.Config) { c.MaxIterations = max }
}

// WithStrengthWeight overrides the quadratic penalty weight for one
// constraint.Strength band. Panics on a non-positive weight.
func WithStrengthWeight(strength constraint.Strength, weight float64) Option {
	if weight <= 0 {
		panic("config: WithStrengthWeight(weight<=0)")
	}
	return func(c *numeric.Config) {
		if c.Weights == nil {
			c.Weights = make(map[constraint.Strength]float64)
		}
		c.Weights[strength] = weight
	}
}

// Build returns numeric.DefaultConfig with every option applied, in order.
func Build(opts ...Option) numeric.Config {
	cfg := numeric.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
