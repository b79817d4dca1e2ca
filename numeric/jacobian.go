package numeric

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arclattice/sketch2d/relation"
)

// finiteDiffStep is the central-difference step size used to linearize
// every relation around the current iterate. The relations package
// lowers constraints to low-degree polynomials (at most quartic, in
// buildTangent) or, for symmetric, smooth rational functions, so a
// single fixed step is accurate enough without per-relation tuning.
const finiteDiffStep = 1e-6

// residualAndJacobian evaluates every relation's weighted residual at
// values and assembles the corresponding weighted Jacobian with respect
// to the free variables in unknownIndex. Columns for variables a
// relation does not mention are left at zero (they are analytically
// zero; no finite difference is taken for them).
func residualAndJacobian(rels []relation.Relation, weights []float64, unknownIndex map[string]int, values map[string]float64) (*mat.VecDense, *mat.Dense) {
	m, n := len(rels), len(unknownIndex)
	r := mat.NewVecDense(m, nil)
	j := mat.NewDense(m, n, nil)

	for i, rel := range rels {
		w := math.Sqrt(weights[i])
		r.SetVec(i, w*rel.Eval(values))

		for _, v := range rel.Vars {
			col, ok := unknownIndex[v]
			if !ok {
				continue // fixed/anchored variable: zero column, nothing to differentiate.
			}
			orig := values[v]
			values[v] = orig + finiteDiffStep
			plus := rel.Eval(values)
			values[v] = orig - finiteDiffStep
			minus := rel.Eval(values)
			values[v] = orig

			j.Set(i, col, w*(plus-minus)/(2*finiteDiffStep))
		}
	}
	return r, j
}

// levenbergMarquardtStep solves one damped Gauss-Newton step: it finds
// delta minimizing ||J*delta + r||^2 + lambda*||delta||^2 by stacking the
// Tikhonov-damping rows onto J and solving the resulting (over)determined
// least squares system with gonum's QR-based Dense.Solve, rather than
// hand-rolling normal equations.
func levenbergMarquardtStep(j *mat.Dense, r *mat.VecDense, lambda float64) (*mat.VecDense, error) {
	m, n := j.Dims()
	augRows := m + n
	aug := mat.NewDense(augRows, n, nil)
	aug.Slice(0, m, 0, n).(*mat.Dense).Copy(j)
	for i := 0; i < n; i++ {
		aug.Set(m+i, i, math.Sqrt(lambda))
	}

	rhs := mat.NewDense(augRows, 1, nil)
	for i := 0; i < m; i++ {
		rhs.Set(i, 0, -r.AtVec(i))
	}

	var delta mat.Dense
	if err := delta.Solve(aug, rhs); err != nil {
		return nil, err
	}
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, delta.At(i, 0))
	}
	return out, nil
}
