package numeric

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/arclattice/sketch2d/constraint"
	"github.com/arclattice/sketch2d/relation"
)

// plateauThreshold is the step-norm below which the Gauss-Newton loop is
// considered to have settled (converged, successfully or not) rather
// than still making progress toward the cap.
const plateauThreshold = 1e-10

// Solve runs the numeric engine against sys, per spec §4.2. It never
// mutates sys: a private snapshot is taken up front (constraint.System's
// own Clone), satisfying the Non-mutation testable property (spec §8).
// Internal state is local to this call — nothing leaks between calls.
func Solve(sys *constraint.System, cfg Config) Result {
	snapshot := sys.Clone()
	rels, warnings, _ := relation.BuildAll(snapshot)

	values, unknownIndex := initialValues(snapshot)
	rels = append(rels, suggestedValueRelations(unknownIndex, values)...)

	weights := make([]float64, len(rels))
	for i, r := range rels {
		weights[i] = cfg.weightFor(r.Strength)
	}

	warningStrings := make([]string, len(warnings))
	for i, w := range warnings {
		warningStrings[i] = fmt.Sprintf("constraint %s: %s", w.ConstraintID, w.Message)
	}

	if len(unknownIndex) == 0 {
		return finish(rels, cfg, values, 0, false, warningStrings)
	}

	lambda := 1e-3
	iterations := 0
	plateaued := false

	for iterations < cfg.MaxIterations {
		iterations++

		r, j := residualAndJacobian(rels, weights, unknownIndex, values)
		beforeNorm := normOf(r)

		delta, err := levenbergMarquardtStep(j, r, lambda)
		if err != nil {
			// Singular step: damp harder and retry rather than propagating
			// a linear-algebra error across the solver's API boundary.
			lambda *= 10
			continue
		}

		trial := applyDelta(values, unknownIndex, delta)
		trialResidual, _ := residualAndJacobian(rels, weights, unknownIndex, trial)
		afterNorm := normOf(trialResidual)

		if afterNorm < beforeNorm {
			values = trial
			lambda = math.Max(lambda/3, 1e-12)
			if vecNorm(delta) < plateauThreshold {
				plateaued = true
				break
			}
		} else {
			lambda = math.Min(lambda*4, 1e8)
		}
	}
	if !plateaued && iterations >= cfg.MaxIterations {
		return Result{
			Success:       false,
			Variables:     values,
			Error:         "iteration limit",
			Iterations:    iterations,
			NonConverging: true,
			Warnings:      warningStrings,
		}
	}

	return finish(rels, cfg, values, iterations, true, warningStrings)
}

// finish evaluates the required-strength relations at the final values
// and packages the Result per spec §4.2's success criterion.
func finish(rels []relation.Relation, cfg Config, values map[string]float64, iterations int, plateaued bool, warnings []string) Result {
	if iterations == 0 {
		iterations = 1
	}
	var firstViolation string
	for _, r := range rels {
		if r.Strength != constraint.Required {
			continue
		}
		scale := r.Scale
		if scale == 0 {
			scale = 1
		}
		if math.Abs(r.Eval(values)) > cfg.Epsilon*scale && firstViolation == "" {
			firstViolation = fmt.Sprintf("constraint %s exceeds tolerance", r.ConstraintID)
		}
	}
	if firstViolation != "" {
		return Result{
			Success:    false,
			Variables:  values,
			Error:      firstViolation,
			Iterations: iterations,
			Warnings:   warnings,
		}
	}
	return Result{
		Success:    true,
		Variables:  values,
		Iterations: iterations,
		Warnings:   warnings,
	}
}

// initialValues flattens every entity's variables into the flat global
// value map the relations operate over, and returns the sorted index of
// every free (non-Fixed) variable — the unknowns the engine may move.
// Fixed variables remain in values as constants but are never indexed.
func initialValues(sys *constraint.System) (map[string]float64, map[string]int) {
	values := make(map[string]float64)
	var free []string
	for _, e := range sys.Entities() {
		for _, name := range e.SortedVariableNames() {
			v, _ := e.Variable(name)
			gid := e.GlobalID(name)
			values[gid] = v.Value
			if !v.Fixed {
				free = append(free, gid)
			}
		}
	}
	sort.Strings(free)
	index := make(map[string]int, len(free))
	for i, gid := range free {
		index[gid] = i
	}
	return values, index
}

// suggestedValueRelations adds, for every free variable, a weak relation
// anchoring it to its current value — the "suggested value" behavior of
// spec §4.2, keeping the system well-posed when explicit constraints
// underdetermine it.
func suggestedValueRelations(unknownIndex map[string]int, values map[string]float64) []relation.Relation {
	gids := make([]string, 0, len(unknownIndex))
	for gid := range unknownIndex {
		gids = append(gids, gid)
	}
	sort.Strings(gids)

	rels := make([]relation.Relation, 0, len(gids))
	for _, gid := range gids {
		gid := gid
		initial := values[gid]
		rels = append(rels, relation.Relation{
			ConstraintID: "_suggest:" + gid,
			Strength:     constraint.Weak,
			Vars:         []string{gid},
			Eval:         func(v map[string]float64) float64 { return v[gid] - initial },
		})
	}
	return rels
}

func applyDelta(values map[string]float64, unknownIndex map[string]int, delta *mat.VecDense) map[string]float64 {
	out := make(map[string]float64, len(values))
	for k, v := range values {
		out[k] = v
	}
	for gid, idx := range unknownIndex {
		out[gid] += delta.AtVec(idx)
	}
	return out
}

func normOf(v *mat.VecDense) float64 {
	return vecNorm(v)
}

func vecNorm(v *mat.VecDense) float64 {
	sum := 0.0
	for i := 0; i < v.Len(); i++ {
		sum += v.AtVec(i) * v.AtVec(i)
	}
	return math.Sqrt(sum)
}
