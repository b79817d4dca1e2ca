// Package numeric is the solver's numeric engine (spec §4.2): it accepts
// a constraint.System (by way of the relations package's lowering),
// suggested values, and fixed anchors, and produces either a consistent
// variable assignment or a structured failure.
//
// Strategy: "linearize-and-suggest" (spec §4.2, option 1). Every relation
// — linear or quadratic — is linearized around the current iterate via a
// central-difference Jacobian, weighted by its constraint.Strength, and a
// Levenberg-Marquardt-damped Gauss-Newton step is solved with
// gonum.org/v1/gonum/mat until an accepted step is shorter than 1e-10 or
// the iteration cap is reached. The loop does not stop early when the
// required-strength residuals fall below epsilon; epsilon is applied only
// to the final values, to decide success. A synthetic weak "stay near
// the current value" relation is added for every free variable so the
// system remains well-posed when the explicit constraints underdetermine
// it (spec §4.2, Initial values).
//
// Determinism: relations are processed in the order relation.BuildAll
// returns them (constraint insertion order, spec §5), and free variables
// are indexed in sorted global-id order, so floating point accumulation
// order — and therefore the result — is identical across runs on
// identical inputs.
package numeric
