package quadratic

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// coefRange bounds generated coefficients. The absolute tolerance policy is
// documented as fragile for very large magnitudes, so properties are checked
// over a range where the classification is numerically meaningful.
const coefRange = 1e6

// genCoef generates a coefficient within the tested magnitude range.
func genCoef() gopter.Gen {
	return gen.Float64Range(-coefRange, coefRange)
}

// genNonzeroCoef generates a coefficient bounded away from the tolerance
// threshold, so the generated equation keeps its intended degree.
func genNonzeroCoef() gopter.Gen {
	return gen.OneGenOf(
		gen.Float64Range(1e-3, coefRange),
		gen.Float64Range(-coefRange, -1e-3),
	)
}

// TestSolveLinear_PropertyBased verifies that for any slope bounded away
// from zero, the unique root is -c/b and it satisfies the equation.
func TestSolveLinear_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("nonzero slope yields the single root -c/b", prop.ForAll(
		func(b, c float64) bool {
			r := SolveLinear(b, c)
			if r.Kind() != KindOne {
				return false
			}
			x, ok := r.First()
			return ok && x == -c/b
		},
		genNonzeroCoef(),
		genCoef(),
	))

	properties.Property("linear root satisfies b·x + c ≈ 0", prop.ForAll(
		func(b, c float64) bool {
			x, ok := SolveLinear(b, c).First()
			if !ok {
				return false
			}
			// Residual scaled by the coefficient magnitude involved.
			tolerance := 1e-9 * math.Max(1, math.Max(math.Abs(b), math.Abs(c)))
			return math.Abs(b*x+c) <= tolerance
		},
		genNonzeroCoef(),
		genCoef(),
	))

	properties.TestingRun(t)
}

// TestSolve_DelegationProperty verifies that a negligible leading coefficient
// makes Solve behave exactly like SolveLinear, shape and values included.
func TestSolve_DelegationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Solve(0, b, c) ≡ SolveLinear(b, c)", prop.ForAll(
		func(b, c float64) bool {
			return Solve(0, b, c) == SolveLinear(b, c)
		},
		genCoef(),
		genCoef(),
	))

	properties.TestingRun(t)
}

// TestSolve_ClassificationProperty verifies that for a genuine quadratic the
// outcome shape matches the sign of the discriminant, and that two-root
// outcomes are distinct and ordered.
func TestSolve_ClassificationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 400
	properties := gopter.NewProperties(parameters)

	properties.Property("outcome shape follows the discriminant sign", prop.ForAll(
		func(a, b, c float64) bool {
			d := b*b - 4*a*c
			r := Solve(a, b, c)
			switch {
			case d < 0 && !IsNegligible(d):
				return r.Kind() == KindNone
			case IsNegligible(d):
				return r.Kind() == KindOne
			default:
				return r.Kind() == KindTwo
			}
		},
		genNonzeroCoef(),
		genCoef(),
		genCoef(),
	))

	properties.Property("two-root outcomes are distinct and ordered", prop.ForAll(
		func(a, b, c float64) bool {
			r := Solve(a, b, c)
			if r.Kind() != KindTwo {
				return true
			}
			x1, _ := r.First()
			x2, _ := r.Second()
			return x1 < x2
		},
		genNonzeroCoef(),
		genCoef(),
		genCoef(),
	))

	properties.TestingRun(t)
}

// TestSolve_ResidualProperty verifies the round-trip: substituting any
// reported root back into the polynomial yields a value near zero.
func TestSolve_ResidualProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 400
	properties := gopter.NewProperties(parameters)

	properties.Property("reported roots satisfy the equation", prop.ForAll(
		func(a, b, c float64) bool {
			r := Solve(a, b, c)

			x1, ok := r.First()
			if !ok {
				return true // no roots to substitute
			}

			// The rounding error of the quadratic formula is on the
			// order of ulps of the discriminant terms, so the residual
			// bound scales with b² and |4ac|.
			tolerance := 1e-9 * math.Max(1, math.Max(b*b, math.Abs(4*a*c)))

			if math.Abs(Evaluate(a, b, c, x1)) > tolerance {
				return false
			}
			if x2, ok := r.Second(); ok {
				return math.Abs(Evaluate(a, b, c, x2)) <= tolerance
			}
			return true
		},
		genNonzeroCoef(),
		genCoef(),
		genCoef(),
	))

	properties.TestingRun(t)
}
