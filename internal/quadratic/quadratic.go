// Package quadratic implements root finding for real quadratic equations
// a·x² + b·x + c = 0, including the degenerate linear (a ≈ 0) and identity
// (a ≈ b ≈ 0) forms.
//
// All classification is performed against [Epsilon], an absolute tolerance
// equal to the machine epsilon of float64. An absolute threshold is
// deliberately simple and mirrors the reference behavior; it can misclassify
// results for coefficients of very large magnitude, where the rounding error
// in the discriminant exceeds the fixed threshold. Callers needing a relative
// tolerance should normalize coefficients before solving.
//
// Every function in this package is pure and safe for concurrent use.
package quadratic

import "math"

// Epsilon is the absolute tolerance below which a value is treated as zero.
// It is the machine epsilon for float64 (2⁻⁵², the smallest representable
// difference from 1.0).
const Epsilon = 0x1p-52

// Coefficients are the three real coefficients of a·x² + b·x + c = 0.
// They are immutable once built; the input layer guarantees all three are
// finite before a Coefficients value reaches this package.
type Coefficients struct {
	A float64
	B float64
	C float64
}

// Solve finds the real roots of the equation described by the coefficients.
// See [Solve] for the classification rules.
func (co Coefficients) Solve() Roots {
	return Solve(co.A, co.B, co.C)
}

// Evaluate computes the polynomial value at x.
func (co Coefficients) Evaluate(x float64) float64 {
	return Evaluate(co.A, co.B, co.C, x)
}

// Kind identifies the shape of a solve outcome.
type Kind int

const (
	// KindNone means the equation has no real roots.
	KindNone Kind = iota
	// KindOne means the equation has exactly one real root. This covers
	// both a repeated quadratic root and the unique root of a linear
	// equation; the root count does not reveal the polynomial degree.
	KindOne
	// KindTwo means the equation has two distinct real roots.
	KindTwo
	// KindInfinite means every real number satisfies the equation.
	KindInfinite
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "no roots"
	case KindOne:
		return "one root"
	case KindTwo:
		return "two roots"
	case KindInfinite:
		return "infinite roots"
	default:
		return "unknown"
	}
}

// Roots is the outcome of a solve: a tagged variant over the four possible
// shapes. The zero value is the "no roots" outcome. Roots carrying fewer
// values than requested cannot be misread: the accessors report presence
// explicitly.
type Roots struct {
	kind Kind
	x1   float64
	x2   float64
}

// NoRoots returns the outcome for an equation with no real solution.
func NoRoots() Roots { return Roots{kind: KindNone} }

// OneRoot returns the outcome for an equation with the single root x.
func OneRoot(x float64) Roots { return Roots{kind: KindOne, x1: x} }

// TwoRoots returns the outcome for an equation with two distinct roots.
// The pair is normalized so that First reports the smaller value.
func TwoRoots(x1, x2 float64) Roots {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return Roots{kind: KindTwo, x1: x1, x2: x2}
}

// InfiniteRoots returns the outcome for an identity equation satisfied by
// every real number.
func InfiniteRoots() Roots { return Roots{kind: KindInfinite} }

// Kind reports the shape of the outcome.
func (r Roots) Kind() Kind { return r.kind }

// First returns the smallest root and true when the outcome carries at least
// one root, i.e. for the one-root and two-root shapes.
func (r Roots) First() (float64, bool) {
	if r.kind == KindOne || r.kind == KindTwo {
		return r.x1, true
	}
	return 0, false
}

// Second returns the larger root and true only for the two-root shape.
func (r Roots) Second() (float64, bool) {
	if r.kind == KindTwo {
		return r.x2, true
	}
	return 0, false
}

// IsNegligible reports whether v is treated as zero under the package
// tolerance policy.
func IsNegligible(v float64) bool {
	return math.Abs(v) < Epsilon
}

// SolveLinear finds the roots of the linear equation b·x + c = 0.
//
// When |b| exceeds the tolerance the unique root is -c/b. Otherwise the
// equation degenerates: c ≈ 0 yields the identity 0 = 0 with infinitely many
// roots, any other c yields a contradiction with none. Division is only
// performed once the divisor is verified non-negligible, so the function is
// total over finite inputs.
func SolveLinear(b, c float64) Roots {
	if IsNegligible(b) {
		if IsNegligible(c) {
			return InfiniteRoots()
		}
		return NoRoots()
	}
	return OneRoot(-c / b)
}

// Solve finds the real roots of the quadratic equation a·x² + b·x + c = 0.
//
// A negligible leading coefficient delegates entirely to [SolveLinear], and
// the result propagates unchanged. Otherwise the discriminant d = b² − 4ac
// decides the shape: negative beyond the tolerance means no real roots, a
// negligible d means the single repeated root -b/(2a), and a positive d
// yields two distinct roots (-b ∓ √d)/(2a) reported smaller-first.
func Solve(a, b, c float64) Roots {
	if IsNegligible(a) {
		return SolveLinear(b, c)
	}

	d := b*b - 4*a*c
	switch {
	case d < 0 && !IsNegligible(d):
		return NoRoots()
	case IsNegligible(d):
		return OneRoot(-b / (2 * a))
	default:
		sqrtD := math.Sqrt(d)
		return TwoRoots((-b-sqrtD)/(2*a), (-b+sqrtD)/(2*a))
	}
}

// Evaluate computes a·x² + b·x + c. It is the residual check used to verify
// that a reported root actually satisfies the equation.
func Evaluate(a, b, c, x float64) float64 {
	return a*x*x + b*x + c
}
