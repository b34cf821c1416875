// Package roots finds the real roots of quadratic, cubic and quartic
// polynomials. Complex roots are dropped. Every solver returns its roots in
// ascending order and never panics; an empty result means no real roots.
//
// The cubic and quartic solvers follow Schwarze's closed-form method from
// Graphics Gems I. The tolerances below decide the degenerate branches and
// are part of the observable behavior.
package roots

import (
	"math"
	"slices"

	"github.com/df07/go-shapemath/pkg/core"
)

const (
	// ZeroEpsilon is the algebraic zero test used by the cubic discriminant
	// and the quartic's u/v square roots
	ZeroEpsilon = 1e-9

	// NearZeroEpsilon is the "nearly zero" test for the quadratic
	// discriminant and the quartic's p, q and r terms
	NearZeroEpsilon = 1e-5
)

func isZero[T core.Real](x T) bool {
	return x > -ZeroEpsilon && x < ZeroEpsilon
}

func isNearZero[T core.Real](x T) bool {
	return x > -NearZeroEpsilon && x < NearZeroEpsilon
}

// SolveQuadric returns the real roots of c2*x² + c1*x + c0 = 0.
// The result is undefined when c2 is zero.
func SolveQuadric[T core.Real](c2, c1, c0 T) []T {
	// Normal form x² + 2px + q = 0
	p := c1 / (2 * c2)
	q := c0 / c2
	d := p*p - q

	switch {
	case isNearZero(d):
		return []T{-p}
	case d < 0:
		return nil
	default:
		sqrtD := core.Sqrt(d)
		return []T{-sqrtD - p, sqrtD - p}
	}
}

// SolveCubic returns the real roots of c3*x³ + c2*x² + c1*x + c0 = 0.
// The result is undefined when c3 is zero.
func SolveCubic[T core.Real](c3, c2, c1, c0 T) []T {
	// Normal form x³ + Ax² + Bx + C = 0
	a := c2 / c3
	b := c1 / c3
	c := c0 / c3

	// Substitute x = y - A/3 to eliminate the quadric term: y³ + 3py + 2q = 0
	sqA := a * a
	p := (-sqA/3 + b) / 3
	q := (2.0/27*a*sqA - a*b/3 + c) / 2

	cbP := p * p * p
	d := q*q + cbP

	var s []T
	switch {
	case isZero(d):
		if isZero(q) {
			// One triple solution
			s = []T{0}
		} else {
			// One single and one double solution
			u := T(math.Cbrt(float64(-q)))
			s = []T{2 * u, -u}
		}
	case d < 0:
		// Casus irreducibilis: three real solutions
		cosArg := core.Clamp(-q/core.Sqrt(-cbP), -1, 1)
		phi := math.Acos(float64(cosArg)) / 3
		t := 2 * math.Sqrt(float64(-p))
		s = []T{
			T(t * math.Cos(phi)),
			T(-t * math.Cos(phi+math.Pi/3)),
			T(-t * math.Cos(phi-math.Pi/3)),
		}
	default:
		// One real solution
		sqrtD := math.Sqrt(float64(d))
		u := math.Cbrt(sqrtD - float64(q))
		v := -math.Cbrt(sqrtD + float64(q))
		s = []T{T(u + v)}
	}

	sub := a / 3
	for i := range s {
		s[i] -= sub
	}
	slices.Sort(s)
	return s
}

// SolveQuartic returns the real roots of
// c4*x⁴ + c3*x³ + c2*x² + c1*x + c0 = 0.
// The result is undefined when c4 is zero.
//
// When the resolvent cubic's first root makes u or v the square root of a
// negative number the solver reports no roots, which can under-report roots
// for some near-degenerate inputs.
func SolveQuartic[T core.Real](c4, c3, c2, c1, c0 T) []T {
	// Normal form x⁴ + Ax³ + Bx² + Cx + D = 0
	a := c3 / c4
	b := c2 / c4
	c := c1 / c4
	d := c0 / c4

	// Substitute x = y - A/4 to eliminate the cubic term: y⁴ + py² + qy + r = 0
	sqA := a * a
	p := -3.0/8*sqA + b
	q := sqA*a/8 - a*b/2 + c
	r := -3.0/256*sqA*sqA + sqA*b/16 - a*c/4 + d

	var s []T
	if isNearZero(r) {
		s = solveDepressedWithoutConstant(p, q)
	} else {
		s = solveDepressedQuartic(p, q, r)
	}

	sub := a / 4
	for i := range s {
		s[i] -= sub
	}
	return s
}

// solveDepressedWithoutConstant solves y(y³ + py + q) = 0
func solveDepressedWithoutConstant[T core.Real](p, q T) []T {
	switch {
	case isNearZero(q) && isNearZero(p):
		// y⁴ = 0
		return []T{0}
	case isNearZero(q):
		// y²(y² + p) = 0
		return mergeSorted([]T{0}, SolveQuadric(1, 0, p))
	default:
		return mergeSorted([]T{0}, SolveCubic(1, 0, p, q))
	}
}

// solveDepressedQuartic solves y⁴ + py² + qy + r = 0 through its resolvent
// cubic, returning nil when the factorization needs a complex square root
func solveDepressedQuartic[T core.Real](p, q, r T) []T {
	resolvent := SolveCubic(1, -p/2, -r, r*p/2-q*q/8)
	if len(resolvent) == 0 {
		return nil
	}
	z := resolvent[0]

	u, ok := realSqrt(z*z - r)
	if !ok {
		return nil
	}
	v, ok := realSqrt(2*z - p)
	if !ok {
		return nil
	}

	first := SolveQuadric(1, signedBy(v, q), z-u)
	second := SolveQuadric(1, -signedBy(v, q), z+u)
	return mergeSorted(first, second)
}

// realSqrt returns sqrt(x), snapping values within ZeroEpsilon of zero to
// zero and failing for anything more negative
func realSqrt[T core.Real](x T) (T, bool) {
	switch {
	case isZero(x):
		return 0, true
	case x > 0:
		return core.Sqrt(x), true
	default:
		return 0, false
	}
}

// signedBy returns -v when q is negative and v otherwise
func signedBy[T core.Real](v, q T) T {
	if q < 0 {
		return -v
	}
	return v
}

// mergeSorted merges two ascending slices into a new ascending slice
func mergeSorted[T core.Real](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
