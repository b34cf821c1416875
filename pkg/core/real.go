package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is the set of scalar types the vector, matrix and shape types can be
// instantiated with. Integer types are rejected at compile time.
type Real interface {
	constraints.Float
}

// Sqrt returns the square root of x in T's precision
func Sqrt[T Real](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x
func Abs[T Real](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp returns x limited to [lo, hi]
func Clamp[T Real](x, lo, hi T) T {
	return max(lo, min(hi, x))
}
