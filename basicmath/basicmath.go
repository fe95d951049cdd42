// Package basicmath wraps elementary scalar arithmetic with explicit
// error contracts: checked division and checked roots beside the plain
// float64 operations. It has no algorithmic content of its own — it is
// a thin caller layer in front of the numeric kernels.
package basicmath

import (
	"errors"
	"math"
)

var (
	// ErrZeroDivision indicates division by a zero denominator.
	ErrZeroDivision = errors.New("basicmath: division by zero")
	// ErrDomain indicates an argument outside a function's domain,
	// e.g. a degree-zero root.
	ErrDomain = errors.New("basicmath: argument outside function domain")
)

// Add returns a + b.
func Add(a, b float64) float64 { return a + b }

// Sub returns a − b.
func Sub(a, b float64) float64 { return a - b }

// Mul returns a · b.
func Mul(a, b float64) float64 { return a * b }

// Div returns a / b, failing with ErrZeroDivision when b == 0 instead
// of producing ±Inf or NaN.
func Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrZeroDivision
	}

	return a / b, nil
}

// Abs returns |x|.
func Abs(x float64) float64 { return math.Abs(x) }

// Power returns base raised to exp, following math.Pow semantics
// (0^0 = 1, untrapped per the floating-point policy).
func Power(base, exp float64) float64 { return math.Pow(base, exp) }

// Root returns the degree-th root of x, failing with ErrDomain for
// degree 0. Negative x with even degrees yields NaN per math.Pow.
func Root(x, degree float64) (float64, error) {
	if degree == 0 {
		return 0, ErrDomain
	}

	return math.Pow(x, 1/degree), nil
}
