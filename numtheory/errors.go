package numtheory

import "errors"

var (
	// ErrDomain indicates an argument outside a function's mathematical
	// domain, e.g. Factorial of a negative number or of an argument
	// whose result cannot be represented in int64.
	ErrDomain = errors.New("numtheory: argument outside function domain")
	// ErrZeroDivision indicates a mathematically undefined division by
	// zero, e.g. LCM(0, 0) where gcd(0, 0) = 0.
	ErrZeroDivision = errors.New("numtheory: division by zero")
)
