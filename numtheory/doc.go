// Package numtheory implements integer-domain algorithms over int64:
// primality testing, factorials, greatest common divisor and least
// common multiple, Fibonacci sequence generation, perfect-number
// testing, and divisor enumeration.
//
// ✨ Key properties:
//   - IsPrime uses the 6k±1 wheel: after screening 2 and 3, only
//     candidates of the form 6k±1 up to √n are trial-divided, so the
//     test runs in O(√n) divisions.
//   - Factorial and GCD are iterative, never recursive — call depth
//     stays constant no matter the argument.
//   - GCD is canonicalized: the result is always non-negative for any
//     sign combination of the operands, so the identity
//     GCD(a,b)·LCM(a,b) = |a·b| holds everywhere it is defined.
//   - Domain violations fail fast with named sentinels: ErrDomain for
//     arguments outside a function's mathematical domain (negative or
//     overflowing factorial), ErrZeroDivision for LCM(0, 0).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathkit/numtheory"
//
//	numtheory.IsPrime(97)        // true
//	numtheory.GCD(48, 18)        // 6
//	lcm, err := numtheory.LCM(4, 6) // 12, nil
//	fib := numtheory.Fibonacci(10)  // [0 1 1 2 3 5 8 13 21 34]
//
// All functions are pure and allocation-free except Fibonacci and
// Divisors, which allocate exactly their result slices.
package numtheory
