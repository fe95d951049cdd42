// Package mathkit is a small, self-contained toolbox of numeric
// primitives — statistics over sequences, integer number theory, and
// dense matrix algebra — with a few thin helper domains on top.
//
// 🚀 What is mathkit?
//
//	A pure-Go, zero-dependency library that brings together:
//		• Statistics: mean, median, mode, population std-dev, min/max, sums
//		• Number theory: primality (6k±1 wheel), factorial, GCD/LCM,
//		  Fibonacci, perfect numbers, divisor enumeration
//		• Matrix algebra: dense construction, Add/Sub/Mul, Transpose,
//		  2×2 determinant
//		• Helpers: basic arithmetic, plane geometry, unit conversion
//
// ✨ Why choose mathkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every function is pure, inputs are never
//     mutated, every error is a named sentinel matched via errors.Is
//   - Pure Go – no cgo, no hidden deps, safe for concurrent use without
//     locks (provided callers do not mutate inputs mid-call)
//   - Predictable – deterministic results for a fixed input, explicit
//     empty-input and degenerate-shape policies on every operation
//
// Everything is organized under six subpackages:
//
//	stats/     — aggregate measures over []float64 sequences
//	numtheory/ — integer-domain algorithms over int64
//	matrix/    — row-major dense matrices + linear algebra kernels
//	basicmath/ — scalar arithmetic wrappers (checked division, roots)
//	geometry/  — closed-form plane formulas, distance via sum-of-squares
//	convert/   — linear unit conversions (temperature, length, mass)
//
// Quick taste:
//
//	xs := []float64{1, 2, 2, 3, 4, 4, 4, 5}
//	stats.Median(xs) // 3.5
//	stats.Mode(xs)   // [4]
//
// Dive into each package's doc.go and example_test.go for full
// walkthroughs of the error contracts and edge cases.
//
//	go get github.com/katalvlaran/mathkit
package mathkit
