// Package stats computes aggregate measures over finite sequences of
// float64 values: mean, median, mode, population standard deviation,
// minimum/maximum, and square/plain sums.
//
// ✨ Key properties:
//   - Inputs are never mutated — Median sorts a private copy.
//   - Empty-input policy is explicit on every function: reductions
//     (Mean, Median, StdDev, Sum, SumOfSquares, Variance) return 0,
//     Mode returns an empty slice, and MinMax returns Extremes with
//     Ok=false so "no data" is never confused with a numeric zero.
//   - Results are deterministic for a fixed input: Mode returns tied
//     values in ascending order, never in map-iteration order.
//   - StdDev and Variance are the population (N-divisor) estimators,
//     not the sample (N−1) estimators.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathkit/stats"
//
//	xs := []float64{1, 2, 2, 3, 4, 4, 4, 5}
//	m := stats.Mean(xs)      // 3.125
//	md := stats.Median(xs)   // 3.5
//	mo := stats.Mode(xs)     // [4]
//	sd := stats.StdDev(xs)   // population std-dev
//	ex := stats.MinMax(xs)   // Extremes{Min:1, Max:5, Ok:true}
//
// Performance: every function is a single pass over the input except
// Median (O(n log n) sort of a copy) and Mode (one pass + sort of the
// winning keys). No function allocates more than its result.
package stats
