// Package geometry provides closed-form plane formulas: circle,
// rectangle and triangle measures, the hypotenuse, and Euclidean
// distance. Distance is deliberately expressed through the statistics
// kernel's sum-of-squares primitive rather than a private loop.
package geometry

import (
	"math"

	"github.com/katalvlaran/mathkit/stats"
)

// CircleArea returns π·r².
func CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}

// CircleCircumference returns 2·π·r.
func CircleCircumference(radius float64) float64 {
	return 2 * math.Pi * radius
}

// RectangleArea returns width · height.
func RectangleArea(width, height float64) float64 {
	return width * height
}

// TriangleArea returns base · height / 2.
func TriangleArea(base, height float64) float64 {
	return base * height / 2
}

// Hypotenuse returns the length of the hypotenuse of a right triangle
// with legs a and b.
func Hypotenuse(a, b float64) float64 {
	return math.Sqrt(stats.SumOfSquares([]float64{a, b}))
}

// Distance returns the Euclidean distance between (x1, y1) and
// (x2, y2), computed as √(Σ Δ²) over the two-element delta sequence —
// the sum-of-squares primitive applied as a special case.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(stats.SumOfSquares([]float64{x2 - x1, y2 - y1}))
}
