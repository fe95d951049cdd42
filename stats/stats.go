package stats

import (
	"math"
	"sort"
)

// Sum returns the sum of all elements; 0 for an empty input.
// Complexity: O(n) time, O(1) memory.
func Sum(xs []float64) float64 {
	var total float64
	for _, v := range xs {
		total += v
	}

	return total
}

// SumOfSquares returns Σ xs[i]²; 0 for an empty input.
// Complexity: O(n) time, O(1) memory.
func SumOfSquares(xs []float64) float64 {
	var total float64
	for _, v := range xs {
		total += v * v
	}

	return total
}

// Mean returns the arithmetic mean sum(xs)/len(xs).
// Empty input returns 0 by explicit policy, not an error.
// Complexity: O(n) time, O(1) memory.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return Sum(xs) / float64(len(xs))
}

// Median returns the middle value of the sorted sequence: the middle
// element for odd length, the average of the two middle elements for
// even length. The input is never mutated — sorting happens on a
// private copy. Empty input returns 0.
//
// Complexity: O(n log n) time, O(n) memory for the sorted copy.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	// Sort a copy; callers keep their original ordering.
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// Mode returns every value whose occurrence count equals the maximum
// count, in ascending order. Counting uses exact float64 equality.
// Multi-modal inputs return all tied values; empty input returns an
// empty slice.
//
// The frequency table is local to the call and released on return;
// ascending output order keeps the result deterministic regardless of
// map iteration order.
//
// Complexity: O(n + k log k) time where k is the number of tied
// values, O(d) memory for d distinct values.
func Mode(xs []float64) []float64 {
	modes := make([]float64, 0)
	if len(xs) == 0 {
		return modes
	}

	// Build the transient frequency table.
	freq := make(map[float64]int, len(xs))
	best := 0
	for _, v := range xs {
		freq[v]++
		if freq[v] > best {
			best = freq[v]
		}
	}

	// Collect every value holding the maximum count.
	for v, count := range freq {
		if count == best {
			modes = append(modes, v)
		}
	}
	sort.Float64s(modes)

	return modes
}

// Variance returns the population variance — the mean of squared
// deviations from Mean(xs), dividing by N (the biased estimator).
// Empty input returns 0.
// Complexity: O(n) time, O(1) memory.
func Variance(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	mean := Mean(xs)
	var devSq float64
	for _, v := range xs {
		d := v - mean
		devSq += d * d
	}

	return devSq / float64(n)
}

// StdDev returns the population standard deviation, the square root
// of Variance. Empty input returns 0; the result is always ≥ 0 and
// equals 0 exactly when all elements are equal.
// Complexity: O(n) time, O(1) memory.
func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}

// MinMax returns the smallest and largest elements as an Extremes
// pair. Empty input yields Extremes{Ok: false}, distinguishing "no
// data" from a legitimate (0, 0) result.
// Complexity: O(n) time, O(1) memory.
func MinMax(xs []float64) Extremes {
	if len(xs) == 0 {
		return Extremes{}
	}

	ex := Extremes{Min: xs[0], Max: xs[0], Ok: true}
	for _, v := range xs[1:] {
		if v < ex.Min {
			ex.Min = v
		}
		if v > ex.Max {
			ex.Max = v
		}
	}

	return ex
}
