// Package stats defines the result types shared by the aggregate
// functions. Implementation lives in stats.go.
package stats

// Extremes is the result of MinMax.
//
// Fields:
//   - Min — smallest observed value (undefined when Ok is false).
//   - Max — largest observed value (undefined when Ok is false).
//   - Ok  — true when the input held at least one element.
//
// The Ok flag is the "no data" sentinel demanded for empty inputs:
// a caller must check it before trusting Min/Max, because (0, 0) is a
// perfectly legitimate pair for non-empty data.
//
// Example:
//
//	ex := stats.MinMax(xs)
//	if !ex.Ok {
//	  // empty input — no extremes exist
//	}
type Extremes struct {
	Min float64
	Max float64
	Ok  bool
}
