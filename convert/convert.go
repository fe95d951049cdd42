// Package convert provides linear unit conversions for temperature,
// length, and mass. Every function is a pure affine map; conversions
// round-trip up to floating-point precision.
package convert

// Conversion factors (exact definitions where the unit system fixes them).
const (
	kmPerMile  = 1.609344 // international mile
	lbPerKg    = 2.20462262185
	fPerCSlope = 9.0 / 5.0
	fOffset    = 32.0
)

// CelsiusToFahrenheit returns c·9/5 + 32.
func CelsiusToFahrenheit(c float64) float64 { return c*fPerCSlope + fOffset }

// FahrenheitToCelsius returns (f − 32)·5/9.
func FahrenheitToCelsius(f float64) float64 { return (f - fOffset) / fPerCSlope }

// KilometersToMiles converts kilometers to international miles.
func KilometersToMiles(km float64) float64 { return km / kmPerMile }

// MilesToKilometers converts international miles to kilometers.
func MilesToKilometers(mi float64) float64 { return mi * kmPerMile }

// KilogramsToPounds converts kilograms to avoirdupois pounds.
func KilogramsToPounds(kg float64) float64 { return kg * lbPerKg }

// PoundsToKilograms converts avoirdupois pounds to kilograms.
func PoundsToKilograms(lb float64) float64 { return lb / lbPerKg }
