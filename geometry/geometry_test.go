package geometry_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mathkit/geometry"
	"github.com/stretchr/testify/assert"
)

// TestCircle_Measures verifies area and circumference.
func TestCircle_Measures(t *testing.T) {
	assert.InDelta(t, math.Pi*4, geometry.CircleArea(2), 1e-12, "π·2²")
	assert.InDelta(t, math.Pi*4, geometry.CircleCircumference(2), 1e-12, "2·π·2")
}

// TestPolygon_Measures verifies rectangle and triangle areas.
func TestPolygon_Measures(t *testing.T) {
	assert.Equal(t, 12.0, geometry.RectangleArea(3, 4), "3·4")
	assert.Equal(t, 6.0, geometry.TriangleArea(3, 4), "3·4/2")
}

// TestDistance_Pythagorean verifies the 3-4-5 triangle both through
// Distance and Hypotenuse.
func TestDistance_Pythagorean(t *testing.T) {
	assert.InDelta(t, 5.0, geometry.Distance(0, 0, 3, 4), 1e-12, "3-4-5 triangle")
	assert.InDelta(t, 5.0, geometry.Hypotenuse(3, 4), 1e-12, "legs 3 and 4")
	assert.Equal(t, 0.0, geometry.Distance(2, 2, 2, 2), "coincident points")
	assert.InDelta(t, 5.0, geometry.Distance(3, 4, 0, 0), 1e-12, "distance is symmetric")
}
