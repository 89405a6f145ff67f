package kinematic

// This package includes the plane geometry used to move ships and aim weapons.

import (
	"math"
)

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return float64(degrees * math.Pi / 180)
}

// Degrees converts an angle in radians to degrees.
func Degrees(radians float64) float64 {
	return float64(radians * 180 / math.Pi)
}

// Heading returns the unit vector pointing along rotation, measured in degrees
// counter-clockwise from the positive X axis.
func Heading(rotation float64) Vector {
	r := Radians(rotation)
	return Vector{
		X: math.Cos(r),
		Y: math.Sin(r),
	}
}
