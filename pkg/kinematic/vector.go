package kinematic

import "math"

// Vector is a point or displacement in the arena plane.
//
// Products are wrapped in explicit float64 conversions, which forbids the
// compiler from fusing them into FMA instructions. Results must be bit
// identical on every architecture.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SqrMagnitude returns the squared length of the vector.
func (v Vector) SqrMagnitude() float64 {
	return float64(v.X*v.X) + float64(v.Y*v.Y)
}

// Magnitude returns the length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return float64(v.X*other.X) + float64(v.Y*other.Y)
}

// AngleBetween returns the unsigned angle between two vectors in radians,
// in the range [0, π]. It returns 0 if either vector has zero length.
func (v Vector) AngleBetween(other Vector) float64 {
	magnitudes := float64(v.Magnitude() * other.Magnitude())
	if magnitudes == 0 {
		return 0
	}

	cos := v.Dot(other) / magnitudes
	// rounding can push the ratio just outside [-1, 1] for parallel vectors
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Subtract returns v minus other.
func (v Vector) Subtract(other Vector) Vector {
	return Vector{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale returns the vector multiplied by f.
func (v Vector) Scale(f float64) Vector {
	return Vector{
		X: float64(v.X * f),
		Y: float64(v.Y * f),
	}
}

// Rotate returns the vector rotated counter-clockwise by degrees.
func (v Vector) Rotate(degrees float64) Vector {
	r := Radians(degrees)
	cos, sin := math.Cos(r), math.Sin(r)
	return Vector{
		X: float64(v.X*cos) - float64(v.Y*sin),
		Y: float64(v.X*sin) + float64(v.Y*cos),
	}
}
