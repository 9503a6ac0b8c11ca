package gamemath

import "math"

// Vec3 is a 3D vector with Y up. Distances are meters, speeds m/s.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference between two vectors.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale multiplies the vector by a scalar value.
func (v Vec3) Scale(factor float64) Vec3 {
	return Vec3{v.X * factor, v.Y * factor, v.Z * factor}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns magnitude squared, cheaper for comparisons.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// HorizontalLength returns the magnitude of the XZ projection.
func (v Vec3) HorizontalLength() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction, or zero.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Distance returns the distance between two points.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// Lerp interpolates from v toward target by t in [0,1].
func (v Vec3) Lerp(target Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (target.X-v.X)*t,
		v.Y + (target.Y-v.Y)*t,
		v.Z + (target.Z-v.Z)*t,
	}
}
