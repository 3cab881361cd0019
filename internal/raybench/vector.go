package raybench

import "github.com/chewxy/math32"

// Vec3 is a 3-component vector, used both for points/directions and for RGB colors.
type Vec3 struct {
	X, Y, Z Real
}

// Vector functions
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Mul(b Vec3) Vec3 { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vec3) Div(b Vec3) Vec3 { return Vec3{a.X / b.X, a.Y / b.Y, a.Z / b.Z} }

// Scalar on the right.
func (v Vec3) AddScalar(s Real) Vec3 { return Vec3{v.X + s, v.Y + s, v.Z + s} }
func (v Vec3) SubScalar(s Real) Vec3 { return Vec3{v.X - s, v.Y - s, v.Z - s} }
func (v Vec3) Scale(s Real) Vec3     { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) DivScalar(s Real) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// Scalar on the left.
func ScalarAdd(s Real, v Vec3) Vec3 { return Vec3{s + v.X, s + v.Y, s + v.Z} }
func ScalarSub(s Real, v Vec3) Vec3 { return Vec3{s - v.X, s - v.Y, s - v.Z} }
func ScalarMul(s Real, v Vec3) Vec3 { return Vec3{s * v.X, s * v.Y, s * v.Z} }
func ScalarDiv(s Real, v Vec3) Vec3 { return Vec3{s / v.X, s / v.Y, s / v.Z} }

// Dot returns the dot product between two vectors.
func (a Vec3) Dot(b Vec3) Real {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the Euclidean length of the vector.
func (v Vec3) Len() Real { return math32.Sqrt(v.LenSquared()) }

// LenSquared returns the squared length, for comparisons that do not need the root.
func (v Vec3) LenSquared() Real { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Unit returns v scaled to unit length.
// v must be non-zero: the zero vector gives NaN components.
func Unit(v Vec3) Vec3 {
	k := 1 / v.Len()
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}
