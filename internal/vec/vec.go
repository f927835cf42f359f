// Package vec provides the 2D and 3D vector math the particle core is
// built on.
//
// Vectors are plain value types over float64 with no identity; methods
// that read like pure functions (Add, Scale, Normalized) return a new
// vector, while the small set of in-place helpers (AddScaled, Normalize,
// Clear, Invert) take pointer receivers. Normalization never divides by
// zero: below a squared-magnitude epsilon the result is the zero vector.
package vec

import "math"

// MinNormSquared is the squared-magnitude floor below which a vector is
// treated as zero for normalization. Normalizing anything shorter yields
// the zero vector rather than NaN components.
const MinNormSquared = 1e-9

// Vec2 is a two-component vector.
type Vec2 struct {
	X, Y float64
}

// V2 builds a Vec2 from its components.
func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v with every component multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Hadamard returns the componentwise product of v and o.
func (v Vec2) Hadamard(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// MagnitudeSquared returns |v|^2. Prefer this over Magnitude when only
// comparing lengths; it avoids the square root.
func (v Vec2) MagnitudeSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Magnitude returns |v|.
func (v Vec2) Magnitude() float64 { return math.Sqrt(v.MagnitudeSquared()) }

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v is shorter than the normalization floor.
func (v Vec2) Normalized() Vec2 {
	magSq := v.MagnitudeSquared()
	if magSq > MinNormSquared {
		return v.Scale(1 / math.Sqrt(magSq))
	}
	return Vec2{}
}

// Normalize scales v in place to unit length, or clears it when v is
// shorter than the normalization floor.
func (v *Vec2) Normalize() { *v = v.Normalized() }

// AddScaled performs v += o*s without an intermediate value. It is the
// inner operation of the integrator.
func (v *Vec2) AddScaled(o Vec2, s float64) {
	v.X += o.X * s
	v.Y += o.Y * s
}

// Clear zeroes every component.
func (v *Vec2) Clear() { *v = Vec2{} }

// Invert negates every component.
func (v *Vec2) Invert() {
	v.X = -v.X
	v.Y = -v.Y
}

// Vec3 is a three-component vector in world space.
type Vec3 struct {
	X, Y, Z float64
}

// V3 builds a Vec3 from its components.
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Hadamard returns the componentwise product of v and o.
func (v Vec3) Hadamard(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// MagnitudeSquared returns |v|^2. Prefer this over Magnitude when only
// comparing lengths; it avoids the square root.
func (v Vec3) MagnitudeSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Magnitude returns |v|.
func (v Vec3) Magnitude() float64 { return math.Sqrt(v.MagnitudeSquared()) }

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v is shorter than the normalization floor.
func (v Vec3) Normalized() Vec3 {
	magSq := v.MagnitudeSquared()
	if magSq > MinNormSquared {
		return v.Scale(1 / math.Sqrt(magSq))
	}
	return Vec3{}
}

// Normalize scales v in place to unit length, or clears it when v is
// shorter than the normalization floor.
func (v *Vec3) Normalize() { *v = v.Normalized() }

// AddScaled performs v += o*s without an intermediate value. It is the
// inner operation of the integrator.
func (v *Vec3) AddScaled(o Vec3, s float64) {
	v.X += o.X * s
	v.Y += o.Y * s
	v.Z += o.Z * s
}

// Clear zeroes every component.
func (v *Vec3) Clear() { *v = Vec3{} }

// Invert negates every component.
func (v *Vec3) Invert() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// IsValid reports whether every component is a finite number.
func (v Vec3) IsValid() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
