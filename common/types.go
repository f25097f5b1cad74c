// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
//
// The world is Z-up: +X is forward, +Y is right and +Z is up. Angles are expressed in degrees.
package common

import "math"

// Vec3 is a point or direction in world space.
type Vec3 [3]float32

// Rotator is an orientation expressed as Euler angles in degrees.
// Pitch rotates around the right axis (positive looks up), Yaw around the up axis
// (positive turns right), Roll around the forward axis.
type Rotator struct {
	Pitch float32
	Yaw   float32
	Roll  float32
}

// X returns the first component.
func (v Vec3) X() float32 { return v[0] }

// Y returns the second component.
func (v Vec3) Y() float32 { return v[1] }

// Z returns the third component.
func (v Vec3) Z() float32 { return v[2] }

// Add returns v + o.
//
// Parameters:
//   - o: the vector to add
//
// Returns:
//   - Vec3: the component-wise sum
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
//
// Parameters:
//   - o: the vector to subtract
//
// Returns:
//   - Vec3: the component-wise difference
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v multiplied by a scalar.
//
// Parameters:
//   - s: the scale factor
//
// Returns:
//   - Vec3: the scaled vector
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// SizeSquared returns the squared length of v.
func (v Vec3) SizeSquared() float32 {
	return v.Dot(v)
}

// Size returns the length of v.
func (v Vec3) Size() float32 {
	return float32(math.Sqrt(float64(v.SizeSquared())))
}

// Dist returns the distance between v and o.
func (v Vec3) Dist(o Vec3) float32 {
	return v.Sub(o).Size()
}

// SafeNormal returns v scaled to unit length, or the zero vector when v is too small to normalize.
//
// Returns:
//   - Vec3: the normalized vector or zero
func (v Vec3) SafeNormal() Vec3 {
	sq := v.SizeSquared()
	if sq < SmallNumber {
		return Vec3{}
	}
	return v.Scale(1 / float32(math.Sqrt(float64(sq))))
}

// SafeNormal2D returns v projected onto the ground plane (Z dropped) and scaled to unit length,
// or the zero vector when the projection is too small to normalize.
//
// Returns:
//   - Vec3: the normalized ground-plane direction or zero
func (v Vec3) SafeNormal2D() Vec3 {
	return Vec3{v[0], v[1], 0}.SafeNormal()
}

// Rotation returns the orientation whose forward vector points along v. Roll is always zero.
//
// Returns:
//   - Rotator: pitch and yaw in degrees
func (v Vec3) Rotation() Rotator {
	yaw := math.Atan2(float64(v[1]), float64(v[0]))
	pitch := math.Atan2(float64(v[2]), math.Sqrt(float64(v[0]*v[0]+v[1]*v[1])))
	return Rotator{
		Pitch: float32(pitch * radToDeg),
		Yaw:   float32(yaw * radToDeg),
	}
}

// Vector returns the unit forward vector for the rotator. Roll does not affect it.
//
// Returns:
//   - Vec3: the forward direction
func (r Rotator) Vector() Vec3 {
	sp, cp := math.Sincos(float64(r.Pitch) * degToRad)
	sy, cy := math.Sincos(float64(r.Yaw) * degToRad)
	return Vec3{float32(cp * cy), float32(cp * sy), float32(sp)}
}

// Axes returns the forward, right and up unit axes of the rotation matrix built from r.
//
// Returns:
//   - forward, right, up: orthonormal basis vectors in world space
func (r Rotator) Axes() (forward, right, up Vec3) {
	sp, cp := math.Sincos(float64(r.Pitch) * degToRad)
	sy, cy := math.Sincos(float64(r.Yaw) * degToRad)
	sr, cr := math.Sincos(float64(r.Roll) * degToRad)

	forward = Vec3{float32(cp * cy), float32(cp * sy), float32(sp)}
	right = Vec3{
		float32(sr*sp*cy - cr*sy),
		float32(sr*sp*sy + cr*cy),
		float32(-sr * cp),
	}
	up = Vec3{
		float32(-(cr*sp*cy + sr*sy)),
		float32(cy*sr - cr*sp*sy),
		float32(cr * cp),
	}
	return forward, right, up
}
