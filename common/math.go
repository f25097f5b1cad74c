package common

import (
	"math"
)

const (
	// SmallNumber is the squared-length threshold below which a vector cannot be normalized.
	SmallNumber = 1e-8

	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order.
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix with clip space depth in [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: point the camera looks at
//   - up: up vector defining camera orientation (0,0,1 in this engine)
func LookAt(out []float32, eye, center, up Vec3) {
	z := eye.Sub(center)
	if z.SizeSquared() == 0 {
		z = Vec3{1, 0, 0}
	}
	z = z.SafeNormal()

	x := up.Cross(z)
	if x.SizeSquared() == 0 {
		// looking straight along the up vector; any perpendicular axis will do
		x = Vec3{0, 1, 0}.Cross(z)
	}
	x = x.SafeNormal()
	y := z.Cross(x)

	out[0], out[4], out[8], out[12] = x[0], x[1], x[2], -x.Dot(eye)
	out[1], out[5], out[9], out[13] = y[0], y[1], y[2], -y.Dot(eye)
	out[2], out[6], out[10], out[14] = z[0], z[1], z[2], -z.Dot(eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// ClosestPointOnLine projects a point onto an infinite line.
//
// Parameters:
//   - point: the point to project
//   - direction: the line direction (need not be normalized)
//   - origin: any point on the line
//
// Returns:
//   - Vec3: the closest point on the line, or origin when direction is zero
//   - float32: the distance from point to the line
func ClosestPointOnLine(point, direction, origin Vec3) (Vec3, float32) {
	lenSq := direction.SizeSquared()
	if lenSq == 0 {
		return origin, point.Dist(origin)
	}
	t := point.Sub(origin).Dot(direction) / lenSq
	closest := origin.Add(direction.Scale(t))
	return closest, point.Dist(closest)
}

// Clamp restricts x to [lo, hi]. When lo > hi the lower bound wins for values below it
// and the upper bound wins otherwise.
//
// Parameters:
//   - x: the value to clamp
//   - lo: the lower bound
//   - hi: the upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x < hi {
		return x
	}
	return hi
}

// ClampAxis wraps an angle in degrees into [0, 360).
func ClampAxis(angle float32) float32 {
	angle = float32(math.Mod(float64(angle), 360))
	if angle < 0 {
		angle += 360
	}
	return angle
}

// NormalizeAxis wraps an angle in degrees into (-180, 180].
func NormalizeAxis(angle float32) float32 {
	angle = ClampAxis(angle)
	if angle > 180 {
		angle -= 360
	}
	return angle
}

// ClampAngle clamps an angle in degrees to the arc running from lo to hi.
// Angles outside the arc snap to whichever end is closer.
//
// Parameters:
//   - angle: the angle to clamp
//   - lo: the arc start in degrees
//   - hi: the arc end in degrees
//
// Returns:
//   - float32: the clamped angle normalized to (-180, 180]
func ClampAngle(angle, lo, hi float32) float32 {
	maxDelta := ClampAxis(hi-lo) * 0.5
	center := ClampAxis(lo + maxDelta)
	delta := NormalizeAxis(angle - center)

	if delta > maxDelta {
		return NormalizeAxis(center + maxDelta)
	} else if delta < -maxDelta {
		return NormalizeAxis(center - maxDelta)
	}
	return NormalizeAxis(angle)
}
