package common

// Coalesce returns the first non-zero argument, or the zero value of T.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Lerp interpolates from a toward b. Alpha is not clamped.
//
// Parameters:
//   - a: the value at alpha 0
//   - b: the value at alpha 1
//   - alpha: interpolation weight
//
// Returns:
//   - Vec3: a + (b - a) * alpha
func Lerp(a, b Vec3, alpha float32) Vec3 {
	return a.Add(b.Sub(a).Scale(alpha))
}
