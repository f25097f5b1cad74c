package camera

import "github.com/Carmen-Shannon/oxy-modalcam/common"

// ViewPointControllerOption is a functional option for configuring a ViewPointController.
type ViewPointControllerOption func(*viewPointControllerImpl)

// WithRadius sets the initial orbit radius (distance from the pivot).
//
// Parameters:
//   - radius: distance from the pivot
//
// Returns:
//   - ViewPointControllerOption: functional option to set the radius
func WithRadius(radius float32) ViewPointControllerOption {
	return func(vc *viewPointControllerImpl) {
		vc.radius = radius
	}
}

// WithAzimuth sets the initial horizontal angle around the Z axis.
//
// Parameters:
//   - azimuth: horizontal angle in radians (0 = +X axis)
//
// Returns:
//   - ViewPointControllerOption: functional option to set the azimuth
func WithAzimuth(azimuth float32) ViewPointControllerOption {
	return func(vc *viewPointControllerImpl) {
		vc.azimuth = azimuth
	}
}

// WithElevation sets the initial vertical angle from the ground plane.
//
// Parameters:
//   - elevation: vertical angle in radians (0 = level)
//
// Returns:
//   - ViewPointControllerOption: functional option to set the elevation
func WithElevation(elevation float32) ViewPointControllerOption {
	return func(vc *viewPointControllerImpl) {
		vc.elevation = elevation
	}
}

// WithPivot sets the point the eye orbits and looks at.
//
// Parameters:
//   - x, y, z: world-space pivot
//
// Returns:
//   - ViewPointControllerOption: functional option to set the pivot
func WithPivot(x, y, z float32) ViewPointControllerOption {
	return func(vc *viewPointControllerImpl) {
		vc.target = common.Vec3{x, y, z}
	}
}

// WithRadiusBounds sets the minimum and maximum orbit radius.
//
// Parameters:
//   - min: minimum zoom distance
//   - max: maximum zoom distance
//
// Returns:
//   - ViewPointControllerOption: functional option to set radius bounds
func WithRadiusBounds(min, max float32) ViewPointControllerOption {
	return func(vc *viewPointControllerImpl) {
		vc.minRadius = min
		vc.maxRadius = max
	}
}

// WithElevationBounds sets the minimum and maximum elevation angles.
//
// Parameters:
//   - min: minimum vertical angle in radians
//   - max: maximum vertical angle in radians
//
// Returns:
//   - ViewPointControllerOption: functional option to set elevation bounds
func WithElevationBounds(min, max float32) ViewPointControllerOption {
	return func(vc *viewPointControllerImpl) {
		vc.minElevation = min
		vc.maxElevation = max
	}
}

// WithOrbitSpeed sets the orbit step.
//
// Parameters:
//   - speed: radians per orbit call
//
// Returns:
//   - ViewPointControllerOption: functional option to set orbit speed
func WithOrbitSpeed(speed float32) ViewPointControllerOption {
	return func(vc *viewPointControllerImpl) {
		vc.orbitSpeed = speed
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: multiplier for zoom input
//
// Returns:
//   - ViewPointControllerOption: functional option to set zoom speed
func WithZoomSpeed(speed float32) ViewPointControllerOption {
	return func(vc *viewPointControllerImpl) {
		vc.zoomSpeed = speed
	}
}
