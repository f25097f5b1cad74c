package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
)

// viewPointControllerImpl is the single implementation of ViewPointController.
// It orbits an eye around a pivot using spherical coordinates and always looks at the pivot.
type viewPointControllerImpl struct {
	mu *sync.Mutex

	// Eye position (computed from target + spherical coords)
	position common.Vec3
	target   common.Vec3

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Z axis, radians
	elevation float32 // Vertical angle from ground plane, radians

	// Orbit constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed float32
	zoomSpeed  float32
}

// ViewPointController is the player's orbiting view point. A camera mode activated while the
// player looks through it takes over the controller's eye location and rotation.
type ViewPointController interface {
	ViewPointSource

	// Position returns the eye's world-space position.
	//
	// Returns:
	//   - common.Vec3: the eye position
	Position() common.Vec3

	// Target returns the pivot the eye looks at.
	//
	// Returns:
	//   - common.Vec3: the pivot
	Target() common.Vec3

	// SetTarget moves the pivot and recomputes the eye position.
	//
	// Parameters:
	//   - target: the new pivot
	SetTarget(target common.Vec3)

	// OrbitLeft rotates the eye left around the pivot by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the eye right around the pivot by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the eye upward by one orbit speed step, clamped to max elevation.
	OrbitUp()

	// OrbitDown tilts the eye downward by one orbit speed step, clamped to min elevation.
	OrbitDown()

	// Zoom adjusts the orbit radius. Positive delta moves closer.
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float32)

	// Radius returns the current distance from the pivot.
	Radius() float32
}

var _ ViewPointController = &viewPointControllerImpl{}

// NewViewPointController creates a new orbiting view point with sensible defaults.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - ViewPointController: the newly created controller
func NewViewPointController(options ...ViewPointControllerOption) ViewPointController {
	vc := &viewPointControllerImpl{
		mu: &sync.Mutex{},

		radius:    500.0,
		azimuth:   math.Pi,
		elevation: float32(math.Pi / 8),

		minRadius:    20.0,
		maxRadius:    5000.0,
		minElevation: float32(-math.Pi/2 + 0.1),
		maxElevation: float32(math.Pi/2 - 0.1),

		orbitSpeed: 0.03,
		zoomSpeed:  15.0,
	}

	for _, option := range options {
		option(vc)
	}

	vc.updatePosition()
	return vc
}

// updatePosition recomputes the eye position from spherical coordinates.
// Caller must hold the mutex.
func (vc *viewPointControllerImpl) updatePosition() {
	cosElev := float32(math.Cos(float64(vc.elevation)))
	sinElev := float32(math.Sin(float64(vc.elevation)))
	cosAzim := float32(math.Cos(float64(vc.azimuth)))
	sinAzim := float32(math.Sin(float64(vc.azimuth)))

	vc.position = common.Vec3{
		vc.target[0] + vc.radius*cosElev*cosAzim,
		vc.target[1] + vc.radius*cosElev*sinAzim,
		vc.target[2] + vc.radius*sinElev,
	}
}

func (vc *viewPointControllerImpl) ViewPoint() (common.Vec3, common.Rotator) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.position, vc.target.Sub(vc.position).Rotation()
}

func (vc *viewPointControllerImpl) Position() common.Vec3 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.position
}

func (vc *viewPointControllerImpl) Target() common.Vec3 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.target
}

func (vc *viewPointControllerImpl) SetTarget(target common.Vec3) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.target = target
	vc.updatePosition()
}

func (vc *viewPointControllerImpl) OrbitLeft() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.azimuth -= vc.orbitSpeed
	vc.updatePosition()
}

func (vc *viewPointControllerImpl) OrbitRight() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.azimuth += vc.orbitSpeed
	vc.updatePosition()
}

func (vc *viewPointControllerImpl) OrbitUp() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.elevation = min(vc.elevation+vc.orbitSpeed, vc.maxElevation)
	vc.updatePosition()
}

func (vc *viewPointControllerImpl) OrbitDown() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.elevation = max(vc.elevation-vc.orbitSpeed, vc.minElevation)
	vc.updatePosition()
}

func (vc *viewPointControllerImpl) Zoom(delta float32) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.radius = common.Clamp(vc.radius-delta*vc.zoomSpeed, vc.minRadius, vc.maxRadius)
	vc.updatePosition()
}

func (vc *viewPointControllerImpl) Radius() float32 {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.radius
}
