package camera

import (
	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
)

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithCameraName sets the camera's identifier.
//
// Parameters:
//   - name: the identifier
//
// Returns:
//   - CameraBuilderOption: a function that sets the name
func WithCameraName(name string) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.name = name
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = common.Vec3{x, y, z}
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithViewTarget sets the actor the camera looks after.
//
// Parameters:
//   - a: the view target
//
// Returns:
//   - CameraBuilderOption: functional option to set the view target
func WithViewTarget(a actor.Actor) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.viewTarget = a
	}
}

// WithViewPointSource sets the player view point modes are seeded from on activation.
//
// Parameters:
//   - src: the player view point
//
// Returns:
//   - CameraBuilderOption: functional option to set the view point source
func WithViewPointSource(src ViewPointSource) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.player = src
	}
}

// WithMode activates a mode once all other options have been applied.
//
// Parameters:
//   - m: the mode to activate
//
// Returns:
//   - CameraBuilderOption: functional option to set the initial mode
func WithMode(m Mode) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.initialMode = m
	}
}
