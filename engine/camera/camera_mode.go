package camera

import (
	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
)

// View is the point of view a camera mode produces each frame.
type View struct {
	Location        common.Vec3
	Rotation        common.Rotator
	ControlRotation common.Rotator
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float32
}

// Mode is a camera behaviour hosted by a Camera. Only one mode is active per camera.
// Modes are driven from a single goroutine by their host and are not safe for concurrent use.
type Mode interface {
	// Name returns the mode's identifier.
	Name() string

	// OnActivation is called by the host when the mode becomes active.
	//
	// Parameters:
	//   - player: the player's view point, may be nil
	//   - debugCameras: debug cameras currently in the world, oldest first
	OnActivation(player ViewPointSource, debugCameras ...DebugViewPoint)

	// UpdateView recomputes the view for this frame.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	UpdateView(deltaTime float32)

	// View returns the view computed by the last UpdateView.
	//
	// Returns:
	//   - View: the current view
	View() View

	// TargetActor returns the actor the mode is looking after, or nil.
	TargetActor() actor.Actor

	// SetTargetActor sets the actor the mode is looking after.
	//
	// Parameters:
	//   - a: the target actor, may be nil
	SetTargetActor(a actor.Actor)

	// DrawDebug returns diagnostic text lines for the last frame.
	//
	// Returns:
	//   - []string: one line per diagnostic entry
	DrawDebug() []string
}
