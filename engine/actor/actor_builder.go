package actor

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/google/uuid"
)

// ActorBuilderOption is a functional option for configuring an Actor during construction.
type ActorBuilderOption func(*actorImpl)

// WithID sets the ID of the Actor instead of generating a random one.
//
// Parameters:
//   - id: unique identifier for the Actor
//
// Returns:
//   - ActorBuilderOption: functional option to set the ID
func WithID(id uuid.UUID) ActorBuilderOption {
	return func(a *actorImpl) {
		a.id = id
	}
}

// WithName sets the display name of the Actor.
//
// Parameters:
//   - name: the display name
//
// Returns:
//   - ActorBuilderOption: functional option to set the name
func WithName(name string) ActorBuilderOption {
	return func(a *actorImpl) {
		a.name = name
	}
}

// WithKind sets the collision classification of the Actor.
//
// Parameters:
//   - kind: KindSolid or KindCameraBlockingVolume
//
// Returns:
//   - ActorBuilderOption: functional option to set the kind
func WithKind(kind Kind) ActorBuilderOption {
	return func(a *actorImpl) {
		a.kind = kind
	}
}

// WithLocation sets the initial world-space location.
//
// Parameters:
//   - x, y, z: location components
//
// Returns:
//   - ActorBuilderOption: functional option to set the location
func WithLocation(x, y, z float32) ActorBuilderOption {
	return func(a *actorImpl) {
		a.location = common.Vec3{x, y, z}
	}
}

// WithRotation sets the initial orientation in degrees.
//
// Parameters:
//   - pitch, yaw, roll: rotation angles in degrees
//
// Returns:
//   - ActorBuilderOption: functional option to set the rotation
func WithRotation(pitch, yaw, roll float32) ActorBuilderOption {
	return func(a *actorImpl) {
		a.rotation = common.Rotator{Pitch: pitch, Yaw: yaw, Roll: roll}
	}
}

// WithBoxCollider gives the Actor an axis-aligned collision box centered on its location.
//
// Parameters:
//   - hx, hy, hz: half extents along X, Y and Z
//
// Returns:
//   - ActorBuilderOption: functional option to set the collider
func WithBoxCollider(hx, hy, hz float32) ActorBuilderOption {
	return func(a *actorImpl) {
		a.collider = &Collider{HalfExtents: common.Vec3{hx, hy, hz}}
	}
}

// WithTags attaches classification tags, e.g. TagIgnoreCameraCollision.
//
// Parameters:
//   - tags: the tags to attach
//
// Returns:
//   - ActorBuilderOption: functional option to add tags
func WithTags(tags ...string) ActorBuilderOption {
	return func(a *actorImpl) {
		for _, t := range tags {
			if !slices.Contains(a.tags, t) {
				a.tags = append(a.tags, t)
			}
		}
	}
}

// WithChannelResponse overrides whether queries on a channel collide with the Actor.
//
// Parameters:
//   - ch: the collision channel
//   - block: true to block, false to ignore
//
// Returns:
//   - ActorBuilderOption: functional option to set the response
func WithChannelResponse(ch Channel, block bool) ActorBuilderOption {
	return func(a *actorImpl) {
		a.responses[ch] = block
	}
}

// WithController possesses the Actor, making it a pawn.
//
// Parameters:
//   - c: the possessing controller
//
// Returns:
//   - ActorBuilderOption: functional option to set the controller
func WithController(c Controller) ActorBuilderOption {
	return func(a *actorImpl) {
		a.controller = c
	}
}
