package camera

import (
	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
)

// SafeLocation is the anchor the camera retreats toward when obstructed.
type SafeLocation struct {
	// Location is the anchor: the actor's location with its height moved onto the aim line,
	// clamped inside the actor's collision.
	Location common.Vec3
	// ClosestPointOnAimLine is the projection of the actor's location onto the aim line.
	ClosestPointOnAimLine common.Vec3
	// DistanceSqrToCollision is the squared distance from ClosestPointOnAimLine to the
	// actor's collision surface. Informational only.
	DistanceSqrToCollision float32
	// ClosestPointOnCollision is the collision surface point nearest ClosestPointOnAimLine.
	ClosestPointOnCollision common.Vec3
}

// ResolveSafeLocation picks the anchor for penetration prevention. Keeping the anchor at the
// height the camera is aiming at, rather than the actor's center, keeps aim steady when the
// camera gets pulled in.
//
// Parameters:
//   - query: used for the closest-surface side query
//   - a: the penetration prevention actor
//   - viewLocation: the aim line origin
//   - viewRotation: the aim line direction
//   - pushIn: margin kept between the anchor and the top or bottom of the collision
//
// Returns:
//   - SafeLocation: the anchor
//   - bool: false when the actor is missing or has no collision; prevention is skipped
func ResolveSafeLocation(query SceneQuery, a actor.Actor, viewLocation common.Vec3, viewRotation common.Rotator, pushIn float32) (SafeLocation, bool) {
	if a == nil || a.Collider() == nil {
		return SafeLocation{}, false
	}

	safe := a.Location()
	closest, _ := common.ClosestPointOnLine(safe, viewRotation.Vector(), viewLocation)

	maxHalfHeight := a.SimpleCollisionHalfHeight() - pushIn
	safe[2] = common.Clamp(closest[2], safe[2]-maxHalfHeight, safe[2]+maxHalfHeight)

	out := SafeLocation{
		Location:                safe,
		ClosestPointOnAimLine:   closest,
		ClosestPointOnCollision: closest,
	}
	if query != nil {
		if distSq, onCollision, ok := query.SquaredDistanceToCollision(a, closest); ok {
			out.DistanceSqrToCollision = distSq
			out.ClosestPointOnCollision = onCollision
		}
	}
	return out, true
}
