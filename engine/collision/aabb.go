package collision

import (
	"math"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min common.Vec3
	Max common.Vec3
}

// NewAABBFromCenter creates an AABB from a center point and half extents.
func NewAABBFromCenter(center, halfExtents common.Vec3) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// ActorBounds returns the world-space box of an actor's collider.
//
// Parameters:
//   - a: the actor
//
// Returns:
//   - AABB: the actor's collision box
//   - bool: false if the actor has no collider
func ActorBounds(a actor.Actor) (AABB, bool) {
	c := a.Collider()
	if c == nil {
		return AABB{}, false
	}
	return NewAABBFromCenter(a.Location(), c.HalfExtents), true
}

// Inflate grows the box by r on every side.
func (b AABB) Inflate(r float32) AABB {
	e := common.Vec3{r, r, r}
	return AABB{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}

// DistanceSquared returns the squared distance from p to the box, zero inside.
func (b AABB) DistanceSquared(p common.Vec3) float32 {
	return b.ClosestPoint(p).Sub(p).SizeSquared()
}

// ClosestPoint returns the point on or inside the box nearest to p.
func (b AABB) ClosestPoint(p common.Vec3) common.Vec3 {
	return common.Vec3{
		max(b.Min[0], min(p[0], b.Max[0])),
		max(b.Min[1], min(p[1], b.Max[1])),
		max(b.Min[2], min(p[2], b.Max[2])),
	}
}

// SegmentEntry intersects the segment origin + delta*t, t in [0, 1], with the box
// using the slab method.
//
// Parameters:
//   - origin: segment start
//   - delta: segment end minus start
//
// Returns:
//   - float32: the entry time along the segment (0 when origin is inside)
//   - bool: false if the segment misses the box
func (b AABB) SegmentEntry(origin, delta common.Vec3) (float32, bool) {
	tMin := float32(0)
	tMax := float32(1)
	for i := 0; i < 3; i++ {
		if delta[i] == 0 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / delta[i]
		t1 := (b.Min[i] - origin[i]) * inv
		t2 := (b.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	if math.IsNaN(float64(tMin)) {
		return 0, false
	}
	return tMin, true
}

// SphereEntry returns the first time a sphere of radius r centered on origin + delta*t,
// t in [0, 1], touches the box. The swept volume is the box rounded by r: three slabs
// grown along one axis each, a cylinder on each of the 12 edges and a ball on each of
// the 8 corners. The earliest entry over those parts is the contact time.
//
// Parameters:
//   - origin: sphere center at t = 0
//   - delta: center displacement over the sweep
//   - r: sphere radius, 0 reduces to SegmentEntry
//
// Returns:
//   - float32: the contact time (0 when the sphere starts touching the box)
//   - bool: false if the sphere never touches the box
func (b AABB) SphereEntry(origin, delta common.Vec3, r float32) (float32, bool) {
	if r <= 0 {
		return b.SegmentEntry(origin, delta)
	}
	// grown box rejects everything the rounded box cannot touch
	if _, ok := b.Inflate(r).SegmentEntry(origin, delta); !ok {
		return 0, false
	}
	if b.DistanceSquared(origin) <= r*r {
		return 0, true
	}

	best := float32(0)
	found := false
	consider := func(t float32, ok bool) {
		if ok && (!found || t < best) {
			best = t
			found = true
		}
	}

	for axis := 0; axis < 3; axis++ {
		slab := b
		slab.Min[axis] -= r
		slab.Max[axis] += r
		consider(slab.SegmentEntry(origin, delta))
	}

	corners := [2]common.Vec3{b.Min, b.Max}
	for axis := 0; axis < 3; axis++ {
		u, v := (axis+1)%3, (axis+2)%3
		for _, cu := range corners {
			for _, cv := range corners {
				consider(edgeEntry(origin, delta, axis, u, v, cu[u], cv[v], b.Min[axis], b.Max[axis], r))
			}
		}
	}

	for i := 0; i < 8; i++ {
		c := common.Vec3{corners[i&1][0], corners[(i>>1)&1][1], corners[(i>>2)&1][2]}
		consider(firstRoot(delta.SizeSquared(), 2*origin.Sub(c).Dot(delta), origin.Sub(c).SizeSquared()-r*r))
	}
	return best, found
}

// edgeEntry intersects the moving center with the cylinder of radius r around the edge
// running along axis at (cu, cv) on the other two axes, limited to [lo, hi] along axis.
func edgeEntry(origin, delta common.Vec3, axis, u, v int, cu, cv, lo, hi, r float32) (float32, bool) {
	mu, mv := origin[u]-cu, origin[v]-cv
	du, dv := delta[u], delta[v]
	t, ok := firstRoot(du*du+dv*dv, 2*(mu*du+mv*dv), mu*mu+mv*mv-r*r)
	if !ok {
		return 0, false
	}
	along := origin[axis] + delta[axis]*t
	if along < lo || along > hi {
		return 0, false
	}
	return t, true
}

// firstRoot returns the smaller root of a*t^2 + b*t + c = 0 when it lies in [0, 1].
// a == 0 means the motion never changes the distance, so there is no entry.
func firstRoot(a, b, c float32) (float32, bool) {
	if a == 0 {
		return 0, false
	}
	disc := float64(b)*float64(b) - 4*float64(a)*float64(c)
	if disc < 0 {
		return 0, false
	}
	t := float32((-float64(b) - math.Sqrt(disc)) / (2 * float64(a)))
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}
