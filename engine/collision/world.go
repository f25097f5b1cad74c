package collision

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
	"github.com/google/uuid"
)

// Hit describes the first blocking contact of a sweep.
type Hit struct {
	// Actor is the actor that was hit.
	Actor actor.Actor
	// Location is the center of the swept sphere at the moment of impact.
	Location common.Vec3
	// ImpactPoint is the point on the hit actor's surface nearest to Location.
	ImpactPoint common.Vec3
	// Time is the fraction of the sweep travelled before impact, in [0, 1].
	Time float32
	// StartPenetrating is true when the sweep began inside the hit actor.
	StartPenetrating bool
}

type world struct {
	mu *sync.RWMutex

	actors []actor.Actor
	index  map[uuid.UUID]int
}

// World is the scene query service. It holds the collidable actors of a scene and answers
// sphere sweeps and closest-surface queries against their collision boxes.
// Queries take a read lock so cameras may sweep concurrently; Add and Remove take a write lock.
type World interface {
	// Add registers an actor. Re-adding an actor with the same ID replaces it.
	//
	// Parameters:
	//   - a: the actor to add
	Add(a actor.Actor)

	// Remove unregisters an actor by ID. Unknown IDs are ignored.
	//
	// Parameters:
	//   - id: the actor ID
	Remove(id uuid.UUID)

	// Actors returns a snapshot of the registered actors in insertion order.
	//
	// Returns:
	//   - []actor.Actor: the actors
	Actors() []actor.Actor

	// Sweep moves a sphere from origin to target and returns the earliest blocking hit.
	// A radius of zero is a line trace. A zero-length sweep is an overlap test at origin.
	// Actors that do not block the channel, have no collider, or are in the params'
	// ignore set are skipped. Ties resolve to the earliest registered actor.
	//
	// Parameters:
	//   - origin: sweep start
	//   - target: sweep end
	//   - radius: sphere radius (0 = line)
	//   - ch: the collision channel to query
	//   - params: ignore set, may be nil
	//
	// Returns:
	//   - Hit: the earliest hit
	//   - bool: false if nothing was hit
	Sweep(origin, target common.Vec3, radius float32, ch actor.Channel, params *QueryParams) (Hit, bool)

	// SquaredDistanceToCollision measures how far a point is from an actor's collision surface.
	// Points inside the collision report zero distance and themselves as the closest point.
	//
	// Parameters:
	//   - a: the actor
	//   - point: the world-space point
	//
	// Returns:
	//   - float32: the squared distance
	//   - common.Vec3: the closest point on the collision
	//   - bool: false if the actor has no collider
	SquaredDistanceToCollision(a actor.Actor, point common.Vec3) (float32, common.Vec3, bool)
}

var _ World = &world{}

// NewWorld creates an empty collision world.
//
// Parameters:
//   - options: functional options to configure the world
//
// Returns:
//   - World: the newly created world
func NewWorld(options ...WorldBuilderOption) World {
	w := &world{
		mu:    &sync.RWMutex{},
		index: make(map[uuid.UUID]int),
	}
	for _, option := range options {
		option(w)
	}
	return w
}

func (w *world) Add(a actor.Actor) {
	if a == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.add(a)
}

// add inserts or replaces an actor. Caller must hold the write lock.
func (w *world) add(a actor.Actor) {
	if i, ok := w.index[a.ID()]; ok {
		w.actors[i] = a
		return
	}
	w.index[a.ID()] = len(w.actors)
	w.actors = append(w.actors, a)
}

func (w *world) Remove(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	i, ok := w.index[id]
	if !ok {
		return
	}
	// preserve insertion order so tie-breaking stays stable
	w.actors = append(w.actors[:i], w.actors[i+1:]...)
	delete(w.index, id)
	for j := i; j < len(w.actors); j++ {
		w.index[w.actors[j].ID()] = j
	}
}

func (w *world) Actors() []actor.Actor {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]actor.Actor, len(w.actors))
	copy(out, w.actors)
	return out
}

func (w *world) Sweep(origin, target common.Vec3, radius float32, ch actor.Channel, params *QueryParams) (Hit, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	delta := target.Sub(origin)
	var best Hit
	found := false

	for _, a := range w.actors {
		if !a.BlocksChannel(ch) || params.IsIgnored(a) {
			continue
		}
		bounds, ok := ActorBounds(a)
		if !ok {
			continue
		}
		startPenetrating := bounds.DistanceSquared(origin) <= radius*radius

		var t float32
		if delta.SizeSquared() == 0 {
			if !startPenetrating {
				continue
			}
		} else {
			t, ok = bounds.SphereEntry(origin, delta, radius)
			if !ok {
				continue
			}
		}

		if found && t >= best.Time {
			continue
		}
		loc := origin.Add(delta.Scale(t))
		best = Hit{
			Actor:            a,
			Location:         loc,
			ImpactPoint:      bounds.ClosestPoint(loc),
			Time:             t,
			StartPenetrating: startPenetrating,
		}
		found = true
	}
	return best, found
}

func (w *world) SquaredDistanceToCollision(a actor.Actor, point common.Vec3) (float32, common.Vec3, bool) {
	if a == nil {
		return 0, point, false
	}
	bounds, ok := ActorBounds(a)
	if !ok {
		return 0, point, false
	}
	closest := bounds.ClosestPoint(point)
	return closest.Sub(point).SizeSquared(), closest, true
}
