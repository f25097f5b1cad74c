package scene

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/camera"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/collision"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/profiler"
	"github.com/google/uuid"
)

// Scene is the container that owns a set of actors, the collision world they populate and
// the cameras that look at them.
// Scenes are independently activatable and ticked by the engine in ascending key order.
type Scene interface {
	// Name returns the name of the scene.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// SetName sets the name of the scene.
	//
	// Parameters:
	//   - name: the new scene name
	SetName(name string)

	// Active returns whether the scene is active. Inactive scenes are skipped by the engine.
	//
	// Returns:
	//   - bool: true if the scene is active
	Active() bool

	// SetActive sets whether the scene is active.
	//
	// Parameters:
	//   - active: whether the scene should be active
	SetActive(active bool)

	// World returns the collision world cameras in this scene query against.
	//
	// Returns:
	//   - collision.World: the scene's collision world
	World() collision.World

	// Add registers an actor in the scene and its collision world.
	// Re-adding an actor with the same ID replaces it.
	//
	// Parameters:
	//   - a: the actor to add
	//
	// Returns:
	//   - uuid.UUID: the actor ID
	Add(a actor.Actor) uuid.UUID

	// Get retrieves an actor by ID.
	//
	// Parameters:
	//   - id: the actor ID
	//
	// Returns:
	//   - actor.Actor: the actor, or nil if not found
	Get(id uuid.UUID) actor.Actor

	// Remove unregisters an actor from the scene and the collision world.
	//
	// Parameters:
	//   - id: the actor ID
	Remove(id uuid.UUID)

	// Count returns the number of actors in the scene.
	//
	// Returns:
	//   - int: the actor count
	Count() int

	// Clear removes every actor from the scene.
	Clear()

	// AddCamera attaches a camera. Nil cameras are ignored.
	//
	// Parameters:
	//   - c: the camera to attach
	AddCamera(c camera.Camera)

	// RemoveCamera detaches a camera by name.
	//
	// Parameters:
	//   - name: the camera name
	RemoveCamera(name string)

	// Cameras returns a snapshot of the attached cameras.
	//
	// Returns:
	//   - []camera.Camera: the cameras
	Cameras() []camera.Camera

	// Update advances every attached camera by one frame. Cameras are updated in parallel on
	// the scene's worker pool; Update returns once all of them have finished.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	//
	// Returns:
	//   - profiler.Sample: penetration statistics for this frame
	Update(deltaTime float32) profiler.Sample
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	world    collision.World
	registry map[uuid.UUID]actor.Actor
	cameras  []camera.Camera

	// updatePool runs per-camera updates. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	updatePool    worker.DynamicWorkerPool
	updateWorkers int
	verbose       bool
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with an empty collision world.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:            &sync.RWMutex{},
		name:          name,
		world:         collision.NewWorld(),
		registry:      make(map[uuid.UUID]actor.Actor),
		updateWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithUpdateWorkers can override the default.
	s.updatePool = worker.NewDynamicWorkerPool(s.updateWorkers, 256, 1*time.Second)
	if s.verbose {
		log.Printf("[Scene] %s: %d actors, %d cameras, %d update workers", s.name, len(s.registry), len(s.cameras), s.updateWorkers)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) World() collision.World {
	return s.world
}

func (s *scene) Add(a actor.Actor) uuid.UUID {
	if a == nil {
		return uuid.Nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.add(a)
	return a.ID()
}

// add registers an actor. Caller must hold the write lock.
func (s *scene) add(a actor.Actor) {
	s.registry[a.ID()] = a
	s.world.Add(a)
}

func (s *scene) Get(id uuid.UUID) actor.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registry[id]; !ok {
		return
	}
	delete(s.registry, id)
	s.world.Remove(id)
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.registry {
		s.world.Remove(id)
	}
	s.registry = make(map[uuid.UUID]actor.Actor)
}

func (s *scene) AddCamera(c camera.Camera) {
	if c == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cameras = append(s.cameras, c)
}

func (s *scene) RemoveCamera(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.cameras {
		if c.Name() == name {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

func (s *scene) Cameras() []camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]camera.Camera, len(s.cameras))
	copy(out, s.cameras)
	return out
}

func (s *scene) Update(deltaTime float32) profiler.Sample {
	cams := s.Cameras()

	// A WaitGroup provides per-frame barrier sync since pool.Wait() blocks until
	// workers idle-exit which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	for i, c := range cams {
		wg.Add(1)
		cCap := c
		s.updatePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				cCap.Update(deltaTime)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return sampleCameras(cams)
}

// sampleCameras collects penetration statistics from cameras running a fixed mode.
func sampleCameras(cams []camera.Camera) profiler.Sample {
	sample := profiler.Sample{MinBlockedFraction: 1}
	for _, c := range cams {
		fm, ok := c.Mode().(camera.FixedMode)
		if !ok {
			continue
		}
		sample.Cameras++
		if fm.TargetActor() == nil || !fm.Config().Penetration.PreventPenetration {
			continue
		}
		f := fm.BlockedFraction()
		if f < 1-camera.ZeroWeightThreshold {
			sample.Penetrating++
		}
		sample.MinBlockedFraction = min(sample.MinBlockedFraction, f)
	}
	return sample
}
