package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
)

type cameraImpl struct {
	mu *sync.Mutex

	name string
	up   common.Vec3

	aspect float32
	near   float32
	far    float32

	mode            Mode
	initialMode     Mode
	viewTarget      actor.Actor
	player          ViewPointSource
	debugViewPoints []DebugViewPoint

	view                 View
	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// Camera hosts a single active Mode. Each frame Update lets the mode compute its view, then
// derives view and projection matrices from it. Thread-safe for concurrent access; the
// hosted mode is only ever touched under the camera's lock.
type Camera interface {
	// Name returns the camera's identifier.
	//
	// Returns:
	//   - string: the camera name
	Name() string

	// Mode returns the active mode, or nil.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// SetMode activates a mode. The mode is handed the current view target and is seeded from
	// the newest registered debug view point (which is then dropped) or the player view point.
	//
	// Parameters:
	//   - m: the mode to activate
	SetMode(m Mode)

	// ViewTarget returns the actor the camera is looking after.
	//
	// Returns:
	//   - actor.Actor: the view target or nil
	ViewTarget() actor.Actor

	// SetViewTarget sets the actor the camera is looking after and forwards it to the active mode.
	//
	// Parameters:
	//   - a: the view target
	SetViewTarget(a actor.Actor)

	// SetViewPointSource sets the player view point used to seed modes on activation.
	//
	// Parameters:
	//   - src: the player view point
	SetViewPointSource(src ViewPointSource)

	// AddDebugViewPoint registers a debug camera that the next activated mode takes over.
	//
	// Parameters:
	//   - d: the debug camera
	AddDebugViewPoint(d DebugViewPoint)

	// Update runs the active mode for this frame and recomputes matrices.
	// Does nothing when no mode is active.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the last frame in seconds
	Update(deltaTime float32)

	// View returns the view computed by the last Update.
	//
	// Returns:
	//   - View: the current view
	View() View

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	ViewProjectionMatrix() [16]float32

	// DrawDebug returns the active mode's diagnostic lines.
	//
	// Returns:
	//   - []string: the lines, nil when no mode is active
	DrawDebug() []string
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
// A mode must be set via SetMode or WithMode before views are produced.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		name:                 "camera",
		up:                   common.Vec3{0, 0, 1},
		aspect:               16.0 / 9.0,
		near:                 0.1,
		far:                  100000.0,
		viewMatrix:           [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		projectionMatrix:     [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		viewProjectionMatrix: [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	}
	for _, option := range options {
		option(c)
	}
	if c.initialMode != nil {
		c.activate(c.initialMode)
		c.initialMode = nil
	}
	return c
}

func (c *cameraImpl) Name() string {
	return c.name
}

func (c *cameraImpl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *cameraImpl) SetMode(m Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activate(m)
}

// activate hands the mode its target and view point seed. Caller must hold the mutex.
func (c *cameraImpl) activate(m Mode) {
	c.mode = m
	if m == nil {
		return
	}
	m.SetTargetActor(c.viewTarget)
	m.OnActivation(c.player, c.debugViewPoints...)
	if len(c.debugViewPoints) > 0 {
		// the newest debug camera was consumed by the mode
		c.debugViewPoints = c.debugViewPoints[:len(c.debugViewPoints)-1]
	}
}

func (c *cameraImpl) ViewTarget() actor.Actor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewTarget
}

func (c *cameraImpl) SetViewTarget(a actor.Actor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewTarget = a
	if c.mode != nil {
		c.mode.SetTargetActor(a)
	}
}

func (c *cameraImpl) SetViewPointSource(src ViewPointSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.player = src
}

func (c *cameraImpl) AddDebugViewPoint(d DebugViewPoint) {
	if d == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.debugViewPoints = append(c.debugViewPoints, d)
}

func (c *cameraImpl) Update(deltaTime float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == nil {
		return
	}
	c.mode.UpdateView(deltaTime)
	c.view = c.mode.View()
	c.updateMatrices()
}

func (c *cameraImpl) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) DrawDebug() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == nil {
		return nil
	}
	return c.mode.DrawDebug()
}

// updateMatrices recalculates the view, projection and view-projection matrices from the
// current view. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	eye := c.view.Location
	center := eye.Add(c.view.Rotation.Vector())
	common.LookAt(c.viewMatrix[:], eye, center, c.up)

	fov := c.view.FieldOfView
	if fov <= 0 {
		fov = 90
	}
	common.Perspective(c.projectionMatrix[:], float32(float64(fov)*math.Pi/180.0), c.aspect, c.near, c.far)
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
