package camera

import (
	"fmt"
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
)

// debugDrawWindow is how long, in seconds, probe shapes keep being emitted after DrawDebug.
const debugDrawWindow = 1.0

// FixedModeConfig holds the tunables of a fixed camera mode.
type FixedModeConfig struct {
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float32 `yaml:"field_of_view" env:"OXY_CAMERA_FIELD_OF_VIEW"`
	// ViewPitchMin is the lowest pitch the view may take, in degrees.
	ViewPitchMin float32 `yaml:"view_pitch_min" env:"OXY_CAMERA_VIEW_PITCH_MIN"`
	// ViewPitchMax is the highest pitch the view may take, in degrees.
	ViewPitchMax float32 `yaml:"view_pitch_max" env:"OXY_CAMERA_VIEW_PITCH_MAX"`
	// Penetration configures penetration prevention.
	Penetration PenetrationConfig `yaml:"penetration"`
}

// DefaultFixedModeConfig returns the stock fixed mode settings.
//
// Returns:
//   - FixedModeConfig: 90 degree FOV, pitch limited to ±89.9, default penetration settings
func DefaultFixedModeConfig() FixedModeConfig {
	return FixedModeConfig{
		FieldOfView:  90,
		ViewPitchMin: -89.9,
		ViewPitchMax: 89.9,
		Penetration:  DefaultPenetrationConfig(),
	}
}

type fixedMode struct {
	name   string
	config FixedModeConfig
	query  SceneQuery

	fixedLocation common.Vec3
	fixedRotation common.Rotator

	view   View
	target actor.Actor

	// penetration state, persists across frames
	blockedFraction    float32
	resetInterpolation bool
	lastSafeLocation   common.Vec3
	lastResult         PenetrationResult

	// diagnostics, rebuilt each frame
	debugHitActors    []actor.Actor
	drawer            DebugDrawer
	worldTime         float32
	lastDebugDrawTime float32
	verbose           bool
}

// FixedMode is a camera that stays at a fixed location and rotation, pulling itself toward
// its target whenever world geometry would otherwise sit between them.
type FixedMode interface {
	Mode

	// Config returns the mode's configuration.
	//
	// Returns:
	//   - FixedModeConfig: a copy of the configuration
	Config() FixedModeConfig

	// FixedLocation returns the pivot location.
	FixedLocation() common.Vec3

	// FixedRotation returns the pivot rotation.
	FixedRotation() common.Rotator

	// SetFixedTransform moves the pivot.
	//
	// Parameters:
	//   - loc: the new pivot location
	//   - rot: the new pivot rotation
	SetFixedTransform(loc common.Vec3, rot common.Rotator)

	// BlockedFraction returns the fraction resolved on the last frame:
	// 1 means unobstructed, 0 means pulled fully onto the safe location.
	BlockedFraction() float32

	// SetResetInterpolation requests that the next update snaps to its raw fraction.
	//
	// Parameters:
	//   - reset: true to skip hysteresis on the next evaluation
	SetResetInterpolation(reset bool)

	// ResetInterpolation reports whether a snap is pending.
	ResetInterpolation() bool

	// LastSafeLocation returns the anchor resolved on the last evaluated frame.
	LastSafeLocation() common.Vec3

	// LastPenetration returns the full result of the last evaluated frame.
	LastPenetration() PenetrationResult

	// DebugHitActors returns the actors that blocked the camera on the last frame.
	DebugHitActors() []actor.Actor
}

var _ FixedMode = &fixedMode{}

// NewFixedMode creates a fixed camera mode that probes the given scene.
// Panics if query is nil.
//
// Parameters:
//   - query: the collision scene penetration prevention sweeps against
//   - options: functional options to configure the mode
//
// Returns:
//   - FixedMode: the newly created mode
func NewFixedMode(query SceneQuery, options ...FixedModeBuilderOption) FixedMode {
	if query == nil {
		panic("camera: NewFixedMode requires a non-nil SceneQuery")
	}
	m := &fixedMode{
		name:              "fixed",
		config:            DefaultFixedModeConfig(),
		query:             query,
		blockedFraction:   0,
		lastDebugDrawTime: -math.MaxFloat32,
	}
	for _, option := range options {
		option(m)
	}
	m.view = View{
		Location:        m.fixedLocation,
		Rotation:        m.fixedRotation,
		ControlRotation: m.fixedRotation,
		FieldOfView:     m.config.FieldOfView,
	}
	return m
}

func (m *fixedMode) Name() string {
	return m.name
}

func (m *fixedMode) Config() FixedModeConfig {
	return m.config
}

func (m *fixedMode) FixedLocation() common.Vec3 {
	return m.fixedLocation
}

func (m *fixedMode) FixedRotation() common.Rotator {
	return m.fixedRotation
}

func (m *fixedMode) SetFixedTransform(loc common.Vec3, rot common.Rotator) {
	m.fixedLocation = loc
	m.fixedRotation = rot
}

func (m *fixedMode) View() View {
	return m.view
}

func (m *fixedMode) TargetActor() actor.Actor {
	return m.target
}

func (m *fixedMode) SetTargetActor(a actor.Actor) {
	m.target = a
}

func (m *fixedMode) BlockedFraction() float32 {
	return m.blockedFraction
}

func (m *fixedMode) SetResetInterpolation(reset bool) {
	m.resetInterpolation = reset
}

func (m *fixedMode) ResetInterpolation() bool {
	return m.resetInterpolation
}

func (m *fixedMode) LastSafeLocation() common.Vec3 {
	return m.lastSafeLocation
}

func (m *fixedMode) LastPenetration() PenetrationResult {
	return m.lastResult
}

func (m *fixedMode) DebugHitActors() []actor.Actor {
	out := make([]actor.Actor, len(m.debugHitActors))
	copy(out, m.debugHitActors)
	return out
}

// OnActivation seeds the pivot from the newest debug camera, destroying it so its state cannot
// drift from the fixed view, or from the player's view point when no debug camera exists.
func (m *fixedMode) OnActivation(player ViewPointSource, debugCameras ...DebugViewPoint) {
	m.resetInterpolation = true

	if n := len(debugCameras); n > 0 && debugCameras[n-1] != nil {
		debugCam := debugCameras[n-1]
		m.fixedLocation, m.fixedRotation = debugCam.ViewPoint()
		debugCam.Destroy()
		if m.verbose {
			log.Printf("[Camera] %s: activated from debug camera at %v", m.name, m.fixedLocation)
		}
		return
	}
	if player != nil {
		m.fixedLocation, m.fixedRotation = player.ViewPoint()
		if m.verbose {
			log.Printf("[Camera] %s: activated from player view point at %v", m.name, m.fixedLocation)
		}
	}
}

func (m *fixedMode) UpdateView(deltaTime float32) {
	m.worldTime += deltaTime
	m.debugHitActors = m.debugHitActors[:0]

	rot := m.fixedRotation
	rot.Pitch = common.ClampAngle(rot.Pitch, m.config.ViewPitchMin, m.config.ViewPitchMax)

	m.view = View{
		Location:        m.fixedLocation,
		Rotation:        rot,
		ControlRotation: rot,
		FieldOfView:     m.config.FieldOfView,
	}

	m.updatePreventPenetration()
}

// updatePreventPenetration adjusts the view location so the camera does not clip into the world
// between it and the target.
func (m *fixedMode) updatePreventPenetration() {
	cfg := m.config.Penetration
	if !cfg.PreventPenetration || isNil(m.target) {
		return
	}

	target := m.target
	controllerAssist := assistOf(target.Controller())
	targetAssist := assistOf(target)

	ppActor := target
	var ppAssist CameraAssist
	if targetAssist != nil {
		if nominated, ok := targetAssist.CameraPreventPenetrationTarget(); ok && !isNil(nominated) {
			ppActor = nominated
			ppAssist = assistOf(nominated)
		}
	}

	safe, ok := ResolveSafeLocation(m.query, ppActor, m.view.Location, m.view.Rotation, cfg.PushOutDistance)
	if !ok {
		return
	}

	result := PreventCameraPenetration(m.query, cfg, PenetrationInput{
		ViewTarget:         ppActor,
		SafeLocation:       safe.Location,
		CameraLocation:     m.view.Location,
		BlockedFraction:    m.blockedFraction,
		SingleRayOnly:      cfg.SingleRayOnly,
		ResetInterpolation: m.resetInterpolation,
	}, m.activeDrawer())

	m.resetInterpolation = false
	m.blockedFraction = result.BlockedFraction
	m.view.Location = result.CameraLocation
	m.lastSafeLocation = safe.Location
	m.lastResult = result
	m.debugHitActors = append(m.debugHitActors, result.Detection.HitActors...)

	if m.blockedFraction < cfg.ReportPenetrationPercent {
		for _, assist := range []CameraAssist{controllerAssist, targetAssist, ppAssist} {
			if assist != nil {
				// camera is too close, tell the assists
				assist.OnCameraPenetratingTarget()
			}
		}
	}
}

// activeDrawer returns the debug drawer only while debug output was requested recently.
func (m *fixedMode) activeDrawer() DebugDrawer {
	if m.drawer == nil {
		return nil
	}
	if m.worldTime-m.lastDebugDrawTime < debugDrawWindow {
		return m.drawer
	}
	return nil
}

func (m *fixedMode) DrawDebug() []string {
	lines := make([]string, 0, len(m.debugHitActors)+1)
	lines = append(lines, fmt.Sprintf("%s: BlockedFraction: %.4f", m.name, m.blockedFraction))
	for i, a := range m.debugHitActors {
		lines = append(lines, fmt.Sprintf("HitActorDuringPenetration[%d]: %s", i, a.Name()))
	}
	m.lastDebugDrawTime = m.worldTime
	return lines
}
