package camera

import (
	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
)

// FixedModeBuilderOption is a functional option for configuring a FixedMode.
type FixedModeBuilderOption func(*fixedMode)

// WithName sets the mode's identifier used in logs and debug output.
//
// Parameters:
//   - name: the identifier
//
// Returns:
//   - FixedModeBuilderOption: functional option to set the name
func WithName(name string) FixedModeBuilderOption {
	return func(m *fixedMode) {
		m.name = name
	}
}

// WithFixedModeConfig replaces the whole configuration.
//
// Parameters:
//   - cfg: the configuration, typically loaded with config.Load
//
// Returns:
//   - FixedModeBuilderOption: functional option to set the configuration
func WithFixedModeConfig(cfg FixedModeConfig) FixedModeBuilderOption {
	return func(m *fixedMode) {
		m.config = cfg
	}
}

// WithPenetrationConfig replaces only the penetration settings.
//
// Parameters:
//   - cfg: the penetration settings
//
// Returns:
//   - FixedModeBuilderOption: functional option to set penetration settings
func WithPenetrationConfig(cfg PenetrationConfig) FixedModeBuilderOption {
	return func(m *fixedMode) {
		m.config.Penetration = cfg
	}
}

// WithFixedLocation sets the pivot location.
//
// Parameters:
//   - x, y, z: world-space location
//
// Returns:
//   - FixedModeBuilderOption: functional option to set the pivot location
func WithFixedLocation(x, y, z float32) FixedModeBuilderOption {
	return func(m *fixedMode) {
		m.fixedLocation = common.Vec3{x, y, z}
	}
}

// WithFixedRotation sets the pivot rotation.
//
// Parameters:
//   - pitch, yaw, roll: rotation in degrees
//
// Returns:
//   - FixedModeBuilderOption: functional option to set the pivot rotation
func WithFixedRotation(pitch, yaw, roll float32) FixedModeBuilderOption {
	return func(m *fixedMode) {
		m.fixedRotation = common.Rotator{Pitch: pitch, Yaw: yaw, Roll: roll}
	}
}

// WithTargetActor sets the actor the mode keeps clear of.
//
// Parameters:
//   - a: the target actor
//
// Returns:
//   - FixedModeBuilderOption: functional option to set the target
func WithTargetActor(a actor.Actor) FixedModeBuilderOption {
	return func(m *fixedMode) {
		m.target = a
	}
}

// WithDebugDrawer attaches a sink for probe shapes. Shapes are only emitted for a second
// after each DrawDebug call.
//
// Parameters:
//   - d: the debug drawer
//
// Returns:
//   - FixedModeBuilderOption: functional option to set the drawer
func WithDebugDrawer(d DebugDrawer) FixedModeBuilderOption {
	return func(m *fixedMode) {
		m.drawer = d
	}
}

// WithVerbose enables activation logging.
//
// Parameters:
//   - verbose: true to log
//
// Returns:
//   - FixedModeBuilderOption: functional option to toggle logging
func WithVerbose(verbose bool) FixedModeBuilderOption {
	return func(m *fixedMode) {
		m.verbose = verbose
	}
}
