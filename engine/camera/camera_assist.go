package camera

import (
	"reflect"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
)

// CameraAssist is an optional capability that actors and controllers implement to take
// part in penetration prevention. Anything that does not implement it is simply skipped.
type CameraAssist interface {
	// CameraPreventPenetrationTarget nominates a different actor to anchor penetration
	// prevention on, e.g. a vehicle for its driver.
	//
	// Returns:
	//   - actor.Actor: the nominated actor
	//   - bool: false to keep the view target itself
	CameraPreventPenetrationTarget() (actor.Actor, bool)

	// OnCameraPenetratingTarget is called when the camera has been pulled in closer than
	// the configured report threshold. Fire and forget.
	OnCameraPenetratingTarget()
}

// assistOf returns v as a CameraAssist, or nil if v does not implement the capability.
// A typed nil (e.g. a nil *PlayerController stored in an interface) counts as absent.
func assistOf(v any) CameraAssist {
	if isNil(v) {
		return nil
	}
	if assist, ok := v.(CameraAssist); ok {
		return assist
	}
	return nil
}

// isNil reports whether v is nil or an interface holding a nil pointer, map, slice,
// func or channel.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// ViewPointSource provides a view point that a camera mode can seed itself from on activation.
type ViewPointSource interface {
	// ViewPoint returns the current eye location and orientation.
	//
	// Returns:
	//   - common.Vec3: the eye location
	//   - common.Rotator: the eye rotation
	ViewPoint() (common.Vec3, common.Rotator)
}

// DebugViewPoint is a free-flying debug camera. A fixed mode activated while one exists
// takes over its view point and destroys it.
type DebugViewPoint interface {
	ViewPointSource

	// Destroy releases the debug camera.
	Destroy()
}
