package camera

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/collision"
)

const (
	// ZeroWeightThreshold is how close to 1 a blocked fraction must be for the camera
	// to be left at its desired location.
	ZeroWeightThreshold = 0.00001

	// HardRayIndex is the primary probe. Its result is snapped to, never interpolated.
	HardRayIndex = 0

	multiRayCount   = 4
	debugSphereSegs = 8
)

// PenetrationConfig holds the tunables of camera penetration prevention.
type PenetrationConfig struct {
	// PreventPenetration enables collision checks that keep the camera out of the world.
	PreventPenetration bool `yaml:"prevent_penetration" env:"OXY_CAMERA_PREVENT_PENETRATION"`

	// PushOutDistance is subtracted from every hit distance so the camera stays clear of surfaces.
	// It also shrinks the collision half height used to clamp the safe location.
	PushOutDistance float32 `yaml:"push_out_distance" env:"OXY_CAMERA_PUSH_OUT_DISTANCE"`

	// ReportPenetrationPercent: when the blocked fraction drops below this value the camera
	// assists are told the camera is penetrating the target. 0 never reports.
	ReportPenetrationPercent float32 `yaml:"report_penetration_percent" env:"OXY_CAMERA_REPORT_PENETRATION_PERCENT"`

	// SingleRayOnly shoots only the hard ray.
	SingleRayOnly bool `yaml:"single_ray_only" env:"OXY_CAMERA_SINGLE_RAY_ONLY"`

	// ProbeRadius is the radius of the swept sphere. 0 makes every probe a line trace.
	ProbeRadius float32 `yaml:"probe_radius" env:"OXY_CAMERA_PROBE_RADIUS"`

	// AuxiliaryRayOffset displaces the soft rays' targets from the desired camera location
	// along the base ray's right, left and up axes.
	AuxiliaryRayOffset float32 `yaml:"auxiliary_ray_offset" env:"OXY_CAMERA_AUXILIARY_RAY_OFFSET"`
}

// DefaultPenetrationConfig returns the stock penetration settings.
//
// Returns:
//   - PenetrationConfig: prevention on, 2 unit push-out, no reporting, single ray, line traces
func DefaultPenetrationConfig() PenetrationConfig {
	return PenetrationConfig{
		PreventPenetration:       true,
		PushOutDistance:          2,
		ReportPenetrationPercent: 0,
		SingleRayOnly:            true,
		ProbeRadius:              0,
		AuxiliaryRayOffset:       0,
	}
}

// SceneQuery is the slice of the collision world that penetration prevention needs.
// collision.World satisfies it.
type SceneQuery interface {
	Sweep(origin, target common.Vec3, radius float32, ch actor.Channel, params *collision.QueryParams) (collision.Hit, bool)
	SquaredDistanceToCollision(a actor.Actor, point common.Vec3) (float32, common.Vec3, bool)
}

// PenetrationInput is everything one frame of penetration prevention reads.
type PenetrationInput struct {
	// ViewTarget is ignored by every probe and defines "in front" for blocking volumes.
	ViewTarget actor.Actor
	// SafeLocation is the anchor the camera is pulled toward.
	SafeLocation common.Vec3
	// CameraLocation is the desired, unobstructed camera location.
	CameraLocation common.Vec3
	// BlockedFraction is the fraction resolved on the previous frame.
	BlockedFraction float32
	// SingleRayOnly restricts the probe to the hard ray.
	SingleRayOnly bool
	// ResetInterpolation snaps straight to this frame's raw fraction.
	ResetInterpolation bool
}

// RayTrace records one probe for diagnostics.
type RayTrace struct {
	Index       int
	Origin      common.Vec3
	Target      common.Vec3
	Hit         bool
	HitActor    actor.Actor
	HitLocation common.Vec3
	Ignored     bool
}

// Detection is the raw, unsmoothed outcome of probing one frame.
type Detection struct {
	// FrameFraction is the minimum blocked fraction over every blocking hit this frame, 1 if none.
	FrameFraction float32
	// HardFraction is the frame fraction after the hard ray.
	HardFraction float32
	// SoftFraction is the frame fraction after the last soft ray. With a single ray it keeps
	// the previous frame's resolved fraction.
	SoftFraction float32
	// Rays describes each probe in the order it was shot.
	Rays []RayTrace
	// HitActors lists the actors that blocked the camera, without duplicates.
	HitActors []actor.Actor
	// IgnoredActors is the ignore set the probes ended with, view target first.
	IgnoredActors []actor.Actor
}

// PenetrationResult is the resolved outcome of one frame.
type PenetrationResult struct {
	// BlockedFraction is the smoothed fraction to store for the next frame.
	BlockedFraction float32
	// CameraLocation is the adjusted camera location.
	CameraLocation common.Vec3
	// Detection is the raw probe data the result was derived from.
	Detection Detection
}

// DetectPenetration sweeps the probe rays from the safe location and measures how much of the
// desired camera displacement is obstructed. Rays are shot in order; an actor filtered by one
// ray stays ignored for the remaining rays of the frame.
//
// Parameters:
//   - query: the scene to probe
//   - cfg: penetration tunables
//   - in: this frame's inputs
//   - drawer: optional sink for probe shapes, may be nil
//
// Returns:
//   - Detection: the raw fractions and diagnostics
func DetectPenetration(query SceneQuery, cfg PenetrationConfig, in PenetrationInput, drawer DebugDrawer) Detection {
	d := Detection{
		FrameFraction: 1,
		HardFraction:  in.BlockedFraction,
		SoftFraction:  in.BlockedFraction,
	}

	numRays := multiRayCount
	if in.SingleRayOnly {
		numRays = 1
	}

	_, right, up := in.CameraLocation.Sub(in.SafeLocation).Rotation().Axes()
	params := collision.NewQueryParams(in.ViewTarget)

	for idx := 0; idx < numRays; idx++ {
		target := probeTarget(idx, in.SafeLocation, in.CameraLocation, right, up, cfg.AuxiliaryRayOffset)

		hit, ok := query.Sweep(in.SafeLocation, target, cfg.ProbeRadius, actor.ChannelCamera, params)
		trace := RayTrace{Index: idx, Origin: in.SafeLocation, Target: target, Hit: ok}

		if drawer != nil {
			end := target
			if ok {
				end = hit.Location
			}
			drawer.DrawSphere(in.SafeLocation, cfg.ProbeRadius, debugSphereSegs, DebugColorRed)
			drawer.DrawSphere(end, cfg.ProbeRadius, debugSphereSegs, DebugColorRed)
			drawer.DrawLine(in.SafeLocation, end, DebugColorRed)
		}

		if ok && hit.Actor != nil {
			trace.HitActor = hit.Actor
			trace.HitLocation = hit.Location

			ignore := false
			if hit.Actor.HasTag(actor.TagIgnoreCameraCollision) {
				ignore = true
				params.AddIgnoredActor(hit.Actor)
			}

			if !ignore && hit.Actor.Kind() == actor.KindCameraBlockingVolume {
				if inFrontOf(in.ViewTarget, hit.Location) {
					ignore = true
					// stays ignored for the remaining rays
					params.AddIgnoredActor(hit.Actor)
				} else {
					d.HitActors = appendUnique(d.HitActors, hit.Actor)
				}
			}

			if !ignore {
				frac := hitBlockedFraction(hit.Location, in.SafeLocation, target, cfg.PushOutDistance)
				d.FrameFraction = min(frac, d.FrameFraction)
				d.HitActors = appendUnique(d.HitActors, hit.Actor)
			}
			trace.Ignored = ignore
		}
		d.Rays = append(d.Rays, trace)

		if idx == HardRayIndex {
			d.HardFraction = d.FrameFraction
		} else {
			// each soft ray overwrites the last; only the final one survives
			d.SoftFraction = d.FrameFraction
		}
	}

	d.IgnoredActors = params.IgnoredActors()
	return d
}

// SmoothBlockedFraction folds a frame's detection into the stored fraction.
// Reset snaps to the raw value. Becoming less blocked snaps immediately. Becoming more
// blocked drops to the hard fraction if the stored value exceeds it, otherwise to the soft one.
//
// Parameters:
//   - stored: the fraction resolved on the previous frame
//   - d: this frame's detection
//   - reset: true to skip hysteresis
//
// Returns:
//   - float32: the new stored fraction in [0, 1]
func SmoothBlockedFraction(stored float32, d Detection, reset bool) float32 {
	switch {
	case reset:
		stored = d.FrameFraction
	case stored < d.FrameFraction:
		stored = d.FrameFraction
	default:
		if stored > d.HardFraction {
			stored = d.HardFraction
		} else if stored > d.SoftFraction {
			stored = d.SoftFraction
		}
	}
	return common.Clamp(stored, 0, 1)
}

// ApplyBlockedFraction moves the desired camera location toward the safe location.
// Fractions within ZeroWeightThreshold of 1 leave the desired location untouched.
//
// Parameters:
//   - safe: the anchor
//   - desired: the unobstructed camera location
//   - fraction: the resolved blocked fraction
//
// Returns:
//   - common.Vec3: the adjusted camera location
func ApplyBlockedFraction(safe, desired common.Vec3, fraction float32) common.Vec3 {
	if fraction < 1-ZeroWeightThreshold {
		return common.Lerp(safe, desired, fraction)
	}
	return desired
}

// PreventCameraPenetration runs detection and smoothing for one frame.
// It never mutates its inputs; the caller stores the returned fraction for the next frame.
//
// Parameters:
//   - query: the scene to probe
//   - cfg: penetration tunables
//   - in: this frame's inputs
//   - drawer: optional sink for probe shapes, may be nil
//
// Returns:
//   - PenetrationResult: the new fraction and camera location
func PreventCameraPenetration(query SceneQuery, cfg PenetrationConfig, in PenetrationInput, drawer DebugDrawer) PenetrationResult {
	d := DetectPenetration(query, cfg, in, drawer)
	fraction := SmoothBlockedFraction(in.BlockedFraction, d, in.ResetInterpolation)
	return PenetrationResult{
		BlockedFraction: fraction,
		CameraLocation:  ApplyBlockedFraction(in.SafeLocation, in.CameraLocation, fraction),
		Detection:       d,
	}
}

// probeTarget returns where ray idx ends. The hard ray tests the anchor itself; the soft rays
// fan out around the desired camera location.
func probeTarget(idx int, safe, camera, right, up common.Vec3, offset float32) common.Vec3 {
	switch idx {
	case HardRayIndex:
		return safe
	case 1:
		return camera.Add(right.Scale(offset))
	case 2:
		return camera.Sub(right.Scale(offset))
	default:
		return camera.Add(up.Scale(offset))
	}
}

// hitBlockedFraction converts a hit into the fraction of the ray left clear.
// A zero-length ray means the camera is already at the anchor: fully blocked.
func hitBlockedFraction(hit, safe, target common.Vec3, pushOut float32) float32 {
	rayLen := target.Dist(safe)
	if rayLen == 0 {
		return 0
	}
	return (hit.Dist(safe) - pushOut) / rayLen
}

// inFrontOf reports whether loc lies ahead of the view target on the ground plane.
func inFrontOf(viewTarget actor.Actor, loc common.Vec3) bool {
	if viewTarget == nil {
		return false
	}
	forward := viewTarget.Forward().SafeNormal2D()
	dir := loc.Sub(viewTarget.Location()).SafeNormal2D()
	return forward.Dot(dir) > 0
}

func appendUnique(list []actor.Actor, a actor.Actor) []actor.Actor {
	if slices.ContainsFunc(list, func(x actor.Actor) bool { return x.ID() == a.ID() }) {
		return list
	}
	return append(list, a)
}
