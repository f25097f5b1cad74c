package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/collision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticViewPoint struct {
	loc common.Vec3
	rot common.Rotator
}

func (s staticViewPoint) ViewPoint() (common.Vec3, common.Rotator) { return s.loc, s.rot }

type fakeDebugCamera struct {
	staticViewPoint
	destroyed bool
}

func (f *fakeDebugCamera) Destroy() { f.destroyed = true }

// assistRecorder counts penetration reports and optionally nominates another actor.
type assistRecorder struct {
	nominee actor.Actor
	reports int
}

func (r *assistRecorder) CameraPreventPenetrationTarget() (actor.Actor, bool) {
	return r.nominee, r.nominee != nil
}

func (r *assistRecorder) OnCameraPenetratingTarget() { r.reports++ }

type assistController struct {
	assistRecorder
}

func (c *assistController) Name() string { return "controller" }

type assistActor struct {
	actor.Actor
	*assistRecorder
}

func TestFixedModeActivationFromDebugCamera(t *testing.T) {
	m := NewFixedMode(collision.NewWorld())
	player := staticViewPoint{loc: common.Vec3{1, 2, 3}}
	older := &fakeDebugCamera{staticViewPoint: staticViewPoint{loc: common.Vec3{9, 9, 9}}}
	newest := &fakeDebugCamera{staticViewPoint: staticViewPoint{
		loc: common.Vec3{-200, 50, 120},
		rot: common.Rotator{Pitch: -10, Yaw: 45},
	}}

	m.OnActivation(player, older, newest)

	assert.Equal(t, common.Vec3{-200, 50, 120}, m.FixedLocation())
	assert.Equal(t, common.Rotator{Pitch: -10, Yaw: 45}, m.FixedRotation())
	assert.True(t, newest.destroyed)
	assert.False(t, older.destroyed)
	assert.True(t, m.ResetInterpolation())
}

func TestFixedModeActivationFromPlayer(t *testing.T) {
	m := NewFixedMode(collision.NewWorld(), WithFixedLocation(5, 5, 5))
	player := staticViewPoint{loc: common.Vec3{1, 2, 3}, rot: common.Rotator{Yaw: 90}}

	m.OnActivation(player)
	assert.Equal(t, common.Vec3{1, 2, 3}, m.FixedLocation())
	assert.Equal(t, common.Rotator{Yaw: 90}, m.FixedRotation())
	assert.True(t, m.ResetInterpolation())

	// nothing to seed from keeps the pivot
	m.SetFixedTransform(common.Vec3{7, 8, 9}, common.Rotator{})
	m.OnActivation(nil)
	assert.Equal(t, common.Vec3{7, 8, 9}, m.FixedLocation())
}

func TestNewFixedModePanicsWithoutQuery(t *testing.T) {
	assert.Panics(t, func() { NewFixedMode(nil) })
}

func TestFixedModeViewClampsPitch(t *testing.T) {
	m := NewFixedMode(collision.NewWorld(),
		WithFixedLocation(10, 20, 30),
		WithFixedRotation(95, 30, 0),
	)
	m.UpdateView(0.016)

	v := m.View()
	assert.Equal(t, common.Vec3{10, 20, 30}, v.Location)
	assert.InDelta(t, 89.9, v.Rotation.Pitch, tol)
	assert.InDelta(t, 30, v.Rotation.Yaw, tol)
	assert.Equal(t, v.Rotation, v.ControlRotation)
	assert.Equal(t, float32(90), v.FieldOfView)
	// pivot keeps the unclamped pitch
	assert.Equal(t, float32(95), m.FixedRotation().Pitch)
}

func TestFixedModeResetConsumedOnlyWhenPreventionRuns(t *testing.T) {
	pawn := newPawn(false)
	world := collision.NewWorld(collision.WithActors(pawn))
	m := NewFixedMode(world, WithFixedLocation(-100, 0, 0))
	m.SetResetInterpolation(true)

	m.UpdateView(0.016)
	assert.True(t, m.ResetInterpolation(), "no target")

	cfg := DefaultPenetrationConfig()
	cfg.PreventPenetration = false
	disabled := NewFixedMode(world, WithPenetrationConfig(cfg), WithTargetActor(pawn))
	disabled.SetResetInterpolation(true)
	disabled.UpdateView(0.016)
	assert.True(t, disabled.ResetInterpolation(), "prevention disabled")

	m.SetTargetActor(pawn)
	m.UpdateView(0.016)
	assert.False(t, m.ResetInterpolation())
	assert.Equal(t, float32(1), m.BlockedFraction())
}

func TestFixedModePullsCameraInFrontOfWall(t *testing.T) {
	pawn := newPawn(false)
	wall := newBox("wall", common.Vec3{-33, 0, 0}, common.Vec3{1, 50, 50})
	world := collision.NewWorld(collision.WithActors(pawn, wall))
	m := NewFixedMode(world,
		WithPenetrationConfig(multiRayConfig()),
		WithFixedLocation(-100, 0, 0),
		WithTargetActor(pawn),
	)
	m.OnActivation(nil)

	m.UpdateView(0.016)
	assert.InDelta(t, 0.3, m.BlockedFraction(), tol)
	assertVec(t, common.Vec3{-30, 0, 0}, m.View().Location)
	assertVec(t, common.Vec3{}, m.LastSafeLocation())
	assert.Equal(t, m.BlockedFraction(), m.LastPenetration().BlockedFraction)
	require.Len(t, m.DebugHitActors(), 1)

	lines := m.DrawDebug()
	require.Len(t, lines, 2)
	assert.Equal(t, "fixed: BlockedFraction: 0.3000", lines[0])
	assert.Equal(t, "HitActorDuringPenetration[0]: wall", lines[1])

	world.Remove(wall.ID())
	m.UpdateView(0.016)
	assert.Equal(t, float32(1), m.BlockedFraction())
	assert.Equal(t, common.Vec3{-100, 0, 0}, m.View().Location)
	assert.Empty(t, m.DebugHitActors())
	assert.Len(t, m.DrawDebug(), 1)
}

func reportingConfig(percent float32) PenetrationConfig {
	cfg := DefaultPenetrationConfig()
	cfg.ReportPenetrationPercent = percent
	return cfg
}

func TestFixedModeReportsPenetrationToAssists(t *testing.T) {
	controller := &assistController{}
	pawn := assistActor{
		Actor:          actor.NewActor(actor.WithName("pawn"), actor.WithBoxCollider(10, 10, 10), actor.WithController(controller)),
		assistRecorder: &assistRecorder{},
	}
	crate := newBox("crate", common.Vec3{}, common.Vec3{3, 3, 3})
	world := collision.NewWorld(collision.WithActors(pawn.Actor, crate))

	m := NewFixedMode(world,
		WithPenetrationConfig(reportingConfig(0.25)),
		WithFixedLocation(-100, 0, 0),
		WithTargetActor(pawn),
	)
	m.UpdateView(0.016)

	assert.Equal(t, float32(0), m.BlockedFraction())
	assert.Equal(t, 1, controller.reports)
	assert.Equal(t, 1, pawn.reports)

	m.UpdateView(0.016)
	assert.Equal(t, 2, controller.reports)
	assert.Equal(t, 2, pawn.reports)
}

func TestFixedModeNeverReportsWithZeroPercent(t *testing.T) {
	pawn := assistActor{
		Actor:          actor.NewActor(actor.WithName("pawn"), actor.WithBoxCollider(10, 10, 10)),
		assistRecorder: &assistRecorder{},
	}
	crate := newBox("crate", common.Vec3{}, common.Vec3{3, 3, 3})
	world := collision.NewWorld(collision.WithActors(crate))

	m := NewFixedMode(world, WithFixedLocation(-100, 0, 0), WithTargetActor(pawn))
	m.UpdateView(0.016)

	assert.Equal(t, float32(0), m.BlockedFraction())
	assert.Zero(t, pawn.reports)
}

func TestFixedModeAnchorsOnNominatedActor(t *testing.T) {
	vehicle := assistActor{
		Actor:          actor.NewActor(actor.WithName("vehicle"), actor.WithLocation(0, 0, 50), actor.WithBoxCollider(100, 60, 50)),
		assistRecorder: &assistRecorder{},
	}
	controller := &assistController{}
	driver := assistActor{
		Actor:          actor.NewActor(actor.WithName("driver"), actor.WithLocation(0, 0, 50), actor.WithBoxCollider(10, 10, 10), actor.WithController(controller)),
		assistRecorder: &assistRecorder{nominee: vehicle},
	}
	crate := newBox("crate", common.Vec3{0, 0, 50}, common.Vec3{3, 3, 3})
	// the vehicle is the anchor and is ignored by the probes; the driver is not in the world
	world := collision.NewWorld(collision.WithActors(vehicle.Actor, crate))

	m := NewFixedMode(world,
		WithPenetrationConfig(reportingConfig(0.25)),
		WithFixedLocation(-500, 0, 50),
		WithTargetActor(driver),
	)
	m.UpdateView(0.016)

	assertVec(t, common.Vec3{0, 0, 50}, m.LastSafeLocation())
	assert.Equal(t, float32(0), m.BlockedFraction())
	assert.Equal(t, 1, controller.reports)
	assert.Equal(t, 1, driver.reports)
	assert.Equal(t, 1, vehicle.reports)
	ignored := m.LastPenetration().Detection.IgnoredActors
	require.NotEmpty(t, ignored)
	assert.Equal(t, vehicle.ID(), ignored[0].ID())

	// without a nomination only the controller and the target hear about it
	driver.nominee = nil
	world.Add(driver.Actor)
	m.UpdateView(0.016)
	assert.Equal(t, 2, controller.reports)
	assert.Equal(t, 2, driver.reports)
	assert.Equal(t, 1, vehicle.reports)
}

func TestFixedModeDebugDrawingFollowsDrawDebug(t *testing.T) {
	pawn := newPawn(false)
	world := collision.NewWorld(collision.WithActors(pawn))
	rec := NewDebugRecorder()
	m := NewFixedMode(world,
		WithFixedLocation(-100, 0, 0),
		WithTargetActor(pawn),
		WithDebugDrawer(rec),
	)

	m.UpdateView(0.1)
	assert.Empty(t, rec.Lines(), "nothing requested yet")

	m.DrawDebug()
	m.UpdateView(0.5)
	assert.Len(t, rec.Lines(), 1)
	assert.Len(t, rec.Spheres(), 2)

	rec.Reset()
	m.UpdateView(1.0)
	assert.Empty(t, rec.Lines(), "request expired")
}

func TestFixedModeTreatsTypedNilAssistsAsAbsent(t *testing.T) {
	var controller *assistController
	var nominee *assistActor
	pawn := assistActor{
		Actor:          actor.NewActor(actor.WithName("pawn"), actor.WithBoxCollider(10, 10, 10), actor.WithController(controller)),
		assistRecorder: &assistRecorder{nominee: nominee},
	}
	crate := newBox("crate", common.Vec3{}, common.Vec3{3, 3, 3})
	world := collision.NewWorld(collision.WithActors(crate))

	m := NewFixedMode(world,
		WithPenetrationConfig(reportingConfig(0.25)),
		WithFixedLocation(-100, 0, 0),
		WithTargetActor(pawn),
	)

	require.NotPanics(t, func() { m.UpdateView(0.016) })
	assert.Equal(t, float32(0), m.BlockedFraction())
	assert.Equal(t, 1, pawn.reports)
	// the nomination was a typed nil, so the pawn itself anchors the probes
	ignored := m.LastPenetration().Detection.IgnoredActors
	require.NotEmpty(t, ignored)
	assert.Equal(t, pawn.ID(), ignored[0].ID())
}

func TestAssistOf(t *testing.T) {
	var typedNil *assistController
	assert.Nil(t, assistOf(nil))
	assert.Nil(t, assistOf(typedNil))
	assert.Nil(t, assistOf("not an assist"))
	assert.NotNil(t, assistOf(&assistController{}))
}
