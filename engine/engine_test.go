package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/camera"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockedScene returns a scene with one camera whose view of the pawn is 30% clear.
func blockedScene(name string, active bool) (scene.Scene, camera.FixedMode) {
	pawn := actor.NewActor(actor.WithName("pawn"), actor.WithBoxCollider(10, 10, 10))
	wall := actor.NewActor(actor.WithName("wall"), actor.WithLocation(-33, 0, 0), actor.WithBoxCollider(1, 50, 50))
	s := scene.NewScene(name, scene.WithActive(active), scene.WithActors(pawn, wall), scene.WithUpdateWorkers(1))

	cfg := camera.DefaultPenetrationConfig()
	cfg.SingleRayOnly = false
	m := camera.NewFixedMode(s.World(), camera.WithPenetrationConfig(cfg), camera.WithFixedLocation(-100, 0, 0))
	s.AddCamera(camera.NewCamera(camera.WithViewTarget(pawn), camera.WithMode(m)))
	return s, m
}

func TestTickUpdatesOnlyActiveScenes(t *testing.T) {
	active, activeMode := blockedScene("active", true)
	idle, idleMode := blockedScene("idle", false)

	var ticks atomic.Int32
	e := NewEngine(
		WithScene(0, active),
		WithScene(1, idle),
		WithTickCallback(func(float32) { ticks.Add(1) }),
	)

	sample := e.Tick(0.016)

	assert.Equal(t, 1, sample.Cameras)
	assert.Equal(t, 1, sample.Penetrating)
	assert.InDelta(t, 0.3, sample.MinBlockedFraction, 1e-4)
	assert.InDelta(t, 0.3, activeMode.BlockedFraction(), 1e-4)
	assert.Zero(t, idleMode.BlockedFraction(), "inactive scene is not updated")
	assert.Equal(t, int32(1), ticks.Load())

	idle.SetActive(true)
	sample = e.Tick(0.016)
	assert.Equal(t, 2, sample.Cameras)
	assert.Equal(t, 2, sample.Penetrating)
}

func TestTickRecordsProfilerSamples(t *testing.T) {
	s, _ := blockedScene("active", true)
	p := profiler.NewProfiler(profiler.WithUpdateInterval(time.Nanosecond))
	e := NewEngine(WithScene(0, s), WithProfiler(p))

	e.Tick(0.016)
	assert.Zero(t, p.LastReport().CameraUpdates, "profiling disabled")

	e.EnableProfiler()
	time.Sleep(time.Millisecond)
	e.Tick(0.016)
	report := p.LastReport()
	assert.Equal(t, 1, report.CameraUpdates)
	assert.Equal(t, 1, report.PenetratingUpdates)
	assert.InDelta(t, 0.3, report.MinBlockedFraction, 1e-4)

	e.DisableProfiler()
	e.Tick(0.016)
	assert.Equal(t, report, p.LastReport())
}

func TestScenesReturnsCopy(t *testing.T) {
	s, _ := blockedScene("a", true)
	e := NewEngine()
	e.AddScene(3, s)

	scenes := e.Scenes()
	require.Len(t, scenes, 1)
	delete(scenes, 3)
	assert.NotNil(t, e.Scene(3))

	e.RemoveScene(3)
	assert.Nil(t, e.Scene(3))
	assert.Empty(t, e.Scenes())
}

func TestSetTickRateBeforeRun(t *testing.T) {
	e := NewEngine(WithTickRate(30)).(*engine)
	assert.Equal(t, time.Second/30, e.tickRate())

	e.SetTickRate(120)
	assert.Equal(t, time.Second/120, e.tickRate())

	e.SetTickRate(0)
	assert.Equal(t, time.Second/60, e.tickRate())
}

func TestHeadlessRunTicksUntilQuit(t *testing.T) {
	var ticks atomic.Int32
	e := NewEngine(
		WithTickRate(500),
		WithTickCallback(func(float32) { ticks.Add(1) }),
	)

	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	e.SetTickRate(250)
	e.Quit()
	e.Quit()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Quit")
	}
}
