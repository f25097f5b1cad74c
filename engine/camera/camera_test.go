package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/collision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identity = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

type recordingMode struct {
	target      actor.Actor
	player      ViewPointSource
	debugCams   []DebugViewPoint
	activations int
	updates     int
	view        View
}

func (m *recordingMode) Name() string { return "recording" }

func (m *recordingMode) OnActivation(player ViewPointSource, debugCameras ...DebugViewPoint) {
	m.activations++
	m.player = player
	m.debugCams = debugCameras
}

func (m *recordingMode) UpdateView(float32) { m.updates++ }
func (m *recordingMode) View() View { return m.view }
func (m *recordingMode) TargetActor() actor.Actor { return m.target }
func (m *recordingMode) SetTargetActor(a actor.Actor) { m.target = a }
func (m *recordingMode) DrawDebug() []string { return []string{"recording"} }

func TestNewCameraActivatesInitialMode(t *testing.T) {
	pawn := newPawn(false)
	player := staticViewPoint{loc: common.Vec3{1, 2, 3}}
	mode := &recordingMode{}

	c := NewCamera(
		WithCameraName("main"),
		WithMode(mode),
		WithViewTarget(pawn),
		WithViewPointSource(player),
	)

	assert.Equal(t, "main", c.Name())
	assert.Same(t, mode, c.Mode())
	assert.Equal(t, 1, mode.activations)
	assert.Equal(t, pawn.ID(), mode.target.ID())
	assert.Equal(t, player, mode.player)
}

func TestCameraHandsNewestDebugViewPointToOneMode(t *testing.T) {
	c := NewCamera()
	c.AddDebugViewPoint(nil)
	first := &fakeDebugCamera{}
	second := &fakeDebugCamera{}
	c.AddDebugViewPoint(first)
	c.AddDebugViewPoint(second)

	a := &recordingMode{}
	c.SetMode(a)
	require.Len(t, a.debugCams, 2)
	assert.Same(t, second, a.debugCams[1])

	b := &recordingMode{}
	c.SetMode(b)
	require.Len(t, b.debugCams, 1)
	assert.Same(t, first, b.debugCams[0])
}

func TestCameraSetViewTargetForwardsToMode(t *testing.T) {
	mode := &recordingMode{}
	c := NewCamera(WithMode(mode))
	assert.Nil(t, mode.target)

	pawn := newPawn(false)
	c.SetViewTarget(pawn)
	assert.Equal(t, pawn.ID(), c.ViewTarget().ID())
	assert.Equal(t, pawn.ID(), mode.target.ID())
}

func TestCameraWithoutModeProducesNothing(t *testing.T) {
	c := NewCamera()
	c.Update(0.016)

	assert.Nil(t, c.Mode())
	assert.Equal(t, View{}, c.View())
	assert.Equal(t, identity, c.ViewMatrix())
	assert.Nil(t, c.DrawDebug())
}

func TestCameraUpdateDerivesMatricesFromModeView(t *testing.T) {
	fixed := NewFixedMode(collision.NewWorld(),
		WithFixedLocation(-100, 0, 50),
		WithFixedRotation(-10, 0, 0),
	)
	c := NewCamera(WithMode(fixed), WithAspect(2))

	c.Update(0.016)
	assert.Equal(t, fixed.View(), c.View())

	view := c.ViewMatrix()
	proj := c.ProjectionMatrix()
	assert.NotEqual(t, identity, view)
	assert.NotEqual(t, identity, proj)

	var want [16]float32
	common.Mul4(want[:], proj[:], view[:])
	assert.Equal(t, want, c.ViewProjectionMatrix())

	c.SetAspect(1)
	assert.Equal(t, float32(1), c.Aspect())
	assert.NotEqual(t, proj, c.ProjectionMatrix())
	assert.Equal(t, view, c.ViewMatrix())

	assert.Equal(t, []string{"fixed: BlockedFraction: 0.0000"}, c.DrawDebug())
}

func TestCameraUpdateRunsModeEachFrame(t *testing.T) {
	mode := &recordingMode{view: View{Location: common.Vec3{1, 0, 0}, FieldOfView: 60}}
	c := NewCamera(WithMode(mode))

	c.Update(0.016)
	c.Update(0.016)
	assert.Equal(t, 2, mode.updates)
	assert.Equal(t, mode.view, c.View())
	assert.Equal(t, []string{"recording"}, c.DrawDebug())
}
