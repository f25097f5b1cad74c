package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/stretchr/testify/assert"
)

func TestViewPointControllerDefaults(t *testing.T) {
	vc := NewViewPointController()

	assert.Equal(t, float32(500), vc.Radius())
	assert.Equal(t, common.Vec3{}, vc.Target())

	pos := vc.Position()
	assert.InDelta(t, -500*math.Cos(math.Pi/8), pos[0], 1e-2)
	assert.InDelta(t, 0, pos[1], 1e-2)
	assert.InDelta(t, 500*math.Sin(math.Pi/8), pos[2], 1e-2)
}

func TestViewPointControllerLooksAtPivot(t *testing.T) {
	vc := NewViewPointController(WithPivot(0, 0, 90), WithRadius(700), WithElevation(0))

	loc, rot := vc.ViewPoint()
	assertVec(t, common.Vec3{-700, 0, 90}, loc)
	assert.InDelta(t, 0, rot.Pitch, 1e-3)
	assert.InDelta(t, 0, rot.Yaw, 1e-3)

	vc.SetTarget(common.Vec3{100, 0, 90})
	assertVec(t, common.Vec3{-600, 0, 90}, vc.Position())
}

func TestViewPointControllerZoomClamps(t *testing.T) {
	vc := NewViewPointController(WithRadiusBounds(50, 1000), WithZoomSpeed(10))

	vc.Zoom(10)
	assert.Equal(t, float32(400), vc.Radius())

	vc.Zoom(1000)
	assert.Equal(t, float32(50), vc.Radius())

	vc.Zoom(-1000)
	assert.Equal(t, float32(1000), vc.Radius())
}

func TestViewPointControllerOrbit(t *testing.T) {
	vc := NewViewPointController(WithAzimuth(0), WithElevation(0), WithOrbitSpeed(math.Pi/2), WithRadius(100))
	assertVec(t, common.Vec3{100, 0, 0}, vc.Position())

	vc.OrbitRight()
	assertVec(t, common.Vec3{0, 100, 0}, vc.Position())
	vc.OrbitLeft()
	vc.OrbitLeft()
	assertVec(t, common.Vec3{0, -100, 0}, vc.Position())
}

func TestViewPointControllerElevationClamps(t *testing.T) {
	vc := NewViewPointController(WithElevationBounds(-0.5, 0.5), WithOrbitSpeed(0.2), WithElevation(0))

	for i := 0; i < 10; i++ {
		vc.OrbitUp()
	}
	assert.InDelta(t, 500*math.Sin(0.5), vc.Position()[2], 1e-2)

	for i := 0; i < 20; i++ {
		vc.OrbitDown()
	}
	assert.InDelta(t, -500*math.Sin(0.5), vc.Position()[2], 1e-2)
}
