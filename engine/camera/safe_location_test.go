package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-modalcam/common"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/actor"
	"github.com/Carmen-Shannon/oxy-modalcam/engine/collision"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSafeLocationClampsToCollisionHeight(t *testing.T) {
	a := actor.NewActor(
		actor.WithName("pawn"),
		actor.WithLocation(0, 0, 100),
		actor.WithBoxCollider(50, 50, 50),
	)
	world := collision.NewWorld(collision.WithActors(a))

	safe, ok := ResolveSafeLocation(world, a, common.Vec3{-500, 0, 300}, common.Rotator{}, 2)
	require.True(t, ok)

	assertVec(t, common.Vec3{0, 0, 300}, safe.ClosestPointOnAimLine)
	assertVec(t, common.Vec3{0, 0, 148}, safe.Location)
	assertVec(t, common.Vec3{0, 0, 150}, safe.ClosestPointOnCollision)
	assert.InDelta(t, 22500, safe.DistanceSqrToCollision, 0.5)
}

func TestResolveSafeLocationFollowsAimHeightInsideCollision(t *testing.T) {
	a := actor.NewActor(actor.WithLocation(10, 20, 100), actor.WithBoxCollider(50, 50, 50))

	safe, ok := ResolveSafeLocation(nil, a, common.Vec3{-500, 20, 120}, common.Rotator{}, 2)
	require.True(t, ok)

	assertVec(t, common.Vec3{10, 20, 120}, safe.Location)
	// without a query the surface point falls back to the aim line point
	assert.Equal(t, safe.ClosestPointOnAimLine, safe.ClosestPointOnCollision)
	assert.Zero(t, safe.DistanceSqrToCollision)
}

func TestResolveSafeLocationSkipsMissingCollision(t *testing.T) {
	world := collision.NewWorld()

	_, ok := ResolveSafeLocation(world, nil, common.Vec3{}, common.Rotator{}, 2)
	assert.False(t, ok)

	ghost := actor.NewActor(actor.WithName("ghost"))
	_, ok = ResolveSafeLocation(world, ghost, common.Vec3{}, common.Rotator{}, 2)
	assert.False(t, ok)
}
