package camera

import (
	"testing"

	"room3d/internal/engine"
	"room3d/internal/input"
	"room3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, "X")
	assert.InDelta(t, want.Y, got.Y, 1e-4, "Y")
	assert.InDelta(t, want.Z, got.Z, 1e-4, "Z")
}

func levelCamera() *Camera {
	c := New(rl.Vector3{Z: 10})
	c.Yaw = -90
	c.Pitch = 0
	c.Fovy = 90
	c.Aspect = 2
	return c
}

func TestBasis(t *testing.T) {
	c := levelCamera()

	assertVec(t, rl.Vector3{Z: -1}, c.Forward())
	assertVec(t, rl.Vector3{X: 1}, c.Right())
	assertVec(t, rl.Vector3{Y: 1}, c.Up())
}

func TestScreenRayCenter(t *testing.T) {
	c := levelCamera()

	ray := c.ScreenRay(input.Sample{})
	assert.Equal(t, c.Position, ray.Position)
	assertVec(t, c.Forward(), ray.Direction)
}

func TestScreenRayEdges(t *testing.T) {
	c := levelCamera()

	// fovy 90 => tan(45°) = 1, so the top edge leans 45° up.
	top := c.ScreenRay(input.Sample{Y: 1})
	assertVec(t, rl.Vector3Normalize(rl.Vector3{Y: 1, Z: -1}), top.Direction)

	// aspect 2 => the right edge leans twice as far sideways.
	right := c.ScreenRay(input.Sample{X: 1})
	assertVec(t, rl.Vector3Normalize(rl.Vector3{X: 2, Z: -1}), right.Direction)
}

func TestLookClampsPitch(t *testing.T) {
	c := levelCamera()
	c.LookSpeed = 1

	c.Look(10, -200)
	assert.Equal(t, float32(-80), c.Yaw)
	assert.Equal(t, float32(89), c.Pitch)

	c.Look(0, 500)
	assert.Equal(t, float32(-89), c.Pitch)
}

func TestMoveIfClear(t *testing.T) {
	c := levelCamera()
	c.Position = rl.Vector3{}
	wall := engine.NewBox("wall", rl.Vector3{X: 10, Y: 10, Z: 1})
	wall.Transform.Position = rl.Vector3{Z: -3}
	objects := []*engine.GameObject{wall}
	rc := physics.NewRaycaster()

	assert.True(t, c.MoveIfClear(rl.Vector3{Z: -1}, rc, objects))
	assertVec(t, rl.Vector3{Z: -1}, c.Position)

	// Wall face is at z=-2.5; from z=-2 it is 0.5 away, less than the step.
	assert.False(t, c.MoveIfClear(rl.Vector3{Z: -1}, rc, objects))
	assertVec(t, rl.Vector3{Z: -1}, c.Position)

	assert.True(t, c.MoveIfClear(rl.Vector3{X: 1}, rc, objects))
	assertVec(t, rl.Vector3{X: 1, Z: -1}, c.Position)
}

func TestGetRaylibCamera(t *testing.T) {
	c := levelCamera()
	rc := c.GetRaylibCamera()

	assert.Equal(t, c.Position, rc.Position)
	assertVec(t, rl.Vector3{Z: 9}, rc.Target)
	assert.Equal(t, float32(90), rc.Fovy)
	assert.Equal(t, rl.CameraPerspective, rc.Projection)
	assertVec(t, rl.Vector3{Y: 1}, rc.Up)

	c.Roll = 90
	assertVec(t, rl.Vector3{X: -1}, c.GetRaylibCamera().Up)
}

func TestRollTurnsBasis(t *testing.T) {
	c := levelCamera()
	c.Roll = 90

	assertVec(t, rl.Vector3{Z: -1}, c.Forward())
	assertVec(t, rl.Vector3{Y: 1}, c.Right())
	assertVec(t, rl.Vector3{X: -1}, c.Up())

	// The right edge of the screen now points up the world.
	right := c.ScreenRay(input.Sample{X: 1})
	assertVec(t, rl.Vector3Normalize(rl.Vector3{Y: 2, Z: -1}), right.Direction)
}

func TestRotate(t *testing.T) {
	c := levelCamera()
	c.RollSpeed = 90

	c.Rotate(1, 0.5)
	assert.InDelta(t, 45, c.Roll, 1e-4)

	c.Rotate(-1, 1)
	assert.InDelta(t, -45, c.Roll, 1e-4)

	for range 8 {
		c.Rotate(1, 1)
	}
	assert.InDelta(t, 315, c.Roll, 1e-3, "roll wraps at a full turn")
}

func TestPan(t *testing.T) {
	c := levelCamera()
	c.PanSpeed = 0.5

	c.Pan(10, 4)
	assert.Equal(t, rl.Vector3{X: -5, Y: 2, Z: 10}, c.Position)
}
