package camera

import (
	"room3d/internal/engine"
	"room3d/internal/input"
	"room3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// Camera is a yaw/pitch perspective camera.
type Camera struct {
	Position  rl.Vector3
	Yaw       float32 // degrees, 0 looks down +X, 90 down +Z
	Pitch     float32 // degrees, clamped to ±89
	Roll      float32 // degrees about the view axis
	Fovy      float32 // vertical field of view in degrees
	Aspect    float32 // width / height
	Near, Far float32
	MoveSpeed float32
	LookSpeed float32
	PanSpeed  float32
	RollSpeed float32 // degrees per second
}

func New(pos rl.Vector3) *Camera {
	return &Camera{
		Position:  pos,
		Yaw:       -90.0,
		Pitch:     -30.0,
		Fovy:      45,
		Aspect:    16.0 / 9.0,
		Near:      1,
		Far:       1000,
		MoveSpeed: 8.0, // Units per second
		LookSpeed: 0.1,
		PanSpeed:  1,
		RollSpeed: 90,
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() rl.Vector3 {
	yaw := c.Yaw * rl.Deg2rad
	pitch := c.Pitch * rl.Deg2rad
	return rl.Vector3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}
}

// Right returns the unit vector pointing to the right of the view, rolled
// about the view axis.
func (c *Camera) Right() rl.Vector3 {
	forward := c.Forward()
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, worldUp))
	if c.Roll == 0 {
		return right
	}
	// Positive roll tips the right vector toward the unrolled up vector.
	up := rl.Vector3CrossProduct(right, forward)
	sin, cos := math32.Sincos(c.Roll * rl.Deg2rad)
	return rl.Vector3Add(rl.Vector3Scale(right, cos), rl.Vector3Scale(up, sin))
}

// Up returns the unit vector pointing to the top of the view.
func (c *Camera) Up() rl.Vector3 {
	return rl.Vector3CrossProduct(c.Right(), c.Forward())
}

// ScreenRay returns the world-space ray through the normalized screen point s.
func (c *Camera) ScreenRay(s input.Sample) rl.Ray {
	tanHalf := math32.Tan(c.Fovy * rl.Deg2rad / 2)
	dir := c.Forward()
	dir = rl.Vector3Add(dir, rl.Vector3Scale(c.Right(), s.X*tanHalf*c.Aspect))
	dir = rl.Vector3Add(dir, rl.Vector3Scale(c.Up(), s.Y*tanHalf))
	return rl.Ray{Position: c.Position, Direction: rl.Vector3Normalize(dir)}
}

// Look turns the camera by a mouse delta in pixels.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.LookSpeed
	c.Pitch -= dy * c.LookSpeed

	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Pan slides the camera across the world X/Y plane by a mouse delta in
// pixels: dragging right moves the view left, dragging down moves it up.
func (c *Camera) Pan(dx, dy float32) {
	c.Position.X -= dx * c.PanSpeed
	c.Position.Y += dy * c.PanSpeed
}

// Rotate rolls the camera by RollSpeed*dir*deltaTime degrees. A positive
// dir turns the camera counterclockwise, so the scene appears to turn
// clockwise.
func (c *Camera) Rotate(dir, deltaTime float32) {
	c.Roll = math32.Mod(c.Roll+dir*c.RollSpeed*deltaTime, 360)
}

// MoveIfClear moves the camera by delta unless an object lies closer than
// the length of delta along any of its axis components, measured from the
// moved position. It reports whether the move was kept.
func (c *Camera) MoveIfClear(delta rl.Vector3, rc *physics.Raycaster, objects []*engine.GameObject) bool {
	original := c.Position
	c.Position = rl.Vector3Add(c.Position, delta)
	limit := rl.Vector3Length(delta)

	axes := [3]rl.Vector3{
		{X: delta.X},
		{Y: delta.Y},
		{Z: delta.Z},
	}
	for _, axis := range axes {
		if axis == (rl.Vector3{}) {
			continue
		}
		ray := rl.Ray{Position: c.Position, Direction: rl.Vector3Normalize(axis)}
		if hit, ok := rc.Closest(ray, objects); ok && hit.Distance < limit {
			c.Position = original
			return false
		}
	}
	return true
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     rl.Vector3Add(c.Position, c.Forward()),
		Up:         c.Up(),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
