package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const parallelEpsilon = 1e-6

// Plane is an infinite plane through Point with unit Normal.
type Plane struct {
	Normal rl.Vector3
	Point  rl.Vector3
}

// NewPlane builds a plane through point facing normal. The normal is
// normalized; a zero normal yields a plane no ray can hit.
func NewPlane(normal, point rl.Vector3) Plane {
	return Plane{Normal: rl.Vector3Normalize(normal), Point: point}
}

// IntersectRay returns where ray hits the plane. Rays parallel to the plane,
// or pointing away from it, miss.
func (p Plane) IntersectRay(ray rl.Ray) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(ray.Direction, p.Normal)
	if math32.Abs(denom) < parallelEpsilon {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p.Point, ray.Position), p.Normal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)), true
}
