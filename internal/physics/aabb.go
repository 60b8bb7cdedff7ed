package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

func FromBoundingBox(b rl.BoundingBox) AABB {
	return AABB{Min: b.Min, Max: b.Max}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// IntersectRay returns the distance along ray to the first point inside the
// box. A ray starting inside the box hits at distance 0. The direction does
// not need to be normalized; the distance is in units of its length.
func (a AABB) IntersectRay(ray rl.Ray) (float32, bool) {
	o, d := ray.Position, ray.Direction
	tmin := float32(-1e30)
	tmax := float32(1e30)

	slabs := [3][4]float32{
		{o.X, d.X, a.Min.X, a.Max.X},
		{o.Y, d.Y, a.Min.Y, a.Max.Y},
		{o.Z, d.Z, a.Min.Z, a.Max.Z},
	}
	for _, s := range slabs {
		origin, dir, lo, hi := s[0], s[1], s[2], s[3]
		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}
