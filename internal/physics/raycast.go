package physics

import (
	"slices"

	"room3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Distance   float32
}

// Raycaster tests rays against object bounds.
type Raycaster struct {
	// Recursive also tests the children of every candidate.
	Recursive bool
	// Hits closer than Near or farther than Far are discarded.
	Near float32
	Far  float32
}

func NewRaycaster() *Raycaster {
	return &Raycaster{
		Recursive: true,
		Near:      0,
		Far:       math32.Inf(1),
	}
}

// IntersectObjects returns every hit of ray against objects, nearest first.
// Inactive objects are skipped along with their children. Objects without
// bounds never produce a hit themselves.
func (r *Raycaster) IntersectObjects(ray rl.Ray, objects []*engine.GameObject) []RaycastHit {
	ray.Direction = rl.Vector3Normalize(ray.Direction)
	if ray.Direction == (rl.Vector3{}) {
		return nil
	}

	var hits []RaycastHit
	for _, obj := range objects {
		hits = r.intersectObject(ray, obj, hits)
	}
	slices.SortStableFunc(hits, func(a, b RaycastHit) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})
	return hits
}

// Closest returns the nearest hit of ray against objects.
func (r *Raycaster) Closest(ray rl.Ray, objects []*engine.GameObject) (RaycastHit, bool) {
	hits := r.IntersectObjects(ray, objects)
	if len(hits) == 0 {
		return RaycastHit{}, false
	}
	return hits[0], true
}

func (r *Raycaster) intersectObject(ray rl.Ray, obj *engine.GameObject, hits []RaycastHit) []RaycastHit {
	if obj == nil || !obj.Active {
		return hits
	}
	if bounds, ok := obj.WorldBounds(); ok {
		if t, hit := FromBoundingBox(bounds).IntersectRay(ray); hit && t >= r.Near && t <= r.Far {
			hits = append(hits, RaycastHit{
				GameObject: obj,
				Point:      rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t)),
				Distance:   t,
			})
		}
	}
	if r.Recursive {
		for _, child := range obj.Children {
			hits = r.intersectObject(ray, child, hits)
		}
	}
	return hits
}
