package drag

import (
	"room3d/internal/engine"
	"room3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Boundary is an axis-aligned rectangle on the horizontal X/Z plane.
type Boundary struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
}

// Constraints restrict where a dragged object may be placed.
type Constraints struct {
	// GridSize is the snapping cell size on X and Z. Zero disables snapping.
	GridSize float32
	// FixedY replaces the vertical coordinate of every placement.
	FixedY   float32
	Boundary Boundary
}

func DefaultConstraints() Constraints {
	return Constraints{
		GridSize: 50,
		FixedY:   25,
		Boundary: Boundary{MinX: -400, MaxX: 400, MinZ: -400, MaxZ: 400},
	}
}

// Snap rounds v to the nearest multiple of grid, halves rounding up.
func Snap(v, grid float32) float32 {
	if grid <= 0 {
		return v
	}
	return math32.Floor(v/grid+0.5) * grid
}

// Resolve applies snapping, the vertical lock and boundary clamping to pos,
// in that order. halfX and halfZ are the object's half extents; clamping
// keeps pos ± half inside the boundary. An object wider than the boundary
// ends up flush with the max edge.
func (c Constraints) Resolve(pos rl.Vector3, halfX, halfZ float32) rl.Vector3 {
	pos.X = Snap(pos.X, c.GridSize)
	pos.Z = Snap(pos.Z, c.GridSize)

	pos.Y = c.FixedY

	b := c.Boundary
	if pos.X-halfX < b.MinX {
		pos.X = b.MinX + halfX
	}
	if pos.X+halfX > b.MaxX {
		pos.X = b.MaxX - halfX
	}
	if pos.Z-halfZ < b.MinZ {
		pos.Z = b.MinZ + halfZ
	}
	if pos.Z+halfZ > b.MaxZ {
		pos.Z = b.MaxZ - halfZ
	}
	return pos
}

// HalfExtents returns half the width and depth of obj's world-space box.
// The box follows obj's rotation and the scale of obj and its ancestors.
func HalfExtents(obj *engine.GameObject) (halfX, halfZ float32) {
	bounds, ok := obj.WorldBounds()
	if !ok {
		return 0, 0
	}
	size := physics.FromBoundingBox(bounds).Size()
	return size.X / 2, size.Z / 2
}
