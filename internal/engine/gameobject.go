package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Matrix returns the local transform: scale, then rotate X, Y, Z, then translate.
func (t Transform) Matrix() rl.Matrix {
	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	rot := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	translate := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), translate)
}

type GameObject struct {
	UID       uint64
	Name      string
	Tags      []string
	Transform Transform
	Active    bool
	Scene     *Scene
	Parent    *GameObject
	Children  []*GameObject

	// Bounds is the object's own bounding box in local space. Objects
	// without bounds are never hit by rays, but their children can be.
	Bounds *rl.BoundingBox
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		Children: make([]*GameObject, 0),
	}
}

// NewBox creates an object with a bounding box of the given full size
// centered on its origin.
func NewBox(name string, size rl.Vector3) *GameObject {
	g := NewGameObject(name)
	half := rl.Vector3Scale(size, 0.5)
	g.Bounds = &rl.BoundingBox{
		Min: rl.Vector3Negate(half),
		Max: half,
	}
	return g
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// WorldMatrix returns the transform from this object's local space to world space.
func (g *GameObject) WorldMatrix() rl.Matrix {
	local := g.Transform.Matrix()
	if g.Parent == nil {
		return local
	}
	return rl.MatrixMultiply(local, g.Parent.WorldMatrix())
}

// ParentInverse returns the transform from world space into the space the
// object's local Position is expressed in. Root objects get identity.
func (g *GameObject) ParentInverse() rl.Matrix {
	if g.Parent == nil {
		return rl.MatrixIdentity()
	}
	return rl.MatrixInvert(g.Parent.WorldMatrix())
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	m := g.WorldMatrix()
	return rl.Vector3{X: m.M12, Y: m.M13, Z: m.M14}
}

// WorldBounds returns the axis-aligned box enclosing the object's local
// bounds after the world transform. ok is false when the object has no bounds.
func (g *GameObject) WorldBounds() (box rl.BoundingBox, ok bool) {
	if g.Bounds == nil {
		return rl.BoundingBox{}, false
	}
	m := g.WorldMatrix()
	lo, hi := g.Bounds.Min, g.Bounds.Max

	for i := range 8 {
		corner := rl.Vector3{X: lo.X, Y: lo.Y, Z: lo.Z}
		if i&1 != 0 {
			corner.X = hi.X
		}
		if i&2 != 0 {
			corner.Y = hi.Y
		}
		if i&4 != 0 {
			corner.Z = hi.Z
		}
		p := rl.Vector3Transform(corner, m)
		if i == 0 {
			box = rl.BoundingBox{Min: p, Max: p}
			continue
		}
		box.Min = rl.Vector3Min(box.Min, p)
		box.Max = rl.Vector3Max(box.Max, p)
	}
	return box, true
}
