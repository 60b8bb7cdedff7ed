package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func approxVec(a, b rl.Vector3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.UID == 0 {
		t.Error("UID should not be 0")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}

	if obj.Bounds != nil {
		t.Error("Plain GameObject should have no bounds")
	}
}

func TestGameObjectUniqueUIDs(t *testing.T) {
	obj1 := NewGameObject("First")
	obj2 := NewGameObject("Second")
	obj3 := NewGameObject("Third")

	if obj1.UID == obj2.UID || obj2.UID == obj3.UID || obj1.UID == obj3.UID {
		t.Error("GameObjects should have unique UIDs")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"furniture", "movable"}

	if !obj.HasTag("furniture") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("wall") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Errorf("Expected child in parent's Children, got %v", parent.Children)
	}
}

func TestGameObjectReparent(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")
	child := NewGameObject("Child")

	a.AddChild(child)
	b.AddChild(child)

	if len(a.Children) != 0 {
		t.Errorf("Old parent should lose child, has %d", len(a.Children))
	}
	if child.Parent != b {
		t.Error("Child should belong to new parent")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestWorldPositionWithParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: -5}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	parent.AddChild(child)

	want := rl.Vector3{X: 12, Y: 4, Z: 1}
	if got := child.WorldPosition(); !approxVec(got, want) {
		t.Errorf("Expected world position %v, got %v", want, got)
	}
}

func TestWorldPositionRotatedParent(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Rotation = rl.Vector3{Y: 90}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1}
	parent.AddChild(child)

	// Rotating +X by 90 degrees about Y lands on -Z.
	want := rl.Vector3{Z: -1}
	if got := child.WorldPosition(); !approxVec(got, want) {
		t.Errorf("Expected world position %v, got %v", want, got)
	}
}

func TestParentInverseRoundTrip(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 3, Y: -2, Z: 7}
	parent.Transform.Scale = rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 4, Y: 6, Z: -8}
	parent.AddChild(child)

	local := rl.Vector3Transform(child.WorldPosition(), child.ParentInverse())
	if !approxVec(local, child.Transform.Position) {
		t.Errorf("Expected local position %v, got %v", child.Transform.Position, local)
	}

	root := NewGameObject("Root")
	if root.ParentInverse() != rl.MatrixIdentity() {
		t.Error("Root object should have identity parent inverse")
	}
}

func TestWorldBounds(t *testing.T) {
	box := NewBox("Crate", rl.Vector3{X: 2, Y: 4, Z: 6})
	box.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}
	box.Transform.Scale = rl.Vector3{X: 3, Y: 1, Z: 1}

	bounds, ok := box.WorldBounds()
	if !ok {
		t.Fatal("Box should have bounds")
	}

	if !approxVec(bounds.Min, rl.Vector3{X: 7, Y: -2, Z: -3}) {
		t.Errorf("Unexpected min %v", bounds.Min)
	}
	if !approxVec(bounds.Max, rl.Vector3{X: 13, Y: 2, Z: 3}) {
		t.Errorf("Unexpected max %v", bounds.Max)
	}

	if _, ok := NewGameObject("Empty").WorldBounds(); ok {
		t.Error("Object without bounds should report ok=false")
	}
}
