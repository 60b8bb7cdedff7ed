package game

import (
	"room3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxUndoStack = 50

// Placement is an object's transform before a drag moved it.
type Placement struct {
	Object   *engine.GameObject
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// History is a capped stack of placements, oldest dropped first.
type History struct {
	stack []Placement
}

// Push saves obj's current transform.
func (h *History) Push(obj *engine.GameObject) {
	// Cap stack size
	if len(h.stack) >= maxUndoStack {
		h.stack = h.stack[1:]
	}
	h.stack = append(h.stack, Placement{
		Object:   obj,
		Position: obj.Transform.Position,
		Rotation: obj.Transform.Rotation,
		Scale:    obj.Transform.Scale,
	})
}

// Settle drops the newest placement when it belongs to obj and obj never
// moved, so clicks without a drag leave nothing to undo.
func (h *History) Settle(obj *engine.GameObject) {
	if len(h.stack) == 0 {
		return
	}
	top := h.stack[len(h.stack)-1]
	if top.Object == obj && top.Position == obj.Transform.Position {
		h.stack = h.stack[:len(h.stack)-1]
	}
}

// Undo restores the newest placement and returns the object it moved.
func (h *History) Undo() *engine.GameObject {
	if len(h.stack) == 0 {
		return nil
	}
	// Pop last state
	state := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]

	state.Object.Transform.Position = state.Position
	state.Object.Transform.Rotation = state.Rotation
	state.Object.Transform.Scale = state.Scale
	return state.Object
}

func (h *History) Len() int { return len(h.stack) }
