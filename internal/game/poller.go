package game

import (
	"room3d/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MouseState is one frame's snapshot of the pointer.
type MouseState struct {
	X, Y   float32
	Down   bool
	Inside bool
}

// Poller turns per-frame mouse snapshots into pointer events on a surface.
type Poller struct {
	surface *input.MemorySurface
	last    MouseState
	primed  bool
}

func NewPoller(surface *input.MemorySurface) *Poller {
	return &Poller{surface: surface}
}

// Poll compares m with the previous snapshot and dispatches leave, move,
// down and up events, in that order, for whatever changed.
func (p *Poller) Poll(m MouseState) {
	last := p.last
	first := !p.primed
	p.last, p.primed = m, true

	if !m.Inside {
		if last.Inside {
			p.dispatch(input.PointerLeave, m)
		}
		return
	}

	if first || !last.Inside || m.X != last.X || m.Y != last.Y {
		p.dispatch(input.PointerMove, m)
	}
	if m.Down && !last.Down {
		p.dispatch(input.PointerDown, m)
	}
	if !m.Down && last.Down {
		p.dispatch(input.PointerUp, m)
	}
}

func (p *Poller) dispatch(kind input.EventKind, m MouseState) {
	p.surface.Dispatch(input.PointerEvent{Kind: kind, X: m.X, Y: m.Y, Pointer: input.Mouse})
}

// ReadMouse samples the raylib window's mouse.
func ReadMouse() MouseState {
	pos := rl.GetMousePosition()
	return MouseState{
		X:      pos.X,
		Y:      pos.Y,
		Down:   rl.IsMouseButtonDown(rl.MouseLeftButton),
		Inside: rl.IsCursorOnScreen(),
	}
}
