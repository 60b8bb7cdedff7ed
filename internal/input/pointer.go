// Package input describes pointer events, the surface that delivers them,
// and the conversion from pixel coordinates to normalized device coordinates.
package input

type PointerType int

const (
	Mouse PointerType = iota
	Pen
	Touch
)

func (p PointerType) String() string {
	switch p {
	case Mouse:
		return "mouse"
	case Pen:
		return "pen"
	case Touch:
		return "touch"
	}
	return "unknown"
}

// CanHover reports whether the pointer can move without contact.
// Touch pointers only exist while pressed, so they never hover.
func (p PointerType) CanHover() bool {
	return p == Mouse || p == Pen
}

type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave

	eventKindCount
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	case PointerLeave:
		return "pointerleave"
	}
	return "unknown"
}

// PointerEvent carries pixel coordinates relative to the window, the same
// space as the surface bounds.
type PointerEvent struct {
	Kind    EventKind
	X, Y    float32
	Pointer PointerType
}

// Rect is a pixel rectangle.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Sample is a pointer position in normalized device coordinates. Both axes
// span [-1, 1]; Y grows upward.
type Sample struct {
	X, Y float32
}

// Normalize maps pixel coordinates inside r to normalized device
// coordinates. A degenerate rectangle maps everything to the center.
func Normalize(x, y float32, r Rect) Sample {
	var s Sample
	if r.Width > 0 {
		s.X = (x-r.X)/r.Width*2 - 1
	}
	if r.Height > 0 {
		s.Y = -(y-r.Y)/r.Height*2 + 1
	}
	return s
}

// Cursor is the pointer affordance a surface should show.
type Cursor int

const (
	CursorAuto Cursor = iota
	CursorPointer
	CursorMove
)

func (c Cursor) String() string {
	switch c {
	case CursorPointer:
		return "pointer"
	case CursorMove:
		return "move"
	}
	return "auto"
}
