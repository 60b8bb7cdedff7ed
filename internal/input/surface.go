package input

type Handler func(PointerEvent)

type HandlerID uint64

// Surface is the area pointer events originate from.
type Surface interface {
	Bounds() Rect
	On(kind EventKind, h Handler) HandlerID
	Off(kind EventKind, id HandlerID)
	// SetGestures toggles the platform's default gestures (touch scroll,
	// pinch zoom) on the surface.
	SetGestures(enabled bool)
	SetCursor(c Cursor)
}

type handlerEntry struct {
	id HandlerID
	h  Handler
}

// MemorySurface is a Surface fed by explicit Dispatch calls. The raylib
// poller drives one from the window's mouse state, tests drive one directly.
type MemorySurface struct {
	bounds   Rect
	handlers [eventKindCount][]handlerEntry
	nextID   HandlerID
	gestures bool
	cursor   Cursor
}

func NewMemorySurface(bounds Rect) *MemorySurface {
	return &MemorySurface{bounds: bounds, gestures: true}
}

func (s *MemorySurface) Bounds() Rect { return s.bounds }

func (s *MemorySurface) SetBounds(r Rect) { s.bounds = r }

func (s *MemorySurface) On(kind EventKind, h Handler) HandlerID {
	if h == nil || kind < 0 || kind >= eventKindCount {
		return 0
	}
	s.nextID++
	s.handlers[kind] = append(s.handlers[kind], handlerEntry{id: s.nextID, h: h})
	return s.nextID
}

func (s *MemorySurface) Off(kind EventKind, id HandlerID) {
	if kind < 0 || kind >= eventKindCount {
		return
	}
	list := s.handlers[kind]
	for i, e := range list {
		if e.id == id {
			next := make([]handlerEntry, 0, len(list)-1)
			next = append(next, list[:i]...)
			s.handlers[kind] = append(next, list[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to every handler registered for its kind.
func (s *MemorySurface) Dispatch(ev PointerEvent) {
	if ev.Kind < 0 || ev.Kind >= eventKindCount {
		return
	}
	for _, e := range s.handlers[ev.Kind] {
		e.h(ev)
	}
}

// HandlerCount returns how many handlers are registered for kind.
func (s *MemorySurface) HandlerCount(kind EventKind) int {
	if kind < 0 || kind >= eventKindCount {
		return 0
	}
	return len(s.handlers[kind])
}

func (s *MemorySurface) SetGestures(enabled bool) { s.gestures = enabled }

func (s *MemorySurface) Gestures() bool { return s.gestures }

func (s *MemorySurface) SetCursor(c Cursor) { s.cursor = c }

func (s *MemorySurface) Cursor() Cursor { return s.cursor }
