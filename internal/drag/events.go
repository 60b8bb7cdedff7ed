package drag

import "room3d/internal/engine"

type EventType int

const (
	HoverOn EventType = iota
	HoverOff
	DragStart
	DragEnd

	eventTypeCount
)

func (t EventType) String() string {
	switch t {
	case HoverOn:
		return "hoveron"
	case HoverOff:
		return "hoveroff"
	case DragStart:
		return "dragstart"
	case DragEnd:
		return "dragend"
	}
	return "unknown"
}

// Event is delivered to listeners on every lifecycle transition.
type Event struct {
	Type   EventType
	Object *engine.GameObject
}

// Listeners is a registry of callbacks keyed by event type.
type Listeners struct {
	events [eventTypeCount]engine.EventWithArg[Event]
}

// Add subscribes fn to events of type t. The returned ID removes it again.
func (l *Listeners) Add(t EventType, fn func(Event)) engine.ListenerID {
	if t < 0 || t >= eventTypeCount {
		return engine.ListenerID{}
	}
	return l.events[t].AddListener(fn)
}

func (l *Listeners) Remove(t EventType, id engine.ListenerID) bool {
	if t < 0 || t >= eventTypeCount {
		return false
	}
	return l.events[t].RemoveListener(id)
}

func (l *Listeners) emit(t EventType, obj *engine.GameObject) {
	l.events[t].Invoke(Event{Type: t, Object: obj})
}
