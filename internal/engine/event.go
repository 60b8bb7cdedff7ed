package engine

import "github.com/google/uuid"

// ListenerID identifies a subscription so it can be removed later.
// Go funcs are not comparable, so removal goes through the ID.
type ListenerID = uuid.UUID

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// EventWithArg is a multi-cast event carrying one argument.
type EventWithArg[T any] struct {
	listeners []listener[T]
}

// AddListener subscribes callback and returns its ID. A nil callback is
// ignored and yields uuid.Nil.
func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return uuid.Nil
	}
	id := uuid.New()
	e.listeners = append(e.listeners, listener[T]{id: id, fn: callback})
	return id
}

// RemoveListener unsubscribes the listener with the given ID and reports
// whether it was registered.
func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	for i, l := range e.listeners {
		if l.id != id {
			continue
		}
		// Copy so an Invoke in progress keeps iterating its own snapshot.
		next := make([]listener[T], 0, len(e.listeners)-1)
		next = append(next, e.listeners[:i]...)
		next = append(next, e.listeners[i+1:]...)
		e.listeners = next
		return true
	}
	return false
}

// Invoke calls every listener in subscription order.
func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}
