package engine

import (
	"testing"

	"github.com/google/uuid"
)

func TestEventInvokeOrder(t *testing.T) {
	var ev EventWithArg[int]
	var got []int

	ev.AddListener(func(v int) { got = append(got, v*10) })
	ev.AddListener(func(v int) { got = append(got, v*100) })

	ev.Invoke(2)

	if len(got) != 2 || got[0] != 20 || got[1] != 200 {
		t.Errorf("Expected [20 200], got %v", got)
	}
}

func TestEventNilListenerIgnored(t *testing.T) {
	var ev EventWithArg[string]

	if id := ev.AddListener(nil); id != uuid.Nil {
		t.Errorf("Expected nil ID for nil callback, got %s", id)
	}
	ev.Invoke("no listeners") // Should not panic
}

func TestEventRemoveListener(t *testing.T) {
	var ev EventWithArg[int]
	calls := 0

	id := ev.AddListener(func(int) { calls++ })
	ev.AddListener(func(int) { calls += 10 })

	if !ev.RemoveListener(id) {
		t.Fatal("RemoveListener should report a registered listener")
	}
	if ev.RemoveListener(id) {
		t.Error("Second RemoveListener should report false")
	}

	ev.Invoke(0)
	if calls != 10 {
		t.Errorf("Expected only the remaining listener to run, calls=%d", calls)
	}
}

func TestEventRemoveDuringInvoke(t *testing.T) {
	var ev EventWithArg[int]
	calls := 0

	var first ListenerID
	first = ev.AddListener(func(int) {
		calls++
		ev.RemoveListener(first)
	})
	ev.AddListener(func(int) { calls++ })

	ev.Invoke(0)
	if calls != 2 {
		t.Errorf("Both listeners should run during the invoke that removed one, calls=%d", calls)
	}

	ev.Invoke(0)
	if calls != 3 {
		t.Errorf("Removed listener should not run again, calls=%d", calls)
	}
}
