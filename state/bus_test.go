package state

import "testing"

func TestBus_DeliveryOrder(t *testing.T) {
	bus := NewBus[string]()
	var observed []string

	bus.Subscribe(func(event string) {
		observed = append(observed, event)
	})

	bus.Emit("pulse")
	bus.Emit("scatter")
	bus.Emit("pulse")

	if len(observed) != 3 || observed[0] != "pulse" || observed[1] != "scatter" || observed[2] != "pulse" {
		t.Fatalf("unexpected event sequence: %v", observed)
	}
}

func TestBus_SubscriberOrder(t *testing.T) {
	bus := NewBus[int]()
	var order []string

	bus.Subscribe(func(int) { order = append(order, "first") })
	bus.Subscribe(func(int) { order = append(order, "second") })

	bus.Emit(1)
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected delivery order: %v", order)
	}
}

func TestBus_NoReplay(t *testing.T) {
	bus := NewBus[int]()

	bus.Emit(1)

	calls := 0
	bus.Subscribe(func(int) { calls++ })
	if calls != 0 {
		t.Fatalf("expected no replay of past events, got %d", calls)
	}

	bus.Emit(2)
	if calls != 1 {
		t.Fatalf("expected only the post-subscribe event, got %d", calls)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus[int]()
	calls := 0

	unsub := bus.Subscribe(func(int) { calls++ })
	bus.Emit(1)
	unsub()
	bus.Emit(2)
	unsub()

	if calls != 1 {
		t.Fatalf("expected 1 delivery before unsubscribe, got %d", calls)
	}
	if bus.SubscriberCount() != 0 {
		t.Fatalf("expected no live subscribers, got %d", bus.SubscriberCount())
	}
}

func TestBus_PanicIsolation(t *testing.T) {
	bus := NewBus[int]()
	calls := 0

	bus.Subscribe(func(int) { panic("boom") })
	bus.Subscribe(func(int) { calls++ })

	bus.Emit(1)
	if calls != 1 {
		t.Fatalf("expected delivery past a panicking subscriber, got %d", calls)
	}
}

func TestBus_SubscribeWithScheduler(t *testing.T) {
	bus := NewBus[int]()
	queue := NewQueue()
	var observed []int

	bus.SubscribeWithScheduler(queue, func(event int) {
		observed = append(observed, event)
	})

	bus.Emit(7)
	if len(observed) != 0 {
		t.Fatalf("expected event to be queued, got %v", observed)
	}
	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 queued delivery, got %d", flushed)
	}
	if len(observed) != 1 || observed[0] != 7 {
		t.Fatalf("expected queued event 7, got %v", observed)
	}
}
