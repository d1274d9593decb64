package runtime

import (
	"testing"

	"github.com/odvcencio/stagehand/state"
)

func TestQueueScheduler_PostsFlush(t *testing.T) {
	queue := state.NewQueue()
	posted := 0
	scheduler := NewQueueScheduler(queue, func(msg Message) bool {
		if _, ok := msg.(QueueFlushMsg); ok {
			posted++
			return true
		}
		return false
	})

	scheduler.Schedule(func() {})
	if posted != 1 {
		t.Fatalf("expected 1 flush post, got %d", posted)
	}
}

func TestQueueScheduler_CoalescesPosts(t *testing.T) {
	queue := state.NewQueue()
	posted := 0
	scheduler := NewQueueScheduler(queue, func(msg Message) bool {
		if _, ok := msg.(QueueFlushMsg); ok {
			posted++
			return true
		}
		return false
	})

	scheduler.Schedule(func() {})
	scheduler.Schedule(func() {})
	if posted != 1 {
		t.Fatalf("expected 1 flush post, got %d", posted)
	}

	scheduler.resetPending()
	scheduler.Schedule(func() {})
	if posted != 2 {
		t.Fatalf("expected 2 flush posts after reset, got %d", posted)
	}
}

func TestShouldFlushQueue(t *testing.T) {
	if !shouldFlushQueue(FlushManual, QueueFlushMsg{}) {
		t.Fatalf("expected manual policy to flush on QueueFlushMsg")
	}
	if shouldFlushQueue(FlushManual, TickMsg{}) {
		t.Fatalf("expected manual policy to skip ticks")
	}
	if !shouldFlushQueue(FlushOnTick, TickMsg{}) {
		t.Fatalf("expected tick policy to flush on ticks")
	}
	if shouldFlushQueue(FlushOnTick, KeyMsg{}) {
		t.Fatalf("expected tick policy to skip key messages")
	}
	if !shouldFlushQueue(FlushOnMessage, KeyMsg{}) {
		t.Fatalf("expected message policy to flush on key messages")
	}
	if shouldFlushQueue(FlushOnMessage, TickMsg{}) {
		t.Fatalf("expected message policy to skip ticks")
	}
	if !shouldFlushQueue(FlushOnMessageAndTick, TickMsg{}) {
		t.Fatalf("expected default policy to flush on ticks")
	}
}
