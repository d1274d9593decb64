package runtime

import (
	"testing"
	"time"
)

func TestFrameBus_PublishesDelta(t *testing.T) {
	frames := NewFrameBus()
	var ticks []FrameTick

	frames.SubscribeFrames(func(tick FrameTick) {
		ticks = append(ticks, tick)
	})

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	frames.Publish(base)
	frames.Publish(base.Add(16 * time.Millisecond))

	if len(ticks) != 2 {
		t.Fatalf("expected 2 ticks, got %d", len(ticks))
	}
	if ticks[0].Delta != 0 {
		t.Fatalf("expected zero delta on first tick, got %v", ticks[0].Delta)
	}
	if ticks[1].Delta != 16*time.Millisecond {
		t.Fatalf("expected 16ms delta, got %v", ticks[1].Delta)
	}
}

func TestFrameBus_Unsubscribe(t *testing.T) {
	frames := NewFrameBus()
	calls := 0

	unsub := frames.SubscribeFrames(func(FrameTick) { calls++ })
	frames.Publish(time.Now())
	unsub()
	frames.Publish(time.Now())

	if calls != 1 {
		t.Fatalf("expected 1 tick before unsubscribe, got %d", calls)
	}
	if frames.SubscriberCount() != 0 {
		t.Fatalf("expected no subscribers, got %d", frames.SubscriberCount())
	}
}
