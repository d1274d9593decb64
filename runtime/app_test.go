package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/odvcencio/stagehand/backend"
	"github.com/odvcencio/stagehand/backend/sim"
)

func TestApp_RunAppliesPresentationAndRenders(t *testing.T) {
	be := sim.New(20, 5)
	opts := backend.PresentationOptions{MouseCapture: true, HideCursor: true, Title: "stagehand"}
	app := NewApp(AppConfig{
		Backend:      be,
		Presentation: opts,
	})

	done := make(chan error, 1)
	go func() {
		done <- app.Run(context.Background())
	}()

	waitFor(t, func() bool { return be.ShowCount() > 0 })

	app.Post(KeyMsg{Key: backend.KeyRune, Rune: 'q'})
	app.Quit()
	app.Post(InvalidateMsg{})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("app did not stop")
	}

	if be.Presentation != opts {
		t.Fatalf("expected presentation options applied, got %+v", be.Presentation)
	}
	if be.PresentCalls != 1 {
		t.Fatalf("expected presentation applied once, got %d", be.PresentCalls)
	}
}

func TestApp_TickPublishesFrames(t *testing.T) {
	be := sim.New(10, 4)
	app := NewApp(AppConfig{
		Backend:  be,
		TickRate: 5 * time.Millisecond,
	})

	ticks := make(chan FrameTick, 16)
	app.Frames().SubscribeFrames(func(tick FrameTick) {
		ticks <- tick
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatalf("no frame tick published")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("app did not stop after cancel")
	}
}

func TestApp_QuitCommandStopsLoop(t *testing.T) {
	be := sim.New(10, 4)
	app := NewApp(AppConfig{Backend: be})

	done := make(chan error, 1)
	go func() {
		done <- app.Run(context.Background())
	}()

	waitFor(t, func() bool { return be.ShowCount() > 0 })

	app.ExecuteCommand(Quit{})
	app.Post(InvalidateMsg{})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("app did not stop after quit command")
	}
}

func TestApp_QuitFromOtherGoroutineStopsLoop(t *testing.T) {
	be := sim.New(10, 4)
	app := NewApp(AppConfig{Backend: be})

	done := make(chan error, 1)
	go func() {
		done <- app.Run(context.Background())
	}()

	waitFor(t, func() bool { return be.ShowCount() > 0 })

	// No pending messages or ticks; Quit alone must wake the loop.
	go app.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("app did not stop after Quit")
	}
}

func TestApp_SpawnBeforeRunIsQueued(t *testing.T) {
	be := sim.New(10, 4)
	app := NewApp(AppConfig{Backend: be})

	got := make(chan Message, 1)
	app.Spawn(After(0, InvalidateMsg{}))
	app.update = func(a *App, msg Message) bool {
		select {
		case got <- msg:
		default:
		}
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- app.Run(ctx)
	}()

	select {
	case msg := <-got:
		if _, ok := msg.(InvalidateMsg); !ok {
			t.Fatalf("expected queued effect message, got %T", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("queued effect never delivered")
	}

	cancel()
	<-done
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition never met")
}
