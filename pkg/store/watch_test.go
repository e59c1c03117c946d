package store

import (
	"context"
	"testing"
	"time"
)

func TestPersistenceWatchEmitsOnSave(t *testing.T) {
	base := t.TempDir()
	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Save(NewDefaultSnapshot()); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot change event")
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	throttle := newEventThrottle(30 * time.Millisecond)
	defer throttle.Stop()

	got := make(chan Event, 16)
	send := func(ev Event) { got <- ev }

	for i := 0; i < 10; i++ {
		throttle.Enqueue(send)
	}

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("throttle never flushed")
	}

	select {
	case ev := <-got:
		t.Fatalf("burst produced a second event: %v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}
