package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

func TestLocalWatchEmitsOnAppend(t *testing.T) {
	base := t.TempDir()
	p, err := Load(context.Background(), testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	w, ok := p.(Watcher)
	if !ok {
		t.Fatalf("local store should support watch")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before appending.
	time.Sleep(50 * time.Millisecond)

	e := entry.New(mood.Happy, "hello world", time.Now())
	if err := p.Append(ctx, e); err != nil {
		t.Fatalf("append entry: %v", err)
	}

	select {
	case _, ok := <-ch:
		if !ok {
			t.Fatal("watch channel closed unexpectedly")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestLocalWatchClosesOnCancel(t *testing.T) {
	p, err := Load(context.Background(), testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	w := p.(Watcher)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := w.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for channel close")
		}
	}
}
