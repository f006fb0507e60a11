package store

import (
	"context"
	"fmt"

	"tableflip.dev/moodlog/pkg/entry"
)

// Persistence defines the persistence contract for the mood log. The log is
// append-only: every call is a round trip to the backing store, there is no
// local caching, and failed writes are reported, not queued.
type Persistence interface {
	Append(ctx context.Context, e *entry.Entry) error
	ReadAll(ctx context.Context) ([]*entry.Entry, error)
}

// Watcher is implemented by backends that can notify about out-of-process
// changes to the log.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	BackendLocal  = "local"
	BackendSheets = "sheets"
)

// Load constructs a Persistence from config. The handle is created once at
// startup and passed around explicitly; there is no hidden memoization.
func Load(ctx context.Context, cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case BackendSheets:
		return NewSheets(ctx, cfg)
	case "", BackendLocal:
		return NewLocal(cfg)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}
