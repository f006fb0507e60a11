package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/store"
)

// Service provides high-level operations over the mood log. It wraps the
// store handle so the TUI and the CLI runners share one code path.
type Service struct {
	Persistence store.Persistence

	// Now is the clock used to stamp entries; nil means time.Now. Tests
	// override it.
	Now func() time.Time
}

var ErrNoWatch = errors.New("app: store does not support watch")

// Log validates the mood, stamps the entry with the current civil time, and
// appends it. Repeated submissions create repeated rows.
func (s *Service) Log(ctx context.Context, m mood.Mood, note string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	if !m.Valid() {
		return nil, errors.New("app: mood must be one of the four fixed symbols")
	}
	e := entry.New(m, strings.TrimSpace(note), s.now())
	if err := s.Persistence.Append(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// History returns every decodable entry in chronological order. Rows the
// store could not decode were already dropped and never show up here.
func (s *Service) History(ctx context.Context) ([]*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.ReadAll(ctx)
}

// Watch subscribes to store change events when the backend supports them.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	w, ok := s.Persistence.(store.Watcher)
	if !ok {
		return nil, ErrNoWatch
	}
	return w.Watch(ctx)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
