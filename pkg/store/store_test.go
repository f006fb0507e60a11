package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

type testConfig struct {
	path string
}

func (t testConfig) Backend() string         { return BackendLocal }
func (t testConfig) BasePath() string        { return t.path }
func (t testConfig) Spreadsheet() string     { return "" }
func (t testConfig) CredentialsFile() string { return "" }
func (t testConfig) CredentialsJSON() string { return "" }

func TestLocalAppendThenReadAll(t *testing.T) {
	ctx := context.Background()
	p, err := Load(ctx, testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	now := time.Date(2024, time.January, 1, 9, 30, 0, 0, entry.Civil())
	e := entry.New(mood.Celebrating, "hello world", now)
	if err := p.Append(ctx, e); err != nil {
		t.Fatalf("append entry: %v", err)
	}

	all, err := p.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(all))
	}
	got := all[0]
	if got.Mood != mood.Celebrating {
		t.Fatalf("expected 🎉, got %s", got.Mood)
	}
	if got.Note != "hello world" {
		t.Fatalf("unexpected note: %q", got.Note)
	}
	if !got.Created.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got.Created)
	}
}

func TestLocalReadAllSortsByCreated(t *testing.T) {
	ctx := context.Background()
	p, err := Load(ctx, testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	base := time.Date(2024, time.January, 10, 12, 0, 0, 0, entry.Civil())
	for _, offset := range []int{3, 1, 2} {
		e := entry.New(mood.Happy, "", base.AddDate(0, 0, offset))
		if err := p.Append(ctx, e); err != nil {
			t.Fatalf("append entry: %v", err)
		}
	}

	all, err := p.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Created.Before(all[i-1].Created.Time) {
			t.Fatalf("entries out of order at %d", i)
		}
	}
}

func TestLocalRepeatedSubmissionsCreateRepeatedRows(t *testing.T) {
	ctx := context.Background()
	p, err := Load(ctx, testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	now := time.Date(2024, time.January, 1, 9, 30, 0, 0, entry.Civil())
	if err := p.Append(ctx, entry.New(mood.Unsure, "same", now)); err != nil {
		t.Fatalf("append entry: %v", err)
	}
	if err := p.Append(ctx, entry.New(mood.Unsure, "same", now.Add(time.Second))); err != nil {
		t.Fatalf("append entry: %v", err)
	}

	all, err := p.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(all))
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	if _, err := Load(context.Background(), unknownConfig{}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

type unknownConfig struct{}

func (unknownConfig) Backend() string         { return "carrier-pigeon" }
func (unknownConfig) BasePath() string        { return "" }
func (unknownConfig) Spreadsheet() string     { return "" }
func (unknownConfig) CredentialsFile() string { return "" }
func (unknownConfig) CredentialsJSON() string { return "" }
