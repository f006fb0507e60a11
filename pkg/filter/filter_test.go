package filter

import (
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

func at(day string) *entry.Entry {
	t, err := entry.ParseTime(day+" 12:00:00", entry.Civil())
	if err != nil {
		panic(err)
	}
	return &entry.Entry{Created: entry.Timestamp{Time: t}, Mood: mood.Happy}
}

func date(day string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", day, entry.Civil())
	if err != nil {
		panic(err)
	}
	return t
}

func TestDay(t *testing.T) {
	entries := []*entry.Entry{at("2024-01-01"), at("2024-01-01"), at("2024-01-02")}

	got := Day(entries, date("2024-01-01"))
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	got = Day(entries, date("2024-01-02"))
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}

	got = Day(entries, date("2024-01-03"))
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestRangeInclusiveEndpoints(t *testing.T) {
	entries := []*entry.Entry{
		at("2023-12-31"),
		at("2024-01-01"),
		at("2024-01-15"),
		at("2024-01-31"),
		at("2024-02-01"),
	}

	got, err := Range(entries, date("2024-01-01"), date("2024-01-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if !got[0].Created.SameDay(date("2024-01-01")) {
		t.Fatalf("expected the range start to be included")
	}
	if !got[2].Created.SameDay(date("2024-01-31")) {
		t.Fatalf("expected the range end to be included")
	}
}

func TestRangeIncomplete(t *testing.T) {
	entries := []*entry.Entry{at("2024-01-01")}

	if _, err := Range(entries, time.Time{}, date("2024-01-31")); err != ErrIncompleteRange {
		t.Fatalf("expected ErrIncompleteRange, got %v", err)
	}
	if _, err := Range(entries, date("2024-01-01"), time.Time{}); err != ErrIncompleteRange {
		t.Fatalf("expected ErrIncompleteRange, got %v", err)
	}
}
