package entry

import (
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/mood"
)

func TestParseRow(t *testing.T) {
	e, err := ParseRow([]string{"2024-01-01 09:30:00", "🎉", "shipped it"}, Civil())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Mood != mood.Celebrating {
		t.Fatalf("expected 🎉, got %s", e.Mood)
	}
	if e.Note != "shipped it" {
		t.Fatalf("unexpected note: %q", e.Note)
	}
	if got := e.Created.Format(Layout); got != "2024-01-01 09:30:00" {
		t.Fatalf("unexpected timestamp: %s", got)
	}
	if e.Created.Location() != Civil() {
		t.Fatalf("expected civil zone, got %v", e.Created.Location())
	}
}

func TestParseRowNoNote(t *testing.T) {
	e, err := ParseRow([]string{"2024-01-01 09:30:00", "😊"}, Civil())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Note != "" {
		t.Fatalf("expected empty note, got %q", e.Note)
	}
}

func TestParseRowRejectsBadRows(t *testing.T) {
	cases := [][]string{
		{},
		{"2024-01-01 09:30:00"},
		{"not a timestamp", "😊", ""},
		{"2024-13-40 99:00:00", "😊", ""},
		{"2024-01-01 09:30:00", "🤖", ""},
		{"2024-01-01 09:30:00", "", ""},
	}
	for _, cols := range cases {
		if _, err := ParseRow(cols, Civil()); err == nil {
			t.Fatalf("expected error for %v", cols)
		}
	}
}

func TestRowRoundTrip(t *testing.T) {
	now := time.Date(2024, time.March, 5, 18, 4, 9, 0, Civil())
	e := New(mood.Angry, "meeting ran long", now)
	row := e.Row()
	back, err := ParseRow(row, Civil())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Mood != e.Mood || back.Note != e.Note {
		t.Fatalf("round trip mismatch: %v vs %v", back, e)
	}
	if !back.Created.Equal(e.Created.Time) {
		t.Fatalf("expected %v, got %v", e.Created, back.Created)
	}
}

func TestNewStampsCivilZone(t *testing.T) {
	utc := time.Date(2024, time.July, 1, 3, 0, 0, 0, time.UTC)
	e := New(mood.Happy, "", utc)
	if e.Created.Location() != Civil() {
		t.Fatalf("expected civil zone, got %v", e.Created.Location())
	}
	// 03:00 UTC on July 1 is still June 30 in Pacific time.
	if got := e.Created.Format("2006-01-02"); got != "2024-06-30" {
		t.Fatalf("expected 2024-06-30, got %s", got)
	}
}

func TestTimestampSameDay(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, time.January, 1, 23, 59, 59, 0, Civil())}
	if !ts.SameDay(time.Date(2024, time.January, 1, 0, 0, 0, 0, Civil())) {
		t.Fatalf("expected same day")
	}
	if ts.SameDay(time.Date(2024, time.January, 2, 0, 0, 0, 0, Civil())) {
		t.Fatalf("expected different day")
	}
}
