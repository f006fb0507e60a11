package entry

import (
	"fmt"
	"time"

	"tableflip.dev/moodlog/pkg/mood"
)

func New(m mood.Mood, note string, now time.Time) *Entry {
	return &Entry{
		Created: Timestamp{Time: now.In(Civil())},
		Mood:    m,
		Note:    note,
	}
}

// Entry is one logged mood. Entries are immutable once stored; the log is
// append-only and never updated or deleted by this program.
type Entry struct {
	ID      string    `json:"id,omitempty"`
	Created Timestamp `json:"timestamp"`
	Mood    mood.Mood `json:"mood"`
	Note    string    `json:"note,omitempty"`
}

// Header is the sheet's first row. Reads map it to column names; it is never
// parsed as an entry.
var Header = []string{"timestamp", "mood", "note"}

// Row renders the entry as a wire row: timestamp, mood symbol, note.
func (e *Entry) Row() []string {
	return []string{e.Created.String(), e.Mood.String(), e.Note}
}

// ParseRow decodes one wire row. Rows with unparseable timestamps or moods
// outside the fixed set are rejected here so they never reach filtering or
// aggregation.
func ParseRow(cols []string, loc *time.Location) (*Entry, error) {
	if len(cols) < 2 {
		return nil, fmt.Errorf("entry: row has %d columns, want at least 2", len(cols))
	}
	t, err := ParseTime(cols[0], loc)
	if err != nil {
		return nil, fmt.Errorf("entry: bad timestamp %q: %w", cols[0], err)
	}
	m, err := mood.Parse(cols[1])
	if err != nil {
		return nil, err
	}
	note := ""
	if len(cols) > 2 {
		note = cols[2]
	}
	return &Entry{
		Created: Timestamp{Time: t},
		Mood:    m,
		Note:    note,
	}, nil
}

func (e *Entry) String() string {
	if e.Note == "" {
		return fmt.Sprintf("%s  %s", e.Created.String(), e.Mood.String())
	}
	return fmt.Sprintf("%s  %s  %s", e.Created.String(), e.Mood.String(), e.Note)
}
