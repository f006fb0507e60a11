// Package filter narrows the full mood log to a single civil day or an
// inclusive date range before aggregation.
package filter

import (
	"errors"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
)

// ErrIncompleteRange is returned when only one end of a range is selected.
// The caller surfaces a warning instead of applying a partial filter.
var ErrIncompleteRange = errors.New("filter: select both ends of the date range")

// Day keeps entries whose civil calendar date equals day's date.
func Day(entries []*entry.Entry, day time.Time) []*entry.Entry {
	kept := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Created.SameDay(day) {
			kept = append(kept, e)
		}
	}
	return kept
}

// Range keeps entries whose civil calendar date falls within [start, end],
// inclusive on both endpoints.
func Range(entries []*entry.Entry, start, end time.Time) ([]*entry.Entry, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrIncompleteRange
	}
	lo := dateOf(start)
	hi := dateOf(end)
	kept := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		d := e.Created.Date()
		if d.Before(lo) || d.After(hi) {
			continue
		}
		kept = append(kept, e)
	}
	return kept, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.In(entry.Civil()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, entry.Civil())
}
