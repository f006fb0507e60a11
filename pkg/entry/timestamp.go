package entry

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Layout is the wire format for timestamps in the spreadsheet and local store.
const Layout = "2006-01-02 15:04:05"

const civilName = "America/Los_Angeles"

var (
	civilOnce sync.Once
	civilLoc  *time.Location
)

// Civil returns the fixed civil time zone entries are stamped and filtered in,
// regardless of where the process runs. Falls back to UTC if the zone database
// is unavailable.
func Civil() *time.Location {
	civilOnce.Do(func() {
		loc, err := time.LoadLocation(civilName)
		if err != nil {
			loc = time.UTC
		}
		civilLoc = loc
	})
	return civilLoc
}

// ParseTime parses a wire timestamp as a civil time in loc.
func ParseTime(v string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = Civil()
	}
	t, err := time.ParseInLocation(Layout, v, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatTime renders t in the wire layout, in t's own location.
func FormatTime(v time.Time) string {
	return v.Format(Layout)
}

type Timestamp struct {
	time.Time
}

// SameDay reports whether t and then fall on the same civil calendar date.
func (t Timestamp) SameDay(then time.Time) bool {
	y1, m1, d1 := t.In(Civil()).Date()
	y2, m2, d2 := then.In(Civil()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Date truncates the timestamp to its civil calendar date.
func (t Timestamp) Date() time.Time {
	y, m, d := t.In(Civil()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, Civil())
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", FormatTime(t.Time))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	var err error
	t.Time, err = ParseTime(timestamp, Civil())
	return err
}

func (t Timestamp) String() string {
	return FormatTime(t.Time)
}
