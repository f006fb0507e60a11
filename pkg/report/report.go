// Package report buckets filtered entries by a span-derived time granularity
// and counts occurrences of each mood per bucket.
package report

import (
	"sort"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
)

type Granularity int

const (
	ByDay Granularity = iota
	ByWeek
	ByMonth
	ByYear
)

func (g Granularity) String() string {
	switch g {
	case ByDay:
		return "day"
	case ByWeek:
		return "week"
	case ByMonth:
		return "month"
	case ByYear:
		return "year"
	}
	return "unknown"
}

// GranularityFor picks the bucket size from the covered span. It is a pure
// function of end-start in civil days.
func GranularityFor(start, end time.Time) Granularity {
	days := spanDays(start, end)
	switch {
	case days <= 14:
		return ByDay
	case days <= 90:
		return ByWeek
	case days <= 365:
		return ByMonth
	default:
		return ByYear
	}
}

func spanDays(start, end time.Time) int {
	y1, m1, d1 := start.In(entry.Civil()).Date()
	y2, m2, d2 := end.In(entry.Civil()).Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// Bucket is a transient grouping key. It is keyed by the bucket's start date,
// never by its label, so charts order chronologically across year boundaries
// even where labels would not sort ("Dec 2023" vs "Jan 2024").
type Bucket struct {
	Start       time.Time
	Granularity Granularity
}

// BucketFor truncates a timestamp to its bucket start: the civil date for
// days, the preceding Monday for weeks, the first of the month, or January 1.
func BucketFor(t time.Time, g Granularity) Bucket {
	y, m, d := t.In(entry.Civil()).Date()
	var start time.Time
	switch g {
	case ByWeek:
		date := time.Date(y, m, d, 0, 0, 0, 0, entry.Civil())
		back := (int(date.Weekday()) + 6) % 7 // Monday-aligned
		start = date.AddDate(0, 0, -back)
	case ByMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, entry.Civil())
	case ByYear:
		start = time.Date(y, time.January, 1, 0, 0, 0, 0, entry.Civil())
	default:
		start = time.Date(y, m, d, 0, 0, 0, 0, entry.Civil())
	}
	return Bucket{Start: start, Granularity: g}
}

func (b Bucket) Label() string {
	switch b.Granularity {
	case ByWeek:
		return "Week of " + b.Start.Format("2006-01-02")
	case ByMonth:
		return b.Start.Format("Jan 2006")
	case ByYear:
		return b.Start.Format("2006")
	default:
		return b.Start.Format("2006-01-02")
	}
}

// Count is one (bucket, mood) aggregate. Pairs with zero entries are simply
// absent, never zero-filled.
type Count struct {
	Bucket Bucket
	Mood   mood.Mood
	N      int
}

// Aggregate counts entries per (bucket, mood), ordered chronologically by
// bucket start and by mood display order within a bucket.
func Aggregate(entries []*entry.Entry, g Granularity) []Count {
	type key struct {
		start time.Time
		mood  mood.Mood
	}
	counts := make(map[key]int)
	buckets := make(map[time.Time]Bucket)
	for _, e := range entries {
		b := BucketFor(e.Created.Time, g)
		buckets[b.Start] = b
		counts[key{start: b.Start, mood: e.Mood}]++
	}

	starts := make([]time.Time, 0, len(buckets))
	for s := range buckets {
		starts = append(starts, s)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	out := make([]Count, 0, len(counts))
	for _, s := range starts {
		for _, m := range mood.All() {
			if n := counts[key{start: s, mood: m}]; n > 0 {
				out = append(out, Count{Bucket: buckets[s], Mood: m, N: n})
			}
		}
	}
	return out
}

// ByMood counts entries per mood only, for single-day views where there is
// nothing to bucket.
func ByMood(entries []*entry.Entry) []Count {
	counts := make(map[mood.Mood]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	out := make([]Count, 0, len(counts))
	for _, m := range mood.All() {
		if n := counts[m]; n > 0 {
			out = append(out, Count{Mood: m, N: n})
		}
	}
	return out
}
