// Package chart renders aggregate mood counts as a grouped horizontal bar
// chart for the terminal.
package chart

import (
	"fmt"
	"strings"

	"tableflip.dev/moodlog/pkg/report"
	"tableflip.dev/moodlog/pkg/tui/theme"
)

const (
	barRune = "█"

	// room for "🎉  " on the left and " 123" on the right of each bar
	reserved = 8
	minWidth = 16
)

// Render draws counts as one group per bucket, one bar per mood, buckets in
// the order given (chronological from report.Aggregate).
func Render(counts []report.Count, width int, th theme.Theme) string {
	if len(counts) == 0 {
		return th.Chart.Empty.Render("No mood entries for the selected date(s).")
	}

	barWidth := width - reserved
	if barWidth < minWidth {
		barWidth = minWidth
	}

	max := 0
	for _, c := range counts {
		if c.N > max {
			max = c.N
		}
	}

	var b strings.Builder
	lastLabel := ""
	first := true
	for _, c := range counts {
		if label := bucketLabel(c); label != lastLabel {
			if !first {
				b.WriteString("\n")
			}
			if label != "" {
				b.WriteString(th.Chart.BucketLabel.Render(label))
				b.WriteString("\n")
			}
			lastLabel = label
		}
		first = false

		bar := strings.Repeat(barRune, BarCells(c.N, max, barWidth))
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			c.Mood.String(),
			th.MoodStyle(c.Mood).Render(bar),
			th.Chart.Count.Render(fmt.Sprint(c.N)),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

// BarCells scales a count to a bar length, never collapsing a non-zero count
// to an empty bar.
func BarCells(n, max, width int) int {
	if n <= 0 || max <= 0 || width <= 0 {
		return 0
	}
	cells := n * width / max
	if cells < 1 {
		cells = 1
	}
	if cells > width {
		cells = width
	}
	return cells
}

func bucketLabel(c report.Count) string {
	if c.Bucket.Start.IsZero() {
		return ""
	}
	return c.Bucket.Label()
}
