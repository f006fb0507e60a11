package chart

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/report"
	"tableflip.dev/moodlog/pkg/tui/theme"
)

func TestBarCells(t *testing.T) {
	cases := []struct {
		n, max, width int
		want          int
	}{
		{0, 10, 40, 0},
		{10, 10, 40, 40},
		{5, 10, 40, 20},
		{1, 100, 40, 1}, // non-zero counts never collapse to nothing
		{7, 7, 40, 40},
		{3, 10, 0, 0},
	}
	for _, tc := range cases {
		if got := BarCells(tc.n, tc.max, tc.width); got != tc.want {
			t.Fatalf("BarCells(%d, %d, %d): expected %d, got %d",
				tc.n, tc.max, tc.width, tc.want, got)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	out := Render(nil, 60, theme.Default())
	if !strings.Contains(out, "No mood entries") {
		t.Fatalf("expected empty notice, got %q", out)
	}
}

func TestRenderGroupsBucketsInOrder(t *testing.T) {
	dec := bucket("2023-12-01", report.ByMonth)
	jan := bucket("2024-01-01", report.ByMonth)
	counts := []report.Count{
		{Bucket: dec, Mood: mood.Happy, N: 2},
		{Bucket: jan, Mood: mood.Happy, N: 1},
		{Bucket: jan, Mood: mood.Angry, N: 3},
	}

	out := Render(counts, 60, theme.Default())

	decIdx := strings.Index(out, "Dec 2023")
	janIdx := strings.Index(out, "Jan 2024")
	if decIdx < 0 || janIdx < 0 {
		t.Fatalf("expected both month labels, got %q", out)
	}
	if decIdx > janIdx {
		t.Fatalf("expected Dec 2023 before Jan 2024")
	}
	if strings.Count(out, "Jan 2024") != 1 {
		t.Fatalf("expected one label per bucket group")
	}
	if !strings.Contains(out, mood.Angry.String()) {
		t.Fatalf("expected a bar for 😠")
	}
}

func bucket(day string, g report.Granularity) report.Bucket {
	d, err := time.ParseInLocation("2006-01-02", day, entry.Civil())
	if err != nil {
		panic(err)
	}
	return report.BucketFor(d, g)
}
