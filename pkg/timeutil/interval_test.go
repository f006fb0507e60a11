package timeutil

import (
	"testing"
	"time"
)

func TestParseIntervalDefault(t *testing.T) {
	dur, label, err := ParseInterval("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 10*time.Second {
		t.Fatalf("expected 10s, got %v", dur)
	}
	if label != "10s" {
		t.Fatalf("expected label 10s, got %s", label)
	}
}

func TestParseIntervalUnits(t *testing.T) {
	cases := []struct {
		in    string
		want  time.Duration
		label string
	}{
		{"1s", time.Second, "1s"},
		{"60 seconds", 60 * time.Second, "1m"},
		{"5 min", 5 * time.Minute, "5m"},
		{"10 Minutes", 10 * time.Minute, "10m"},
		{"1h", time.Hour, "1h"},
		{"60hrs", 60 * time.Hour, "60h"},
	}
	for _, tc := range cases {
		dur, label, err := ParseInterval(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if dur != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.in, tc.want, dur)
		}
		if label != tc.label {
			t.Fatalf("%s: expected label %s, got %s", tc.in, tc.label, label)
		}
	}
}

func TestParseIntervalBounds(t *testing.T) {
	if _, _, err := ParseInterval("0s"); err == nil {
		t.Fatalf("expected error below the minimum")
	}
	if _, _, err := ParseInterval("61m"); err == nil {
		t.Fatalf("expected error above the maximum")
	}
}

func TestParseIntervalInvalid(t *testing.T) {
	for _, in := range []string{"noop", "10", "s", "1w", "3 days"} {
		if _, _, err := ParseInterval(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
