package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultInterval is the fallback refresh interval used when none is set.
	DefaultInterval = "10s"

	minValue = 1
	maxValue = 60
)

var (
	intervalPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)\s*$`)
	unitMap         = map[string]time.Duration{
		"s":       time.Second,
		"sec":     time.Second,
		"secs":    time.Second,
		"second":  time.Second,
		"seconds": time.Second,
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
	}
)

// ParseInterval parses a refresh interval like "10s", "5 min", or "1h" and
// returns the duration along with a canonical compact representation. The
// value must be between 1 and 60 of a single unit (seconds, minutes, or
// hours). When the input is empty, the default interval is used.
func ParseInterval(input string) (time.Duration, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultInterval
	}

	matches := intervalPattern.FindStringSubmatch(strings.ToLower(trimmed))
	if len(matches) != 3 {
		return 0, "", fmt.Errorf("invalid interval %q", trimmed)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid interval value %q: %w", matches[1], err)
	}
	base, ok := unitMap[matches[2]]
	if !ok {
		return 0, "", fmt.Errorf("unsupported interval unit %q", matches[2])
	}
	if value < minValue || value > maxValue {
		return 0, "", fmt.Errorf("interval value %d out of range [%d, %d]", value, minValue, maxValue)
	}

	d := time.Duration(value) * base
	return d, FormatInterval(d), nil
}

// FormatInterval renders a duration using the largest whole unit.
func FormatInterval(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		return fmt.Sprintf("%dh", d/time.Hour)
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%dm", d/time.Minute)
	default:
		return fmt.Sprintf("%ds", d/time.Second)
	}
}
