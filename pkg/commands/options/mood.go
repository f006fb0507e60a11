package options

import (
	"fmt"
	"strings"

	"tableflip.dev/moodlog/pkg/mood"
)

// MoodOptions
type MoodOptions struct {
	Mood mood.Mood
	Note string
}

// ParseArgs resolves `<mood> [note...]` positional arguments.
func (o *MoodOptions) ParseArgs(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("a mood is required, one of: %s", MoodUsage())
	}
	m, err := mood.Parse(args[0])
	if err != nil {
		return err
	}
	o.Mood = m
	o.Note = strings.Join(args[1:], " ")
	return nil
}

// MoodUsage lists the fixed symbols with their aliases for help text.
func MoodUsage() string {
	parts := make([]string, 0, 4)
	for _, g := range mood.DefaultGlyphs() {
		parts = append(parts, fmt.Sprintf("%s (%s)", g.Symbol, g.Meaning))
	}
	return strings.Join(parts, ", ")
}
