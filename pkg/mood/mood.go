package mood

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Glyph describes one mood symbol and how it should be presented.
type Glyph struct {
	Symbol  string
	Meaning string
	Color   string // hex, used by both the chart and the theme
	Aliases []string
}

// DefaultGlyphs returns the fixed mood table. The order here is the display
// order everywhere: selector, chart groups, report rows.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 4)

	g = append(g, Glyph{
		Symbol:  "🎉",
		Meaning: "celebrating",
		Color:   "#006400", // dark green
		Aliases: []string{"celebrate", "party", "great"},
	}, Glyph{
		Symbol:  "😊",
		Meaning: "happy",
		Color:   "#90EE90", // light green
		Aliases: []string{"happy", "good"},
	}, Glyph{
		Symbol:  "😕",
		Meaning: "unsure",
		Color:   "#F08080", // light coral
		Aliases: []string{"unsure", "meh", "confused"},
	}, Glyph{
		Symbol:  "😠",
		Meaning: "angry",
		Color:   "#8B0000", // dark red
		Aliases: []string{"angry", "mad", "bad"},
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Mood is one of the four fixed mood symbols.
type Mood int

const (
	Celebrating Mood = iota
	Happy
	Unsure
	Angry
)

// All returns every mood in display order.
func All() []Mood {
	return []Mood{Celebrating, Happy, Unsure, Angry}
}

func (m Mood) Glyph() Glyph {
	glyphs := DefaultGlyphs()
	if m < 0 || int(m) >= len(glyphs) {
		return Glyph{}
	}
	return glyphs[m]
}

func (m Mood) String() string {
	return m.Glyph().String()
}

// Valid reports whether m is drawn from the fixed set.
func (m Mood) Valid() bool {
	return m >= 0 && int(m) < len(DefaultGlyphs())
}

// Parse resolves a symbol or alias to a Mood.
func Parse(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	for i, g := range DefaultGlyphs() {
		if s == g.Symbol || strings.EqualFold(s, g.Meaning) {
			return Mood(i), nil
		}
		for _, a := range g.Aliases {
			if strings.EqualFold(s, a) {
				return Mood(i), nil
			}
		}
	}
	return Mood(-1), fmt.Errorf("mood: unknown mood %q", s)
}

// Moods travel as their symbol on the wire, both in the spreadsheet row and
// in the local store's JSON documents.

func (m Mood) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mood) UnmarshalJSON(b []byte) error {
	var symbol string
	if err := json.Unmarshal(b, &symbol); err != nil {
		return err
	}
	parsed, err := Parse(symbol)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
