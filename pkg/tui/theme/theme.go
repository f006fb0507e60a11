package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodlog/pkg/mood"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title  lipgloss.Style
	Panel  PanelTheme
	Form   FormTheme
	Chart  ChartTheme
	Footer FooterTheme
}

// PanelTheme styles framed sections and their headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

// FormTheme styles the log form and filter controls.
type FormTheme struct {
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Option   lipgloss.Style
	Focused  lipgloss.Style
}

// ChartTheme styles the mood distribution chart.
type ChartTheme struct {
	BucketLabel lipgloss.Style
	Count       lipgloss.Style
	Empty       lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		},
		Form: FormTheme{
			Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Option:   lipgloss.NewStyle().Faint(true),
			Focused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		},
		Chart: ChartTheme{
			BucketLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
			Count:       lipgloss.NewStyle().Faint(true),
			Empty:       lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
	}
}

// MoodStyle colors chart bars with the mood's own display color.
func (t Theme) MoodStyle(m mood.Mood) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.Glyph().Color))
}
