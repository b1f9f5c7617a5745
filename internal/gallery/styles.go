package gallery

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the gallery chrome and demo cards.
type Styles struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Warn   lipgloss.Color

	Title     lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	Help      lipgloss.Style
	Spinner   lipgloss.Style
	Badge     lipgloss.Style
}

// NewStyles builds styles for the named theme. Anything but "light" gets
// the dark palette.
func NewStyles(theme string) *Styles {
	s := &Styles{}

	if theme == "light" {
		s.Accent = lipgloss.Color("#005f87")
		s.Muted = lipgloss.Color("#6c6c6c")
		s.Warn = lipgloss.Color("#af5f00")
	} else {
		s.Accent = lipgloss.Color("#7aa2f7")
		s.Muted = lipgloss.Color("#565f89")
		s.Warn = lipgloss.Color("#e0af68")
	}

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Accent)

	s.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Accent).
		Padding(0, 1).
		Underline(true)

	s.Tab = lipgloss.NewStyle().
		Foreground(s.Muted).
		Padding(0, 1)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Muted).
		Padding(1, 2)

	s.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.Warn)

	s.Help = lipgloss.NewStyle().
		Foreground(s.Muted)

	s.Spinner = lipgloss.NewStyle().
		Foreground(s.Accent)

	s.Badge = lipgloss.NewStyle().
		Background(s.Accent).
		Foreground(lipgloss.Color("#1a1b26")).
		Padding(0, 1)

	return s
}
