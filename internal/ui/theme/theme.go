package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: Chinese zodiac reds and golds on dark ink
var (
	Primary   = lipgloss.Color("#D32F2F") // Chinese Red
	Secondary = lipgloss.Color("#FFC107") // Gold
	Accent    = lipgloss.Color("#FF8F00") // Amber
	Success   = lipgloss.Color("#388E3C") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F5F5F5") // Paper White
	TextDim   = lipgloss.Color("#9E9E9E") // Ash
	BgDark    = lipgloss.Color("#121212") // Ink
	BgCard    = lipgloss.Color("#212121") // Lacquer
	Border    = lipgloss.Color("#424242") // Smoke
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	FieldError = lipgloss.NewStyle().
			Foreground(Error)

	Notice = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
