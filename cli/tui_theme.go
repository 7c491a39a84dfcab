package cli

import "github.com/charmbracelet/lipgloss"

type tuiTheme struct {
	panel     lipgloss.Style
	modal     lipgloss.Style
	title     lipgloss.Style
	subtitle  lipgloss.Style
	text      lipgloss.Style
	muted     lipgloss.Style
	ok        lipgloss.Style
	warn      lipgloss.Style
	danger    lipgloss.Style
	value     lipgloss.Style
	highlight lipgloss.Style
	help      lipgloss.Style
}

func newTUITheme() tuiTheme {
	return tuiTheme{
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("#6B5A1E")),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#D4AF37")).
			Padding(0, 1),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#D4AF37")),
		subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A88A2C")),
		text: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6DCC0")),
		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E6A5E")),
		ok: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#63C17A")),
		warn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E7B65A")),
		danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E06B75")),
		value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700")),
		highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0A0A0F")).
			Background(lipgloss.Color("#D4AF37")),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8F8570")),
	}
}
