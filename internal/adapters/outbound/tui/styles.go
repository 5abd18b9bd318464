package tui

import "github.com/charmbracelet/lipgloss"

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Foreground(dim)
	amountStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger).Bold(true)
	progressStyle = lipgloss.NewStyle().Foreground(dim).Italic(true)
)
