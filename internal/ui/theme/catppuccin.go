package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	Card = Pane.Align(lipgloss.Center).Width(16)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Error = lipgloss.NewStyle().Foreground(Red)
)

// StatusColor maps a task status label to its badge color.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "completed":
		return Green
	case "in_progress":
		return Yellow
	default:
		return Subtext0
	}
}

func Status(status string) string {
	return lipgloss.NewStyle().Foreground(StatusColor(status)).Bold(true).Render(status)
}

// ProgressBar renders pct as a fixed-width bar of block characters.
func ProgressBar(pct, width int) string {
	if width <= 0 {
		return ""
	}
	pct = max(0, min(pct, 100))
	filled := pct * width / 100
	bar := lipgloss.NewStyle().Foreground(Green).Render(strings.Repeat("█", filled))
	return bar + lipgloss.NewStyle().Foreground(Surface1).Render(strings.Repeat("░", width-filled))
}
