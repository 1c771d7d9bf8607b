package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"worksync/internal/ui/theme"
)

// StatCard is one figure of the dashboard header.
type StatCard struct {
	Label string
	Value string
	Color lipgloss.Color
}

func IntCard(label string, value int, color lipgloss.Color) StatCard {
	return StatCard{Label: label, Value: strconv.Itoa(value), Color: color}
}

func (c StatCard) View() string {
	value := lipgloss.NewStyle().Foreground(c.Color).Bold(true).Render(c.Value)
	return theme.Card.Render(value + "\n" + theme.Muted.Render(c.Label))
}

// StatRow lays cards out side by side.
func StatRow(cards ...StatCard) string {
	views := make([]string, len(cards))
	for i, c := range cards {
		views[i] = c.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
