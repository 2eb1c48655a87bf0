package views

import (
	"pullview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func ColorForStatus(status string) lipgloss.Style {
	sStyle := styles.StatusStyle
	if status == "WARN" {
		return sStyle.Foreground(lipgloss.Color("220")) // Gold
	} else if status == "CRIT" {
		return sStyle.Foreground(lipgloss.Color("196")) // Red
	}
	return sStyle.Foreground(lipgloss.Color("46")) // Green
}
