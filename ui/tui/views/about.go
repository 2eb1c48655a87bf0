package views

import (
	"pullview/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

type AboutView struct{}

func (v AboutView) Render(s state.AppState, props ViewProps) string {
	body := lipgloss.NewStyle().Bold(true).Render(
		"pullview\n\nA drag-to-refresh wrapper for bubbles viewports.\n\nPress 'b' to go back")
	return lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, body)
}
