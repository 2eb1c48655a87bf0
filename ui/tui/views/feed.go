package views

import (
	"fmt"

	"pullview/ui/tui/state"
	"pullview/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type FeedView struct{}

// Render draws the feed header and the pull-wrapped scrollback beneath
// it. The scrollback itself (PullView) is rendered by the pull component
// so the loader overlay lines up with the viewport.
func (v FeedView) Render(s state.AppState, props ViewProps) string {
	if s.Err != nil {
		return fmt.Sprintf("Error: %v", s.Err)
	}

	status := "pull down for fresh stats, up for history"
	if props.Loading {
		status = "refreshing..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Left,
		styles.TitleStyle.Render("System Feed"),
		fmt.Sprintf(" Last Update: %s • %s", s.LastUpdate.Format("15:04:05"), status),
	)

	chart := ""
	if props.ChartView != "" {
		chart = lipgloss.NewStyle().PaddingLeft(1).Render(props.ChartView)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		chart,
		props.PullView,
	))
}
