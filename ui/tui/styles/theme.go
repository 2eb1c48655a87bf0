package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Brand is the pullview orange used for headers and the active menu item.
	Brand  = lipgloss.Color("#f27b24")
	Subtle = lipgloss.AdaptiveColor{Light: "#D0D0C8", Dark: "#444444"}
	Accent = lipgloss.AdaptiveColor{Light: "#B35A14", Dark: "#F5A05C"}

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(4).
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFF3E8")).
			Background(Brand)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(1, 2).
			Margin(1, 1)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))
)
