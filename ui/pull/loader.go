package pull

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Loader is the renderable shown while a drag or load is in progress.
// It follows the widget component shape: Init starts any animation tick,
// Update consumes tick messages while the loader is visible.
type Loader interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Loader, tea.Cmd)
	View() string
}

// SpinnerLoader is the default loader: a bubbles spinner inside a rounded
// border.
type SpinnerLoader struct {
	spinner spinner.Model
	frame   lipgloss.Style
}

func NewSpinnerLoader() *SpinnerLoader {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &SpinnerLoader{
		spinner: s,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1),
	}
}

func (l *SpinnerLoader) Init() tea.Cmd {
	return l.spinner.Tick
}

func (l *SpinnerLoader) Update(msg tea.Msg) (Loader, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

func (l *SpinnerLoader) View() string {
	return l.frame.Render(l.spinner.View())
}
