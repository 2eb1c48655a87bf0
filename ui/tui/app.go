package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pullview/internal/collector"
	"pullview/internal/engine"
	"pullview/internal/output"
	"pullview/ui/pull"
	"pullview/ui/tui/state"
	"pullview/ui/tui/views"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Rows reserved above the pull viewport for the feed header and chart.
const feedChromeRows = 13

const feedZoneID = "feed"

// MainModel is the Bubble Tea model acting as the controller.
type MainModel struct {
	provider   collector.StatsProvider
	state      state.AppState
	pull       pull.Model
	cpuChart   linechart.Model
	menuCursor int
	animCursor float64
	velocity   float64 // physics velocity
	spring     harmonica.Spring
	mouseX     int
	mouseY     int
	quitting   bool
	width      int
	height     int
}

// Messages
type AnimateMsg time.Time
type StatsLoadedMsg struct {
	Stats *collector.Snapshot
	Err   error
}
type HistoryLoadedMsg struct {
	Lines []string
}

func InitialModel(provider collector.StatsProvider) MainModel {
	lc := linechart.New(30, 8, 0, 30, 0, 100)

	// Physics spring for smooth menu cursor animation.
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	m := MainModel{
		provider: provider,
		cpuChart: lc,
		spring:   spring,
		state: state.AppState{
			Stats:       &collector.Snapshot{},
			CPUHistory:  make([]float64, 0, 31),
			CurrentPage: state.PageMenu,
		},
	}

	m.pull = pull.New(pull.Config{
		Mode:         pull.ModeBoth,
		ZoneID:       feedZoneID,
		OnTopLoad:    fetchStatsLoad(provider),
		OnBottomLoad: fetchHistoryLoad(),
	})
	return m
}

// fetchStatsLoad is the top-edge pull callback: a fresh metrics snapshot.
func fetchStatsLoad(p collector.StatsProvider) pull.LoadFunc {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		snap, err := p.Snapshot(ctx)
		return StatsLoadedMsg{Stats: snap, Err: err}
	}
}

// fetchHistoryLoad is the bottom-edge pull callback: a batch of older
// entries appended below the scrollback.
func fetchHistoryLoad() pull.LoadFunc {
	return func() tea.Msg {
		lines := make([]string, 0, 5)
		for i := 0; i < 5; i++ {
			lines = append(lines, fmt.Sprintf("  … archived entry %s-%d",
				time.Now().Format("150405"), i+1))
		}
		return HistoryLoadedMsg{Lines: lines}
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	// Seed the feed so there is content to scroll before the first pull.
	return tea.Batch(
		animateCmd(),
		tea.Cmd(fetchStatsLoad(m.provider)),
	)
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case StatsLoadedMsg:
		return m.handleStatsLoadedMsg(msg)

	case HistoryLoadedMsg:
		return m.handleHistoryLoadedMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Everything else (settle frames, load completions, spinner ticks)
	// belongs to the pull component.
	var cmd tea.Cmd
	m.pull, cmd = m.pull.Update(msg)
	return m, cmd
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.CurrentPage == state.PageMenu {
		switch msg.String() {
		case "up", "k":
			if m.menuCursor > 0 {
				m.menuCursor--
			}
		case "down", "j":
			if m.menuCursor < len(views.MenuOptions)-1 {
				m.menuCursor++
			}
		case "enter":
			m.navigateTo(m.menuCursor)
		}
		return m, nil
	}

	if msg.String() == "b" || msg.String() == "esc" || msg.String() == "backspace" {
		m.state.CurrentPage = state.PageMenu
		return m, nil
	}

	if m.state.CurrentPage == state.PageFeed {
		var cmd tea.Cmd
		m.pull, cmd = m.pull.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MainModel) navigateTo(cursor int) {
	switch cursor {
	case 0:
		m.state.CurrentPage = state.PageFeed
	case 1:
		m.state.CurrentPage = state.PageAbout
	}
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, float64(m.menuCursor), v)
	m.velocity = v
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	feedHeight := msg.Height - feedChromeRows
	if feedHeight < 3 {
		feedHeight = 3
	}
	m.pull = m.pull.SetSize(msg.Width, feedHeight)

	newW := msg.Width/2 - 6
	if newW > 10 {
		m.cpuChart.Resize(newW, 8)
	}
	return m, nil
}

func (m *MainModel) handleStatsLoadedMsg(msg StatsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state.Err = msg.Err
		return m, nil
	}

	stats := msg.Stats
	m.state.Stats = stats
	m.state.Results = engine.Evaluate(stats)
	m.state.LastUpdate = time.Now()

	// Fresh readings are prepended so the newest block sits at the top.
	report := output.BuildReport(stats, m.state.Results)
	m.state.FeedLines = append(output.FeedLines(report), m.state.FeedLines...)
	if len(m.state.FeedLines) > 200 {
		m.state.FeedLines = m.state.FeedLines[:200]
	}

	m.state.CPUHistory = append(m.state.CPUHistory, stats.CPUUsage)
	if len(m.state.CPUHistory) > 31 {
		m.state.CPUHistory = m.state.CPUHistory[1:]
	}
	m.redrawChart()

	m.pull.Viewport.SetContent(strings.Join(m.state.FeedLines, "\n"))
	m.pull.Viewport.GotoTop()
	return m, nil
}

func (m *MainModel) handleHistoryLoadedMsg(msg HistoryLoadedMsg) (tea.Model, tea.Cmd) {
	m.state.FeedLines = append(m.state.FeedLines, msg.Lines...)
	m.state.OlderLoaded++
	m.pull.Viewport.SetContent(strings.Join(m.state.FeedLines, "\n"))
	return m, nil
}

func (m *MainModel) redrawChart() {
	m.cpuChart.Clear()
	for i := 0; i < len(m.state.CPUHistory)-1; i++ {
		y1 := m.state.CPUHistory[i]
		y2 := m.state.CPUHistory[i+1]
		m.cpuChart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: y1},
			canvas.Float64Point{X: float64(i + 1), Y: y2},
		)
	}
	m.cpuChart.DrawXYAxisAndLabel()
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX = msg.X
	m.mouseY = msg.Y

	if m.state.CurrentPage == state.PageMenu {
		if msg.Action == tea.MouseActionRelease {
			for i := range views.MenuOptions {
				if zone.Get(fmt.Sprintf("menu_%d", i)).InBounds(msg) {
					m.menuCursor = i
					m.navigateTo(i)
					return m, nil
				}
			}
		}
		return m, nil
	}

	if m.state.CurrentPage == state.PageFeed {
		var cmd tea.Cmd
		m.pull, cmd = m.pull.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	props := views.ViewProps{
		Width:      m.width,
		Height:     m.height,
		MouseX:     m.mouseX,
		MouseY:     m.mouseY,
		MenuCursor: m.menuCursor,
		AnimCursor: m.animCursor,
		ChartView:  m.cpuChart.View(),
		PullView:   m.pull.View(),
		Loading:    m.pull.Loading(),
	}

	switch m.state.CurrentPage {
	case state.PageMenu:
		return views.MenuView{}.Render(m.state, props)
	case state.PageFeed:
		return views.FeedView{}.Render(m.state, props)
	case state.PageAbout:
		return views.AboutView{}.Render(m.state, props)
	default:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render("Press 'b' to go back"),
		)
	}
}

func Start(provider collector.StatsProvider) error {
	m := InitialModel(provider)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
