package tui

import (
	"context"
	"testing"
	"time"

	"pullview/internal/collector"
	"pullview/ui/tui/state"

	tea "github.com/charmbracelet/bubbletea"
)

// MockStatsProvider for testing
type MockStatsProvider struct {
	calls int
}

func (m *MockStatsProvider) Snapshot(ctx context.Context) (*collector.Snapshot, error) {
	m.calls++
	return &collector.Snapshot{
		Hostname: "testhost",
		CPUUsage: 42,
		Taken:    time.Now(),
	}, nil
}

func TestMenuNavigation(t *testing.T) {
	provider := &MockStatsProvider{}
	model := InitialModel(provider)

	if model.menuCursor != 0 {
		t.Errorf("Expected initial menu cursor 0, got %d", model.menuCursor)
	}
	if model.state.CurrentPage != state.PageMenu {
		t.Errorf("Expected initial page PageMenu, got %v", model.state.CurrentPage)
	}

	cmd := tea.KeyMsg{Type: tea.KeyDown, Runes: []rune{}, Alt: false}
	updatedModel, _ := model.Update(cmd)
	m := updatedModel.(*MainModel)

	if m.menuCursor != 1 {
		t.Errorf("Expected menu cursor 1 after Down key, got %d", m.menuCursor)
	}

	cmd = tea.KeyMsg{Type: tea.KeyUp, Runes: []rune{}, Alt: false}
	updatedModel, _ = m.Update(cmd)
	m = updatedModel.(*MainModel)

	if m.menuCursor != 0 {
		t.Errorf("Expected menu cursor 0 after Up key, got %d", m.menuCursor)
	}
}

func TestMenuAnimationLogic(t *testing.T) {
	provider := &MockStatsProvider{}
	model := InitialModel(provider)

	model.menuCursor = 1

	if model.animCursor != 0 {
		t.Errorf("Expected initial animCursor 0, got %f", model.animCursor)
	}

	// The spring physics should move animCursor towards menuCursor (1.0)
	animateMsg := AnimateMsg(time.Now())
	updatedModel, _ := model.Update(animateMsg)
	m := updatedModel.(*MainModel)

	if m.animCursor <= 0 {
		t.Errorf("Expected animCursor to increase after animation frame, got %f", m.animCursor)
	}
	if m.animCursor >= 1.0 {
		t.Errorf("Expected animCursor to not reach target immediately, got %f", m.animCursor)
	}

	updatedModel, _ = m.Update(animateMsg)
	m = updatedModel.(*MainModel)
	prevCursor := m.animCursor

	updatedModel, _ = m.Update(animateMsg)
	m = updatedModel.(*MainModel)

	if m.animCursor <= prevCursor {
		t.Errorf("Expected animCursor to continue increasing, got %f (prev %f)", m.animCursor, prevCursor)
	}
}

func TestPageTransition(t *testing.T) {
	provider := &MockStatsProvider{}
	model := InitialModel(provider)

	model.menuCursor = 0
	cmd := tea.KeyMsg{Type: tea.KeyEnter, Runes: []rune{}, Alt: false}
	updatedModel, _ := model.Update(cmd)
	m := updatedModel.(*MainModel)

	if m.state.CurrentPage != state.PageFeed {
		t.Errorf("Expected page to change to PageFeed, got %v", m.state.CurrentPage)
	}

	cmd = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}, Alt: false}
	updatedModel, _ = m.Update(cmd)
	m = updatedModel.(*MainModel)

	if m.state.CurrentPage != state.PageMenu {
		t.Errorf("Expected page to change back to PageMenu, got %v", m.state.CurrentPage)
	}
}

func TestStatsLoadedUpdatesFeed(t *testing.T) {
	provider := &MockStatsProvider{}
	model := InitialModel(provider)
	model.state.CurrentPage = state.PageFeed

	sizeMsg := tea.WindowSizeMsg{Width: 80, Height: 40}
	updatedModel, _ := model.Update(sizeMsg)
	m := updatedModel.(*MainModel)

	snap, _ := provider.Snapshot(context.Background())
	updatedModel, _ = m.Update(StatsLoadedMsg{Stats: snap})
	m = updatedModel.(*MainModel)

	if len(m.state.FeedLines) == 0 {
		t.Fatal("Expected feed lines after a stats load")
	}
	if m.state.Stats.Hostname != "testhost" {
		t.Errorf("Expected snapshot to be stored, got host %q", m.state.Stats.Hostname)
	}
	if len(m.state.CPUHistory) != 1 || m.state.CPUHistory[0] != 42 {
		t.Errorf("Expected CPU history [42], got %v", m.state.CPUHistory)
	}
}

func TestHistoryLoadedAppendsBelow(t *testing.T) {
	provider := &MockStatsProvider{}
	model := InitialModel(provider)
	model.state.FeedLines = []string{"existing"}

	updatedModel, _ := model.Update(HistoryLoadedMsg{Lines: []string{"old-1", "old-2"}})
	m := updatedModel.(*MainModel)

	if len(m.state.FeedLines) != 3 {
		t.Fatalf("Expected 3 feed lines, got %d", len(m.state.FeedLines))
	}
	if m.state.FeedLines[0] != "existing" {
		t.Errorf("Expected history appended below existing lines, got %v", m.state.FeedLines)
	}
	if m.state.OlderLoaded != 1 {
		t.Errorf("Expected one history batch recorded, got %d", m.state.OlderLoaded)
	}
}
