package views

import (
	"pullview/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the controller.
type ViewProps struct {
	Width, Height  int
	MouseX, MouseY int

	// Component states
	MenuCursor int
	AnimCursor float64
	ChartView  string
	PullView   string
	Loading    bool
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
