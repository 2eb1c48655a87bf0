// Package pull wraps a bubbles viewport with drag-to-refresh gestures.
// Dragging past the top or bottom edge of the scrollback slides a loader
// into view; releasing past a threshold fires an async load callback and
// the loader eases back to rest.
package pull

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Mode restricts which edges respond to overscroll drags.
type Mode int

const (
	ModeNone Mode = iota
	ModeTop
	ModeBottom
	ModeBoth
)

func (m Mode) allows(d Direction) bool {
	switch d {
	case DirectionTop:
		return m == ModeTop || m == ModeBoth
	case DirectionBottom:
		return m == ModeBottom || m == ModeBoth
	}
	return false
}

// Direction is the resolved edge of the current drag session.
// DirectionNone means no qualifying move has been seen yet.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionTop
	DirectionBottom
)

// Gesture state machine. A session moves Idle -> Armed on pointer-down,
// Armed -> Dragging once a direction resolves, then through Loading and/or
// Settling back to Idle on release.
type phase int

const (
	phaseIdle phase = iota
	phaseArmed
	phaseDragging
	phaseLoading
	phaseSettling
)

// LoadFunc runs off the update loop inside a tea.Cmd. The message it
// returns is forwarded to the host model once the controller has observed
// completion, so load errors reach the host's own handling untouched.
type LoadFunc func() tea.Msg

// Config is read once at construction. Zero values select defaults.
type Config struct {
	Mode Mode

	OnTopLoad    LoadFunc
	OnBottomLoad LoadFunc

	// Drag distance in rows required to trigger a load. Values <= 0 mean
	// auto: one eighth of the window height.
	TopThreshold    float64
	BottomThreshold float64

	// Resting row offset of each loader from its edge. Negative offsets
	// park the loader out of view. Zero means DefaultRestOffset.
	TopRestOffset    float64
	BottomRestOffset float64

	// Time for the loader to ease back to rest after release.
	ReturnDuration time.Duration

	TopLoader    Loader
	BottomLoader Loader

	// bubblezone id used to hit-test pointer-down events. Empty disables
	// the bounds check (useful when the widget fills the window, and in
	// tests where no zone scan runs).
	ZoneID string
}

const (
	// DefaultRestOffset hides the default three-row loader past the edge.
	DefaultRestOffset = -3

	// DefaultReturnDuration is how long the loader takes to ease home.
	DefaultReturnDuration = 500 * time.Millisecond

	thresholdDivisor = 8
	minThreshold     = 2

	frameInterval = time.Millisecond * 16
)

// OverscrollMsg reports scroll input that could not be consumed because
// the viewport was already at a content boundary. Negative amounts mean
// the top edge, non-negative the bottom edge. The model emits these
// itself for wheel and drag input; hosts with their own scroll handling
// can inject them.
type OverscrollMsg struct {
	Amount float64
}

type loadDoneMsg struct {
	gen   int
	inner tea.Msg
}

type settleFrameMsg struct {
	gen int
	at  time.Time
}

// Model is the drag-refresh controller. It is a value type in the bubbles
// style: Update returns the successor model.
type Model struct {
	Viewport viewport.Model

	cfg    Config
	width  int
	height int

	// Session state, valid between pointer-down and the end of settling.
	phase        phase
	direction    Direction
	initialY     int
	atEdge       bool
	dragDistance float64

	settle tween

	// gen tags in-flight frame and load-completion messages. Teardown and
	// reset bump it so stale messages are dropped instead of reviving a
	// dead session.
	gen int
}

// New builds a controller around an empty viewport. Call SetSize (or
// forward tea.WindowSizeMsg) before first render.
func New(cfg Config) Model {
	if cfg.ReturnDuration == 0 {
		cfg.ReturnDuration = DefaultReturnDuration
	}
	if cfg.TopRestOffset == 0 {
		cfg.TopRestOffset = DefaultRestOffset
	}
	if cfg.BottomRestOffset == 0 {
		cfg.BottomRestOffset = DefaultRestOffset
	}
	if cfg.TopLoader == nil {
		cfg.TopLoader = NewSpinnerLoader()
	}
	if cfg.BottomLoader == nil {
		cfg.BottomLoader = NewSpinnerLoader()
	}
	return Model{
		Viewport: viewport.New(0, 0),
		cfg:      cfg,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize resizes the wrapped viewport and rebases the auto thresholds.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.Viewport.Width = width
	m.Viewport.Height = height
	return m
}

// Dragging reports whether a drag session has resolved a direction and
// not yet returned to rest.
func (m Model) Dragging() bool {
	return m.direction != DirectionNone
}

// Loading reports whether a load callback is outstanding.
func (m Model) Loading() bool {
	return m.phase == phaseLoading
}

// DragDistance exposes the current clamped drag offset in rows.
func (m Model) DragDistance() float64 {
	return m.dragDistance
}

// Teardown drops any pending load completion or settle frame and resets
// the session. Call it when the host removes the widget; messages from
// the dead generation become no-ops.
func (m Model) Teardown() Model {
	m.gen++
	return m.resetSession()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case OverscrollMsg:
		m.noteOverscroll(msg.Amount)
		return m, nil

	case loadDoneMsg:
		return m.handleLoadDoneMsg(msg)

	case settleFrameMsg:
		return m.handleSettleFrameMsg(msg)
	}

	var cmds []tea.Cmd
	if m.direction != DirectionNone {
		var cmd tea.Cmd
		if m.direction == DirectionTop {
			m.cfg.TopLoader, cmd = m.cfg.TopLoader.Update(msg)
		} else {
			m.cfg.BottomLoader, cmd = m.cfg.BottomLoader.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	// Wheel input at a boundary is the out-of-range scroll signal; in
	// range it scrolls the viewport as usual.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.Viewport.AtTop() {
			m.noteOverscroll(-1)
			return m, nil
		}
	case tea.MouseButtonWheelDown:
		if m.Viewport.AtBottom() {
			m.noteOverscroll(1)
			return m, nil
		}
	}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.handlePress(msg), nil
		}
	case tea.MouseActionMotion:
		return m.handleMotion(msg)
	case tea.MouseActionRelease:
		return m.handleRelease()
	}
	return m, nil
}

// handlePress arms a new drag session. It is ignored while the return
// animation or a load is still in flight, and whenever gestures are
// disabled outright.
func (m Model) handlePress(msg tea.MouseMsg) Model {
	if m.cfg.Mode == ModeNone || m.phase == phaseLoading || m.phase == phaseSettling {
		return m
	}
	if m.cfg.ZoneID != "" && !zone.Get(m.cfg.ZoneID).InBounds(msg) {
		return m
	}
	m.initialY = msg.Y
	m.direction = DirectionNone
	m.atEdge = false
	m.dragDistance = 0
	m.phase = phaseArmed
	return m
}

func (m Model) handleMotion(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.phase != phaseArmed && m.phase != phaseDragging {
		return m, nil
	}
	dy := msg.Y - m.initialY

	// Dragging while the viewport sits at a boundary is itself an
	// out-of-range scroll: pulling down at the top, or up at the bottom.
	if !m.atEdge && dy != 0 {
		if dy > 0 && m.Viewport.AtTop() {
			m.noteOverscroll(float64(-dy))
		} else if dy < 0 && m.Viewport.AtBottom() {
			m.noteOverscroll(float64(-dy))
		}
	}
	if !m.atEdge || dy == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	if m.direction == DirectionNone {
		// Pointer travelling up from the press point means the user is
		// pulling the bottom edge; down means the top edge.
		dir := DirectionTop
		if dy < 0 {
			dir = DirectionBottom
		}
		if !m.cfg.Mode.allows(dir) {
			// Direction stays unresolved so a later move can re-detect.
			return m, nil
		}
		m.direction = dir
		m.phase = phaseDragging
		cmd = m.activeLoader().Init()
	}

	threshold := m.activeThreshold()
	if m.dragDistance >= threshold {
		// Already saturated, skip the recompute.
		return m, cmd
	}

	delta := float64(dy)
	if m.direction == DirectionBottom {
		delta = float64(-dy)
	}
	m.dragDistance = clamp(m.dragDistance+delta, 0, threshold)
	m.initialY = msg.Y
	return m, cmd
}

// handleRelease ends the session: at or past the threshold it suspends on
// the load callback, otherwise the loader eases straight home.
func (m Model) handleRelease() (Model, tea.Cmd) {
	if m.phase != phaseArmed && m.phase != phaseDragging {
		return m, nil
	}
	if m.direction == DirectionNone {
		// The gesture never reached an edge.
		return m.resetSession(), nil
	}

	fn := m.cfg.OnTopLoad
	if m.direction == DirectionBottom {
		fn = m.cfg.OnBottomLoad
	}
	if fn != nil && m.dragDistance >= m.activeThreshold() {
		m.phase = phaseLoading
		m.atEdge = false
		gen := m.gen
		return m, func() tea.Msg {
			return loadDoneMsg{gen: gen, inner: fn()}
		}
	}
	return m.startSettle(time.Now())
}

func (m Model) handleLoadDoneMsg(msg loadDoneMsg) (Model, tea.Cmd) {
	if msg.gen != m.gen || m.phase != phaseLoading {
		// Stale completion from a torn-down or reset session.
		return m, nil
	}
	var cmds []tea.Cmd
	if inner := msg.inner; inner != nil {
		cmds = append(cmds, func() tea.Msg { return inner })
	}
	next, cmd := m.startSettle(time.Now())
	cmds = append(cmds, cmd)
	return next, tea.Batch(cmds...)
}

func (m Model) handleSettleFrameMsg(msg settleFrameMsg) (Model, tea.Cmd) {
	if msg.gen != m.gen || m.phase != phaseSettling {
		return m, nil
	}
	// While settling the tween is the only writer of dragDistance.
	m.dragDistance = m.settle.Value(msg.at)
	if m.settle.Done(msg.at) {
		return m.resetSession(), nil
	}
	return m, settleFrame(m.gen)
}

func (m Model) startSettle(now time.Time) (Model, tea.Cmd) {
	if m.dragDistance <= 0 {
		return m.resetSession(), nil
	}
	m.phase = phaseSettling
	m.atEdge = false
	m.settle = newTween(m.dragDistance, 0, m.cfg.ReturnDuration, now)
	return m, settleFrame(m.gen)
}

func settleFrame(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return settleFrameMsg{gen: gen, at: t}
	})
}

func (m Model) resetSession() Model {
	m.phase = phaseIdle
	m.direction = DirectionNone
	m.atEdge = false
	m.dragDistance = 0
	m.initialY = 0
	return m
}

// noteOverscroll marks the session as sitting at a content edge. The sign
// of the overscroll picks the edge and is gated by the configured mode.
func (m *Model) noteOverscroll(amount float64) {
	if m.cfg.Mode == ModeNone {
		return
	}
	if amount < 0 && !m.cfg.Mode.allows(DirectionTop) {
		return
	}
	if amount >= 0 && !m.cfg.Mode.allows(DirectionBottom) {
		return
	}
	m.atEdge = true
}

func (m Model) activeLoader() Loader {
	if m.direction == DirectionBottom {
		return m.cfg.BottomLoader
	}
	return m.cfg.TopLoader
}

// activeThreshold resolves the threshold for the session's direction,
// falling back to a fraction of the window height when unconfigured.
func (m Model) activeThreshold() float64 {
	configured := m.cfg.TopThreshold
	if m.direction == DirectionBottom {
		configured = m.cfg.BottomThreshold
	}
	if configured > 0 {
		return configured
	}
	auto := m.height / thresholdDivisor
	if auto < minThreshold {
		auto = minThreshold
	}
	return float64(auto)
}

func (m Model) View() string {
	content := m.Viewport.View()
	if m.direction != DirectionNone {
		content = m.overlayLoader(content)
	}
	if m.cfg.ZoneID != "" {
		content = zone.Mark(m.cfg.ZoneID, content)
	}
	return content
}

// overlayLoader splices the active loader over the viewport render. The
// loader sits restOffset + dragDistance rows in from its edge; rows that
// land outside the viewport are clipped, which is what keeps the loader
// hidden at rest.
func (m Model) overlayLoader(content string) string {
	loaderView := m.activeLoader().View()
	loaderLines := strings.Split(loaderView, "\n")
	lines := strings.Split(content, "\n")

	rest := m.cfg.TopRestOffset
	if m.direction == DirectionBottom {
		rest = m.cfg.BottomRestOffset
	}
	offset := int(math.Round(rest + m.dragDistance))

	var top int
	if m.direction == DirectionTop {
		top = offset
	} else {
		// Anchored from the bottom: offset is the gap below the loader.
		top = len(lines) - offset - len(loaderLines)
	}

	for i, ll := range loaderLines {
		row := top + i
		if row < 0 || row >= len(lines) {
			continue
		}
		lines[row] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, ll)
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
