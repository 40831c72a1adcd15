package ui

import (
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"launchbox/internal/catalog"
	"launchbox/internal/logging"
	"launchbox/internal/session"
	"launchbox/internal/theme"
)

// overlayIdle is how long the filter overlay stays visible after the last
// keystroke.
const overlayIdle = 1500 * time.Millisecond

type sessionRow = session.Row

var styles = theme.Default()

// Model implements tea.Model over one launcher session. It doubles as the
// session's render collaborator: the row buffer below is only ever written
// through RedrawWindow and MoveHighlight.
type Model struct {
	session *session.Session
	rowBuf  []session.Row

	width        int
	height       int
	errMsg       string
	quitting     bool
	overlayUntil time.Time
	now          func() time.Time
	filterCursor cursor.Model

	fullRedraws int
}

// NewModel builds the UI over an already-loaded catalog.
func NewModel(cat *catalog.Catalog, rows int, loader session.Loader, executor session.Executor, highlightFg, highlightBg string) *Model {
	styles = theme.WithHighlight(highlightFg, highlightBg)
	m := &Model{now: time.Now}
	m.rowBuf = make([]session.Row, rows)
	m.session = session.New(cat, rows, loader, executor, m, nil)
	m.session.Start()

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	return m
}

// Session exposes the underlying session for tests.
func (m *Model) Session() *session.Session {
	return m.session
}

// RedrawWindow implements session.Renderer.
func (m *Model) RedrawWindow(rows []session.Row) {
	copy(m.rowBuf, rows)
	m.fullRedraws++
}

// MoveHighlight implements session.Renderer. Only the two affected rows
// change; the rest of the buffer is untouched.
func (m *Model) MoveHighlight(prevRow, newRow int) {
	if prevRow >= 1 && prevRow <= len(m.rowBuf) {
		m.rowBuf[prevRow-1].Selected = false
	}
	if newRow >= 1 && newRow <= len(m.rowBuf) {
		m.rowBuf[newRow-1].Selected = true
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cursorCmd tea.Cmd
	m.filterCursor, cursorCmd = m.filterCursor.Update(msg)
	if cursorCmd != nil {
		cmds = append(cmds, cursorCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.session.Cancel()
		m.quitting = true
		return tea.Quit
	case "enter":
		if m.session.Confirm() {
			m.quitting = true
			return tea.Quit
		}
		return nil
	case "up":
		m.session.MoveUp()
		return nil
	case "down":
		m.session.MoveDown()
		return nil
	case "ctrl+r":
		if err := m.session.Refresh(); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.session.Backspace() {
			m.touchOverlay()
		}
		return nil
	case tea.KeySpace:
		if m.session.Type(' ') {
			m.touchOverlay()
		}
		return nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		r := msg.Runes[0]
		if unicode.IsControl(r) {
			return nil
		}
		if m.session.Type(r) {
			m.touchOverlay()
		}
		// Rejected keystroke: silently absorbed, nothing on screen moves.
		return nil
	}
	return nil
}

// touchOverlay restarts the overlay idle window after an accepted
// keystroke. The deadline is checked lazily at render time, so no timer
// message is needed.
func (m *Model) touchOverlay() {
	m.overlayUntil = m.now().Add(overlayIdle)
}

func (m *Model) overlayVisible() bool {
	return m.now().Before(m.overlayUntil)
}
