// Package session drives one interactive launcher session: it owns the
// current query, its history, the filter engine, and the viewport, and
// translates abstract key events into the minimal set of collaborator calls.
// All handlers run to completion synchronously; nothing here blocks or is
// shared across sessions.
package session

import (
	"fmt"
	"unicode"

	"launchbox/internal/catalog"
	"launchbox/internal/filter"
	"launchbox/internal/logging/events"
	"launchbox/internal/viewport"
)

// Loader supplies the catalog item set at construction and on refresh.
type Loader interface {
	Rescan() ([]catalog.Item, error)
}

// Executor launches the confirmed item's command, fire-and-forget.
type Executor interface {
	Exec(command string)
}

// Row is what the render collaborator receives for one visible row. Empty
// rows are placeholders past the end of the result list.
type Row struct {
	Name     string
	Icon     catalog.IconRef
	Empty    bool
	Selected bool
}

// Renderer receives redraws at the granularity the viewport reports: a full
// window of rows, or a two-row highlight move.
type Renderer interface {
	RedrawWindow(rows []Row)
	MoveHighlight(prevRow, newRow int)
}

// State is the session lifecycle phase.
type State int

const (
	Idle State = iota
	Active
)

// Session is the single evolving state object for one launcher run.
type Session struct {
	catalog  *catalog.Catalog
	engine   *filter.Engine
	history  *filter.History
	view     *viewport.Viewport
	results  []catalog.Item
	query    string
	state    State
	loader   Loader
	executor Executor
	renderer Renderer
	onDone   func()
}

// New wires a session over an already-built catalog. rows is the fixed
// viewport height. onDone may be nil.
func New(c *catalog.Catalog, rows int, loader Loader, executor Executor, renderer Renderer, onDone func()) *Session {
	s := &Session{
		catalog:  c,
		engine:   filter.NewEngine(c),
		history:  &filter.History{},
		view:     viewport.New(rows),
		loader:   loader,
		executor: executor,
		renderer: renderer,
		onDone:   onDone,
	}
	s.ListInit()
	return s
}

// State returns the current lifecycle phase.
func (s *Session) State() State { return s.state }

// Query returns the accepted query string.
func (s *Session) Query() string { return s.query }

// History exposes the accepted-query stack.
func (s *Session) History() *filter.History { return s.history }

// Engine exposes the filter cache engine.
func (s *Session) Engine() *filter.Engine { return s.engine }

// Viewport exposes the viewport/selection manager.
func (s *Session) Viewport() *viewport.Viewport { return s.view }

// Results returns the active result list.
func (s *Session) Results() []catalog.Item { return s.results }

// SelectedItem returns the item under the selection, if any.
func (s *Session) SelectedItem() (catalog.Item, bool) {
	sel := s.view.Selected()
	if sel == 0 || sel > len(s.results) {
		return catalog.Item{}, false
	}
	return s.results[sel-1], true
}

// Start activates the session and re-displays the highlight on whatever the
// viewport currently selects. It does not touch query or viewport state;
// ListInit owns that.
func (s *Session) Start() {
	if s.state == Active {
		return
	}
	s.state = Active
	events.Session.Start()
	if sel := s.view.Selected(); sel > 0 {
		row := s.view.RowFor(sel)
		s.renderer.MoveHighlight(row, row)
	}
}

// Stop deactivates the session. Stopping an idle session is a no-op.
func (s *Session) Stop() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	events.Session.Stop()
}

// ListInit resets to a clean slate: empty query, cleared history, full
// catalog as the active list, viewport at the top.
func (s *Session) ListInit() {
	s.query = ""
	s.history.Reset()
	s.results = s.catalog.All()
	s.applyRedraw(s.view.Reset(len(s.results)))
}

// Type appends one character to the query. The character is folded to
// lowercase before filtering. Returns false when the extended query matches
// nothing, in which case no state changes at all.
func (s *Session) Type(r rune) bool {
	next := s.query + string(unicode.ToLower(r))
	result, ok := s.engine.Filter(next, s.query)
	if !ok {
		events.Filter.Reject(next)
		return false
	}
	s.history.Push(s.query)
	s.query = next
	s.results = result
	s.applyRedraw(s.view.Reset(len(s.results)))
	events.Filter.Accept(next, len(result))
	return true
}

// Backspace restores the previously accepted query. A no-op when there is
// nothing to undo. The restored query was cached when it was pushed, so this
// never rescans; a cache miss here means history and cache desynchronized,
// which is unrecoverable.
func (s *Session) Backspace() bool {
	popped, ok := s.history.Pop()
	if !ok {
		return false
	}
	if !s.engine.Cached(popped) {
		panic(fmt.Sprintf("session: history query %q missing from filter cache", popped))
	}
	result, _ := s.engine.Filter(popped, "")
	s.query = popped
	s.results = result
	s.applyRedraw(s.view.Reset(len(s.results)))
	events.Filter.Backspace(popped)
	return true
}

// MoveUp moves the selection up one entry.
func (s *Session) MoveUp() {
	s.applyRedraw(s.view.MoveUp())
	events.Session.Cursor(s.view.Selected())
}

// MoveDown moves the selection down one entry.
func (s *Session) MoveDown() {
	s.applyRedraw(s.view.MoveDown())
	events.Session.Cursor(s.view.Selected())
}

// Confirm launches the selected item. The session goes idle and signals the
// done callback before the command is handed to the executor; execution is
// fire-and-forget. Returns false when nothing is selected.
func (s *Session) Confirm() bool {
	item, ok := s.SelectedItem()
	if !ok {
		return false
	}
	s.state = Idle
	if s.onDone != nil {
		s.onDone()
	}
	events.Session.Confirm(item.Name, item.Command)
	s.executor.Exec(item.Command)
	return true
}

// Cancel goes idle without launching anything. Cancelling an idle session
// is a no-op; the done callback fires at most once per activation.
func (s *Session) Cancel() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	if s.onDone != nil {
		s.onDone()
	}
	events.Session.Cancel()
}

// Refresh rebuilds the catalog from the loader. On failure the existing
// catalog, caches, history, and viewport all stay as they were; only a
// complete valid replacement is ever applied.
func (s *Session) Refresh() error {
	items, err := s.loader.Rescan()
	if err != nil {
		events.Catalog.RebuildFailed(err)
		return fmt.Errorf("rebuild catalog: %w", err)
	}
	s.catalog.Rebuild(items)
	s.engine.Invalidate()
	s.history.Reset()
	s.query = ""
	s.results = s.catalog.All()
	s.applyRedraw(s.view.Reset(len(s.results)))
	events.Catalog.Rebuilt(len(items))
	if s.state == Active {
		if sel := s.view.Selected(); sel > 0 {
			row := s.view.RowFor(sel)
			s.renderer.MoveHighlight(row, row)
		}
	}
	return nil
}

// applyRedraw forwards the viewport's redraw decision to the renderer.
func (s *Session) applyRedraw(r viewport.Redraw) {
	switch r.Kind {
	case viewport.RedrawFull:
		s.renderer.RedrawWindow(s.WindowRows())
	case viewport.RedrawHighlight:
		s.renderer.MoveHighlight(r.PrevRow, r.NewRow)
	}
}

// WindowRows materializes the current visible window, padding with empty
// placeholders past the end of the result list.
func (s *Session) WindowRows() []Row {
	rows := make([]Row, s.view.Rows())
	for i := range rows {
		idx := s.view.IndexFor(i + 1)
		if idx < 1 || idx > len(s.results) {
			rows[i] = Row{Empty: true}
			continue
		}
		item := s.results[idx-1]
		rows[i] = Row{
			Name:     item.Name,
			Icon:     item.Icon,
			Selected: idx == s.view.Selected(),
		}
	}
	return rows
}
