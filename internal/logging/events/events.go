package events

import "launchbox/internal/logging"

type AppTracer struct{}

type FilterTracer struct{}

type SessionTracer struct{}

type CatalogTracer struct{}

var (
	App     = AppTracer{}
	Filter  = FilterTracer{}
	Session = SessionTracer{}
	Catalog = CatalogTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (FilterTracer) Accept(query string, results int) {
	logging.Trace("filter.accept", map[string]interface{}{"query": query, "results": results})
}

func (FilterTracer) Reject(query string) {
	logging.Trace("filter.reject", map[string]interface{}{"query": query})
}

func (FilterTracer) Backspace(query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"query": query})
}

func (SessionTracer) Start() {
	logging.Trace("session.start", nil)
}

func (SessionTracer) Stop() {
	logging.Trace("session.stop", nil)
}

func (SessionTracer) Cursor(index int) {
	logging.Trace("session.cursor", map[string]interface{}{"index": index})
}

func (SessionTracer) Confirm(name, command string) {
	logging.Trace("session.confirm", map[string]interface{}{"name": name, "command": command})
}

func (SessionTracer) Cancel() {
	logging.Trace("session.cancel", nil)
}

func (CatalogTracer) Rebuilt(items int) {
	logging.Trace("catalog.rebuilt", map[string]interface{}{"items": items})
}

func (CatalogTracer) RebuildFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.rebuild-failed", map[string]interface{}{"error": err.Error()})
}

func (CatalogTracer) CacheMiss(path, reason string) {
	logging.Trace("catalog.cache-miss", map[string]interface{}{"path": path, "reason": reason})
}

func (CatalogTracer) Scanned(apps, execs, docs int) {
	logging.Trace("catalog.scanned", map[string]interface{}{"apps": apps, "execs": execs, "docs": docs})
}
