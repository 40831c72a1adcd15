package scan

import (
	"launchbox/internal/catalog"
	"launchbox/internal/logging"
	"launchbox/internal/logging/events"
)

// Loader is the catalog-input collaborator: cache-first load with a full
// rescan fallback, and a forced rescan for session refresh.
type Loader struct {
	sources   Sources
	cachePath string
}

// NewLoader builds a loader over the given sources. cachePath may be empty
// to disable the persisted cache entirely.
func NewLoader(sources Sources, cachePath string) *Loader {
	return &Loader{sources: sources, cachePath: cachePath}
}

// Load returns the catalog item set, preferring the persisted cache. Any
// cache failure is a cache miss: the sources are rescanned and the cache
// rewritten.
func (l *Loader) Load() []catalog.Item {
	if l.cachePath != "" {
		items, err := LoadCache(l.cachePath)
		if err == nil {
			return items
		}
		events.Catalog.CacheMiss(l.cachePath, err.Error())
	}
	items := Scan(l.sources)
	l.persist(items)
	return items
}

// Rescan ignores the cache, walks the sources, and rewrites the cache. It
// satisfies session.Loader.
func (l *Loader) Rescan() ([]catalog.Item, error) {
	items := Scan(l.sources)
	l.persist(items)
	return items, nil
}

func (l *Loader) persist(items []catalog.Item) {
	if l.cachePath == "" {
		return
	}
	if err := SaveCache(l.cachePath, items); err != nil {
		logging.Error(err)
	}
}
