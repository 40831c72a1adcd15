// Package filter turns typed queries into ordered result lists over the
// catalog, memoizing every query seen in the session. Forward typing narrows
// the previous query's cached result instead of rescanning the catalog, and
// queries known to match nothing are remembered in a negative cache.
package filter

import (
	"sort"
	"strings"

	"launchbox/internal/catalog"
)

// Engine memoizes filter results per query string. It never mutates the
// catalog or any item; match offsets live only inside one Filter call.
type Engine struct {
	catalog *catalog.Catalog
	results map[string][]catalog.Item
	misses  map[string]struct{}
	scans   int
}

// NewEngine builds an engine over the given catalog with the empty query
// pre-seeded to the full catalog order.
func NewEngine(c *catalog.Catalog) *Engine {
	e := &Engine{catalog: c}
	e.Invalidate()
	return e
}

// Invalidate drops both caches in lock-step and re-seeds the empty query.
// Must be called whenever the catalog is rebuilt.
func (e *Engine) Invalidate() {
	e.results = map[string][]catalog.Item{
		"": e.catalog.All(),
	}
	e.misses = make(map[string]struct{})
}

// Cached reports whether query has a positive cache entry.
func (e *Engine) Cached(query string) bool {
	_, ok := e.results[query]
	return ok
}

// Scans counts candidate-set scans performed since construction or the last
// invalidation. Cache hits and negative-cache hits do not scan.
func (e *Engine) Scans() int {
	return e.scans
}

// match pairs an item with the offset of the leftmost query occurrence in
// its match key. Offsets are scratch for a single sort, never stored.
type match struct {
	item   catalog.Item
	offset int
}

// Filter returns the ordered items whose match key contains query, or
// ok=false when the query matches nothing. previous names the query this one
// was derived from by appending a single character; when its result is
// cached it becomes the candidate set (monotonic narrowing). A rejected
// query leaves the engine's positive state untouched apart from recording
// the miss.
func (e *Engine) Filter(query, previous string) ([]catalog.Item, bool) {
	if _, missed := e.misses[query]; missed {
		return nil, false
	}
	if cached, ok := e.results[query]; ok {
		return cached, true
	}

	candidates := e.catalog.All()
	if prev, ok := e.results[previous]; ok {
		candidates = prev
	}

	e.scans++
	matches := make([]match, 0, len(candidates))
	for _, item := range candidates {
		if off := strings.Index(item.MatchKey, query); off >= 0 {
			matches = append(matches, match{item: item, offset: off})
		}
	}
	if len(matches) == 0 {
		e.misses[query] = struct{}{}
		return nil, false
	}

	// Earlier occurrences rank first; ties fall back to the full folded
	// name, so a name sorts before any same-prefixed longer name.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].offset != matches[j].offset {
			return matches[i].offset < matches[j].offset
		}
		return matches[i].item.MatchKey < matches[j].item.MatchKey
	})

	result := make([]catalog.Item, len(matches))
	for i, m := range matches {
		result[i] = m.item
	}
	e.results[query] = result
	return result, true
}
