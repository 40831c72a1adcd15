// Package catalog holds the set of launchable entries and their canonical
// ordering. The catalog is immutable between rebuilds: items are sorted once
// after construction and All returns that order without copying.
package catalog

import (
	"sort"
	"strings"
)

// Kind buckets items for the primary sort order. Applications sort before
// bare executables, which sort before documents.
type Kind int

const (
	Application Kind = iota
	Executable
	Document
)

func (k Kind) String() string {
	switch k {
	case Application:
		return "app"
	case Executable:
		return "exec"
	case Document:
		return "doc"
	default:
		return "unknown"
	}
}

// ParseKind maps the persisted type token back to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "app":
		return Application, true
	case "exec":
		return Executable, true
	case "doc":
		return Document, true
	default:
		return 0, false
	}
}

// IconRef is an opaque handle to icon data owned by the render collaborator.
// An empty ref means the item renders without an icon.
type IconRef string

// Item is one selectable entry. Identity fields never change after
// construction; MatchKey is derived from Name exactly once.
type Item struct {
	Kind     Kind
	Name     string
	MatchKey string
	Command  string
	Icon     IconRef
}

// NewItem builds an item, deriving the lowercase match key from name.
func NewItem(kind Kind, name, command string, icon IconRef) Item {
	return Item{
		Kind:     kind,
		Name:     name,
		MatchKey: strings.ToLower(name),
		Command:  command,
		Icon:     icon,
	}
}

// Restore rebuilds an item from persisted fields, trusting a previously
// computed match key when one is supplied.
func Restore(kind Kind, name, matchKey, command string, icon IconRef) Item {
	if matchKey == "" {
		matchKey = strings.ToLower(name)
	}
	return Item{Kind: kind, Name: name, MatchKey: matchKey, Command: command, Icon: icon}
}

// Catalog is the ordered collection of items for one session.
type Catalog struct {
	items []Item
}

// New constructs a catalog from an unordered item slice and sorts it into
// the canonical (kind, match key) order.
func New(items []Item) *Catalog {
	c := &Catalog{}
	c.Rebuild(items)
	return c
}

// All returns the canonical order. Callers must not mutate the slice.
func (c *Catalog) All() []Item {
	return c.items
}

// Len reports the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Rebuild replaces the item set wholesale and re-sorts. Dependent caches
// must be invalidated by the caller; no partial update is possible.
func (c *Catalog) Rebuild(items []Item) {
	replacement := make([]Item, len(items))
	copy(replacement, items)
	sort.SliceStable(replacement, func(i, j int) bool {
		if replacement[i].Kind != replacement[j].Kind {
			return replacement[i].Kind < replacement[j].Kind
		}
		return replacement[i].MatchKey < replacement[j].MatchKey
	})
	c.items = replacement
}
