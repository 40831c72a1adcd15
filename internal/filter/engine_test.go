package filter

import (
	"reflect"
	"testing"

	"launchbox/internal/catalog"
)

func scenarioCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Item{
		catalog.NewItem(catalog.Application, "Firefox", "firefox", ""),
		catalog.NewItem(catalog.Executable, "firefox-esr", "/usr/bin/firefox-esr", ""),
		catalog.NewItem(catalog.Document, "file.pdf", "xdg-open file.pdf", ""),
	})
}

func names(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestEmptyQueryIdentity(t *testing.T) {
	c := scenarioCatalog()
	e := NewEngine(c)
	result, ok := e.Filter("", "anything")
	if !ok {
		t.Fatal("expected empty query to be accepted")
	}
	if !reflect.DeepEqual(names(result), []string{"Firefox", "firefox-esr", "file.pdf"}) {
		t.Fatalf("expected full catalog order, got %v", names(result))
	}
	if e.Scans() != 0 {
		t.Fatalf("expected no scan for the pre-seeded empty query, got %d", e.Scans())
	}
}

func TestIncrementalNarrowingMatchesSpecOrder(t *testing.T) {
	e := NewEngine(scenarioCatalog())
	prev := ""
	for _, q := range []string{"f", "fi", "fir", "fire"} {
		if _, ok := e.Filter(q, prev); !ok {
			t.Fatalf("expected %q accepted", q)
		}
		prev = q
	}
	result, ok := e.Filter("fire", "fir")
	if !ok {
		t.Fatal("expected cached hit for fire")
	}
	if !reflect.DeepEqual(names(result), []string{"Firefox", "firefox-esr"}) {
		t.Fatalf("expected shorter folded name first, got %v", names(result))
	}
}

func TestOffsetThenMatchKeyTieBreak(t *testing.T) {
	c := catalog.New([]catalog.Item{
		catalog.NewItem(catalog.Application, "xterm", "xterm", ""),
		catalog.NewItem(catalog.Application, "terminator", "terminator", ""),
	})
	e := NewEngine(c)
	result, ok := e.Filter("term", "")
	if !ok {
		t.Fatal("expected matches for term")
	}
	// terminator matches at offset 0, xterm at offset 1: earliest wins even
	// though xterm is the shorter name.
	if !reflect.DeepEqual(names(result), []string{"terminator", "xterm"}) {
		t.Fatalf("expected earliest-occurrence ranking, got %v", names(result))
	}
}

func TestPrefixSortsBeforeLongerName(t *testing.T) {
	c := catalog.New([]catalog.Item{
		catalog.NewItem(catalog.Executable, "gimp-console", "gimp-console", ""),
		catalog.NewItem(catalog.Executable, "gimp", "gimp", ""),
	})
	e := NewEngine(c)
	result, _ := e.Filter("gimp", "")
	if !reflect.DeepEqual(names(result), []string{"gimp", "gimp-console"}) {
		t.Fatalf("expected strict prefix first, got %v", names(result))
	}
}

func TestIdempotence(t *testing.T) {
	e := NewEngine(scenarioCatalog())
	first, ok := e.Filter("fire", "")
	if !ok {
		t.Fatal("expected acceptance")
	}
	scans := e.Scans()
	second, ok := e.Filter("fire", "")
	if !ok {
		t.Fatal("expected second call accepted")
	}
	if !reflect.DeepEqual(names(first), names(second)) {
		t.Fatalf("expected identical results, got %v then %v", names(first), names(second))
	}
	if e.Scans() != scans {
		t.Fatalf("expected cache hit without rescan, scans went %d -> %d", scans, e.Scans())
	}
}

func TestIncrementalEqualsDirect(t *testing.T) {
	queries := []string{"f", "fi", "fir", "fire"}
	incremental := NewEngine(scenarioCatalog())
	prev := ""
	var viaNarrowing []string
	for _, q := range queries {
		result, ok := incremental.Filter(q, prev)
		if !ok {
			t.Fatalf("expected %q accepted", q)
		}
		viaNarrowing = names(result)
		prev = q
	}

	direct := NewEngine(scenarioCatalog())
	result, ok := direct.Filter("fire", "")
	if !ok {
		t.Fatal("expected direct filter accepted")
	}
	if !reflect.DeepEqual(viaNarrowing, names(result)) {
		t.Fatalf("incremental path %v differs from direct path %v", viaNarrowing, names(result))
	}
}

func TestRejectedQueryAndNegativeCacheStability(t *testing.T) {
	e := NewEngine(scenarioCatalog())
	if _, ok := e.Filter("fire", ""); !ok {
		t.Fatal("expected fire accepted")
	}
	if _, ok := e.Filter("firez", "fire"); ok {
		t.Fatal("expected firez rejected")
	}
	scans := e.Scans()
	for i := 0; i < 3; i++ {
		if _, ok := e.Filter("firez", "fire"); ok {
			t.Fatal("expected firez to stay rejected")
		}
	}
	if e.Scans() != scans {
		t.Fatalf("expected negative cache to avoid rescans, scans went %d -> %d", scans, e.Scans())
	}
	// The positive entry for the previous query is untouched.
	if !e.Cached("fire") {
		t.Fatal("expected fire to remain cached after rejection")
	}
}

func TestInvalidateClearsBothCaches(t *testing.T) {
	c := scenarioCatalog()
	e := NewEngine(c)
	e.Filter("fire", "")
	e.Filter("zzz", "")
	c.Rebuild([]catalog.Item{catalog.NewItem(catalog.Application, "zzz-app", "zzz", "")})
	e.Invalidate()
	if e.Cached("fire") {
		t.Fatal("expected positive cache cleared")
	}
	result, ok := e.Filter("zzz", "")
	if !ok {
		t.Fatal("expected zzz to match after rebuild")
	}
	if len(result) != 1 || result[0].Name != "zzz-app" {
		t.Fatalf("unexpected post-rebuild result %v", names(result))
	}
	empty, ok := e.Filter("", "")
	if !ok || len(empty) != 1 {
		t.Fatalf("expected re-seeded empty query over new catalog, got %v", names(empty))
	}
}

func TestNarrowingFallsBackToCatalogWithoutPreviousEntry(t *testing.T) {
	e := NewEngine(scenarioCatalog())
	// "ire" was never accepted, so filtering against it as previous must
	// scan the full catalog instead.
	result, ok := e.Filter("fir", "ire")
	if !ok {
		t.Fatal("expected acceptance")
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 matches from full catalog, got %v", names(result))
	}
}
