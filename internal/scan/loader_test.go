package scan

import (
	"os"
	"path/filepath"
	"testing"

	"launchbox/internal/catalog"
)

func TestLoaderPrefersCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog")
	cached := []catalog.Item{catalog.NewItem(catalog.Application, "Cached", "cached", "")}
	if err := SaveCache(path, cached); err != nil {
		t.Fatal(err)
	}
	// Empty sources: a rescan would produce nothing, so getting the item
	// back proves the cache was used.
	loader := NewLoader(Sources{}, path)
	items := loader.Load()
	if len(items) != 1 || items[0].Name != "Cached" {
		t.Fatalf("expected cache hit, got %#v", items)
	}
}

func TestLoaderFallsBackToScanAndRewritesCache(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.desktop"), []byte("[Desktop Entry]\nName=App\nExec=app\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cachePath := filepath.Join(t.TempDir(), "catalog")
	if err := os.WriteFile(cachePath, []byte("corrupt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	loader := NewLoader(Sources{ApplicationDirs: []string{dir}}, cachePath)
	items := loader.Load()
	if len(items) != 1 || items[0].Name != "App" {
		t.Fatalf("expected rescan result, got %#v", items)
	}
	// The corrupt cache was replaced by the fresh scan.
	reloaded, err := LoadCache(cachePath)
	if err != nil {
		t.Fatalf("expected rewritten cache to parse: %v", err)
	}
	if len(reloaded) != 1 || reloaded[0].Name != "App" {
		t.Fatalf("expected rewritten cache contents, got %#v", reloaded)
	}
}

func TestRescanIgnoresCache(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "catalog")
	stale := []catalog.Item{catalog.NewItem(catalog.Application, "Stale", "stale", "")}
	if err := SaveCache(cachePath, stale); err != nil {
		t.Fatal(err)
	}
	loader := NewLoader(Sources{}, cachePath)
	items, err := loader.Rescan()
	if err != nil {
		t.Fatalf("unexpected rescan error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty scan over empty sources, got %#v", items)
	}
}
