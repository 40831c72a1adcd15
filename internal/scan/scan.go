// Package scan builds the launcher catalog from the filesystem: desktop
// entries become Application items, executables on PATH become Executable
// items, and files under the configured document directories become Document
// items. A line-based cache file avoids rescanning on every start.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"launchbox/internal/catalog"
	"launchbox/internal/logging/events"
)

// Sources names the directories one scan covers.
type Sources struct {
	ApplicationDirs []string
	PathDirs        []string
	DocumentDirs    []string
}

// DefaultSources derives scan locations from XDG conventions and $PATH.
func DefaultSources() Sources {
	var appDirs []string
	if home, err := os.UserHomeDir(); err == nil {
		appDirs = append(appDirs, filepath.Join(home, ".local", "share", "applications"))
	}
	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, dir := range filepath.SplitList(dataDirs) {
		if dir != "" {
			appDirs = append(appDirs, filepath.Join(dir, "applications"))
		}
	}
	return Sources{
		ApplicationDirs: appDirs,
		PathDirs:        filepath.SplitList(os.Getenv("PATH")),
	}
}

// Scan walks all sources and returns the unordered item set. Unreadable
// directories are skipped, not fatal.
func Scan(src Sources) []catalog.Item {
	apps := scanApplications(src.ApplicationDirs)
	execs := scanExecutables(src.PathDirs)
	docs := scanDocuments(src.DocumentDirs)
	events.Catalog.Scanned(len(apps), len(execs), len(docs))

	items := make([]catalog.Item, 0, len(apps)+len(execs)+len(docs))
	items = append(items, apps...)
	items = append(items, execs...)
	items = append(items, docs...)
	return items
}

func scanApplications(dirs []string) []catalog.Item {
	var (
		mu    sync.Mutex
		items []catalog.Item
		seen  = make(map[string]struct{})
	)
	conf := &fastwalk.Config{Follow: true}
	for _, dir := range dirs {
		dir := dir
		err := fastwalk.Walk(conf, dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if !strings.HasSuffix(path, ".desktop") {
				return nil
			}
			entry, perr := parseDesktopFile(path)
			if perr != nil || entry.Name == "" || entry.Exec == "" {
				return nil
			}
			if entry.NoDisplay || entry.Hidden {
				return nil
			}
			// Commands run detached without a controlling terminal, so
			// terminal-requiring entries cannot work here.
			if entry.Terminal {
				return nil
			}
			cmdline := stripExecFieldCodes(entry.Exec)
			mu.Lock()
			defer mu.Unlock()
			// Earlier dirs shadow later ones, matching desktop-entry
			// precedence.
			if _, dup := seen[entry.Name]; dup {
				return nil
			}
			seen[entry.Name] = struct{}{}
			items = append(items, catalog.NewItem(catalog.Application, entry.Name, cmdline, catalog.IconRef(entry.Icon)))
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			events.Catalog.CacheMiss(dir, err.Error())
		}
	}
	return items
}

func scanExecutables(dirs []string) []catalog.Item {
	seen := make(map[string]struct{})
	var items []catalog.Item
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if _, dup := seen[name]; dup {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.Mode()&0o111 == 0 {
				continue
			}
			seen[name] = struct{}{}
			items = append(items, catalog.NewItem(catalog.Executable, name, filepath.Join(dir, name), ""))
		}
	}
	return items
}

func scanDocuments(dirs []string) []catalog.Item {
	var (
		mu    sync.Mutex
		items []catalog.Item
	)
	conf := &fastwalk.Config{Follow: false}
	for _, dir := range dirs {
		err := fastwalk.Walk(conf, dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && path != dir {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			mu.Lock()
			items = append(items, catalog.NewItem(catalog.Document, d.Name(), "xdg-open "+path, ""))
			mu.Unlock()
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			events.Catalog.CacheMiss(dir, err.Error())
		}
	}
	// Walk order is nondeterministic across goroutines; make the scan
	// reproducible before it reaches the catalog.
	sort.Slice(items, func(i, j int) bool { return items[i].Command < items[j].Command })
	return items
}
