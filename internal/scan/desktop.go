package scan

import (
	"bufio"
	"os"
	"strings"
)

// desktopEntry holds the subset of a freedesktop .desktop file the catalog
// cares about.
type desktopEntry struct {
	Name      string
	Exec      string
	Icon      string
	NoDisplay bool
	Terminal  bool
	Hidden    bool
}

// parseDesktopFile extracts Name/Exec/Icon from the [Desktop Entry] group.
// Localized keys (Name[xx]) and other groups are ignored.
func parseDesktopFile(path string) (desktopEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return desktopEntry{}, err
	}
	defer f.Close()

	var entry desktopEntry
	inEntry := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inEntry = line == "[Desktop Entry]"
			continue
		}
		if !inEntry {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Name":
			entry.Name = strings.TrimSpace(value)
		case "Exec":
			entry.Exec = strings.TrimSpace(value)
		case "Icon":
			entry.Icon = strings.TrimSpace(value)
		case "NoDisplay":
			entry.NoDisplay = strings.EqualFold(strings.TrimSpace(value), "true")
		case "Hidden":
			entry.Hidden = strings.EqualFold(strings.TrimSpace(value), "true")
		case "Terminal":
			entry.Terminal = strings.EqualFold(strings.TrimSpace(value), "true")
		}
	}
	return entry, scanner.Err()
}

// stripExecFieldCodes removes %f/%u style placeholders from an Exec line.
func stripExecFieldCodes(exec string) string {
	fields := strings.Fields(exec)
	kept := fields[:0]
	for _, field := range fields {
		if len(field) == 2 && field[0] == '%' {
			continue
		}
		kept = append(kept, field)
	}
	return strings.Join(kept, " ")
}
