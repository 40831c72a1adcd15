package scan

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"launchbox/internal/catalog"
)

// The catalog cache is one line per item, each line a sequence of
// "field:value," tokens. Values containing ':' or ',' corrupt the format;
// that is a known limitation of the format, and any parse failure is
// reported as an error so the caller falls back to a full rescan.

const (
	fieldType     = "type"
	fieldName     = "name"
	fieldLower    = "name_lower"
	fieldCmdline  = "cmdline"
	fieldIconPath = "icon_path"
)

// LoadCache reads the persisted catalog from path. Absence of the file or
// any malformed content is an error, never a partial result.
func LoadCache(path string) ([]catalog.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var items []catalog.Item
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := parseCacheLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func parseCacheLine(line string) (catalog.Item, error) {
	fields := make(map[string]string)
	for _, token := range strings.Split(line, ",") {
		if token == "" {
			continue
		}
		name, value, ok := strings.Cut(token, ":")
		if !ok {
			return catalog.Item{}, fmt.Errorf("malformed token %q", token)
		}
		fields[name] = value
	}
	kind, ok := catalog.ParseKind(fields[fieldType])
	if !ok {
		return catalog.Item{}, fmt.Errorf("unknown type %q", fields[fieldType])
	}
	name := fields[fieldName]
	if name == "" {
		return catalog.Item{}, fmt.Errorf("missing %s field", fieldName)
	}
	cmdline := fields[fieldCmdline]
	if cmdline == "" {
		return catalog.Item{}, fmt.Errorf("missing %s field", fieldCmdline)
	}
	return catalog.Restore(kind, name, fields[fieldLower], cmdline, catalog.IconRef(fields[fieldIconPath])), nil
}

// SaveCache writes the catalog to path atomically (temp file + rename).
func SaveCache(path string, items []catalog.Item) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-*")
	if err != nil {
		return err
	}
	w := bufio.NewWriter(tmp)
	for _, item := range items {
		fmt.Fprintf(w, "%s:%s,%s:%s,%s:%s,%s:%s,",
			fieldType, item.Kind,
			fieldName, item.Name,
			fieldLower, item.MatchKey,
			fieldCmdline, item.Command)
		if item.Icon != "" {
			fmt.Fprintf(w, "%s:%s,", fieldIconPath, item.Icon)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
