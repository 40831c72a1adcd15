package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// File mirrors the optional TOML config file. Flags and environment
// variables override anything set here.
type File struct {
	Rows         int       `toml:"rows"`
	CacheFile    string    `toml:"cache_file"`
	DocumentDirs []string  `toml:"document_dirs"`
	LogFile      string    `toml:"log_file"`
	Trace        bool      `toml:"trace"`
	Highlight    Highlight `toml:"highlight"`
}

// Highlight is the selected-row color pair handed to the renderer.
type Highlight struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

// loadFile reads the TOML file at path. A missing file (or empty path) is
// not an error; malformed TOML is.
func loadFile(path string) (File, error) {
	var file File
	if path == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return file, nil
	}
	if err != nil {
		return File{}, err
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return File{}, err
	}
	return file, nil
}
