package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"

	"launchbox/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envRows        = "LAUNCHBOX_ROWS"
	envCacheFile   = "LAUNCHBOX_CACHE_FILE"
	envConfigFile  = "LAUNCHBOX_CONFIG_FILE"
	envDocumentDir = "LAUNCHBOX_DOCUMENT_DIRS"
	envTrace       = "LAUNCHBOX_TRACE"
	envLogFile     = "LAUNCHBOX_LOG_FILE"
)

// defaultRows is used when neither configuration nor the terminal supplies
// a usable row count.
const defaultRows = 10

// Load parses configuration from CLI arguments and environment variables,
// layered over the optional TOML config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	filePath := envOrDefault(env, envConfigFile, defaultConfigPath())
	file, err := loadFile(filePath)
	if err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", filePath, err)
	}

	fs := flag.NewFlagSet("launchbox", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	rows := fs.Int("rows", envOrInt(env, envRows, file.Rows), "number of visible result rows (0 derives from terminal height)")
	cacheFile := fs.String("cache-file", envOrDefault(env, envCacheFile, file.CacheFile), "path to the persisted catalog cache")
	docDirs := fs.String("document-dirs", envOrDefault(env, envDocumentDir, strings.Join(file.DocumentDirs, string(os.PathListSeparator))), "colon-separated document directories to index")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Trace), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *rows < 0 {
		return Config{}, fmt.Errorf("rows must be >= 0 (got %d)", *rows)
	}

	cfg := Config{
		App: app.Config{
			Rows:         resolveRows(*rows),
			CachePath:    defaultedCachePath(*cacheFile),
			DocumentDirs: filepath.SplitList(*docDirs),
			HighlightFg:  file.Highlight.Foreground,
			HighlightBg:  file.Highlight.Background,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"rows":         strconv.Itoa(*rows),
			"cacheFile":    *cacheFile,
			"documentDirs": *docDirs,
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// resolveRows falls back to the terminal height (minus the prompt line)
// and finally to a fixed default. The row count is set once: the viewport
// never resizes mid-session.
func resolveRows(rows int) int {
	if rows > 0 {
		return rows
	}
	if _, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil && height > 2 {
		return height - 2
	}
	return defaultRows
}

func defaultedCachePath(path string) string {
	if path != "" {
		return path
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cacheDir, "launchbox", "catalog")
}

func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "launchbox", "config.toml")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
