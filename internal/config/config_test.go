package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"LAUNCHBOX_CONFIG_FILE="})
	require.NoError(t, err)
	assert.Greater(t, cfg.App.Rows, 0, "rows should always resolve to a positive count")
	assert.False(t, cfg.Logging.Trace)
}

func TestFileValuesApply(t *testing.T) {
	path := writeConfigFile(t, `
rows = 7
cache_file = "/tmp/launchbox-test-catalog"
document_dirs = ["/tmp/docs"]
trace = true

[highlight]
foreground = "255"
background = "27"
`)
	cfg, err := LoadArgs(nil, []string{"LAUNCHBOX_CONFIG_FILE=" + path})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.App.Rows)
	assert.Equal(t, "/tmp/launchbox-test-catalog", cfg.App.CachePath)
	assert.Equal(t, []string{"/tmp/docs"}, cfg.App.DocumentDirs)
	assert.Equal(t, "255", cfg.App.HighlightFg)
	assert.Equal(t, "27", cfg.App.HighlightBg)
	assert.True(t, cfg.Logging.Trace)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "rows = 7\n")
	cfg, err := LoadArgs(nil, []string{
		"LAUNCHBOX_CONFIG_FILE=" + path,
		"LAUNCHBOX_ROWS=12",
	})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.App.Rows)
}

func TestFlagsOverrideEnvAndFile(t *testing.T) {
	path := writeConfigFile(t, "rows = 7\ntrace = false\n")
	cfg, err := LoadArgs(
		[]string{"-rows", "20", "-trace", "-log-file", "/tmp/launchbox.log"},
		[]string{
			"LAUNCHBOX_CONFIG_FILE=" + path,
			"LAUNCHBOX_ROWS=12",
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.App.Rows)
	assert.True(t, cfg.Logging.Trace)
	assert.Equal(t, "/tmp/launchbox.log", cfg.Logging.FilePath)
}

func TestNegativeRowsRejected(t *testing.T) {
	_, err := LoadArgs([]string{"-rows", "-1"}, []string{"LAUNCHBOX_CONFIG_FILE="})
	require.Error(t, err)
}

func TestMalformedConfigFileRejected(t *testing.T) {
	path := writeConfigFile(t, "rows = [not toml")
	_, err := LoadArgs(nil, []string{"LAUNCHBOX_CONFIG_FILE=" + path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestMissingConfigFileIsNotAnError(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"LAUNCHBOX_CONFIG_FILE=" + filepath.Join(t.TempDir(), "absent.toml")})
	require.NoError(t, err)
	assert.NotNil(t, cfg.Flags)
}
