package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CreatesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, styles, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v1", cfg.Endpoint)
	assert.Equal(t, 500, cfg.FetchLimit)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.KeyMap)
	assert.Equal(t, "240", styles.BorderColor)
	assert.Equal(t, "9", styles.ErrorColor)

	// Config and styles files are written on first run
	_, err = os.Stat(filepath.Join(home, ".config", "leadboard", "config.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(home, ".config", "leadboard", "styles.json"))
	assert.NoError(t, err)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	stylesPath := filepath.Join(dir, "styles.json")

	fileCfg := map[string]any{
		"endpoint":    "https://api.example.com/v2",
		"fetch_limit": 100,
		"page_size":   25,
		"styles_file": stylesPath,
	}
	data, err := json.Marshal(fileCfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(configPath, data, 0644))

	cfg, _, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v2", cfg.Endpoint)
	assert.Equal(t, 100, cfg.FetchLimit)
	assert.Equal(t, 25, cfg.PageSize)
	// Unset keys keep their defaults
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LEADBOARD_ENDPOINT", "https://env.example.com/v1")

	cfg, _, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/v1", cfg.Endpoint)
}

func TestLoad_CustomStyles(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	stylesPath := filepath.Join(home, ".config", "leadboard", "styles.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(stylesPath), 0755))
	require.NoError(t, os.WriteFile(stylesPath, []byte(`{"accent_color": "99"}`), 0644))

	_, styles, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "99", styles.AccentColor)
}
