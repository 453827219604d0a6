package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"gratitude"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
	assert.Equal(t, "journal.db", cfg.DatabasePath)
	assert.Empty(t, cfg.AuthToken)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "https://api.example.com", "-d", "/tmp/j.db", "-t", "tok-1", "-i", "5")

	cfg := LoadConfig()
	assert.Equal(t, "https://api.example.com", cfg.ServerBaseURL)
	assert.Equal(t, "/tmp/j.db", cfg.DatabasePath)
	assert.Equal(t, "tok-1", cfg.AuthToken)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JsonLayer(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"server_base_url": "https://json.example.com",
		"database_path": "json.db",
		"auth_token": "json-token",
		"request_timeout": "10s"
	}`), 0o600))

	withArgs(t, "-c", file)

	cfg := LoadConfig()
	assert.Equal(t, "https://json.example.com", cfg.ServerBaseURL)
	assert.Equal(t, "json.db", cfg.DatabasePath)
	assert.Equal(t, "json-token", cfg.AuthToken)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"server_base_url": "https://json.example.com"}`), 0o600))

	withArgs(t, "-c", file, "-a", "https://flag.example.com")

	cfg := LoadConfig()
	assert.Equal(t, "https://flag.example.com", cfg.ServerBaseURL, "flags are the last layer")
}

func TestParseJson_MissingFields_KeepDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"auth_token": "only-token"}`), 0o600))

	withArgs(t, "-c", file)

	cfg := LoadConfig()
	assert.Equal(t, "only-token", cfg.AuthToken)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
