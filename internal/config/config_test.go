package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.Endpoint.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Endpoint.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.Endpoint.UserAgent)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "auto", cfg.Mode)
	assert.Equal(t, "testnet3", cfg.Network)
}

func TestLoadOverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("POPSTATS_TEST_URL", "http://127.0.0.1:8080/")
	path := writeFile(t, "popstats.yaml", `
endpoint:
  base_url: ${POPSTATS_TEST_URL}
  timeout: 3s
locale: FR
mode: address
log_level: DEBUG
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.Endpoint.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Endpoint.Timeout)
	assert.Equal(t, DefaultAccept, cfg.Endpoint.Accept, "unset fields keep defaults")
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, "address", cfg.Mode)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"empty url", func(c *Config) { c.Endpoint.BaseURL = "" }, "base_url is required"},
		{"no host", func(c *Config) { c.Endpoint.BaseURL = "https://" }, "missing scheme or host"},
		{"bad scheme", func(c *Config) { c.Endpoint.BaseURL = "ftp://example.com" }, "invalid url scheme"},
		{"zero timeout", func(c *Config) { c.Endpoint.Timeout = 0 }, "timeout must be > 0"},
		{"unknown locale", func(c *Config) { c.Locale = "de" }, "locale: unsupported value"},
		{"unknown mode", func(c *Config) { c.Mode = "guess" }, "mode: unsupported value"},
		{"unknown network", func(c *Config) { c.Network = "litecoin" }, "network: unsupported value"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("POPSTATS_ENV_A", "old")
	path := writeFile(t, ".env", "# comment\nPOPSTATS_ENV_A=\"new\"\nPOPSTATS_ENV_B=two\n")
	t.Cleanup(func() { os.Unsetenv("POPSTATS_ENV_B") })

	LoadEnv(path, filepath.Join(t.TempDir(), "absent.env"))

	assert.Equal(t, "new", os.Getenv("POPSTATS_ENV_A"))
	assert.Equal(t, "two", os.Getenv("POPSTATS_ENV_B"))
}
