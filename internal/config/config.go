// Package config provides YAML configuration file loading and validation.
// It handles .env loading, environment variable expansion, default values,
// and ensures every setting the lookup tool needs is usable.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL   = "https://testnet.popstats.hemi.network"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultAccept    = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
)

// Config represents the root configuration structure loaded from YAML.
type Config struct {
	Endpoint Endpoint `yaml:"endpoint"`  // Statistics site settings
	Locale   string   `yaml:"locale"`    // Message catalogue: "en" or "fr"
	Mode     string   `yaml:"mode"`      // Lookup mode: "auto", "pubkey" or "address"
	Network  string   `yaml:"network"`   // Bitcoin network used to recognise addresses
	LogLevel string   `yaml:"log_level"` // zerolog level name
}

// Endpoint describes the remote statistics site and how requests are issued to it.
type Endpoint struct {
	BaseURL   string        `yaml:"base_url"`   // Site root (supports ${VAR} env expansion)
	Timeout   time.Duration `yaml:"timeout"`    // Per-request timeout (e.g., "10s")
	UserAgent string        `yaml:"user_agent"` // Browser-like User-Agent header
	Accept    string        `yaml:"accept"`     // Accept header
}

var (
	locales  = []string{"en", "fr"}
	modes    = []string{"auto", "pubkey", "address"}
	networks = []string{"mainnet", "testnet3", "signet", "regtest"}
)

// Default returns a configuration that works without any file on disk.
func Default() *Config {
	return &Config{
		Endpoint: Endpoint{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
			Accept:    DefaultAccept,
		},
		Locale:   "en",
		Mode:     "auto",
		Network:  "testnet3",
		LogLevel: "info",
	}
}

// Validate checks every field and normalises case-insensitive names.
// It may emit warnings (to stderr) for suspicious values but does not fail on warnings.
func (c *Config) Validate() error {
	if c.Endpoint.BaseURL == "" {
		return fmt.Errorf("endpoint.base_url is required")
	}
	u, err := url.Parse(c.Endpoint.BaseURL)
	if err != nil {
		return fmt.Errorf("endpoint.base_url: invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("endpoint.base_url: invalid url (missing scheme or host)")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint.base_url: invalid url scheme %q (expected http or https)", u.Scheme)
	}
	c.Endpoint.BaseURL = strings.TrimRight(c.Endpoint.BaseURL, "/")

	if c.Endpoint.Timeout <= 0 {
		return fmt.Errorf("endpoint.timeout must be > 0")
	}
	const low = 500 * time.Millisecond
	const high = 2 * time.Minute
	if c.Endpoint.Timeout < low {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very low (%s); requests may fail under normal network jitter\n", c.Endpoint.Timeout)
	}
	if c.Endpoint.Timeout > high {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very high (%s); failures may take a long time to surface\n", c.Endpoint.Timeout)
	}

	if c.Locale, err = oneOf("locale", c.Locale, locales); err != nil {
		return err
	}
	if c.Mode, err = oneOf("mode", c.Mode, modes); err != nil {
		return err
	}
	if c.Network, err = oneOf("network", c.Network, networks); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	return nil
}

func oneOf(field, value string, allowed []string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", fmt.Errorf("%s: unsupported value %q (expected one of %s)", field, value, strings.Join(allowed, ", "))
}

// Load reads and parses a YAML configuration file on top of Default().
//
// Parameters:
//   - path: File path to the YAML configuration file; "" means defaults only
//
// Returns:
//   - *Config: Parsed and validated configuration
//   - error: File read, parse, or validation error
//
// Environment variable expansion:
//
//	Values can use ${VAR} syntax which will be expanded using os.ExpandEnv().
//	Example: base_url: ${POPSTATS_BASE_URL}
//
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadEnv reads KEY=VALUE pairs from the given .env files (".env" when none are
// given) into the process environment. Missing files are silently ignored so the
// tool works with system environment variables alone. Values already set in the
// environment are overridden.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Overload(f)
	}
}
