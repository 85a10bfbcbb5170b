package config

import (
	"fmt"
	"slices"
)

const (
	PolicyContinue = "continue"
	PolicyAbort    = "abort"
)

// Config holds runtime settings for piiguard.
//
// Fields:
//   - DatabasePath: SQLite file path, ":memory:", or a postgres:// DSN.
//   - KeyPath: file holding the symmetric key; created on first run.
//   - LogLevel / LogFormat: slog level name and handler type.
//   - Policy: what the transform driver does when one record fails.
//   - KeepAlive: the demo command waits for SIGINT/SIGTERM after finishing.
type Config struct {
	DatabasePath string `env:"DATABASE_PATH" json:"database_path"`
	KeyPath      string `env:"FERNET_KEY_PATH" json:"key_path"`
	LogLevel     string `env:"LOG_LEVEL" json:"log_level"`
	LogFormat    string `env:"LOG_FORMAT" json:"log_format"`
	Policy       string `env:"TRANSFORM_POLICY" json:"policy"`
	KeepAlive    bool   `env:"KEEP_ALIVE" json:"keep_alive"`
}

// LoadDefaults populates c with the defaults used inside the container image.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "/data/test_users.db"
	c.KeyPath = "/data/fernet.key"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.Policy = PolicyContinue
	c.KeepAlive = false
}

// Validate reports settings that no component could work with.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.KeyPath == "" {
		return fmt.Errorf("key path must not be empty")
	}
	if !slices.Contains([]string{PolicyContinue, PolicyAbort}, c.Policy) {
		return fmt.Errorf("unknown transform policy %q (want %q or %q)", c.Policy, PolicyContinue, PolicyAbort)
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// LoadConfig builds a Config from defaults, .env, JSON, environment and the
// given command-line arguments (without the program name), in that order.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
