package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"DATABASE_PATH", "FERNET_KEY_PATH", "LOG_LEVEL", "LOG_FORMAT", "TRANSFORM_POLICY", "KEEP_ALIVE"}

// isolate runs the test in an empty directory with none of the config
// variables set. Original values are restored on cleanup.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		DatabasePath: "/data/test_users.db",
		KeyPath:      "/data/fernet.key",
		LogLevel:     "info",
		LogFormat:    "text",
		Policy:       PolicyContinue,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_PATH", "/tmp/x.db")
	t.Setenv("FERNET_KEY_PATH", "/tmp/x.key")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("TRANSFORM_POLICY", "abort")
	t.Setenv("KEEP_ALIVE", "true")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	want := Config{
		DatabasePath: "/tmp/x.db",
		KeyPath:      "/tmp/x.key",
		LogLevel:     "debug",
		LogFormat:    "json",
		Policy:       PolicyAbort,
		KeepAlive:    true,
	}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_PATH", "/env.db")
	t.Setenv("FERNET_KEY_PATH", "/env.key")

	cfg, err := LoadConfig([]string{"list", "-d", "/flag.db", "-l", "warn"})
	require.NoError(t, err)

	assert.Equal(t, "/flag.db", cfg.DatabasePath)
	assert.Equal(t, "/env.key", cfg.KeyPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_JsonBelowEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cfg.json")
	writeFile(t, path, `{"database_path":"/json.db","key_path":"/json.key","policy":"abort"}`)
	t.Setenv("FERNET_KEY_PATH", "/env.key")

	cfg, err := LoadConfig([]string{"-c", path})
	require.NoError(t, err)

	assert.Equal(t, "/json.db", cfg.DatabasePath)
	assert.Equal(t, "/env.key", cfg.KeyPath)
	assert.Equal(t, PolicyAbort, cfg.Policy)
	assert.Equal(t, "info", cfg.LogLevel, "keys missing from the file keep defaults")
}

func TestLoadConfig_JsonErrors(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig([]string{"-config", filepath.Join(dir, "missing.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `{not json`)
	_, err = LoadConfig([]string{"-c", bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "DATABASE_PATH=/dotenv.db\nFERNET_KEY_PATH=/dotenv.key\n")
	t.Setenv("FERNET_KEY_PATH", "/real.key")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "/dotenv.db", cfg.DatabasePath)
	assert.Equal(t, "/real.key", cfg.KeyPath, "real environment wins over .env")
}

func TestLoadConfig_InvalidEnv(t *testing.T) {
	isolate(t)
	t.Setenv("KEEP_ALIVE", "maybe")

	_, err := LoadConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestLoadConfig_InvalidPolicy(t *testing.T) {
	isolate(t)

	_, err := LoadConfig([]string{"-p", "sometimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transform policy")
}

func TestValidate(t *testing.T) {
	base := func() Config {
		var c Config
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"abort", func(c *Config) { c.Policy = PolicyAbort }, ""},
		{"empty db", func(c *Config) { c.DatabasePath = "" }, "database path"},
		{"empty key", func(c *Config) { c.KeyPath = "" }, "key path"},
		{"bad policy", func(c *Config) { c.Policy = "x" }, "unknown transform policy"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "unknown log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
