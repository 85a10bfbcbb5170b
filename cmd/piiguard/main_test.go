package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATABASE_PATH", filepath.Join(dir, "users.db"))
	t.Setenv("FERNET_KEY_PATH", filepath.Join(dir, "fernet.key"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("KEEP_ALIVE", "false")
	return dir
}

func TestRun_ExitCodes(t *testing.T) {
	setup(t)

	assert.Equal(t, 0, run([]string{"init"}))
	assert.Equal(t, 1, run([]string{"selfcheck"}))
	assert.Equal(t, 0, run([]string{"encrypt"}))
	assert.Equal(t, 0, run([]string{"selfcheck"}))
	assert.Equal(t, 0, run([]string{"decrypt"}))
	assert.Equal(t, 2, run([]string{"rotate"}))
}

func TestRun_DefaultIsDemo(t *testing.T) {
	dir := setup(t)

	assert.Equal(t, 0, run(nil))
	_, err := os.Stat(filepath.Join(dir, "fernet.key"))
	require.NoError(t, err)
	assert.Equal(t, 0, run([]string{"selfcheck"}))
}

func TestRun_FlagsAndCommand(t *testing.T) {
	dir := setup(t)
	db := filepath.Join(dir, "nested", "other.db")

	assert.Equal(t, 0, run([]string{"-d", db, "init"}))
	_, err := os.Stat(db)
	require.NoError(t, err)
}

func TestRun_BadConfig(t *testing.T) {
	setup(t)
	assert.Equal(t, 2, run([]string{"-p", "never", "list"}))
}

func TestRun_KeyError(t *testing.T) {
	dir := setup(t)
	key := filepath.Join(dir, "fernet.key")
	require.NoError(t, os.WriteFile(key, []byte("not a key"), 0o600))

	assert.Equal(t, 1, run([]string{"list"}))
}

func TestRun_UnknownCommandHasNoSideEffects(t *testing.T) {
	dir := setup(t)

	assert.Equal(t, 2, run([]string{"lsit"}))

	for _, name := range []string{"fernet.key", "users.db"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err), "%s must not be created", name)
	}
}
