package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, k := range []string{"DISCIPLE_DB", "DISCIPLE_COURSE", "DISCIPLE_LOG_LEVEL", "DISCIPLE_LOG_MODE", "DISCIPLE_EPHEMERAL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyDB, "", "")
	fs.String(KeyLogLevel, "", "")
	fs.Bool(KeyEphemeral, false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "warn", LogMode: "dev"}, cfg)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	isolate(t)
	t.Setenv("DISCIPLE_DB", "/tmp/env.db")
	t.Setenv("DISCIPLE_LOG_LEVEL", "debug")
	t.Setenv("DISCIPLE_EPHEMERAL", "true")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Ephemeral)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("DISCIPLE_DB", "/tmp/env.db")

	v := New()
	fs := testFlags()
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--db", "/tmp/flag.db"}))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.db", cfg.DBPath)
}

func TestLoad_UnsetFlagKeepsEnv(t *testing.T) {
	isolate(t)
	t.Setenv("DISCIPLE_LOG_LEVEL", "error")

	v := New()
	fs := testFlags()
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "disciple")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("course: /srv/course.json\nlog-level: info\n"), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "/srv/course.json", cfg.CoursePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "disciple")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("db: [unterminated\n"), 0o644))

	_, err := Load(New())
	require.Error(t, err)
}
