package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, path, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_degree = 4
guard_ceiling = 20

[log]
level = "debug"

[bench]
workers = 8
`), 0o644))

	cfg, used, err := Load(LoadOptions{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 4, cfg.DefaultDegree)
	assert.Equal(t, 20, cfg.GuardCeiling)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Bench.Workers)
	// untouched keys keep their defaults
	assert.Equal(t, Default().Bench.Count, cfg.Bench.Count)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("NXCUBE_DEFAULT_DEGREE", "2")
	t.Setenv("NXCUBE_LOG_LEVEL", "warn")

	cfg, _, err := Load(LoadOptions{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DefaultDegree)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(LoadOptions{File: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"degree", func(c *Config) { c.DefaultDegree = 5 }, "DefaultDegree"},
		{"guard", func(c *Config) { c.GuardCeiling = 0 }, "GuardCeiling"},
		{"level", func(c *Config) { c.Log.Level = "trace" }, "Level"},
		{"workers", func(c *Config) { c.Bench.Workers = 0 }, "Workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("default_degree = 7\n"), 0o644))

	_, _, err := Load(LoadOptions{Dir: dir})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWriteThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	want := Default()
	want.DefaultDegree = 2
	want.Log.File = "/tmp/nxcube.log"
	require.NoError(t, Write(path, want, false))

	err := Write(path, want, false)
	require.Error(t, err, "second write without overwrite must fail")

	got, used, err := Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, want, got)
}
