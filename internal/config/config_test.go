package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pathways/datapackage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, 2020, cfg.Scenario.Year)
	assert.Equal(t, 1, cfg.Scenario.Samples)
	assert.Equal(t, "pathways.log", cfg.Log.File)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathways.yaml")
	doc := `data:
  dir: export
scenario:
  year: 2035
  samples: 10
  merge: add
methods:
  names: [gwp, acid]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "export", cfg.Data.Dir)
	assert.Equal(t, 2035, cfg.Scenario.Year)
	assert.Equal(t, []string{"gwp", "acid"}, cfg.Methods.Names)
	assert.Equal(t, "debug", cfg.Log.Level) // untouched default

	p, err := cfg.MergePolicy()
	require.NoError(t, err)
	assert.Equal(t, datapackage.MergeAdd, p)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathways.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [1, 2"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PATHWAYS_DATA_DIR":  "/tmp/export",
		"PATHWAYS_YEAR":      "2050",
		"PATHWAYS_SEED":      "42",
		"PATHWAYS_LOG_LEVEL": "warn",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Defaults()
	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, "/tmp/export", cfg.Data.Dir)
	assert.Equal(t, 2050, cfg.Scenario.Year)
	assert.Equal(t, uint64(42), cfg.Scenario.Seed)

	l, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	env["PATHWAYS_SAMPLES"] = "many"
	require.ErrorIs(t, Defaults().ApplyEnv(lookup), ErrInvalid)
}

func TestLoadReadsProcessEnv(t *testing.T) {
	t.Setenv("PATHWAYS_SCENARIO", "scenario.yaml")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "scenario.yaml", cfg.Scenario.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty dir", func(c *Config) { c.Data.Dir = "" }},
		{"zero samples", func(c *Config) { c.Scenario.Samples = 0 }},
		{"bad merge", func(c *Config) { c.Scenario.Merge = "multiply" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
