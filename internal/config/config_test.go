package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "duskmire", cfg.Sim.Seed)
	assert.Zero(t, cfg.Sim.MaxSteps)
	assert.False(t, cfg.Chronicle.Enabled)
	assert.Equal(t, 64, cfg.Chronicle.FlushEvery)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duskmire.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[sim]
seed = "rattikin"
max_steps = 500
min_importance = "verbose"

[chronicle]
enabled = true
flush_every = 8

[logging]
level = "debug"
format = "json"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rattikin", cfg.Sim.Seed)
	assert.Equal(t, 500, cfg.Sim.MaxSteps)
	assert.Equal(t, "verbose", cfg.Sim.MinImportance)
	assert.True(t, cfg.Chronicle.Enabled)
	assert.Equal(t, 8, cfg.Chronicle.FlushEvery)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched sections keep their defaults
	assert.Equal(t, "scripts", cfg.Sim.ScriptsDir)
	assert.Equal(t, 30*time.Minute, cfg.Chronicle.ConnMaxLifetime)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sim\nseed="), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
