package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haircut/internal/game"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, uint64(0), s.Seed)
	assert.Equal(t, 800, s.WindowWidth)
	assert.Equal(t, 600, s.WindowHeight)
	assert.Equal(t, game.DefaultTuning(), s.Tuning)
}

func TestLoad_MissingDirectoryIsNotAnError(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load("/nonexistent/path")
	require.NoError(t, err)
	assert.Equal(t, game.DefaultTuning(), s.Tuning)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"seed": 42,
		"window": { "width": 1280 },
		"tuning": {
			"lives": 5,
			"courtRadius": { "x": 8 },
			"happyThreshold": 0.5
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, 1280, s.WindowWidth)
	assert.Equal(t, 600, s.WindowHeight)
	assert.Equal(t, uint32(5), s.Tuning.Lives)
	assert.Equal(t, mgl32.Vec2{8, 5}, s.Tuning.CourtRadius)
	assert.InDelta(t, 0.5, s.Tuning.HappyThreshold, 1e-6)
	assert.InDelta(t, 0.4, s.Tuning.CutTime, 1e-6)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"seed": `), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("HAIRCUT_SEED", "7")
	t.Setenv("HAIRCUT_TUNING_LIVES", "1")

	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), s.Seed)
	assert.Equal(t, uint32(1), s.Tuning.Lives)
}

func TestBindFlags(t *testing.T) {
	t.Cleanup(viper.Reset)

	fs := pflag.NewFlagSet("haircut", pflag.ContinueOnError)
	require.NoError(t, BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"--seed=99", "--log-level=warn"}))

	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, uint64(99), s.Seed)
	assert.Equal(t, "warn", s.LogLevel)
}
