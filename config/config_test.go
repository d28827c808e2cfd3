package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env())
	assert.Equal(t, 640, cfg.GetWindowWidth())
	assert.Equal(t, 480, cfg.GetWindowHeight())
	assert.Equal(t, "vect2d test", cfg.GetWindowTitle())
	assert.Equal(t, 0.001, cfg.GetTolerance())
	assert.Equal(t, 0.5, cfg.GetRotationSpeed())
	assert.Equal(t, 0.0, cfg.GetGravity())
	assert.Equal(t, defaultPixelsPerUnit, cfg.GetPixelsPerUnit())
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "1024")
	t.Setenv("GRAVITY", "-3.5")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load("test")
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.GetWindowWidth())
	assert.Equal(t, -3.5, cfg.GetGravity())
	assert.Equal(t, "error", cfg.GetLogLevel())
}

func TestEnvSelectsFile(t *testing.T) {
	t.Setenv(keyEnv, "test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env())
	assert.Equal(t, 640, cfg.GetWindowWidth())
}

func TestDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("missing")
	require.NoError(t, err)

	assert.Equal(t, defaultWindowWidth, cfg.GetWindowWidth())
	assert.Equal(t, defaultWindowHeight, cfg.GetWindowHeight())
	assert.Equal(t, defaultWindowTitle, cfg.GetWindowTitle())
	assert.Equal(t, defaultTolerance, cfg.GetTolerance())
	assert.Equal(t, defaultRotationSpeed, cfg.GetRotationSpeed())
	assert.Equal(t, defaultGravity, cfg.GetGravity())
	assert.Equal(t, defaultLogLevel, cfg.GetLogLevel())
}
