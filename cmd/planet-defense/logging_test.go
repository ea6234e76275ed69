package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/planet-defense/config"
)

func TestSetupLoggingDisabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, file, err := setupLogging(config.LogConfig{Level: "disabled", Dir: dir, File: "x.log"})
	require.NoError(t, err)
	assert.Nil(t, file)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no directory created when disabled")
}

func TestSetupLoggingWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, file, err := setupLogging(config.LogConfig{Level: "debug", Dir: dir, File: "game.log"})
	require.NoError(t, err)
	require.NotNil(t, file)
	defer file.Close()

	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	logger.Info().Str("scene", "default").Msg("Test log message")
	logger.Trace().Msg("below level")

	data, err := os.ReadFile(filepath.Join(dir, "game.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Test log message")
	assert.Contains(t, string(data), "scene=default")
	assert.NotContains(t, string(data), "below level")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.TraceLevel, parseLevel("TRACE"))
	assert.Equal(t, zerolog.Disabled, parseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}
