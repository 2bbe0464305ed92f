package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arcade.log")

	logger, err := New(Options{Path: path, Level: "debug"})
	require.NoError(t, err)

	logger.Info("round finished", zap.String("game", "snake"), zap.Int("score", 40))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "round finished")
	assert.Contains(t, line, "snake")
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.log")

	logger, err := New(Options{Path: path, Level: "WARN"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewEmptyPathIsNop(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("dropped")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Options{Path: filepath.Join(t.TempDir(), "a.log"), Level: "loud"})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "logging: invalid level"))
}

func TestGooseLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.log")
	logger, err := New(Options{Path: path, Level: "debug"})
	require.NoError(t, err)

	g := NewGooseLogger(logger)
	g.Printf("OK   %s\n", "00001_scores.sql")
	g.Fatalf("failed %d", 1)
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "migrate")
	assert.Contains(t, string(data), "00001_scores.sql")
	assert.Contains(t, string(data), "failed 1")
}
