package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, 3, cfg.MinPlayers)
	require.Equal(t, 6, cfg.MaxPlayers)
	require.Equal(t, 1, cfg.DiceMin)
	require.Equal(t, 16, cfg.DiceMax)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HH_HTTP_ADDR", ":9090")
	t.Setenv("HH_MAX_PLAYERS", "4")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, 4, cfg.MaxPlayers)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "http_addr: \":7070\"\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTPAddr)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 6, cfg.MaxPlayers)
}

func TestLoadMissingFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
}
