package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlehnert/scopelog/core"
)

// TestValidate checks required fields and defaulting.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Nil config.
	require.Error(t, Validate(nil))

	// Empty config is fine; category defaults.
	cfg := new(Config)
	require.NoError(t, Validate(cfg))
	require.NotEmpty(t, cfg.Category)

	// Unknown level.
	cfg = &Config{Level: "loud"}
	require.Error(t, Validate(cfg))

	// Known level, any case.
	cfg = &Config{Level: "Warning"}
	require.NoError(t, Validate(cfg))

	// File sink without a path.
	cfg = &Config{File: &FileSink{}}
	require.Error(t, Validate(cfg))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "scopelog.yaml")

	cfg := &Config{
		Category: "orders",
		Level:    "debug",
		UTC:      true,
		Console:  &ConsoleSink{Async: true, BufferSize: 64},
		File:     &FileSink{Path: filepath.Join(t.TempDir(), "orders.log"), MaxBackups: 3},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Category, loaded.Category)
	require.Equal(t, cfg.Level, loaded.Level)
	require.True(t, loaded.UTC)
	require.NotNil(t, loaded.Console)
	require.Equal(t, 64, loaded.Console.BufferSize)
	require.NotNil(t, loaded.File)
	require.Equal(t, 3, loaded.File.MaxBackups)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestMinLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, core.InformationLevel, (&Config{}).MinLevel())
	require.Equal(t, core.CriticalLevel, (&Config{Level: "critical"}).MinLevel())
	require.Equal(t, core.NoneLevel, (&Config{Level: "none"}).MinLevel())
}

func TestBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &Config{
		Category: "svc",
		Level:    "trace",
		File:     &FileSink{Path: filepath.Join(dir, "svc.log")},
	}

	log, err := Build(cfg)
	require.NoError(t, err)
	require.Equal(t, "svc", log.Category())
	require.True(t, log.Enabled(core.TraceLevel))

	log.Info("assembled from config")
	require.NoError(t, log.Close())

	data, err := filepath.Glob(filepath.Join(dir, "svc.log"))
	require.NoError(t, err)
	require.Len(t, data, 1)
}

func TestBuild_DefaultsToConsole(t *testing.T) {
	t.Parallel()

	log, err := Build(&Config{Category: "bare"})
	require.NoError(t, err)
	require.NoError(t, log.Close())
}

func TestBuild_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := Build(&Config{Level: "loud"})
	require.Error(t, err)
}
