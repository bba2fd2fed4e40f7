package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	loaded, err := Load(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	require.False(t, loaded.Exists)
	require.Len(t, loaded.Warnings, 1)
	require.Equal(t, Default().DebounceMS, loaded.Config.DebounceMS)
}

func TestLoadMalformedFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "{not json at all")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NotEmpty(t, loaded.Warnings)
	require.Equal(t, Default().Volume, loaded.Config.Volume)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"enabled": false,
		"volume": 0.5,
		"categories": {"user.spam": false},
		"debounce_ms": 900,
		"trainer": {
			"enabled": true,
			"exercises": {"pushups": 300, "squats": 300},
			"reminder_interval_seconds": 1800
		}
	}`)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, loaded.Exists)
	require.Empty(t, loaded.Warnings)

	cfg := loaded.Config
	require.False(t, cfg.Enabled)
	require.Equal(t, 0.5, cfg.Volume)
	require.Equal(t, 900, cfg.DebounceMS)
	require.True(t, cfg.Trainer.Enabled)
	require.Equal(t, map[string]int{"pushups": 300, "squats": 300}, cfg.Trainer.Exercises)
	require.Equal(t, 1800, cfg.Trainer.ReminderIntervalSeconds)

	// Keys absent from the file keep their defaults.
	require.Equal(t, Default().SpamThreshold, cfg.SpamThreshold)
	require.Equal(t, Default().PlayerCmd, cfg.PlayerCmd)
	require.NotEmpty(t, cfg.PlayerArgv)
}

func TestCategoryEnabledOnlyExplicitFalseDisables(t *testing.T) {
	cfg := Default()
	cfg.Categories = map[string]bool{"user.spam": false, "task.complete": true}

	require.False(t, cfg.CategoryEnabled("user.spam"))
	require.True(t, cfg.CategoryEnabled("task.complete"))
	require.True(t, cfg.CategoryEnabled("never.mentioned"))
}

func TestSanitizeRepairsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(*testing.T, Config)
	}{
		{
			name:   "volume above one",
			mutate: func(c *Config) { c.Volume = 4 },
			check:  func(t *testing.T, c Config) { require.Equal(t, Default().Volume, c.Volume) },
		},
		{
			name:   "negative debounce",
			mutate: func(c *Config) { c.DebounceMS = -10 },
			check:  func(t *testing.T, c Config) { require.Equal(t, Default().DebounceMS, c.DebounceMS) },
		},
		{
			name:   "zero spam threshold",
			mutate: func(c *Config) { c.SpamThreshold = 0 },
			check:  func(t *testing.T, c Config) { require.Equal(t, Default().SpamThreshold, c.SpamThreshold) },
		},
		{
			name:   "negative goal clamped to zero",
			mutate: func(c *Config) { c.Trainer.Exercises = map[string]int{"pushups": -5} },
			check:  func(t *testing.T, c Config) { require.Equal(t, 0, c.Trainer.Exercises["pushups"]) },
		},
		{
			name:   "unparseable player command",
			mutate: func(c *Config) { c.PlayerCmd = `pw-play "unterminated` },
			check: func(t *testing.T, c Config) {
				require.Equal(t, Default().PlayerCmd, c.PlayerCmd)
				require.NotEmpty(t, c.PlayerArgv)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			got, warnings := sanitize(cfg)
			require.NotEmpty(t, warnings)
			tc.check(t, got)
		})
	}
}

func TestSanitizeAllocatesNilMaps(t *testing.T) {
	cfg := Default()
	cfg.Categories = nil
	cfg.Notify = nil
	cfg.Trainer.Exercises = nil

	got, _ := sanitize(cfg)
	require.NotNil(t, got.Categories)
	require.NotNil(t, got.Notify)
	require.NotNil(t, got.Trainer.Exercises)
}
