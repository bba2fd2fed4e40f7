package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Trainer.Enabled = true
	cfg.Trainer.Exercises = map[string]int{"pushups": 100, "squats": 200}
	cfg.Categories = map[string]bool{"user.spam": false}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, loaded.Exists)
	require.True(t, loaded.Config.Trainer.Enabled)
	require.Equal(t, cfg.Trainer.Exercises, loaded.Config.Trainer.Exercises)
	require.False(t, loaded.Config.CategoryEnabled("user.spam"))
}

func TestSaveCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	require.NoError(t, Save(path, Default()))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, loaded.Exists)
}
