package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) Store {
	t.Helper()
	return Store{Path: filepath.Join(t.TempDir(), "state.json")}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	st := tempStore(t)

	s := st.Load()
	require.NotNil(t, s.LastPlayTS)
	require.NotNil(t, s.LastSoundIndex)
	require.NotNil(t, s.Trainer.Reps)
	require.Empty(t, s.ActivePack)
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, os.WriteFile(st.Path, []byte("{not json"), 0o600))

	s := st.Load()
	require.Empty(t, s.LastPlayTS)
	require.Empty(t, s.RecentMessageTS)
}

func TestLoadNormalizesMissingMaps(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, os.WriteFile(st.Path, []byte(`{"active_pack":"retro"}`), 0o600))

	s := st.Load()
	require.Equal(t, "retro", s.ActivePack)
	require.NotNil(t, s.LastPlayTS)
	require.NotNil(t, s.LastSoundIndex)
	require.NotNil(t, s.Trainer.Reps)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := tempStore(t)

	s := Empty()
	s.ActivePack = "retro"
	s.LastPlayTS["task.complete"] = 1700000000
	s.LastSoundIndex["task.complete"] = 3
	s.RecentMessageTS = []int64{1700000001, 1700000002}
	s.Trainer = Trainer{
		Date:           "2026-08-23",
		Reps:           map[string]int{"pushups": 65},
		LastReminderTS: 1700000003,
	}
	require.NoError(t, st.Save(s))

	got := st.Load()
	require.Equal(t, s, got)
}

func TestSaveWritesWholeValidDocument(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Save(Empty()))

	data, err := os.ReadFile(st.Path)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Save(Empty()))
	require.NoError(t, st.Save(Empty()))

	entries, err := os.ReadDir(filepath.Dir(st.Path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "state.json", entries[0].Name())
}
