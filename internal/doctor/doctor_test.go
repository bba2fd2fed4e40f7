package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbright/claxon/internal/pack"
	"github.com/rbright/claxon/internal/state"
)

func TestReportOK(t *testing.T) {
	require.True(t, Report{Checks: []Check{{Name: "a", Pass: true}}}.OK())
	require.False(t, Report{Checks: []Check{{Name: "a", Pass: true}, {Name: "b", Pass: false}}}.OK())
}

func TestReportString(t *testing.T) {
	r := Report{Checks: []Check{
		{Name: "config", Pass: true, Message: "loaded"},
		{Name: "packs", Pass: false, Message: "none installed"},
	}}

	out := r.String()
	require.Contains(t, out, "[OK] config: loaded")
	require.Contains(t, out, "[FAIL] packs: none installed")
}

func TestCheckStateDirWritable(t *testing.T) {
	store := state.Store{Path: filepath.Join(t.TempDir(), "state.json")}

	check := checkStateDir(store)
	require.True(t, check.Pass, check.Message)
}

func TestCheckPacksNoActivePack(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	packDir := filepath.Join(dataDir, "claxon", "packs", "retro")
	require.NoError(t, os.MkdirAll(packDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(packDir, pack.ManifestName), []byte(`{}`), 0o600))

	store, err := state.NewStore()
	require.NoError(t, err)

	check := checkPacks(store)
	require.False(t, check.Pass)
	require.Contains(t, check.Message, "no active pack")
}

func TestCheckPacksActivePackWithSounds(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataDir)
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	packDir := filepath.Join(dataDir, "claxon", "packs", "retro")
	require.NoError(t, os.MkdirAll(packDir, 0o755))
	manifest := `{"task.complete": [{"file": "ding.wav", "label": "ding"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(packDir, pack.ManifestName), []byte(manifest), 0o600))

	store, err := state.NewStore()
	require.NoError(t, err)
	s := store.Load()
	s.ActivePack = "retro"
	require.NoError(t, store.Save(s))

	check := checkPacks(store)
	require.True(t, check.Pass, check.Message)
}

func TestCheckCommandEmpty(t *testing.T) {
	check := checkCommand(nil, "player_cmd")
	require.False(t, check.Pass)
}
