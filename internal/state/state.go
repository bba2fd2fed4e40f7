// Package state persists the small cross-invocation JSON state file. Every
// invocation re-reads it, mutates the in-memory value, and rewrites it whole.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Trainer holds the daily exercise counters and reminder bookkeeping.
type Trainer struct {
	Date           string         `json:"date"`
	Reps           map[string]int `json:"reps"`
	LastReminderTS int64          `json:"last_reminder_ts"`
}

// State is the full persisted document. Timestamps are epoch seconds.
type State struct {
	LastPlayTS      map[string]int64 `json:"last_play_ts"`
	LastSoundIndex  map[string]int   `json:"last_sound_index"`
	RecentMessageTS []int64          `json:"recent_message_ts"`
	ActivePack      string           `json:"active_pack"`
	Trainer         Trainer          `json:"trainer"`
}

// Empty returns a schema-valid zero state with all maps allocated.
func Empty() State {
	return State{
		LastPlayTS:     map[string]int64{},
		LastSoundIndex: map[string]int{},
		Trainer:        Trainer{Reps: map[string]int{}},
	}
}

// normalize fills nil containers so callers never need presence checks.
func (s *State) normalize() {
	if s.LastPlayTS == nil {
		s.LastPlayTS = map[string]int64{}
	}
	if s.LastSoundIndex == nil {
		s.LastSoundIndex = map[string]int{}
	}
	if s.Trainer.Reps == nil {
		s.Trainer.Reps = map[string]int{}
	}
}

// Store reads and writes the state file at a fixed path.
type Store struct {
	Path string
}

// NewStore resolves the default state file location under XDG_STATE_HOME.
func NewStore() (Store, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_STATE_HOME")); xdg != "" {
		return Store{Path: filepath.Join(xdg, "claxon", "state.json")}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Store{}, fmt.Errorf("resolve state path: %w", err)
	}
	return Store{Path: filepath.Join(home, ".local", "state", "claxon", "state.json")}, nil
}

// Load returns the parsed state, or an empty state when the file is absent,
// unreadable, or malformed. It never fails.
func (st Store) Load() State {
	data, err := os.ReadFile(st.Path)
	if err != nil {
		return Empty()
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return Empty()
	}
	s.normalize()
	return s
}

// Save rewrites the state file whole. The temp-file-then-rename sequence keeps
// concurrent readers from ever observing a partial document; overlapping
// invocations race last-writer-wins, which is accepted.
func (st Store) Save(s State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	dir := filepath.Dir(st.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "state-*.json")
	if err != nil {
		return fmt.Errorf("create state temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write state temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close state temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod state temp file: %w", err)
	}
	if err := os.Rename(tmpPath, st.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
