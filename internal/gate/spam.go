package gate

import (
	"time"

	"github.com/rbright/claxon/internal/state"
)

// RecordMessage appends a message arrival to the sliding window, expires
// entries older than the window, and reports whether the remaining count meets
// the burst threshold. When checkEnabled is false the timestamp is still
// recorded (the window stays warm for re-enablement) but the check always
// reports false. There is no cooldown after tripping: a sustained burst keeps
// tripping on every message.
func RecordMessage(s *state.State, now time.Time, window time.Duration, threshold int, checkEnabled bool) bool {
	cutoff := now.Add(-window).Unix()

	kept := s.RecentMessageTS[:0]
	for _, ts := range s.RecentMessageTS {
		if ts >= cutoff {
			kept = append(kept, ts)
		}
	}
	kept = append(kept, now.Unix())
	s.RecentMessageTS = kept

	if !checkEnabled {
		return false
	}
	return len(s.RecentMessageTS) >= threshold
}
