// Package gate holds the per-invocation suppression checks: the per-category
// debounce window and the sliding spam window. Both operate on the persisted
// state; callers persist after the check.
package gate

import (
	"time"

	"github.com/rbright/claxon/internal/category"
	"github.com/rbright/claxon/internal/state"
)

// Debounce reports whether a category reacted too recently. The current
// timestamp is recorded as the category's last-seen time regardless of the
// answer, so a suppressed burst keeps pushing the window forward.
func Debounce(s *state.State, cat category.Category, now time.Time, window time.Duration) bool {
	last, seen := s.LastPlayTS[string(cat)]
	s.LastPlayTS[string(cat)] = now.Unix()
	if !seen {
		return false
	}
	return now.Sub(time.Unix(last, 0)) < window
}
