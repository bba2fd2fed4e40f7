// Package trainer tracks daily exercise reps against configured goals and
// gates the fitness reminder nudge. Counters live in the persisted state and
// roll over to zero whenever the stored date no longer matches today.
package trainer

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rbright/claxon/internal/hook"
	"github.com/rbright/claxon/internal/state"
)

var (
	// ErrUnknownExercise marks a log/goal target that is not configured.
	ErrUnknownExercise = errors.New("unknown exercise")
	// ErrInvalidCount marks a rep count that is not a non-negative integer.
	ErrInvalidCount = errors.New("invalid count")
)

// DateLayout is the rollover date format stored in state.
const DateLayout = "2006-01-02"

// Scheduler evaluates trainer operations against a loaded config snapshot.
type Scheduler struct {
	Enabled          bool
	Exercises        map[string]int
	ReminderInterval time.Duration
}

// Rollover resets reps to zero over the configured exercise set when the
// stored date is not today. Goals and last_reminder_ts are preserved.
func (sch Scheduler) Rollover(s *state.State, now time.Time) {
	today := now.Format(DateLayout)
	if s.Trainer.Date == today {
		return
	}

	reps := make(map[string]int, len(sch.Exercises))
	for name := range sch.Exercises {
		reps[name] = 0
	}
	s.Trainer.Date = today
	s.Trainer.Reps = reps
}

// Log validates and applies one rep entry, returning the exercise's new daily
// total. Rollover applies before the increment. The caller persists.
func (sch Scheduler) Log(s *state.State, exercise, rawCount string, now time.Time) (int, error) {
	if _, ok := sch.Exercises[exercise]; !ok {
		return 0, fmt.Errorf("%w: %q is not a configured exercise", ErrUnknownExercise, exercise)
	}

	count, err := strconv.Atoi(rawCount)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%w: %q, expected a non-negative integer", ErrInvalidCount, rawCount)
	}

	sch.Rollover(s, now)
	s.Trainer.Reps[exercise] += count
	return s.Trainer.Reps[exercise], nil
}

// Status applies rollover and returns today's reps alongside configured
// goals. last_reminder_ts is untouched.
func (sch Scheduler) Status(s *state.State, now time.Time) (reps map[string]int, goals map[string]int) {
	sch.Rollover(s, now)

	reps = make(map[string]int, len(sch.Exercises))
	goals = make(map[string]int, len(sch.Exercises))
	for name, goal := range sch.Exercises {
		reps[name] = s.Trainer.Reps[name]
		goals[name] = goal
	}
	return reps, goals
}

// reminderEligible limits nudges to idle/stop-type events. Session starts and
// permission prompts never remind.
func reminderEligible(kind hook.Kind) bool {
	switch kind {
	case hook.KindSessionIdle, hook.KindSessionStatus:
		return true
	default:
		return false
	}
}

// ReminderDue decides whether a reminder fires for this event. A true result
// consumes the reminder: last_reminder_ts advances inside the check itself, so
// the decision stays atomic even if the resulting sound is later suppressed.
func (sch Scheduler) ReminderDue(s *state.State, kind hook.Kind, now time.Time) bool {
	if !sch.Enabled {
		return false
	}
	if !reminderEligible(kind) {
		return false
	}

	sch.Rollover(s, now)

	if sch.goalsMet(s) {
		return false
	}
	if now.Unix()-s.Trainer.LastReminderTS < int64(sch.ReminderInterval.Seconds()) {
		return false
	}

	s.Trainer.LastReminderTS = now.Unix()
	return true
}

// goalsMet reports whether every exercise with a positive goal has reached it.
// Vacuously true when no exercise carries a goal: nothing left to nudge about.
func (sch Scheduler) goalsMet(s *state.State) bool {
	for name, goal := range sch.Exercises {
		if goal <= 0 {
			continue
		}
		if s.Trainer.Reps[name] < goal {
			return false
		}
	}
	return true
}
