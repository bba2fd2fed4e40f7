package trainer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rbright/claxon/internal/hook"
	"github.com/rbright/claxon/internal/state"
)

var noon = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func newScheduler() Scheduler {
	return Scheduler{
		Enabled:          true,
		Exercises:        map[string]int{"pushups": 300, "squats": 300},
		ReminderInterval: time.Hour,
	}
}

func TestRolloverResetsRepsOnNewDay(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer = state.Trainer{
		Date:           "2026-08-22",
		Reps:           map[string]int{"pushups": 120, "squats": 45},
		LastReminderTS: noon.Add(-2 * time.Hour).Unix(),
	}

	sch.Rollover(&s, noon)

	require.Equal(t, "2026-08-23", s.Trainer.Date)
	require.Equal(t, map[string]int{"pushups": 0, "squats": 0}, s.Trainer.Reps)
	require.Equal(t, noon.Add(-2*time.Hour).Unix(), s.Trainer.LastReminderTS)
}

func TestRolloverSameDayIsNoop(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.Date = "2026-08-23"
	s.Trainer.Reps = map[string]int{"pushups": 120}

	sch.Rollover(&s, noon)
	require.Equal(t, 120, s.Trainer.Reps["pushups"])
}

func TestLogIsAdditiveWithinADay(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()

	for _, count := range []string{"25", "30", "10"} {
		_, err := sch.Log(&s, "pushups", count, noon)
		require.NoError(t, err)
	}

	require.Equal(t, 65, s.Trainer.Reps["pushups"])
}

func TestLogUnknownExerciseFailsAndLeavesRepsUntouched(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.Date = noon.Format(DateLayout)
	s.Trainer.Reps = map[string]int{"pushups": 10}

	_, err := sch.Log(&s, "burpees", "25", noon)
	require.ErrorIs(t, err, ErrUnknownExercise)
	require.Contains(t, err.Error(), "burpees")
	require.Equal(t, map[string]int{"pushups": 10}, s.Trainer.Reps)
}

func TestLogInvalidCountFailsAndLeavesRepsUntouched(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.Date = noon.Format(DateLayout)
	s.Trainer.Reps = map[string]int{"pushups": 10}

	for _, raw := range []string{"lots", "-5", "2.5", ""} {
		_, err := sch.Log(&s, "pushups", raw, noon)
		require.ErrorIs(t, err, ErrInvalidCount, "count %q", raw)
		require.Contains(t, err.Error(), "non-negative integer")
	}
	require.Equal(t, 10, s.Trainer.Reps["pushups"])
}

func TestLogAppliesRolloverFirst(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.Date = "2026-08-22"
	s.Trainer.Reps = map[string]int{"pushups": 250}

	total, err := sch.Log(&s, "pushups", "25", noon)
	require.NoError(t, err)
	require.Equal(t, 25, total)
}

func TestStatusReturnsRepsAndGoals(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.Date = noon.Format(DateLayout)
	s.Trainer.Reps = map[string]int{"pushups": 65}
	s.Trainer.LastReminderTS = 12345

	reps, goals := sch.Status(&s, noon)

	require.Equal(t, map[string]int{"pushups": 65, "squats": 0}, reps)
	require.Equal(t, map[string]int{"pushups": 300, "squats": 300}, goals)
	require.Equal(t, int64(12345), s.Trainer.LastReminderTS)
}

func TestReminderDueIneligibleEventNeverFires(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.LastReminderTS = noon.Add(-time.Hour).Unix()

	require.False(t, sch.ReminderDue(&s, hook.KindSessionStart, noon))
	require.False(t, sch.ReminderDue(&s, hook.KindPermissionAsked, noon))
	// The failed checks must not consume the reminder.
	require.Equal(t, noon.Add(-time.Hour).Unix(), s.Trainer.LastReminderTS)
}

func TestReminderDueDisabledNeverFires(t *testing.T) {
	sch := newScheduler()
	sch.Enabled = false
	s := state.Empty()
	s.Trainer.LastReminderTS = noon.Add(-time.Hour).Unix()

	require.False(t, sch.ReminderDue(&s, hook.KindSessionIdle, noon))
}

func TestReminderDueGoalsMetNeverFires(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.Date = noon.Format(DateLayout)
	s.Trainer.Reps = map[string]int{"pushups": 300, "squats": 300}
	s.Trainer.LastReminderTS = noon.Add(-time.Hour).Unix()

	require.False(t, sch.ReminderDue(&s, hook.KindSessionIdle, noon))
}

func TestReminderDuePartialGoalsStillFire(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.Date = noon.Format(DateLayout)
	s.Trainer.Reps = map[string]int{"pushups": 300, "squats": 100}
	s.Trainer.LastReminderTS = noon.Add(-time.Hour).Unix()

	require.True(t, sch.ReminderDue(&s, hook.KindSessionIdle, noon))
}

func TestReminderDueZeroGoalExercisesAreIgnored(t *testing.T) {
	sch := newScheduler()
	sch.Exercises = map[string]int{"pushups": 300, "stretching": 0}
	s := state.Empty()
	s.Trainer.Date = noon.Format(DateLayout)
	s.Trainer.Reps = map[string]int{"pushups": 300}
	s.Trainer.LastReminderTS = noon.Add(-time.Hour).Unix()

	require.False(t, sch.ReminderDue(&s, hook.KindSessionIdle, noon))
}

func TestReminderDueFiresOncePerInterval(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.Date = noon.Format(DateLayout)
	s.Trainer.LastReminderTS = noon.Add(-time.Hour).Unix()

	require.True(t, sch.ReminderDue(&s, hook.KindSessionIdle, noon))
	require.Equal(t, noon.Unix(), s.Trainer.LastReminderTS)

	// An immediately following qualifying event finds the reminder consumed.
	require.False(t, sch.ReminderDue(&s, hook.KindSessionIdle, noon.Add(time.Second)))
}

func TestReminderDueIntervalNotElapsed(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer.Date = noon.Format(DateLayout)
	s.Trainer.LastReminderTS = noon.Add(-30 * time.Minute).Unix()

	require.False(t, sch.ReminderDue(&s, hook.KindSessionIdle, noon))
}

func TestReminderDueAppliesRolloverBeforeGoalCheck(t *testing.T) {
	sch := newScheduler()
	s := state.Empty()
	s.Trainer = state.Trainer{
		Date:           "2026-08-22",
		Reps:           map[string]int{"pushups": 300, "squats": 300},
		LastReminderTS: noon.Add(-time.Hour).Unix(),
	}

	// Yesterday's met goals reset to zero today, so the reminder fires.
	require.True(t, sch.ReminderDue(&s, hook.KindSessionIdle, noon))
	require.Equal(t, map[string]int{"pushups": 0, "squats": 0}, s.Trainer.Reps)
}
