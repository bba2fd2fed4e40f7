// Package router maps one lifecycle event to its reactions: tab title, sound,
// desktop notification, and the fitness reminder. One Handle call per
// invocation; all cross-invocation memory flows through the state store.
package router

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/rbright/claxon/internal/category"
	"github.com/rbright/claxon/internal/config"
	"github.com/rbright/claxon/internal/effects"
	"github.com/rbright/claxon/internal/gate"
	"github.com/rbright/claxon/internal/hook"
	"github.com/rbright/claxon/internal/pack"
	"github.com/rbright/claxon/internal/selector"
	"github.com/rbright/claxon/internal/state"
	"github.com/rbright/claxon/internal/trainer"
)

// Router sequences the gates and delegates for a single event.
type Router struct {
	Config   config.Config
	Manifest pack.Manifest
	Store    state.Store
	Sink     effects.Sink
	Trainer  trainer.Scheduler
	Logger   *slog.Logger
	RNG      *rand.Rand
	Now      func() time.Time

	// AfterFunc schedules the delayed session-ready emission. Defaults to
	// time.AfterFunc; tests substitute an immediate call.
	AfterFunc func(d time.Duration, f func())

	readyDone chan struct{}
}

// Handle runs the full reaction pipeline for one event. It never fails: every
// degraded path is a silently skipped side effect.
func (r *Router) Handle(ev hook.Event) {
	if ev == nil {
		return
	}

	now := r.now()
	s := r.Store.Load()
	log := r.logger().With("invocation_id", uuid.NewString(), "event", string(ev.Kind()))

	// Title updates are cosmetic and always-on, ahead of any suppression.
	if label, ok := statusLabel(ev); ok {
		r.Sink.SetTitle(label)
	}

	cat, mapped := mapEvent(ev)
	if !mapped {
		log.Info("event unmapped, no reaction")
		r.persist(s, log)
		return
	}

	window := time.Duration(r.Config.DebounceMS) * time.Millisecond
	if gate.Debounce(&s, cat, now, window) {
		log.Info("debounced", "category", string(cat))
		r.persist(s, log)
		return
	}

	// Bursts of user messages re-route the acknowledge category to user.spam.
	// The timestamp is recorded even when the spam category is disabled.
	if _, isMessage := ev.(hook.MessageUpdated); isMessage {
		spamEnabled := r.Config.CategoryEnabled(string(category.UserSpam))
		tripped := gate.RecordMessage(
			&s,
			now,
			time.Duration(r.Config.SpamWindowSeconds)*time.Second,
			r.Config.SpamThreshold,
			spamEnabled,
		)
		if tripped {
			log.Info("spam window tripped", "from", string(cat))
			cat = category.UserSpam
		}
	}

	emit := []category.Category{cat}
	if r.Trainer.ReminderDue(&s, ev.Kind(), now) {
		log.Info("trainer reminder due")
		emit = append(emit, category.TrainerRemind)
	}

	paused := r.Sink.Paused() || !r.Config.Enabled
	for _, c := range emit {
		r.emit(&s, c, paused, log)
	}

	if _, isStart := ev.(hook.SessionStart); isStart {
		r.scheduleReady(&s, paused, log)
	}

	r.persist(s, log)
}

// emit plays the category's sound and, where requested, raises a desktop
// notification. Each side effect fails independently and silently.
func (r *Router) emit(s *state.State, cat category.Category, paused bool, log *slog.Logger) {
	if paused || !r.Config.CategoryEnabled(string(cat)) {
		log.Debug("emission suppressed", "category", string(cat), "paused", paused)
		return
	}

	if sound, ok := selector.Pick(cat, r.Manifest, s, r.RNG); ok {
		log.Info("playing", "category", string(cat), "file", sound.File, "label", sound.Label)
		r.Sink.Play(sound.File, r.Config.Volume)
	}

	if r.Config.NotifyEnabled(string(cat)) && !r.Sink.TerminalFocused() {
		r.Sink.Notify(notificationFor(cat))
	}
}

// scheduleReady arms the one-shot delayed ready cue after a session start.
// The timer has no cancellation path; callers block on Wait so the short-lived
// process stays alive until the cue has fired.
func (r *Router) scheduleReady(s *state.State, paused bool, log *slog.Logger) {
	if r.Config.ReadyDelayMS <= 0 {
		return
	}
	if paused || !r.Config.CategoryEnabled(string(category.SessionReady)) {
		return
	}

	sound, ok := selector.Pick(category.SessionReady, r.Manifest, s, r.RNG)
	if !ok {
		return
	}

	delay := time.Duration(r.Config.ReadyDelayMS) * time.Millisecond
	volume := r.Config.Volume
	log.Info("scheduled ready cue", "delay_ms", r.Config.ReadyDelayMS, "file", sound.File)

	done := make(chan struct{})
	r.readyDone = done
	r.afterFunc(delay, func() {
		defer close(done)
		r.Sink.Play(sound.File, volume)
	})
}

// Wait blocks until a delayed emission armed by Handle has fired. It returns
// immediately when Handle scheduled nothing.
func (r *Router) Wait() {
	if r.readyDone == nil {
		return
	}
	<-r.readyDone
}

func (r *Router) persist(s state.State, log *slog.Logger) {
	if err := r.Store.Save(s); err != nil {
		log.Warn("state save failed", "error", err.Error())
	}
}

func (r *Router) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r *Router) afterFunc(d time.Duration, f func()) {
	if r.AfterFunc != nil {
		r.AfterFunc(d, f)
		return
	}
	time.AfterFunc(d, f)
}

func (r *Router) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}
