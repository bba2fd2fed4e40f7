package app

import (
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbright/claxon/internal/effects"
	"github.com/rbright/claxon/internal/hook"
	"github.com/rbright/claxon/internal/pack"
	"github.com/rbright/claxon/internal/router"
	"github.com/rbright/claxon/internal/trainer"
)

// newHookCmd builds the handler the assistant's hook system invokes with an
// event payload on stdin. Hidden from help: it is wiring, not a user command.
// It always exits zero; a missed reaction is not a functional failure.
func (r *Runner) newHookCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "hook",
		Short:  "Handle one lifecycle event from stdin",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.setup(); err != nil {
				if r.Logger != nil {
					r.Logger.Warn("hook setup failed", "error", err.Error())
				}
				return nil
			}
			r.runHook(cmd.InOrStdin())
			return nil
		},
	}
}

func (r *Runner) runHook(stdin io.Reader) {
	ev, err := hook.Parse(stdin)
	if err != nil {
		r.Logger.Warn("hook payload rejected", "error", err.Error())
		return
	}
	if ev == nil {
		r.Logger.Info("hook event type unknown, ignoring")
		return
	}

	rt := &router.Router{
		Config:   r.loaded.Config,
		Manifest: r.activeManifest(),
		Store:    r.store,
		Sink:     r.newSink(),
		Trainer:  r.scheduler(),
		Logger:   r.Logger,
		RNG:      newRNG(),
	}
	rt.Handle(ev)
	// The delayed ready cue outlives Handle; hold the process open until it
	// has fired, or it would die with the exiting invocation.
	rt.Wait()
}

// activeManifest loads the active pack's manifest, or an empty one when no
// pack is active or resolvable. Silence, not an error.
func (r *Runner) activeManifest() pack.Manifest {
	active := r.store.Load().ActivePack
	if active == "" {
		return pack.Manifest{}
	}
	root, err := pack.Dir()
	if err != nil {
		return pack.Manifest{}
	}
	return pack.Load(filepath.Join(root, active))
}

func (r *Runner) newSink() effects.Sink {
	pausePath, err := effects.PausePath()
	if err != nil {
		pausePath = ""
	}
	return effects.NewDesktop(r.loaded.Config.PlayerArgv, pausePath, r.Logger)
}

func (r *Runner) scheduler() trainer.Scheduler {
	tc := r.loaded.Config.Trainer
	return trainer.Scheduler{
		Enabled:          tc.Enabled,
		Exercises:        tc.Exercises,
		ReminderInterval: time.Duration(tc.ReminderIntervalSeconds) * time.Second,
	}
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
}
