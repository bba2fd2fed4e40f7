// Package app wires the claxon command tree to config, logging, state, and
// the event router, and owns the process exit-code contract.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rbright/claxon/internal/config"
	"github.com/rbright/claxon/internal/logging"
	"github.com/rbright/claxon/internal/state"
	"github.com/rbright/claxon/internal/version"
)

// Runner carries per-process IO and the lazily loaded runtime pieces shared
// by the subcommands.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	configPath string
	loaded     config.Loaded
	store      state.Store
	logRuntime logging.Runtime
	ready      bool
	exitCode   int
}

// Execute parses and runs one command invocation, returning the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := &Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

// Execute runs the command tree with this runner's IO.
func (r *Runner) Execute(ctx context.Context, args []string) int {
	defer func() { _ = r.logRuntime.Close() }()

	root := r.newRootCmd()
	root.SetArgs(args)
	root.SetOut(r.Stdout)
	root.SetErr(r.Stderr)
	if r.Stdin != nil {
		root.SetIn(r.Stdin)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		if isUsageError(err) {
			return 2
		}
		return 1
	}
	return r.exitCode
}

func (r *Runner) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "claxon",
		Short:         "Sound and notification reactions for coding-assistant lifecycle events",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&r.configPath, "config", "",
		"config file (default: $XDG_CONFIG_HOME/claxon/config.json)")

	root.AddCommand(
		r.newHookCmd(),
		r.newTrainerCmd(),
		r.newPackCmd(),
		r.newPauseCmd(),
		r.newResumeCmd(),
		r.newDoctorCmd(),
		r.newVersionCmd(),
	)
	return root
}

func (r *Runner) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(r.Stdout, version.String())
		},
	}
}

// setup loads logging, config, and the state store once per invocation.
// Config problems degrade to defaults with printed warnings; only an
// unresolvable home directory is fatal.
func (r *Runner) setup() error {
	if r.ready {
		return nil
	}

	if r.Logger == nil {
		logRuntime, err := logging.New()
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		r.logRuntime = logRuntime
		r.Logger = logRuntime.Logger
	}

	loaded, err := config.Load(r.configPath)
	if err != nil {
		return err
	}
	for _, w := range loaded.Warnings {
		fmt.Fprintf(r.Stderr, "warning: %s\n", w.Message)
		r.Logger.Warn("config warning", "message", w.Message)
	}
	r.loaded = loaded

	store, err := state.NewStore()
	if err != nil {
		return err
	}
	r.store = store

	r.ready = true
	return nil
}

// isUsageError classifies cobra parse failures for the exit-2 contract.
func isUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown command") ||
		strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "unknown shorthand flag") ||
		strings.Contains(msg, "accepts") ||
		strings.Contains(msg, "requires at least") ||
		strings.Contains(msg, "invalid argument")
}
