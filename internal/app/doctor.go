package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbright/claxon/internal/doctor"
	"github.com/rbright/claxon/internal/effects"
)

func (r *Runner) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run configuration and environment checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.setup(); err != nil {
				return err
			}

			report := doctor.Run(r.loaded, r.store)
			fmt.Fprintln(r.Stdout, report.String())
			if !report.OK() {
				r.exitCode = 1
			}
			return nil
		},
	}
}

func (r *Runner) newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Silence sounds and notifications until resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := effects.PausePath()
			if err != nil {
				return err
			}
			if err := effects.Pause(path); err != nil {
				return err
			}
			fmt.Fprintln(r.Stdout, "paused")
			return nil
		},
	}
}

func (r *Runner) newResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Re-enable sounds and notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := effects.PausePath()
			if err != nil {
				return err
			}
			if err := effects.Resume(path); err != nil {
				return err
			}
			fmt.Fprintln(r.Stdout, "resumed")
			return nil
		},
	}
}
