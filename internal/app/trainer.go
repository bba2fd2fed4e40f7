package app

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbright/claxon/internal/config"
	"github.com/rbright/claxon/internal/trainer"
)

func (r *Runner) newTrainerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trainer",
		Short: "Daily exercise tracking and reminders",
	}
	cmd.AddCommand(
		r.newTrainerToggleCmd("on", true),
		r.newTrainerToggleCmd("off", false),
		r.newTrainerStatusCmd(),
		r.newTrainerLogCmd(),
		r.newTrainerGoalCmd(),
	)
	return cmd
}

func (r *Runner) newTrainerToggleCmd(use string, enabled bool) *cobra.Command {
	short := "Enable the trainer"
	if !enabled {
		short = "Disable the trainer"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.setup(); err != nil {
				return err
			}

			cfg := r.loaded.Config
			cfg.Trainer.Enabled = enabled
			if err := config.Save(r.loaded.Path, cfg); err != nil {
				return err
			}

			word := "enabled"
			if !enabled {
				word = "disabled"
			}
			fmt.Fprintf(r.Stdout, "trainer %s\n", word)
			return nil
		},
	}
}

func (r *Runner) newTrainerStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's reps against goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.setup(); err != nil {
				return err
			}

			sch := r.scheduler()
			s := r.store.Load()
			reps, goals := sch.Status(&s, time.Now())
			if err := r.store.Save(s); err != nil {
				r.Logger.Warn("state save failed", "error", err.Error())
			}

			if len(goals) == 0 {
				fmt.Fprintln(r.Stdout, "no exercises configured")
				return nil
			}

			names := make([]string, 0, len(goals))
			for name := range goals {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(r.Stdout, "%s: %d/%d\n", name, reps[name], goals[name])
			}
			return nil
		},
	}
}

func (r *Runner) newTrainerLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <count> <exercise>",
		Short: "Record completed reps for an exercise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.setup(); err != nil {
				return err
			}

			sch := r.scheduler()
			s := r.store.Load()
			total, err := sch.Log(&s, args[1], args[0], time.Now())
			if err != nil {
				return err
			}
			if err := r.store.Save(s); err != nil {
				return err
			}

			fmt.Fprintf(r.Stdout, "%s: %d today\n", args[1], total)
			return nil
		},
	}
}

func (r *Runner) newTrainerGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal [<exercise>] <value>",
		Short: "Set the daily goal for one exercise, or all of them",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.setup(); err != nil {
				return err
			}

			rawValue := args[len(args)-1]
			value, err := strconv.Atoi(rawValue)
			if err != nil || value < 0 {
				return fmt.Errorf("%w: %q, expected a non-negative integer", trainer.ErrInvalidCount, rawValue)
			}

			cfg := r.loaded.Config
			if len(args) == 2 {
				exercise := args[0]
				if _, ok := cfg.Trainer.Exercises[exercise]; !ok {
					return fmt.Errorf("%w: %q is not a configured exercise", trainer.ErrUnknownExercise, exercise)
				}
				cfg.Trainer.Exercises[exercise] = value
			} else {
				for name := range cfg.Trainer.Exercises {
					cfg.Trainer.Exercises[name] = value
				}
			}

			if err := config.Save(r.loaded.Path, cfg); err != nil {
				return err
			}

			if len(args) == 2 {
				fmt.Fprintf(r.Stdout, "goal for %s set to %d\n", args[0], value)
			} else {
				fmt.Fprintf(r.Stdout, "goal for all exercises set to %d\n", value)
			}
			return nil
		},
	}
}
