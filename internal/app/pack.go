package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rbright/claxon/internal/pack"
)

func (r *Runner) newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Manage installed sound packs",
	}
	cmd.AddCommand(r.newPackListCmd(), r.newPackUseCmd())
	return cmd
}

func (r *Runner) newPackListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.setup(); err != nil {
				return err
			}

			root, err := pack.Dir()
			if err != nil {
				return err
			}

			names := pack.List(root)
			if len(names) == 0 {
				fmt.Fprintf(r.Stdout, "no packs installed under %q\n", root)
				return nil
			}

			active := r.store.Load().ActivePack
			for _, name := range names {
				mark := " "
				if name == active {
					mark = "*"
				}
				fmt.Fprintf(r.Stdout, "%s %s\n", mark, name)
			}
			return nil
		},
	}
}

func (r *Runner) newPackUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Set the active pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.setup(); err != nil {
				return err
			}

			name := args[0]
			root, err := pack.Dir()
			if err != nil {
				return err
			}
			if _, err := os.Stat(filepath.Join(root, name, pack.ManifestName)); err != nil {
				return fmt.Errorf("pack %q has no manifest under %q", name, root)
			}

			s := r.store.Load()
			s.ActivePack = name
			if err := r.store.Save(s); err != nil {
				return err
			}

			fmt.Fprintf(r.Stdout, "active pack set to %q\n", name)
			return nil
		},
	}
}
