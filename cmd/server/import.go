package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var prune bool

	cmd := &cobra.Command{
		Use:   "import [dir]",
		Short: "Import a content directory into the database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			dir := a.cfg.ContentDir
			if len(args) == 1 {
				dir = args[0]
			}

			result, _, err := a.importContent(ctx, dir, prune)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for collection, count := range result.Entries {
				fmt.Fprintf(out, "%-10s %d\n", collection, count)
			}
			fmt.Fprintf(out, "%-10s %d\n", "projects", result.Projects)
			fmt.Fprintf(out, "%-10s %d\n", "authors", result.Authors)
			if prune {
				fmt.Fprintf(out, "pruned     %d\n", result.Pruned)
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d file(s) failed to import", len(result.Errors))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&prune, "prune", false, "remove entries whose source file no longer exists")
	return cmd
}
