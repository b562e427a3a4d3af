package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/folio/internal/db"
	"github.com/folio/internal/locale"
	"github.com/folio/internal/service"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var withSubposts bool

	cmd := &cobra.Command{
		Use:       "list <collection>",
		Short:     "Print published entries of blog or education",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{db.CollectionBlog, db.CollectionEducation},
		RunE: func(cmd *cobra.Command, args []string) error {
			collection := args[0]
			if collection != db.CollectionBlog && collection != db.CollectionEducation {
				return fmt.Errorf("unknown collection %q", collection)
			}

			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			svc := service.NewCollectionService(a.store, collection)
			entries, err := svc.ListPublished(ctx)
			if withSubposts {
				entries, err = svc.ListPublishedWithSubposts(ctx)
			}
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tID\tTITLE\tREADING")
			for _, e := range entries {
				reading, err := svc.CombinedReadingTime(ctx, e.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", locale.FormatDate(e.Date, locale.DateISO), e.ID, e.Title, reading)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&withSubposts, "subposts", false, "include subposts")
	return cmd
}
