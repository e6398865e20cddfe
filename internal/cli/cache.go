package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newCacheCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the puzzle input cache",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List cached inputs by year and day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.ports().Cache.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "no cached inputs")
				return nil
			}
			sizes := message.NewPrinter(language.English)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "PUZZLE\tBYTES\tFETCHED")
			for _, e := range entries {
				_, _ = fmt.Fprintf(tw, "%d-%02d\t%s\t%s\n",
					e.Year, e.Day, sizes.Sprintf("%d", e.Size), e.ModTime.Local().Format(time.DateTime))
			}
			return tw.Flush()
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), a.ports().Cache.Dir())
			return nil
		},
	}

	cmd.AddCommand(list, path)
	return cmd
}
