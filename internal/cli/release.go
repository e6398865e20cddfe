package cli

import (
	"fmt"
	"time"

	ptime "xaoc/internal/platform/time"

	"github.com/spf13/cobra"
)

func newReleaseCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "release <year> <day>",
		Short: "Print when a puzzle unlocks and how long remains",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := puzzleArgs(args)
			if err != nil {
				return err
			}
			at, wait := a.ports().Release.Release(p)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s unlocks at %s\n", p, at.Format(time.RFC3339))
			if wait > 0 {
				_, _ = fmt.Fprintf(out, "not yet released; retry in %s\n", ptime.FormatWait(wait))
			} else {
				_, _ = fmt.Fprintln(out, "released")
			}
			return nil
		},
	}
}
