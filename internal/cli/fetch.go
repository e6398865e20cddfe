package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFetchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <year> <day>",
		Short: "Download a puzzle input into the cache and print its path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := puzzleArgs(args)
			if err != nil {
				return err
			}
			ports := a.ports()
			text, err := ports.Input.FetchInput(cmd.Context(), p)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", ports.Cache.Path(p.Year, p.Day), len(text))
			return nil
		},
	}
}
