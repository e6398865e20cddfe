package cli

import (
	"fmt"
	"io"

	perr "xaoc/internal/platform/errors"

	"github.com/spf13/cobra"
)

func newSessionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the stored adventofcode.com session cookie",
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Store the session cookie (prompted on a terminal, read from stdin otherwise)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := readToken(a)
			if err != nil {
				return err
			}
			store := a.ports().Session
			if err := store.Save(token); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session saved to %s\n", store.Path())
			return nil
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print where the session cookie is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), a.ports().Session.Path())
			return nil
		},
	}

	cmd.AddCommand(set, path)
	return cmd
}

// maxTokenBytes bounds what session set reads from a pipe
const maxTokenBytes = 4 << 10

func readToken(a *App) (string, error) {
	if a.Prompt != nil && a.Prompt.Interactive() {
		tok, err := a.Prompt.ReadSecret("adventofcode.com session cookie: ")
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeNoToken, "read session token")
		}
		return tok, nil
	}
	if a.Stdin == nil {
		return "", perr.New(perr.ErrorCodeNoToken, "no terminal and no stdin to read the session token from")
	}
	b, err := io.ReadAll(io.LimitReader(a.Stdin, maxTokenBytes))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeNoToken, "read session token from stdin")
	}
	return string(b), nil
}
