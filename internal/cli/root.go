// Package cli implements the xaoc admin command line
// It manages the stored session, primes and inspects the input cache and reports release times
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"xaoc/internal/adapters/credential"
	"xaoc/internal/core/version"
	"xaoc/internal/modkit"
	"xaoc/internal/platform/config"
	perr "xaoc/internal/platform/errors"
	"xaoc/internal/platform/logger"
	dom "xaoc/internal/services/puzzle/domain"
	"xaoc/internal/services/puzzle/module"

	"github.com/spf13/cobra"
)

// App carries the process environment the commands run against
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Prompt credential.Prompter
	Cfg    config.Conf
	Now    func() time.Time

	configDir string
	mod       *module.Module
}

// Stdio returns an App bound to the real process
func Stdio() *App {
	return &App{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Prompt: credential.Stdio(),
		Cfg:    config.New(),
		Now:    time.Now,
	}
}

// module builds the puzzle module once, honouring --config
func (a *App) module() *module.Module {
	if a.mod != nil {
		return a.mod
	}
	opts := module.FromConfig(a.Cfg)
	if a.configDir != "" {
		opts.Root = a.configDir
	}
	opts.Prompt = a.Prompt
	a.mod = module.New(modkit.Deps{Log: *logger.Named("cli"), Cfg: a.Cfg, Now: a.Now}, opts)
	return a.mod
}

func (a *App) ports() module.Ports { return a.module().Puzzle() }

// NewRootCmd assembles the command tree
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "xaoc",
		Short: "Advent of Code harness: session, input cache and release times",
		Long: `xaoc manages the state shared by every solver binary.

Solvers are run directly, e.g. go run ./cmd/2015-01 [part1|part2|both] [--sample] [--submit] [--time].
This command stores the adventofcode.com session cookie, primes and lists the input cache
and tells when a puzzle unlocks.`,
		Version:       version.Info().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&a.configDir, "config", "", "configuration directory (default $XAOC_CONFIG_DIR or the user config dir)")

	root.AddCommand(newSessionCmd(a))
	root.AddCommand(newFetchCmd(a))
	root.AddCommand(newCacheCmd(a))
	root.AddCommand(newReleaseCmd(a))
	return root
}

// Execute runs the command tree with args and returns the exit code
func Execute(ctx context.Context, a *App, args []string) int {
	root := NewRootCmd(a)
	root.SetArgs(args)
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgs, "invalid arguments")
	})

	err := root.ExecuteContext(ctx)
	if err == nil {
		return perr.ExitOK
	}
	if _, ok := perr.As(err); !ok {
		err = perr.Wrap(err, perr.ErrorCodeInvalidArgs, "invalid arguments")
	}
	_, _ = fmt.Fprintf(a.Stderr, "xaoc: %v\n", err)
	return perr.ExitCode(err)
}

// puzzleArgs parses <year> <day>
func puzzleArgs(args []string) (dom.Puzzle, error) {
	y, err := strconv.Atoi(args[0])
	if err != nil {
		return dom.Puzzle{}, perr.InvalidArgf("year %q is not a number", args[0])
	}
	d, err := strconv.Atoi(args[1])
	if err != nil {
		return dom.Puzzle{}, perr.InvalidArgf("day %q is not a number", args[1])
	}
	p := dom.Puzzle{Year: y, Day: d}
	return p, p.Validate()
}
