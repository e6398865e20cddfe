// Package runner is the entry point shared by every solver binary
// It parses the command line, picks sample or real input, runs the parts in order,
// prints the answers and optionally submits them
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"xaoc/internal/core/answer"
	"xaoc/internal/core/version"
	"xaoc/internal/modkit"
	"xaoc/internal/platform/config"
	perr "xaoc/internal/platform/errors"
	"xaoc/internal/platform/logger"
	dom "xaoc/internal/services/puzzle/domain"
	"xaoc/internal/services/puzzle/module"

	"github.com/spf13/cobra"
)

// Puzzle is what a solver hands to Main
// Year and Day may be left zero when the binary's package path names the puzzle
// By convention Day 25 Part2 returns 0; it is printed but never submitted
type Puzzle[A, B any] struct {
	Year   int
	Day    int
	Part1  func(input string) A
	Part2  func(input string) B
	Sample Sample
}

// Service is the slice of the puzzle service the runner needs
type Service interface {
	dom.InputPort
	dom.SubmitPort
}

// Env carries the runner's collaborators
type Env struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Service Service
	// Clock times each part, time.Now when nil
	Clock func() time.Time
}

// Main runs p with the process arguments and exits
func Main[A, B any](p Puzzle[A, B]) {
	deps := modkit.Deps{Log: *logger.Named("runner"), Cfg: config.New()}
	mod := module.FromDeps(deps)
	ports := mod.Puzzle()
	env := Env{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Service: struct {
			dom.InputPort
			dom.SubmitPort
		}{ports.Input, ports.Submit},
	}
	os.Exit(Run(context.Background(), env, p, os.Args[1:]))
}

type partFunc struct {
	part dom.Part
	fn   func(string) any
}

type options struct {
	sample bool
	submit bool
	timed  bool
}

// Run executes p with args and returns the process exit code
// Solver panics are not recovered
func Run[A, B any](ctx context.Context, env Env, p Puzzle[A, B], args []string) int {
	if env.Stdout == nil {
		env.Stdout = io.Discard
	}
	if env.Stderr == nil {
		env.Stderr = io.Discard
	}
	if env.Clock == nil {
		env.Clock = time.Now
	}

	var opt options
	cmd := &cobra.Command{
		Use:           "solver [part1|part2|both]",
		Short:         "Run an Advent of Code solver",
		Version:       version.Info().String(),
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     []string{"part1", "part2", "both"},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzle, err := identify(p.Year, p.Day)
			if err != nil {
				return err
			}

			which := "both"
			if len(args) == 1 {
				which = args[0]
			}
			parts, err := selectParts(which, p)
			if err != nil {
				return err
			}
			ctx := logger.WithPuzzle(cmd.Context(), puzzle.Year, puzzle.Day)
			return execute(ctx, env, puzzle, p.Sample, parts, opt)
		},
	}
	cmd.Flags().BoolVarP(&opt.sample, "sample", "s", false, "run against the solver's sample input")
	cmd.Flags().BoolVarP(&opt.submit, "submit", "S", false, "submit each answer and print the outcome")
	cmd.Flags().BoolVarP(&opt.timed, "time", "t", false, "print elapsed time per part")
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgs, "invalid arguments")
	})
	cmd.SetArgs(args)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return perr.ExitOK
	}
	err = usageError(err)
	_, _ = fmt.Fprintf(env.Stderr, "xaoc: %v\n", err)
	return perr.ExitCode(err)
}

// usageError tags cobra's own argument errors as InvalidArgs
func usageError(err error) error {
	if _, ok := perr.As(err); ok {
		return err
	}
	return perr.Wrap(err, perr.ErrorCodeInvalidArgs, "invalid arguments")
}

func selectParts[A, B any](which string, p Puzzle[A, B]) ([]partFunc, error) {
	if p.Part1 == nil || p.Part2 == nil {
		return nil, perr.Internalf("solver must define Part1 and Part2")
	}
	one := partFunc{dom.PartOne, func(s string) any { return p.Part1(s) }}
	two := partFunc{dom.PartTwo, func(s string) any { return p.Part2(s) }}
	switch strings.ToLower(which) {
	case "both", "":
		return []partFunc{one, two}, nil
	case "part1", "1":
		return []partFunc{one}, nil
	case "part2", "2":
		return []partFunc{two}, nil
	default:
		return nil, perr.InvalidArgf("unknown part %q: want part1, part2 or both", which)
	}
}

func execute(ctx context.Context, env Env, p dom.Puzzle, sample Sample, parts []partFunc, opt options) error {
	if opt.sample && opt.submit {
		return perr.InvalidArgf("--sample and --submit cannot be combined")
	}
	if !opt.sample && env.Service == nil {
		return perr.Internalf("no puzzle service configured")
	}

	// every input is resolved before any part runs
	inputs := make([]string, len(parts))
	if opt.sample {
		for i, pf := range parts {
			text, err := sample.resolve(p, pf.part)
			if err != nil {
				return err
			}
			inputs[i] = text
		}
	} else {
		text, err := env.Service.FetchInput(ctx, p)
		if err != nil {
			return err
		}
		for i := range inputs {
			inputs[i] = text
		}
	}

	out := env.Stdout
	for i, pf := range parts {
		input := strings.TrimRightFunc(inputs[i], unicode.IsSpace)

		start := env.Clock()
		val := pf.fn(input)
		elapsed := env.Clock().Sub(start)

		if err, ok := val.(error); ok && err != nil {
			return perr.Wrapf(err, perr.ErrorCodeSolverFailure, "part %s failed", pf.part)
		}
		text := answer.Render(val)

		_, _ = fmt.Fprintf(out, "Part %s: %s\n", pf.part, text)
		if opt.timed {
			_, _ = fmt.Fprintf(out, "Part %s time: %s\n", pf.part, elapsed)
		}
		if !opt.submit {
			continue
		}

		switch {
		case p.Day == 25 && pf.part == dom.PartTwo:
			_, _ = fmt.Fprintf(out, "Part %s outcome: skipped (day 25 has no second answer)\n", pf.part)
			continue
		case strings.TrimSpace(text) == "":
			_, _ = fmt.Fprintf(out, "Part %s outcome: skipped (empty answer)\n", pf.part)
			continue
		}

		sub, err := env.Service.Submit(ctx, p, pf.part, text)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Part %s outcome: %s\n", pf.part, sub.Outcome)
		if sub.Message != "" {
			_, _ = fmt.Fprintf(out, "  %s\n", sub.Message)
		}
	}
	return nil
}
