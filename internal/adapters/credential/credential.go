// Package credential persists the adventofcode.com session token
// The token lives in <root>/session, readable by the owner only
package credential

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"xaoc/internal/platform/atomicfile"
	perr "xaoc/internal/platform/errors"
	"xaoc/internal/platform/logger"

	"golang.org/x/term"
)

// FileName is the session file name under the config root
const FileName = "session"

const promptText = "adventofcode.com session cookie: "

// Prompter asks the user for the token when none is stored
type Prompter interface {
	// Interactive reports whether a human can answer a prompt
	Interactive() bool
	// ReadSecret shows prompt and reads one line without echo
	ReadSecret(prompt string) (string, error)
}

// TermPrompter prompts on a terminal
type TermPrompter struct {
	In  *os.File
	Out io.Writer
}

// Stdio prompts on stdin and writes the prompt to stderr
func Stdio() TermPrompter { return TermPrompter{In: os.Stdin, Out: os.Stderr} }

// Interactive is true when In is a terminal
func (p TermPrompter) Interactive() bool {
	return p.In != nil && term.IsTerminal(int(p.In.Fd()))
}

// ReadSecret reads without echo
func (p TermPrompter) ReadSecret(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.Out, prompt); err != nil {
		return "", err
	}
	b, err := term.ReadPassword(int(p.In.Fd()))
	_, _ = fmt.Fprintln(p.Out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Store reads and writes the session file
type Store struct {
	root   string
	prompt Prompter
	log    logger.Logger
}

// New returns a Store rooted at root; prompt may be nil for non-interactive use
func New(root string, prompt Prompter) *Store {
	return &Store{root: root, prompt: prompt, log: *logger.Named("credential")}
}

// Path returns the session file location
func (s *Store) Path() string { return filepath.Join(s.root, FileName) }

// Load returns the stored token, prompting for one when the file is missing or blank
func (s *Store) Load(ctx context.Context) (string, error) {
	b, err := os.ReadFile(s.Path())
	switch {
	case err == nil:
		if tok := strings.TrimSpace(string(b)); tok != "" {
			return tok, nil
		}
		s.log.Debug().Str("path", s.Path()).Msg("session file is blank")
	case errors.Is(err, fs.ErrNotExist):
		s.log.Debug().Str("path", s.Path()).Msg("no session file")
	default:
		return "", perr.ConfigIOf(err, "read session file %s", s.Path())
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.prompt == nil || !s.prompt.Interactive() {
		return "", perr.Newf(perr.ErrorCodeNoToken,
			"no session token: run `xaoc session set` or write your adventofcode.com session cookie to %s", s.Path())
	}

	raw, err := s.prompt.ReadSecret(promptText)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeNoToken, "read session token")
	}
	tok := strings.TrimSpace(raw)
	if tok == "" {
		return "", perr.New(perr.ErrorCodeNoToken, "no session token entered")
	}
	if err := s.Save(tok); err != nil {
		return "", err
	}
	return tok, nil
}

// Save stores token, replacing any previous one
func (s *Store) Save(token string) error {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return perr.InvalidArgf("session token is empty")
	}
	if err := atomicfile.WriteFile(s.Path(), []byte(tok)); err != nil {
		return perr.ConfigIOf(err, "write session file %s", s.Path())
	}
	s.log.Info().Str("path", s.Path()).Msg("session token saved")
	return nil
}
