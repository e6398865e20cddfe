// Package service implements input fetching, answer submission and release gating
package service

import (
	"context"
	"net/url"
	"strings"
	"time"

	perr "xaoc/internal/platform/errors"
	"xaoc/internal/platform/logger"
	ptime "xaoc/internal/platform/time"
	dom "xaoc/internal/services/puzzle/domain"
)

// Config for the puzzle service
type Config struct {
	// Now is the clock used for release gating, time.Now when nil
	Now func() time.Time
}

// Service implements dom.InputPort, dom.SubmitPort and dom.ReleasePort
type Service struct {
	cred  dom.CredentialPort
	cache dom.CachePort
	http  dom.TransportPort
	now   func() time.Time
}

// New constructs a puzzle service over its three adapters
func New(cred dom.CredentialPort, cache dom.CachePort, transport dom.TransportPort, cfg Config) *Service {
	if cfg.Now == nil {
		cfg.Now = ptime.System
	}
	return &Service{cred: cred, cache: cache, http: transport, now: cfg.Now}
}

// Release implements dom.ReleasePort
func (s *Service) Release(p dom.Puzzle) (time.Time, time.Duration) {
	return p.ReleaseAt(), ptime.Until(s.now(), p.Year, p.Day)
}

// gate fails with NotReleased while p is locked
func (s *Service) gate(p dom.Puzzle) error {
	now := s.now()
	if ptime.Released(now, p.Year, p.Day) {
		return nil
	}
	return dom.NotReleased(p, ptime.Until(now, p.Year, p.Day))
}

// FetchInput implements dom.InputPort
// A cached input is returned without touching the clock, the credential or the network
func (s *Service) FetchInput(ctx context.Context, p dom.Puzzle) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	log := logger.C(ctx)

	if text, ok, err := s.cache.Get(p.Year, p.Day); err != nil {
		return "", err
	} else if ok {
		return text, nil
	}

	if err := s.gate(p); err != nil {
		log.Debug().Msg("puzzle input requested before release")
		return "", err
	}

	token, err := s.cred.Load(ctx)
	if err != nil {
		return "", err
	}

	text, err := s.http.Get(ctx, p.InputPath(), token)
	if err != nil {
		return "", perr.WithOp(err, "fetch_input")
	}
	if text == "" {
		return "", perr.Transportf("server returned an empty input for %s", p)
	}

	if err := s.cache.Put(p.Year, p.Day, text); err != nil {
		return "", err
	}
	log.Info().Int("bytes", len(text)).Msg("puzzle input downloaded")
	return text, nil
}

// Submit implements dom.SubmitPort
func (s *Service) Submit(ctx context.Context, p dom.Puzzle, part dom.Part, answer string) (dom.Submission, error) {
	if err := p.Validate(); err != nil {
		return dom.Submission{}, err
	}
	if part != dom.PartOne && part != dom.PartTwo {
		return dom.Submission{}, perr.InvalidArgf("part must be 1 or 2, got %d", int(part))
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return dom.Submission{}, perr.InvalidArgf("refusing to submit an empty answer")
	}
	if err := s.gate(p); err != nil {
		return dom.Submission{}, err
	}

	token, err := s.cred.Load(ctx)
	if err != nil {
		return dom.Submission{}, err
	}

	body, err := s.http.PostForm(ctx, p.AnswerPath(), token, url.Values{
		"level":  {part.String()},
		"answer": {answer},
	})
	if err != nil {
		return dom.Submission{}, perr.WithOp(err, "submit")
	}

	sub, err := Classify(body)
	if err != nil {
		return dom.Submission{}, err
	}
	logger.C(ctx).Info().
		Str("part", part.String()).
		Str("outcome", sub.Outcome.String()).
		Msg("answer submitted")
	return sub, nil
}
