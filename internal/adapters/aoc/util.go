package aoc

import (
	"errors"
	"net/http"
	"strings"

	perr "xaoc/internal/platform/errors"
)

// StatusError wraps non-2xx HTTP responses from the puzzle server
type StatusError struct {
	Status int
	Err    error
}

// Error interface
func (e *StatusError) Error() string { return e.Err.Error() }

// Unwrap interface
func (e *StatusError) Unwrap() error { return e.Err }

// statusError classifies a response status, nil for 2xx
// Redirects and 400/401/403 are how the server turns away a bad or missing session
func statusError(method, path string, status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status >= 300 && status < 400,
		status == http.StatusBadRequest,
		status == http.StatusUnauthorized,
		status == http.StatusForbidden:
		return &StatusError{
			Status: status,
			Err:    perr.Authf("puzzle server rejected the session (%s %s: %d %s)", method, path, status, http.StatusText(status)),
		}
	default:
		return &StatusError{
			Status: status,
			Err:    perr.Transportf("%s %s: unexpected status %d %s", method, path, status, http.StatusText(status)),
		}
	}
}

// StatusOf returns the HTTP status carried by err, 0 if none
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// redactedError hides the session value from a foreign error's message
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

// redact returns err with every occurrence of secret masked in its message
func redact(err error, secret string) error {
	if err == nil || secret == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, secret) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(msg, secret, "[redacted]"), err: err}
}
