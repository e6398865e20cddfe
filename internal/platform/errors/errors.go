// Package errors provides a structured error type with wrapping and a stable error code
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode classifies failures surfaced by the harness
// Values are stable; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeConfigIO is for local filesystem failures on config or cache files
	ErrorCodeConfigIO

	// ErrorCodeNoToken is for a missing session token that cannot be prompted for
	ErrorCodeNoToken

	// ErrorCodeTransport is for network failures and non-success HTTP statuses
	ErrorCodeTransport

	// ErrorCodeAuth is for a session the puzzle server rejected
	ErrorCodeAuth

	// ErrorCodeNotYetReleased is for puzzles requested before their release instant
	ErrorCodeNotYetReleased

	// ErrorCodeInvalidArgs is for command line misuse
	ErrorCodeInvalidArgs

	// ErrorCodeNoSample is for a sample run on a solver without a sample
	ErrorCodeNoSample

	// ErrorCodeSolverFailure is for a solver that failed on its own
	ErrorCodeSolverFailure
)

var codeNames = [...]string{
	ErrorCodeUnknown:        "unknown",
	ErrorCodeConfigIO:       "config_io",
	ErrorCodeNoToken:        "no_token",
	ErrorCodeTransport:      "transport",
	ErrorCodeAuth:           "auth",
	ErrorCodeNotYetReleased: "not_yet_released",
	ErrorCodeInvalidArgs:    "invalid_args",
	ErrorCodeNoSample:       "no_sample",
	ErrorCodeSolverFailure:  "solver_failure",
}

// String returns the snake_case name of the code
func (c ErrorCode) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCodeOf turns an ErrorCode into a process exit code
// Usage and environment problems exit 2, everything else 1
func ExitCodeOf(c ErrorCode) int {
	switch c {
	case ErrorCodeInvalidArgs, ErrorCodeNoSample, ErrorCodeNoToken, ErrorCodeNotYetReleased:
		return ExitUsage
	default:
		return ExitFailure
	}
}

// ExitCode returns the process exit code for any error, ExitOK for nil
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitCodeOf(CodeOf(err))
}

// Error is the structured error type with wrapping
// msg is human facing; code is machine facing
// op is an optional operation tag; orig is the wrapped cause
type Error struct {
	orig error
	msg  string
	code ErrorCode
	op   string
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Message returns the message without the wrapped cause
func (e *Error) Message() string { return e.msg }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// ConfigIOf returns a config filesystem error wrapping orig
func ConfigIOf(orig error, format string, a ...any) error {
	return Wrapf(orig, ErrorCodeConfigIO, format, a...)
}

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgs, format, a...) }

// NoSamplef returns a missing sample error
func NoSamplef(format string, a ...any) error { return Newf(ErrorCodeNoSample, format, a...) }

// Authf returns an auth error
func Authf(format string, a ...any) error { return Newf(ErrorCodeAuth, format, a...) }

// Transportf returns a transport error
func Transportf(format string, a ...any) error { return Newf(ErrorCodeTransport, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }
