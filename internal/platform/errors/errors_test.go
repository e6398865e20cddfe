package errors

import (
	stderrs "errors"
	"fmt"
	"testing"
)

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeInvalidArgs, ExitUsage},
		{ErrorCodeNoSample, ExitUsage},
		{ErrorCodeNoToken, ExitUsage},
		{ErrorCodeNotYetReleased, ExitUsage},
		{ErrorCodeConfigIO, ExitFailure},
		{ErrorCodeTransport, ExitFailure},
		{ErrorCodeAuth, ExitFailure},
		{ErrorCodeSolverFailure, ExitFailure},
		{ErrorCodeUnknown, ExitFailure},
		{9999, ExitFailure}, // default branch
	}
	for _, c := range cases {
		if got := ExitCodeOf(c.code); got != c.want {
			t.Fatalf("ExitCodeOf(%v) = %d, want %d", c.code, got, c.want)
		}
	}

	if ExitCode(nil) != ExitOK {
		t.Fatalf("ExitCode(nil) should be ExitOK")
	}
	if ExitCode(stderrs.New("foreign")) != ExitFailure {
		t.Fatalf("foreign errors should exit 1")
	}
	wrapped := fmt.Errorf("outer: %w", New(ErrorCodeNoSample, "none"))
	if ExitCode(wrapped) != ExitUsage {
		t.Fatalf("wrapped coded error lost its exit code")
	}
}

func TestCodeString(t *testing.T) {
	if got := ErrorCodeNotYetReleased.String(); got != "not_yet_released" {
		t.Fatalf("String = %q", got)
	}
	if got := ErrorCode(4242).String(); got != "code(4242)" {
		t.Fatalf("out of range String = %q", got)
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeAuth, "bad session")
	if CodeOf(e1) != ErrorCodeAuth {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeTransport, "status %d", 502)
	if got := e2.Error(); got != "status 502" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeConfigIO, "write failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeConfigIO, "mkdir %s", "/x")
	if want := "mkdir /x: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}
	if got, ok := As(e4); !ok || got.Message() != "mkdir /x" {
		t.Fatalf("As()/Message failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}
	if Root(e4) != src {
		t.Fatalf("Root did not reach the cause")
	}

	e5 := WithOp(e4, "cache.put")
	if oe, ok := As(e5); !ok || oe.Op() != "cache.put" {
		t.Fatalf("WithOp failed")
	}
	if oe, _ := As(e4); oe.Op() != "" {
		t.Fatalf("WithOp mutated the original")
	}
	if WithOp(src, "x") != src {
		t.Fatalf("WithOp should pass foreign errors through")
	}

	if WrapIf(nil, ErrorCodeUnknown, "x") != nil {
		t.Fatalf("WrapIf(nil) should be nil")
	}
	if !IsCode(WrapIf(src, ErrorCodeSolverFailure, "x"), ErrorCodeSolverFailure) {
		t.Fatalf("WrapIf lost the code")
	}
}

func TestSugar(t *testing.T) {
	cases := []struct {
		err  error
		code ErrorCode
	}{
		{ConfigIOf(stderrs.New("eperm"), "open %s", "f"), ErrorCodeConfigIO},
		{InvalidArgf("bad %s", "part"), ErrorCodeInvalidArgs},
		{NoSamplef("none"), ErrorCodeNoSample},
		{Authf("login"), ErrorCodeAuth},
		{Transportf("status %d", 500), ErrorCodeTransport},
		{Internalf("boom"), ErrorCodeUnknown},
	}
	for i, c := range cases {
		if CodeOf(c.err) != c.code {
			t.Fatalf("case %d: CodeOf = %v, want %v", i, CodeOf(c.err), c.code)
		}
	}
}
