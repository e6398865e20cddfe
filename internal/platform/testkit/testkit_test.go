package testkit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var swapTarget = func() string { return "orig" }

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, "Part 1: 42", "42")
	MustNotContain(t, "Part 1: 42", "secret")
}

func TestSwap_Restores(t *testing.T) {
	t.Run("swap", func(t *testing.T) {
		Swap(t, &swapTarget, func() string { return "fake" })
		if swapTarget() != "fake" {
			t.Fatalf("swap did not take effect")
		}
	})
	if swapTarget() != "orig" {
		t.Fatalf("swap did not restore original")
	}
}

func TestClock(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	c := NewClock(start)
	c.Advance(90 * time.Second)
	if got := c.Now().Sub(start); got != 90*time.Second {
		t.Fatalf("Advance moved %v", got)
	}
}

func TestListFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "inputs", "2015"), 0o700); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{"session", "inputs/2015/01.txt"} {
		if err := os.WriteFile(filepath.Join(dir, p), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"inputs/2015/01.txt", "session"}
	if diff := cmp.Diff(want, ListFiles(t, dir)); diff != "" {
		t.Fatalf("ListFiles mismatch (-want +got):\n%s", diff)
	}
	if got := ListFiles(t, filepath.Join(dir, "nope")); len(got) != 0 {
		t.Fatalf("missing dir should list nothing, got %v", got)
	}
}
