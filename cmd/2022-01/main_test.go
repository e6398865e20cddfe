package main

import (
	"testing"

	"xaoc/internal/core/samples"
)

func TestSample(t *testing.T) {
	t.Parallel()
	in, err := samples.Lookup(2022, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := top(in, 1); got != 24000 {
		t.Fatalf("part1 = %d", got)
	}
	if got := top(in, 3); got != 45000 {
		t.Fatalf("part2 = %d", got)
	}
}

func TestFewerElvesThanRequested(t *testing.T) {
	t.Parallel()
	if got := top("1\n2\n\n3", 3); got != 6 {
		t.Fatalf("top = %d", got)
	}
}
