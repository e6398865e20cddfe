package main

import (
	"testing"

	"xaoc/internal/core/samples"
)

func TestSamples(t *testing.T) {
	t.Parallel()
	cases := []struct {
		index   int
		spelled bool
		want    int
	}{
		{0, false, 142},
		{1, true, 281},
	}
	for _, tc := range cases {
		in, err := samples.Lookup(2023, 1, tc.index)
		if err != nil {
			t.Fatal(err)
		}
		if got := calibrate(in, tc.spelled); got != tc.want {
			t.Fatalf("calibrate(sample %d) = %d, want %d", tc.index, got, tc.want)
		}
	}
}

func TestOverlappingWords(t *testing.T) {
	t.Parallel()
	if got := calibrate("oneight", true); got != 18 {
		t.Fatalf("oneight = %d", got)
	}
	if got := calibrate("oneight", false); got != 0 {
		t.Fatalf("digits only = %d", got)
	}
}
