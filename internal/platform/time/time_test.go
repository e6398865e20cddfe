package time

import (
	"testing"
	"time"
)

func TestReleaseAt(t *testing.T) {
	got := ReleaseAt(2023, 1)
	want := time.Date(2023, time.December, 1, 5, 0, 0, 0, time.UTC) // EST is UTC-5 in December
	if !got.Equal(want) {
		t.Fatalf("ReleaseAt = %v, want %v", got.UTC(), want)
	}
	if got.Location().String() != ReleaseZone {
		t.Fatalf("location = %s", got.Location())
	}
}

func TestReleasedBoundary(t *testing.T) {
	rel := ReleaseAt(2024, 5)
	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one nanosecond early", rel.Add(-time.Nanosecond), false},
		{"a day early", rel.Add(-24 * time.Hour), false},
		{"exactly at release", rel, true},
		{"after release", rel.Add(5 * time.Minute), true},
		{"next year", rel.AddDate(1, 0, 0), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Released(tc.now, 2024, 5); got != tc.want {
				t.Fatalf("Released = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUntil(t *testing.T) {
	now := time.Date(2024, time.November, 30, 23, 59, 0, 0, Eastern())
	if got := Until(now, 2024, 1); got != time.Minute {
		t.Fatalf("Until = %v, want 1m", got)
	}
	if got := Until(now.AddDate(0, 0, 2), 2024, 1); got >= 0 {
		t.Fatalf("Until after release should be negative, got %v", got)
	}
}

func TestFormatWait(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{-time.Hour, "00:00:00"},
		{time.Millisecond, "00:00:01"},
		{time.Minute, "00:01:00"},
		{time.Hour + 2*time.Minute + 3*time.Second, "01:02:03"},
		{49 * time.Hour, "49:00:00"},
	}
	for _, tc := range cases {
		if got := FormatWait(tc.in); got != tc.want {
			t.Fatalf("FormatWait(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
