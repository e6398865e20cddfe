// Package time holds the release clock for puzzles
package time

import (
	"fmt"
	"time"
	_ "time/tzdata" // puzzle release is pinned to US Eastern; do not depend on the host zoneinfo
)

// ReleaseZone is the zone puzzles unlock in
const ReleaseZone = "America/New_York"

var eastern = mustLoad(ReleaseZone)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("time: load %s: %v", name, err))
	}
	return loc
}

// Clock returns the current instant; swap it in tests
type Clock func() time.Time

// System is the wall clock
var System Clock = time.Now

// Eastern returns the US Eastern location
func Eastern() *time.Location { return eastern }

// ReleaseAt returns midnight US Eastern on December day of year
func ReleaseAt(year, day int) time.Time {
	return time.Date(year, time.December, day, 0, 0, 0, 0, eastern)
}

// Until returns how long remains before the puzzle unlocks, zero or less when it is out
func Until(now time.Time, year, day int) time.Duration {
	return ReleaseAt(year, day).Sub(now)
}

// Released reports whether the puzzle is unlocked at now
func Released(now time.Time, year, day int) bool {
	return !now.Before(ReleaseAt(year, day))
}

// FormatWait renders d as HH:MM:SS, rounding partial seconds up so a
// positive wait never prints as 00:00:00. Hours are not capped at 24
func FormatWait(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}
