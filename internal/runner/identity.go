package runner

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"

	perr "xaoc/internal/platform/errors"
	dom "xaoc/internal/services/puzzle/domain"
)

// seams for tests
var (
	readBuildInfo = debug.ReadBuildInfo
	progName      = func() string {
		if len(os.Args) == 0 {
			return ""
		}
		return os.Args[0]
	}
)

// matches 2015-01, 2015_1, aoc2015day01, 2015/day1 at the end of a name
var identityRE = regexp.MustCompile(`(?i)(20\d\d)\D{0,6}?(\d{1,2})$`)

// identify returns the puzzle a solver binary is bound to
// Explicit year and day win, then the main package path, then the program name
func identify(year, day int) (dom.Puzzle, error) {
	p := dom.Puzzle{Year: year, Day: day}
	if year == 0 || day == 0 {
		for _, name := range candidates() {
			if y, d, ok := parseIdentity(name); ok {
				if p.Year == 0 {
					p.Year = y
				}
				if p.Day == 0 {
					p.Day = d
				}
				break
			}
		}
	}
	if p.Year == 0 || p.Day == 0 {
		return p, perr.InvalidArgf("cannot tell which puzzle this solver is for; set Year and Day")
	}
	return p, p.Validate()
}

func candidates() []string {
	var out []string
	if bi, ok := readBuildInfo(); ok && bi != nil && bi.Path != "" {
		out = append(out, bi.Path)
	}
	if name := progName(); name != "" {
		out = append(out, name)
	}
	return out
}

// parseIdentity reads year and day from the last one or two path elements
func parseIdentity(name string) (int, int, bool) {
	name = filepath.ToSlash(name)
	name = strings.TrimSuffix(name, ".exe")
	name = strings.TrimSuffix(name, ".test")
	parts := strings.Split(strings.Trim(name, "/"), "/")
	tail := parts[len(parts)-1]
	if len(parts) > 1 {
		tail = parts[len(parts)-2] + "/" + tail
	}
	for _, s := range []string{parts[len(parts)-1], tail} {
		m := identityRE.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		y, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		if d >= 1 && d <= 25 {
			return y, d, true
		}
	}
	return 0, 0, false
}
