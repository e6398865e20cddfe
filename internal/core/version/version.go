// Package version provides information about the build version of the harness
package version

import (
	"fmt"
	"runtime/debug"
)

// BuildInfo holds version information about the build
type BuildInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// String renders the one-line form printed by --version
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", b.Name, b.Version, b.Commit, b.Date)
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags; the VCS revision
// recorded by the go tool fills in the commit when they are not.
func Info() BuildInfo {
	// Set via -ldflags "-X 'xaoc/internal/core/version.version=v0.3.0'
	// -X 'xaoc/internal/core/version.commit=abcd' -X 'xaoc/internal/core/version.date=2025-12-01'"
	bi := BuildInfo{
		Name:    "xaoc",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if bi.Commit == "none" {
		if rev, ok := vcsRevision(); ok {
			bi.Commit = rev
		}
	}
	return bi
}

func vcsRevision() (string, bool) {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return "", false
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			if len(s.Value) > 12 {
				return s.Value[:12], true
			}
			return s.Value, true
		}
	}
	return "", false
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo // seam
)
