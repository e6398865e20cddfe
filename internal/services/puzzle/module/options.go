package module

import (
	"os"
	"path/filepath"
	"time"

	"xaoc/internal/adapters/credential"
	"xaoc/internal/platform/config"
)

// AppName names the directory under the user config dir
const AppName = "xaoc"

// Options holds configuration settings for the puzzle module
type Options struct {
	// Root is the configuration root holding the session file and the input cache
	Root    string
	BaseURL string
	Contact string
	Timeout time.Duration
	// Prompt asks for a missing session token; nil never prompts
	Prompt credential.Prompter
}

// userConfigDir is a seam for tests
var userConfigDir = os.UserConfigDir

// DefaultRoot returns <user config dir>/xaoc, falling back to ./.xaoc
func DefaultRoot() string {
	if dir, err := userConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, AppName)
	}
	return "." + AppName
}

// FromConfig reads configuration settings from XAOC_* variables
func FromConfig(cfg config.Conf) Options {
	xc := cfg.Prefix("XAOC_")
	return Options{
		Root:    xc.MayPath("CONFIG_DIR", DefaultRoot()),
		BaseURL: xc.MayURL("BASE_URL", ""),
		Contact: xc.MayString("CONTACT", ""),
		Timeout: xc.MayDuration("HTTP_TIMEOUT", 0),
		Prompt:  credential.Stdio(),
	}
}
