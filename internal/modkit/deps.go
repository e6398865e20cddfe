package modkit

import (
	"time"

	"xaoc/internal/platform/config"
	"xaoc/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	// Now is the wall clock, time.Now when nil
	Now func() time.Time
}

// Clock returns Now or time.Now
func (d Deps) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}
