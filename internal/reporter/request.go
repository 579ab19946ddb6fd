package reporter

import (
	"time"

	"timereport/internal/bgpinfo"
)

// Clock provides the time reported to the service.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// BuildRequest stamps a request with clock's current Unix time in seconds.
// A clock set before the epoch reports 0.
func BuildRequest(clock Clock) *bgpinfo.Values {
	sec := clock.Now().Unix()
	if sec < 0 {
		sec = 0
	}
	return bgpinfo.NewValues(uint64(sec))
}
