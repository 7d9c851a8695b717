package yuv

import (
	"time"

	"github.com/pion/logging"
)

// DefragPath tells which strategy the defragmenter used for a plane.
type DefragPath int

const (
	// DefragNone means the plane was already compact and returned as is.
	DefragNone DefragPath = iota
	// DefragPadding means only row padding was dropped, row by row.
	DefragPadding
	// DefragGather means every sample was gathered one by one.
	DefragGather
)

func (p DefragPath) String() string {
	switch p {
	case DefragNone:
		return "none"
	case DefragPadding:
		return "padding"
	case DefragGather:
		return "gather"
	}
	return "unknown"
}

// DefragStats describes one defragmentation.
type DefragStats struct {
	Rows    int
	Cols    int
	Path    DefragPath
	Bytes   int
	Elapsed time.Duration
}

// Observer receives the stats of every defragmented plane.
type Observer func(DefragStats)

// LogObserver returns an Observer writing each defragmentation to logger at
// debug level.
func LogObserver(logger logging.LeveledLogger) Observer {
	return func(s DefragStats) {
		logger.Debugf("defragmented %dx%d plane (%s, %d bytes) in %s", s.Cols, s.Rows, s.Path, s.Bytes, s.Elapsed)
	}
}

func (o Observer) observe(s DefragStats) {
	if o != nil {
		o(s)
	}
}
