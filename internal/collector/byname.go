package collector

import (
	"fmt"
	"time"
)

// #region by-name

// BuiltinNames lists every source ByName can construct.
var BuiltinNames = []string{
	"clock_jitter",
	"scheduler_yield",
	"channel_roundtrip",
	"memory_walk",
	"disk_sync",
	"uniform",
	"constant",
	"sine_drift",
}

// ByName constructs a builtin collector by source name. Collectors that own
// resources (disk_sync) are freshly instantiated per call; callers close them
// via the Close method when present.
func ByName(name string) (Collector, error) {
	switch name {
	case "clock_jitter":
		return NewClockJitter(), nil
	case "scheduler_yield":
		return NewSchedulerYield(), nil
	case "channel_roundtrip":
		return NewChannelRoundTrip(), nil
	case "memory_walk":
		return NewMemoryWalk(DefaultMemoryWalkBytes), nil
	case "disk_sync":
		return NewDiskSync("")
	case "uniform":
		return NewUniform(uint64(time.Now().UnixNano()) | 1), nil
	case "constant":
		return NewConstant(42), nil
	case "sine_drift":
		return NewSineDrift(100000, 5000, 0.02), nil
	default:
		return nil, fmt.Errorf("unknown builtin source %q", name)
	}
}

// #endregion by-name
