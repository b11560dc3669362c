package scanner

import "time"

// clockScheduler schedules with the runtime timer.
type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// rearmTask is a pending automatic return to Scanning. It is keyed to the
// state generation it was scheduled in: a firing whose generation no longer
// matches the machine's is stale and skipped.
type rearmTask struct {
	generation uint64
	cancel     func() bool
}
