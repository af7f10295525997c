package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() time.Time {
	return *coarseNow.Load()
}

// CoarseClock is a Clock backed by the cached coarse time. Timestamps
// are at most ~500µs stale, which is invisible at second resolution.
type CoarseClock struct{}

// NewCoarseClock starts the coarse clock and returns a Clock reading it
func NewCoarseClock() CoarseClock {
	StartCoarseClock()
	return CoarseClock{}
}

// Now returns the cached instant
func (CoarseClock) Now() time.Time {
	StartCoarseClock()
	return CoarseNow()
}

// Render formats t, see Clock
func (CoarseClock) Render(t time.Time, params []string) string {
	return RenderTime(t, params)
}
