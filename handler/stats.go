package handler

import (
	"sync/atomic"

	"github.com/philipp01105/conlog/core"
)

// Stats tracks handler statistics
type Stats struct {
	written [core.NumLevels]atomic.Uint64
	failed  atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten counts a line written at level. Undefined levels are
// not counted.
func (s *Stats) IncrementWritten(level core.Level) {
	if level.Valid() {
		s.written[level].Add(1)
	}
}

// IncrementFailed counts a failed write
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// GetWritten returns the written count for a level
func (s *Stats) GetWritten(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.written[level].Load()
}

// GetFailed returns the failed write count
func (s *Stats) GetFailed() uint64 {
	return s.failed.Load()
}

// GetTotalWritten returns the total written across all levels
func (s *Stats) GetTotalWritten() uint64 {
	var n uint64
	for i := range s.written {
		n += s.written[i].Load()
	}
	return n
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.written {
		s.written[i].Store(0)
	}
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written      map[core.Level]uint64
	WrittenTotal uint64
	FailedTotal  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written:     make(map[core.Level]uint64, core.NumLevels),
		FailedTotal: s.GetFailed(),
	}
	for _, l := range core.AllLevels() {
		n := s.GetWritten(l)
		snap.Written[l] = n
		snap.WrittenTotal += n
	}
	return snap
}
