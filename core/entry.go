package core

import (
	"sync"
	"time"
)

// Styles holds the concrete escape strings for one log call, one per
// region of the console line.
type Styles struct {
	Divider   string
	Timestamp string
	Levels    [NumLevels]string
	System    string
	Message   string
}

// Level returns the style for l, or "" for an undefined level
func (s *Styles) Level(l Level) string {
	if !l.Valid() {
		return ""
	}
	return s.Levels[l]
}

// Entry represents one console line with all its metadata
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	System  string
	// Stamp is the rendered timestamp segment; empty omits the segment.
	Stamp  string
	Styles *Styles
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Time{}
	e.Level = InfoLevel
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.System = ""
	e.Stamp = ""
	e.Styles = nil
	entryPool.Put(e)
}
