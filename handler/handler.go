package handler

import (
	"github.com/philipp01105/conlog/core"
)

// Handler is the console sink. The logger calls Handle at most once per
// log call, synchronously, and may recycle the entry once it returns.
type Handler interface {
	// Handle writes one line for the entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track write statistics
type StatsProvider interface {
	Stats() Snapshot
}
