package logger

import (
	"github.com/philipp01105/conlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level, falling back to InfoLevel
// for unknown names
func ParseLevel(s string) Level {
	l, _ := core.ParseLevel(s)
	return l
}
