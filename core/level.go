package core

import "strings"

// Level represents the severity of a log call
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// NumLevels is the number of defined levels
const NumLevels = 4

var levelNames = [NumLevels]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l is one of the four defined levels
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= ErrorLevel
}

// AllLevels returns the four levels in increasing order
func AllLevels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// ParseLevel converts a level name to a Level. The boolean is false for
// names that do not denote a level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	default:
		return InfoLevel, false
	}
}
