// Package sloghandler provides a log/slog.Handler backed by a
// logger.Logger, so code written against the standard library's
// structured logging produces the same styled console lines and level
// notifications as direct Logger calls.
//
// Levels map onto the four severities: anything below slog.LevelInfo is
// DEBUG, and WARN and ERROR start at slog.LevelWarn and slog.LevelError.
// The "system" attribute (or the dotted group path) becomes the system
// tag; every other attribute is appended to the message as key=value.
package sloghandler
