// Package handler provides the Handler interface, the console sink the
// logger writes each line to.
//
// Handlers are synchronous: Handle formats and writes the line before
// returning, so the logger can recycle the entry immediately and a log
// call is complete when it returns. Ordering of interleaved writes from
// concurrent callers is up to the handler; the built-in console handler
// serializes them with a mutex so every line is written with a single
// Write call.
//
// Built-in handlers:
//
//   - consolehandler.ConsoleHandler writes styled lines to any io.Writer
//     (default: stdout).
//   - MultiHandler fans out a single entry to several child handlers
//     and combines their errors.
//   - sloghandler.Handler goes the other way round and adapts a
//     logger.Logger to log/slog.Handler.
//
// Handlers track written and failed counts via the Stats type, which
// can be queried at runtime through StatsProvider.
package handler
