// Package consolehandler provides the console sink: a synchronous
// handler that writes formatted lines to any io.Writer (default:
// os.Stdout).
//
// ConsoleHandler formats into a handler-owned buffer under its mutex
// when the formatter implements formatter.BufferFormatter, so the
// steady state allocates nothing per line.
package consolehandler
