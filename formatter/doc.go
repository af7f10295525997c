// Package formatter turns a core.Entry into the bytes of one console
// line.
//
// It exposes the Formatter interface, which returns a []byte, and the
// optional WriterFormatter and BufferFormatter interfaces. Handlers
// check for the optional interfaces at construction time and prefer
// them, so the common path formats into a reused buffer and issues a
// single Write per line.
//
// StyledFormatter is the only built-in formatter. Its segments are
// timestamp, level, system tag and message, joined by a reset-wrapped
// divider; absent segments are omitted along with their divider.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
