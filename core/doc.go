// Package core defines the shared types used across conlog.
//
// It provides the Level type for the four severities, the Entry type
// that carries everything needed to render one console line, and the
// Clock abstraction that supplies the current instant and renders it
// as a locale string.
//
// Entry objects are pooled via sync.Pool. The logger gets an Entry with
// GetEntry and returns it with PutEntry once the (synchronous) handler
// has consumed it.
//
// Levels have no numeric comparison semantics beyond set membership:
// enablement is always an explicit set of levels, never a threshold.
package core
