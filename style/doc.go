// Package style maps symbolic style names ("BRIGHT", "RED", ...) to
// terminal escape sequences and resolves per-region style selections
// into the concrete strings used to render a console line.
//
// The code table is fixed and process-wide; Names lists it in order.
// Everything in this package is lenient: an unknown style name resolves
// to the empty string and an unknown %{NAME} placeholder is left in the
// text untouched.
package style
