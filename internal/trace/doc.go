// Package trace is the structured event log of the lexid tools.
//
// Events are spans (begin/end pairs) and points, tagged with a Scope. The
// Level picks which scopes are written: phase shows driver work, detail adds
// per-file events, debug adds per-name events. A Tracer travels in a
// context.Context; code that finds none gets Nop and pays nothing.
//
// The name package never traces: validation is a pure function.
package trace
