// trace.go — ordered diagnostic trace for xgx-union.
//
// Design:
//   - Internal representation: append-only []string in push order, root
//     cause first. No keys, no structure: the trace narrates the error's
//     journey through call sites, one short message per hop.
//   - Builders are non-mutating: "appending" returns a NEW slice so shared
//     unions never observe each other's pushes.
//   - Public view for callers: copy-on-read slice.
//
// Rationale:
//   - Messages never influence control flow or narrowing decisions; they
//     are diagnostics only and render exclusively in verbose output
//     (see format.go).
//   - Go strings are immutable, so a static/owned message split buys
//     nothing here; a plain string covers both.
package xgxunion

// trace is the internal append-only message sequence.
// Treat it as immutable once published; never modify elements in place.
type trace []string

// emptyTrace is the canonical empty trace.
var emptyTrace = make(trace, 0)

// traceCloneAppend returns a NEW trace with dst's messages followed by msg.
// It always allocates a fresh backing array to avoid aliasing via append.
func traceCloneAppend(dst trace, msg string) trace {
	out := make(trace, len(dst)+1)
	copy(out, dst)
	out[len(dst)] = msg
	return out
}

// traceCopy returns a defensive copy, or nil for an empty trace.
func traceCopy(t trace) []string {
	if len(t) == 0 {
		return nil
	}
	out := make([]string, len(t))
	copy(out, t)
	return out
}
