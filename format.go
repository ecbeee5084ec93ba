// format.go — fmt.Formatter implementation for xgx-union.
//
// Behavior:
//
//	%s, %v   → concise: the display fold of the payload (Error()).
//	%+v      → verbose, multi-line:
//	             <payload, rendered with the debug fold>
//
//	             Context:
//	                 - oldest pushed message
//	                 - ...
//
//	             Backtrace:
//	               funcA file.go:123
//	               funcB other.go:45
//	%q       → quoted Error().
//
// The Context block appears only when messages were pushed, oldest first;
// the Backtrace block only when capture succeeded. Concise output carries
// neither — diagnostics are opt-in via %+v, keeping Error() cheap and
// log-line friendly.
package xgxunion

import (
	"fmt"
	"io"
)

// invalidUnionText renders instead of panicking inside fmt machinery when a
// zero Union leaks into a formatting path.
const invalidUnionText = "xgxunion: invalid zero Union"

// Error returns the concise, single-line message of the stored candidate.
func (u Union[S]) Error() string {
	if u.ptr == nil {
		return invalidUnionText
	}
	mustFoldIndex(setTypes[S](), u.rt)
	return displayFold(u.ptr)
}

// Format implements fmt.Formatter.
func (u Union[S]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			u.formatVerbose(s)
			return
		}
		formatConcise(s, u)
	case 's':
		formatConcise(s, u)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", u.Error())
	default:
		formatConcise(s, u)
	}
}

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the payload followed by the Context and Backtrace
// blocks, each omitted entirely when empty.
func (u Union[S]) formatVerbose(w io.Writer) {
	if u.ptr == nil {
		_, _ = io.WriteString(w, invalidUnionText)
		return
	}
	mustFoldIndex(setTypes[S](), u.rt)
	_, _ = io.WriteString(w, debugFold(u.ptr))

	if len(u.trace) > 0 {
		_, _ = io.WriteString(w, "\n\nContext:")
		for _, msg := range u.trace {
			_, _ = fmt.Fprintf(w, "\n    - %s", msg)
		}
	}

	if len(u.stk) > 0 {
		_, _ = io.WriteString(w, "\n\nBacktrace:")
		for _, fr := range u.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
