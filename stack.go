// stack.go — one-shot backtrace capture for xgx-union.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - One capture per union lifetime: the backtrace is taken when the union
//     is first constructed and carried unchanged through every narrow /
//     widen / subset. Recapturing would misattribute the error's origin.
//   - Best-effort: a nil Stack is valid everywhere and simply renders
//     nothing. Capture failure never affects correctness.
//   - Pragmatic performance: bounded depth, capture cost only on the error
//     construction path.
package xgxunion

import (
	"runtime"
)

// Frame represents a single call site in a backtrace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth bounds capture work on error paths while keeping
	// enough context to locate the construction site.
	defaultMaxDepth = 64
)

// captureStackDefault captures a stack skipping 'skip' frames beyond the
// internal helpers, with the default depth bound.
//
// Skip model for the construction chain:
//
//	New → captureStackDefault → captureStack → runtime.Callers
//
// captureStack adds +3 to hide runtime.Callers, captureStack, and
// captureStackDefault; constructors pass their own extra skip on top so the
// first recorded frame lands at the user call site.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial
// frames, and resolves them via CallersFrames so inlined calls are expanded.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
