// fold.go — linear type-identity dispatch over a candidate list.
//
// The erased payload of a Union is known only to be one of its candidates.
// There is no native dynamic dispatch that answers "which of these N
// unrelated types is this value", so every capability (display, debug,
// source lookup, membership) walks the list in declaration order and acts on
// the first identity match. Order affects only how far the scan runs, never
// the outcome: lists are duplicate-free, so at most one slot can match.
//
// Scope:
//   - foldIndex / mustFoldIndex: the scan itself.
//   - display / debug / source capabilities applied to the matched payload.
//   - membership fold for Subset (see union.go).
package xgxunion

import (
	"fmt"
	"reflect"
)

// foldIndex returns the position of rt in list, or -1 when absent.
// This is the one runtime piece of the set algebra: only the stored
// identity, not the static list, can decide membership of a live value.
func foldIndex(list []reflect.Type, rt reflect.Type) int {
	for i, t := range list {
		if t == rt {
			return i
		}
	}
	return -1
}

// mustFoldIndex is foldIndex for positions that are guaranteed by the
// container invariant. A miss means the union was built outside the checked
// constructors; continuing silently would be unsound, so fail loudly.
func mustFoldIndex(list []reflect.Type, rt reflect.Type) int {
	i := foldIndex(list, rt)
	if i < 0 {
		panic(fmt.Sprintf("xgxunion: stored type %v is not a candidate of %v (corrupted union)", rt, list))
	}
	return i
}

// -----------------------------------------------------------------------------
// Capability folds
// -----------------------------------------------------------------------------
//
// The payload is stored as a *T inside an any (see union.go). Capabilities
// probe the pointee first, then the pointer itself, so candidates that
// implement error or fmt.Stringer on either receiver form are honored.

// displayFold renders the payload concisely: error → Error(),
// fmt.Stringer → String(), anything else → fmt.Sprint.
func displayFold(ptr any) string {
	v := payloadOf(ptr)
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	switch x := ptr.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// debugFold renders the payload verbosely. Errors keep their concise text
// (their own %+v handling, if any, is honored by fmt); everything else is
// deferred to %+v for structured detail.
func debugFold(ptr any) string {
	v := payloadOf(ptr)
	if _, ok := v.(error); ok {
		return fmt.Sprintf("%+v", v)
	}
	if _, ok := ptr.(error); ok {
		return fmt.Sprintf("%+v", ptr)
	}
	return fmt.Sprintf("%+v", v)
}

// sourceFold exposes the payload as the causal parent when it is an error,
// so errors.Is and errors.As traverse into the payload's own chain.
// Non-error candidates have no causal parent.
func sourceFold(ptr any) error {
	if e, ok := payloadOf(ptr).(error); ok {
		return e
	}
	if e, ok := ptr.(error); ok {
		return e
	}
	return nil
}

// payloadOf dereferences the stored *T back to a T-valued any.
func payloadOf(ptr any) any {
	return reflect.ValueOf(ptr).Elem().Interface()
}
