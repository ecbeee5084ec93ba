// union.go — the open error-union container for xgx-union.
//
// Scope (tiny core):
//   - Union[S]: one type-erased value known to be one of the candidates
//     declared by the marker S, plus an ordered diagnostic trace and a
//     backtrace captured exactly once at construction.
//   - Checked construction (New, Single) and the four transforms
//     (Narrow, Widen, Subset, Take).
//   - NON-MUTATING fluent trace methods (Ctx, Ctxf), as in xgx-error.
//
// Failure semantics are structural, never exceptional: a failed Narrow or
// Subset is an ordinary remainder-typed return. Panics are reserved for
// construction bugs — a non-member payload type, a mis-declared remainder
// list, a widen to a non-superset, or a corrupted invariant — where silent
// continuation would be unsound.
//
// Storage: the payload lives behind a single *T boxed in an any. Every
// transform copies only the container value and shares that allocation, the
// trace, and the backtrace; nothing is reallocated or recaptured after
// construction.
package xgxunion

import (
	"fmt"
	"reflect"
)

// Union is an open sum type: a value known to be exactly one of the
// candidates declared by S, without defining a dedicated enum for each
// combination. A Union[Of2[*fs.PathError, int]] holds either a *fs.PathError
// or an int. Functions can thereby name the precise subset of errors they
// may return, and callers peel candidates off with Narrow/Subset until the
// set is fully resolved (see enum.go for exhaustive matching).
//
// The zero Union is invalid; construct with New or Single. All fluent
// methods are non-mutating and return a new value, so a Union may be shared
// or sent across goroutines exactly as freely as its payload allows.
type Union[S TypeSet] struct {
	ptr   any          // *T for the stored candidate T; shared across views
	rt    reflect.Type // declared T; always a member of setTypes[S]
	trace trace
	stk   Stack
}

// New wraps v into a union over the candidate list S. The declared type of v
// must be a member of S; a non-member is a construction bug and panics.
// The backtrace is captured here, exactly once for the union's lifetime,
// and the trace starts empty.
func New[S TypeSet, T any](v T) Union[S] {
	rt := reflect.TypeFor[T]()
	if !containsType(setTypes[S](), rt) {
		panic(fmt.Sprintf("xgxunion: %v is not a candidate of %v", rt, setTypes[S]()))
	}
	return Union[S]{
		ptr:   &v,
		rt:    rt,
		trace: emptyTrace,
		stk:   captureStackDefault(1),
	}
}

// Single lifts a bare value into a single-candidate union. Membership is
// structural — the list is exactly (T,) — so no check is needed. Widen the
// result to grow the candidate set.
func Single[T any](v T) Union[Of1[T]] {
	return Union[Of1[T]]{
		ptr:   &v,
		rt:    reflect.TypeFor[T](),
		trace: emptyTrace,
		stk:   captureStackDefault(1),
	}
}

// Narrow attempts to extract the Target candidate from u. On an identity
// match the value is moved out (u is consumed; the returned remainder is the
// zero Union) and ok is true. On a miss the same payload, trace, and
// backtrace are relabeled to the remainder list R and ok is false — the
// failure path never panics for a well-typed input.
//
// R must be S minus Target with order preserved; Target must be a candidate
// of S. Either declaration being wrong is a construction bug and panics.
func Narrow[Target any, R TypeSet, S TypeSet](u Union[S]) (Target, Union[R], bool) {
	tt := reflect.TypeFor[Target]()
	rem, ok := narrowRemainder(setTypes[S](), tt)
	if !ok {
		panic(fmt.Sprintf("xgxunion: Narrow target %v is not a candidate of %v", tt, setTypes[S]()))
	}
	if !sameTypes(rem, setTypes[R]()) {
		panic(fmt.Sprintf("xgxunion: Narrow remainder declared as %v, want %v", setTypes[R](), rem))
	}
	u.mustValid()

	if u.rt == tt {
		return *(u.ptr.(*Target)), Union[R]{}, true
	}
	var zero Target
	return zero, relabel[R](u), false
}

// Widen reinterprets u as a union over the candidate list To, which must be
// a superset of S (possibly the same set in a different order). This is a
// pure relabel: no runtime identity check, no payload move, no recapture.
func Widen[To TypeSet, S TypeSet](u Union[S]) Union[To] {
	if _, ok := supersetRemainder(setTypes[To](), setTypes[S]()); !ok {
		panic(fmt.Sprintf("xgxunion: Widen target %v is not a superset of %v", setTypes[To](), setTypes[S]()))
	}
	u.mustValid()
	return relabel[To](u)
}

// Subset splits u into "definitely one of Sub" versus "definitely one of the
// complement R". The stored identity is scanned against Sub in declaration
// order; exactly one of the two returns carries the payload, signalled by ok.
//
// Sub must be matchable against distinct slots of S, and R must be the
// remaining slots in order; wrong declarations panic.
func Subset[Sub TypeSet, R TypeSet, S TypeSet](u Union[S]) (Union[Sub], Union[R], bool) {
	sub := setTypes[Sub]()
	rem, ok := supersetRemainder(setTypes[S](), sub)
	if !ok {
		panic(fmt.Sprintf("xgxunion: Subset target %v is not contained in %v", sub, setTypes[S]()))
	}
	if !sameTypes(rem, setTypes[R]()) {
		panic(fmt.Sprintf("xgxunion: Subset remainder declared as %v, want %v", setTypes[R](), rem))
	}
	u.mustValid()

	if foldIndex(sub, u.rt) >= 0 {
		return relabel[Sub](u), Union[R]{}, true
	}
	return Union[Sub]{}, relabel[R](u), false
}

// Take returns the value of a single-candidate union. Membership is
// guaranteed by the signature, so Take always succeeds for unions built
// through the checked constructors; an identity mismatch here means the
// union was corrupted elsewhere and fails loudly.
func Take[T any](u Union[Of1[T]]) T {
	u.mustValid()
	p, ok := u.ptr.(*T)
	if !ok {
		panic(fmt.Sprintf("xgxunion: sole candidate %v does not match stored %v (corrupted union)",
			reflect.TypeFor[T](), u.rt))
	}
	return *p
}

// relabel re-tags a union under a different candidate list, sharing the
// payload, trace, and backtrace. Callers must have proven the new list
// admits the stored identity.
func relabel[To TypeSet, From TypeSet](u Union[From]) Union[To] {
	return Union[To]{ptr: u.ptr, rt: u.rt, trace: u.trace, stk: u.stk}
}

// -----------------------------------------------------------------------------
// Fluent trace methods (copy-on-write, as in xgx-error)
// -----------------------------------------------------------------------------

// Ctx appends a diagnostic message to the trace and returns a NEW Union.
// The payload and backtrace are shared unchanged. Messages render oldest
// first in verbose output and never influence narrowing.
func (u Union[S]) Ctx(msg string) Union[S] {
	u.mustValid()
	n := u
	n.trace = traceCloneAppend(u.trace, msg)
	return n
}

// Ctxf is Ctx with fmt.Sprintf formatting.
func (u Union[S]) Ctxf(format string, args ...any) Union[S] {
	u.mustValid()
	n := u
	n.trace = traceCloneAppend(u.trace, fmt.Sprintf(format, args...))
	return n
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

// Context returns a copy of the trace messages in push order (root first).
// It returns nil when nothing has been pushed.
func (u Union[S]) Context() []string { return traceCopy(u.trace) }

// Stack returns the backtrace captured at construction, or nil when capture
// was unavailable. Stack is an immutable value type; callers share it.
func (u Union[S]) Stack() Stack { return u.stk }

// Type returns the declared type of the stored candidate.
func (u Union[S]) Type() reflect.Type { return u.rt }

// Unwrap exposes the payload as the causal parent when it implements error,
// so errors.Is and errors.As traverse into the payload's own chain.
func (u Union[S]) Unwrap() error {
	if u.ptr == nil {
		return nil
	}
	mustFoldIndex(setTypes[S](), u.rt)
	return sourceFold(u.ptr)
}

// mustValid panics on the zero (or consumed) Union. Using one is always a
// bug in the caller, never a data-dependent condition.
func (u Union[S]) mustValid() {
	if u.ptr == nil {
		panic("xgxunion: use of zero or consumed Union (construct with New or Single)")
	}
}

// -----------------------------------------------------------------------------
// Interface conformance guards
// -----------------------------------------------------------------------------
var (
	_ error         = Union[Of1[string]]{}
	_ fmt.Formatter = Union[Of2[string, int]]{}
)
