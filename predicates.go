// predicates.go — minimal membership predicates for xgx-union.
//
// Scope:
//   - Zero-policy helpers answering "which candidate is this?" questions
//     without consuming the union, for callers that want to peek before
//     committing to a Narrow or Subset.
//   - Nil-safe: every predicate reports false for the zero Union rather
//     than panicking, mirroring the nil-tolerance of classification
//     helpers in xgx-error.
package xgxunion

import "reflect"

// Is reports whether u currently holds the candidate T.
// Identity is the declared construction type, so Is never guesses: a union
// built from a concrete value behind an interface candidate answers for the
// interface, not the dynamic type.
func Is[T any, S TypeSet](u Union[S]) bool {
	if u.ptr == nil {
		return false
	}
	return u.rt == reflect.TypeFor[T]()
}

// Holds reports whether u's stored identity is a member of the candidate
// list Sub. This is the non-consuming form of the Subset test; it performs
// the same linear scan and nothing else.
func Holds[Sub TypeSet, S TypeSet](u Union[S]) bool {
	if u.ptr == nil {
		return false
	}
	return foldIndex(setTypes[Sub](), u.rt) >= 0
}

// Candidates returns a copy of the candidate list declared by S, in
// declaration order.
func Candidates[S TypeSet]() []reflect.Type {
	src := setTypes[S]()
	out := make([]reflect.Type, len(src))
	copy(out, src)
	return out
}
