// doc.go — package documentation for xgx-union
//
// Package xgxunion provides an open error-union container: a value known
// only to be one of several declared candidate types, used to propagate
// errors whose exact type the caller need not fully commit to. It is
// designed to be:
//   - Precise at API boundaries (functions name the exact error subset they
//     may return)
//   - Interoperable with the stdlib (error, errors.Is/As, fmt.Formatter)
//   - Policy-free (no logging/HTTP/retry rules in core)
//
// # Model
//
// A candidate list is an ordered, duplicate-free set of 1–9 types declared
// with a marker: Of1[A] … Of9[A..I]. A Union[S] holds exactly one value of
// some member of S, type-erased, plus an ordered diagnostic trace and a
// backtrace captured once at construction.
//
//	u := xgxunion.New[xgxunion.Of3[*fs.PathError, int, bool]](pathErr)
//
// Callers resolve the set step by step:
//
//   - Narrow[T, R]  — extract candidate T, or receive the same payload
//     relabeled over the remainder list R (failure is a value, not a panic).
//   - Widen[To]     — relabel over any superset (or reordering) of the
//     current list; no runtime check, no payload move.
//   - Subset[Sub, R] — split into "one of Sub" versus "one of R".
//   - Take          — unwrap a single-candidate union; always succeeds.
//
// Every transform shares the original payload allocation, trace, and
// backtrace; nothing is reallocated or recaptured.
//
// # Matching
//
// Once a list is fully resolved, convert to the closed per-arity mirror for
// exhaustive handling:
//
//	switch e := xgxunion.ToEnum2(u); {
//	case e.A != nil: // *fs.PathError
//	case e.B != nil: // int
//	}
//
// ToEnumN detaches a copy (owned form); AsEnumN aliases the stored payload
// (borrowed form).
//
// # Diagnostics
//
// Ctx/Ctxf append short messages to the trace, oldest first, without ever
// influencing control flow:
//
//	return zero, xgxunion.Widen[Wide](u).Ctx("loading profile")
//
// Rendering is fmt-based and opt-in:
//   - %v, %s  → concise payload text (Error())
//   - %+v     → payload, then a "Context:" block (push order), then a
//     "Backtrace:" block when captured
//   - %q      → quoted Error()
//
// # Failure semantics
//
// Narrow and Subset never panic for well-typed inputs: the miss arm is an
// ordinary remainder-typed return. Panics are reserved for construction
// bugs — wrapping a non-member type, declaring the wrong remainder list,
// widening to a non-superset, or using the zero Union — where continuing
// silently would be unsound.
//
// Go cannot prove list membership or remainder relationships at compile
// time, so those proofs are small dynamic assertions checked on
// construction and on each transform; the candidate tables behind them are
// built once per distinct list. Candidate identity is the type declared at
// construction, so interface types may themselves be candidates.
//
// Lists must be duplicate-free; a duplicated candidate makes resolution
// undefined (documented, not checked). Arity is capped at 9 — compose
// unions hierarchically beyond that.
package xgxunion
