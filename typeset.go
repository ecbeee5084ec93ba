// typeset.go — candidate type lists and the ordered set algebra for xgx-union.
//
// A candidate list is declared with one of the OfN marker types, e.g.
// Of3[*fs.PathError, int, bool]. Markers are zero-sized and carry no runtime
// state; their only job is to name an ordered, duplicate-free list of types.
//
// Go has no compile-time constraint resolution over type lists, so the
// membership / remainder / superset relationships are proved with small
// dynamic assertions instead: each distinct marker is lowered once into an
// ordered []reflect.Type table, and every transform checks its declared
// result list against the computed one. A failed check is a construction
// bug, not a recoverable condition (see union.go).
//
// Invariants (documented, not runtime-checked):
//   - Lists are duplicate-free. A duplicated candidate makes narrow/subset
//     resolution undefined: the first matching slot always wins.
//   - Arity is capped at 9. Compose unions hierarchically beyond that.
package xgxunion

import (
	"reflect"
	"sync"
)

// TypeSet is the sealed marker interface implemented by Of0 through Of9.
// Callers never implement it; they only name the markers in type arguments.
type TypeSet interface {
	// types returns the declared candidate list in declaration order.
	types() []reflect.Type
}

// Of0 is the empty candidate list. It cannot hold a value; it exists only as
// the remainder of narrowing a single-candidate union. An empty list unifies
// with itself and nothing else.
type Of0 struct{}

// Of1 through Of9 declare candidate lists of the corresponding arity.
type Of1[A any] struct{}
type Of2[A, B any] struct{}
type Of3[A, B, C any] struct{}
type Of4[A, B, C, D any] struct{}
type Of5[A, B, C, D, E any] struct{}
type Of6[A, B, C, D, E, F any] struct{}
type Of7[A, B, C, D, E, F, G any] struct{}
type Of8[A, B, C, D, E, F, G, H any] struct{}
type Of9[A, B, C, D, E, F, G, H, I any] struct{}

func (Of0) types() []reflect.Type { return nil }

func (Of1[A]) types() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A]()}
}

func (Of2[A, B]) types() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

func (Of3[A, B, C]) types() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}

func (Of4[A, B, C, D]) types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
	}
}

func (Of5[A, B, C, D, E]) types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](),
	}
}

func (Of6[A, B, C, D, E, F]) types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](), reflect.TypeFor[F](),
	}
}

func (Of7[A, B, C, D, E, F, G]) types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](), reflect.TypeFor[F](), reflect.TypeFor[G](),
	}
}

func (Of8[A, B, C, D, E, F, G, H]) types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](), reflect.TypeFor[F](), reflect.TypeFor[G](), reflect.TypeFor[H](),
	}
}

func (Of9[A, B, C, D, E, F, G, H, I]) types() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D](),
		reflect.TypeFor[E](), reflect.TypeFor[F](), reflect.TypeFor[G](), reflect.TypeFor[H](),
		reflect.TypeFor[I](),
	}
}

// setTypesCache memoizes the lowered candidate list per distinct marker type.
// Entries are written once and immutable after that; callers MUST NOT mutate
// the returned slice (package-internal convention).
var setTypesCache sync.Map // reflect.Type (marker) → []reflect.Type

// setTypes returns the ordered candidate list declared by the marker S,
// building it at most once per distinct S.
func setTypes[S TypeSet]() []reflect.Type {
	key := reflect.TypeFor[S]()
	if cached, ok := setTypesCache.Load(key); ok {
		return cached.([]reflect.Type)
	}
	var s S
	ts := s.types()
	// Duplicate stores under a race resolve to equivalent slices.
	actual, _ := setTypesCache.LoadOrStore(key, ts)
	return actual.([]reflect.Type)
}

// -----------------------------------------------------------------------------
// Ordered set algebra
// -----------------------------------------------------------------------------
//
// All functions treat their inputs as immutable and preserve declaration
// order in every result. They are the runtime rendering of the Contains /
// Narrow / SupersetOf relationships.

// containsType reports whether t is a member of list.
func containsType(list []reflect.Type, t reflect.Type) bool {
	for _, e := range list {
		if e == t {
			return true
		}
	}
	return false
}

// narrowRemainder removes the single slot matching t from list, preserving
// the order of the survivors. ok is false when t is not a member, in which
// case rem is nil.
func narrowRemainder(list []reflect.Type, t reflect.Type) (rem []reflect.Type, ok bool) {
	for i, e := range list {
		if e == t {
			rem = make([]reflect.Type, 0, len(list)-1)
			rem = append(rem, list[:i]...)
			rem = append(rem, list[i+1:]...)
			return rem, true
		}
	}
	return nil, false
}

// supersetRemainder matches every entry of small to a distinct slot of big by
// repeated narrowing, threading the shrinking remainder so no slot is reused.
// On success rem is big minus the matched slots, order preserved. ok is false
// when some entry of small has no unmatched slot left in big.
//
// The empty small list matches vacuously: every list is a superset of Of0,
// and Of0 is a superset only of itself.
func supersetRemainder(big, small []reflect.Type) (rem []reflect.Type, ok bool) {
	rem = big
	for _, t := range small {
		rem, ok = narrowRemainder(rem, t)
		if !ok {
			return nil, false
		}
	}
	return rem, true
}

// sameTypes reports exact, order-sensitive list identity.
func sameTypes(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
