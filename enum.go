// enum.go — closed per-arity mirrors of a fully resolved union.
//
// Once a candidate list is pinned down, open-union ergonomics stop paying
// for themselves and exhaustive matching takes over. EnumN is the closed
// discriminated view for a list of arity N: exactly one pointer field is
// non-nil, positionally matching the candidate list, so a switch over the
// fields covers every case with no variant left ambiguous.
//
// Two flavors, both using the same linear identity scan as fold.go:
//
//   - ToEnumN  (owned): detaches a copy of the payload; the union is
//     logically consumed.
//   - AsEnumN  (borrowed): the variant pointer aliases the stored payload,
//     so reads and writes through it are visible to the union and every
//     view sharing its allocation.
//
// The scan tries candidates in declaration order and wraps the unique
// match; duplicate-free lists make the order irrelevant to the outcome.
package xgxunion

// Enum1 is the closed mirror of a single-candidate union.
type Enum1[A any] struct {
	A *A
}

// Enum2 is the closed mirror of a two-candidate union. Exactly one field is
// non-nil; match with a switch over the fields.
type Enum2[A, B any] struct {
	A *A
	B *B
}

type Enum3[A, B, C any] struct {
	A *A
	B *B
	C *C
}

type Enum4[A, B, C, D any] struct {
	A *A
	B *B
	C *C
	D *D
}

type Enum5[A, B, C, D, E any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
}

type Enum6[A, B, C, D, E, F any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
}

type Enum7[A, B, C, D, E, F, G any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
	G *G
}

type Enum8[A, B, C, D, E, F, G, H any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
	G *G
	H *H
}

type Enum9[A, B, C, D, E, F, G, H, I any] struct {
	A *A
	B *B
	C *C
	D *D
	E *E
	F *F
	G *G
	H *H
	I *I
}

// Index returns the zero-based position of the populated variant, or -1 for
// a zero mirror that was never produced by a conversion.
func (e Enum1[A]) Index() int {
	if e.A != nil {
		return 0
	}
	return -1
}

func (e Enum2[A, B]) Index() int {
	switch {
	case e.A != nil:
		return 0
	case e.B != nil:
		return 1
	}
	return -1
}

func (e Enum3[A, B, C]) Index() int {
	switch {
	case e.A != nil:
		return 0
	case e.B != nil:
		return 1
	case e.C != nil:
		return 2
	}
	return -1
}

func (e Enum4[A, B, C, D]) Index() int {
	switch {
	case e.A != nil:
		return 0
	case e.B != nil:
		return 1
	case e.C != nil:
		return 2
	case e.D != nil:
		return 3
	}
	return -1
}

func (e Enum5[A, B, C, D, E]) Index() int {
	switch {
	case e.A != nil:
		return 0
	case e.B != nil:
		return 1
	case e.C != nil:
		return 2
	case e.D != nil:
		return 3
	case e.E != nil:
		return 4
	}
	return -1
}

func (e Enum6[A, B, C, D, E, F]) Index() int {
	switch {
	case e.A != nil:
		return 0
	case e.B != nil:
		return 1
	case e.C != nil:
		return 2
	case e.D != nil:
		return 3
	case e.E != nil:
		return 4
	case e.F != nil:
		return 5
	}
	return -1
}

func (e Enum7[A, B, C, D, E, F, G]) Index() int {
	switch {
	case e.A != nil:
		return 0
	case e.B != nil:
		return 1
	case e.C != nil:
		return 2
	case e.D != nil:
		return 3
	case e.E != nil:
		return 4
	case e.F != nil:
		return 5
	case e.G != nil:
		return 6
	}
	return -1
}

func (e Enum8[A, B, C, D, E, F, G, H]) Index() int {
	switch {
	case e.A != nil:
		return 0
	case e.B != nil:
		return 1
	case e.C != nil:
		return 2
	case e.D != nil:
		return 3
	case e.E != nil:
		return 4
	case e.F != nil:
		return 5
	case e.G != nil:
		return 6
	case e.H != nil:
		return 7
	}
	return -1
}

func (e Enum9[A, B, C, D, E, F, G, H, I]) Index() int {
	switch {
	case e.A != nil:
		return 0
	case e.B != nil:
		return 1
	case e.C != nil:
		return 2
	case e.D != nil:
		return 3
	case e.E != nil:
		return 4
	case e.F != nil:
		return 5
	case e.G != nil:
		return 6
	case e.H != nil:
		return 7
	case e.I != nil:
		return 8
	}
	return -1
}

// -----------------------------------------------------------------------------
// Owned conversions
// -----------------------------------------------------------------------------

// ToEnum1 converts a single-candidate union to its owned closed mirror.
func ToEnum1[A any](u Union[Of1[A]]) Enum1[A] {
	u.mustValid()
	mustFoldIndex(setTypes[Of1[A]](), u.rt)
	v := *(u.ptr.(*A))
	return Enum1[A]{A: &v}
}

// ToEnum2 converts a two-candidate union to its owned closed mirror,
// wrapping a detached copy of the payload in the matching variant.
func ToEnum2[A, B any](u Union[Of2[A, B]]) Enum2[A, B] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of2[A, B]](), u.rt) {
	case 0:
		v := *(u.ptr.(*A))
		return Enum2[A, B]{A: &v}
	default:
		v := *(u.ptr.(*B))
		return Enum2[A, B]{B: &v}
	}
}

func ToEnum3[A, B, C any](u Union[Of3[A, B, C]]) Enum3[A, B, C] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of3[A, B, C]](), u.rt) {
	case 0:
		v := *(u.ptr.(*A))
		return Enum3[A, B, C]{A: &v}
	case 1:
		v := *(u.ptr.(*B))
		return Enum3[A, B, C]{B: &v}
	default:
		v := *(u.ptr.(*C))
		return Enum3[A, B, C]{C: &v}
	}
}

func ToEnum4[A, B, C, D any](u Union[Of4[A, B, C, D]]) Enum4[A, B, C, D] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of4[A, B, C, D]](), u.rt) {
	case 0:
		v := *(u.ptr.(*A))
		return Enum4[A, B, C, D]{A: &v}
	case 1:
		v := *(u.ptr.(*B))
		return Enum4[A, B, C, D]{B: &v}
	case 2:
		v := *(u.ptr.(*C))
		return Enum4[A, B, C, D]{C: &v}
	default:
		v := *(u.ptr.(*D))
		return Enum4[A, B, C, D]{D: &v}
	}
}

func ToEnum5[A, B, C, D, E any](u Union[Of5[A, B, C, D, E]]) Enum5[A, B, C, D, E] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of5[A, B, C, D, E]](), u.rt) {
	case 0:
		v := *(u.ptr.(*A))
		return Enum5[A, B, C, D, E]{A: &v}
	case 1:
		v := *(u.ptr.(*B))
		return Enum5[A, B, C, D, E]{B: &v}
	case 2:
		v := *(u.ptr.(*C))
		return Enum5[A, B, C, D, E]{C: &v}
	case 3:
		v := *(u.ptr.(*D))
		return Enum5[A, B, C, D, E]{D: &v}
	default:
		v := *(u.ptr.(*E))
		return Enum5[A, B, C, D, E]{E: &v}
	}
}

func ToEnum6[A, B, C, D, E, F any](u Union[Of6[A, B, C, D, E, F]]) Enum6[A, B, C, D, E, F] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of6[A, B, C, D, E, F]](), u.rt) {
	case 0:
		v := *(u.ptr.(*A))
		return Enum6[A, B, C, D, E, F]{A: &v}
	case 1:
		v := *(u.ptr.(*B))
		return Enum6[A, B, C, D, E, F]{B: &v}
	case 2:
		v := *(u.ptr.(*C))
		return Enum6[A, B, C, D, E, F]{C: &v}
	case 3:
		v := *(u.ptr.(*D))
		return Enum6[A, B, C, D, E, F]{D: &v}
	case 4:
		v := *(u.ptr.(*E))
		return Enum6[A, B, C, D, E, F]{E: &v}
	default:
		v := *(u.ptr.(*F))
		return Enum6[A, B, C, D, E, F]{F: &v}
	}
}

func ToEnum7[A, B, C, D, E, F, G any](u Union[Of7[A, B, C, D, E, F, G]]) Enum7[A, B, C, D, E, F, G] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of7[A, B, C, D, E, F, G]](), u.rt) {
	case 0:
		v := *(u.ptr.(*A))
		return Enum7[A, B, C, D, E, F, G]{A: &v}
	case 1:
		v := *(u.ptr.(*B))
		return Enum7[A, B, C, D, E, F, G]{B: &v}
	case 2:
		v := *(u.ptr.(*C))
		return Enum7[A, B, C, D, E, F, G]{C: &v}
	case 3:
		v := *(u.ptr.(*D))
		return Enum7[A, B, C, D, E, F, G]{D: &v}
	case 4:
		v := *(u.ptr.(*E))
		return Enum7[A, B, C, D, E, F, G]{E: &v}
	case 5:
		v := *(u.ptr.(*F))
		return Enum7[A, B, C, D, E, F, G]{F: &v}
	default:
		v := *(u.ptr.(*G))
		return Enum7[A, B, C, D, E, F, G]{G: &v}
	}
}

func ToEnum8[A, B, C, D, E, F, G, H any](u Union[Of8[A, B, C, D, E, F, G, H]]) Enum8[A, B, C, D, E, F, G, H] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of8[A, B, C, D, E, F, G, H]](), u.rt) {
	case 0:
		v := *(u.ptr.(*A))
		return Enum8[A, B, C, D, E, F, G, H]{A: &v}
	case 1:
		v := *(u.ptr.(*B))
		return Enum8[A, B, C, D, E, F, G, H]{B: &v}
	case 2:
		v := *(u.ptr.(*C))
		return Enum8[A, B, C, D, E, F, G, H]{C: &v}
	case 3:
		v := *(u.ptr.(*D))
		return Enum8[A, B, C, D, E, F, G, H]{D: &v}
	case 4:
		v := *(u.ptr.(*E))
		return Enum8[A, B, C, D, E, F, G, H]{E: &v}
	case 5:
		v := *(u.ptr.(*F))
		return Enum8[A, B, C, D, E, F, G, H]{F: &v}
	case 6:
		v := *(u.ptr.(*G))
		return Enum8[A, B, C, D, E, F, G, H]{G: &v}
	default:
		v := *(u.ptr.(*H))
		return Enum8[A, B, C, D, E, F, G, H]{H: &v}
	}
}

func ToEnum9[A, B, C, D, E, F, G, H, I any](u Union[Of9[A, B, C, D, E, F, G, H, I]]) Enum9[A, B, C, D, E, F, G, H, I] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of9[A, B, C, D, E, F, G, H, I]](), u.rt) {
	case 0:
		v := *(u.ptr.(*A))
		return Enum9[A, B, C, D, E, F, G, H, I]{A: &v}
	case 1:
		v := *(u.ptr.(*B))
		return Enum9[A, B, C, D, E, F, G, H, I]{B: &v}
	case 2:
		v := *(u.ptr.(*C))
		return Enum9[A, B, C, D, E, F, G, H, I]{C: &v}
	case 3:
		v := *(u.ptr.(*D))
		return Enum9[A, B, C, D, E, F, G, H, I]{D: &v}
	case 4:
		v := *(u.ptr.(*E))
		return Enum9[A, B, C, D, E, F, G, H, I]{E: &v}
	case 5:
		v := *(u.ptr.(*F))
		return Enum9[A, B, C, D, E, F, G, H, I]{F: &v}
	case 6:
		v := *(u.ptr.(*G))
		return Enum9[A, B, C, D, E, F, G, H, I]{G: &v}
	case 7:
		v := *(u.ptr.(*H))
		return Enum9[A, B, C, D, E, F, G, H, I]{H: &v}
	default:
		v := *(u.ptr.(*I))
		return Enum9[A, B, C, D, E, F, G, H, I]{I: &v}
	}
}

// -----------------------------------------------------------------------------
// Borrowed conversions
// -----------------------------------------------------------------------------

// AsEnum1 borrows a single-candidate union as its closed mirror. The variant
// pointer aliases the stored payload.
func AsEnum1[A any](u Union[Of1[A]]) Enum1[A] {
	u.mustValid()
	mustFoldIndex(setTypes[Of1[A]](), u.rt)
	return Enum1[A]{A: u.ptr.(*A)}
}

// AsEnum2 borrows a two-candidate union as its closed mirror. Mutation
// through the variant pointer is visible to the union and all of its views.
func AsEnum2[A, B any](u Union[Of2[A, B]]) Enum2[A, B] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of2[A, B]](), u.rt) {
	case 0:
		return Enum2[A, B]{A: u.ptr.(*A)}
	default:
		return Enum2[A, B]{B: u.ptr.(*B)}
	}
}

func AsEnum3[A, B, C any](u Union[Of3[A, B, C]]) Enum3[A, B, C] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of3[A, B, C]](), u.rt) {
	case 0:
		return Enum3[A, B, C]{A: u.ptr.(*A)}
	case 1:
		return Enum3[A, B, C]{B: u.ptr.(*B)}
	default:
		return Enum3[A, B, C]{C: u.ptr.(*C)}
	}
}

func AsEnum4[A, B, C, D any](u Union[Of4[A, B, C, D]]) Enum4[A, B, C, D] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of4[A, B, C, D]](), u.rt) {
	case 0:
		return Enum4[A, B, C, D]{A: u.ptr.(*A)}
	case 1:
		return Enum4[A, B, C, D]{B: u.ptr.(*B)}
	case 2:
		return Enum4[A, B, C, D]{C: u.ptr.(*C)}
	default:
		return Enum4[A, B, C, D]{D: u.ptr.(*D)}
	}
}

func AsEnum5[A, B, C, D, E any](u Union[Of5[A, B, C, D, E]]) Enum5[A, B, C, D, E] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of5[A, B, C, D, E]](), u.rt) {
	case 0:
		return Enum5[A, B, C, D, E]{A: u.ptr.(*A)}
	case 1:
		return Enum5[A, B, C, D, E]{B: u.ptr.(*B)}
	case 2:
		return Enum5[A, B, C, D, E]{C: u.ptr.(*C)}
	case 3:
		return Enum5[A, B, C, D, E]{D: u.ptr.(*D)}
	default:
		return Enum5[A, B, C, D, E]{E: u.ptr.(*E)}
	}
}

func AsEnum6[A, B, C, D, E, F any](u Union[Of6[A, B, C, D, E, F]]) Enum6[A, B, C, D, E, F] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of6[A, B, C, D, E, F]](), u.rt) {
	case 0:
		return Enum6[A, B, C, D, E, F]{A: u.ptr.(*A)}
	case 1:
		return Enum6[A, B, C, D, E, F]{B: u.ptr.(*B)}
	case 2:
		return Enum6[A, B, C, D, E, F]{C: u.ptr.(*C)}
	case 3:
		return Enum6[A, B, C, D, E, F]{D: u.ptr.(*D)}
	case 4:
		return Enum6[A, B, C, D, E, F]{E: u.ptr.(*E)}
	default:
		return Enum6[A, B, C, D, E, F]{F: u.ptr.(*F)}
	}
}

func AsEnum7[A, B, C, D, E, F, G any](u Union[Of7[A, B, C, D, E, F, G]]) Enum7[A, B, C, D, E, F, G] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of7[A, B, C, D, E, F, G]](), u.rt) {
	case 0:
		return Enum7[A, B, C, D, E, F, G]{A: u.ptr.(*A)}
	case 1:
		return Enum7[A, B, C, D, E, F, G]{B: u.ptr.(*B)}
	case 2:
		return Enum7[A, B, C, D, E, F, G]{C: u.ptr.(*C)}
	case 3:
		return Enum7[A, B, C, D, E, F, G]{D: u.ptr.(*D)}
	case 4:
		return Enum7[A, B, C, D, E, F, G]{E: u.ptr.(*E)}
	case 5:
		return Enum7[A, B, C, D, E, F, G]{F: u.ptr.(*F)}
	default:
		return Enum7[A, B, C, D, E, F, G]{G: u.ptr.(*G)}
	}
}

func AsEnum8[A, B, C, D, E, F, G, H any](u Union[Of8[A, B, C, D, E, F, G, H]]) Enum8[A, B, C, D, E, F, G, H] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of8[A, B, C, D, E, F, G, H]](), u.rt) {
	case 0:
		return Enum8[A, B, C, D, E, F, G, H]{A: u.ptr.(*A)}
	case 1:
		return Enum8[A, B, C, D, E, F, G, H]{B: u.ptr.(*B)}
	case 2:
		return Enum8[A, B, C, D, E, F, G, H]{C: u.ptr.(*C)}
	case 3:
		return Enum8[A, B, C, D, E, F, G, H]{D: u.ptr.(*D)}
	case 4:
		return Enum8[A, B, C, D, E, F, G, H]{E: u.ptr.(*E)}
	case 5:
		return Enum8[A, B, C, D, E, F, G, H]{F: u.ptr.(*F)}
	case 6:
		return Enum8[A, B, C, D, E, F, G, H]{G: u.ptr.(*G)}
	default:
		return Enum8[A, B, C, D, E, F, G, H]{H: u.ptr.(*H)}
	}
}

func AsEnum9[A, B, C, D, E, F, G, H, I any](u Union[Of9[A, B, C, D, E, F, G, H, I]]) Enum9[A, B, C, D, E, F, G, H, I] {
	u.mustValid()
	switch mustFoldIndex(setTypes[Of9[A, B, C, D, E, F, G, H, I]](), u.rt) {
	case 0:
		return Enum9[A, B, C, D, E, F, G, H, I]{A: u.ptr.(*A)}
	case 1:
		return Enum9[A, B, C, D, E, F, G, H, I]{B: u.ptr.(*B)}
	case 2:
		return Enum9[A, B, C, D, E, F, G, H, I]{C: u.ptr.(*C)}
	case 3:
		return Enum9[A, B, C, D, E, F, G, H, I]{D: u.ptr.(*D)}
	case 4:
		return Enum9[A, B, C, D, E, F, G, H, I]{E: u.ptr.(*E)}
	case 5:
		return Enum9[A, B, C, D, E, F, G, H, I]{F: u.ptr.(*F)}
	case 6:
		return Enum9[A, B, C, D, E, F, G, H, I]{G: u.ptr.(*G)}
	case 7:
		return Enum9[A, B, C, D, E, F, G, H, I]{H: u.ptr.(*H)}
	default:
		return Enum9[A, B, C, D, E, F, G, H, I]{I: u.ptr.(*I)}
	}
}
