// typeset_test.go — verification of the ordered set algebra and marker lowering.
package xgxunion

import (
	"reflect"
	"testing"
)

func tFor[T any]() reflect.Type { return reflect.TypeFor[T]() }

func TestSetTypes_DeclarationOrder(t *testing.T) {
	t.Parallel()

	got := setTypes[Of3[string, int, bool]]()
	want := []reflect.Type{tFor[string](), tFor[int](), tFor[bool]()}
	if !sameTypes(got, want) {
		t.Fatalf("setTypes order: want=%v got=%v", want, got)
	}
}

func TestSetTypes_MemoizedPerList(t *testing.T) {
	t.Parallel()

	a := setTypes[Of2[uint8, uint16]]()
	b := setTypes[Of2[uint8, uint16]]()
	if len(a) == 0 || len(b) == 0 {
		t.Fatalf("expected non-empty tables")
	}
	// Same backing array: the table is built once per distinct marker.
	if &a[0] != &b[0] {
		t.Fatalf("expected memoized table to be shared across calls")
	}
}

func TestSetTypes_EmptyList(t *testing.T) {
	t.Parallel()

	if got := setTypes[Of0](); len(got) != 0 {
		t.Fatalf("Of0 should lower to an empty list; got %v", got)
	}
}

func TestContainsType(t *testing.T) {
	t.Parallel()

	list := setTypes[Of3[string, int, bool]]()
	if !containsType(list, tFor[int]()) {
		t.Fatalf("int should be a member of %v", list)
	}
	if containsType(list, tFor[float64]()) {
		t.Fatalf("float64 should not be a member of %v", list)
	}
}

func TestNarrowRemainder_OrderPreserved(t *testing.T) {
	t.Parallel()

	list := setTypes[Of4[string, int, bool, float64]]()

	t.Run("middle slot", func(t *testing.T) {
		rem, ok := narrowRemainder(list, tFor[int]())
		if !ok {
			t.Fatalf("int should narrow out of %v", list)
		}
		want := []reflect.Type{tFor[string](), tFor[bool](), tFor[float64]()}
		if !sameTypes(rem, want) {
			t.Fatalf("remainder: want=%v got=%v", want, rem)
		}
	})

	t.Run("first slot", func(t *testing.T) {
		rem, _ := narrowRemainder(list, tFor[string]())
		want := []reflect.Type{tFor[int](), tFor[bool](), tFor[float64]()}
		if !sameTypes(rem, want) {
			t.Fatalf("remainder: want=%v got=%v", want, rem)
		}
	})

	t.Run("absent type fails", func(t *testing.T) {
		if rem, ok := narrowRemainder(list, tFor[uint8]()); ok || rem != nil {
			t.Fatalf("narrowing an absent type should fail; got rem=%v ok=%v", rem, ok)
		}
	})

	t.Run("input untouched", func(t *testing.T) {
		_, _ = narrowRemainder(list, tFor[bool]())
		if !sameTypes(list, setTypes[Of4[string, int, bool, float64]]()) {
			t.Fatalf("narrowRemainder must not mutate its input")
		}
	})
}

func TestSupersetRemainder(t *testing.T) {
	t.Parallel()

	t.Run("same set same order", func(t *testing.T) {
		rem, ok := supersetRemainder(setTypes[Of2[uint32, string]](), setTypes[Of2[uint32, string]]())
		if !ok || len(rem) != 0 {
			t.Fatalf("identical lists: want empty remainder, got rem=%v ok=%v", rem, ok)
		}
	})

	t.Run("same set reordered", func(t *testing.T) {
		rem, ok := supersetRemainder(setTypes[Of2[uint32, string]](), setTypes[Of2[string, uint32]]())
		if !ok || len(rem) != 0 {
			t.Fatalf("reordered lists: want empty remainder, got rem=%v ok=%v", rem, ok)
		}
	})

	t.Run("strict superset keeps order", func(t *testing.T) {
		big := setTypes[Of5[uint8, uint16, uint32, uint64, string]]()
		small := setTypes[Of2[uint8, string]]()
		rem, ok := supersetRemainder(big, small)
		if !ok {
			t.Fatalf("expected superset match")
		}
		want := []reflect.Type{tFor[uint16](), tFor[uint32](), tFor[uint64]()}
		if !sameTypes(rem, want) {
			t.Fatalf("remainder: want=%v got=%v", want, rem)
		}
	})

	t.Run("each match consumes a distinct slot", func(t *testing.T) {
		big := setTypes[Of3[string, int, uint32]]()
		small := setTypes[Of2[string, int]]()
		rem, ok := supersetRemainder(big, small)
		if !ok {
			t.Fatalf("expected superset match")
		}
		if !sameTypes(rem, []reflect.Type{tFor[uint32]()}) {
			t.Fatalf("remainder: want=[uint32] got=%v", rem)
		}
	})

	t.Run("missing member fails", func(t *testing.T) {
		big := setTypes[Of2[string, int]]()
		small := setTypes[Of2[string, bool]]()
		if _, ok := supersetRemainder(big, small); ok {
			t.Fatalf("bool is not in the big list; superset must fail")
		}
	})

	t.Run("every list is a superset of the empty list", func(t *testing.T) {
		big := setTypes[Of2[string, int]]()
		rem, ok := supersetRemainder(big, nil)
		if !ok || !sameTypes(rem, big) {
			t.Fatalf("vacuous match: want rem=%v, got rem=%v ok=%v", big, rem, ok)
		}
	})

	t.Run("empty list only unifies with itself", func(t *testing.T) {
		if _, ok := supersetRemainder(nil, setTypes[Of1[string]]()); ok {
			t.Fatalf("empty big list cannot cover a non-empty small list")
		}
		rem, ok := supersetRemainder(nil, nil)
		if !ok || len(rem) != 0 {
			t.Fatalf("empty vs empty should unify; got rem=%v ok=%v", rem, ok)
		}
	})
}

func TestSameTypes(t *testing.T) {
	t.Parallel()

	a := setTypes[Of2[string, int]]()
	if !sameTypes(a, []reflect.Type{tFor[string](), tFor[int]()}) {
		t.Fatalf("identical lists should compare equal")
	}
	if sameTypes(a, []reflect.Type{tFor[int](), tFor[string]()}) {
		t.Fatalf("sameTypes must be order-sensitive")
	}
	if sameTypes(a, []reflect.Type{tFor[string]()}) {
		t.Fatalf("length mismatch should compare unequal")
	}
}
