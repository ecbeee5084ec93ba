// format_test.go — verification of concise and verbose rendering.
package xgxunion

import (
	"fmt"
	"strings"
	"testing"
)

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}

func TestFormat_ConciseOmitsDiagnostics(t *testing.T) {
	t.Parallel()

	u := New[Of2[parseErr, int]](parseErr{msg: "bad header"}).Ctx("while loading")

	for _, verb := range []string{"%v", "%s"} {
		got := fmt.Sprintf(verb, u)
		if got != "parse: bad header" {
			t.Fatalf("%s: want concise payload text, got %q", verb, got)
		}
		if strings.Contains(got, "Context:") || strings.Contains(got, "Backtrace:") {
			t.Fatalf("%s must not carry diagnostic blocks: %q", verb, got)
		}
	}

	if got := u.Error(); got != "parse: bad header" {
		t.Fatalf("Error(): got %q", got)
	}
}

func TestFormat_VerboseBlocks(t *testing.T) {
	t.Parallel()

	u := New[Of2[parseErr, int]](parseErr{msg: "boom"}).
		Ctx("From func2").
		Ctx("From func3")

	got := fmt.Sprintf("%+v", u)

	wantFrags := []string{
		"parse: boom",
		"\n\nContext:",
		"\n    - From func2",
		"\n    - From func3",
		"\n\nBacktrace:",
	}
	for _, w := range wantFrags {
		if !strings.Contains(got, w) {
			t.Fatalf("%%+v missing %q in:\n%s", w, got)
		}
	}

	// Push order: oldest message first.
	if !containsInOrder(got, "Context:", "From func2", "From func3", "Backtrace:") {
		t.Fatalf("context order not preserved in verbose output:\n%s", got)
	}
}

func TestFormat_EmptyBlocksOmitted(t *testing.T) {
	t.Parallel()

	u := New[Of1[int]](7)
	got := fmt.Sprintf("%+v", u)
	if strings.Contains(got, "Context:") {
		t.Fatalf("empty trace must omit the Context block:\n%s", got)
	}
	// Backtrace was captured, so its block is present.
	if !strings.Contains(got, "Backtrace:") {
		t.Fatalf("captured backtrace should render in verbose output:\n%s", got)
	}
}

func TestFormat_NilStackOmitsBacktrace(t *testing.T) {
	t.Parallel()

	u := New[Of1[int]](7)
	u.stk = nil // capture-disabled environment
	got := fmt.Sprintf("%+v", u)
	if strings.Contains(got, "Backtrace:") {
		t.Fatalf("absent backtrace must omit its block:\n%s", got)
	}
	if !strings.Contains(got, "7") {
		t.Fatalf("payload must still render:\n%s", got)
	}
}

func TestFormat_Quoted(t *testing.T) {
	t.Parallel()

	u := New[Of1[parseErr]](parseErr{msg: "q"})
	if got := fmt.Sprintf("%q", u); got != `"parse: q"` {
		t.Fatalf("%%q: got %s", got)
	}
}

func TestFormat_ZeroUnionRendersSentinel(t *testing.T) {
	t.Parallel()

	var u Union[Of1[int]]
	for _, verb := range []string{"%v", "%s", "%+v"} {
		if got := fmt.Sprintf(verb, u); !strings.Contains(got, "invalid zero Union") {
			t.Fatalf("%s on zero union: got %q", verb, got)
		}
	}
}

func TestFormat_NonErrorCandidates(t *testing.T) {
	t.Parallel()

	t.Run("stringer", func(t *testing.T) {
		u := New[Of2[stringerVal, int]](stringerVal{n: 3})
		if got := fmt.Sprintf("%v", u); got != "stringer!" {
			t.Fatalf("stringer payload: got %q", got)
		}
	})

	t.Run("plain", func(t *testing.T) {
		u := New[Of2[stringerVal, int]](41)
		if got := fmt.Sprintf("%v", u); got != "41" {
			t.Fatalf("plain payload: got %q", got)
		}
	})
}
