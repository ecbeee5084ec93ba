// benchmark_test.go — allocation behavior of the construction and transform paths.
package xgxunion

import (
	"testing"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New[Of3[parseErr, int, bool]](i)
	}
}

func BenchmarkNarrowMiss(b *testing.B) {
	base := New[Of3[parseErr, int, bool]](parseErr{msg: "x"})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = Narrow[int, Of2[parseErr, bool]](base)
	}
}

func BenchmarkNarrowHit(b *testing.B) {
	base := New[Of3[parseErr, int, bool]](42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = Narrow[int, Of2[parseErr, bool]](base)
	}
}

func BenchmarkWiden(b *testing.B) {
	base := New[Of2[parseErr, int]](1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Widen[Of4[bool, parseErr, string, int]](base)
	}
}

func BenchmarkCtxAppend(b *testing.B) {
	base := New[Of1[parseErr]](parseErr{msg: "x"})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = base.Ctx("step")
	}
}

func BenchmarkToEnum(b *testing.B) {
	base := New[Of2[uint32, string]](uint32(5))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToEnum2(base)
	}
}

func BenchmarkErrorText(b *testing.B) {
	base := New[Of2[parseErr, int]](parseErr{msg: "x"})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = base.Error()
	}
}
