package keypath

import (
	"testing"
)

func BenchmarkNew(b *testing.B) {
	subs := [][]byte{[]byte("2024"), []byte("17"), []byte("status")}
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		if _, err := New("^orders", subs...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAppendConfirm measures the hot path of the cache: re-appending a
// subscript whose bytes already occupy the slot. No allocation may occur.
func BenchmarkAppendConfirm(b *testing.B) {
	p, err := New("^orders", []byte("2024"))
	if err != nil {
		b.Fatal(err)
	}
	if _, err := p.Append([]byte("17")); err != nil {
		b.Fatal(err)
	}
	sub := []byte("17")

	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		if _, err := p.Append(sub); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAppendCopy measures the conflicting-append path: every iteration
// collides with existing slot content and pays for one copy.
func BenchmarkAppendCopy(b *testing.B) {
	p, err := New("^orders", []byte("2024"), []byte("17"))
	if err != nil {
		b.Fatal(err)
	}
	v, err := p.AppendAt(1)
	if err != nil {
		b.Fatal(err)
	}
	sub := []byte("18")

	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		if _, err := v.Append(sub); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToMutable(b *testing.B) {
	p, err := New("^orders", []byte("2024"), []byte("17"))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		_ = p.ToMutable()
	}
}

// BenchmarkSubstituteInPlace measures cursor iteration: same-length
// substitutions must be zero-allocation.
func BenchmarkSubstituteInPlace(b *testing.B) {
	p, err := New("^orders", []byte("2024"), []byte("0000000000"))
	if err != nil {
		b.Fatal(err)
	}
	m := p.ToMutable()
	vals := [][]byte{[]byte("1111111111"), []byte("2222222222")}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		next, err := m.Substitute(vals[i%2])
		if err != nil {
			b.Fatal(err)
		}
		m = next
	}
}
