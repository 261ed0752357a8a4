// internal/fib/terms.go
package fib

import "fmt"

// Term is one computed sequence value. Value holds the fixed-width result
// sign-extended to 64 bits.
type Term struct {
	Index int
	Value int64
}

// Func computes a term at a fixed width.
type Func func(n int) int64

// Supported widths (bits) and the first index whose value no longer fits.
var (
	widths = map[int]Func{
		8:  func(n int) int64 { return int64(Of[int8](n)) },
		16: func(n int) int64 { return int64(Of[int16](n)) },
		32: func(n int) int64 { return int64(Of[int32](n)) },
		64: func(n int) int64 { return Of[int64](n) },
	}
	firstWrap = map[int]int{8: 12, 16: 24, 32: 47, 64: 93}
)

// ForWidth returns the term function for a bit width.
func ForWidth(bits int) (Func, error) {
	f, ok := widths[bits]
	if !ok {
		return nil, fmt.Errorf("unsupported width %d (want 8, 16, 32 or 64)", bits)
	}
	return f, nil
}

// FirstWrap reports the smallest index whose value wraps at the given width.
func FirstWrap(bits int) (int, bool) {
	n, ok := firstWrap[bits]
	return n, ok
}

// Each computes f(i) for i in [from, to], ascending, and hands every term
// to yield. It stops at the first error from yield. Nothing is yielded
// when to < from.
func (f Func) Each(from, to int, yield func(Term) error) error {
	for i := from; i <= to; i++ {
		if err := yield(Term{Index: i, Value: f(i)}); err != nil {
			return err
		}
	}
	return nil
}
