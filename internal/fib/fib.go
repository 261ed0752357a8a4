// internal/fib/fib.go
package fib

// Integer is the set of fixed-width signed types a term can be computed in.
// Arithmetic wraps silently on overflow.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Of returns the n-th Fibonacci number (Of(0)=0, Of(1)=1) computed
// iteratively in T. Negative n returns 0.
func Of[T Integer](n int) T {
	var previous, current T = 0, 1
	for i := 0; i < n; i++ {
		temp := previous
		previous = current
		current = temp + current
	}
	return previous
}

// Fib computes in 32-bit integers, so Fib(47) and beyond wrap.
func Fib(n int) int32 { return Of[int32](n) }
