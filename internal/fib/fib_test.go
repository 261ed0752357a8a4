package fib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFibKnownValues(t *testing.T) {
	cases := []struct {
		n    int
		want int32
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {10, 55}, {14, 377}, {46, 1836311903},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, Fib(c.n), "Fib(%d)", c.n)
	}
}

func TestFibNegativeIsZero(t *testing.T) {
	require.Equal(t, int32(0), Fib(-1))
	require.Equal(t, int32(0), Fib(-100))
}

func TestRecurrence(t *testing.T) {
	for n := 2; n <= 46; n++ {
		require.Equalf(t, Fib(n-1)+Fib(n-2), Fib(n), "n=%d", n)
	}
	for n := 2; n <= 92; n++ {
		require.Equalf(t, Of[int64](n-1)+Of[int64](n-2), Of[int64](n), "n=%d", n)
	}
}

func TestMonotonicUntilWrap(t *testing.T) {
	for n := 1; n <= 46; n++ {
		require.GreaterOrEqualf(t, Fib(n), Fib(n-1), "n=%d", n)
	}
}

func TestWraparound(t *testing.T) {
	// 2971215073 - 2^32
	assert.Equal(t, int32(-1323752223), Fib(47))
	assert.Equal(t, int64(7540113804746346429), Of[int64](92))
	assert.Less(t, Of[int64](93), int64(0))
	assert.Equal(t, int8(-112), Of[int8](12)) // 144 - 256
}

func TestFirstWrapMatchesArithmetic(t *testing.T) {
	for _, bits := range []int{8, 16, 32} {
		f, err := ForWidth(bits)
		require.NoError(t, err)
		n, ok := FirstWrap(bits)
		require.True(t, ok)
		assert.Equalf(t, Of[int64](n-1), f(n-1), "width %d below wrap", bits)
		assert.NotEqualf(t, Of[int64](n), f(n), "width %d at wrap", bits)
	}
	n, ok := FirstWrap(64)
	require.True(t, ok)
	assert.Greater(t, Of[int64](n-1), int64(0))
	assert.Less(t, Of[int64](n), int64(0))
}

func TestForWidthRejectsUnknown(t *testing.T) {
	_, err := ForWidth(12)
	require.Error(t, err)
	_, ok := FirstWrap(12)
	require.False(t, ok)
}

func collect(f Func, from, to int) []Term {
	var out []Term
	_ = f.Each(from, to, func(term Term) error {
		out = append(out, term)
		return nil
	})
	return out
}

func TestEachRange(t *testing.T) {
	f, err := ForWidth(32)
	require.NoError(t, err)
	got := collect(f, 1, 14)
	want := []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377}
	require.Len(t, got, len(want))
	for i, term := range got {
		assert.Equal(t, i+1, term.Index)
		assert.Equal(t, want[i], term.Value)
	}
	assert.Empty(t, collect(f, 5, 4))

	f64, err := ForWidth(64)
	require.NoError(t, err)
	assert.Equal(t, []Term{{Index: 0, Value: 0}}, collect(f64, 0, 0))
}

func TestEachStopsOnError(t *testing.T) {
	f, err := ForWidth(64)
	require.NoError(t, err)
	stop := errors.New("stop")
	var seen []int
	err = f.Each(0, 10, func(term Term) error {
		seen = append(seen, term.Index)
		if term.Index == 3 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func BenchmarkFib(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Of[int64](92)
	}
}
