package rrbvector_test

import (
	"testing"

	rrbvector "github.com/lthibault/rrbvector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransientPushThenFreeze(t *testing.T) {
	t.Parallel()

	const n = 13000
	tr := rrbvector.Empty[int]().AsTransient()
	for i := 0; i < n; i++ {
		tr.Push(i)
	}
	require.Equal(t, n, tr.Len())

	v := tr.Freeze()
	require.Equal(t, n, v.Len())
	require.NoError(t, rrbvector.Validate(v))
	for i := 0; i < n; i += 251 {
		got, err := v.Nth(i)
		require.NoError(t, err)
		require.Equal(t, i, got)
	}
}

func TestTransientMisuseAfterFreeze(t *testing.T) {
	t.Parallel()

	tr := rrbvector.Empty[int]().AsTransient()
	tr.Push(1)
	tr.Freeze()

	assert.PanicsWithValue(t, rrbvector.ErrMisusedTransient, func() { tr.Push(2) })
	assert.PanicsWithValue(t, rrbvector.ErrMisusedTransient, func() { tr.Pop() })
	assert.PanicsWithValue(t, rrbvector.ErrMisusedTransient, func() { tr.Update(0, 9) })
	assert.Panics(t, func() { tr.Len() })
	assert.Panics(t, func() { tr.Freeze() })
}

func TestTransientDoesNotAffectSourceVector(t *testing.T) {
	t.Parallel()

	v := sequence(5000)
	tr := v.AsTransient()
	tr.Push(99999)
	tr.Update(0, -1)

	assert.Equal(t, 5000, v.Len())
	first, _ := v.Nth(0)
	assert.Equal(t, 0, first)

	w := tr.Freeze()
	require.Equal(t, 5001, w.Len())
	first, _ = w.Nth(0)
	assert.Equal(t, -1, first)
}

func TestTransientUpdateAndPop(t *testing.T) {
	t.Parallel()

	tr := sequence(2000).AsTransient()
	tr.Update(1999, -1)
	tr.Pop()

	require.Equal(t, 1999, tr.Len())
	last, err := tr.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1998, last)

	v := tr.Freeze()
	require.NoError(t, rrbvector.Validate(v))
}
