// Copyright (c) 2025 Visvasity LLC

package staticvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVectorIsEmpty(t *testing.T) {
	v := New[int32](5)
	assert.Equal(t, 0, v.Size())
	assert.Equal(t, 5, v.Capacity())
	assert.True(t, v.Empty())
}

func TestNewPanicsOnBadContract(t *testing.T) {
	assert.Panics(t, func() { New[int32](0) })
	assert.Panics(t, func() { New[string](5) })
	type withPointer struct{ P *int32 }
	assert.Panics(t, func() { New[withPointer](5) })
}

func TestFromSlice(t *testing.T) {
	v, ok := FromSlice(5, []int32{4, 9, 77, 32, -5}).Get()
	require.True(t, ok)
	require.Equal(t, 5, v.Size())
	for i, want := range []int32{4, 9, 77, 32, -5} {
		p, ok := v.ElementAt(i).Get()
		require.True(t, ok)
		assert.Equal(t, want, *p)
	}
	// One past the live range is empty.
	assert.True(t, v.ElementAt(5).IsNone())
}

func TestFromSliceIsAllOrNothing(t *testing.T) {
	res := FromSlice(3, []int32{1, 2, 3, 4})
	assert.True(t, res.IsNone())
}

func TestFromValue(t *testing.T) {
	v, ok := FromValue(4, 3, int32(7)).Get()
	require.True(t, ok)
	assert.Equal(t, []int32{7, 7, 7}, v.Unchecked().Slice())

	assert.True(t, FromValue(4, 5, int32(7)).IsNone())

	empty, ok := FromValue(4, 0, int32(7)).Get()
	require.True(t, ok)
	assert.True(t, empty.Empty())
}

func TestTryPushBackUntilFull(t *testing.T) {
	v := New[int32](2)
	assert.True(t, v.TryPushBack(1))
	assert.True(t, v.TryPushBack(2))
	assert.False(t, v.TryPushBack(3))
	assert.Equal(t, []int32{1, 2}, v.Unchecked().Slice())
}

func TestFailedPushLeavesBytesIdentical(t *testing.T) {
	v, ok := FromSlice(3, []int32{1, 2, 3}).Get()
	require.True(t, ok)

	before := make([]byte, v.EncodedSize())
	require.NoError(t, v.EncodeTo(before))

	require.False(t, v.TryPushBack(4))

	after := make([]byte, v.EncodedSize())
	require.NoError(t, v.EncodeTo(after))
	assert.Equal(t, before, after)
}

func TestTryPopBackIsIdempotentWhenEmpty(t *testing.T) {
	v := New[int32](3)
	require.True(t, v.TryPushBack(1))
	require.True(t, v.TryPopBack())
	for i := 0; i < 5; i++ {
		assert.False(t, v.TryPopBack())
		assert.Equal(t, 0, v.Size())
	}
}

func TestEraseThenInsertScenario(t *testing.T) {
	v, ok := FromSlice(10, []int32{1, 2, 3, 4}).Get()
	require.True(t, ok)

	require.True(t, v.TryEraseAt(1))
	assert.Equal(t, []int32{1, 3, 4}, v.Unchecked().Slice())

	require.True(t, v.TryInsertAt(1, 99))
	assert.Equal(t, []int32{1, 99, 3, 4}, v.Unchecked().Slice())
}

func TestTryInsertAtBounds(t *testing.T) {
	v := New[int32](3)
	assert.False(t, v.TryInsertAt(1, 5), "index past the live range")
	assert.True(t, v.TryInsertAt(0, 5))
	assert.True(t, v.TryInsertAt(1, 6))
	assert.True(t, v.TryInsertAt(2, 7))
	assert.False(t, v.TryInsertAt(0, 8), "vector is full")
	assert.Equal(t, []int32{5, 6, 7}, v.Unchecked().Slice())
}

func TestTryInsertNAt(t *testing.T) {
	v, ok := FromSlice(6, []int32{1, 2}).Get()
	require.True(t, ok)

	assert.False(t, v.TryInsertNAt(1, 5, int32(0)), "would exceed capacity")
	assert.Equal(t, []int32{1, 2}, v.Unchecked().Slice())

	require.True(t, v.TryInsertNAt(1, 3, int32(9)))
	assert.Equal(t, []int32{1, 9, 9, 9, 2}, v.Unchecked().Slice())

	assert.True(t, v.TryInsertNAt(0, 0, int32(4)), "zero count with valid index")
	assert.Equal(t, 5, v.Size())
}

func TestTryEraseRange(t *testing.T) {
	v, ok := FromSlice(5, []int32{1, 2, 3, 4, 5}).Get()
	require.True(t, ok)

	assert.False(t, v.TryEraseRange(3, 2), "begin past end")
	assert.False(t, v.TryEraseRange(0, 6), "end past the live range")

	require.True(t, v.TryEraseRange(1, 4))
	assert.Equal(t, []int32{1, 5}, v.Unchecked().Slice())

	assert.True(t, v.TryEraseRange(2, 2), "empty range at the live boundary")
	assert.Equal(t, 2, v.Size())
}

func TestClear(t *testing.T) {
	v, ok := FromSlice(4, []int32{1, 2, 3}).Get()
	require.True(t, ok)
	v.Clear()
	assert.True(t, v.Empty())
	v.Clear()
	assert.True(t, v.Empty())
}

func TestFrontAndBackElement(t *testing.T) {
	v := New[int32](3)
	assert.True(t, v.FrontElement().IsNone())
	assert.True(t, v.BackElement().IsNone())

	require.True(t, v.TryPushBack(10))
	require.True(t, v.TryPushBack(20))

	front, ok := v.FrontElement().Get()
	require.True(t, ok)
	assert.Equal(t, int32(10), *front)

	back, ok := v.BackElement().Get()
	require.True(t, ok)
	assert.Equal(t, int32(20), *back)

	// The returned pointers are writable views into the vector.
	*front = 11
	p, ok := v.ElementAt(0).Get()
	require.True(t, ok)
	assert.Equal(t, int32(11), *p)
}

func TestUncheckedAll(t *testing.T) {
	v, ok := FromSlice(4, []int32{5, 6, 7}).Get()
	require.True(t, ok)

	var got []int32
	for i, x := range v.Unchecked().All() {
		assert.Equal(t, len(got), i)
		got = append(got, x)
	}
	assert.Equal(t, []int32{5, 6, 7}, got)
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a, ok := FromSlice(5, []int32{1, 2, 3}).Get()
	require.True(t, ok)
	b, ok := FromSlice(10, []int32{1, 2, 3}).Get()
	require.True(t, ok)
	c, ok := FromSlice(10, []int32{1, 2, 4}).Get()
	require.True(t, ok)

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))

	require.True(t, b.TryPushBack(4))
	assert.False(t, Equal(a, b), "different sizes")
}

func TestCloneIsIndependent(t *testing.T) {
	v, ok := FromSlice(4, []int32{1, 2}).Get()
	require.True(t, ok)
	c := v.Clone()
	require.True(t, c.TryPushBack(3))
	assert.Equal(t, 2, v.Size())
	assert.Equal(t, 3, c.Size())
}

func TestWiden(t *testing.T) {
	v, ok := FromSlice(2, []int32{1, 2}).Get()
	require.True(t, ok)
	w := Widen(v, 5)
	assert.Equal(t, 5, w.Capacity())
	assert.True(t, Equal(v, w))
	assert.Panics(t, func() { Widen(w, 2) })
}

func TestSizeStaysWithinCapacityUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	v := New[int32](8)
	for i := 0; i < 10000; i++ {
		switch rng.Intn(6) {
		case 0:
			v.TryPushBack(rng.Int31())
		case 1:
			v.TryPopBack()
		case 2:
			v.TryInsertAt(rng.Intn(10), rng.Int31())
		case 3:
			v.TryEraseAt(rng.Intn(10))
		case 4:
			begin := rng.Intn(10)
			v.TryEraseRange(begin, begin+rng.Intn(4))
		case 5:
			v.TryInsertNAt(rng.Intn(10), rng.Intn(4), rng.Int31())
		}
		require.GreaterOrEqual(t, v.Size(), 0)
		require.LessOrEqual(t, v.Size(), v.Capacity())
		require.Len(t, v.Unchecked().Slice(), v.Size())
	}
}
