package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAndGet(t *testing.T) {
	a := New[int](0)
	i0 := a.Alloc(10)
	i1 := a.Alloc(20)
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 10, a.Get(i0))
	assert.Equal(t, 20, a.Get(i1))
	assert.Equal(t, 2, a.Len())
}

func TestSetOverwritesInPlace(t *testing.T) {
	a := New[string](4)
	i := a.Alloc("before")
	a.Set(i, "after")
	assert.Equal(t, "after", a.Get(i))
}

func TestMarkAndResetDiscardsSubsequentAllocations(t *testing.T) {
	a := New[int](0)
	a.Alloc(1)
	a.Alloc(2)
	m := a.Mark()
	a.Alloc(3)
	a.Alloc(4)
	require.Equal(t, 4, a.Len())

	a.Reset(m)
	assert.Equal(t, 2, a.Len(), "Reset must truncate back to the mark")
	assert.Equal(t, 1, a.Get(0))
	assert.Equal(t, 2, a.Get(1))
}

func TestResetToLaterMarkIsNoop(t *testing.T) {
	a := New[int](0)
	a.Alloc(1)
	m := a.Mark()
	a.Reset(Mark(int(m) + 5))
	assert.Equal(t, 1, a.Len())
}

func TestNegativeCapacityHintClampsToZero(t *testing.T) {
	a := New[int](-5)
	assert.Equal(t, 0, a.Len())
	a.Alloc(1)
	assert.Equal(t, 1, a.Len())
}

func TestSliceReflectsLiveItems(t *testing.T) {
	a := New[int](0)
	a.Alloc(1)
	a.Alloc(2)
	a.Alloc(3)
	assert.Equal(t, []int{1, 2, 3}, a.Slice())

	m := a.Mark()
	a.Alloc(4)
	a.Reset(m)
	assert.Equal(t, []int{1, 2, 3}, a.Slice())
}
