package sortedbag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/iterator"
	"github.com/stripe/sortedcontainers/pkg/sortedbag"
)

func TestArrayBag_InsertAndOccurrences(t *testing.T) {
	for _, tt := range []struct {
		name                 string
		inserts              []int
		expectedSlice        []int
		expectedSize         int
		expectedDistinctSize int
	}{
		{
			name:          "empty bag",
			inserts:       nil,
			expectedSlice: []int{},
		},
		{
			name:                 "duplicates fold into counts",
			inserts:              []int{4, 2, 4, 4, 1},
			expectedSlice:        []int{1, 2, 4, 4, 4},
			expectedSize:         5,
			expectedDistinctSize: 3,
		},
		{
			name:                 "all distinct",
			inserts:              []int{3, 1, 2},
			expectedSlice:        []int{1, 2, 3},
			expectedSize:         3,
			expectedDistinctSize: 3,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			bag := sortedbag.NewArrayNatural(tt.inserts...)
			assert.Equal(t, tt.expectedSlice, bag.Slice())
			assert.Equal(t, tt.expectedSize, bag.Size())
			assert.Equal(t, tt.expectedDistinctSize, bag.DistinctSize())
		})
	}
}

func TestArrayBag_DeleteRoundTrip(t *testing.T) {
	bag := sortedbag.NewArrayNatural("a", "c")
	before := bag.Slice()

	const n = 3
	for i := 0; i < n; i++ {
		bag.Insert("b")
	}
	assert.Equal(t, n, bag.Occurrences("b"))

	for i := 0; i < n; i++ {
		bag.Delete("b")
	}
	assert.Equal(t, 0, bag.Occurrences("b"))
	assert.Equal(t, before, bag.Slice())
}

func TestArrayBag_DeleteAbsentIsNoOp(t *testing.T) {
	bag := sortedbag.NewArrayNatural(1, 1)
	bag.Delete(2)
	assert.Equal(t, []int{1, 1}, bag.Slice())
	assert.Equal(t, 2, bag.Size())
}

func TestArrayBag_TotalSizeMatchesSummedOccurrences(t *testing.T) {
	bag := sortedbag.NewArrayNatural(2, 2, 2, 4, 7, 7)

	summed := 0
	for _, element := range []int{2, 4, 7} {
		summed += bag.Occurrences(element)
	}
	assert.Equal(t, summed, bag.Size())
}

func TestArrayBag_MinimumMaximum(t *testing.T) {
	bag := sortedbag.NewArrayNatural(5, 1, 5, 3)

	minimum, err := bag.Minimum()
	require.NoError(t, err)
	assert.Equal(t, 1, minimum)

	maximum, err := bag.Maximum()
	require.NoError(t, err)
	assert.Equal(t, 5, maximum)
}

func TestArrayBag_MinimumMaximumOnEmptyBag(t *testing.T) {
	bag := sortedbag.NewArrayNatural[int]()

	_, err := bag.Minimum()
	assert.ErrorIs(t, err, sortedbag.ErrEmptyBag)

	_, err = bag.Maximum()
	assert.ErrorIs(t, err, sortedbag.ErrEmptyBag)
}

func TestArrayBag_WithCapacity(t *testing.T) {
	for _, tt := range []struct {
		name        string
		capacity    int
		expectedErr error
	}{
		{name: "positive capacity", capacity: 4},
		{name: "zero capacity", capacity: 0, expectedErr: sortedbag.ErrInvalidCapacity},
		{name: "negative capacity", capacity: -3, expectedErr: sortedbag.ErrInvalidCapacity},
	} {
		t.Run(tt.name, func(t *testing.T) {
			bag, err := sortedbag.ArrayWithCapacity(compare.Natural[int](), tt.capacity)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			bag.Insert(2, 1, 2)
			assert.Equal(t, []int{1, 2, 2}, bag.Slice())
		})
	}
}

func TestArrayBag_Clear(t *testing.T) {
	bag := sortedbag.NewArrayNatural(1, 1, 2)
	bag.Clear()
	assert.True(t, bag.IsEmpty())
	assert.Equal(t, 0, bag.Size())
	assert.Equal(t, 0, bag.DistinctSize())

	bag.Insert(8)
	assert.Equal(t, []int{8}, bag.Slice())
}

func TestArrayBag_Iterator(t *testing.T) {
	bag := sortedbag.NewArrayNatural("b", "a", "b")
	assert.Equal(t, []string{"a", "b", "b"}, iterator.Collect[string](bag.Iterator()))

	empty := sortedbag.NewArrayNatural[string]()
	_, ok := empty.Iterator().Next()
	assert.False(t, ok)
}

func TestCopyArray(t *testing.T) {
	original := sortedbag.NewLinkedNatural(3, 1, 1, 2)
	copied := sortedbag.CopyArray[int](original)

	require.Same(t, original.Comparator(), copied.Comparator())
	assert.Equal(t, original.Slice(), copied.Slice())
	assert.Equal(t, original.DistinctSize(), copied.DistinctSize())

	copied.Delete(1)
	assert.Equal(t, 2, original.Occurrences(1))
	assert.Equal(t, 1, copied.Occurrences(1))
}
