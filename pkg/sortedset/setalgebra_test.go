package sortedset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/sortedset"
)

func TestSetAlgebra(t *testing.T) {
	for _, tt := range []struct {
		name                 string
		set1                 []int
		set2                 []int
		expectedUnion        []int
		expectedIntersection []int
		expectedDifference   []int
	}{
		{
			name:                 "overlapping sets",
			set1:                 []int{1, 3, 5, 7},
			set2:                 []int{3, 4, 5, 6},
			expectedUnion:        []int{1, 3, 4, 5, 6, 7},
			expectedIntersection: []int{3, 5},
			expectedDifference:   []int{1, 7},
		},
		{
			name:                 "disjoint sets",
			set1:                 []int{1, 2},
			set2:                 []int{3, 4},
			expectedUnion:        []int{1, 2, 3, 4},
			expectedIntersection: []int{},
			expectedDifference:   []int{1, 2},
		},
		{
			name:                 "equal sets",
			set1:                 []int{1, 2, 3},
			set2:                 []int{1, 2, 3},
			expectedUnion:        []int{1, 2, 3},
			expectedIntersection: []int{1, 2, 3},
			expectedDifference:   []int{},
		},
		{
			name:                 "first operand empty",
			set1:                 []int{},
			set2:                 []int{1, 2},
			expectedUnion:        []int{1, 2},
			expectedIntersection: []int{},
			expectedDifference:   []int{},
		},
		{
			name:                 "second operand empty",
			set1:                 []int{1, 2},
			set2:                 []int{},
			expectedUnion:        []int{1, 2},
			expectedIntersection: []int{},
			expectedDifference:   []int{1, 2},
		},
		{
			name:                 "both operands empty",
			set1:                 []int{},
			set2:                 []int{},
			expectedUnion:        []int{},
			expectedIntersection: []int{},
			expectedDifference:   []int{},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			set1 := sortedset.NewNatural(tt.set1...)
			set2 := sortedset.NewNatural(tt.set2...)

			union, err := sortedset.Union[int](set1, set2)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedUnion, union.Slice())

			intersection, err := sortedset.Intersection[int](set1, set2)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIntersection, intersection.Slice())

			difference, err := sortedset.Difference[int](set1, set2)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDifference, difference.Slice())

			// Operands must never be modified.
			assert.Equal(t, tt.set1, set1.Slice())
			assert.Equal(t, tt.set2, set2.Slice())
		})
	}
}

func TestSetAlgebra_MembershipProperties(t *testing.T) {
	set1 := sortedset.NewNatural(1, 3, 5, 7, 9)
	set2 := sortedset.NewNatural(2, 3, 5, 8, 9)

	union, err := sortedset.Union[int](set1, set2)
	require.NoError(t, err)
	intersection, err := sortedset.Intersection[int](set1, set2)
	require.NoError(t, err)
	difference, err := sortedset.Difference[int](set1, set2)
	require.NoError(t, err)

	for element := 0; element <= 10; element++ {
		in1, in2 := set1.Contains(element), set2.Contains(element)
		assert.Equal(t, in1 || in2, union.Contains(element), "union membership of %d", element)
		assert.Equal(t, in1 && in2, intersection.Contains(element), "intersection membership of %d", element)
		assert.Equal(t, in1 && !in2, difference.Contains(element), "difference membership of %d", element)
	}
}

func TestSetAlgebra_IncompatibleComparators(t *testing.T) {
	ascending := func(a, b int) int { return a - b }
	set1 := sortedset.New(compare.New(ascending), 1, 2)
	set2 := sortedset.New(compare.New(ascending), 2, 3)

	_, err := sortedset.Union[int](set1, set2)
	assert.ErrorIs(t, err, sortedset.ErrIncompatibleComparators)

	_, err = sortedset.Intersection[int](set1, set2)
	assert.ErrorIs(t, err, sortedset.ErrIncompatibleComparators)

	_, err = sortedset.Difference[int](set1, set2)
	assert.ErrorIs(t, err, sortedset.ErrIncompatibleComparators)
}

func TestSetAlgebra_SharedComparatorIsCompatible(t *testing.T) {
	descending := compare.Natural[int]().Reversed()
	set1 := sortedset.New(descending, 1, 3)
	set2 := sortedset.New(descending, 2, 3)

	union, err := sortedset.Union[int](set1, set2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, union.Slice())
	require.Same(t, descending, union.Comparator())
}
