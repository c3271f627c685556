package sortedset

import (
	"fmt"

	"github.com/stripe/sortedcontainers/pkg/compare"
)

// Union returns a new ArraySet holding every element present in set1 or set2.
// Neither operand is modified. Both operands must hold the same comparator
// instance; otherwise ErrIncompatibleComparators is returned before any work
// is done. O(n+m).
func Union[T any](set1, set2 SortedSet[T]) (*ArraySet[T], error) {
	comparator, err := commonComparator("union", set1, set2)
	if err != nil {
		return nil, err
	}

	union := &ArraySet[T]{
		comparator: comparator,
		elements:   make([]T, 0, set1.Size()+set2.Size()),
	}

	it1, it2 := set1.Iterator(), set2.Iterator()
	element1, ok1 := it1.Next()
	element2, ok2 := it2.Next()
	for ok1 || ok2 {
		switch {
		case !ok1:
			union.appendMax(element2)
			element2, ok2 = it2.Next()
		case !ok2:
			union.appendMax(element1)
			element1, ok1 = it1.Next()
		default:
			cmp := comparator.Compare(element1, element2)
			switch {
			case cmp < 0:
				union.appendMax(element1)
				element1, ok1 = it1.Next()
			case cmp > 0:
				union.appendMax(element2)
				element2, ok2 = it2.Next()
			default:
				// Present in both operands; keep a single instance.
				union.appendMax(element1)
				element1, ok1 = it1.Next()
				element2, ok2 = it2.Next()
			}
		}
	}
	return union, nil
}

// Intersection returns a new ArraySet holding the elements present in both
// set1 and set2. Neither operand is modified. Both operands must hold the same
// comparator instance. O(n+m) worst case; the result capacity is bounded by
// the smaller operand.
func Intersection[T any](set1, set2 SortedSet[T]) (*ArraySet[T], error) {
	comparator, err := commonComparator("intersection", set1, set2)
	if err != nil {
		return nil, err
	}

	smaller := set1.Size()
	if set2.Size() < smaller {
		smaller = set2.Size()
	}
	intersection := &ArraySet[T]{
		comparator: comparator,
		elements:   make([]T, 0, smaller),
	}

	it1, it2 := set1.Iterator(), set2.Iterator()
	element1, ok1 := it1.Next()
	element2, ok2 := it2.Next()
	for ok1 && ok2 {
		cmp := comparator.Compare(element1, element2)
		switch {
		case cmp < 0:
			// element1 cannot appear in set2 anymore; discard it.
			element1, ok1 = it1.Next()
		case cmp > 0:
			element2, ok2 = it2.Next()
		default:
			intersection.appendMax(element1)
			element1, ok1 = it1.Next()
			element2, ok2 = it2.Next()
		}
	}
	return intersection, nil
}

// Difference returns a new ArraySet holding the elements of set1 that are not
// in set2. Neither operand is modified. Both operands must hold the same
// comparator instance. O(n+m).
func Difference[T any](set1, set2 SortedSet[T]) (*ArraySet[T], error) {
	comparator, err := commonComparator("difference", set1, set2)
	if err != nil {
		return nil, err
	}

	difference := &ArraySet[T]{
		comparator: comparator,
		elements:   make([]T, 0, set1.Size()),
	}

	it1, it2 := set1.Iterator(), set2.Iterator()
	element1, ok1 := it1.Next()
	element2, ok2 := it2.Next()
	for ok1 {
		if !ok2 {
			difference.appendMax(element1)
			element1, ok1 = it1.Next()
			continue
		}
		cmp := comparator.Compare(element1, element2)
		switch {
		case cmp < 0:
			difference.appendMax(element1)
			element1, ok1 = it1.Next()
		case cmp == 0:
			// Present in both operands; excluded from the difference.
			element1, ok1 = it1.Next()
			element2, ok2 = it2.Next()
		default:
			element2, ok2 = it2.Next()
		}
	}
	return difference, nil
}

func commonComparator[T any](op string, set1, set2 SortedSet[T]) (*compare.Comparator[T], error) {
	if set1.Comparator() != set2.Comparator() {
		return nil, fmt.Errorf("%s: %w", op, ErrIncompatibleComparators)
	}
	return set1.Comparator(), nil
}
