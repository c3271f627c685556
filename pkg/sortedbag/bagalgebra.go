package sortedbag

import (
	"fmt"

	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/iterator"
)

// entryCursor groups a sorted bag's repeated-element iteration into
// (element, count) entries, one per distinct element. The bag algebra works on
// entries so that occurrence counts can be combined in a single step instead
// of one occurrence at a time.
type entryCursor[T any] struct {
	it         iterator.Iterator[T]
	comparator *compare.Comparator[T]
	pending    T
	hasPending bool
}

func newEntryCursor[T any](bag SortedBag[T]) *entryCursor[T] {
	cursor := &entryCursor[T]{
		it:         bag.Iterator(),
		comparator: bag.Comparator(),
	}
	cursor.pending, cursor.hasPending = cursor.it.Next()
	return cursor
}

func (c *entryCursor[T]) next() (element T, count int, ok bool) {
	if !c.hasPending {
		var zero T
		return zero, 0, false
	}
	element = c.pending
	count = 1
	for {
		c.pending, c.hasPending = c.it.Next()
		if !c.hasPending || c.comparator.Compare(c.pending, element) != 0 {
			return element, count, true
		}
		count++
	}
}

// Union returns a new ArrayBag where each element occurs as many times as in
// bag1 and bag2 combined. Neither operand is modified. Both operands must hold
// the same comparator instance; otherwise ErrIncompatibleComparators is
// returned before any work is done. O(n+m).
func Union[T any](bag1, bag2 SortedBag[T]) (*ArrayBag[T], error) {
	comparator, err := commonComparator("union", bag1, bag2)
	if err != nil {
		return nil, err
	}

	union := &ArrayBag[T]{
		comparator: comparator,
		elements:   make([]T, 0, bag1.DistinctSize()+bag2.DistinctSize()),
		counts:     make([]int, 0, bag1.DistinctSize()+bag2.DistinctSize()),
	}

	entries1, entries2 := newEntryCursor[T](bag1), newEntryCursor[T](bag2)
	element1, count1, ok1 := entries1.next()
	element2, count2, ok2 := entries2.next()
	for ok1 || ok2 {
		switch {
		case !ok1:
			union.appendEntry(element2, count2)
			element2, count2, ok2 = entries2.next()
		case !ok2:
			union.appendEntry(element1, count1)
			element1, count1, ok1 = entries1.next()
		default:
			cmp := comparator.Compare(element1, element2)
			switch {
			case cmp < 0:
				union.appendEntry(element1, count1)
				element1, count1, ok1 = entries1.next()
			case cmp > 0:
				union.appendEntry(element2, count2)
				element2, count2, ok2 = entries2.next()
			default:
				// Present in both operands; counts add up.
				union.appendEntry(element1, count1+count2)
				element1, count1, ok1 = entries1.next()
				element2, count2, ok2 = entries2.next()
			}
		}
	}
	return union, nil
}

// Intersection returns a new ArrayBag where each element occurs as many times
// as the smaller of its counts in bag1 and bag2, dropping elements absent from
// either. Neither operand is modified. Both operands must hold the same
// comparator instance. The result capacity is bounded by the operand with
// fewer distinct elements. O(n+m).
func Intersection[T any](bag1, bag2 SortedBag[T]) (*ArrayBag[T], error) {
	comparator, err := commonComparator("intersection", bag1, bag2)
	if err != nil {
		return nil, err
	}

	smaller := bag1.DistinctSize()
	if bag2.DistinctSize() < smaller {
		smaller = bag2.DistinctSize()
	}
	intersection := &ArrayBag[T]{
		comparator: comparator,
		elements:   make([]T, 0, smaller),
		counts:     make([]int, 0, smaller),
	}

	entries1, entries2 := newEntryCursor[T](bag1), newEntryCursor[T](bag2)
	element1, count1, ok1 := entries1.next()
	element2, count2, ok2 := entries2.next()
	for ok1 && ok2 {
		cmp := comparator.Compare(element1, element2)
		switch {
		case cmp < 0:
			element1, count1, ok1 = entries1.next()
		case cmp > 0:
			element2, count2, ok2 = entries2.next()
		default:
			count := count1
			if count2 < count {
				count = count2
			}
			intersection.appendEntry(element1, count)
			element1, count1, ok1 = entries1.next()
			element2, count2, ok2 = entries2.next()
		}
	}
	return intersection, nil
}

// Difference returns a new ArrayBag where each element occurs as many times as
// in bag1 minus its occurrences in bag2, dropping elements whose count reaches
// zero. Neither operand is modified. Both operands must hold the same
// comparator instance. O(n+m).
func Difference[T any](bag1, bag2 SortedBag[T]) (*ArrayBag[T], error) {
	comparator, err := commonComparator("difference", bag1, bag2)
	if err != nil {
		return nil, err
	}

	difference := &ArrayBag[T]{
		comparator: comparator,
		elements:   make([]T, 0, bag1.DistinctSize()),
		counts:     make([]int, 0, bag1.DistinctSize()),
	}

	entries1, entries2 := newEntryCursor[T](bag1), newEntryCursor[T](bag2)
	element1, count1, ok1 := entries1.next()
	element2, count2, ok2 := entries2.next()
	for ok1 {
		if !ok2 {
			difference.appendEntry(element1, count1)
			element1, count1, ok1 = entries1.next()
			continue
		}
		cmp := comparator.Compare(element1, element2)
		switch {
		case cmp < 0:
			difference.appendEntry(element1, count1)
			element1, count1, ok1 = entries1.next()
		case cmp == 0:
			// Each occurrence in bag2 cancels one occurrence in bag1.
			if count1 > count2 {
				difference.appendEntry(element1, count1-count2)
			}
			element1, count1, ok1 = entries1.next()
			element2, count2, ok2 = entries2.next()
		default:
			element2, count2, ok2 = entries2.next()
		}
	}
	return difference, nil
}

func commonComparator[T any](op string, bag1, bag2 SortedBag[T]) (*compare.Comparator[T], error) {
	if bag1.Comparator() != bag2.Comparator() {
		return nil, fmt.Errorf("%s: %w", op, ErrIncompatibleComparators)
	}
	return bag1.Comparator(), nil
}
