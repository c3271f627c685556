package sortedbag

import (
	"fmt"

	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/iterator"
)

// node is one entry in a LinkedBag's chain: a distinct element and how many
// times it occurs. Nodes always have occurrences >= 1; a node whose count
// drops to 0 is unlinked.
type node[T any] struct {
	element     T
	occurrences int
	next        *node[T]
}

// LinkedBag is a SortedBag backed by a singly linked chain of
// (element, occurrences) nodes in strictly ascending element order.
//
// Invariant: the chain is strictly ascending under the comparator, every node
// has occurrences >= 1, first and last reference the real ends of the chain
// (both nil when the bag is empty) and distinct is the number of nodes.
type LinkedBag[T any] struct {
	comparator *compare.Comparator[T]
	first      *node[T]
	last       *node[T]
	distinct   int
}

// NewLinked creates a LinkedBag with the given comparator and elements.
func NewLinked[T any](comparator *compare.Comparator[T], elements ...T) *LinkedBag[T] {
	bag := &LinkedBag[T]{comparator: comparator}
	bag.Insert(elements...)
	return bag
}

// NewLinkedNatural creates a LinkedBag ordered by the natural order of T.
func NewLinkedNatural[T compare.Ordered](elements ...T) *LinkedBag[T] {
	return NewLinked(compare.Natural[T](), elements...)
}

// CopyLinked creates a LinkedBag with the same comparator and contents as
// that. O(n) in the number of occurrences: the source iterates in ascending
// order, so every element is appended at the end of the chain.
func CopyLinked[T any](that SortedBag[T]) *LinkedBag[T] {
	copied := &LinkedBag[T]{comparator: that.Comparator()}
	it := that.Iterator()
	for element, ok := it.Next(); ok; element, ok = it.Next() {
		copied.appendMax(element)
	}
	return copied
}

func (b *LinkedBag[T]) Comparator() *compare.Comparator[T] {
	return b.comparator
}

// Size returns the total number of occurrences. It walks the chain, so it is
// O(n) in the number of distinct elements; use DistinctSize for an O(1) count
// of distinct elements.
func (b *LinkedBag[T]) Size() int {
	size := 0
	for current := b.first; current != nil; current = current.next {
		size += current.occurrences
	}
	return size
}

func (b *LinkedBag[T]) DistinctSize() int {
	return b.distinct
}

func (b *LinkedBag[T]) IsEmpty() bool {
	return b.first == nil
}

// locate walks the chain until the first node whose element is >= element.
// current is that node (nil if every element is smaller), previous is the node
// before it (nil if current is the first node) and found reports whether
// current holds element itself.
func (b *LinkedBag[T]) locate(element T) (previous, current *node[T], found bool) {
	current = b.first

	cmp := 0
	for current != nil {
		cmp = b.comparator.Compare(element, current.element)
		if cmp <= 0 {
			break
		}
		previous = current
		current = current.next
	}
	return previous, current, current != nil && cmp == 0
}

func (b *LinkedBag[T]) Insert(elements ...T) {
	for _, element := range elements {
		b.insert(element)
	}
}

func (b *LinkedBag[T]) insert(element T) {
	previous, current, found := b.locate(element)
	if found {
		current.occurrences++
		return
	}

	inserted := &node[T]{element: element, occurrences: 1, next: current}
	if current == nil {
		b.last = inserted
	}
	if previous == nil {
		b.first = inserted
	} else {
		previous.next = inserted
	}
	b.distinct++
}

func (b *LinkedBag[T]) Delete(element T) {
	previous, current, found := b.locate(element)
	if !found {
		return
	}

	current.occurrences--
	if current.occurrences == 0 {
		b.unlink(previous, current)
	}
}

// unlink removes current from the chain, fixing first/last and the distinct
// count. It returns the node that now follows previous.
func (b *LinkedBag[T]) unlink(previous, current *node[T]) *node[T] {
	next := current.next
	if previous == nil {
		b.first = next
	} else {
		previous.next = next
	}
	if current == b.last {
		b.last = previous
	}
	b.distinct--
	return next
}

func (b *LinkedBag[T]) Occurrences(element T) int {
	_, current, found := b.locate(element)
	if !found {
		return 0
	}
	return current.occurrences
}

func (b *LinkedBag[T]) Clear() {
	b.first = nil
	b.last = nil
	b.distinct = 0
}

func (b *LinkedBag[T]) Minimum() (T, error) {
	if b.first == nil {
		var zero T
		return zero, fmt.Errorf("minimum: %w", ErrEmptyBag)
	}
	return b.first.element, nil
}

func (b *LinkedBag[T]) Maximum() (T, error) {
	if b.last == nil {
		var zero T
		return zero, fmt.Errorf("maximum: %w", ErrEmptyBag)
	}
	return b.last.element, nil
}

func (b *LinkedBag[T]) Iterator() iterator.Iterator[T] {
	return &linkedBagIterator[T]{current: b.first}
}

func (b *LinkedBag[T]) Slice() []T {
	elements := make([]T, 0, b.distinct)
	for current := b.first; current != nil; current = current.next {
		for i := 0; i < current.occurrences; i++ {
			elements = append(elements, current.element)
		}
	}
	return elements
}

func (b *LinkedBag[T]) String() string {
	return fmt.Sprintf("LinkedBag%v", b.Slice())
}

// appendMax adds one occurrence of element at the end of the chain.
//
// Precondition: element must order greater than or equal to the current
// maximum. An element equal to the maximum folds into the last node's count;
// anything greater becomes a new last node. The merge algorithms produce
// elements in ascending order, which is what makes this O(1) instead of a
// full O(n) insert.
func (b *LinkedBag[T]) appendMax(element T) {
	switch {
	case b.first == nil:
		b.first = &node[T]{element: element, occurrences: 1}
		b.last = b.first
		b.distinct++
	case b.comparator.Compare(element, b.last.element) == 0:
		b.last.occurrences++
	default:
		appended := &node[T]{element: element, occurrences: 1}
		b.last.next = appended
		b.last = appended
		b.distinct++
	}
}

// UnionBag adds every occurrence in that to b. that may iterate in any order,
// so each element goes through a full insert: O(n*m) worst case. Use Union
// when the operand is a LinkedBag with the same comparator.
func (b *LinkedBag[T]) UnionBag(that Bag[T]) {
	it := that.Iterator()
	for element, ok := it.Next(); ok; element, ok = it.Next() {
		b.insert(element)
	}
}

// Union adds every occurrence in that to b by walking both chains in
// lock-step: counts are added for elements present in both bags and missing
// elements are spliced in at their position. that is not modified. Returns
// ErrIncompatibleComparators if the bags do not hold the same comparator
// instance. O(n+m).
func (b *LinkedBag[T]) Union(that *LinkedBag[T]) error {
	if b.comparator != that.comparator {
		return fmt.Errorf("union: %w", ErrIncompatibleComparators)
	}

	curThis := b.first
	var prevThis *node[T]
	for curThat := that.first; curThat != nil; curThat = curThat.next {
		// Advance past elements only in b.
		for curThis != nil && b.comparator.Compare(curThis.element, curThat.element) < 0 {
			prevThis = curThis
			curThis = curThis.next
		}

		if curThis != nil && b.comparator.Compare(curThis.element, curThat.element) == 0 {
			curThis.occurrences += curThat.occurrences
			prevThis = curThis
			curThis = curThis.next
			continue
		}

		// curThat's element is absent from b; splice a copy before curThis.
		spliced := &node[T]{element: curThat.element, occurrences: curThat.occurrences, next: curThis}
		if prevThis == nil {
			b.first = spliced
		} else {
			prevThis.next = spliced
		}
		if curThis == nil {
			b.last = spliced
		}
		b.distinct++
		prevThis = spliced
	}
	return nil
}

// IntersectionBag is not implemented for arbitrary bag operands and always
// returns ErrNotImplemented. Use Intersection with a LinkedBag operand.
func (b *LinkedBag[T]) IntersectionBag(that Bag[T]) error {
	return fmt.Errorf("intersection with arbitrary bag: %w", ErrNotImplemented)
}

// Intersection keeps in b only the elements also present in that, lowering
// each kept element's count to the minimum of both bags and unlinking the
// rest. that is not modified. Returns ErrIncompatibleComparators if the bags
// do not hold the same comparator instance. O(n+m).
func (b *LinkedBag[T]) Intersection(that *LinkedBag[T]) error {
	if b.comparator != that.comparator {
		return fmt.Errorf("intersection: %w", ErrIncompatibleComparators)
	}

	curThat := that.first
	curThis := b.first
	var prevThis *node[T]
	for curThis != nil && curThat != nil {
		cmp := b.comparator.Compare(curThis.element, curThat.element)
		switch {
		case cmp == 0:
			if curThat.occurrences < curThis.occurrences {
				curThis.occurrences = curThat.occurrences
			}
			prevThis = curThis
			curThis = curThis.next
			curThat = curThat.next
		case cmp < 0:
			// Only in b; drop it.
			curThis = b.unlink(prevThis, curThis)
		default:
			curThat = curThat.next
		}
	}

	// that is exhausted; whatever remains in b is unmatched.
	for curThis != nil {
		curThis = b.unlink(prevThis, curThis)
	}
	return nil
}

// DifferenceBag is not implemented for arbitrary bag operands and always
// returns ErrNotImplemented.
func (b *LinkedBag[T]) DifferenceBag(that Bag[T]) error {
	return fmt.Errorf("difference with arbitrary bag: %w", ErrNotImplemented)
}

// Difference is not implemented and always returns ErrNotImplemented. The
// stateless sortedbag.Difference covers bag difference without mutating its
// operands.
func (b *LinkedBag[T]) Difference(that *LinkedBag[T]) error {
	return fmt.Errorf("difference: %w", ErrNotImplemented)
}

// linkedBagIterator yields current.element until returned reaches the node's
// occurrence count, then moves to the next node.
type linkedBagIterator[T any] struct {
	current  *node[T]
	returned int
}

func (it *linkedBagIterator[T]) Next() (T, bool) {
	if it.current == nil {
		var zero T
		return zero, false
	}
	element := it.current.element
	it.returned++
	if it.returned >= it.current.occurrences {
		it.current = it.current.next
		it.returned = 0
	}
	return element, true
}
