package sortedbag

import (
	"fmt"

	"github.com/stripe/sortedcontainers/internal/search"
	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/iterator"
)

// ArrayBag is a SortedBag backed by parallel slices: elements holds the
// distinct elements in strictly ascending order and counts holds the
// occurrence count for the element at the same index. Contiguous storage and
// binary-search lookup make it the better fit for read-heavy workloads.
//
// Invariant: elements is strictly ascending under the comparator,
// len(counts) == len(elements) and every count is >= 1.
type ArrayBag[T any] struct {
	comparator *compare.Comparator[T]
	elements   []T
	counts     []int
}

// NewArray creates an ArrayBag with the given comparator and elements.
func NewArray[T any](comparator *compare.Comparator[T], elements ...T) *ArrayBag[T] {
	bag := &ArrayBag[T]{comparator: comparator}
	bag.Insert(elements...)
	return bag
}

// NewArrayNatural creates an ArrayBag ordered by the natural order of T.
func NewArrayNatural[T compare.Ordered](elements ...T) *ArrayBag[T] {
	return NewArray(compare.Natural[T](), elements...)
}

// ArrayWithCapacity creates an empty ArrayBag with storage preallocated for
// capacity distinct elements. Returns ErrInvalidCapacity if capacity is not
// positive.
func ArrayWithCapacity[T any](comparator *compare.Comparator[T], capacity int) (*ArrayBag[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &ArrayBag[T]{
		comparator: comparator,
		elements:   make([]T, 0, capacity),
		counts:     make([]int, 0, capacity),
	}, nil
}

// CopyArray creates an ArrayBag with the same comparator and contents as
// that. O(n) in the number of distinct elements.
func CopyArray[T any](that SortedBag[T]) *ArrayBag[T] {
	copied := &ArrayBag[T]{
		comparator: that.Comparator(),
		elements:   make([]T, 0, that.DistinctSize()),
		counts:     make([]int, 0, that.DistinctSize()),
	}
	entries := newEntryCursor[T](that)
	for element, count, ok := entries.next(); ok; element, count, ok = entries.next() {
		copied.appendEntry(element, count)
	}
	return copied
}

func (b *ArrayBag[T]) Comparator() *compare.Comparator[T] {
	return b.comparator
}

// Size returns the total number of occurrences. It is recomputed by summing
// the per-element counts on every call, so it is O(n) in the number of
// distinct elements; use DistinctSize for an O(1) count.
func (b *ArrayBag[T]) Size() int {
	size := 0
	for _, count := range b.counts {
		size += count
	}
	return size
}

func (b *ArrayBag[T]) DistinctSize() int {
	return len(b.elements)
}

func (b *ArrayBag[T]) IsEmpty() bool {
	return len(b.elements) == 0
}

func (b *ArrayBag[T]) Insert(elements ...T) {
	for _, element := range elements {
		index, found := search.Locate(b.elements, element, b.comparator.Compare)
		if found {
			b.counts[index]++
			continue
		}
		var zero T
		b.elements = append(b.elements, zero)
		copy(b.elements[index+1:], b.elements[index:])
		b.elements[index] = element
		b.counts = append(b.counts, 0)
		copy(b.counts[index+1:], b.counts[index:])
		b.counts[index] = 1
	}
}

func (b *ArrayBag[T]) Delete(element T) {
	index, found := search.Locate(b.elements, element, b.comparator.Compare)
	if !found {
		return
	}
	b.counts[index]--
	if b.counts[index] > 0 {
		return
	}

	last := len(b.elements) - 1
	copy(b.elements[index:], b.elements[index+1:])
	var zero T
	b.elements[last] = zero
	b.elements = b.elements[:last]
	copy(b.counts[index:], b.counts[index+1:])
	b.counts = b.counts[:last]
}

func (b *ArrayBag[T]) Occurrences(element T) int {
	index, found := search.Locate(b.elements, element, b.comparator.Compare)
	if !found {
		return 0
	}
	return b.counts[index]
}

func (b *ArrayBag[T]) Clear() {
	var zero T
	for i := range b.elements {
		b.elements[i] = zero
	}
	b.elements = b.elements[:0]
	b.counts = b.counts[:0]
}

func (b *ArrayBag[T]) Minimum() (T, error) {
	if b.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("minimum: %w", ErrEmptyBag)
	}
	return b.elements[0], nil
}

func (b *ArrayBag[T]) Maximum() (T, error) {
	if b.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("maximum: %w", ErrEmptyBag)
	}
	return b.elements[len(b.elements)-1], nil
}

func (b *ArrayBag[T]) Iterator() iterator.Iterator[T] {
	return &arrayBagIterator[T]{bag: b}
}

func (b *ArrayBag[T]) Slice() []T {
	elements := make([]T, 0, b.Size())
	for i, element := range b.elements {
		for j := 0; j < b.counts[i]; j++ {
			elements = append(elements, element)
		}
	}
	return elements
}

func (b *ArrayBag[T]) String() string {
	return fmt.Sprintf("ArrayBag%v", b.Slice())
}

// appendEntry adds count occurrences of element past the current maximum.
//
// Precondition: element must order strictly after every element already in
// the bag and count must be >= 1. The bag algebra produces distinct elements
// in ascending order, which is what makes this O(1) amortized.
func (b *ArrayBag[T]) appendEntry(element T, count int) {
	b.elements = append(b.elements, element)
	b.counts = append(b.counts, count)
}

// arrayBagIterator yields elements[index] until returned reaches the slot's
// count, then moves to the next slot.
type arrayBagIterator[T any] struct {
	bag      *ArrayBag[T]
	index    int
	returned int
}

func (it *arrayBagIterator[T]) Next() (T, bool) {
	if it.index >= len(it.bag.elements) {
		var zero T
		return zero, false
	}
	element := it.bag.elements[it.index]
	it.returned++
	if it.returned >= it.bag.counts[it.index] {
		it.index++
		it.returned = 0
	}
	return element, true
}
