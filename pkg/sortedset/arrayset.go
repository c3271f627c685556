package sortedset

import (
	"fmt"

	"github.com/stripe/sortedcontainers/internal/search"
	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/iterator"
)

// ArraySet is a SortedSet backed by a contiguous slice.
//
// Invariant: elements is sorted in strictly ascending order under the
// comparator, so it holds no duplicates. Lookup is O(log n); insert and delete
// are O(n) because of shifting.
type ArraySet[T any] struct {
	comparator *compare.Comparator[T]
	elements   []T
}

// New creates an ArraySet with the given comparator and elements.
func New[T any](comparator *compare.Comparator[T], elements ...T) *ArraySet[T] {
	set := &ArraySet[T]{comparator: comparator}
	set.Insert(elements...)
	return set
}

// NewNatural creates an ArraySet ordered by the natural order of T.
func NewNatural[T compare.Ordered](elements ...T) *ArraySet[T] {
	return New(compare.Natural[T](), elements...)
}

// WithCapacity creates an empty ArraySet with storage preallocated for
// capacity elements. Returns ErrInvalidCapacity if capacity is not positive.
func WithCapacity[T any](comparator *compare.Comparator[T], capacity int) (*ArraySet[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &ArraySet[T]{
		comparator: comparator,
		elements:   make([]T, 0, capacity),
	}, nil
}

// NewNaturalWithCapacity creates an empty ArraySet with preallocated storage,
// ordered by the natural order of T.
func NewNaturalWithCapacity[T compare.Ordered](capacity int) (*ArraySet[T], error) {
	return WithCapacity(compare.Natural[T](), capacity)
}

// Copy creates an ArraySet with the same comparator and elements as that.
func Copy[T any](that SortedSet[T]) *ArraySet[T] {
	copied := &ArraySet[T]{
		comparator: that.Comparator(),
		elements:   make([]T, 0, that.Size()),
	}
	it := that.Iterator()
	for element, ok := it.Next(); ok; element, ok = it.Next() {
		copied.appendMax(element)
	}
	return copied
}

func (s *ArraySet[T]) Comparator() *compare.Comparator[T] {
	return s.comparator
}

func (s *ArraySet[T]) Size() int {
	return len(s.elements)
}

func (s *ArraySet[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

func (s *ArraySet[T]) Insert(elements ...T) {
	for _, element := range elements {
		index, found := search.Locate(s.elements, element, s.comparator.Compare)
		if found {
			continue
		}
		var zero T
		s.elements = append(s.elements, zero)
		copy(s.elements[index+1:], s.elements[index:])
		s.elements[index] = element
	}
}

func (s *ArraySet[T]) Delete(element T) {
	index, found := search.Locate(s.elements, element, s.comparator.Compare)
	if !found {
		return
	}
	last := len(s.elements) - 1
	copy(s.elements[index:], s.elements[index+1:])
	// Zero the vacated slot so the backing array does not retain a reference.
	var zero T
	s.elements[last] = zero
	s.elements = s.elements[:last]
}

func (s *ArraySet[T]) Contains(element T) bool {
	_, found := search.Locate(s.elements, element, s.comparator.Compare)
	return found
}

func (s *ArraySet[T]) Clear() {
	var zero T
	for i := range s.elements {
		s.elements[i] = zero
	}
	s.elements = s.elements[:0]
}

func (s *ArraySet[T]) Minimum() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("minimum: %w", ErrEmptySet)
	}
	return s.elements[0], nil
}

func (s *ArraySet[T]) Maximum() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("maximum: %w", ErrEmptySet)
	}
	return s.elements[len(s.elements)-1], nil
}

func (s *ArraySet[T]) Iterator() iterator.Iterator[T] {
	return &arraySetIterator[T]{set: s}
}

func (s *ArraySet[T]) Slice() []T {
	elements := make([]T, len(s.elements))
	copy(elements, s.elements)
	return elements
}

func (s *ArraySet[T]) String() string {
	return fmt.Sprintf("ArraySet%v", s.elements)
}

// appendMax appends element past the current maximum.
//
// Precondition: element must order strictly after every element already in the
// set. The merge algorithms produce elements in ascending order, which is what
// makes this O(1) amortized instead of a full O(n) Insert.
func (s *ArraySet[T]) appendMax(element T) {
	s.elements = append(s.elements, element)
}

type arraySetIterator[T any] struct {
	set   *ArraySet[T]
	index int
}

func (it *arraySetIterator[T]) Next() (T, bool) {
	if it.index >= len(it.set.elements) {
		var zero T
		return zero, false
	}
	element := it.set.elements[it.index]
	it.index++
	return element, true
}
