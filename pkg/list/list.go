// Package list provides a growable ordered sequence, used by the tree
// traversals to stage children and collect results.
package list

import (
	"errors"
	"fmt"

	"github.com/stripe/sortedcontainers/pkg/iterator"
)

var (
	// ErrIndexOutOfRange is returned by Get when the index does not address a
	// live element.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidCapacity is returned when constructing a list with a
	// non-positive initial capacity.
	ErrInvalidCapacity = errors.New("initial capacity must be positive")
)

// List is an ordered sequence of elements. Iteration yields elements in
// insertion order.
type List[T any] interface {
	Size() int
	IsEmpty() bool
	Append(elements ...T)
	Get(index int) (T, error)
	Clear()
	Iterator() iterator.Iterator[T]
	Slice() []T
}

// ArrayList is a List backed by a contiguous slice.
type ArrayList[T any] struct {
	elements []T
}

// New creates an ArrayList with the given elements.
func New[T any](elements ...T) *ArrayList[T] {
	list := &ArrayList[T]{}
	list.Append(elements...)
	return list
}

// WithCapacity creates an empty ArrayList with storage preallocated for
// capacity elements. Returns ErrInvalidCapacity if capacity is not positive.
func WithCapacity[T any](capacity int) (*ArrayList[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &ArrayList[T]{elements: make([]T, 0, capacity)}, nil
}

// Copy creates an ArrayList with the same elements as that.
func Copy[T any](that List[T]) *ArrayList[T] {
	copied := &ArrayList[T]{elements: make([]T, 0, that.Size())}
	copied.Append(that.Slice()...)
	return copied
}

func (l *ArrayList[T]) Size() int {
	return len(l.elements)
}

func (l *ArrayList[T]) IsEmpty() bool {
	return len(l.elements) == 0
}

func (l *ArrayList[T]) Append(elements ...T) {
	l.elements = append(l.elements, elements...)
}

func (l *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.elements) {
		var zero T
		return zero, fmt.Errorf("%w: %d with size %d", ErrIndexOutOfRange, index, len(l.elements))
	}
	return l.elements[index], nil
}

func (l *ArrayList[T]) Clear() {
	var zero T
	for i := range l.elements {
		l.elements[i] = zero
	}
	l.elements = l.elements[:0]
}

func (l *ArrayList[T]) Iterator() iterator.Iterator[T] {
	return &arrayListIterator[T]{list: l}
}

func (l *ArrayList[T]) Slice() []T {
	elements := make([]T, len(l.elements))
	copy(elements, l.elements)
	return elements
}

func (l *ArrayList[T]) String() string {
	return fmt.Sprintf("ArrayList%v", l.elements)
}

type arrayListIterator[T any] struct {
	list  *ArrayList[T]
	index int
}

func (it *arrayListIterator[T]) Next() (T, bool) {
	if it.index >= len(it.list.elements) {
		var zero T
		return zero, false
	}
	element := it.list.elements[it.index]
	it.index++
	return element, true
}
