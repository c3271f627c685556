// Package sortedset provides sets that keep their elements in ascending order
// under a pluggable comparator, with binary-search lookup and linear-time
// merge-based set algebra.
package sortedset

import (
	"errors"

	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/iterator"
)

var (
	// ErrEmptySet is returned by queries that need at least one element,
	// e.g., Minimum and Maximum on an empty set.
	ErrEmptySet = errors.New("set is empty")

	// ErrInvalidCapacity is returned when constructing a set with a
	// non-positive initial capacity.
	ErrInvalidCapacity = errors.New("initial capacity must be positive")

	// ErrIncompatibleComparators is returned by binary set operations when the
	// operands do not hold the same comparator instance.
	ErrIncompatibleComparators = errors.New("sets must use the same comparator")
)

// SortedSet is a collection of unique elements maintained in ascending order
// under a comparator.
//
// Implementations are not safe for concurrent use. Structural modification
// while an iterator is live invalidates the iterator.
type SortedSet[T any] interface {
	// Comparator returns the comparator defining the order of elements. Two
	// sets can only be combined if they return the same comparator instance.
	Comparator() *compare.Comparator[T]

	// Size returns the number of elements in the set.
	Size() int

	// IsEmpty reports whether the set has no elements.
	IsEmpty() bool

	// Insert adds elements to the set. Elements already present are ignored.
	Insert(elements ...T)

	// Delete removes an element from the set. Absent elements are ignored.
	Delete(element T)

	// Contains reports whether the set holds an element equivalent to element
	// under the set's comparator.
	Contains(element T) bool

	// Clear removes all elements.
	Clear()

	// Minimum returns the smallest element, or ErrEmptySet.
	Minimum() (T, error)

	// Maximum returns the largest element, or ErrEmptySet.
	Maximum() (T, error)

	// Iterator returns a cursor yielding the elements in ascending order.
	Iterator() iterator.Iterator[T]

	// Slice returns the elements in ascending order as a fresh slice.
	Slice() []T
}
