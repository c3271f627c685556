// Package sortedbag provides bags (multisets) that keep their distinct
// elements in ascending order under a pluggable comparator, folding duplicates
// into per-element occurrence counts.
package sortedbag

import (
	"errors"

	"github.com/stripe/sortedcontainers/pkg/compare"
	"github.com/stripe/sortedcontainers/pkg/iterator"
)

var (
	// ErrEmptyBag is returned by queries that need at least one element,
	// e.g., Minimum and Maximum on an empty bag.
	ErrEmptyBag = errors.New("bag is empty")

	// ErrInvalidCapacity is returned when constructing a bag with a
	// non-positive initial capacity.
	ErrInvalidCapacity = errors.New("initial capacity must be positive")

	// ErrIncompatibleComparators is returned by binary bag operations when the
	// operands do not hold the same comparator instance.
	ErrIncompatibleComparators = errors.New("bags must use the same comparator")

	// ErrNotImplemented is returned by bag operations whose semantics are
	// deliberately left unimplemented. They fail loudly instead of producing a
	// silently wrong answer.
	ErrNotImplemented = errors.New("not implemented")
)

// Bag is a collection that may hold an element more than once. Iteration
// yields each element as many times as it occurs, but implementations make no
// ordering promise at this level.
//
// Implementations are not safe for concurrent use. Structural modification
// while an iterator is live invalidates the iterator.
type Bag[T any] interface {
	// Size returns the total number of occurrences across all elements.
	Size() int

	// IsEmpty reports whether the bag has no elements.
	IsEmpty() bool

	// Insert adds one occurrence of each given element.
	Insert(elements ...T)

	// Delete removes one occurrence of element. Absent elements are ignored.
	Delete(element T)

	// Occurrences returns how many times element occurs in the bag, or 0 if
	// it is absent.
	Occurrences(element T) int

	// Clear removes all elements.
	Clear()

	// Iterator returns a cursor yielding each element repeated as many times
	// as it occurs.
	Iterator() iterator.Iterator[T]
}

// SortedBag is a Bag whose iteration order is ascending under its comparator.
type SortedBag[T any] interface {
	Bag[T]

	// Comparator returns the comparator defining the order of elements. Two
	// bags can only be combined if they return the same comparator instance.
	Comparator() *compare.Comparator[T]

	// DistinctSize returns the number of distinct elements in the bag.
	DistinctSize() int

	// Minimum returns the smallest element, or ErrEmptyBag.
	Minimum() (T, error)

	// Maximum returns the largest element, or ErrEmptyBag.
	Maximum() (T, error)

	// Slice returns the elements in ascending order, each repeated as many
	// times as it occurs, as a fresh slice.
	Slice() []T
}
