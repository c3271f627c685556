package compare

import (
	"reflect"
	"sync"
)

// Ordered matches the types that support the <, <= , >= and > operators.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Comparator defines a total order over values of type T. Compare returns a
// negative value if a orders before b, zero if a and b are equivalent and a
// positive value if a orders after b.
//
// Containers are only compatible for binary operations (e.g., a set union) if
// they hold the *same* comparator instance, i.e., the same pointer. Two
// comparators built from functionally equivalent functions are still
// considered different orders. Share a single comparator across the containers
// you intend to combine.
type Comparator[T any] struct {
	compare func(a, b T) int
}

// New builds a comparator from a three-way comparison function. Every call
// returns a distinct comparator identity.
func New[T any](compare func(a, b T) int) *Comparator[T] {
	return &Comparator[T]{compare: compare}
}

// Compare applies the comparator's ordering to a and b.
func (c *Comparator[T]) Compare(a, b T) int {
	return c.compare(a, b)
}

// Reversed returns a new comparator with the inverted order. The result is a
// distinct comparator identity.
func (c *Comparator[T]) Reversed() *Comparator[T] {
	return &Comparator[T]{compare: func(a, b T) int {
		return c.compare(b, a)
	}}
}

// naturalComparators caches one canonical comparator per element type, keyed
// by reflect.Type, so that repeated calls to Natural return the same instance.
var naturalComparators sync.Map

// Natural returns the comparator for the natural order of T. Repeated calls
// with the same type parameter return the same comparator instance, so
// containers built independently with Natural ordering are compatible for
// binary operations.
func Natural[T Ordered]() *Comparator[T] {
	key := reflect.TypeOf((*T)(nil))
	if cached, ok := naturalComparators.Load(key); ok {
		return cached.(*Comparator[T])
	}
	comparator, _ := naturalComparators.LoadOrStore(key, New(naturalCompare[T]))
	return comparator.(*Comparator[T])
}

func naturalCompare[T Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
