package iterator

// Iterator is a cursor over a sequence of elements. Next returns the next
// element and true, or the zero value and false once the sequence is
// exhausted. The two-state protocol avoids conflating "exhausted" with an
// element that is legitimately the zero value.
//
// Iterators over containers are invalidated by structural modification of the
// underlying container; a live iterator is not required to detect this and may
// behave arbitrarily afterwards.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Collect drains the iterator into a slice.
func Collect[T any](it Iterator[T]) []T {
	var elements []T
	for element, ok := it.Next(); ok; element, ok = it.Next() {
		elements = append(elements, element)
	}
	return elements
}
