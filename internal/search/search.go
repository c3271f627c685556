package search

// Locate binary-searches for target in elements, which must be sorted in
// strictly ascending order under compare. It returns the index where target is
// if found is true, or the index where target would be inserted to keep the
// slice sorted if found is false. Insert, contains and delete on the
// array-backed containers all share this single search.
func Locate[T any](elements []T, target T, compare func(a, b T) int) (index int, found bool) {
	left, right := 0, len(elements)-1
	for left <= right {
		mid := left + (right-left)/2
		cmp := compare(target, elements[mid])
		if cmp == 0 {
			return mid, true
		}
		if cmp > 0 {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return left, false
}
