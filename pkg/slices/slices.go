package slices

// RemoveInPlace removes all elements from a slice that match the given predicate.
// Does not allocate a new slice.
func RemoveInPlace[T any](collection []T, predicate func(T, int) bool) []T {
	i := 0
	for j, x := range collection {
		if !predicate(x, j) {
			collection[i] = x
			i++
		}
	}
	return collection[:i]
}

// GrowLen grows the slice to the given length, reusing capacity when it can.
// Reused elements are zeroed.
func GrowLen[T any](s []T, n int) []T {
	var zero T
	if cap(s) < n {
		return make([]T, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = zero
	}
	return s
}
