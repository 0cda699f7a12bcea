package dynarray

import "cmp"

// IndexNone is the index returned by lookup operations when no element
// matched. It is never a valid element index.
const IndexNone = -1

// FindFunc returns the index of the first element for which pred returns
// true, or IndexNone when there is none.
func (v *Vector[T]) FindFunc(pred func(T) bool) int {
	for i := 0; i < v.size; i++ {
		if pred(v.buf[i]) {
			return i
		}
	}
	return IndexNone
}

// FindLastFunc returns the index of the last element for which pred
// returns true, or IndexNone when there is none.
func (v *Vector[T]) FindLastFunc(pred func(T) bool) int {
	for i := v.size - 1; i >= 0; i-- {
		if pred(v.buf[i]) {
			return i
		}
	}
	return IndexNone
}

// ContainsFunc reports whether any element satisfies pred.
func (v *Vector[T]) ContainsFunc(pred func(T) bool) bool {
	return v.FindFunc(pred) != IndexNone
}

// Generic lookups for comparable element types.

// Find returns the index of the first element equal to value, or
// IndexNone when there is none.
func Find[T comparable](v *Vector[T], value T) int {
	for i := 0; i < v.size; i++ {
		if v.buf[i] == value {
			return i
		}
	}
	return IndexNone
}

// FindLast returns the index of the last element equal to value, or
// IndexNone when there is none.
func FindLast[T comparable](v *Vector[T], value T) int {
	for i := v.size - 1; i >= 0; i-- {
		if v.buf[i] == value {
			return i
		}
	}
	return IndexNone
}

// Contains reports whether any element equals value.
func Contains[T comparable](v *Vector[T], value T) bool {
	return Find(v, value) != IndexNone
}

// Remove deletes the first element equal to value and reports whether a
// removal occurred. Absence is not an error.
func Remove[T comparable](v *Vector[T], value T) bool {
	i := Find(v, value)
	if i == IndexNone {
		return false
	}
	v.shiftLeft(i, 1)
	v.size--
	return true
}

// Equal reports whether a and b hold the same number of elements with
// pairwise-equal values in order. Two empty vectors are equal.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied equality predicate, for
// element types that are not comparable.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: elements are compared
// pairwise up to the shorter length and the first difference decides;
// otherwise the shorter vector orders first. The result follows the
// cmp.Compare convention (-1, 0, +1).
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	minSize := min(a.size, b.size)
	for i := 0; i < minSize; i++ {
		if c := cmp.Compare(a.buf[i], b.buf[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// CompareFunc is Compare with a caller-supplied three-way comparison, for
// element types without a native ordering.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	minSize := min(a.size, b.size)
	for i := 0; i < minSize; i++ {
		if c := compare(a.buf[i], b.buf[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}
