// Package dynarray implements a generic, contiguous, growable sequence
// container (dynamic array) with manual capacity control.
// Typical usage: build a Vector with Of or New, append with Add/AddRange,
// and call Reserve up front when the final size is known to avoid
// intermediate reallocations.
package dynarray

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when an index is outside the permitted range
// for an operation. Use errors.Is to test for it; the returned error also
// carries the offending index and the current size.
var ErrOutOfRange = errors.New("dynarray: index out of range")

// Vector is a contiguous growable sequence of T. The zero value is an
// empty vector with no allocation and is ready to use. Not goroutine-safe:
// concurrent mutation requires external locking.
//
// Storage layout: len(buf) is the allocated capacity, the first size slots
// hold the live elements in logical order, and every slot past size holds
// the zero value of T so the garbage collector can reclaim anything a
// removed element referenced.
type Vector[T any] struct {
	buf  []T // allocated slots; nil while capacity is zero
	size int // live prefix length, 0 <= size <= len(buf)
}

// New creates an empty Vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize creates a Vector holding count zero-valued elements in exactly
// count slots. Non-positive counts yield an empty vector.
func NewSize[T any](count int) *Vector[T] {
	if count <= 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{buf: make([]T, count), size: count}
}

// NewFill creates a Vector holding count copies of value in exactly count
// slots. Non-positive counts yield an empty vector.
func NewFill[T any](count int, value T) *Vector[T] {
	if count <= 0 {
		return &Vector[T]{}
	}
	v := &Vector[T]{buf: make([]T, count), size: count}
	for i := range v.buf {
		v.buf[i] = value
	}
	return v
}

// Of creates a Vector holding the given elements in order, in exactly
// len(values) slots.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	v.assign(values)
	return v
}

// Clone returns a deep copy of v: independent storage sized exactly to the
// element count, same logical sequence. Mutating the clone never affects v
// and vice versa.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	c.assign(v.buf[:v.size])
	return c
}

// CopyFrom replaces v's contents with a deep copy of other's, reusing v's
// existing storage when it is large enough. CopyFrom(v) on itself is a
// no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.assign(other.buf[:other.size])
}

// MoveFrom transfers other's storage to v in O(1), dropping v's previous
// contents. other is left in the valid empty state (no storage) and can be
// reused or discarded. MoveFrom(v) on itself is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.buf, v.size = other.buf, other.size
	other.buf, other.size = nil, 0
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}

// At returns the element at index i.
// Fails with ErrOutOfRange when i is outside [0, Size()).
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkRange(i, false); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[i], nil
}

// Set replaces the element at index i with value.
// Fails with ErrOutOfRange when i is outside [0, Size()).
func (v *Vector[T]) Set(i int, value T) error {
	if err := v.checkRange(i, false); err != nil {
		return err
	}
	v.buf[i] = value
	return nil
}

// Data returns a view of the live elements [0, Size()), or nil when the
// vector is empty. The view aliases the vector's storage: element writes
// through it are observable via At. The view's capacity equals its length,
// so appending to it reallocates instead of touching spare slots. The view
// is invalidated by any operation that grows, shrinks, or shifts the
// vector.
func (v *Vector[T]) Data() []T {
	if v.size == 0 {
		return nil
	}
	return v.buf[:v.size:v.size]
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return len(v.buf)
}

// Reserve guarantees Capacity() >= n without changing the contents.
// It never shrinks; calls with n <= Capacity() are no-ops. Growth
// reallocates to max(n, Capacity()+Capacity()/2).
func (v *Vector[T]) Reserve(n int) {
	v.ensureCapacity(n)
}

// Shrink reallocates storage to exactly Size() slots, releasing it
// entirely when the vector is empty. No-op when capacity is already tight.
func (v *Vector[T]) Shrink() {
	if v.size == len(v.buf) {
		return
	}
	if v.size == 0 {
		v.buf = nil
		return
	}
	v.reallocate(v.size)
}

// checkRange validates an index. allowEnd permits i == size, the insertion
// position one past the last element.
func (v *Vector[T]) checkRange(i int, allowEnd bool) error {
	limit := v.size
	if allowEnd {
		limit++
	}
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}
	return nil
}

// ensureCapacity grows storage so that at least minCapacity slots are
// allocated. The new capacity is 1.5x the current one, clamped at
// math.MaxInt, and raised to minCapacity if the factor alone is not
// enough.
func (v *Vector[T]) ensureCapacity(minCapacity int) {
	capacity := len(v.buf)
	if minCapacity <= capacity {
		return
	}

	newCapacity := capacity + capacity/2
	if capacity > math.MaxInt-capacity/2 {
		newCapacity = math.MaxInt
	}
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}

	v.reallocate(newCapacity)
}

// reallocate replaces the storage block with one of exactly newCapacity
// slots. The new block is fully populated from the live prefix before the
// old one is dropped, so the replacement is observable as a single step;
// element transfer is a shallow copy and cannot fail.
func (v *Vector[T]) reallocate(newCapacity int) {
	newBuf := make([]T, newCapacity)
	newSize := min(v.size, newCapacity)
	copy(newBuf, v.buf[:newSize])
	v.buf = newBuf
	v.size = newSize
}

// assign replaces the contents with a copy of src. Existing storage is
// reused when it can hold src; otherwise a block of exactly len(src) slots
// is allocated.
func (v *Vector[T]) assign(src []T) {
	count := len(src)
	if count <= len(v.buf) {
		copy(v.buf, src)
		if count < v.size {
			clear(v.buf[count:v.size]) // release references in the shrunk tail
		}
		v.size = count
		return
	}

	newBuf := make([]T, count)
	copy(newBuf, src)
	v.buf = newBuf
	v.size = count
}
