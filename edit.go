package dynarray

// Add appends value, growing capacity if needed, and returns a pointer to
// the stored element. The pointer is valid until the next operation that
// grows, shrinks, or shifts the vector.
func (v *Vector[T]) Add(value T) *T {
	v.ensureCapacity(v.size + 1)
	v.buf[v.size] = value
	v.size++
	return &v.buf[v.size-1]
}

// AddRange appends the given elements in order with a single capacity
// check. Calling it with no elements is a no-op.
func (v *Vector[T]) AddRange(values ...T) {
	count := len(values)
	if count == 0 {
		return
	}

	v.ensureCapacity(v.size + count)
	copy(v.buf[v.size:], values)
	v.size += count
}

// Insert places value at index i, shifting the elements at [i, Size())
// one slot to the right, and returns a pointer to the stored element.
// i == Size() appends. Fails with ErrOutOfRange when i is outside
// [0, Size()].
func (v *Vector[T]) Insert(i int, value T) (*T, error) {
	if err := v.checkRange(i, true); err != nil {
		return nil, err
	}

	v.ensureCapacity(v.size + 1)
	v.shiftRight(i, 1)
	v.buf[i] = value
	v.size++
	return &v.buf[i], nil
}

// InsertRange places the given elements at index i in their given order,
// shifting the elements at [i, Size()) right by len(values), with a single
// capacity check. i == Size() appends. Fails with ErrOutOfRange when i is
// outside [0, Size()].
func (v *Vector[T]) InsertRange(i int, values ...T) error {
	if err := v.checkRange(i, true); err != nil {
		return err
	}

	count := len(values)
	if count == 0 {
		return nil
	}

	v.ensureCapacity(v.size + count)
	v.shiftRight(i, count)
	copy(v.buf[i:], values)
	v.size += count
	return nil
}

// RemoveAt deletes the element at index i, shifting the elements after it
// one slot to the left. Fails with ErrOutOfRange when i is outside
// [0, Size()).
func (v *Vector[T]) RemoveAt(i int) error {
	if err := v.checkRange(i, false); err != nil {
		return err
	}

	v.shiftLeft(i, 1)
	v.size--
	return nil
}

// RemoveRange deletes up to count elements starting at index i; a count
// reaching past the end removes through the end, and a non-positive count
// is a no-op. Fails with ErrOutOfRange when i is outside [0, Size()).
func (v *Vector[T]) RemoveRange(i, count int) error {
	if err := v.checkRange(i, false); err != nil {
		return err
	}

	if count <= 0 {
		return nil
	}
	if count > v.size-i {
		count = v.size - i
	}

	v.shiftLeft(i, count)
	v.size -= count
	return nil
}

// RemoveAll deletes every element for which pred returns true, keeping the
// remaining elements in their original relative order, and returns the
// number removed. Single compaction pass, no per-element shifting.
func (v *Vector[T]) RemoveAll(pred func(T) bool) int {
	write := 0
	for read := 0; read < v.size; read++ {
		if !pred(v.buf[read]) {
			if write != read {
				v.buf[write] = v.buf[read]
			}
			write++
		}
	}

	removed := v.size - write
	clear(v.buf[write:v.size]) // release references in the compacted tail
	v.size = write
	return removed
}

// Clear deletes every element and resets the size to zero. Capacity is
// retained for reuse.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.size])
	v.size = 0
}

// Resize sets the element count to newSize, zero-value-filling any new
// trailing slots. Shrinking deletes the trailing elements; capacity never
// shrinks. Negative sizes are treated as zero.
func (v *Vector[T]) Resize(newSize int) {
	var zero T
	v.ResizeFill(newSize, zero)
}

// ResizeFill sets the element count to newSize, filling any new trailing
// slots with copies of value. Shrinking deletes the trailing elements;
// capacity never shrinks. Negative sizes are treated as zero.
func (v *Vector[T]) ResizeFill(newSize int, value T) {
	if newSize < 0 {
		newSize = 0
	}

	switch {
	case newSize < v.size:
		clear(v.buf[newSize:v.size])
	case newSize > v.size:
		v.ensureCapacity(newSize)
		for i := v.size; i < newSize; i++ {
			v.buf[i] = value
		}
	}

	v.size = newSize
}

// shiftRight moves the elements at [i, size) up by count slots, walking
// from the highest index down so overlapping ranges stay intact. The
// caller overwrites the vacated slots and adjusts size.
func (v *Vector[T]) shiftRight(i, count int) {
	for src := v.size - 1; src >= i; src-- {
		v.buf[src+count] = v.buf[src]
	}
}

// shiftLeft moves the elements at [i+count, size) down by count slots,
// walking from the lowest index up, then zeroes the vacated tail so stale
// references are released. The caller adjusts size.
func (v *Vector[T]) shiftLeft(i, count int) {
	moveCount := v.size - i - count
	for k := 0; k < moveCount; k++ {
		v.buf[i+k] = v.buf[i+count+k]
	}
	clear(v.buf[v.size-count : v.size])
}
