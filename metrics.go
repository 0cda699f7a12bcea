package dynarray

// Spare returns the number of allocated slots not currently holding a
// live element.
func (v *Vector[T]) Spare() int {
	return len(v.buf) - v.size
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 when no storage is allocated.
func (v *Vector[T]) Utilization() float64 {
	capacity := len(v.buf)
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Stats returns a snapshot of vector storage statistics.
func (v *Vector[T]) Stats() Stats {
	return Stats{
		Size:        v.size,
		Capacity:    len(v.buf),
		Spare:       v.Spare(),
		Utilization: v.Utilization(),
	}
}

// Stats contains statistical information about a vector's storage.
type Stats struct {
	Size        int     // Live elements
	Capacity    int     // Allocated slots
	Spare       int     // Allocated slots without a live element
	Utilization float64 // Ratio of live elements to allocated slots (0.0-1.0)
}
