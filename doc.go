// Package dynarray implements a generic, contiguous, growable sequence
// container (dynamic array) for Go.
//
// # Overview
//
// A Vector owns a single contiguous block of element slots and tracks a
// logical size alongside the allocated capacity. Compared to a plain
// slice it gives explicit control over the storage lifecycle:
//
//   - Manual capacity management (Reserve, Shrink) with a 1.5x growth factor
//   - Checked element access that reports out-of-range indices as errors
//   - Positional insertion and removal with defined shifting semantics
//   - Stable linear-time bulk removal (RemoveAll)
//   - Deep-copy, move, and swap operations with value semantics
//
// # Basic Usage
//
//	v := dynarray.Of(1, 2, 3)
//	v.Add(4)
//	v.AddRange(5, 6)
//
//	x, err := v.At(2)       // 3, nil
//	_, err = v.At(99)       // dynarray.ErrOutOfRange
//
//	v.Reserve(100)          // grow capacity up front
//	v.Shrink()              // trim capacity back to the element count
//
// Lookups that depend on element equality or ordering are package-level
// functions so they can constrain the element type:
//
//	i := dynarray.Find(v, 4)            // first index of 4, or IndexNone
//	ok := dynarray.Remove(v, 4)         // remove first 4, report success
//	c := dynarray.Compare(v, other)     // lexicographic order
//
// # Thread Safety
//
// Vector is not synchronized. Sharing one across concurrent mutators
// without external locking is undefined.
//
// # Growth and Memory
//
// Growth allocates a fresh block of max(needed, capacity*1.5) slots,
// copies the live elements, and drops the old block in one step; element
// transfer cannot fail, so a vector is never observed in a torn state.
// Slots past the logical size always hold the zero value of the element
// type, so removing or clearing elements releases whatever they
// referenced to the garbage collector.
//
// # Errors
//
// Indexed access and positional insertion or removal outside the
// permitted range fail with ErrOutOfRange. Lookup misses are reported
// with the IndexNone sentinel or a false return, never as an error.
// RemoveRange treats an over-long count as "through the end".
//
// # Observability
//
// Stats returns a point-in-time snapshot of size, capacity, spare slots,
// and utilization:
//
//	stats := v.Stats()
//	fmt.Printf("Utilization: %.2f%%\n", stats.Utilization * 100)
package dynarray
