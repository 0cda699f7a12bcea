package dynarray

import (
	"fmt"
	"testing"
)

// BenchmarkAppend compares vector appends against builtin slice append
func BenchmarkAppend(b *testing.B) {
	const n = 1000

	b.Run("Vector", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < n; j++ {
				v.Add(j)
			}
		}
	})

	b.Run("Vector/Reserved", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v := New[int]()
			v.Reserve(n)
			for j := 0; j < n; j++ {
				v.Add(j)
			}
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < n; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}

// BenchmarkInsertFront measures the worst-case shift path
func BenchmarkInsertFront(b *testing.B) {
	const n = 1000

	for i := 0; i < b.N; i++ {
		v := New[int]()
		v.Reserve(n)
		for j := 0; j < n; j++ {
			if _, err := v.Insert(0, j); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkRemoveAll compares single-pass compaction against repeated RemoveAt
func BenchmarkRemoveAll(b *testing.B) {
	const n = 1000
	even := func(x int) bool { return x%2 == 0 }

	b.Run("Compaction", func(b *testing.B) {
		src := New[int]()
		for j := 0; j < n; j++ {
			src.Add(j)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			v := src.Clone()
			b.StartTimer()
			v.RemoveAll(even)
		}
	})

	b.Run("RemoveAtLoop", func(b *testing.B) {
		src := New[int]()
		for j := 0; j < n; j++ {
			src.Add(j)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			v := src.Clone()
			b.StartTimer()
			for k := 0; k < v.Size(); {
				x, _ := v.At(k)
				if even(x) {
					_ = v.RemoveAt(k)
				} else {
					k++
				}
			}
		}
	})
}

// BenchmarkFind measures linear lookup at several sizes
func BenchmarkFind(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		v := New[int]()
		for j := 0; j < n; j++ {
			v.Add(j)
		}
		b.Run(fmt.Sprintf("size-%d", n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if Find(v, n-1) == IndexNone {
					b.Fatal("missing element")
				}
			}
		})
	}
}
