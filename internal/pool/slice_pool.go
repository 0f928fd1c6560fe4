package pool

import "sync"

// float64SlicePool reuses accumulation buffers across heuristic scans.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves an empty float64 slice from the pool with at
// least the requested capacity.
//
// The returned slice has length zero and is intended for append-style
// accumulation. The caller must call the returned cleanup function (typically
// with defer) to return the slice to the pool, and must copy any data it
// wants to retain before doing so.
//
// Parameters:
//   - capacity: Minimum capacity of the returned slice
//
// Returns:
//   - []float64: An empty slice with cap >= capacity
//   - func(): Cleanup function returning the slice to the pool
func GetFloat64Slice(capacity int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]float64, 0, capacity)
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
