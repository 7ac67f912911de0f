package api

// Nilptr is the null heap pointer. Heap pointers are byte offsets
// into the region handed over to the allocator, hence offset zero is
// a valid pointer and cannot double up as null.
const Nilptr = int64(-1)

// Mallocer interface for custom memory management over a single
// contiguous region of memory.
type Mallocer interface {
	// Alloc a block of `size` bytes, payload aligned to `align`
	// bytes. Returned pointer is a byte offset to the block's
	// payload, Nilptr when the request cannot be satisfied.
	Alloc(size, align int64) (ptr int64, ok bool)

	// Free an allocated block. Free on Nilptr is a no-op.
	Free(ptr int64)

	// Realloc block to `size` bytes. Realloc on Nilptr behaves as
	// Alloc, size zero behaves as Free. If allocation fails the
	// original block is left untouched.
	Realloc(ptr int64, size int64) (newptr int64, ok bool)

	// Allocated number of bytes presently allocated, including
	// per-block book-keeping.
	Allocated() int64

	// Available number of bytes free with the allocator.
	Available() int64

	// Bounds of the managed region, as half-open offset range.
	Bounds() (start, end int64)

	// Info of memory accounting for this allocator.
	Info() (capacity, allocated, available, overhead int64)

	// Utilization map of size-class and its share of free memory.
	Utilization() ([]int, []float64)
}
