// Package malloc implements a general purpose memory allocator over
// a single contiguous region of memory, with a limited scope:
//
//   - Types and Functions exported by this package are not thread
//     safe. On a multi-core target wrap every call in an external
//     mutual-exclusion, the allocator never blocks or yields.
//   - The region is handed over once, at boot, and is managed for
//     the lifetime of the process. There is no fallback allocator
//     to borrow memory from when the region runs out.
//   - Pointers returned by this package are byte offsets into the
//     managed region, so that the same code can manage a host test
//     buffer or a physical memory window. Offset Nilptr (-1) is the
//     null pointer.
//   - Payloads are always 8-byte aligned. Larger power-of-2
//     alignments are honoured by over-allocating and carving the
//     leading gap into a separate free block.
//
// The region is carved into blocks, each prefixed with a single
// 8-byte header word encoding the block size and two status bits.
// Free blocks carry their size again in a trailing footer and are
// threaded onto one of Nclasses segregated free lists, using the
// block's own payload for linkage. A bitmap of non-empty classes
// bounds every allocation to a bit-scan, a list operation and at
// most one split. Freeing coalesces with both neighbours
// immediately, the forward neighbour by address arithmetic and the
// backward neighbour through its footer.
package malloc
