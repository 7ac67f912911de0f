package malloc

import "github.com/bnclabs/goheap/api"

// Validate walk the heap block by block and cross-check every
// invariant, panics on the first violation. Costs a full scan of
// the region's block sequence plus the free lists, meant for tests
// and tooling, not for the allocation path.
//
// Checked invariants:
//   - every byte in [start,end) belongs to exactly one block.
//   - allocated+available counters match the walked blocks.
//   - prevfree bit mirrors the preceding block's free status.
//   - no two physically adjacent free blocks.
//   - every free block's footer equals its header size.
//   - free-list membership: every free block in the walk is on the
//     list of its exact class, bitmap bit set iff list non-empty.
func (h *Heap) Validate() {
	if h.initialized == false {
		panicerr("malloc.validate: heap not initialized")
	}
	onlist := make(map[int64]bool)
	for class := 0; class < Nclasses; class++ {
		n := 0
		for b := h.freelists[class]; b != api.Nilptr; b = h.nextlink(b) {
			if h.isfree(b) == false {
				panicerr("malloc.validate: allocated block %v on free list", b)
			} else if x := sizeclass(h.blocksize(b)); x != class {
				panicerr("malloc.validate: block %v on class %v, expected %v",
					b, class, x)
			}
			onlist[b] = true
			n++
		}
		bit := (h.freemap >> uint(class)) & 1
		if (n > 0) != (bit == 1) {
			panicerr("malloc.validate: class %v bitmap bit %v with %v blocks",
				class, bit, n)
		}
	}

	allocated, available, prevfree := int64(0), int64(0), false
	for b := h.start; b < h.end; {
		size, free, prevbit := decodeheader(h.head(b))
		if size < Minblocksize || size%Alignment != 0 {
			panicerr("malloc.validate: block %v invalid size %v", b, size)
		} else if b+size > h.end {
			panicerr("malloc.validate: block %v overruns heap end", b)
		} else if prevbit != prevfree {
			panicerr("malloc.validate: block %v prevfree %v, expected %v",
				b, prevbit, prevfree)
		}
		if free {
			if prevfree {
				panicerr("malloc.validate: adjacent free blocks at %v", b)
			} else if x := h.prevfooter(b + size); x != size {
				panicerr("malloc.validate: block %v footer %v, size %v",
					b, x, size)
			} else if onlist[b] == false {
				panicerr("malloc.validate: free block %v missing from lists", b)
			}
			delete(onlist, b)
			available += size
		} else {
			allocated += size
		}
		prevfree = free
		b += size
	}
	if len(onlist) != 0 {
		panicerr("malloc.validate: %v stale free-list entries", len(onlist))
	}
	if allocated != h.allocated {
		panicerr("malloc.validate: allocated %v, counter %v",
			allocated, h.allocated)
	} else if available != h.available {
		panicerr("malloc.validate: available %v, counter %v",
			available, h.available)
	} else if total := allocated + available; total != h.end-h.start {
		panicerr("malloc.validate: partition %v, capacity %v",
			total, h.end-h.start)
	}
}
