package malloc

import "unsafe"

import "github.com/prataprc/golog"
import humanize "github.com/dustin/go-humanize"
import "github.com/bnclabs/goheap/api"

// Heap manages a single contiguous region of memory as a sequence
// of variable sized blocks, with segregated free lists and
// immediate coalescing. The region is always an exact partition
// into blocks, no gaps and no overlaps, after every operation.
type Heap struct {
	mem []byte // backing region, offsets index into this

	// heap bounds within mem, aligned half-open range.
	start int64
	end   int64

	// free-list store, one list head per size class.
	freelists [Nclasses]int64
	freemap   uint32 // bit set iff class list is non-empty

	// counters, allocated+available == end-start always.
	allocated int64
	available int64
	n_allocs  int64
	n_frees   int64
	n_splits  int64
	n_merges  int64

	initialized bool
}

// Newheap over a backing region. The heap is unusable until Init
// carves it, every operation before that fails with a sentinel.
func Newheap(mem []byte) *Heap {
	if int64(len(mem)) > Maxheapsize {
		panicerr("heap region cannot exceed %v bytes", Maxheapsize)
	}
	h := &Heap{mem: mem}
	for i := range h.freelists {
		h.freelists[i] = api.Nilptr
	}
	return h
}

// Init the heap over [start,end) within the backing region. Bounds
// are aligned inward, the whole region becomes one free block. A
// degenerate region, too small to hold a single block once aligned,
// leaves the heap uninitialized and returns false.
func (h *Heap) Init(start, end int64) bool {
	if start < 0 {
		start = 0
	}
	if end > int64(len(h.mem)) {
		end = int64(len(h.mem))
	}
	start, end = alignup(start, Alignment), aligndown(end, Alignment)
	if end-start < Minblocksize {
		log.Errorf("malloc: degenerate region [%v,%v)\n", start, end)
		h.initialized = false
		return false
	}
	h.start, h.end = start, end
	for i := range h.freelists {
		h.freelists[i] = api.Nilptr
	}
	h.freemap = 0
	h.allocated, h.available = 0, end-start
	h.n_allocs, h.n_frees, h.n_splits, h.n_merges = 0, 0, 0, 0

	h.sethead(start, encodeheader(end-start, true, false))
	h.writefooter(start)
	h.insertfree(start)
	h.initialized = true
	log.Infof(
		"malloc: heap of %v over [%v,%v)\n",
		humanize.Bytes(uint64(end-start)), start, end)
	return true
}

// Isinitialized return whether Init has succeeded on this heap.
func (h *Heap) Isinitialized() bool {
	return h.initialized
}

//---- operations

// Alloc implement api.Mallocer{} interface. Block size is the
// aligned sum of header and payload, floored to Minblocksize so
// the block can host free-list linkage once freed. align below
// Alignment is bumped up, larger alignments must be powers of 2.
func (h *Heap) Alloc(size, align int64) (int64, bool) {
	if h.initialized == false || size <= 0 || size > Maxheapsize {
		return api.Nilptr, false
	}
	if align < Alignment {
		align = Alignment
	} else if align&(align-1) != 0 {
		panicerr("align %v is not a power of 2", align)
	}
	needed := blocksizefor(size)
	request := needed
	if align > Alignment {
		// over-allocate, carvealigned() trims the leading gap.
		request = needed + align + Minblocksize
	}
	b := h.findfit(request)
	if b == api.Nilptr {
		return api.Nilptr, false
	}
	h.removefree(b)
	if align > Alignment {
		b = h.carvealigned(b, align)
	}
	h.split(b, needed)
	h.setfree(b, false)
	bsize := h.blocksize(b)
	if next := b + bsize; next < h.end {
		h.setprevfree(next, false)
	}
	h.allocated += bsize
	h.available -= bsize
	h.n_allocs++
	return b + Headersize, true
}

// Free implement api.Mallocer{} interface. Free on api.Nilptr is a
// no-op, mirroring conventional free(NULL) semantics. Coalesces
// with both physical neighbours before re-entering a free list.
func (h *Heap) Free(ptr int64) {
	if ptr == api.Nilptr || h.initialized == false {
		return
	}
	b := ptr - Headersize
	if b < h.start || b >= h.end {
		panicerr("malloc.free: pointer %v outside heap", ptr)
	} else if h.isfree(b) {
		panicerr("malloc.free: double free at %v", ptr)
	}
	bsize := h.blocksize(b)
	h.allocated -= bsize
	h.available += bsize
	h.n_frees++

	b = h.coalesce(b)
	h.setfree(b, true)
	h.writefooter(b)
	if next := b + h.blocksize(b); next < h.end {
		h.setprevfree(next, true)
	}
	h.insertfree(b)
}

// Realloc implement api.Mallocer{} interface. ptr api.Nilptr
// behaves as Alloc, size zero behaves as Free. A block already
// large enough is returned unchanged, no shrink-split is attempted.
// Otherwise a fresh block is allocated, payload copied, old block
// freed; when allocation fails the old block is untouched and the
// call returns api.Nilptr with ok false.
func (h *Heap) Realloc(ptr, size int64) (int64, bool) {
	if h.initialized == false {
		return api.Nilptr, false
	}
	if ptr == api.Nilptr {
		return h.Alloc(size, Alignment)
	}
	if size == 0 {
		h.Free(ptr)
		return api.Nilptr, true
	}
	b := ptr - Headersize
	oldpayload := h.blocksize(b) - Headersize
	if size <= oldpayload {
		return ptr, true
	}
	newptr, ok := h.Alloc(size, Alignment)
	if ok == false {
		return api.Nilptr, false
	}
	copy(h.mem[newptr:newptr+oldpayload], h.mem[ptr:ptr+oldpayload])
	h.Free(ptr)
	return newptr, true
}

//---- split/coalesce engine

// split shrink block to `needed` bytes and carve the remainder
// into a new free block. When the remainder cannot form a valid
// block the caller keeps the whole block, internal fragmentation
// bounded by Minblocksize-1 bytes. Call only on blocks off the
// free lists and about to be handed out, the remainder's prevfree
// is stamped accordingly.
func (h *Heap) split(b, needed int64) {
	size := h.blocksize(b)
	if size-needed < Minblocksize {
		return
	}
	h.setblocksize(b, needed)
	rem := b + needed
	h.sethead(rem, encodeheader(size-needed, true, false))
	h.writefooter(rem)
	h.insertfree(rem)
	if next := rem + (size - needed); next < h.end {
		h.setprevfree(next, true)
	}
	h.n_splits++
}

// coalesce absorb free physical neighbours into the block being
// freed, returning the surviving block. Forward merge first, then
// backward through the predecessor's footer, so one pass can absorb
// both neighbours. The caller stamps the surviving block's header
// and footer.
func (h *Heap) coalesce(b int64) int64 {
	size := h.blocksize(b)
	if next := b + size; next < h.end && h.isfree(next) {
		h.removefree(next)
		size += h.blocksize(next)
		h.setblocksize(b, size)
		h.n_merges++
	}
	if h.isprevfree(b) {
		prevsize := h.prevfooter(b)
		prev := b - prevsize
		h.removefree(prev)
		h.setblocksize(prev, prevsize+size)
		b = prev
		h.n_merges++
	}
	return b
}

// carvealigned adjust a block, freshly off the free lists, so that
// its payload lands on an align boundary. The leading gap becomes
// a free block of its own, the gap is forced to at least
// Minblocksize by Alloc's over-request. Both neighbours of the
// original block are allocated, the gap cannot coalesce.
func (h *Heap) carvealigned(b, align int64) int64 {
	if (b+Headersize)%align == 0 {
		return b
	}
	size := h.blocksize(b)
	payload := alignup(b+Headersize+Minblocksize, align)
	gap := payload - Headersize - b
	h.sethead(b, encodeheader(gap, true, h.isprevfree(b)))
	h.writefooter(b)
	h.insertfree(b)
	nb := b + gap
	h.sethead(nb, encodeheader(size-gap, false, true))
	return nb
}

//---- statistics and accessors

// Bytes payload of an allocated block, usable by the application.
func (h *Heap) Bytes(ptr int64) []byte {
	b := ptr - Headersize
	return h.mem[ptr : b+h.blocksize(b)]
}

// Allocated implement api.Mallocer{} interface.
func (h *Heap) Allocated() int64 {
	return h.allocated
}

// Available implement api.Mallocer{} interface.
func (h *Heap) Available() int64 {
	return h.available
}

// Bounds implement api.Mallocer{} interface.
func (h *Heap) Bounds() (start, end int64) {
	return h.start, h.end
}

// Info implement api.Mallocer{} interface.
func (h *Heap) Info() (capacity, allocated, available, overhead int64) {
	self := int64(unsafe.Sizeof(*h))
	return h.end - h.start, h.allocated, h.available, self
}

// Opcounts number of allocations, frees, splits and merges served
// since Init.
func (h *Heap) Opcounts() (allocs, frees, splits, merges int64) {
	return h.n_allocs, h.n_frees, h.n_splits, h.n_merges
}

// Utilization implement api.Mallocer{} interface, per class lower
// bound size and the class's share of available memory.
func (h *Heap) Utilization() ([]int, []float64) {
	sizes, shares := make([]int, 0), make([]float64, 0)
	for class := 0; class < Nclasses; class++ {
		freebytes := int64(0)
		for b := h.freelists[class]; b != api.Nilptr; b = h.nextlink(b) {
			freebytes += h.blocksize(b)
		}
		if freebytes > 0 && h.available > 0 {
			sizes = append(sizes, int(classsize(class)))
			shares = append(shares, float64(freebytes)/float64(h.available)*100)
		}
	}
	return sizes, shares
}
