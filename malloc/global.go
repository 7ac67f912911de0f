package malloc

import "github.com/prataprc/golog"
import humanize "github.com/dustin/go-humanize"
import s "github.com/prataprc/gosettings"

// Bootheap carve a heap out of RAM. The heap begins at kernelend,
// the first byte after static kernel data, and runs up to the top
// of RAM minus the "reserved" settings bytes, a region kept aside
// for a consumer outside this package. Returns
// ErrorDegenerateheap when nothing allocatable remains.
func Bootheap(ram []byte, kernelend int64, setts s.Settings) (*Heap, error) {
	reserved := setts.Int64("reserved")
	start, end := kernelend, int64(len(ram))-reserved
	h := Newheap(ram)
	if h.Init(start, end) == false {
		return nil, ErrorDegenerateheap
	}
	log.Infof(
		"malloc: boot heap [%v,%v), %v reserved at top of ram\n",
		start, end, humanize.Bytes(uint64(reserved)))
	return h, nil
}

// The process-wide heap. Registered explicitly by the startup
// routine via Setglobal, so that initialization order stays visible
// to the caller, rather than buried in package init.
var globalheap *Heap

// Setglobal register the heap backing the package level Malloc,
// Mallocaligned, Freeptr and Reallocptr convenience calls. Returns
// the same heap for chaining.
func Setglobal(h *Heap) *Heap {
	globalheap = h
	return h
}

// Globalheap registered via Setglobal, nil before boot.
func Globalheap() *Heap {
	return globalheap
}

// Malloc allocate from the global heap with default alignment.
func Malloc(size int64) (int64, bool) {
	return mustglobal().Alloc(size, Alignment)
}

// Mallocaligned allocate from the global heap, payload aligned to
// align bytes.
func Mallocaligned(size, align int64) (int64, bool) {
	return mustglobal().Alloc(size, align)
}

// Freeptr free a block allocated from the global heap.
func Freeptr(ptr int64) {
	mustglobal().Free(ptr)
}

// Reallocptr realloc a block allocated from the global heap.
func Reallocptr(ptr, size int64) (int64, bool) {
	return mustglobal().Realloc(ptr, size)
}

func mustglobal() *Heap {
	if globalheap == nil {
		panicerr("malloc: global heap not registered, call Setglobal")
	}
	return globalheap
}
