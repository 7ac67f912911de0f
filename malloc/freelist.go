package malloc

import "encoding/binary"

import "github.com/bnclabs/goheap/api"
import "github.com/bnclabs/goheap/lib"

// Free blocks of a class are threaded onto a doubly linked list,
// the links live inside the free block's own payload so free-list
// book-keeping costs no memory of its own. Links are byte offsets
// into the region, api.Nilptr terminated. A bitmap word tracks
// which classes are non-empty, bit set iff the class list has at
// least one block.
const (
	linknext = Headersize
	linkprev = Headersize + 8
)

func (h *Heap) nextlink(b int64) int64 {
	return int64(binary.LittleEndian.Uint64(h.mem[b+linknext:]))
}

func (h *Heap) prevlink(b int64) int64 {
	return int64(binary.LittleEndian.Uint64(h.mem[b+linkprev:]))
}

func (h *Heap) setnextlink(b, next int64) {
	binary.LittleEndian.PutUint64(h.mem[b+linknext:], uint64(next))
}

func (h *Heap) setprevlink(b, prev int64) {
	binary.LittleEndian.PutUint64(h.mem[b+linkprev:], uint64(prev))
}

// insertfree push block at the head of its class list, LIFO. The
// most recently freed block of a class is reused first.
func (h *Heap) insertfree(b int64) {
	class := sizeclass(h.blocksize(b))
	head := h.freelists[class]
	h.setnextlink(b, head)
	h.setprevlink(b, api.Nilptr)
	if head != api.Nilptr {
		h.setprevlink(head, b)
	}
	h.freelists[class] = b
	h.freemap |= 1 << uint(class)
}

// removefree splice block out of its class list using the block's
// own stored links, clear the bitmap bit when the list drains.
func (h *Heap) removefree(b int64) {
	class := sizeclass(h.blocksize(b))
	next, prev := h.nextlink(b), h.prevlink(b)
	if prev == api.Nilptr {
		h.freelists[class] = next
	} else {
		h.setnextlink(prev, next)
	}
	if next != api.Nilptr {
		h.setprevlink(next, prev)
	}
	if h.freelists[class] == api.Nilptr {
		h.freemap &^= 1 << uint(class)
	}
}

// findfit locate a free block of at least `needed` bytes. Blocks in
// the exact class can be smaller than needed, the class spans a
// size range, so that list is first-fit scanned. Every block in a
// higher class is guaranteed sufficient and its head is taken
// as-is. Returns api.Nilptr when no class qualifies.
func (h *Heap) findfit(needed int64) int64 {
	class := sizeclass(needed)
	for b := h.freelists[class]; b != api.Nilptr; b = h.nextlink(b) {
		if h.blocksize(b) >= needed {
			return b
		}
	}
	mask := lib.Bit32(h.freemap) & (lib.Bit32(0xffffffff) << uint(class+1))
	if bit := mask.Ffs(); bit >= 0 {
		return h.freelists[bit]
	}
	return api.Nilptr
}
