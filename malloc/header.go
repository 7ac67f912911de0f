package malloc

import "encoding/binary"

// Every block starts with one 8-byte word packing the block size
// and two status bits. Sizes are multiples of Alignment, leaving
// bits 0-1 free for the flags:
//
//	bit 0: block is free, threaded on a free list.
//	bit 1: the block physically preceding this one is free. The
//	       predecessor's bounds are otherwise unknowable without a
//	       scan, its footer is reachable only when this bit is set.
const (
	blkfree     = uint64(0x1)
	blkprevfree = uint64(0x2)
	blkflags    = blkfree | blkprevfree
)

// encodeheader pack size and status bits into a header word. Pure
// bit layer, no failure modes.
func encodeheader(size int64, free, prevfree bool) (word uint64) {
	word = uint64(size)
	if free {
		word |= blkfree
	}
	if prevfree {
		word |= blkprevfree
	}
	return word
}

// decodeheader unpack a header word.
func decodeheader(word uint64) (size int64, free, prevfree bool) {
	size = int64(word &^ blkflags)
	return size, (word & blkfree) != 0, (word & blkprevfree) != 0
}

//---- block accessors, `b` is the offset of a block's header word.

func (h *Heap) head(b int64) uint64 {
	return binary.LittleEndian.Uint64(h.mem[b:])
}

func (h *Heap) sethead(b int64, word uint64) {
	binary.LittleEndian.PutUint64(h.mem[b:], word)
}

func (h *Heap) blocksize(b int64) int64 {
	size, _, _ := decodeheader(h.head(b))
	return size
}

// setblocksize preserving the status bits.
func (h *Heap) setblocksize(b, size int64) {
	h.sethead(b, uint64(size)|(h.head(b)&blkflags))
}

func (h *Heap) isfree(b int64) bool {
	return (h.head(b) & blkfree) != 0
}

func (h *Heap) setfree(b int64, free bool) {
	if free {
		h.sethead(b, h.head(b)|blkfree)
	} else {
		h.sethead(b, h.head(b)&^blkfree)
	}
}

func (h *Heap) isprevfree(b int64) bool {
	return (h.head(b) & blkprevfree) != 0
}

func (h *Heap) setprevfree(b int64, prevfree bool) {
	if prevfree {
		h.sethead(b, h.head(b)|blkprevfree)
	} else {
		h.sethead(b, h.head(b)&^blkprevfree)
	}
}

// writefooter stamp the block's size into its last 8 bytes. Valid
// only while the block is free, allocated payloads overwrite it.
func (h *Heap) writefooter(b int64) {
	size := h.blocksize(b)
	binary.LittleEndian.PutUint64(h.mem[b+size-Footersize:], uint64(size))
}

// prevfooter size of the physically preceding block, read from the
// footer that ends right before `b`. Valid only when isprevfree(b).
func (h *Heap) prevfooter(b int64) int64 {
	return int64(binary.LittleEndian.Uint64(h.mem[b-Footersize:]))
}
