package malloc

import "fmt"
import "errors"

// ErrorDegenerateheap is returned by Bootheap when the region left
// after aligning bounds and carving the reserved tail cannot hold
// even a single block.
var ErrorDegenerateheap = errors.New("malloc.degenerateheap")

// ErrorOutofMemory can be used by callers treating a failed Alloc
// as fatal.
var ErrorOutofMemory = errors.New("malloc.outofmemory")

// alignup round x up to the next multiple of align, align must be a
// power of 2.
func alignup(x, align int64) int64 {
	return (x + align - 1) &^ (align - 1)
}

// aligndown round x down to a multiple of align, align must be a
// power of 2.
func aligndown(x, align int64) int64 {
	return x &^ (align - 1)
}

// blocksizefor total block size needed to serve a payload of size
// bytes, never below Minblocksize so that the block can host
// free-list linkage and a footer once freed.
func blocksizefor(size int64) int64 {
	needed := alignup(Headersize+size, Alignment)
	if needed < Minblocksize {
		needed = Minblocksize
	}
	return needed
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
