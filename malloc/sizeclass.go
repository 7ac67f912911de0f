package malloc

import "math/bits"

// log2(Minblocksize), class 0 starts at Minblocksize.
const minblockshift = 5

// sizeclass map a block size to one of Nclasses power-of-two
// classes. Class c holds sizes [Minblocksize<<c, Minblocksize<<c+1),
// the top class is clamped open ended. Monotonic in size.
//
// A class is a RANGE, not an exact size: a block found in
// sizeclass(n) is only guaranteed to be >= the class lower bound,
// not >= n. findfit() accounts for that.
func sizeclass(size int64) int {
	class := bits.Len64(uint64(size)) - 1 - minblockshift
	if class < 0 {
		return 0
	} else if class >= Nclasses {
		return Nclasses - 1
	}
	return class
}

// classsize lower bound of a size class.
func classsize(class int) int64 {
	return Minblocksize << uint(class)
}
