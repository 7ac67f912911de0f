package malloc

import s "github.com/prataprc/gosettings"

// Alignment guaranteed for every payload, also the granularity of
// block sizes. Block sizes never use their two low bits, the header
// codec stores the status bits there.
const Alignment = int64(8)

// Headersize per-block book-keeping, prefixed to every block.
const Headersize = int64(8)

// Footersize trailing copy of the block size, present only on free
// blocks.
const Footersize = int64(8)

// Minblocksize smallest valid block: header, two free-list links
// and the footer. Every allocation is rounded up to at least this.
const Minblocksize = int64(32)

// Nclasses number of power-of-two size classes. Class 0 holds free
// blocks of [Minblocksize, 2*Minblocksize) bytes, the top class is
// open ended.
const Nclasses = 28

// Maxheapsize maximum size of a managed region.
const Maxheapsize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Reservedsize default number of bytes carved out at the top of RAM
// by Bootheap, for a consumer outside this package.
const Reservedsize = int64(16 * 1024 * 1024)

// Defaultsettings for heap instances.
//
// "reserved" (int64, default: Reservedsize)
//		Bytes at the top of RAM left out of the heap by Bootheap.
//		The region is handed to an unrelated consumer, this package
//		never touches it.
func Defaultsettings() s.Settings {
	return s.Settings{
		"reserved": Reservedsize,
	}
}
