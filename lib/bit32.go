package lib

// Bit32 alias for uint32, provides bit twiddling methods on 32-bit number.
type Bit32 uint32

func (b Bit32) Ones() int8 {
	b = b - ((b >> 1) & 0x55555555)
	b = (b & 0x33333333) + ((b >> 2) & 0x33333333)
	return int8((((b + (b >> 4)) & 0x0F0F0F0F) * 0x01010101) >> 24)
}

func (b Bit32) Zeros() int8 {
	return 32 - b.Ones()
}

// Ffs find the first set bit, starting from the least significant
// position. Return -1 when no bits are set.
func (b Bit32) Ffs() int8 {
	if b == 0 {
		return -1
	}
	return ((b & -b) - 1).Ones()
}

// Fls find the last set bit, starting from the least significant
// position. Return -1 when no bits are set.
func (b Bit32) Fls() int8 {
	if b == 0 {
		return -1
	}
	b |= b >> 1
	b |= b >> 2
	b |= b >> 4
	b |= b >> 8
	b |= b >> 16
	return b.Ones() - 1
}
