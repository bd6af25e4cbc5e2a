package mathutil

import "unsafe"

// Mask returns a value with the low 'n' bits set.
// For n >= 64 all bits are set.
func Mask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	if n <= 0 {
		return 0
	}
	return 1<<uint(n) - 1
}

// Bit returns a value with only bit 'pos' set.
func Bit(pos int) uint64 {
	return 1 << uint(pos)
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}
