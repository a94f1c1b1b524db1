// Package conv provides panic-on-overflow integer narrowing helpers.
//
// State identifiers, offsets, and table sizes all flow between int (Go's
// natural indexing type) and uint32 (the compact on-the-wire width for
// State). Silent truncation on that boundary would corrupt a state
// identifier rather than fail loudly, so every narrowing conversion in this
// module goes through here.
package conv

import "math"

// IntToUint32 narrows n to uint32, panicking if n is negative or too large.
func IntToUint32(n int) uint32 {
	if n < 0 || uint64(n) > math.MaxUint32 {
		panic("conv: int out of uint32 range")
	}
	return uint32(n)
}

// Uint64ToUint32 narrows n to uint32, panicking on overflow.
func Uint64ToUint32(n uint64) uint32 {
	if n > math.MaxUint32 {
		panic("conv: uint64 out of uint32 range")
	}
	return uint32(n)
}

// AddUint32 returns a+b, panicking if the sum overflows uint32.
func AddUint32(a, b uint32) uint32 {
	sum := uint64(a) + uint64(b)
	return Uint64ToUint32(sum)
}
