package gost_ecb

import (
	"math/bits"
)

// -----------------------------------------------------------------------------

const (
	roundRotation = 11
)

// -----------------------------------------------------------------------------

// sBox holds the substitution table. Row i is applied to the i-th nibble of a word, counting from
// the least significant one. Every row is a permutation of 0..15.
var sBox = [8][16]uint32{
	{4, 10, 9, 2, 13, 8, 0, 14, 6, 11, 1, 12, 7, 15, 5, 3},
	{14, 11, 4, 12, 6, 13, 15, 10, 2, 3, 8, 1, 0, 7, 5, 9},
	{5, 8, 1, 13, 10, 3, 4, 2, 14, 15, 12, 7, 6, 0, 9, 11},
	{7, 13, 10, 1, 0, 8, 9, 15, 14, 4, 6, 12, 11, 2, 5, 3},
	{6, 12, 7, 1, 5, 15, 13, 8, 4, 10, 9, 14, 0, 3, 11, 2},
	{4, 11, 10, 0, 7, 2, 1, 13, 3, 6, 8, 5, 9, 12, 15, 14},
	{13, 11, 4, 1, 3, 15, 5, 9, 0, 10, 14, 7, 6, 8, 2, 12},
	{1, 15, 13, 0, 5, 7, 10, 4, 9, 2, 14, 3, 11, 6, 8, 12},
}

// -----------------------------------------------------------------------------

func substitute(value uint32) uint32 {
	result := uint32(0)
	for idx := 0; idx < 8; idx++ {
		shift := uint(4 * idx)
		result |= sBox[idx][(value>>shift)&0x0F] << shift
	}
	return result
}

func rotateLeft(value uint32, shift uint) uint32 {
	return bits.RotateLeft32(value, int(shift&31))
}

// round applies the keyed function to the left half and mixes it into the right one. The left half
// is returned untouched; swapping the halves between rounds is up to the caller.
func round(left uint32, right uint32, roundKey uint32) (uint32, uint32) {
	temp := substitute(left + roundKey)
	temp = rotateLeft(temp, roundRotation)
	return left, right ^ temp
}
