// Package bitutil implements helpful bit utilities used in move generation,
// move execution (atomic explosions touch several bitboards per capture),
// and terminal evaluation (material counts).
package bitutil

// BitscanMagic forms indices for the bitScanLookup array.
const BitscanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup is a precalculated lookup table of LSB indices for 64-bit
// unsigned integers.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// BitScan returns the index of the Least Significant Bit (LSB) within the
// bitboard. bitboard&-bitboard gives the LSB which is then run through the
// hashing scheme to index the lookup table.
//
// NOTE: BitScan returns 63 for the empty bitboard; callers that need to
// distinguish "no bits set" should check the bitboard first (see PopLSB).
func BitScan(bitboard uint64) int { return bitScanLookup[bitboard&-bitboard*BitscanMagic>>58] }

// PopLSB removes (pops) the least significant bit from the bitboard and
// returns its index. Returns -1 for an empty bitboard instead of mutating it.
func PopLSB(bitboard *uint64) int {
	if *bitboard == 0 {
		return -1
	}

	lsb := BitScan(*bitboard)
	*bitboard &= *bitboard - 1
	return lsb
}

// CountBits returns the number of bits set within the bitboard.
func CountBits(bitboard uint64) int {
	var cnt int
	for bitboard > 0 {
		cnt++
		bitboard &= bitboard - 1
	}
	return cnt
}

// Squares returns the indices of every set bit in the bitboard, in ascending
// order. Used by the atomic explosion step to enumerate the 3x3 blast block.
func Squares(bitboard uint64) []int {
	squares := make([]int, 0, CountBits(bitboard))
	for bitboard > 0 {
		squares = append(squares, PopLSB(&bitboard))
	}
	return squares
}

// NeighborMask builds the 3x3 block of squares centered on square (the
// center itself included), clipped to the board edges. This is the blast
// radius used by the atomic explosion rule in package apply.
func NeighborMask(square int) uint64 {
	file, rank := square%8, square/8

	var mask uint64
	for df := -1; df <= 1; df++ {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			r := rank + dr
			if r < 0 || r > 7 {
				continue
			}
			mask |= 1 << (r*8 + f)
		}
	}
	return mask
}
