package makruk

import "math/bits"

// Bitboards are plain uint64 sets of squares, bit 0 = a1.

const (
	fileABB uint64 = 0x0101010101010101
	fileHBB uint64 = fileABB << 7

	rank1BB uint64 = 0xFF
	rank3BB uint64 = rank1BB << (8 * 2)
	rank6BB uint64 = rank1BB << (8 * 5)
)

// Bit returns a bitboard with the given square bit set.
func Bit(sq Square) uint64 { return 1 << uint64(sq) }

func bb(sq Square) uint64 { return Bit(sq) }

// rankBB returns the bitboard of a whole rank (0-7).
func rankBB(r int) uint64 { return rank1BB << uint(8*r) }

// fileBB returns the bitboard of a whole file (0-7).
func fileBB(f int) uint64 { return fileABB << uint(f) }

// promotionRankBB is the relative sixth rank, where pawns promote.
func promotionRankBB(c Color) uint64 {
	if c == White {
		return rank6BB
	}
	return rank3BB
}

// lsb returns the lowest set square of a non-empty bitboard.
func lsb(mask uint64) Square { return Square(bits.TrailingZeros64(mask)) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) Square {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return Square(idx)
}

// PopCount returns the number of set squares.
func PopCount(mask uint64) int { return bits.OnesCount64(mask) }

func popCount(mask uint64) int { return PopCount(mask) }

// moreThanOne reports whether the bitboard has at least two set squares.
func moreThanOne(mask uint64) bool { return mask&(mask-1) != 0 }

// aligned reports whether s1, s2 and s3 lie on one rank, file or diagonal.
func aligned(s1, s2, s3 Square) bool { return lineBB[s1][s2]&bb(s3) != 0 }

// between returns the squares strictly between s1 and s2 on their shared
// rank, file or diagonal, or 0 if they share none.
func between(s1, s2 Square) uint64 { return betweenBB[s1][s2] }
