package makruk

import "math/bits"

// Precomputed attack masks for the step-moving pieces. Every Makruk piece
// except the rook moves a single step, so one table lookup per piece type
// answers "which squares does a piece on sq attack".
var knightAttacks [64]uint64
var kingAttacks [64]uint64
var metAttacks [64]uint64

// Color-dependent step attacks: pawns capture diagonally forward, and the
// khon steps to the four diagonals or straight forward.
var pawnAttacks [2][64]uint64
var khonAttacks [2][64]uint64

// rookPseudo[sq] is the rook attack set on an empty board.
var rookPseudo [64]uint64

// Masks and lookup tables for rook slider attacks (software pext indexing).
var rookMask [64]uint64
var rookAttTable [64][]uint64

// lineBB[s1][s2] is the full rank/file/diagonal through s1 and s2 (both
// included), or 0 if they share no line. betweenBB[s1][s2] is the open
// segment strictly between them.
var lineBB [64][64]uint64
var betweenBB [64][64]uint64

// All tables are built exactly once, before any position can exist.
// The cuckoo keys are derived from the zobrist tables, so the order of
// these calls matters.
func init() {
	initDistance()
	initStepAttacks()
	initLines()
	initSliderTable()
	initZobrist()
	initCuckoo()
}

// initStepAttacks precomputes the single-step attack bitboards.
func initStepAttacks() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	diagOffsets := [4][2]int{
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}

	mask := func(sq int, offsets [][2]int) uint64 {
		file := sq % 8
		rank := sq / 8
		var m uint64
		for _, off := range offsets {
			rf := rank + off[0]
			ff := file + off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				m |= uint64(1) << uint(rf*8+ff)
			}
		}
		return m
	}

	for sq := 0; sq < 64; sq++ {
		knightAttacks[sq] = mask(sq, knightOffsets[:])
		kingAttacks[sq] = mask(sq, kingOffsets[:])
		metAttacks[sq] = mask(sq, diagOffsets[:])

		// Pawn captures: diagonally forward only.
		pawnAttacks[White][sq] = mask(sq, [][2]int{{1, 1}, {1, -1}})
		pawnAttacks[Black][sq] = mask(sq, [][2]int{{-1, 1}, {-1, -1}})

		// Khon: the four diagonals plus one square straight forward.
		khonAttacks[White][sq] = metAttacks[sq] | mask(sq, [][2]int{{1, 0}})
		khonAttacks[Black][sq] = metAttacks[sq] | mask(sq, [][2]int{{-1, 0}})
	}
}

// initLines builds the line and between tables for all eight directions.
func initLines() {
	dirs := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	ray := func(sq int, dr, df int) uint64 {
		var m uint64
		r, f := sq/8+dr, sq%8+df
		for r >= 0 && r < 8 && f >= 0 && f < 8 {
			m |= uint64(1) << uint(r*8+f)
			r += dr
			f += df
		}
		return m
	}

	for s1 := 0; s1 < 64; s1++ {
		for d := 0; d < 8; d += 2 {
			fwd := ray(s1, dirs[d][0], dirs[d][1])
			bwd := ray(s1, dirs[d+1][0], dirs[d+1][1])
			line := fwd | bwd | uint64(1)<<uint(s1)

			for targets := fwd | bwd; targets != 0; {
				s2 := popLSB(&targets)
				lineBB[s1][s2] = line
			}
			// Open segments, walked square by square toward the target.
			for targets := fwd; targets != 0; {
				s2 := popLSB(&targets)
				var seg uint64
				r, f := s1/8+dirs[d][0], s1%8+dirs[d][1]
				for Square(r*8+f) != s2 {
					seg |= uint64(1) << uint(r*8+f)
					r += dirs[d][0]
					f += dirs[d][1]
				}
				betweenBB[s1][s2] = seg
				betweenBB[s2][s1] = seg
			}
		}
	}
}

// initSliderTable builds the pext-indexed rook attack table. The mask for
// each square excludes board edges; every subset of the mask is expanded
// into an occupancy and resolved by ray casting once, up front.
func initSliderTable() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		var rm uint64
		for r := rank + 1; r < 7; r++ {
			rm |= 1 << uint(r*8+file)
		}
		for r := rank - 1; r > 0; r-- {
			rm |= 1 << uint(r*8+file)
		}
		for f := file + 1; f < 7; f++ {
			rm |= 1 << uint(rank*8+f)
		}
		for f := file - 1; f > 0; f-- {
			rm |= 1 << uint(rank*8+f)
		}
		rookMask[sq] = rm

		nbits := bits.OnesCount64(rm)
		rookAttTable[sq] = make([]uint64, 1<<nbits)
		for idx := 0; idx < (1 << nbits); idx++ {
			occ := pdep(uint64(idx), rm)
			rookAttTable[sq][idx] = rookAttacksSlow(sq, occ)
		}
		rookPseudo[sq] = rookAttacksSlow(sq, 0)
	}
}

// software pext: extract bits of x at positions where mask has 1s, packed into low bits
func pext(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>bit)&1 != 0 {
			res |= 1 << idx
		}
		idx++
	}
	return res
}

// software pdep: deposit low bits of x into positions of mask
func pdep(x, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		if (x>>idx)&1 != 0 {
			res |= 1 << bit
		}
		idx++
	}
	return res
}

// rookAttacksSlow computes rook attacks by ray casting (initialization only).
func rookAttacksSlow(sq int, occupied uint64) uint64 {
	var attacks uint64
	file, rank := sq%8, sq/8

	for r := rank + 1; r < 8; r++ {
		s := uint64(1) << uint(r*8+file)
		attacks |= s
		if occupied&s != 0 {
			break
		}
	}
	for r := rank - 1; r >= 0; r-- {
		s := uint64(1) << uint(r*8+file)
		attacks |= s
		if occupied&s != 0 {
			break
		}
	}
	for f := file + 1; f < 8; f++ {
		s := uint64(1) << uint(rank*8+f)
		attacks |= s
		if occupied&s != 0 {
			break
		}
	}
	for f := file - 1; f >= 0; f-- {
		s := uint64(1) << uint(rank*8+f)
		attacks |= s
		if occupied&s != 0 {
			break
		}
	}
	return attacks
}

// rookAttacksBB returns the rook attack set from sq for the given occupancy.
func rookAttacksBB(sq Square, occupied uint64) uint64 {
	idx := pext(occupied, rookMask[sq])
	return rookAttTable[sq][idx]
}

// attacksFromType returns the squares a piece of the given type and color
// on sq attacks, against the supplied occupancy. Only the rook consults
// the occupancy.
func attacksFromType(pt PieceType, c Color, sq Square, occupied uint64) uint64 {
	switch pt {
	case Pawn:
		return pawnAttacks[c][sq]
	case Met:
		return metAttacks[sq]
	case Khon:
		return khonAttacks[c][sq]
	case Knight:
		return knightAttacks[sq]
	case Rook:
		return rookAttacksBB(sq, occupied)
	case King:
		return kingAttacks[sq]
	}
	return 0
}

// AttackersTo computes the bitboard of all pieces of both colors which
// attack the given square, using the supplied occupancy for rook rays.
// Passing a hypothetical occupancy supports "what if this piece were gone"
// queries; the step-piece lookups are reversed-color so that, for example,
// the white pawns found are exactly those whose capture pattern covers sq.
func (p *Position) AttackersTo(s Square, occupied uint64) uint64 {
	return pawnAttacks[Black][s]&p.piecesOf(White, Pawn) |
		pawnAttacks[White][s]&p.piecesOf(Black, Pawn) |
		metAttacks[s]&p.byType[Met] |
		khonAttacks[Black][s]&p.piecesOf(White, Khon) |
		khonAttacks[White][s]&p.piecesOf(Black, Khon) |
		knightAttacks[s]&p.byType[Knight] |
		rookAttacksBB(s, occupied)&p.byType[Rook] |
		kingAttacks[s]&p.byType[King]
}

// SliderBlockers finds all pieces that block a rook attack from the given
// sliders toward square s: snipers are sliders that would hit s once the
// squares between are cleared, and a lone piece on such a segment is a
// blocker. A blocker of the same color as the piece on s is pinned, and
// its sniper is accumulated into pinners.
func (p *Position) SliderBlockers(sliders uint64, s Square, pinners *uint64) uint64 {
	var blockers uint64
	*pinners = 0

	snipers := rookPseudo[s] & p.byType[Rook] & sliders
	occupancy := p.Occupied() ^ snipers

	for snipers != 0 {
		sniperSq := popLSB(&snipers)
		b := between(s, sniperSq) & occupancy

		if b != 0 && !moreThanOne(b) {
			blockers |= b
			if b&p.byColor[p.board[s].Color()] != 0 {
				*pinners |= bb(sniperSq)
			}
		}
	}
	return blockers
}
