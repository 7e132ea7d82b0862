package makruk

// Position is the mutable board state: piece placement, occupancy
// bitboards, dense piece lists, side to move, and the stack of per-ply
// state records. One search worker owns one Position; nothing here is
// safe for concurrent mutation.
type Position struct {
	board   [64]Piece
	byType  [7]uint64 // per piece type, both colors
	byColor [2]uint64

	// Dense square lists per piece code, for cheap iteration. Removal
	// swaps with the last entry, so list order is not stable.
	pieceCount [pieceNB]int
	pieceList  [pieceNB][16]Square
	index      [64]int

	sideToMove Color
	gamePly    int

	states []StateInfo
}

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// GamePly returns the number of half-moves played from move one.
func (p *Position) GamePly() int { return p.gamePly }

// Occupied returns the bitboard of all occupied squares.
func (p *Position) Occupied() uint64 { return p.byColor[White] | p.byColor[Black] }

// OccupiedBy returns the occupancy bitboard of one color.
func (p *Position) OccupiedBy(c Color) uint64 { return p.byColor[c] }

// PiecesByType returns the bitboard of both colors' pieces of one type.
func (p *Position) PiecesByType(pt PieceType) uint64 { return p.byType[pt] }

// Pieces returns the bitboard of one color's pieces of one type.
func (p *Position) Pieces(c Color, pt PieceType) uint64 { return p.piecesOf(c, pt) }

func (p *Position) piecesOf(c Color, pt PieceType) uint64 { return p.byType[pt] & p.byColor[c] }

// PieceOn returns the piece on a square, or NoPiece.
func (p *Position) PieceOn(sq Square) Piece { return p.board[sq] }

// Empty reports whether the square holds no piece.
func (p *Position) Empty(sq Square) bool { return p.board[sq] == NoPiece }

// KingSquare returns the square of the given color's king.
func (p *Position) KingSquare(c Color) Square {
	return p.pieceList[MakePiece(c, King)][0]
}

// Count returns the number of pieces of one code on the board.
func (p *Position) Count(pc Piece) int { return p.pieceCount[pc] }

// CountType returns the number of pieces of one type, both colors.
func (p *Position) CountType(pt PieceType) int {
	return p.pieceCount[MakePiece(White, pt)] + p.pieceCount[MakePiece(Black, pt)]
}

// countAll returns the number of pieces of one color.
func (p *Position) countAll(c Color) int { return popCount(p.byColor[c]) }

// SquaresOf returns the square list of one piece code. The returned slice
// aliases internal state and is invalidated by the next mutation.
func (p *Position) SquaresOf(pc Piece) []Square {
	return p.pieceList[pc][:p.pieceCount[pc]]
}

// Key returns the current position key.
func (p *Position) Key() uint64 { return p.st().key }

// PawnKey returns the pawn-structure key.
func (p *Position) PawnKey() uint64 { return p.st().pawnKey }

// MaterialKey returns the material key; it depends only on piece counts,
// never on placement.
func (p *Position) MaterialKey() uint64 { return p.st().materialKey }

// NonPawnMaterial returns the summed non-pawn piece values of one color.
func (p *Position) NonPawnMaterial(c Color) int { return p.st().nonPawnMaterial[c] }

// Rule50 returns the half-move counter since the last irreversible move.
func (p *Position) Rule50() int { return p.st().rule50 }

// Checkers returns the bitboard of pieces giving check to the side to move.
func (p *Position) Checkers() uint64 { return p.st().checkersBB }

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.st().checkersBB != 0 }

// BlockersForKing returns the pieces of either color that shield the
// given color's king from a rook behind them.
func (p *Position) BlockersForKing(c Color) uint64 { return p.st().blockersForKing[c] }

// Pinners returns the enemy rooks of color c that pin a piece against the
// opposing king.
func (p *Position) Pinners(c Color) uint64 { return p.st().pinners[c] }

// CheckSquares returns the squares from which a piece of the given type
// belonging to the side to move would check the enemy king.
func (p *Position) CheckSquares(pt PieceType) uint64 { return p.st().checkSquares[pt] }

// CapturedPiece returns the piece taken by the most recent move, if any.
func (p *Position) CapturedPiece() Piece { return p.st().capturedPiece }

// ==========================
// Board mutation primitives
// ==========================
//
// These three are the only operations that ever touch the board, the
// occupancy bitboards and the piece lists, so no other component can
// observe a half-updated placement. Hash keys are maintained separately
// by the move execution code.

// putPiece places pc on an empty square.
func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	p.byType[pc.Type()] |= bb(sq)
	p.byColor[pc.Color()] |= bb(sq)
	p.index[sq] = p.pieceCount[pc]
	p.pieceList[pc][p.index[sq]] = sq
	p.pieceCount[pc]++
}

// removePiece removes pc from sq, swapping the vacated piece-list slot
// with the last entry so the list stays dense.
func (p *Position) removePiece(pc Piece, sq Square) {
	p.byType[pc.Type()] &^= bb(sq)
	p.byColor[pc.Color()] &^= bb(sq)
	p.board[sq] = NoPiece

	p.pieceCount[pc]--
	lastSq := p.pieceList[pc][p.pieceCount[pc]]
	p.index[lastSq] = p.index[sq]
	p.pieceList[pc][p.index[lastSq]] = lastSq
	p.pieceList[pc][p.pieceCount[pc]] = NoSquare
}

// movePiece relocates pc from one square to another in a single step,
// keeping the piece-list index consistent without a remove/put pair.
func (p *Position) movePiece(pc Piece, from, to Square) {
	fromTo := bb(from) | bb(to)
	p.byType[pc.Type()] ^= fromTo
	p.byColor[pc.Color()] ^= fromTo
	p.board[from] = NoPiece
	p.board[to] = pc
	p.index[to] = p.index[from]
	p.pieceList[pc][p.index[to]] = to
}

// Validate checks internal consistency between the square array, the
// bitboards, the piece lists, and the incrementally maintained state
// against a full recomputation. It is a testing aid, not a production
// error path.
func (p *Position) Validate() bool {
	var occ [2]uint64
	var byType [7]uint64
	var counts [pieceNB]int
	for sq := Square(0); sq < 64; sq++ {
		pc := p.board[sq]
		if pc == NoPiece {
			continue
		}
		occ[pc.Color()] |= bb(sq)
		byType[pc.Type()] |= bb(sq)
		counts[pc]++
	}
	if occ != p.byColor || byType != p.byType || counts != p.pieceCount {
		return false
	}
	if occ[White]&occ[Black] != 0 {
		return false
	}
	for _, pc := range allPieces {
		for i := 0; i < p.pieceCount[pc]; i++ {
			sq := p.pieceList[pc][i]
			if p.board[sq] != pc || p.index[sq] != i {
				return false
			}
		}
	}
	if p.pieceCount[WhiteKing] != 1 || p.pieceCount[BlackKing] != 1 {
		return false
	}

	// Cross-check the incremental state against a scratch recomputation.
	cur := *p.st()
	var fresh StateInfo
	fresh.rule50 = cur.rule50
	fresh.pliesFromNull = cur.pliesFromNull
	p.computeState(&fresh)
	return fresh.key == cur.key &&
		fresh.pawnKey == cur.pawnKey &&
		fresh.materialKey == cur.materialKey &&
		fresh.nonPawnMaterial == cur.nonPawnMaterial &&
		fresh.checkersBB == cur.checkersBB &&
		fresh.blockersForKing == cur.blockersForKing &&
		fresh.pinners == cur.pinners &&
		fresh.checkSquares == cur.checkSquares
}
