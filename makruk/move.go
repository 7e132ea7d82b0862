package makruk

// Move encodes a move in 16 bits. Move generation lives outside this
// package; a Move here is just a (from, to, kind, promotion) tuple that
// the position knows how to apply, validate and reverse.
type Move uint16

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift  = 0  // 6 bits
	moveToShift    = 6  // 6 bits
	movePromoShift = 12 // 2 bits: promotion piece type, offset from Met
	moveKindShift  = 14 // 2 bits
)

// MoveKind distinguishes plain moves from promotions. Makruk has no
// castling and no en passant, so two kinds suffice.
type MoveKind uint16

const (
	NormalMove    MoveKind = 0
	PromotionMove MoveKind = 1
)

// MoveNone is the zero move, used as an empty slot marker.
const MoveNone Move = 0

// NewMove constructs a plain move from source and destination squares.
func NewMove(from, to Square) Move {
	return Move(uint16(from&0x3F) | uint16(to&0x3F)<<moveToShift)
}

// NewPromotionMove constructs a promotion. Makruk pawns always promote to
// a met, which is the promotion field's zero offset.
func NewPromotionMove(from, to Square) Move {
	return NewMove(from, to) | Move(uint16(PromotionMove)<<moveKindShift)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square(m >> moveFromShift & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square(m >> moveToShift & 0x3F) }

// Kind returns the move kind.
func (m Move) Kind() MoveKind { return MoveKind(m >> moveKindShift & 0x3) }

// PromotionType returns the piece type a promotion creates, or
// NoPieceType for a plain move.
func (m Move) PromotionType() PieceType {
	if m.Kind() != PromotionMove {
		return NoPieceType
	}
	return Met + PieceType(m>>movePromoShift&0x3)
}

// promoBits exposes the raw promotion field; a plain move with non-zero
// promotion bits is malformed and rejected by PseudoLegal.
func (m Move) promoBits() uint16 { return uint16(m >> movePromoShift & 0x3) }

// String produces the coordinate form of the move (e.g. "e3e4", "d5d6m").
func (m Move) String() string {
	if m == MoveNone {
		return "(none)"
	}
	s := m.From().String() + m.To().String()
	if m.Kind() == PromotionMove {
		s += string(pieceTypeChar(m.PromotionType()))
	}
	return s
}
