package makruk

// Color of a side: White moves up the board, Black moves down.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// String returns "white" or "black".
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType is a colorless piece kind. The numeric order is the material
// value order, which the exchange evaluator relies on when it scans for
// the least valuable attacker.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1 // bia: pushes one square, captures diagonally forward
	Met         PieceType = 2 // moves one square diagonally
	Khon        PieceType = 3 // moves one square diagonally, or one straight forward
	Knight      PieceType = 4
	Rook        PieceType = 5 // the only sliding piece
	King        PieceType = 6
)

// Piece combines a color and a piece type.
// Black pieces are encoded as (white piece code | 8) so that
// - piece & 7 gives the type in [1..6]
// - piece & 8 != 0 indicates Black
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteMet    Piece = Piece(Met)
	WhiteKhon   Piece = Piece(Khon)
	WhiteKnight Piece = Piece(Knight)
	WhiteRook   Piece = Piece(Rook)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | 8
	BlackMet    Piece = Piece(Met) | 8
	BlackKhon   Piece = Piece(Khon) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackKing   Piece = Piece(King) | 8
)

const pieceNB = 16 // upper bound of the piece code space

// allPieces enumerates every concrete piece code, white then black.
var allPieces = [12]Piece{
	WhitePawn, WhiteMet, WhiteKhon, WhiteKnight, WhiteRook, WhiteKing,
	BlackPawn, BlackMet, BlackKhon, BlackKnight, BlackRook, BlackKing,
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color { return Color(p >> 3) }

// MakePiece combines a color and a type into a concrete piece code.
func MakePiece(c Color, pt PieceType) Piece { return Piece(pt) | Piece(c<<3) }

// PieceValue holds the material value per piece type, used by the static
// exchange evaluator. The king is worth zero here: a legal king capture
// ends any exchange, so its value never enters the balance. Evaluation
// code may install its own table before searching.
var PieceValue = [7]int{
	Pawn:   100,
	Met:    150,
	Khon:   250,
	Knight: 350,
	Rook:   500,
	King:   0,
}
