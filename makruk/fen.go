package makruk

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// StartFEN is the starting position.
const StartFEN = "rnsmksnr/8/pppppppp/8/8/PPPPPPPP/8/RNSKMSNR w 0 1"

const pieceTypeChars = " pmsnrk"

func pieceTypeChar(pt PieceType) byte {
	return pieceTypeChars[pt]
}

func pieceFromChar(c byte) (Piece, bool) {
	color := White
	if unicode.IsLower(rune(c)) {
		color = Black
		c = byte(unicode.ToUpper(rune(c)))
	}
	switch c {
	case 'P':
		return MakePiece(color, Pawn), true
	case 'M':
		return MakePiece(color, Met), true
	case 'S':
		return MakePiece(color, Khon), true
	case 'N':
		return MakePiece(color, Knight), true
	case 'R':
		return MakePiece(color, Rook), true
	case 'K':
		return MakePiece(color, King), true
	}
	return NoPiece, false
}

func charFromPiece(pc Piece) byte {
	c := pieceTypeChar(pc.Type())
	if pc.Color() == White {
		c = byte(unicode.ToUpper(rune(c)))
	}
	return c
}

// ParseFEN builds a position from a FEN string. The native form has
// four fields (placement, side to move, counting-rule clock, fullmove
// number); the six-field form with castling and en passant placeholders
// is accepted and those fields ignored, since neither rule exists here.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, errors.Errorf("fen %q: want at least placement and side to move", fen)
	}

	p := &Position{
		states: make([]StateInfo, 1, initialStateStackCap),
	}
	for s := range p.board {
		p.index[s] = -1
	}

	// Field 1: piece placement, rank 8 down to rank 1.
	sq := SquareA8
	for i := 0; i < len(fields[0]); i++ {
		c := fields[0][i]
		switch {
		case c >= '1' && c <= '8':
			sq += Square(c - '0')
		case c == '/':
			sq -= 16
		default:
			pc, ok := pieceFromChar(c)
			if !ok {
				return nil, errors.Errorf("fen %q: bad piece char %q", fen, c)
			}
			if sq < SquareA1 || sq > SquareH8 {
				return nil, errors.Errorf("fen %q: placement overflows the board", fen)
			}
			p.putPiece(pc, sq)
			sq++
		}
	}
	if p.pieceCount[WhiteKing] != 1 || p.pieceCount[BlackKing] != 1 {
		return nil, errors.Errorf("fen %q: each side needs exactly one king", fen)
	}

	// Field 2: side to move.
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return nil, errors.Errorf("fen %q: bad side to move %q", fen, fields[1])
	}

	// Remaining fields: either "<rule50> <fullmove>" or the six-field
	// form "<castling> <ep> <rule50> <fullmove>".
	rest := fields[2:]
	if len(rest) >= 1 {
		if _, err := strconv.Atoi(rest[0]); err != nil && len(rest) >= 2 {
			rest = rest[2:]
		}
	}

	rule50, fullmove := 0, 1
	if len(rest) >= 1 {
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, errors.Wrapf(err, "fen %q: counting clock", fen)
		}
		rule50 = n
	}
	if len(rest) >= 2 {
		n, err := strconv.Atoi(rest[1])
		if err != nil {
			return nil, errors.Wrapf(err, "fen %q: fullmove number", fen)
		}
		fullmove = n
	}

	p.st().rule50 = rule50
	p.gamePly = 2 * (fullmove - 1)
	if p.gamePly < 0 {
		p.gamePly = 0
	}
	if p.sideToMove == Black {
		p.gamePly++
	}

	p.computeState(p.st())
	return p, nil
}

// FEN renders the position in the native four-field form.
func (p *Position) FEN() string {
	var sb strings.Builder

	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := p.board[MakeSquare(f, r)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if p.sideToMove == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s %d %d", side, p.st().rule50, 1+(p.gamePly-boolToInt(p.sideToMove == Black))/2)
	return sb.String()
}

// NewEndgamePosition builds a position from a material signature such
// as "KRKM" (strong side's pieces up to the second K, weak side's after
// it). The strong side's pieces go on the second rank, the weak side's
// on the seventh, kings included, which is enough for endgame probes
// and tests.
func NewEndgamePosition(code string, strong Color) (*Position, error) {
	if len(code) == 0 || len(code) > 8 || code[0] != 'K' {
		return nil, errors.Errorf("endgame code %q: want K<pieces>K<pieces>", code)
	}
	split := strings.Index(code[1:], "K")
	if split < 0 {
		return nil, errors.Errorf("endgame code %q: missing weak-side king", code)
	}

	sides := [2]string{code[split+1:], code[:split+1]} // weak, strong
	sides[strong] = strings.ToLower(sides[strong])

	fen := "8/" + sides[0] + strconv.Itoa(8-len(sides[0])) +
		"/8/8/8/8/" + sides[1] + strconv.Itoa(8-len(sides[1])) + "/8 w 0 10"
	return ParseFEN(fen)
}

// Flip returns the position mirrored vertically with colors swapped.
func (p *Position) Flip() (*Position, error) {
	fields := strings.Fields(p.FEN())

	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	placement := strings.Join(ranks, "/")

	var sb strings.Builder
	for i := 0; i < len(placement); i++ {
		c := rune(placement[i])
		switch {
		case unicode.IsUpper(c):
			sb.WriteRune(unicode.ToLower(c))
		case unicode.IsLower(c):
			sb.WriteRune(unicode.ToUpper(c))
		default:
			sb.WriteRune(c)
		}
	}

	side := "w"
	if fields[1] == "w" {
		side = "b"
	}
	return ParseFEN(sb.String() + " " + side + " " + fields[2] + " " + fields[3])
}

// String renders an ASCII diagram with the FEN, the position key and
// any checkers, for logs and debugging.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("\n +---+---+---+---+---+---+---+---+\n")
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			pc := p.board[MakeSquare(f, r)]
			if pc == NoPiece {
				sb.WriteString(" |  ")
			} else {
				fmt.Fprintf(&sb, " | %c", charFromPiece(pc))
			}
		}
		sb.WriteString(" |\n +---+---+---+---+---+---+---+---+\n")
	}

	fmt.Fprintf(&sb, "\nFen: %s\nKey: %016X\nCheckers:", p.FEN(), p.Key())
	for b := p.Checkers(); b != 0; {
		fmt.Fprintf(&sb, " %s", popLSB(&b))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
