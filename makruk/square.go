package makruk

// Square represents a board position (0-63, a1=0, h8=63).
type Square int

const NoSquare Square = -1

// Named squares used by tests and setup code.
const (
	SquareA1 Square = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
)

const (
	SquareA8 Square = 56 + iota
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8
)

// File returns the file index (0-7, a=0).
func (s Square) File() int { return int(s) & 7 }

// Rank returns the rank index (0-7, rank 1 = 0).
func (s Square) Rank() int { return int(s) >> 3 }

// Flip mirrors the square across the horizontal center line (a1 <-> a8).
func (s Square) Flip() Square { return s ^ 56 }

// MakeSquare builds a square from file and rank indices.
func MakeSquare(file, rank int) Square { return Square(rank*8 + file) }

// String returns the coordinate name of the square (e.g. "e4").
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// relativeRank returns the rank of s from the point of view of color c,
// so that both sides see their own back rank as 0.
func relativeRank(c Color, s Square) int {
	if c == White {
		return s.Rank()
	}
	return 7 - s.Rank()
}

// relativeSquare mirrors s for Black so that both sides address the board
// from their own side.
func relativeSquare(c Color, s Square) Square {
	if c == White {
		return s
	}
	return s.Flip()
}

// pawnPush is the board delta of a single pawn push for each color.
func pawnPush(c Color) Square {
	if c == White {
		return 8
	}
	return -8
}

// squareDistance[s1][s2] is the number of king steps from s1 to s2.
var squareDistance [64][64]uint8

func initDistance() {
	for s1 := 0; s1 < 64; s1++ {
		for s2 := 0; s2 < 64; s2++ {
			fd := abs(s1&7 - s2&7)
			rd := abs(s1>>3 - s2>>3)
			if fd > rd {
				squareDistance[s1][s2] = uint8(fd)
			} else {
				squareDistance[s1][s2] = uint8(rd)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
