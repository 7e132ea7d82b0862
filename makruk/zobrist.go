package makruk

import "math/rand"

// Zobrist hashing tables. A position key is the XOR of one key per
// occupied (piece, square) pair, plus the side key when Black is to move.
// The pawn key starts from zobristNoPawns so that a pawnless position has
// a known non-zero pawn key rather than zero.
var zobristPiece [pieceNB][64]uint64
var zobristSide uint64
var zobristNoPawns uint64

// initZobrist fills the tables from a fixed seed, for reproducibility
// across runs and in tests. Called once from package init.
func initZobrist() {
	rnd := rand.New(rand.NewSource(0x4D616B72)) // "Makr"

	for _, pc := range allPieces {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pc][sq] = rnd.Uint64()
		}
	}

	zobristSide = rnd.Uint64()
	zobristNoPawns = rnd.Uint64()
}
