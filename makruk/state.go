package makruk

// StateInfo holds the per-ply position state that is expensive to
// recompute. One record is pushed for every move made; the previous
// record is simply the one below it on the stack.
type StateInfo struct {
	// Carried forward from the previous state and updated incrementally.
	pawnKey         uint64
	materialKey     uint64
	nonPawnMaterial [2]int
	rule50          int
	pliesFromNull   int

	// Recomputed or rebuilt for each new state.
	key             uint64
	checkersBB      uint64
	blockersForKing [2]uint64
	pinners         [2]uint64
	checkSquares    [7]uint64
	capturedPiece   Piece
	repetition      int
}

// initialStateStackCap keeps the state stack from reallocating during a
// typical search; growth beyond it is handled transparently by append.
const initialStateStackCap = 256

// st returns the current (top) state record. Pointers into the stack are
// only valid until the next push.
func (p *Position) st() *StateInfo {
	return &p.states[len(p.states)-1]
}

// prevSt returns the state record n plies below the top.
func (p *Position) prevSt(n int) *StateInfo {
	return &p.states[len(p.states)-1-n]
}
