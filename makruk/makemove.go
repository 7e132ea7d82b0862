package makruk

// computeState fills st's keys, material totals and check info from
// scratch. It is the only non-incremental fingerprint path, used when a
// position is set up from text and by Validate to cross-check the
// incremental updates.
func (p *Position) computeState(st *StateInfo) {
	st.key = 0
	st.materialKey = 0
	st.pawnKey = zobristNoPawns
	st.nonPawnMaterial = [2]int{}
	st.capturedPiece = NoPiece
	st.repetition = 0
	st.checkersBB = p.AttackersTo(p.KingSquare(p.sideToMove), p.Occupied()) &
		p.byColor[p.sideToMove.Other()]

	p.setCheckInfo(st)

	for b := p.Occupied(); b != 0; {
		s := popLSB(&b)
		pc := p.board[s]
		st.key ^= zobristPiece[pc][s]

		if pc.Type() == Pawn {
			st.pawnKey ^= zobristPiece[pc][s]
		} else if pc.Type() != King {
			st.nonPawnMaterial[pc.Color()] += PieceValue[pc.Type()]
		}
	}

	if p.sideToMove == Black {
		st.key ^= zobristSide
	}

	for _, pc := range allPieces {
		for cnt := 0; cnt < p.pieceCount[pc]; cnt++ {
			st.materialKey ^= zobristPiece[pc][cnt]
		}
	}
}

// setCheckInfo refreshes the king blocker/pinner sets for both sides and
// the per-type squares from which the side to move would check the enemy
// king. The cache makes GivesCheck O(1) for direct checks.
func (p *Position) setCheckInfo(st *StateInfo) {
	st.blockersForKing[White] = p.SliderBlockers(p.byColor[Black], p.KingSquare(White), &st.pinners[Black])
	st.blockersForKing[Black] = p.SliderBlockers(p.byColor[White], p.KingSquare(Black), &st.pinners[White])

	them := p.sideToMove.Other()
	ksq := p.KingSquare(them)

	st.checkSquares[Pawn] = pawnAttacks[them][ksq]
	st.checkSquares[Met] = metAttacks[ksq]
	st.checkSquares[Khon] = khonAttacks[them][ksq]
	st.checkSquares[Knight] = knightAttacks[ksq]
	st.checkSquares[Rook] = rookAttacksBB(ksq, p.Occupied())
	st.checkSquares[King] = 0
}

// DoMove applies a move and pushes a new state record. The move is
// assumed legal; pseudo-legal and legality filtering is the caller's
// job. givesCheck is the caller's (usually cached) GivesCheck result.
func (p *Position) DoMove(m Move, givesCheck bool) {
	prev := p.st()
	k := prev.key ^ zobristSide

	// Carry forward the incrementally maintained fields; everything else
	// in the new record is derived below.
	p.states = append(p.states, StateInfo{
		pawnKey:         prev.pawnKey,
		materialKey:     prev.materialKey,
		nonPawnMaterial: prev.nonPawnMaterial,
		rule50:          prev.rule50 + 1,
		pliesFromNull:   prev.pliesFromNull + 1,
	})
	st := p.st() // prev may dangle after the append
	p.gamePly++

	us := p.sideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	pc := p.board[from]
	captured := p.board[to]

	if captured != NoPiece {
		// A captured pawn leaves the pawn key; anything else leaves the
		// material count.
		if captured.Type() == Pawn {
			st.pawnKey ^= zobristPiece[captured][to]
		} else {
			st.nonPawnMaterial[them] -= PieceValue[captured.Type()]
		}

		p.removePiece(captured, to)

		k ^= zobristPiece[captured][to]
		st.materialKey ^= zobristPiece[captured][p.pieceCount[captured]]

		// Makruk counting: the capture restarts the counter only while
		// pawns remain, or when a captured pawn's side keeps more than
		// its bare king.
		if p.CountType(Pawn) > 0 || (captured.Type() == Pawn && p.countAll(them) > 1) {
			st.rule50 = 0
		}
	}

	k ^= zobristPiece[pc][from] ^ zobristPiece[pc][to]
	p.movePiece(pc, from, to)

	if pc.Type() == Pawn {
		if m.Kind() == PromotionMove {
			promotion := MakePiece(us, m.PromotionType())

			p.removePiece(pc, to)
			p.putPiece(promotion, to)

			k ^= zobristPiece[pc][to] ^ zobristPiece[promotion][to]
			st.pawnKey ^= zobristPiece[pc][to]
			st.materialKey ^= zobristPiece[promotion][p.pieceCount[promotion]-1] ^
				zobristPiece[pc][p.pieceCount[pc]]
			st.nonPawnMaterial[us] += PieceValue[promotion.Type()]
		}

		st.pawnKey ^= zobristPiece[pc][from] ^ zobristPiece[pc][to]
		st.rule50 = 0
	}

	st.capturedPiece = captured
	st.key = k

	if givesCheck {
		st.checkersBB = p.AttackersTo(p.KingSquare(them), p.Occupied()) & p.byColor[us]
	}

	p.sideToMove = them
	p.setCheckInfo(st)

	// Repetition distance to the previous occurrence of this key:
	// positive on the second occurrence, negative from the third on.
	end := st.rule50
	if st.pliesFromNull < end {
		end = st.pliesFromNull
	}
	for i := 4; i <= end; i += 2 {
		stp := p.prevSt(i)
		if stp.key == st.key {
			if stp.repetition != 0 {
				st.repetition = -i
			} else {
				st.repetition = i
			}
			break
		}
	}
}

// UndoMove reverses the most recent DoMove. It must be called with the
// same move, in strict LIFO order; anything else is a contract violation.
func (p *Position) UndoMove(m Move) {
	p.sideToMove = p.sideToMove.Other()

	us := p.sideToMove
	from := m.From()
	to := m.To()
	pc := p.board[to]

	if m.Kind() == PromotionMove {
		p.removePiece(pc, to)
		pc = MakePiece(us, Pawn)
		p.putPiece(pc, to)
	}

	p.movePiece(pc, to, from)

	if captured := p.st().capturedPiece; captured != NoPiece {
		p.putPiece(captured, to)
	}

	p.states = p.states[:len(p.states)-1]
	p.gamePly--
}

// DoNullMove flips the side to move without touching the board. The side
// to move must not be in check.
func (p *Position) DoNullMove() {
	st := *p.st()
	st.key ^= zobristSide
	st.rule50++
	st.pliesFromNull = 0
	st.capturedPiece = NoPiece
	st.repetition = 0
	p.states = append(p.states, st)

	p.sideToMove = p.sideToMove.Other()
	p.setCheckInfo(p.st())
}

// UndoNullMove reverses the most recent DoNullMove.
func (p *Position) UndoNullMove() {
	p.states = p.states[:len(p.states)-1]
	p.sideToMove = p.sideToMove.Other()
}

// KeyAfter computes the position key the given move would produce,
// without applying it. Useful for speculative cache warming by callers.
func (p *Position) KeyAfter(m Move) uint64 {
	from := m.From()
	to := m.To()
	pc := p.board[from]
	captured := p.board[to]
	k := p.st().key ^ zobristSide

	if captured != NoPiece {
		k ^= zobristPiece[captured][to]
	}
	return k ^ zobristPiece[pc][from] ^ zobristPiece[pc][to]
}
