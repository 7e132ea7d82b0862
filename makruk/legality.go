package makruk

// Legal tests whether a pseudo-legal move is legal. A king move is legal
// iff its destination is not attacked by the opponent; any other move is
// legal iff the mover is not pinned, or moves along the ray between its
// king and the pinning rook.
func (p *Position) Legal(m Move) bool {
	us := p.sideToMove
	from := m.From()
	to := m.To()

	if p.board[from].Type() == King {
		return p.AttackersTo(to, p.Occupied())&p.byColor[us.Other()] == 0
	}

	return p.st().blockersForKing[us]&bb(from) == 0 ||
		aligned(from, to, p.KingSquare(us))
}

// PseudoLegal takes an arbitrary move and tests whether it could have
// been produced for the current position. Moves arriving from an
// external best-move cache keyed by a lossy fingerprint can be stale or
// aliased, so everything is re-derived from the board: mover ownership,
// destination occupancy, the piece's movement pattern, pawn and
// promotion rules, and check evasion requirements.
func (p *Position) PseudoLegal(m Move) bool {
	us := p.sideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	pc := p.board[from]

	if pc == NoPiece || pc.Color() != us {
		return false
	}

	// The destination cannot hold a friendly piece.
	if p.byColor[us]&bb(to) != 0 {
		return false
	}

	isPawnStep := func() bool {
		if pawnAttacks[us][from]&p.byColor[them]&bb(to) != 0 { // capture
			return true
		}
		return from+pawnPush(us) == to && p.board[to] == NoPiece // single push
	}

	switch {
	case m.Kind() == PromotionMove:
		if pc.Type() != Pawn || m.PromotionType() != Met {
			return false
		}
		if promotionRankBB(us)&bb(to) == 0 || !isPawnStep() {
			return false
		}

	case m.promoBits() != 0:
		// A plain move must carry an empty promotion field.
		return false

	case pc.Type() == Pawn:
		// Any pawn step onto the sixth rank must be a promotion, which
		// was handled above.
		if promotionRankBB(us)&bb(to) != 0 {
			return false
		}
		if !isPawnStep() {
			return false
		}

	default:
		if attacksFromType(pc.Type(), us, from, p.Occupied())&bb(to) == 0 {
			return false
		}
	}

	// When in check, the move must evade: non-king moves may only block
	// or capture a lone checker, and a king move may not step onto a
	// square that is attacked once the king's own square is vacated.
	if checkers := p.Checkers(); checkers != 0 {
		if pc.Type() != King {
			if moreThanOne(checkers) {
				return false
			}
			if (between(lsb(checkers), p.KingSquare(us))|checkers)&bb(to) == 0 {
				return false
			}
		} else if p.AttackersTo(to, p.Occupied()^bb(from))&p.byColor[them] != 0 {
			return false
		}
	}

	return true
}

// GivesCheck tests whether a pseudo-legal move checks the enemy king:
// directly (cached check squares), by discovery (the mover shields the
// enemy king and leaves the shared ray), or through the piece a
// promotion creates.
func (p *Position) GivesCheck(m Move) bool {
	from := m.From()
	to := m.To()
	them := p.sideToMove.Other()
	ksq := p.KingSquare(them)

	if p.st().checkSquares[p.board[from].Type()]&bb(to) != 0 {
		return true
	}

	if p.st().blockersForKing[them]&bb(from) != 0 && !aligned(from, to, ksq) {
		return true
	}

	if m.Kind() == PromotionMove {
		return attacksFromType(m.PromotionType(), p.sideToMove, to, p.Occupied()^bb(from))&bb(ksq) != 0
	}
	return false
}
