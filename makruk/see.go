package makruk

// minAttacker picks the cheapest piece in stmAttackers, removes it from
// the occupancy, and reveals any rook x-ray behind it. Piece type order
// doubles as value order, so the scan runs Pawn through Rook; the king
// is returned as a terminator once nothing cheaper remains.
func (p *Position) minAttacker(to Square, stmAttackers uint64, occupied, attackers *uint64) PieceType {
	for pt := Pawn; pt < King; pt++ {
		b := stmAttackers & p.byType[pt]
		if b == 0 {
			continue
		}
		*occupied ^= b & -b

		// Only khons and rooks can stand in front of a rook on the
		// target ray, so those are the only removals that can uncover
		// an x-ray attacker.
		if pt == Khon || pt == Rook {
			*attackers |= rookAttacksBB(to, *occupied) & p.byType[Rook]
		}
		*attackers &= *occupied
		return pt
	}
	return King
}

// SeeGe runs a static exchange evaluation on the destination square of m
// and reports whether the exchange value meets threshold. Pinned pieces
// of the side whose pinners survive on the board do not take part in the
// exchange.
func (p *Position) SeeGe(m Move, threshold int) bool {
	// Promotions change the piece mid-exchange and are not worth
	// modeling here; treat them as value zero.
	if m.Kind() != NormalMove {
		return 0 >= threshold
	}

	from := m.From()
	to := m.To()

	balance := PieceValue[p.board[to].Type()] - threshold
	if balance < 0 {
		return false
	}

	nextVictim := p.board[from].Type()
	balance -= PieceValue[nextVictim]
	if balance >= 0 {
		return true
	}

	us := p.board[from].Color()
	occupied := p.Occupied() ^ bb(from) ^ bb(to)
	attackers := p.AttackersTo(to, occupied) & occupied
	stm := us.Other()

	for {
		stmAttackers := attackers & p.byColor[stm]

		// Pinned pieces may not recapture as long as any of the
		// opponent's pinners is still on the board.
		if p.st().pinners[stm.Other()]&occupied != 0 {
			stmAttackers &^= p.st().blockersForKing[stm]
		}
		if stmAttackers == 0 {
			break
		}

		nextVictim = p.minAttacker(to, stmAttackers, &occupied, &attackers)
		stm = stm.Other()

		// Negamax the balance and add the just-captured piece.
		balance = -balance - 1 - PieceValue[nextVictim]
		if balance >= 0 {
			// A capturing king that can itself be recaptured loses the
			// exchange despite the balance; hand the move back.
			if nextVictim == King && attackers&p.byColor[stm] != 0 {
				stm = stm.Other()
			}
			break
		}
	}

	return us != stm
}
