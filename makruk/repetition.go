package makruk

// IsDraw reports whether the position is drawn by repetition: once
// earlier but strictly after the root (ply), or twice anywhere. The
// counting-rule clock feeds the repetition bounds but does not itself
// end the game here; counting claims are adjudicated by the caller.
func (p *Position) IsDraw(ply int) bool {
	st := p.st()
	return st.repetition != 0 && st.repetition < ply
}

// HasRepeated reports whether the current position, or one of its
// ancestors within the reversible tail of the history, has occurred at
// least once before.
func (p *Position) HasRepeated() bool {
	st := p.st()
	end := st.rule50
	if st.pliesFromNull < end {
		end = st.pliesFromNull
	}
	for i := 0; end >= 4; i, end = i+1, end-1 {
		if p.prevSt(i).repetition != 0 {
			return true
		}
	}
	return false
}

// HasGameCycle reports whether the side to move has a legal drawing
// move, i.e. a reversible move back into a position already reached
// within the reversible tail of the history. Probing is done with the
// cuckoo tables keyed by the XOR difference of position keys.
func (p *Position) HasGameCycle(ply int) bool {
	st := p.st()
	end := st.rule50
	if st.pliesFromNull < end {
		end = st.pliesFromNull
	}
	if end < 3 {
		return false
	}

	occupied := p.Occupied()

	for i := 3; i <= end; i += 2 {
		stp := p.prevSt(i)
		moveKey := st.key ^ stp.key

		j := cuckooH1(moveKey)
		if cuckoo[j] != moveKey {
			j = cuckooH2(moveKey)
			if cuckoo[j] != moveKey {
				continue
			}
		}

		mv := cuckooMove[j]
		s1 := mv.From()
		s2 := mv.To()
		if between(s1, s2)&occupied != 0 {
			continue
		}

		if ply > i {
			return true
		}

		// For nodes before or at the root, the cycle move must be made
		// by one of our own pieces to count as a repetition we can
		// force.
		sq := s1
		if p.board[sq] == NoPiece {
			sq = s2
		}
		if p.board[sq].Color() != p.sideToMove {
			continue
		}

		// Require one more repetition earlier in the game for cycles
		// at or behind the root.
		if stp.repetition != 0 {
			return true
		}
	}
	return false
}
