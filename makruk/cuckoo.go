package makruk

// Marcel van Kervinck's cuckoo tables for fast detection of upcoming
// repetitions: every reversible single-piece move is keyed by the XOR
// delta it would apply to a position key, so a candidate delta between
// two position keys can be resolved to a concrete move with two probes.
//
// https://marcelk.net/2013-04-06/paper/upcoming-rep-v2.pdf

const cuckooSize = 8192

var cuckoo [cuckooSize]uint64
var cuckooMove [cuckooSize]Move

// The two hash functions index different bit ranges of the move key.
func cuckooH1(key uint64) int { return int(key & 0x1fff) }
func cuckooH2(key uint64) int { return int((key >> 16) & 0x1fff) }

// initCuckoo inserts every reversible move between two squares connected
// by a piece's attack pattern, using open addressing with eviction. Pawn
// moves are never reversible; khon forward steps are filtered out by
// requiring the pattern to connect the squares in both directions.
func initCuckoo() {
	for _, pc := range allPieces {
		if pc.Type() == Pawn {
			continue
		}
		c := pc.Color()
		for s1 := Square(0); s1 < 64; s1++ {
			for s2 := s1 + 1; s2 < 64; s2++ {
				if attacksFromType(pc.Type(), c, s1, 0)&bb(s2) == 0 ||
					attacksFromType(pc.Type(), c, s2, 0)&bb(s1) == 0 {
					continue
				}

				move := NewMove(s1, s2)
				key := zobristPiece[pc][s1] ^ zobristPiece[pc][s2] ^ zobristSide
				i := cuckooH1(key)
				for {
					cuckoo[i], key = key, cuckoo[i]
					cuckooMove[i], move = move, cuckooMove[i]
					if move == MoveNone { // arrived at an empty slot
						break
					}
					// Push the victim to its alternative slot.
					if i == cuckooH1(key) {
						i = cuckooH2(key)
					} else {
						i = cuckooH1(key)
					}
				}
			}
		}
	}
}
