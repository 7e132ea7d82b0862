package makruk_test

import (
	"testing"

	"makruk-engine/makruk"
)

func TestMaterialKeyIgnoresPlacement(t *testing.T) {
	a := mustParse(t, "k7/8/8/8/8/8/R7/K7 w 0 1")
	b := mustParse(t, "k7/8/8/R7/8/8/8/K7 w 0 1")

	if a.Key() == b.Key() {
		t.Fatalf("different placements share a position key")
	}
	if a.MaterialKey() != b.MaterialKey() {
		t.Fatalf("same material yields different material keys")
	}

	c := mustParse(t, "k7/8/8/8/8/8/N7/K7 w 0 1")
	if a.MaterialKey() == c.MaterialKey() {
		t.Fatalf("different material shares a material key")
	}
}

func TestPawnKeyIgnoresNonPawns(t *testing.T) {
	a := mustParse(t, "k7/8/8/8/8/3P4/R7/K7 w 0 1")
	b := mustParse(t, "k7/8/8/R7/8/3P4/8/K7 w 0 1")
	if a.PawnKey() != b.PawnKey() {
		t.Fatalf("moving a rook changed the pawn key")
	}

	c := mustParse(t, "k7/8/8/8/3P4/8/R7/K7 w 0 1")
	if a.PawnKey() == c.PawnKey() {
		t.Fatalf("moving a pawn did not change the pawn key")
	}
}

func TestSideToMoveInKey(t *testing.T) {
	a := mustParse(t, "k7/8/8/8/8/8/R7/K7 w 0 1")
	b := mustParse(t, "k7/8/8/8/8/8/R7/K7 b 0 1")
	if a.Key() == b.Key() {
		t.Fatalf("side to move not part of the position key")
	}
	if a.MaterialKey() != b.MaterialKey() || a.PawnKey() != b.PawnKey() {
		t.Fatalf("side to move leaked into material or pawn key")
	}
}

func TestIncrementalKeysMatchRecompute(t *testing.T) {
	// Validate recomputes every fingerprint from scratch and compares
	// against the incrementally maintained ones.
	p := mustParse(t, makruk.StartFEN)
	for _, s := range []string{"e3e4", "f6f5", "e4f5", "g6f5", "f3f4", "h8h7"} {
		doMove(t, p, s)
		if !p.Validate() {
			t.Fatalf("incremental state diverged after %s: %s", s, p.FEN())
		}
	}
}
