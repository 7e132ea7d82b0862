package makruk_test

import (
	"testing"

	"makruk-engine/makruk"
)

func TestRookAttacksBlocked(t *testing.T) {
	// Black rook on e4 checks the king on e1 along the open file.
	p := mustParse(t, "4k3/8/8/8/4r3/8/8/4K3 w 0 1")
	if !p.InCheck() {
		t.Fatalf("open file rook check not detected")
	}

	// A pawn on e2 closes the file.
	p = mustParse(t, "4k3/8/8/8/4r3/8/4P3/4K3 w 0 1")
	if p.InCheck() {
		t.Fatalf("blocked rook still reported as checker")
	}
}

func TestStepPieceChecks(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"met diagonal", "4k3/8/8/8/8/8/3m4/4K3 w 0 1"},
		{"khon forward diagonal", "8/8/8/4k3/3S4/8/8/4K3 b 0 1"},
		{"khon forward straight", "8/8/8/4k3/4S3/8/8/4K3 b 0 1"},
		{"knight", "4k3/8/8/8/8/3n4/8/4K3 w 0 1"},
		{"pawn", "4k3/8/8/8/8/8/3p4/4K3 w 0 1"},
	}
	for _, tc := range cases {
		p := mustParse(t, tc.fen)
		if !p.InCheck() {
			t.Errorf("%s: check not detected in %s", tc.name, tc.fen)
		}
	}
}

func TestKhonCannotStepStraightBack(t *testing.T) {
	// The khon's straight step only goes forward: a white khon on e5
	// does not attack e4, but does attack e6.
	p := mustParse(t, "7k/8/8/4S3/4r3/8/8/4K3 w 0 1")
	occ := p.Occupied()
	if p.AttackersTo(makruk.MakeSquare(4, 3), occ)&makruk.Bit(makruk.MakeSquare(4, 4)) != 0 {
		t.Fatalf("white khon attacks the square behind it")
	}
	if p.AttackersTo(makruk.MakeSquare(4, 5), occ)&makruk.Bit(makruk.MakeSquare(4, 4)) == 0 {
		t.Fatalf("white khon does not attack the square ahead of it")
	}
}

func TestPawnAttackDirections(t *testing.T) {
	// White pawn on d4 attacks c5 and e5, never backwards.
	p := mustParse(t, "4k3/8/8/8/3P4/8/8/4K3 w 0 1")
	occ := p.Occupied()
	d4 := makruk.MakeSquare(3, 3)
	for _, sq := range []makruk.Square{makruk.MakeSquare(2, 4), makruk.MakeSquare(4, 4)} {
		if p.AttackersTo(sq, occ)&makruk.Bit(d4) == 0 {
			t.Errorf("white pawn on d4 does not attack %s", sq)
		}
	}
	for _, sq := range []makruk.Square{makruk.MakeSquare(2, 2), makruk.MakeSquare(4, 2), makruk.MakeSquare(3, 4)} {
		if p.AttackersTo(sq, occ)&makruk.Bit(d4) != 0 {
			t.Errorf("white pawn on d4 should not attack %s", sq)
		}
	}
}

func TestBlockersAndPinners(t *testing.T) {
	// White knight on e2 shields the king on e1 from the rook on e4.
	p := mustParse(t, "4k3/8/8/8/4r3/8/4N3/4K3 w 0 1")

	e2 := makruk.MakeSquare(4, 1)
	e4 := makruk.MakeSquare(4, 3)
	if p.BlockersForKing(makruk.White)&makruk.Bit(e2) == 0 {
		t.Fatalf("knight on e2 not registered as king blocker")
	}
	if p.Pinners(makruk.Black)&makruk.Bit(e4) == 0 {
		t.Fatalf("rook on e4 not registered as pinner")
	}

	// Two pieces on the ray pin nothing.
	p = mustParse(t, "4k3/8/8/8/4r3/4N3/4N3/4K3 w 0 1")
	if p.BlockersForKing(makruk.White) != 0 {
		t.Fatalf("doubled blockers must not count as pinned")
	}
	if p.Pinners(makruk.Black) != 0 {
		t.Fatalf("rook behind two blockers must not count as pinner")
	}
}

func TestCheckersMultiple(t *testing.T) {
	// Rook on e4 and knight on d3 both attack the king on e1.
	p := mustParse(t, "4k3/8/8/8/4r3/3n4/8/4K3 w 0 1")
	if got := makruk.PopCount(p.Checkers()); got != 2 {
		t.Fatalf("double check: got %d checkers, want 2", got)
	}
}
