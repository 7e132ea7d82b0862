package makruk_test

import (
	"testing"

	"makruk-engine/makruk"
)

func TestSeeGeKingCapture(t *testing.T) {
	// The king wins an undefended pawn.
	p := mustParse(t, "7k/8/8/3p4/4K3/8/8/8 w 0 1")
	m := parseMove(t, "e4d5")
	if !p.SeeGe(m, 0) {
		t.Fatalf("free pawn capture below threshold 0")
	}
	if !p.SeeGe(m, makruk.PieceValue[makruk.Pawn]) {
		t.Fatalf("free pawn capture below its own value")
	}
	if p.SeeGe(m, makruk.PieceValue[makruk.Pawn]+1) {
		t.Fatalf("free pawn capture overvalued")
	}
}

func TestSeeGeLosingExchange(t *testing.T) {
	// Rook takes a pawn defended by a rook: down rook for pawn.
	p := mustParse(t, "3r3k/8/8/3p4/8/3R4/8/K7 w 0 1")
	m := parseMove(t, "d3d5")
	if p.SeeGe(m, 0) {
		t.Fatalf("losing rook-for-pawn exchange at threshold 0")
	}
	want := makruk.PieceValue[makruk.Pawn] - makruk.PieceValue[makruk.Rook]
	if !p.SeeGe(m, want) {
		t.Fatalf("exchange value below its exact balance")
	}
	if p.SeeGe(m, want+1) {
		t.Fatalf("exchange value above its exact balance")
	}
}

func TestSeeGeXRayBackup(t *testing.T) {
	// Same exchange with a second rook behind the first: the x-ray
	// recapture turns it into pawn-and-rook for rook.
	p := mustParse(t, "3r3k/8/8/3p4/8/3R4/8/3R3K w 0 1")
	m := parseMove(t, "d3d5")
	if !p.SeeGe(m, makruk.PieceValue[makruk.Pawn]) {
		t.Fatalf("backed-up exchange undervalued")
	}
	if p.SeeGe(m, makruk.PieceValue[makruk.Pawn]+1) {
		t.Fatalf("backed-up exchange overvalued")
	}
}

func TestSeeGeQuietMove(t *testing.T) {
	// Moving the rook onto a square a pawn attacks loses the rook.
	p := mustParse(t, "7k/8/8/8/4p3/8/3R3K/8 w 0 1")
	m := parseMove(t, "d2d3")
	if p.SeeGe(m, 0) {
		t.Fatalf("rook en prise valued at zero")
	}
	if !p.SeeGe(m, -makruk.PieceValue[makruk.Rook]) {
		t.Fatalf("rook en prise worse than a whole rook")
	}

	// The same quiet move with the pawn elsewhere is value zero.
	p = mustParse(t, "7k/8/8/8/8/8/3R3K/8 w 0 1")
	if !p.SeeGe(m, 0) || p.SeeGe(m, 1) {
		t.Fatalf("safe quiet move should be exactly zero")
	}
}

func TestSeeGePinnedDefender(t *testing.T) {
	// The black met on e6 nominally defends d5, but it is pinned to its
	// king by the rook on e1 and takes no part in the exchange: the
	// knight wins the pawn outright.
	p := mustParse(t, "4k3/8/4m3/3p4/8/2N5/8/4R1K1 w 0 1")
	m := parseMove(t, "c3d5")
	if !p.SeeGe(m, makruk.PieceValue[makruk.Pawn]) {
		t.Fatalf("pinned defender still counted in the exchange")
	}
	if p.SeeGe(m, makruk.PieceValue[makruk.Pawn]+1) {
		t.Fatalf("pawn capture overvalued")
	}
}

func TestSeeGeMonotonic(t *testing.T) {
	p := mustParse(t, "3r3k/8/8/3p4/8/3R4/8/3R3K w 0 1")
	m := parseMove(t, "d3d5")
	prev := true
	for threshold := -600; threshold <= 600; threshold += 50 {
		got := p.SeeGe(m, threshold)
		if got && !prev {
			t.Fatalf("SeeGe not monotonic in the threshold at %d", threshold)
		}
		prev = got
	}
}

func TestSeeGePromotionIsZero(t *testing.T) {
	p := mustParse(t, "k7/8/8/4P3/8/8/8/K7 w 0 1")
	m := parseMove(t, "e5e6m")
	if !p.SeeGe(m, 0) || p.SeeGe(m, 1) {
		t.Fatalf("promotions must evaluate as exactly zero")
	}
}
