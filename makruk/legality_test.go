package makruk_test

import (
	"testing"

	"makruk-engine/makruk"
)

func TestPinnedPieceMoves(t *testing.T) {
	// The knight on e2 is pinned by the rook on e4 and may not move at
	// all; the test relies on knights never staying on a pin ray.
	p := mustParse(t, "4k3/8/8/8/4r3/8/4N3/4K3 w 0 1")
	m := parseMove(t, "e2c3")
	if !p.PseudoLegal(m) {
		t.Fatalf("knight move not pseudo-legal")
	}
	if p.Legal(m) {
		t.Fatalf("pinned knight allowed to leave the pin ray")
	}

	// A pinned rook may slide along the ray but not off it.
	p = mustParse(t, "4k3/8/8/8/4r3/8/4R3/4K3 w 0 1")
	if m := parseMove(t, "e2e3"); !p.PseudoLegal(m) || !p.Legal(m) {
		t.Fatalf("pinned rook move along the ray rejected")
	}
	if m := parseMove(t, "e2d2"); p.Legal(m) {
		t.Fatalf("pinned rook allowed off the pin ray")
	}
}

func TestKingSafety(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/4r3/8/8/4K3 w 0 1")

	// Stepping off the file escapes the check.
	if m := parseMove(t, "e1d1"); !p.PseudoLegal(m) || !p.Legal(m) {
		t.Fatalf("king escape to d1 rejected")
	}
	// e2 stays on the rook's file: the vacated king square must not
	// shield the destination.
	if m := parseMove(t, "e1e2"); p.PseudoLegal(m) {
		t.Fatalf("king allowed to stay on the checking file")
	}

	// A checker defended along its own file cannot be captured by the
	// king.
	p = mustParse(t, "3kr3/8/8/8/8/8/4r3/4K3 w 0 1")
	if m := parseMove(t, "e1e2"); p.PseudoLegal(m) && p.Legal(m) {
		t.Fatalf("king allowed to capture a defended checker")
	}
}

func TestCheckEvasions(t *testing.T) {
	p := mustParse(t, "4k3/8/8/8/4r3/8/3R4/4K3 w 0 1")

	// Blocking the check is allowed.
	if m := parseMove(t, "d2e2"); !p.PseudoLegal(m) || !p.Legal(m) {
		t.Fatalf("check block rejected")
	}
	// Moves that ignore the check are not pseudo-legal.
	if m := parseMove(t, "d2d3"); p.PseudoLegal(m) {
		t.Fatalf("non-evading move accepted while in check")
	}

	// In a double check only the king may move.
	p = mustParse(t, "4k3/8/8/8/4r3/3n4/3R4/4K3 w 0 1")
	if m := parseMove(t, "d2e2"); p.PseudoLegal(m) {
		t.Fatalf("blocking move accepted in a double check")
	}
	if m := parseMove(t, "e1d1"); !p.PseudoLegal(m) || !p.Legal(m) {
		t.Fatalf("king escape rejected in a double check")
	}
}

func TestPseudoLegalRejectsCorruptMoves(t *testing.T) {
	p := mustParse(t, makruk.StartFEN)

	cases := []struct {
		name string
		m    makruk.Move
	}{
		{"empty from square", parseMove(t, "e4e5")},
		{"enemy piece", parseMove(t, "e6e5")},
		{"capture own piece", parseMove(t, "a1a3")},
		{"rook jump", parseMove(t, "a1a5")},
		{"knight to bad square", parseMove(t, "b1b3")},
		{"pawn sideways", parseMove(t, "e3d3")},
		{"pawn double push", parseMove(t, "e3e5")},
		{"pawn capture to empty", parseMove(t, "e3d4")},
		{"promotion off sixth rank", parseMove(t, "e3e4m")},
	}
	for _, tc := range cases {
		if p.PseudoLegal(tc.m) {
			t.Errorf("%s: move %s accepted", tc.name, tc.m)
		}
	}
}

func TestPseudoLegalPromotion(t *testing.T) {
	p := mustParse(t, "k7/8/3p4/4P3/8/8/8/K7 w 0 1")

	// Push and capture onto the sixth rank both promote.
	if m := parseMove(t, "e5e6m"); !p.PseudoLegal(m) {
		t.Fatalf("promotion push rejected")
	}
	if m := parseMove(t, "e5d6m"); !p.PseudoLegal(m) {
		t.Fatalf("promotion capture rejected")
	}
	// The same steps without the promotion flag are not moves at all.
	if m := parseMove(t, "e5e6"); p.PseudoLegal(m) {
		t.Fatalf("bare pawn step onto the sixth rank accepted")
	}
}

func TestGivesCheckDirectAndDiscovered(t *testing.T) {
	// Rook to e-file is a direct check.
	p := mustParse(t, "4k3/8/8/8/8/8/3R4/4K2R w 0 1")
	if m := parseMove(t, "d2e2"); !p.GivesCheck(m) {
		t.Fatalf("direct rook check not detected")
	}
	if m := parseMove(t, "d2d3"); p.GivesCheck(m) {
		t.Fatalf("quiet rook move flagged as check")
	}

	// The knight on e4 shields the black king from the rook on e1;
	// any knight move discovers the check.
	p = mustParse(t, "4k3/8/8/8/4N3/8/8/4R2K w 0 1")
	if m := parseMove(t, "e4c5"); !p.GivesCheck(m) {
		t.Fatalf("discovered check not detected")
	}

	// GivesCheck must agree with the in-check state after the move.
	p = mustParse(t, makruk.StartFEN)
	for _, s := range []string{"e3e4", "g8e7", "g1e2", "e7c6"} {
		m := parseMove(t, s)
		want := p.GivesCheck(m)
		p.DoMove(m, want)
		if p.InCheck() != want {
			t.Fatalf("GivesCheck(%s)=%v disagrees with InCheck", s, want)
		}
	}
}
