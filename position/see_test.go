package position

import "testing"

// TestSeeDefendedCannon exercises spec.md §8 scenario S4: white's rook
// captures a black cannon that is defended by a black rook further down
// the file. Losing a 600-point rook to win a 550-point cannon is a
// losing trade, so see_ge(...,0) must be false.
func TestSeeDefendedCannon(t *testing.T) {
	fen := "4k2r1/9/9/9/9/9/9/7c1/7R1/3K5 w - - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := NewMove(mustSquare(t, "h1"), mustSquare(t, "h2"))
	if !pos.PseudoLegal(m) || !pos.Legal(m) {
		t.Fatalf("expected h1h2 to be legal")
	}
	if pos.SeeGE(m, 0) {
		t.Fatalf("expected see_ge(h1h2, 0) to be false: losing a rook for a cannon")
	}
	if !pos.SeeGE(m, -RookValueMg) {
		t.Fatalf("expected see_ge(h1h2, -RookValueMg) to be true: never worse than losing the whole rook")
	}
}

// TestSeeUndefendedCapture checks the simple, unambiguous case: capturing
// an undefended piece is always at least as good as the threshold of
// that piece's own value.
func TestSeeUndefendedCapture(t *testing.T) {
	fen := "4k4/9/9/9/9/9/9/4c4/4R4/4K4 w - - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := NewMove(mustSquare(t, "e1"), mustSquare(t, "e2"))
	if !pos.PseudoLegal(m) || !pos.Legal(m) {
		t.Fatalf("expected e1e2 to be legal")
	}
	if !pos.SeeGE(m, CannonValueMg) {
		t.Fatalf("expected see_ge(e1e2, CannonValueMg) to be true: the cannon is undefended")
	}
	if pos.SeeGE(m, CannonValueMg+1) {
		t.Fatalf("expected see_ge(e1e2, CannonValueMg+1) to be false")
	}
}

// TestSeePinnedAttackerExcluded exercises spec.md §4.7's pin exclusion:
// the black rook that would otherwise recapture on e3 is the sole blocker
// between the black king and a white rook further down rank 6, so it is
// pinned and must not be allowed to join the exchange - the capture
// resolves as if the cannon were undefended.
func TestSeePinnedAttackerExcluded(t *testing.T) {
	fen := "9/9/9/k3r3R/9/9/4c4/4R4/9/5K3 w - - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := NewMove(mustSquare(t, "e2"), mustSquare(t, "e3"))
	if !pos.PseudoLegal(m) || !pos.Legal(m) {
		t.Fatalf("expected e2e3 to be legal")
	}
	if !pos.SeeGE(m, CannonValueMg) {
		t.Fatalf("expected see_ge(e2e3, CannonValueMg) to be true: the rook on e6 is pinned and cannot recapture")
	}
	if pos.SeeGE(m, CannonValueMg+1) {
		t.Fatalf("expected see_ge(e2e3, CannonValueMg+1) to be false")
	}
}

// TestSeeKingFileAttacker checks the limit of spec.md §4.7's
// flying-general rule: the capture on e3 leaves the e-file between the
// black king and e3 clear, but neither king stands next to e3, so the
// black king does not join the exchange and the rook wins the cannon
// outright.
func TestSeeKingFileAttacker(t *testing.T) {
	fen := "4k4/9/9/9/9/9/4c4/4R4/9/4K4 w - - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := NewMove(mustSquare(t, "e2"), mustSquare(t, "e3"))
	if !pos.PseudoLegal(m) || !pos.Legal(m) {
		t.Fatalf("expected e2e3 to be legal")
	}
	if !pos.SeeGE(m, CannonValueMg) {
		t.Fatalf("expected see_ge(e2e3, CannonValueMg) to be true: the black king on e9 cannot recapture on e3")
	}
	if pos.SeeGE(m, CannonValueMg+1) {
		t.Fatalf("expected see_ge(e2e3, CannonValueMg+1) to be false")
	}
}
