package position

import "testing"

func TestFENRoundTrip(t *testing.T) {
	cases := []string{
		FENStartPos,
		"4k4/9/9/9/9/9/9/9/9/4K4 w - - 0 1",
	}
	for _, fen := range cases {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.FEN(); got != fen {
			t.Fatalf("FEN round trip: got %q, want %q", got, fen)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-fen",
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9 w - - 0 1", // missing a rank
		"rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR x - - 0 1",
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Fatalf("ParseFEN(%q): expected an error, got none", fen)
		}
	}
}

func TestSetPanicsOnMalformedFEN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Set: expected a panic on malformed FEN")
		}
	}()
	var p Position
	p.Set("garbage", &StateInfo{}, &Worker{})
}

func TestStartPositionPseudoLegalMoves(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	accept := []string{"h2e2", "b0c2"}
	for _, s := range accept {
		m := NewMove(mustSquare(t, s[0:2]), mustSquare(t, s[2:4]))
		if !pos.PseudoLegal(m) {
			t.Errorf("PseudoLegal(%s): want true, got false", s)
		}
	}

	reject := []string{"e0d2", "a0a5"}
	for _, s := range reject {
		m := NewMove(mustSquare(t, s[0:2]), mustSquare(t, s[2:4]))
		if pos.PseudoLegal(m) {
			t.Errorf("PseudoLegal(%s): want false, got true", s)
		}
	}
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	f := File(s[0] - 'a')
	r := Rank(s[1] - '0')
	return MakeSquare(f, r)
}

func TestKingSquare(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := pos.KingSquare(White); got != MakeSquare(FileE, Rank0) {
		t.Errorf("White king square: got %v, want e0", got)
	}
	if got := pos.KingSquare(Black); got != MakeSquare(FileE, Rank9) {
		t.Errorf("Black king square: got %v, want e9", got)
	}
}

func TestFlip(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	flipped := pos.Flip()
	if flipped.SideToMove() != Black {
		t.Fatalf("Flip: side to move should swap to Black")
	}
	back := flipped.Flip()
	if back.FEN() != pos.FEN() {
		t.Fatalf("Flip twice: got %q, want %q", back.FEN(), pos.FEN())
	}
}
