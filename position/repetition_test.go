package position

import "testing"

func chainState(prev *StateInfo, key uint64, checkers bool, chased Bitboard, plies int) *StateInfo {
	st := &StateInfo{Previous: prev, Key: key, PliesFromNull: plies}
	if checkers {
		st.CheckersBB = SquareBB(Square(0))
	}
	st.Chased = chased
	return st
}

// TestIsRepeatedPlainDraw covers spec.md §8 property 7's plain-repetition
// case: the same key four plies back, no checkers on the intermediate
// ancestors examined, and no persistent chase -> a draw.
func TestIsRepeatedPlainDraw(t *testing.T) {
	var pos Position
	s0 := chainState(nil, 100, false, Bitboard{}, 0)
	s1 := chainState(s0, 200, false, Bitboard{}, 1)
	s2 := chainState(s1, 300, false, Bitboard{}, 2)
	s3 := chainState(s2, 400, false, Bitboard{}, 3)
	s4 := chainState(s3, 100, false, Bitboard{}, 4)
	pos.st = s4

	repeated, value := pos.IsRepeated()
	if !repeated {
		t.Fatal("expected a repetition to be detected")
	}
	if value != ValueDraw {
		t.Fatalf("expected ValueDraw, got %d", value)
	}
}

// TestIsRepeatedPerpetualCheckThem covers spec.md §4.9's row for a
// perpetual check delivered only by the opponent ("them"): every
// even-offset ancestor (the plies where it was their move that just
// landed) gave check, while the odd-offset ("us") ancestors never did.
// Perpetual check is illegal for the side giving it, so the side to
// move now wins - a positive mate score, not a draw or a loss.
func TestIsRepeatedPerpetualCheckThem(t *testing.T) {
	var pos Position
	s0 := chainState(nil, 100, true, Bitboard{}, 0)
	s1 := chainState(s0, 200, false, Bitboard{}, 1)
	s2 := chainState(s1, 300, true, Bitboard{}, 2)
	s3 := chainState(s2, 400, false, Bitboard{}, 3)
	s4 := chainState(s3, 100, true, Bitboard{}, 4)
	pos.st = s4

	repeated, value := pos.IsRepeated()
	if !repeated {
		t.Fatal("expected a repetition to be detected")
	}
	if value != ValueMate {
		t.Fatalf("expected a winning perpetual-check score, got %d", value)
	}
}

// TestIsRepeatedPerpetualCheckUs is the mirror of the above: the odd
// offsets (our own moves) are the ones giving check on every examined
// ply, so it is the side to move now that is perpetually checking -
// and that side loses.
func TestIsRepeatedPerpetualCheckUs(t *testing.T) {
	var pos Position
	s0 := chainState(nil, 100, false, Bitboard{}, 0)
	s1 := chainState(s0, 200, true, Bitboard{}, 1)
	s2 := chainState(s1, 300, false, Bitboard{}, 2)
	s3 := chainState(s2, 400, true, Bitboard{}, 3)
	s4 := chainState(s3, 100, false, Bitboard{}, 4)
	pos.st = s4

	repeated, value := pos.IsRepeated()
	if !repeated {
		t.Fatal("expected a repetition to be detected")
	}
	if value != -ValueMate {
		t.Fatalf("expected a losing perpetual-check score, got %d", value)
	}
}

// TestIsRepeatedPerpetualCheckBoth covers both sides giving check on
// every examined ply - neither side is uniquely at fault, so it's a
// plain draw rather than a mate score either way.
func TestIsRepeatedPerpetualCheckBoth(t *testing.T) {
	var pos Position
	s0 := chainState(nil, 100, true, Bitboard{}, 0)
	s1 := chainState(s0, 200, true, Bitboard{}, 1)
	s2 := chainState(s1, 300, true, Bitboard{}, 2)
	s3 := chainState(s2, 400, true, Bitboard{}, 3)
	s4 := chainState(s3, 100, true, Bitboard{}, 4)
	pos.st = s4

	repeated, value := pos.IsRepeated()
	if !repeated {
		t.Fatal("expected a repetition to be detected")
	}
	if value != ValueDraw {
		t.Fatalf("expected ValueDraw, got %d", value)
	}
}

// TestIsRepeatedPerpetualChaseThem covers the perpetual-chase branch
// with the chase coming from the opponent: the same piece is chased on
// every examined even-offset ("them") ply and never on the odd-offset
// ("us") plies, so the chasing side (them) loses and the side to move
// now wins.
func TestIsRepeatedPerpetualChaseThem(t *testing.T) {
	var pos Position
	chased := SquareBB(mustSquareNoTB("d4"))
	s0 := chainState(nil, 100, false, Bitboard{}, 0)
	s1 := chainState(s0, 200, false, Bitboard{}, 1)
	s2 := chainState(s1, 300, false, chased, 2)
	s3 := chainState(s2, 400, false, Bitboard{}, 3)
	s4 := chainState(s3, 100, false, chased, 4)
	pos.st = s4

	repeated, value := pos.IsRepeated()
	if !repeated {
		t.Fatal("expected a repetition to be detected")
	}
	if value != ValueMate {
		t.Fatalf("expected a winning perpetual-chase score, got %d", value)
	}
}

// TestIsRepeatedPerpetualChaseUs is the mirror: the chase persists
// only on the odd-offset ("us") plies, so it is the side to move now
// doing the illegal chasing, and that side loses.
func TestIsRepeatedPerpetualChaseUs(t *testing.T) {
	var pos Position
	chased := SquareBB(mustSquareNoTB("d4"))
	s0 := chainState(nil, 100, false, Bitboard{}, 0)
	s1 := chainState(s0, 200, false, chased, 1)
	s2 := chainState(s1, 300, false, Bitboard{}, 2)
	s3 := chainState(s2, 400, false, chased, 3)
	s4 := chainState(s3, 100, false, Bitboard{}, 4)
	pos.st = s4

	repeated, value := pos.IsRepeated()
	if !repeated {
		t.Fatal("expected a repetition to be detected")
	}
	if value != -ValueMate {
		t.Fatalf("expected a losing perpetual-chase score, got %d", value)
	}
}

func TestIsRepeatedNotYet(t *testing.T) {
	var pos Position
	s0 := chainState(nil, 100, false, Bitboard{}, 0)
	s1 := chainState(s0, 200, false, Bitboard{}, 1)
	pos.st = s1

	repeated, _ := pos.IsRepeated()
	if repeated {
		t.Fatal("expected no repetition with fewer than 4 plies of history")
	}
}

func mustSquareNoTB(s string) Square {
	f := File(s[0] - 'a')
	r := Rank(s[1] - '0')
	return MakeSquare(f, r)
}
