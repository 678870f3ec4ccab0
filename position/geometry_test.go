package position

import "testing"

func TestKnightLegBlock(t *testing.T) {
	from := MakeSquare(FileE, Rank(4))
	to := MakeSquare(File(6), Rank(5)) // delta (2,1), leg at f4 (delta.legdf=1, legdr=0)
	leg := MakeSquare(File(5), Rank(4))

	clear := Bitboard{}
	if !AttacksKnight(from, clear).Has(to) {
		t.Fatal("expected the knight move to be reachable with an empty board")
	}
	blocked := clear.WithSquare(leg)
	if AttacksKnight(from, blocked).Has(to) {
		t.Fatal("expected the knight move to be blocked when its leg square is occupied")
	}
}

func TestCannonScreenHopGeometry(t *testing.T) {
	from := MakeSquare(FileA, Rank0)
	occ := Bitboard{}.WithSquare(from)
	if !AttacksCannon(from, occ).IsZero() {
		t.Fatal("a cannon with no screens has no capture targets")
	}

	screen := MakeSquare(FileA, Rank(3))
	target := MakeSquare(FileA, Rank(6))
	occ = occ.WithSquare(screen).WithSquare(target)
	attacks := AttacksCannon(from, occ)
	if !attacks.Has(target) {
		t.Fatal("expected the cannon to capture past its single screen")
	}
	if attacks.Has(screen) {
		t.Fatal("the screen square itself is never a capture target")
	}

	// A second piece between the screen and the target removes the
	// capture: a cannon can only ever hop exactly one piece.
	secondScreen := MakeSquare(FileA, Rank(5))
	occ = occ.WithSquare(secondScreen)
	attacks = AttacksCannon(from, occ)
	if attacks.Has(target) {
		t.Fatal("expected the cannon capture to be blocked by a second intervening piece")
	}
}

func TestBishopRiverBound(t *testing.T) {
	from := MakeSquare(FileE, Rank(2))
	clear := Bitboard{}
	attacks := AttacksBishop(from, clear)
	for r := Rank(5); r <= Rank9; r++ {
		if attacks.Has(MakeSquare(FileE, r)) {
			t.Fatalf("bishop on e2 must not reach rank %d across the river", r)
		}
	}
	if !attacks.Has(MakeSquare(File(6), Rank(4))) {
		t.Fatal("expected the bishop on e2 to reach g4 (two-step diagonal within its own half)")
	}
}

func TestPawnAttacksRiverRule(t *testing.T) {
	before := MakeSquare(FileE, Rank(3))
	afterRiver := MakeSquare(FileE, Rank(6))

	beforeAttacks := PawnAttacksBB(White, before)
	if beforeAttacks.Has(MakeSquare(File(3), Rank(3))) || beforeAttacks.Has(MakeSquare(File(5), Rank(3))) {
		t.Fatal("a white pawn short of the river must not attack sideways")
	}
	if !beforeAttacks.Has(MakeSquare(FileE, Rank(4))) {
		t.Fatal("a white pawn always attacks one step forward")
	}

	afterAttacks := PawnAttacksBB(White, afterRiver)
	if !afterAttacks.Has(MakeSquare(File(3), Rank(6))) || !afterAttacks.Has(MakeSquare(File(5), Rank(6))) {
		t.Fatal("a white pawn past the river must attack sideways too")
	}
}
