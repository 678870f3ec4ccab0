package position

// This file is the geometry oracle described in SPEC_FULL.md §4.1: a
// pure, side-effect-free set of attack-bitboard queries for the seven
// Xiangqi piece kinds, ported from original_source/src/position.cpp's
// attackers_to/checkers_to formulas and the Stockfish Xiangqi fork's
// attack-table generation they depend on.

type knightDelta struct {
	df, dr       int
	legdf, legdr int
}

// knightDeltas enumerates the 8 horse-move offsets together with the
// "leg" square (relative to the square the horse stands on) that must
// be empty for the move to be playable. This is the one place the
// Xiangqi horse differs from an orthodox chess knight.
var knightDeltas = [8]knightDelta{
	{1, 2, 0, 1}, {2, 1, 1, 0}, {2, -1, 1, 0}, {1, -2, 0, -1},
	{-1, -2, 0, -1}, {-2, -1, -1, 0}, {-2, 1, -1, 0}, {-1, 2, 0, 1},
}

var knightShapeBB [SquareNB]Bitboard // geometric reach, occupancy-independent
var bishopShapeBB [SquareNB][4]struct {
	mid, dst Square
	ok       bool
}
var advisorAttackBB [SquareNB]Bitboard
var kingAttackBB [SquareNB]Bitboard
var pawnAttackBB [ColorNB][SquareNB]Bitboard
var pawnAttackToBB [ColorNB][SquareNB]Bitboard

var whitePalace, blackPalace Bitboard

func inWhiteHalf(r Rank) bool { return r <= 4 }

func init() {
	for f := File(3); f <= 5; f++ {
		for r := Rank(0); r <= 2; r++ {
			whitePalace = whitePalace.WithSquare(MakeSquare(f, r))
		}
		for r := Rank(7); r <= 9; r++ {
			blackPalace = blackPalace.WithSquare(MakeSquare(f, r))
		}
	}

	for s := Square(0); s < SquareNB; s++ {
		f, r := FileOf(s), RankOf(s)

		// Knight geometric shape (no occupancy / leg check): used for
		// the occupancy-independent attacks_bb<KNIGHT>(sq) overload and
		// for sniper-candidate detection in BlockersForKing.
		for _, d := range knightDeltas {
			nf, nr := File(int(f)+d.df), Rank(int(r)+d.dr)
			if onBoard(nf, nr) {
				knightShapeBB[s] = knightShapeBB[s].WithSquare(MakeSquare(nf, nr))
			}
		}

		// Bishop (elephant): two-step diagonal, blocked by the midpoint,
		// confined to the mover's own half.
		diag := [4][2]int{{2, 2}, {2, -2}, {-2, 2}, {-2, -2}}
		for i, d := range diag {
			nf, nr := File(int(f)+d[0]), Rank(int(r)+d[1])
			mf, mr := File(int(f)+d[0]/2), Rank(int(r)+d[1]/2)
			if onBoard(nf, nr) && inWhiteHalf(r) == inWhiteHalf(nr) {
				bishopShapeBB[s][i] = struct {
					mid, dst Square
					ok       bool
				}{MakeSquare(mf, mr), MakeSquare(nf, nr), true}
			}
		}

		// Advisor: one-step diagonal, confined to the owner's palace.
		palace := palaceOf(s)
		if !palace.IsZero() {
			for _, d := range [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
				nf, nr := File(int(f)+d[0]), Rank(int(r)+d[1])
				if onBoard(nf, nr) && palace.Has(MakeSquare(nf, nr)) {
					advisorAttackBB[s] = advisorAttackBB[s].WithSquare(MakeSquare(nf, nr))
				}
			}
			for _, d := range [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
				nf, nr := File(int(f)+d[0]), Rank(int(r)+d[1])
				if onBoard(nf, nr) && palace.Has(MakeSquare(nf, nr)) {
					kingAttackBB[s] = kingAttackBB[s].WithSquare(MakeSquare(nf, nr))
				}
			}
		}

		// Pawn: one step forward always; sideways only once past the river.
		for _, c := range [2]Color{White, Black} {
			fwd := 1
			if c == Black {
				fwd = -1
			}
			if nr := Rank(int(r) + fwd); nr >= Rank0 && nr <= Rank9 {
				pawnAttackBB[c][s] = pawnAttackBB[c][s].WithSquare(MakeSquare(f, nr))
			}
			pastRiver := (c == White && !inWhiteHalf(r)) || (c == Black && inWhiteHalf(r))
			if pastRiver {
				if f > FileA {
					pawnAttackBB[c][s] = pawnAttackBB[c][s].WithSquare(MakeSquare(f-1, r))
				}
				if f < FileI {
					pawnAttackBB[c][s] = pawnAttackBB[c][s].WithSquare(MakeSquare(f+1, r))
				}
			}
		}
	}

	// pawn_attacks_to_bb(c, sq): squares holding a color-c pawn that attack
	// sq. This is the reverse relation of pawnAttackBB, built by inverting it.
	for s := Square(0); s < SquareNB; s++ {
		for _, c := range [2]Color{White, Black} {
			bb := pawnAttackBB[c][s]
			for bb2 := bb; !bb2.IsZero(); {
				t := bb2.PopLSB()
				pawnAttackToBB[c][t] = pawnAttackToBB[c][t].WithSquare(s)
			}
		}
	}

	initLines()
}

// palaceOf returns the palace a square belongs to (white or black), or
// the empty bitboard if the square is outside both palaces.
func palaceOf(s Square) Bitboard {
	if whitePalace.Has(s) {
		return whitePalace
	}
	if blackPalace.Has(s) {
		return blackPalace
	}
	return Bitboard{}
}

// initLines fills the line_bb/between_bb lookup tables declared in
// bitboard.go, including the knight-leg special case.
func initLines() {
	for a := Square(0); a < SquareNB; a++ {
		fa, ra := FileOf(a), RankOf(a)
		for b := Square(0); b < SquareNB; b++ {
			if a == b {
				continue
			}
			fb, rb := FileOf(b), RankOf(b)
			switch {
			case fa == fb:
				lineLookup[a][b] = FileBB(fa)
				lo, hi := ra, rb
				if lo > hi {
					lo, hi = hi, lo
				}
				for r := lo + 1; r < hi; r++ {
					betweenLookup[a][b] = betweenLookup[a][b].WithSquare(MakeSquare(fa, r))
				}
			case ra == rb:
				lineLookup[a][b] = RankBB(ra)
				lo, hi := fa, fb
				if lo > hi {
					lo, hi = hi, lo
				}
				for f := lo + 1; f < hi; f++ {
					betweenLookup[a][b] = betweenLookup[a][b].WithSquare(MakeSquare(f, ra))
				}
			default:
				// Not rank/file aligned: check whether b is a knight's
				// move from a. The leg is relative to b, the candidate
				// sniper (see betweenBB's doc comment in bitboard.go).
				for _, d := range knightDeltas {
					if File(int(fb)+d.df) == fa && Rank(int(rb)+d.dr) == ra {
						leg := MakeSquare(File(int(fb)+d.legdf), Rank(int(rb)+d.legdr))
						betweenLookup[a][b] = SquareBB(leg)
						break
					}
				}
			}
		}
	}
}

// slideAttacks scans in the four rank/file directions from sq, stopping
// (inclusive) at the first occupied square in each direction. This is the
// ROOK attack set and also the CANNON quiet-move set (pseudo_legal routes
// CANNON quiet moves through this same formula, per spec.md §4.5).
func slideAttacks(sq Square, occ Bitboard) Bitboard {
	var bb Bitboard
	f, r := FileOf(sq), RankOf(sq)
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, d := range dirs {
		nf, nr := int(f)+d[0], int(r)+d[1]
		for onBoard(File(nf), Rank(nr)) {
			s := MakeSquare(File(nf), Rank(nr))
			bb = bb.WithSquare(s)
			if occ.Has(s) {
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return bb
}

// cannonAttacks returns the squares a cannon on sq could capture on,
// i.e. exactly one piece (the screen) beyond which lies the target.
func cannonAttacks(sq Square, occ Bitboard) Bitboard {
	var bb Bitboard
	f, r := FileOf(sq), RankOf(sq)
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, d := range dirs {
		nf, nr := int(f)+d[0], int(r)+d[1]
		screened := false
		for onBoard(File(nf), Rank(nr)) {
			s := MakeSquare(File(nf), Rank(nr))
			if occ.Has(s) {
				if screened {
					bb = bb.WithSquare(s)
					break
				}
				screened = true
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return bb
}

// knightAttacks returns the squares a horse on sq can reach, leg-checked
// relative to sq (the mover's own square).
func knightAttacks(sq Square, occ Bitboard) Bitboard {
	var bb Bitboard
	f, r := FileOf(sq), RankOf(sq)
	for _, d := range knightDeltas {
		nf, nr := File(int(f)+d.df), Rank(int(r)+d.dr)
		if !onBoard(nf, nr) {
			continue
		}
		leg := MakeSquare(File(int(f)+d.legdf), Rank(int(r)+d.legdr))
		if !occ.Has(leg) {
			bb = bb.WithSquare(MakeSquare(nf, nr))
		}
	}
	return bb
}

// knightAttacksTo returns the squares from which a horse would attack sq,
// leg-checked relative to each candidate source square.
func knightAttacksTo(sq Square, occ Bitboard) Bitboard {
	var bb Bitboard
	f, r := FileOf(sq), RankOf(sq)
	for _, d := range knightDeltas {
		// Source square reaches sq via delta d, so source = sq - d.
		sf, sr := File(int(f)-d.df), Rank(int(r)-d.dr)
		if !onBoard(sf, sr) {
			continue
		}
		leg := MakeSquare(File(int(sf)+d.legdf), Rank(int(sr)+d.legdr))
		if !occ.Has(leg) {
			bb = bb.WithSquare(MakeSquare(sf, sr))
		}
	}
	return bb
}

func bishopAttacks(sq Square, occ Bitboard) Bitboard {
	var bb Bitboard
	for _, c := range bishopShapeBB[sq] {
		if c.ok && !occ.Has(c.mid) {
			bb = bb.WithSquare(c.dst)
		}
	}
	return bb
}

// AttacksRook returns the ROOK attack set of a piece on sq given occupancy occ.
func AttacksRook(sq Square, occ Bitboard) Bitboard { return slideAttacks(sq, occ) }

// AttacksCannon returns the CANNON capture set of a piece on sq given occupancy occ.
func AttacksCannon(sq Square, occ Bitboard) Bitboard { return cannonAttacks(sq, occ) }

// AttacksKnight returns the KNIGHT (horse) attack set of a piece on sq,
// leg-checked against occ. With an empty occ (Bitboard{}) this degrades
// to the pure geometric shape, matching the occupancy-independent overload
// spec.md §4.1 describes for sniper-candidate detection.
func AttacksKnight(sq Square, occ Bitboard) Bitboard { return knightAttacks(sq, occ) }

// AttacksKnightShape returns the occupancy-independent knight geometry,
// i.e. attacks_bb<KNIGHT>(sq) with no occupancy argument.
func AttacksKnightShape(sq Square) Bitboard { return knightShapeBB[sq] }

// AttacksKnightTo returns the KNIGHT_TO attack set: squares from which a
// horse would attack sq, leg-checked against occ.
func AttacksKnightTo(sq Square, occ Bitboard) Bitboard { return knightAttacksTo(sq, occ) }

// AttacksBishop returns the BISHOP (elephant) attack set of a piece on sq
// given occupancy occ.
func AttacksBishop(sq Square, occ Bitboard) Bitboard { return bishopAttacks(sq, occ) }

// AttacksAdvisor returns the fixed ADVISOR attack set of a piece on sq.
func AttacksAdvisor(sq Square) Bitboard { return advisorAttackBB[sq] }

// AttacksKing returns the fixed KING attack set of a piece on sq.
func AttacksKing(sq Square) Bitboard { return kingAttackBB[sq] }

// PawnAttacksBB returns the squares a color-c pawn on sq attacks.
func PawnAttacksBB(c Color, sq Square) Bitboard { return pawnAttackBB[c][sq] }

// PawnAttacksToBB returns the squares holding a color-c pawn that attack sq.
func PawnAttacksToBB(c Color, sq Square) Bitboard { return pawnAttackToBB[c][sq] }

// AttacksBB dispatches on piece kind, matching the generic
// attacks_bb(kind, from, occ) path spec.md §4.5 uses for pseudo_legal.
// ADVISOR and KING ignore occ (their attack sets are fixed, palace-bound
// hops); PAWN is not handled here since it needs a color, not just a kind
// (callers use PawnAttacksBB directly, as pseudo_legal does).
func AttacksBB(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Rook:
		return slideAttacks(sq, occ)
	case Cannon:
		return cannonAttacks(sq, occ)
	case Knight:
		return knightAttacks(sq, occ)
	case Bishop:
		return bishopAttacks(sq, occ)
	case Advisor:
		return advisorAttackBB[sq]
	case King:
		return kingAttackBB[sq]
	default:
		return Bitboard{}
	}
}
