package position

// chased computes, after a move has just been made, which of the
// now-side-to-move's (the victim's) pieces the side that just moved
// puts under an unanswerable attack - a "chase" under the Asian
// Xiangqi rule against perpetual chasing. Ports spec.md §4.8's rules:
//
//  1. an attack that is not a check, not on an unpromoted pawn (a pawn
//     still on its own half), and that did not already threaten the
//     target before the move;
//  2. an attack on a rook by a knight or cannon, or on a rook/cannon/
//     knight by a bishop or advisor, always counts, defended or not -
//     these pairs are the rule-set's "weaker attacker" tier, distinct
//     from raw material value (a cannon and a knight share a material
//     value with each other but not with a rook);
//  3. mutual attacks between two pieces of the same kind are not
//     chases, unless the attacker is an "asymmetric" knight (the
//     target cannot hop back to the attacker's square) or the target
//     is pinned;
//  4. any other new attack is a chase only if the target is
//     unprotected, or its only defender is the king and the king
//     cannot legally recapture (doing so would face the enemy king on
//     a clear file).
//
// A move that gives check is never also scored as a chase.
//
// Two sources of new attacks are considered: the moved piece's own
// direct attacks from its destination, and attacks newly opened up
// for other pieces of the mover's side because the origin square
// emptied ("discovered" attacks). spec.md §4.8 names a third source -
// chase squares created purely by a piece newly becoming a blocker
// for either king this ply, with no accompanying direct or discovered
// attack of its own - which is not implemented here; see DESIGN.md.
func (p *Position) chased() Bitboard {
	var result Bitboard

	dp := p.st.DirtyPiece
	if dp.DirtyNum == 0 {
		return result
	}
	if !p.st.CheckersBB.IsZero() {
		return result
	}

	mover := p.sideToMove.Opposite()
	victim := p.sideToMove
	occ := p.occupied()

	ourKing := p.kingSquare(victim)
	theirKing := p.kingSquare(mover)
	if ourKing == SquareNone || theirKing == SquareNone {
		return result
	}

	pins := p.st.BlockersForKing[victim]
	if FileOf(ourKing) == FileOf(theirKing) {
		between := BetweenBB(ourKing, theirKing)
		if between.And(occ).PopCount() == 1 {
			pins = pins.Or(between.And(p.byColorBB[victim]))
		}
	}

	excluded := p.byColorBB[victim].And(p.byTypeBB[King]).
		Or(p.byColorBB[victim].And(p.byTypeBB[Pawn]).And(HalfBB[victim]))

	addChased := func(attackerSq Square, attackerType PieceType, attacks Bitboard) {
		attacks = attacks.And(p.byColorBB[victim]).AndNot(excluded).AndNot(result)
		if attacks.IsZero() {
			return
		}

		// Rule 2: attacks against the rule-set's "stronger" tier always
		// count, defended or not.
		switch attackerType {
		case Knight, Cannon:
			result = result.Or(attacks.And(p.byTypeBB[Rook]))
		case Bishop, Advisor:
			result = result.Or(attacks.And(p.byTypeBB[Rook].Or(p.byTypeBB[Cannon]).Or(p.byTypeBB[Knight])))
		}

		// Rule 3: same-kind mutual attacks are not chases, unless the
		// attacker is an asymmetric knight (the target knight's leg is
		// blocked, so it cannot hop back) or the target is pinned. The
		// knight case still requires the target to actually be a
		// knight - AttacksKnightTo alone is a symmetric geometric
		// relation that says nothing about what piece sits there.
		sameKind := p.byColorBB[victim].And(p.byTypeBB[attackerType])
		if attackerType == Knight {
			attacks = attacks.AndNot(sameKind.And(AttacksKnightTo(attackerSq, occ)).AndNot(pins))
		} else {
			attacks = attacks.AndNot(sameKind.AndNot(pins))
		}

		// Rule 4: whatever's left is a chase only if unprotected, or
		// the sole defender is a king that can't legally recapture.
		for bb := attacks; !bb.IsZero(); {
			s := bb.PopLSB()
			roots := p.AttackersToColor(s, occ.WithoutSquare(attackerSq), victim).AndNot(pins)
			if roots.IsZero() {
				result = result.WithSquare(s)
				continue
			}
			onlyKingDefends := roots == p.byColorBB[victim].And(p.byTypeBB[King])
			if onlyKingDefends && AttacksRook(theirKing, occ.WithoutSquare(attackerSq)).Has(s) {
				result = result.WithSquare(s)
			}
		}
	}

	from, to := dp.From[0], dp.To[0]
	moverPc := p.board[to]
	if moverPc == NoPiece || moverPc.Color() != mover {
		return result
	}

	// Direct: the moved piece's own attacks from its new square. A
	// rook or cannon's attacks along the line it just moved on already
	// existed before the move and are not new.
	pt := moverPc.Type()
	if pt != King && pt != Pawn {
		direct := AttacksBB(pt, to, occ)
		if pt == Rook || pt == Cannon {
			direct = direct.AndNot(LineBB(from, to))
		}
		addChased(to, pt, direct)
	}

	// Discovered: any other piece of the mover's side whose attack
	// pattern changed because `from` emptied. Computed by brute-force
	// before/after comparison rather than a leg/line pre-filter; this
	// runs inside every DoMove, including the scratch DoMove that Legal
	// makes for each probe.
	occBefore := occ.WithSquare(from)
	if p.st.CapturedPiece == NoPiece {
		occBefore = occBefore.WithoutSquare(to)
	}
	for _, pt2 := range [...]PieceType{Rook, Cannon, Knight, Bishop, Advisor} {
		for bb := p.byColorBB[mover].And(p.byTypeBB[pt2]); !bb.IsZero(); {
			sq := bb.PopLSB()
			if sq == to {
				continue
			}
			after := AttacksBB(pt2, sq, occ)
			before := AttacksBB(pt2, sq, occBefore)
			addChased(sq, pt2, after.AndNot(before))
		}
	}

	return result
}

// Chased exposes the current ply's chase set, computed once by DoMove
// and cached on the StateInfo.
func (p *Position) Chased() Bitboard { return p.st.Chased }
