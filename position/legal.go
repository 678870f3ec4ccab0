package position

// PseudoLegal reports whether m is geometrically playable from the
// current position: a piece of the side to move sits on From(), To()
// isn't occupied by a friendly piece, and the piece's attack pattern
// (screen-hop/leg-block rules included) reaches To(). It does not check
// whether the move leaves the mover's own king in check - that's
// Legal's job. Unlike Legal, GivesCheck and SeeGE, PseudoLegal
// tolerates malformed input and returns false rather than panicking,
// per SPEC_FULL.md §3/§7.
func (p *Position) PseudoLegal(m Move) bool {
	if m == MoveNone {
		return false
	}
	from, to := m.From(), m.To()
	if from == to || from < 0 || from >= SquareNB || to < 0 || to >= SquareNB {
		return false
	}
	pc := p.board[from]
	if pc == NoPiece || pc.Color() != p.sideToMove {
		return false
	}
	target := p.board[to]
	if target != NoPiece && target.Color() == p.sideToMove {
		return false
	}

	occ := p.occupied()
	var attacks Bitboard
	switch pc.Type() {
	case Rook:
		attacks = AttacksRook(from, occ)
	case Cannon:
		if target == NoPiece {
			attacks = AttacksRook(from, occ)
		} else {
			attacks = AttacksCannon(from, occ)
		}
	case Knight:
		attacks = AttacksKnight(from, occ)
	case Bishop:
		attacks = AttacksBishop(from, occ)
	case Advisor:
		attacks = AttacksAdvisor(from)
	case King:
		attacks = AttacksKing(from)
	case Pawn:
		attacks = PawnAttacksBB(pc.Color(), from)
	default:
		return false
	}
	return attacks.Has(to)
}

// Legal reports whether a pseudo-legal move leaves the mover's own king
// safe: not attacked, and not facing the enemy king along a clear file
// (the flying-general rule). It simulates the move with DoMove/UndoMove
// rather than reasoning about hypothetical occupancy, trading a little
// speed for an implementation that can't drift out of sync with DoMove's
// own incremental bookkeeping. The simulation runs with the real
// Worker swapped out for the duration of the call: a legality probe is
// not a move actually played, and a caller such as engine.LegalMoves
// that calls Legal for every candidate (from, to) pair at every node
// must not inflate the node counter DoMove otherwise increments.
func (p *Position) Legal(m Move) bool {
	assert(p.PseudoLegal(m), "Legal: move is not pseudo-legal")
	us := p.sideToMove
	them := us.Opposite()

	real := p.thisThread
	p.thisThread = nil

	var scratch StateInfo
	p.DoMove(m, &scratch)
	ourKsq := p.kingSquare(us)
	theirKsq := p.kingSquare(them)
	occ := p.occupied()

	illegal := !p.AttackersToColor(ourKsq, occ, them).IsZero()
	if !illegal && ourKsq != SquareNone && theirKsq != SquareNone && FileOf(ourKsq) == FileOf(theirKsq) {
		if AttacksRook(ourKsq, occ).Has(theirKsq) {
			illegal = true
		}
	}
	p.UndoMove(m)
	p.thisThread = real
	return !illegal
}

// GivesCheck reports whether a pseudo-legal move checks the opponent's
// king, distinguishing the direct case (the moved piece's own attack
// newly covers the king) from the discovered case (the move vacates a
// square this side's sniper needed blocked) and the flying-general case
// (a king move that opens a clear file to the enemy king).
func (p *Position) GivesCheck(m Move) bool {
	assert(p.PseudoLegal(m), "GivesCheck: move is not pseudo-legal")
	from, to := m.From(), m.To()
	pc := p.board[from]
	them := p.sideToMove.Opposite()
	theirKsq := p.kingSquare(them)
	if theirKsq == SquareNone {
		return false
	}

	if pc.Type() == Pawn {
		if PawnAttacksBB(pc.Color(), to).Has(theirKsq) {
			return true
		}
	} else if p.st.CheckSquares[pc.Type()].Has(to) {
		return true
	}

	if p.st.BlockersForKing[them].Has(from) && !aligned(from, theirKsq, to) {
		return true
	}

	if pc.Type() == King && FileOf(to) == FileOf(theirKsq) {
		occ := p.occupied().WithoutSquare(from).WithSquare(to)
		if AttacksRook(to, occ).Has(theirKsq) {
			return true
		}
	}

	return false
}
