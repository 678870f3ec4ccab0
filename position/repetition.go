package position

// IsRepeated walks the StateInfo back-pointer stack two plies at a time
// (repetition requires the same side to move, so only even offsets can
// match) looking for an earlier ply with the same Zobrist key. Both
// parities of the intervening plies are tracked separately: the even
// offsets (-2, -4, ...) record whether the opponent ("them") checked
// or chased on every one of those plies, and the odd offsets (-1, -3,
// ...) record the same for the side to move now ("us"). It classifies
// the cycle it finds per the table below (spec.md §4.9):
//
//   - perpetual check by them only: winning mate score for us
//   - perpetual check by us only: losing mate score for us
//   - perpetual check by both, or neither with no persistent chase:
//     a plain draw
//   - failing perpetual check, a persistent chase by them only: winning
//     mate score for us; by us only: losing mate score for us
//
// The boolean result reports whether a repetition was found at all; the
// int result is only meaningful when it is true, and is reported from
// the perspective of the side to move at the point of repetition.
//
// This port does not re-align chase-set square identities across the
// intervening moves the way the original's undo_move_board does (see
// DESIGN.md); it intersects each ply's Chased bitboard directly, which
// is exact when the chased piece never itself moves during the cycle
// and conservative (may under-count a persistent chase) otherwise.
func (p *Position) IsRepeated() (bool, int) {
	st := p.st
	end := st.PliesFromNull
	if end < 4 {
		return false, ValueDraw
	}

	stp := st.Previous.Previous
	perpetualThem := !st.CheckersBB.IsZero() && !stp.CheckersBB.IsZero()
	perpetualUs := !st.Previous.CheckersBB.IsZero() && !stp.Previous.CheckersBB.IsZero()
	chaseThem := st.Chased.And(stp.Chased)
	chaseUs := st.Previous.Chased.And(stp.Previous.Chased)

	for i := 4; i <= end; i += 2 {
		if i != end {
			chaseThem = chaseThem.And(stp.Previous.Previous.Chased)
		}
		stp = stp.Previous.Previous
		perpetualThem = perpetualThem && !stp.CheckersBB.IsZero()

		if stp.Key == st.Key {
			return true, repetitionResult(perpetualThem, perpetualUs, chaseThem, chaseUs)
		}

		if i+1 <= end {
			perpetualUs = perpetualUs && !stp.Previous.CheckersBB.IsZero()
			chaseUs = chaseUs.And(stp.Previous.Chased)
		}
	}
	return false, ValueDraw
}

func repetitionResult(perpetualThem, perpetualUs bool, chaseThem, chaseUs Bitboard) int {
	switch {
	case perpetualThem || perpetualUs:
		switch {
		case !perpetualUs:
			return ValueMate
		case !perpetualThem:
			return -ValueMate
		default:
			return ValueDraw
		}
	case !chaseThem.IsZero() || !chaseUs.IsZero():
		switch {
		case chaseUs.IsZero():
			return ValueMate
		case chaseThem.IsZero():
			return -ValueMate
		default:
			return ValueDraw
		}
	default:
		return ValueDraw
	}
}
