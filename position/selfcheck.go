package position

// debugSelfCheck gates the call to checkConsistency from DoMove/UndoMove
// (in the spirit of Stockfish's pos_is_ok). It is false in ordinary
// builds, so that path costs a single boolean check; flip it to true
// locally when chasing a DoMove/UndoMove bug. selfcheck_test.go
// exercises checkConsistency directly, independent of the gate.
const debugSelfCheck = false

// selfCheck calls checkConsistency only when debugSelfCheck is set.
func (p *Position) selfCheck() {
	if debugSelfCheck {
		p.checkConsistency()
	}
}

// checkConsistency panics on the first internal consistency violation
// it finds: a board square disagreeing with byTypeBB/byColorBB, a
// pieceCount out of sync with the bitboards, or an incrementally
// maintained Key that no longer matches a from-scratch recomputation.
// It never leaves the position mutated, even though it calls SetState
// on a scratch StateInfo to get the from-scratch Key.
func (p *Position) checkConsistency() {
	for s := Square(0); s < SquareNB; s++ {
		pc := p.board[s]
		if pc == NoPiece {
			if p.occupied().Has(s) {
				panic("position: checkConsistency: empty square marked occupied")
			}
			continue
		}
		if !p.byTypeBB[pc.Type()].Has(s) {
			panic("position: checkConsistency: board piece missing from byTypeBB")
		}
		if !p.byColorBB[pc.Color()].Has(s) {
			panic("position: checkConsistency: board piece missing from byColorBB")
		}
	}
	for pc := Piece(1); pc < PieceNB; pc++ {
		if pc.Type() == NoPieceType {
			continue
		}
		want := p.PiecesCPt(pc.Color(), pc.Type()).PopCount()
		if p.pieceCount[pc] != want {
			panic("position: checkConsistency: pieceCount out of sync with the bitboards")
		}
	}

	saved := p.st
	var fresh StateInfo
	p.SetState(&fresh)
	freshKey := fresh.Key
	p.st = saved
	if freshKey != saved.Key {
		panic("position: checkConsistency: incremental Key diverged from a from-scratch recomputation")
	}
}
