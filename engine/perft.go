package engine

import "xiangqi-core/position"

// LegalMoves brute-force enumerates every legal move in pos by trying
// every (from, to) pair through PseudoLegal then Legal. The position
// core deliberately does not generate moves itself (spec.md §1 scopes
// full move generation out); this is the simplest correct enumerator a
// driver can build on the attack-bitboard oracle it does expose.
func LegalMoves(pos *position.Position) []position.Move {
	var moves []position.Move
	for from := position.Square(0); from < position.SquareNB; from++ {
		pc := pos.PieceOn(from)
		if pc == position.NoPiece || pc.Color() != pos.SideToMove() {
			continue
		}
		for to := position.Square(0); to < position.SquareNB; to++ {
			if from == to {
				continue
			}
			m := position.NewMove(from, to)
			if !pos.PseudoLegal(m) {
				continue
			}
			if pos.Legal(m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Perft counts leaf nodes of the legal move tree rooted at pos to the
// given depth: the standard move-generator correctness and performance
// harness, used here to exercise DoMove/UndoMove/Legal end to end.
func Perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range LegalMoves(pos) {
		var st position.StateInfo
		pos.DoMove(m, &st)
		nodes += Perft(pos, depth-1)
		pos.UndoMove(m)
	}
	return nodes
}

// PerftDivide is Perft with a per-root-move breakdown, backing
// cmd/perft's -divide flag.
func PerftDivide(pos *position.Position, depth int) map[position.Move]uint64 {
	result := make(map[position.Move]uint64)
	for _, m := range LegalMoves(pos) {
		var st position.StateInfo
		pos.DoMove(m, &st)
		n := uint64(1)
		if depth > 1 {
			n = Perft(pos, depth-1)
		}
		pos.UndoMove(m)
		result[m] = n
	}
	return result
}
