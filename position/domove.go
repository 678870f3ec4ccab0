package position

// DoMove plays a pseudo-legal, non-null move on the board, pushing a new
// StateInfo onto the ply stack. Callers own newSt's storage (typically
// an element of a caller-managed slice/array, per spec.md §3); DoMove
// never allocates one itself.
func (p *Position) DoMove(m Move, newSt *StateInfo) {
	assert(m != MoveNone, "DoMove: move must not be MoveNone")
	from, to := m.From(), m.To()
	pc := p.board[from]
	assert(pc != NoPiece, "DoMove: no piece on the from-square")
	captured := p.board[to]

	newSt.Previous = p.st
	newSt.Move = m
	newSt.CapturedPiece = captured
	newSt.NonPawnMaterial = p.st.NonPawnMaterial
	newSt.PliesFromNull = p.st.PliesFromNull + 1
	newSt.Key = p.st.Key

	dp := &newSt.DirtyPiece
	dp.DirtyNum = 1
	dp.Piece[0], dp.From[0], dp.To[0] = pc, from, to

	if captured != NoPiece {
		p.removePiece(to)
		newSt.Key ^= zobristPiece[captured][to]
		if captured.Type() != Pawn {
			newSt.NonPawnMaterial[captured.Color()] -= PieceValueMg[captured]
		}
		dp.DirtyNum = 2
		dp.Piece[1], dp.From[1], dp.To[1] = captured, to, SquareNone
		newSt.PliesFromNull = 0
	}

	newSt.Key ^= zobristPiece[pc][from] ^ zobristPiece[pc][to]
	p.movePiece(from, to)

	newSt.Key ^= zobristSide
	p.sideToMove = p.sideToMove.Opposite()
	p.gamePly++

	newSt.Accumulator = Accumulator{}
	p.st = newSt
	p.SetCheckInfo(newSt)
	ksq := p.kingSquare(p.sideToMove)
	newSt.CheckersBB = p.AttackersToColor(ksq, p.occupied(), p.sideToMove.Opposite())
	newSt.Chased = p.chased()

	p.thisThread.AddNode()
	p.selfCheck()
}

// UndoMove reverses the most recent DoMove, restoring the board to the
// state the matching StateInfo.Previous describes. m must be the exact
// move DoMove was called with.
func (p *Position) UndoMove(m Move) {
	assert(p.st.Previous != nil, "UndoMove: no move to undo")
	p.sideToMove = p.sideToMove.Opposite()
	from, to := m.From(), m.To()
	captured := p.st.CapturedPiece

	p.movePiece(to, from)
	if captured != NoPiece {
		p.putPiece(to, captured)
	}

	p.st = p.st.Previous
	p.gamePly--
	p.selfCheck()
}

// DoNullMove passes the turn without moving a piece, for the search's
// null-move probing.
func (p *Position) DoNullMove(newSt *StateInfo) {
	assert(p.Checkers().IsZero(), "DoNullMove: side to move is in check")
	newSt.Previous = p.st
	newSt.Move = MoveNone
	newSt.CapturedPiece = NoPiece
	newSt.NonPawnMaterial = p.st.NonPawnMaterial
	newSt.PliesFromNull = 0
	newSt.Key = p.st.Key ^ zobristSide
	newSt.DirtyPiece = DirtyPiece{}
	newSt.Accumulator = p.st.Accumulator

	p.st = newSt
	p.sideToMove = p.sideToMove.Opposite()
	p.SetCheckInfo(newSt)
	ksq := p.kingSquare(p.sideToMove)
	newSt.CheckersBB = p.AttackersToColor(ksq, p.occupied(), p.sideToMove.Opposite())
	newSt.Chased = Bitboard{}
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	p.sideToMove = p.sideToMove.Opposite()
	p.st = p.st.Previous
}

// KeyAfter returns the Zobrist key the position would have after m,
// without mutating the board - used by move-ordering/TT probing code
// that wants to peek at a child's key before committing to DoMove.
func (p *Position) KeyAfter(m Move) uint64 {
	from, to := m.From(), m.To()
	pc := p.board[from]
	captured := p.board[to]
	key := p.st.Key ^ zobristSide
	key ^= zobristPiece[pc][from] ^ zobristPiece[pc][to]
	if captured != NoPiece {
		key ^= zobristPiece[captured][to]
	}
	return key
}
