package position

import "sync/atomic"

// DirtyPiece records which pieces moved on/off the board for the most
// recent move, so an incremental evaluator (an NNUE accumulator, in the
// system this core is extracted from) can update instead of recompute.
// Shape grounded on hailam-chessplay/sfnnue/nnue_accumulator.go's
// DirtyPiece convention: up to 2 entries (the mover, and a capture if
// any); Xiangqi has no castling or en passant, so 2 is always enough.
type DirtyPiece struct {
	DirtyNum int
	Piece    [2]Piece
	From     [2]Square
	To       [2]Square
}

// Accumulator tracks whether a cached incremental evaluation is valid
// for a side, mirroring the Computed flag pair in
// hailam-chessplay/sfnnue/nnue_accumulator.go. This core never computes
// an evaluation; it only maintains the invalidation contract so a caller
// wiring in a real accumulator has a consistent hook.
type Accumulator struct {
	Computed [ColorNB]bool
}

// StateInfo is one link of the per-ply back-pointer stack spec.md §3
// describes: everything DoMove computes incrementally and UndoMove must
// restore exactly, plus a back-pointer to the previous ply's state.
type StateInfo struct {
	Previous *StateInfo

	Move          Move
	CapturedPiece Piece

	Key              uint64
	NonPawnMaterial  [ColorNB]int
	PliesFromNull    int
	Repetition       int

	CheckersBB      Bitboard
	BlockersForKing [ColorNB]Bitboard
	Pinners         [ColorNB]Bitboard
	CheckSquares    [PieceTypeNB]Bitboard

	// Chased holds the squares of this side-to-move's own pieces that
	// are newly, illegally chased as of this ply, consumed by IsRepeated
	// the way spec.md §4.9/§4.8 describe.
	Chased Bitboard

	DirtyPiece  DirtyPiece
	Accumulator Accumulator
}

// Worker is the minimal per-search-thread context this core touches: a
// relaxed node counter incremented by DoMove. Grounded on
// engine/state_stack.go's pattern of small mutable state threaded
// alongside the board, generalized to a per-worker struct since a
// process may run one Position per search thread concurrently.
type Worker struct {
	nodes atomic.Uint64
}

// AddNode increments the node counter by one, relaxed (no ordering with
// any other field), matching spec.md §5's concurrency contract.
func (w *Worker) AddNode() {
	if w != nil {
		w.nodes.Add(1)
	}
}

// Nodes returns the current node count.
func (w *Worker) Nodes() uint64 {
	if w == nil {
		return 0
	}
	return w.nodes.Load()
}
