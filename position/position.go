package position

import (
	"fmt"
	"strings"
)

// FENStartPos is the standard Xiangqi starting position.
const FENStartPos = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

// Position is the board: piece placement, side to move, and a pointer
// to the current ply's StateInfo. It owns no StateInfo memory itself —
// callers supply one per ply (see DoMove), the way spec.md §3 requires.
type Position struct {
	board      [SquareNB]Piece
	byTypeBB   [PieceTypeNB]Bitboard
	byColorBB  [ColorNB]Bitboard
	pieceCount [PieceNB]int

	sideToMove Color
	gamePly    int

	st         *StateInfo
	thisThread *Worker
}

func (p *Position) occupied() Bitboard { return p.byColorBB[White].Or(p.byColorBB[Black]) }

// SideToMove returns the side to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// GamePly returns the number of half-moves played since the root.
func (p *Position) GamePly() int { return p.gamePly }

// Checkers returns the current side to move's checking pieces.
func (p *Position) Checkers() Bitboard { return p.st.CheckersBB }

// St returns the current ply's StateInfo.
func (p *Position) St() *StateInfo { return p.st }

// Thread returns the Worker this Position increments nodes on, or nil.
func (p *Position) Thread() *Worker { return p.thisThread }

// PieceOn returns the piece occupying a square, or NoPiece.
func (p *Position) PieceOn(s Square) Piece { return p.board[s] }

// Pieces returns the union of all squares holding any of the given kinds.
// With no arguments, it returns the full occupied bitboard.
func (p *Position) Pieces(kinds ...PieceType) Bitboard {
	if len(kinds) == 0 {
		return p.occupied()
	}
	var bb Bitboard
	for _, pt := range kinds {
		bb = bb.Or(p.byTypeBB[pt])
	}
	return bb
}

// PiecesC returns all squares holding a piece of color c.
func (p *Position) PiecesC(c Color) Bitboard { return p.byColorBB[c] }

// PiecesCPt returns all squares holding a color-c piece of kind pt.
func (p *Position) PiecesCPt(c Color, pt PieceType) Bitboard {
	return p.byColorBB[c].And(p.byTypeBB[pt])
}

// Count returns the number of pieces of the given (color, kind).
func (p *Position) Count(c Color, pt PieceType) int { return p.pieceCount[MakePiece(c, pt)] }

func (p *Position) kingSquare(c Color) Square {
	return p.byColorBB[c].And(p.byTypeBB[King]).LeastSquare()
}

// KingSquare exposes kingSquare to other files in the package's public
// surface used by tests and the engine driver.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare(c) }

func (p *Position) putPiece(s Square, pc Piece) {
	p.board[s] = pc
	bb := SquareBB(s)
	p.byTypeBB[pc.Type()] = p.byTypeBB[pc.Type()].Or(bb)
	p.byColorBB[pc.Color()] = p.byColorBB[pc.Color()].Or(bb)
	p.pieceCount[pc]++
}

func (p *Position) removePiece(s Square) {
	pc := p.board[s]
	bb := SquareBB(s)
	p.byTypeBB[pc.Type()] = p.byTypeBB[pc.Type()].AndNot(bb)
	p.byColorBB[pc.Color()] = p.byColorBB[pc.Color()].AndNot(bb)
	p.pieceCount[pc]--
	p.board[s] = NoPiece
}

func (p *Position) movePiece(from, to Square) {
	pc := p.board[from]
	comb := SquareBB(from).Or(SquareBB(to))
	p.byTypeBB[pc.Type()] = p.byTypeBB[pc.Type()].Xor(comb)
	p.byColorBB[pc.Color()] = p.byColorBB[pc.Color()].Xor(comb)
	p.board[from] = NoPiece
	p.board[to] = pc
}

// AttackersTo returns every piece (either color) attacking s, given occ
// as the board occupancy to slide/hop against. This is the generic
// attackers_to oracle spec.md §4.3 builds BlockersForKing and checkers
// detection from.
func (p *Position) AttackersTo(s Square, occ Bitboard) Bitboard {
	var bb Bitboard
	bb = bb.Or(AttacksRook(s, occ).And(p.byTypeBB[Rook]))
	bb = bb.Or(AttacksCannon(s, occ).And(p.byTypeBB[Cannon]))
	bb = bb.Or(AttacksKnightTo(s, occ).And(p.byTypeBB[Knight]))
	bb = bb.Or(AttacksBishop(s, occ).And(p.byTypeBB[Bishop]))
	bb = bb.Or(AttacksAdvisor(s).And(p.byTypeBB[Advisor]))
	bb = bb.Or(AttacksKing(s).And(p.byTypeBB[King]))
	bb = bb.Or(PawnAttacksToBB(White, s).And(p.PiecesCPt(White, Pawn)))
	bb = bb.Or(PawnAttacksToBB(Black, s).And(p.PiecesCPt(Black, Pawn)))
	return bb.And(occ)
}

// AttackersToColor is AttackersTo filtered to attackers of color c.
func (p *Position) AttackersToColor(s Square, occ Bitboard, c Color) Bitboard {
	return p.AttackersTo(s, occ).And(p.byColorBB[c])
}

// BlockersForKing returns, for color c, the set of squares whose
// occupant (of either color) shields c's king from an immediate check
// if vacated, and the subset of enemy "sniper" squares whose blocker
// is one of c's own pieces (the Xiangqi analogue of a classic pin,
// widened per SPEC_FULL.md §4.3 for
// the cannon's two-screen rule and the knight's leg-block rule).
func (p *Position) BlockersForKing(c Color) (blockers, pinners Bitboard) {
	ksq := p.kingSquare(c)
	if ksq == SquareNone {
		return Bitboard{}, Bitboard{}
	}
	them := c.Opposite()
	occ := p.occupied()

	rookSnipers := AttacksRook(ksq, Bitboard{}).And(p.byColorBB[them]).And(p.byTypeBB[Rook])
	for s := rookSnipers; !s.IsZero(); {
		sniperSq := s.PopLSB()
		b := betweenBB(ksq, sniperSq).And(occ)
		if !b.IsZero() && !b.MoreThanOne() {
			blockers = blockers.Or(b)
			if !b.And(p.byColorBB[c]).IsZero() {
				pinners = pinners.WithSquare(sniperSq)
			}
		}
	}

	knightSnipers := AttacksKnightShape(ksq).And(p.byColorBB[them]).And(p.byTypeBB[Knight])
	for s := knightSnipers; !s.IsZero(); {
		sniperSq := s.PopLSB()
		leg := betweenBB(ksq, sniperSq)
		b := leg.And(occ)
		if !b.IsZero() {
			blockers = blockers.Or(b)
			if !b.And(p.byColorBB[c]).IsZero() {
				pinners = pinners.WithSquare(sniperSq)
			}
		}
	}

	// Cannon: a sniper with exactly two occupied squares between it and
	// the king is one capture away from checking once either of those
	// two squares clears (see SPEC_FULL.md §4.3 / position.go doc above
	// BlockersForKing).
	cannonSnipers := AttacksRook(ksq, Bitboard{}).And(p.byColorBB[them]).And(p.byTypeBB[Cannon])
	for s := cannonSnipers; !s.IsZero(); {
		sniperSq := s.PopLSB()
		b := betweenBB(ksq, sniperSq).And(occ)
		if b.PopCount() == 2 {
			blockers = blockers.Or(b)
			if !b.And(p.byColorBB[c]).IsZero() {
				pinners = pinners.WithSquare(sniperSq)
			}
		}
	}

	return blockers, pinners
}

// SetCheckInfo populates the pin/checkSquares fields of si from the
// current board, as spec.md §4.3 requires before any legality query.
func (p *Position) SetCheckInfo(si *StateInfo) {
	si.BlockersForKing[White], si.Pinners[White] = p.BlockersForKing(White)
	si.BlockersForKing[Black], si.Pinners[Black] = p.BlockersForKing(Black)

	them := p.sideToMove.Opposite()
	ksq := p.kingSquare(them)
	occ := p.occupied()
	if ksq == SquareNone {
		return
	}
	si.CheckSquares[Rook] = AttacksRook(ksq, occ)
	si.CheckSquares[Cannon] = AttacksCannon(ksq, occ)
	si.CheckSquares[Knight] = AttacksKnightTo(ksq, occ)
	si.CheckSquares[Bishop] = AttacksBishop(ksq, occ)
	si.CheckSquares[Advisor] = AttacksAdvisor(ksq)
	si.CheckSquares[King] = AttacksKing(ksq)
	si.CheckSquares[Pawn] = PawnAttacksToBB(p.sideToMove, ksq)
}

// SetState recomputes every incrementally-maintained field of si from
// the board from scratch: the Zobrist key, material totals, check info,
// and the current checkers. Called once by Set and, with Previous
// carried forward, by DoMove/UndoMove's callers to rebuild a detached
// StateInfo (tests mostly; DoMove updates incrementally instead).
func (p *Position) SetState(si *StateInfo) {
	p.st = si
	si.Key = 0
	for c := Color(0); c < ColorNB; c++ {
		si.NonPawnMaterial[c] = 0
	}
	for s := Square(0); s < SquareNB; s++ {
		pc := p.board[s]
		if pc == NoPiece {
			continue
		}
		si.Key ^= zobristPiece[pc][s]
		if pc.Type() != Pawn {
			si.NonPawnMaterial[pc.Color()] += PieceValueMg[pc]
		}
	}
	if p.sideToMove == Black {
		si.Key ^= zobristSide
	}
	p.SetCheckInfo(si)
	ksq := p.kingSquare(p.sideToMove)
	si.CheckersBB = p.AttackersToColor(ksq, p.occupied(), p.sideToMove.Opposite())
}

// Set initializes the position from a FEN string, panicking on
// structurally malformed input (see SPEC_FULL.md §3/§4.2: Set is the
// programmer-trusted entry point; ParseFEN is the validating one).
func (p *Position) Set(fen string, si *StateInfo, th *Worker) {
	if err := p.setImpl(fen, si, th); err != nil {
		panic("position: Set: " + err.Error())
	}
}

// ParseFEN is the validating, error-returning counterpart of Set, for
// callers (tests, cmd/perft) that receive FEN strings from outside the
// program and must report malformed input rather than crash on it.
func ParseFEN(fen string) (*Position, error) {
	p := &Position{}
	si := &StateInfo{}
	if err := p.setImpl(fen, si, &Worker{}); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) setImpl(fen string, si *StateInfo, th *Worker) error {
	*p = Position{}
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return fmt.Errorf("position: malformed FEN %q: need at least board and side-to-move fields", fen)
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != RankNB {
		return fmt.Errorf("position: malformed FEN %q: expected %d ranks, got %d", fen, RankNB, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(RankNB - 1 - i) // FEN lists rank 9 first.
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			switch {
			case ch >= '1' && ch <= '9':
				f += File(ch - '0')
			default:
				pc := charToPiece(ch)
				if pc == NoPiece {
					return fmt.Errorf("position: malformed FEN %q: bad piece letter %q", fen, ch)
				}
				if f > FileI {
					return fmt.Errorf("position: malformed FEN %q: rank %d overflows the board", fen, r)
				}
				p.putPiece(MakeSquare(f, r), pc)
				f++
			}
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("position: malformed FEN %q: bad side-to-move %q", fen, fields[1])
	}

	// Fields 3.. (castling/ep-shaped placeholders, halfmove/fullmove
	// counters) carry no meaning for Xiangqi; consumed and discarded
	// per SPEC_FULL.md §9.
	p.gamePly = 0

	si.Previous = nil
	p.thisThread = th
	p.SetState(si)
	return nil
}

// FEN renders the current position back to FEN notation.
func (p *Position) FEN() string {
	var sb strings.Builder
	for i := 0; i < RankNB; i++ {
		r := Rank(RankNB - 1 - i)
		empty := 0
		for f := FileA; f <= FileI; f++ {
			pc := p.board[MakeSquare(f, r)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteByte(pieceToChar(pc))
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if i != RankNB-1 {
			sb.WriteByte('/')
		}
	}
	if p.sideToMove == White {
		sb.WriteString(" w - - 0 1")
	} else {
		sb.WriteString(" b - - 0 1")
	}
	return sb.String()
}

// String renders an ASCII board dump, ported from original_source's
// operator<<(ostream&, const Position&) debug hook.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(" +---------+\n")
	for i := 0; i < RankNB; i++ {
		r := Rank(RankNB - 1 - i)
		sb.WriteByte('|')
		for f := FileA; f <= FileI; f++ {
			pc := p.board[MakeSquare(f, r)]
			sb.WriteByte(pieceToChar(pc))
		}
		fmt.Fprintf(&sb, "| %d\n", r)
	}
	sb.WriteString(" +---------+\n  abcdefghi\n")
	fmt.Fprintf(&sb, "Fen: %s\nKey: %x\n", p.FEN(), p.st.Key)
	return sb.String()
}

// Flip returns the colour-reversed position: ranks mirrored top/bottom,
// piece colours swapped, side to move swapped. Ported from
// original_source's Position::flip debug hook; position_test.go's
// TestFlip checks that flipping twice restores the original FEN.
func (p *Position) Flip() *Position {
	flippedFEN := flipFEN(p.FEN())
	np, err := ParseFEN(flippedFEN)
	if err != nil {
		panic("position: Flip produced an invalid FEN: " + err.Error())
	}
	return np
}

func flipFEN(fen string) string {
	fields := strings.Fields(fen)
	ranks := strings.Split(fields[0], "/")
	flipped := make([]string, len(ranks))
	for i, r := range ranks {
		var sb strings.Builder
		for j := 0; j < len(r); j++ {
			ch := r[j]
			if ch >= 'A' && ch <= 'Z' {
				sb.WriteByte(ch - 'A' + 'a')
			} else if ch >= 'a' && ch <= 'z' {
				sb.WriteByte(ch - 'a' + 'A')
			} else {
				sb.WriteByte(ch)
			}
		}
		flipped[len(ranks)-1-i] = sb.String()
	}
	side := "b"
	if len(fields) > 1 && fields[1] == "b" {
		side = "w"
	}
	return strings.Join(flipped, "/") + " " + side + " - - 0 1"
}
