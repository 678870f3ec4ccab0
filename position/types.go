// Package position implements the in-memory board representation for a
// Xiangqi (Chinese chess) engine: the incremental move/undo machinery,
// legality and check testing, static exchange evaluation, and the
// repetition/perpetual-check/perpetual-chase detector.
//
// The board has 90 squares: 9 files (A..I) by 10 ranks (0..9). Square 0
// is A0 (White's corner); squares increase first by file, then by rank.
package position

// Color is the side to move: White or Black.
type Color int8

const (
	White Color = 0
	Black Color = 1
	ColorNB      = 2
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// File is a board file, A..I (0..8).
type File int8

const (
	FileA File = 0
	FileE File = 4
	FileI File = 8
	FileNB     = 9
)

// Rank is a board rank, 0..9.
type Rank int8

const (
	Rank0 Rank = 0
	Rank3 Rank = 3
	Rank5 Rank = 5
	Rank9 Rank = 9
	RankNB    = 10
)

// Square is a board square in [0, 89], or SquareNone.
type Square int8

const (
	SquareNone Square = -1
	SquareNB          = 90
)

// MakeSquare builds a square from file and rank.
func MakeSquare(f File, r Rank) Square { return Square(int(r)*FileNB + int(f)) }

// FileOf returns the file of a square.
func FileOf(s Square) File { return File(int(s) % FileNB) }

// RankOf returns the rank of a square.
func RankOf(s Square) Rank { return Rank(int(s) / FileNB) }

// String renders a square in UCI notation, e.g. "a0", "i9".
func (s Square) String() string {
	if s == SquareNone {
		return "-"
	}
	f := FileOf(s)
	r := RankOf(s)
	return string([]byte{'a' + byte(f), '0' + byte(r)})
}

// PieceType is a colorless piece kind. The numbering matches the FEN
// letter order "RACPNBK" so that PieceType(i+1) corresponds to
// pieceLetters[i].
type PieceType int8

const (
	NoPieceType PieceType = 0
	Rook        PieceType = 1
	Advisor     PieceType = 2
	Cannon      PieceType = 3
	Pawn        PieceType = 4
	Knight      PieceType = 5
	Bishop      PieceType = 6
	King        PieceType = 7
	PieceTypeNB           = 8
)

// pieceLetters holds the FEN letters for piece kinds Rook..King, in order.
var pieceLetters = "RACPNBK"

// Piece is a (color, kind) pair. NoPiece is the zero value. Colored
// pieces are encoded as color*8 + kind, mirroring the classic
// Stockfish PIECE_NB=16 layout so a single [16]-sized table can index
// both colors (the odd slots for kind 0 are simply unused).
type Piece int8

const (
	NoPiece Piece = 0
	PieceNB       = 16
)

// MakePiece combines a color and a kind into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(int(c)*8 + int(pt))
}

// Type returns the colorless kind of a piece.
func (p Piece) Type() PieceType { return PieceType(int(p) & 7) }

// Color returns the owning side of a piece. Undefined for NoPiece.
func (p Piece) Color() Color { return Color(int(p) >> 3) }

// pieceToChar mirrors original_source's `const string PieceToChar(" RACPNBK racpnbk")`.
func pieceToChar(p Piece) byte {
	if p == NoPiece {
		return ' '
	}
	idx := int(p.Type()) - 1
	ch := pieceLetters[idx]
	if p.Color() == Black {
		return ch - 'A' + 'a'
	}
	return ch
}

// charToPiece is the inverse of pieceToChar, returning NoPiece if ch is
// not a recognized piece letter.
func charToPiece(ch byte) Piece {
	color := White
	c := ch
	if c >= 'a' && c <= 'z' {
		color = Black
		c = c - 'a' + 'A'
	}
	idx := indexByte(pieceLetters, c)
	if idx < 0 {
		return NoPiece
	}
	return MakePiece(color, PieceType(idx+1))
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// Piece value constants (midgame), per SPEC_FULL.md §4.5-§4.9: rook > cannon
// ~= knight > bishop ~= advisor > pawn; the king is never captured and
// has no material value. These are the values this implementation's
// tests (SEE, chase asymmetry) are written against.
const (
	RookValueMg    = 600
	CannonValueMg  = 550
	KnightValueMg  = 550
	BishopValueMg  = 280
	AdvisorValueMg = 280
	PawnValueMg    = 120
	KingValueMg    = 0
)

// PieceValueMg maps a Piece to its midgame material value.
var PieceValueMg = [PieceNB]int{}

func init() {
	set := func(pt PieceType, v int) {
		PieceValueMg[MakePiece(White, pt)] = v
		PieceValueMg[MakePiece(Black, pt)] = v
	}
	set(Rook, RookValueMg)
	set(Cannon, CannonValueMg)
	set(Knight, KnightValueMg)
	set(Bishop, BishopValueMg)
	set(Advisor, AdvisorValueMg)
	set(Pawn, PawnValueMg)
	set(King, KingValueMg)
}

// Mate/draw scoring constants, mirroring Stockfish's VALUE_MATE/VALUE_DRAW
// convention used by IsRepeated's result reporting.
const (
	ValueDraw = 0
	ValueMate = 30000
)
