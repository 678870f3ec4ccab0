package position

import "math/bits"

// Bitboard is a 90-bit set with one bit per square, represented as two
// 64-bit words: Lo covers squares 0..63, Hi covers squares 64..89. Go has
// no native 128-bit integer, so a two-word struct is the natural
// translation of the "a 128-bit value works" guidance in SPEC_FULL.md §3.
type Bitboard struct {
	Lo uint64
	Hi uint64
}

// hiMask masks off the unused high bits above square 89 (90..127).
const hiMask = uint64(1)<<(SquareNB-64) - 1

// SquareBB returns the singleton bitboard for a square.
func SquareBB(s Square) Bitboard {
	if s < 64 {
		return Bitboard{Lo: 1 << uint(s)}
	}
	return Bitboard{Hi: 1 << uint(s-64)}
}

func (b Bitboard) And(o Bitboard) Bitboard { return Bitboard{b.Lo & o.Lo, b.Hi & o.Hi} }
func (b Bitboard) Or(o Bitboard) Bitboard  { return Bitboard{b.Lo | o.Lo, b.Hi | o.Hi} }
func (b Bitboard) Xor(o Bitboard) Bitboard { return Bitboard{b.Lo ^ o.Lo, b.Hi ^ o.Hi} }
func (b Bitboard) Not() Bitboard           { return Bitboard{^b.Lo, ^b.Hi & hiMask} }
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b.Lo &^ o.Lo, b.Hi &^ o.Hi}
}

// IsZero reports whether the bitboard has no set bits.
func (b Bitboard) IsZero() bool { return b.Lo == 0 && b.Hi == 0 }

// Has reports whether the square's bit is set.
func (b Bitboard) Has(s Square) bool { return !b.And(SquareBB(s)).IsZero() }

// WithSquare sets a square's bit (returns a new value; Bitboard is a value type).
func (b Bitboard) WithSquare(s Square) Bitboard { return b.Or(SquareBB(s)) }

// WithoutSquare clears a square's bit.
func (b Bitboard) WithoutSquare(s Square) Bitboard { return b.AndNot(SquareBB(s)) }

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi) }

// MoreThanOne reports whether two or more bits are set.
func (b Bitboard) MoreThanOne() bool {
	if b.Lo != 0 && b.Hi != 0 {
		return true
	}
	if b.Lo != 0 {
		return b.Lo&(b.Lo-1) != 0
	}
	return b.Hi&(b.Hi-1) != 0
}

// LeastSquare returns the lowest-indexed set square, or SquareNone if empty.
func (b Bitboard) LeastSquare() Square {
	if b.Lo != 0 {
		return Square(bits.TrailingZeros64(b.Lo))
	}
	if b.Hi != 0 {
		return Square(64 + bits.TrailingZeros64(b.Hi))
	}
	return SquareNone
}

// LeastSquareBB returns the bitboard containing only the lowest set bit.
func (b Bitboard) LeastSquareBB() Bitboard {
	if b.Lo != 0 {
		return Bitboard{Lo: b.Lo & -b.Lo}
	}
	if b.Hi != 0 {
		return Bitboard{Hi: b.Hi & -b.Hi}
	}
	return Bitboard{}
}

// PopLSB pops and returns the lowest-indexed set square, clearing its bit.
func (b *Bitboard) PopLSB() Square {
	s := b.LeastSquare()
	if s != SquareNone {
		*b = b.WithoutSquare(s)
	}
	return s
}

// fileBB, rankBB are precomputed per-file/per-rank masks.
var fileBB [FileNB]Bitboard
var rankBB [RankNB]Bitboard

// HalfBB[c] is the half of the board (5 ranks) belonging to color c.
var HalfBB [ColorNB]Bitboard

func init() {
	for s := Square(0); s < SquareNB; s++ {
		fileBB[FileOf(s)] = fileBB[FileOf(s)].WithSquare(s)
		rankBB[RankOf(s)] = rankBB[RankOf(s)].WithSquare(s)
	}
	for r := Rank(0); r < 5; r++ {
		HalfBB[White] = HalfBB[White].Or(rankBB[r])
	}
	for r := Rank(5); r < RankNB; r++ {
		HalfBB[Black] = HalfBB[Black].Or(rankBB[r])
	}
}

// FileBB returns the mask of all squares on file f.
func FileBB(f File) Bitboard { return fileBB[f] }

// RankBB returns the mask of all squares on rank r.
func RankBB(r Rank) Bitboard { return rankBB[r] }

func onBoard(f File, r Rank) bool { return f >= FileA && f <= FileI && r >= Rank0 && r <= Rank9 }

// aligned reports whether a, b, c lie on a common rank or file (the
// only kind of "line" a Xiangqi rook/cannon/flying-general ray can
// follow - there is no diagonal sliding piece in this core's geometry).
func aligned(a, b, c Square) bool {
	return lineBB(a, c).Has(b)
}

// lineLookup/betweenLookup are filled in by geometry.go's init, since
// they depend on the knight-leg tables defined there.
var lineLookup [SquareNB][SquareNB]Bitboard
var betweenLookup [SquareNB][SquareNB]Bitboard

// lineBB returns the full rank/file line through a and b, or the empty
// bitboard if a and b do not share a rank or file.
func lineBB(a, b Square) Bitboard { return lineLookup[a][b] }

// LineBB is the exported form of lineBB, used outside the package-internal
// hot path (chase direct-attack filtering) the way spec.md §4.8 requires.
func LineBB(a, b Square) Bitboard { return lineBB(a, b) }

// betweenBB returns the squares strictly between a and b along a shared
// rank/file, or - when a and b are exactly a knight's move apart - the
// single leg square that a horse standing on b needs clear to reach a.
// This second case is the "Xiangqi twist" spec.md §4.3 requires between_bb
// to carry: knights are not sliders, so their "blocker" is the fixed leg
// square rather than a ray. The knight-pair direction matters: the leg is
// always computed relative to b (the candidate sniper), matching the one
// call site (blockers_for_king) which always passes the sniper as the
// second argument.
func betweenBB(a, b Square) Bitboard { return betweenLookup[a][b] }

// BetweenBB exposes betweenBB for tests and the engine driver package.
func BetweenBB(a, b Square) Bitboard { return betweenBB(a, b) }
