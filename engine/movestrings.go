// Package engine holds driver-level utilities that sit outside the
// position core and exercise it the way a search driver or a UCI
// front-end would, without re-implementing either: move-string
// parsing, a brute-force legal-move enumerator (full move generation
// is out of scope for the core itself, per spec.md §1), and a perft
// driver used both as a correctness harness and as the cmd/perft entry
// point.
package engine

import (
	"fmt"

	"xiangqi-core/position"
)

// ParseMoveString parses a UCI-style coordinate move such as "a0a1"
// into a position.Move, without validating it against any position.
func ParseMoveString(s string) (position.Move, error) {
	if len(s) != 4 {
		return position.MoveNone, fmt.Errorf("engine: bad move string %q: want 4 characters", s)
	}
	from, err := parseSquare(s[0:2])
	if err != nil {
		return position.MoveNone, fmt.Errorf("engine: bad move string %q: %w", s, err)
	}
	to, err := parseSquare(s[2:4])
	if err != nil {
		return position.MoveNone, fmt.Errorf("engine: bad move string %q: %w", s, err)
	}
	return position.NewMove(from, to), nil
}

func parseSquare(s string) (position.Square, error) {
	if len(s) != 2 {
		return position.SquareNone, fmt.Errorf("want 2 characters, got %q", s)
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'i' {
		return position.SquareNone, fmt.Errorf("bad file %q", f)
	}
	if r < '0' || r > '9' {
		return position.SquareNone, fmt.Errorf("bad rank %q", r)
	}
	return position.MakeSquare(position.File(f-'a'), position.Rank(r-'0')), nil
}
