package engine

import (
	"testing"

	"xiangqi-core/position"
)

func TestParseMoveString(t *testing.T) {
	m, err := ParseMoveString("h2e2")
	if err != nil {
		t.Fatalf("ParseMoveString: %v", err)
	}
	want := position.NewMove(position.MakeSquare(position.File(7), position.Rank(2)), position.MakeSquare(position.FileE, position.Rank(2)))
	if m != want {
		t.Fatalf("ParseMoveString(h2e2) = %v, want %v", m, want)
	}
	if m.String() != "h2e2" {
		t.Fatalf("Move.String() = %q, want %q", m.String(), "h2e2")
	}
}

func TestParseMoveStringRejectsMalformed(t *testing.T) {
	cases := []string{"", "h2e", "h2e22", "z2e2", "h2ex", "j0a0"}
	for _, c := range cases {
		if _, err := ParseMoveString(c); err == nil {
			t.Fatalf("ParseMoveString(%q): expected an error", c)
		}
	}
}
