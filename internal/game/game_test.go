package game

import (
	"errors"
	"testing"

	"github.com/stanleychen/sgtpuzzles/internal/board"
)

func TestParseMove(t *testing.T) {
	m, err := ParseMove("4,2-2,2")
	if err != nil {
		t.Fatalf("ParseMove failed: %v", err)
	}
	want := Move{SX: 4, SY: 2, TX: 2, TY: 2}
	if m != want {
		t.Errorf("ParseMove = %+v, want %+v", m, want)
	}
	if got := m.String(); got != "4,2-2,2" {
		t.Errorf("String() = %q, want %q", got, "4,2-2,2")
	}

	for _, bad := range []string{"", "4,2", "a,b-c,d", "4;2-2;2"} {
		if _, err := ParseMove(bad); !errors.Is(err, ErrBadMove) {
			t.Errorf("ParseMove(%q) = %v, want ErrBadMove", bad, err)
		}
	}
}

func TestApply(t *testing.T) {
	const desc = "PPHO" + "POOO" + "HOOO" + "OOOO"

	cases := []struct {
		name string
		move Move
		ok   bool
	}{
		{"legal jump right", Move{0, 0, 2, 0}, true},
		{"legal jump down", Move{0, 0, 0, 2}, true},
		{"source out of range", Move{-1, 0, 1, 0}, false},
		{"target out of range", Move{0, 2, 0, 4}, false},
		{"wrong length", Move{0, 0, 1, 0}, false},
		{"diagonal", Move{0, 0, 2, 2}, false},
		{"target not a hole", Move{0, 0, 3, 0}, false},
		{"source not a peg", Move{2, 0, 0, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := New(4, 4, desc)
			if err != nil {
				t.Fatal(err)
			}
			err = st.Apply(tc.move)
			if tc.ok && err != nil {
				t.Fatalf("Apply(%s) failed: %v", tc.move, err)
			}
			if !tc.ok {
				if !errors.Is(err, ErrIllegalMove) {
					t.Fatalf("Apply(%s) = %v, want ErrIllegalMove", tc.move, err)
				}
				if st.Board.String() != desc {
					t.Error("rejected move mutated the board")
				}
			}
		})
	}
}

func TestApplyUpdatesBoard(t *testing.T) {
	st, err := New(4, 4, "PPHO"+"OOOO"+"OOOO"+"OOOO")
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Apply(Move{0, 0, 2, 0}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got, want := st.Board.String(), "HHPO"+"OOOO"+"OOOO"+"OOOO"; got != want {
		t.Errorf("board after jump = %q, want %q", got, want)
	}
	if !st.Won() {
		t.Errorf("Won() = false with %d pegs", st.Board.PegCount())
	}
}

func TestWon(t *testing.T) {
	st, err := New(4, 4, "PPHO"+"OOOO"+"OOOO"+"OOOO")
	if err != nil {
		t.Fatal(err)
	}
	if st.Won() {
		t.Error("Won() = true with two pegs")
	}
	if st.Board.Get(0, 0) != board.Peg {
		t.Fatal("descriptor decoded incorrectly")
	}
}
