// Package game implements forward Peg Solitaire play on a generated
// board: move parsing, legality checks, execution, and win detection.
package game

import (
	"errors"
	"fmt"

	"github.com/stanleychen/sgtpuzzles/internal/board"
)

var (
	ErrBadMove     = errors.New("malformed move")
	ErrIllegalMove = errors.New("illegal move")
)

// Move is a forward peg jump from a source square to a target square
// two cells away along one axis. The jumped-over peg is removed.
type Move struct {
	SX, SY int
	TX, TY int
}

// String encodes the move as "sx,sy-tx,ty".
func (m Move) String() string {
	return fmt.Sprintf("%d,%d-%d,%d", m.SX, m.SY, m.TX, m.TY)
}

// ParseMove decodes a move from its "sx,sy-tx,ty" encoding.
func ParseMove(s string) (Move, error) {
	var m Move
	n, err := fmt.Sscanf(s, "%d,%d-%d,%d", &m.SX, &m.SY, &m.TX, &m.TY)
	if err != nil || n != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	return m, nil
}

// State is the live position of one game.
type State struct {
	Board *board.Board
}

// New creates a game state from a board descriptor.
func New(w, h int, desc string) (*State, error) {
	b, err := board.NewFromDescriptor(w, h, desc)
	if err != nil {
		return nil, err
	}
	return &State{Board: b}, nil
}

// Apply validates and executes a forward jump, mutating the state.
// The source and the jumped-over cell must hold pegs, the target must
// be a hole exactly two cells away along one axis.
func (s *State) Apply(m Move) error {
	b := s.Board
	if !b.InBounds(m.SX, m.SY) {
		return fmt.Errorf("%w: source %d,%d out of range", ErrIllegalMove, m.SX, m.SY)
	}
	if !b.InBounds(m.TX, m.TY) {
		return fmt.Errorf("%w: target %d,%d out of range", ErrIllegalMove, m.TX, m.TY)
	}

	dx, dy := m.TX-m.SX, m.TY-m.SY
	if max(abs(dx), abs(dy)) != 2 || min(abs(dx), abs(dy)) != 0 {
		return fmt.Errorf("%w: %s has wrong length", ErrIllegalMove, m)
	}
	mx, my := m.SX+dx/2, m.SY+dy/2

	if b.Get(m.SX, m.SY) != board.Peg ||
		b.Get(mx, my) != board.Peg ||
		b.Get(m.TX, m.TY) != board.Hole {
		return fmt.Errorf("%w: %s does not match grid contents", ErrIllegalMove, m)
	}

	b.Set(m.SX, m.SY, board.Hole)
	b.Set(mx, my, board.Hole)
	b.Set(m.TX, m.TY, board.Peg)
	return nil
}

// Won reports whether the game is complete: exactly one peg remains.
func (s *State) Won() bool {
	return s.Board.PegCount() == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
