package board

import (
	"fmt"
	"strings"
)

// Cell is the state of one grid square.
type Cell uint8

const (
	// Hole is an empty square a peg can jump into.
	Hole Cell = iota
	// Peg is a square occupied by a peg.
	Peg
	// Obstacle marks a square outside the playable shape.
	Obstacle
)

// Descriptor characters, row-major, one per cell.
const (
	descPeg      = 'P'
	descHole     = 'H'
	descObstacle = 'O'
)

// MinSize is the smallest legal board dimension. A width or height of 3
// or less leaves no room for a jump along that axis.
const MinSize = 4

// Board represents a w×h Peg Solitaire board.
//
// Dimensions are fixed at construction; cells are mutable in place.
type Board struct {
	w, h  int
	cells []Cell

	// pegCount tracks occupied squares for quick win checks.
	// Once initialized, pegCount is only touched inside Set and Fill.
	pegCount int
}

// New creates a Board of the given dimensions with every cell set to Obstacle.
func New(w, h int) (*Board, error) {
	if w < MinSize || h < MinSize {
		return nil, fmt.Errorf("%w: got %dx%d, both dimensions must be at least %d", ErrInvalidSize, w, h, MinSize)
	}
	b := &Board{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
	b.Fill(Obstacle)
	return b, nil
}

// NewFromDescriptor creates a Board from a w*h-character descriptor string
// over the alphabet {P, H, O}, row-major.
func NewFromDescriptor(w, h int, desc string) (*Board, error) {
	b, err := New(w, h)
	if err != nil {
		return nil, err
	}
	if err := ValidateDescriptor(w, h, desc); err != nil {
		return nil, err
	}
	for i := range desc {
		switch desc[i] {
		case descPeg:
			b.cells[i] = Peg
			b.pegCount++
		case descHole:
			b.cells[i] = Hole
		case descObstacle:
			b.cells[i] = Obstacle
		}
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return &clone
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.w }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.h }

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// Get returns the cell at (x, y). The coordinates must be in bounds.
func (b *Board) Get(x, y int) Cell {
	return b.cells[y*b.w+x]
}

// Set places a cell value at (x, y). The coordinates must be in bounds.
func (b *Board) Set(x, y int, c Cell) {
	i := y*b.w + x
	if b.cells[i] == Peg {
		b.pegCount--
	}
	if c == Peg {
		b.pegCount++
	}
	b.cells[i] = c
}

// Fill resets every cell to the given value.
func (b *Board) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
	if c == Peg {
		b.pegCount = len(b.cells)
	} else {
		b.pegCount = 0
	}
}

// PegCount returns the number of Peg cells on the board.
func (b *Board) PegCount() int {
	return b.pegCount
}

// TouchesAllEdges reports whether each of the four border lines of the
// board contains at least one non-Obstacle cell. It is the acceptance
// criterion for randomly generated boards.
func (b *Board) TouchesAllEdges() bool {
	const (
		left = 1 << iota
		right
		top
		bottom
		all = left | right | top | bottom
	)
	extremes := 0
	for y := 0; y < b.h; y++ {
		if b.Get(0, y) != Obstacle {
			extremes |= left
		}
		if b.Get(b.w-1, y) != Obstacle {
			extremes |= right
		}
	}
	for x := 0; x < b.w; x++ {
		if b.Get(x, 0) != Obstacle {
			extremes |= top
		}
		if b.Get(x, b.h-1) != Obstacle {
			extremes |= bottom
		}
	}
	return extremes == all
}

// String returns the board as a w*h-character descriptor over {P, H, O}.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.cells))
	for _, c := range b.cells {
		switch c {
		case Peg:
			sb.WriteByte(descPeg)
		case Hole:
			sb.WriteByte(descHole)
		default:
			sb.WriteByte(descObstacle)
		}
	}
	return sb.String()
}

// Format returns a human-readable board representation:
// '*' for a peg, '-' for a hole, ' ' for an obstacle.
func (b *Board) Format() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			switch b.Get(x, y) {
			case Peg:
				sb.WriteByte('*')
			case Hole:
				sb.WriteByte('-')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
