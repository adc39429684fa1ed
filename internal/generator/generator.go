// Package generator creates random, guaranteed-solvable Peg Solitaire
// boards by running the win condition in reverse: starting from a single
// peg it repeatedly applies random reverse jumps until the board is
// plausibly full, then retries until the result touches all four edges
// of the requested rectangle.
//
// No attempt is made at symmetry, difficulty grading or aesthetic board
// shapes. The only concessions to sophistication are (a) repeating the
// whole process until the grid reaches every edge of the requested size,
// and (b) preferring moves that reuse existing space over moves that
// expand into fresh obstacle cells.
package generator

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stanleychen/sgtpuzzles/internal/board"
)

// Log receives generation diagnostics at Debug level.
var Log = logrus.New()

// Generator creates Peg Solitaire boards.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a board generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// NewBoard produces a board for the given parameters. Random boards go
// through the generator; Cross and Octagon use fixed layouts and return
// a nil move log.
func (g *Generator) NewBoard(p board.Params) (*board.Board, []Move, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	switch p.Type {
	case board.TypeCross:
		b, err := board.NewCross(p.Width, p.Height)
		return b, nil, err
	case board.TypeOctagon:
		b, err := board.NewOctagon(p.Width, p.Height)
		return b, nil, err
	default:
		return g.Generate(p.Width, p.Height)
	}
}

// Generate creates a random solvable w×h board. It returns the board
// together with the reverse moves that built it, in application order;
// replaying them backwards as forward jumps reduces the board to a
// single peg at the center.
//
// Attempts whose shape fails to reach all four board edges are
// discarded and regenerated. There is deliberately no attempt cap:
// termination is probabilistic, and for sensible sizes the expected
// number of attempts is small.
func (g *Generator) Generate(w, h int) (*board.Board, []Move, error) {
	b, err := board.New(w, h)
	if err != nil {
		return nil, nil, err
	}

	for attempt := 1; ; attempt++ {
		b.Fill(board.Obstacle)
		b.Set(w/2, h/2, board.Peg)

		moves := g.fillBoard(b)

		if b.TouchesAllEdges() {
			Log.WithFields(logrus.Fields{
				"attempt": attempt,
				"moves":   len(moves),
			}).Debug("board accepted")
			return b, moves, nil
		}
		Log.WithFields(logrus.Fields{
			"attempt": attempt,
		}).Debug("insufficient extent; trying again")
	}
}

// fillBoard runs one generation attempt on b, which must contain a
// single peg. It repeatedly selects a uniformly random move among the
// cheapest currently playable ones, applies it, and refreshes the
// candidate index around the three cells it touched, stopping when no
// affordable move remains. Running out of moves is not an error; the
// caller judges the resulting shape.
func (g *Generator) fillBoard(b *board.Board) []Move {
	w, h := b.Width(), b.Height()

	idx := newMoveIndex()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.Get(x, y) == board.Peg {
				refreshMoves(b, x, y, idx)
			}
		}
	}

	var moves []Move
	for {
		// After filling at least half the grid, stop accepting
		// cost-2 moves: if clearing two fresh obstacles is the only
		// option, give up and finish.
		maxCost := MaxMoveCost
		if len(moves) >= w*h/2 {
			maxCost = 1
		}

		tier, available := -1, 0
		for cost := 0; cost <= maxCost; cost++ {
			available = idx.countBelow(cost+1) - idx.countBelow(cost)
			if available > 0 {
				tier = cost
				break
			}
		}
		if tier < 0 {
			break
		}

		m, ok := idx.at(idx.countBelow(tier) + g.rng.Intn(available))
		if !ok {
			break
		}
		Log.WithFields(logrus.Fields{
			"move": m,
			"tier": tier,
			"size": available,
		}).Debug("selected move")

		mx, my := m.Mid()
		fx, fy := m.Far()
		b.Set(m.X, m.Y, board.Hole)
		b.Set(mx, my, board.Peg)
		b.Set(fx, fy, board.Peg)

		for i := 0; i <= 2; i++ {
			refreshMoves(b, m.X+i*m.DX, m.Y+i*m.DY, idx)
		}

		moves = append(moves, m)
	}
	return moves
}
