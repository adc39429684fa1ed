package generator

import "github.com/stanleychen/sgtpuzzles/internal/board"

// refreshMoves recomputes every move candidate whose 3-cell footprint
// includes (x, y) and reconciles each against the index. There are
// twelve such candidates: three positions within the footprint, in each
// of four directions. The result depends only on current grid contents,
// so calling refreshMoves again without an intervening grid change is a
// no-op.
func refreshMoves(b *board.Board, x, y int, idx *moveIndex) {
	for dir := 0; dir < 4; dir++ {
		var dx, dy int
		if dir&1 == 1 {
			dy = dir - 2
		} else {
			dx = dir - 1
		}

		for pos := 0; pos < 3; pos++ {
			m := Move{X: x - pos*dx, Y: y - pos*dy, DX: dx, DY: dy}
			fx, fy := m.Far()
			if !b.InBounds(m.X, m.Y) || !b.InBounds(fx, fy) {
				continue // footprint leaves the board
			}

			mx, my := m.Mid()
			v1 := b.Get(m.X, m.Y)
			v2 := b.Get(mx, my)
			v3 := b.Get(fx, fy)

			if v1 == board.Peg && v2 != board.Peg && v3 != board.Peg {
				m.Cost = 0
				if v2 == board.Obstacle {
					m.Cost++
				}
				if v3 == board.Obstacle {
					m.Cost++
				}
				idx.reconcile(m, true)
			} else {
				idx.reconcile(m, false)
			}
		}
	}
}
