package generator

// MaxMoveCost is the largest number of obstacle cells a single reverse
// move can consume: the midpoint and the far point.
const MaxMoveCost = 2

// Move is a reverse-jump descriptor used during board generation.
//
// X, Y are the start point of the move during generation, hence its
// endpoint during normal play. DX, DY are the unit direction of the
// move during generation: exactly one of them is ±1, the other 0. For
// example X=3, Y=5, DX=1, DY=0 means the move during generation starts
// at (3,5) and ends at (5,5), and vice versa during normal play.
type Move struct {
	X, Y   int
	DX, DY int

	// Cost is 0, 1 or 2: how many Obstacle cells among the midpoint
	// and the far point this move would turn into playable area.
	Cost int
}

// Mid returns the coordinates of the jumped-over cell.
func (m Move) Mid() (int, int) {
	return m.X + m.DX, m.Y + m.DY
}

// Far returns the coordinates of the move's generation endpoint.
func (m Move) Far() (int, int) {
	return m.X + 2*m.DX, m.Y + 2*m.DY
}

// ForwardEndpoints returns the source and target coordinates of the
// equivalent forward jump during normal play: from the far point back
// onto the move's origin.
func (m Move) ForwardEndpoints() (sx, sy, tx, ty int) {
	fx, fy := m.Far()
	return fx, fy, m.X, m.Y
}

// identityLess orders moves by (y, x, dy, dx), ignoring cost. Two moves
// with equal coordinates and direction are the same candidate even when
// their costs differ.
func identityLess(a, b Move) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.X != b.X {
		return a.X < b.X
	}
	if a.DY != b.DY {
		return a.DY < b.DY
	}
	return a.DX < b.DX
}

// costLess orders moves by cost first, then by identity.
func costLess(a, b Move) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	return identityLess(a, b)
}
