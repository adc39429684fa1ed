package board

import "fmt"

// Type identifies the board shape family.
type Type int

const (
	TypeCross Type = iota
	TypeOctagon
	TypeRandom
)

// typeInfo describes one board type for configuration and display.
type typeInfo struct {
	ID    Type
	Title string // display name, e.g. "Octagon"
	Key   string // lowercase key used in encoded parameters
}

// typeTable is the authoritative list of board types. Order matters:
// the index of an entry equals its Type value.
var typeTable = [...]typeInfo{
	{TypeCross, "Cross", "cross"},
	{TypeOctagon, "Octagon", "octagon"},
	{TypeRandom, "Random", "random"},
}

// Title returns the display name for the board type.
func (t Type) Title() string {
	if t < 0 || int(t) >= len(typeTable) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeTable[t].Title
}

// Key returns the lowercase parameter key for the board type.
func (t Type) Key() string {
	if t < 0 || int(t) >= len(typeTable) {
		return ""
	}
	return typeTable[t].Key
}

// TypeFromKey looks up a board type by its lowercase parameter key.
func TypeFromKey(key string) (Type, bool) {
	for _, ti := range typeTable {
		if ti.Key == key {
			return ti.ID, true
		}
	}
	return 0, false
}

// fixedShapeSize is the only size at which the Cross and Octagon layouts
// are known to be solvable; other sizes are rejected by Params.Validate.
const fixedShapeSize = 7

// NewCross builds the classic 7×7 cross-shaped board: a plus-sign of
// pegs two rows and two columns wide, with a single hole at the center.
func NewCross(w, h int) (*Board, error) {
	b, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := abs(x-w/2), abs(y-h/2)
			switch {
			case cx == 0 && cy == 0:
				b.Set(x, y, Hole)
			case cx > 1 && cy > 1:
				b.Set(x, y, Obstacle)
			default:
				b.Set(x, y, Peg)
			}
		}
	}
	return b, nil
}

// NewOctagon builds the 7×7 octagonal board: pegs fill a diamond-clipped
// square, with a single hole at the center.
func NewOctagon(w, h int) (*Board, error) {
	b, err := New(w, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := abs(x-w/2), abs(y-h/2)
			switch {
			case cx == 0 && cy == 0:
				b.Set(x, y, Hole)
			case cx+cy > 1+max(w, h)/2:
				b.Set(x, y, Obstacle)
			default:
				b.Set(x, y, Peg)
			}
		}
	}
	return b, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
