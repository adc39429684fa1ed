package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidParams = errors.New("invalid board parameters")
)

// Params selects a board shape and size.
type Params struct {
	Width  int
	Height int
	Type   Type
}

// DefaultParams returns the standard 7×7 cross board.
func DefaultParams() Params {
	return Params{Width: 7, Height: 7, Type: TypeCross}
}

// Presets is the list of parameter combinations offered by default.
var Presets = []Params{
	{7, 7, TypeCross},
	{7, 7, TypeOctagon},
	{5, 5, TypeRandom},
	{7, 7, TypeRandom},
	{9, 9, TypeRandom},
}

// Name returns the preset display name: the type title, with the
// dimensions appended for random boards where size varies.
func (p Params) Name() string {
	if p.Type == TypeRandom {
		return fmt.Sprintf("%s %dx%d", p.Type.Title(), p.Width, p.Height)
	}
	return p.Type.Title()
}

// Encode renders the parameters in the textual form accepted by
// DecodeParams, e.g. "7x7cross". If full is false the type suffix is
// omitted and only the dimensions are encoded.
func (p Params) Encode(full bool) string {
	s := fmt.Sprintf("%dx%d", p.Width, p.Height)
	if full {
		s += p.Type.Key()
	}
	return s
}

// Validate checks the parameter combination for legality.
func (p Params) Validate() error {
	if p.Width < MinSize || p.Height < MinSize {
		return fmt.Errorf("%w: width and height must both be greater than three", ErrInvalidParams)
	}
	// Cross and Octagon layouts are only known solvable at 7x7.
	if p.Type == TypeCross || p.Type == TypeOctagon {
		if p.Width != fixedShapeSize || p.Height != fixedShapeSize {
			return fmt.Errorf("%w: %s board is only supported at %dx%d",
				ErrInvalidParams, p.Type.Title(), fixedShapeSize, fixedShapeSize)
		}
	}
	return nil
}

// DecodeParams parses a parameter string of the form "W", "WxH",
// "Wtype" or "WxHtype", merging the result with defaults. A missing
// height defaults to the width; a missing or unknown type leaves the
// default type in place.
func DecodeParams(s string, defaults Params) (Params, error) {
	p := defaults

	w, rest := scanInt(s)
	if w == 0 {
		return p, fmt.Errorf("%w: %q does not start with a width", ErrInvalidParams, s)
	}
	p.Width = w
	p.Height = w
	if strings.HasPrefix(rest, "x") {
		h, r := scanInt(rest[1:])
		if h == 0 {
			return p, fmt.Errorf("%w: %q has no height after 'x'", ErrInvalidParams, s)
		}
		p.Height = h
		rest = r
	}
	if rest != "" {
		t, ok := TypeFromKey(rest)
		if !ok {
			return p, fmt.Errorf("%w: unknown board type %q", ErrInvalidParams, rest)
		}
		p.Type = t
	}
	return p, nil
}

// scanInt consumes a leading run of decimal digits, returning its value
// and the remainder of the string. A missing run yields 0.
func scanInt(s string) (int, string) {
	n := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, s[i:]
}
