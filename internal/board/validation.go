package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSize   = errors.New("board dimensions out of range")
	ErrBadDescriptor = errors.New("invalid board descriptor")
)

// ValidateDescriptor checks that a descriptor string has exactly w*h
// characters, all drawn from the alphabet {P, H, O}.
func ValidateDescriptor(w, h int, desc string) error {
	if len(desc) != w*h {
		return fmt.Errorf("%w: wrong length %d for %dx%d board", ErrBadDescriptor, len(desc), w, h)
	}
	if i := strings.IndexFunc(desc, func(r rune) bool {
		return r != descPeg && r != descHole && r != descObstacle
	}); i >= 0 {
		return fmt.Errorf("%w: invalid character %q at position %d", ErrBadDescriptor, desc[i], i)
	}
	return nil
}
