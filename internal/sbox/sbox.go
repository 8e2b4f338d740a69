// Package sbox implements the two 4-bit to 2-bit substitution boxes.
package sbox

import (
	"errors"
	"fmt"

	"github.com/codahale/sdes/internal/bitvec"
)

// ErrInvalidInput is returned when an S-box is given anything other than 4 bits.
var ErrInvalidInput = errors.New("sbox: input must be 4 bits")

// Box is a 4x4 table of 2-bit outputs. The row is selected by the outer two input bits and the column by the inner
// two.
type Box [4][4]uint8

//nolint:gochecknoglobals // constant tables
var (
	// S0 is the substitution box applied to the left half of the mixed round input.
	S0 = Box{
		{1, 0, 3, 2},
		{3, 2, 1, 0},
		{0, 2, 1, 3},
		{3, 1, 3, 2},
	}

	// S1 is the substitution box applied to the right half of the mixed round input.
	S1 = Box{
		{0, 1, 2, 3},
		{2, 0, 1, 3},
		{3, 0, 1, 0},
		{2, 1, 0, 3},
	}
)

// Lookup returns the 2-bit output of the box for the 4-bit input x = (x0, x1, x2, x3), where row = 2*x0 + x3 and
// col = 2*x1 + x2.
func (s *Box) Lookup(x bitvec.Vector) (bitvec.Vector, error) {
	if len(x) != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInput, len(x))
	}

	row := bit(x[0])<<1 | bit(x[3])
	col := bit(x[1])<<1 | bit(x[2])
	return bitvec.FromByte(s[row][col], 2), nil
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
