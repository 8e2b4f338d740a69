package bitvec

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a table refers to a bit position which does not exist in its input.
var ErrIndexOutOfRange = errors.New("bitvec: table index out of range")

// Table maps each output position to a position in an input vector. A table may repeat positions (expansion), omit
// them (selection), or do neither (permutation). Its length is the length of its output.
type Table []int

// Apply returns a vector of len(t) bits where bit i is in[t[i]].
func (t Table) Apply(in Vector) (Vector, error) {
	out := make(Vector, len(t))
	for i, pos := range t {
		if pos < 0 || pos >= len(in) {
			return nil, fmt.Errorf("%w: item %d value %d not in [0, %d)", ErrIndexOutOfRange, i, pos, len(in))
		}
		out[i] = in[pos]
	}
	return out, nil
}

// Validate checks that every entry of t is a valid position in an input of n bits.
func (t Table) Validate(n int) error {
	_, err := t.Apply(make(Vector, n))
	return err
}
