// Package bitvec implements fixed-length bit vectors and the table-driven permutation, expansion, and selection of
// their bits.
package bitvec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLengthMismatch is returned when two vectors which must be the same length are not.
	ErrLengthMismatch = errors.New("bitvec: length mismatch")

	// ErrTooLong is returned when a vector has more bits than fit in a byte.
	ErrTooLong = errors.New("bitvec: more than 8 bits")
)

// Vector is an ordered sequence of bits, most significant first. A true element is a 1 bit.
type Vector []bool

// Left returns the first half of v.
func Left(v Vector) Vector {
	return v[:len(v)/2:len(v)/2]
}

// Right returns the second half of v.
func Right(v Vector) Vector {
	return v[len(v)/2:]
}

// XOR returns the element-wise exclusive-or of a and b.
func XOR(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}

	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] != b[i]
	}
	return out, nil
}

// Concat returns a new vector with the bits of a followed by the bits of b.
func Concat(a, b Vector) Vector {
	out := make(Vector, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// ToByte interprets up to 8 bits as an unsigned big-endian integer.
func ToByte(v Vector) (byte, error) {
	if len(v) > 8 {
		return 0, fmt.Errorf("%w: got %d", ErrTooLong, len(v))
	}

	var b byte
	for _, bit := range v {
		b <<= 1
		if bit {
			b |= 1
		}
	}
	return b, nil
}

// FromByte returns the low size bits of b, most significant first.
func FromByte(b byte, size int) Vector {
	out := make(Vector, size)
	for i := size - 1; i >= 0; i-- {
		out[i] = b&1 == 1
		b >>= 1
	}
	return out
}

// String renders v as a sequence of 0 and 1 characters.
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(len(v))
	for _, bit := range v {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
