package sdes

import (
	"fmt"

	"github.com/codahale/sdes/internal/bitvec"
)

// A Key is a 10-bit S-DES key, most significant bit first.
type Key [KeySize]bool

// ParseKey parses a key from a string of ten '0' and '1' characters, e.g. "1010000010".
func ParseKey(s string) (Key, error) {
	var k Key
	if len(s) != KeySize {
		return Key{}, fmt.Errorf("%w: must be %d bits long, got %d characters", ErrInvalidKeyFormat, KeySize, len(s))
	}

	for i := range len(s) {
		switch s[i] {
		case '0':
		case '1':
			k[i] = true
		default:
			return Key{}, fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidKeyFormat, s[i], i)
		}
	}
	return k, nil
}

// String returns the key as a string of ten '0' and '1' characters.
func (k Key) String() string {
	return bitvec.Vector(k[:]).String()
}

// Subkeys returns the two 8-bit round subkeys derived from k.
func (k Key) Subkeys() (k1, k2 byte, err error) {
	v1, v2, err := k.schedule()
	if err != nil {
		return 0, 0, err
	}

	if k1, err = bitvec.ToByte(v1); err != nil {
		return 0, 0, err
	}

	if k2, err = bitvec.ToByte(v2); err != nil {
		return 0, 0, err
	}
	return k1, k2, nil
}

// schedule selects both subkeys directly from the raw key. No rotation is applied between them.
func (k Key) schedule() (k1, k2 bitvec.Vector, err error) {
	raw := bitvec.Vector(k[:])

	if k1, err = k1Select.Apply(raw); err != nil {
		return nil, nil, err
	}

	if k2, err = k2Select.Apply(raw); err != nil {
		return nil, nil, err
	}
	return k1, k2, nil
}
