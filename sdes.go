// Package sdes implements Simplified DES, a two-round Feistel block cipher over 8-bit blocks with a 10-bit key.
//
// Each block passes through an initial permutation, a round keyed with the first subkey, a swap of its two 4-bit
// halves, a round keyed with the second subkey, and the inverse of the initial permutation. The round function expands
// the right half to 8 bits, mixes in the subkey, and compresses the result through two 4x4 substitution boxes and a
// 4-bit permutation.
//
// The cipher is small enough to trace by hand. It is not secure: its 1024 keys can be searched in microseconds, and
// messages are enciphered one byte at a time in electronic codebook mode.
//
// Both subkeys are selected directly from the 10-bit key. There is no rotation step between them, unlike the textbook
// key schedule, so ciphertexts are not interchangeable with other S-DES implementations.
package sdes

import (
	"errors"

	"github.com/codahale/sdes/internal/bitvec"
)

const (
	// KeySize is the size of a key, in bits.
	KeySize = 10

	// BlockSize is the size of a block, in bytes.
	BlockSize = 1
)

var (
	// ErrInvalidKeyFormat is returned when a key is not exactly ten '0' or '1' characters.
	ErrInvalidKeyFormat = errors.New("sdes: invalid key format")

	// ErrKeyNotSet is returned when a Cipher is used without a key.
	ErrKeyNotSet = errors.New("sdes: key not set")
)

//nolint:gochecknoglobals // constant tables
var (
	// Initial permutation of a block and its inverse.
	ip        = bitvec.Table{1, 5, 2, 0, 3, 7, 4, 6}
	ipInverse = bitvec.Table{3, 0, 2, 4, 6, 1, 7, 5}

	// Subkey selections from the 10-bit key.
	k1Select = bitvec.Table{0, 6, 8, 3, 7, 2, 9, 5}
	k2Select = bitvec.Table{7, 2, 5, 4, 9, 1, 8, 0}

	// Expansion of a 4-bit half-block to 8 bits.
	ep = bitvec.Table{3, 0, 1, 2, 1, 2, 3, 0}

	// Permutation of the concatenated S-box outputs.
	p4 = bitvec.Table{1, 3, 2, 0}
)
