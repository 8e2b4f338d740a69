package sdes

import (
	"github.com/codahale/sdes/internal/bitvec"
	"github.com/codahale/sdes/internal/sbox"
)

// feistel returns P4(S0(L(k ^ EP(x))) || S1(R(k ^ EP(x)))) for an 8-bit subkey k and a 4-bit half-block x.
func feistel(k, x bitvec.Vector) (bitvec.Vector, error) {
	e, err := ep.Apply(x)
	if err != nil {
		return nil, err
	}

	m, err := bitvec.XOR(k, e)
	if err != nil {
		return nil, err
	}

	s0, err := sbox.S0.Lookup(bitvec.Left(m))
	if err != nil {
		return nil, err
	}

	s1, err := sbox.S1.Lookup(bitvec.Right(m))
	if err != nil {
		return nil, err
	}

	return p4.Apply(bitvec.Concat(s0, s1))
}

// round returns (L(x) ^ F(k, R(x))) || R(x). It leaves the right half in place and is its own inverse for a given k.
func round(x, k bitvec.Vector) (bitvec.Vector, error) {
	f, err := feistel(k, bitvec.Right(x))
	if err != nil {
		return nil, err
	}

	left, err := bitvec.XOR(bitvec.Left(x), f)
	if err != nil {
		return nil, err
	}

	return bitvec.Concat(left, bitvec.Right(x)), nil
}

// swap exchanges the two halves of x.
func swap(x bitvec.Vector) bitvec.Vector {
	return bitvec.Concat(bitvec.Right(x), bitvec.Left(x))
}
