package sbox

import (
	"errors"
	"testing"

	"github.com/codahale/sdes/internal/bitvec"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in     byte
		s0, s1 string
	}{
		{0b0000, "01", "00"},
		{0b1001, "11", "10"},
		{0b0110, "10", "11"},
		{0b1111, "10", "11"},
		{0b0100, "11", "10"},
		{0b0001, "11", "10"},
		{0b1000, "00", "11"},
	}

	for _, tt := range tests {
		x := bitvec.FromByte(tt.in, 4)

		got, err := S0.Lookup(x)
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != tt.s0 {
			t.Errorf("S0(%s) = %s, want = %s", x, got, tt.s0)
		}

		got, err = S1.Lookup(x)
		if err != nil {
			t.Fatal(err)
		}
		if got.String() != tt.s1 {
			t.Errorf("S1(%s) = %s, want = %s", x, got, tt.s1)
		}
	}
}

func TestLookup_InvalidInput(t *testing.T) {
	for _, n := range []int{0, 2, 3, 5, 8} {
		if _, err := S0.Lookup(make(bitvec.Vector, n)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("S0.Lookup(%d bits) err = %v, want = %v", n, err, ErrInvalidInput)
		}
	}
}

func TestBoxes_TwoBitOutputs(t *testing.T) {
	for name, box := range map[string]*Box{"S0": &S0, "S1": &S1} {
		for row := range box {
			for col, out := range box[row] {
				if out > 3 {
					t.Errorf("%s[%d][%d] = %d, want a 2-bit value", name, row, col, out)
				}
			}
		}
	}
}

func TestBoxes_EveryOutputReachable(t *testing.T) {
	for name, box := range map[string]*Box{"S0": &S0, "S1": &S1} {
		seen := make(map[string]bool)
		for i := range 16 {
			out, err := box.Lookup(bitvec.FromByte(byte(i), 4))
			if err != nil {
				t.Fatal(err)
			}
			seen[out.String()] = true
		}

		if got, want := len(seen), 4; got != want {
			t.Errorf("%s reaches %d outputs, want = %d", name, got, want)
		}
	}
}
