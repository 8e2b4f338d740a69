package bitvec

import (
	"errors"
	"testing"
)

func TestTable_Apply(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		in    string
		want  string
	}{
		{"identity", Table{0, 1, 2, 3}, "1100", "1100"},
		{"permutation", Table{1, 5, 2, 0, 3, 7, 4, 6}, "10000000", "00010000"},
		{"expansion", Table{3, 0, 1, 2, 1, 2, 3, 0}, "1001", "11000011"},
		{"selection", Table{0, 6, 8, 3, 7, 2, 9, 5}, "1010000010", "10100100"},
		{"empty", Table{}, "1010", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.table.Apply(v(tt.in))
			if err != nil {
				t.Fatal(err)
			}

			if got.String() != tt.want {
				t.Errorf("Apply(%s) = %s, want = %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTable_Apply_OutOfRange(t *testing.T) {
	for _, table := range []Table{{0, 4}, {-1, 0}} {
		if _, err := table.Apply(v("1010")); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Apply(%v) err = %v, want = %v", table, err, ErrIndexOutOfRange)
		}
	}
}

func TestTable_Validate(t *testing.T) {
	table := Table{3, 0, 1, 2, 1, 2, 3, 0}

	if err := table.Validate(4); err != nil {
		t.Errorf("Validate(4) = %v, want = nil", err)
	}

	if err := table.Validate(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Validate(3) = %v, want = %v", err, ErrIndexOutOfRange)
	}
}
