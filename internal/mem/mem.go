// Package mem contains slice helpers for append-style APIs.
package mem

import "slices"

// SliceForAppend extends in by n bytes and returns both the extended slice and the n-byte tail which aliases it. No
// allocation is performed if in has the capacity.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}
