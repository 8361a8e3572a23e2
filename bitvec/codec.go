// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Conversion between label lists and Vectors over a Universe.
// Policy:
//   - Encode is total: labels absent from the universe are dropped, never an error.
//   - Decode fails with ErrOutOfRange when a set bit has no label.

package bitvec

import (
	"errors"
	"fmt"

	"github.com/grailbio/base/bitset"
)

// ErrOutOfRange indicates a bit position that has no label in the universe.
var ErrOutOfRange = errors.New("bitvec: bit index out of range")

// outOfRange wraps ErrOutOfRange with the offending position and universe size.
func outOfRange(i, n int) error {
	return fmt.Errorf("%w: index %d, universe size %d", ErrOutOfRange, i, n)
}

// Encode sets the bit of every label in labels that is known to u.
// The resulting Vector has capacity u.Len(). Unknown labels are skipped.
//
// Complexity: O(len(labels) + u.Len()/wordsize).
func Encode(labels []string, u *Universe) Vector {
	v := New(u.Len())
	for _, l := range labels {
		if i, ok := u.Index(l); ok {
			bitset.Set(v.words, i) // v is still private to Encode
		}
	}

	return v
}

// Decode returns the labels of the set bits of v in universe order.
// A set bit at a position >= u.Len() yields ErrOutOfRange.
func Decode(v Vector, u *Universe) ([]string, error) {
	idx := v.Indices()
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		l, err := u.Label(i)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	return out, nil
}

// MustDecode is Decode for vectors known to be encoded against u.
// It panics on ErrOutOfRange, which signals a programming error.
func MustDecode(v Vector, u *Universe) []string {
	out, err := Decode(v, u)
	if err != nil {
		panic(err)
	}

	return out
}
