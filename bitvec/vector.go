// SPDX-License-Identifier: MIT
//
// File: vector.go
// Role: Immutable fixed-capacity bit sequence with set algebra.
// Policy:
//   - Every operation returns a fresh Vector; receivers are never mutated.
//   - Bits past Len() are zero; trailing zero bits are insignificant for Equal/Key.
// AI-HINT (file):
//   - Operands of different capacity are legal; missing bits read as zero.

package bitvec

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/grailbio/base/bitset"
)

// Vector is an immutable bit sequence of fixed capacity.
// The zero value is an empty vector of capacity 0.
type Vector struct {
	words []uintptr
	n     int // capacity in bits
}

// wordsFor returns the number of words needed to hold n bits.
func wordsFor(n int) int {
	return (n + bitset.BitsPerWord - 1) / bitset.BitsPerWord
}

// New returns an all-zero Vector with capacity n (n < 0 is treated as 0).
func New(n int) Vector {
	if n < 0 {
		n = 0
	}

	return Vector{words: make([]uintptr, wordsFor(n)), n: n}
}

// Full returns a Vector of capacity n with every bit set.
func Full(n int) Vector {
	v := New(n)
	for i := 0; i < n; i++ {
		bitset.Set(v.words, i)
	}

	return v
}

// FromIndices returns the smallest Vector with the given bit positions set.
// Negative positions are ignored.
func FromIndices(idx ...int) Vector {
	n := 0
	for _, i := range idx {
		if i+1 > n {
			n = i + 1
		}
	}
	v := New(n)
	for _, i := range idx {
		if i >= 0 {
			bitset.Set(v.words, i)
		}
	}

	return v
}

// Len returns the capacity of v in bits.
func (v Vector) Len() int { return v.n }

// Test reports whether bit i is set. Positions outside [0, Len) read as false.
func (v Vector) Test(i int) bool {
	if i < 0 || i >= v.n {
		return false
	}

	return bitset.Test(v.words, i)
}

// With returns a copy of v with bit i set, growing capacity when needed.
func (v Vector) With(i int) Vector {
	n := v.n
	if i+1 > n {
		n = i + 1
	}
	out := v.grow(n)
	bitset.Set(out.words, i)

	return out
}

// Count returns the number of set bits.
func (v Vector) Count() int {
	c := 0
	for _, w := range v.words {
		c += bits.OnesCount64(uint64(w))
	}

	return c
}

// IsEmpty reports whether no bit is set.
func (v Vector) IsEmpty() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Highest returns the position of the highest set bit, or -1 if v is empty.
func (v Vector) Highest() int {
	for wi := len(v.words) - 1; wi >= 0; wi-- {
		if w := uint64(v.words[wi]); w != 0 {
			return wi*bitset.BitsPerWord + bits.Len64(w) - 1
		}
	}

	return -1
}

// Indices returns the set bit positions in ascending order.
func (v Vector) Indices() []int {
	out := make([]int, 0, v.Count())
	for i := 0; i < v.n; i++ {
		if bitset.Test(v.words, i) {
			out = append(out, i)
		}
	}

	return out
}

// Equal reports whether v and o carry the same set bits, regardless of capacity.
func (v Vector) Equal(o Vector) bool {
	long, short := v.words, o.words
	if len(short) > len(long) {
		long, short = short, long
	}
	for i := range short {
		if short[i] != long[i] {
			return false
		}
	}
	for _, w := range long[len(short):] {
		if w != 0 {
			return false
		}
	}

	return true
}

// SubsetOf reports whether every bit set in v is also set in o.
func (v Vector) SubsetOf(o Vector) bool {
	for i, w := range v.words {
		var ow uintptr
		if i < len(o.words) {
			ow = o.words[i]
		}
		if w&^ow != 0 {
			return false
		}
	}

	return true
}

// ProperSubsetOf reports v ⊂ o.
func (v Vector) ProperSubsetOf(o Vector) bool {
	return v.SubsetOf(o) && !v.Equal(o)
}

// And returns v ∩ o with capacity max(Len).
func (v Vector) And(o Vector) Vector {
	out := v.grow(max(v.n, o.n))
	for i := range out.words {
		if i < len(o.words) {
			out.words[i] &= o.words[i]
		} else {
			out.words[i] = 0
		}
	}

	return out
}

// Or returns v ∪ o with capacity max(Len).
func (v Vector) Or(o Vector) Vector {
	out := v.grow(max(v.n, o.n))
	for i, w := range o.words {
		out.words[i] |= w
	}

	return out
}

// AndNot returns v \ o with capacity Len(v).
func (v Vector) AndNot(o Vector) Vector {
	out := v.grow(v.n)
	for i := range out.words {
		if i < len(o.words) {
			out.words[i] &^= o.words[i]
		}
	}

	return out
}

// Not returns the complement of v within the first width bits.
// The result has capacity width.
func (v Vector) Not(width int) Vector {
	out := New(width)
	for i := 0; i < width; i++ {
		if !v.Test(i) {
			bitset.Set(out.words, i)
		}
	}

	return out
}

// Shift returns v with every set bit moved up by k positions (k >= 0).
// Used to place a block of columns after another block.
func (v Vector) Shift(k int) Vector {
	if k < 0 {
		k = 0
	}
	out := New(v.n + k)
	for _, i := range v.Indices() {
		bitset.Set(out.words, i+k)
	}

	return out
}

// Resize returns a copy with capacity n, dropping bits at positions >= n.
func (v Vector) Resize(n int) Vector {
	out := v.grow(n)
	for i := n; i < len(out.words)*bitset.BitsPerWord; i++ {
		bitset.Clear(out.words, i)
	}

	return out
}

// Key returns a canonical map key for the set bits of v.
// Vectors that are Equal produce the same Key.
func (v Vector) Key() string {
	end := len(v.words)
	for end > 0 && v.words[end-1] == 0 {
		end--
	}
	var sb strings.Builder
	for i := 0; i < end; i++ {
		sb.WriteString(strconv.FormatUint(uint64(v.words[i]), 36))
		sb.WriteByte('.')
	}

	return sb.String()
}

// String renders v as a 0/1 string of length Len, lowest bit first.
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if bitset.Test(v.words, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// grow returns a copy of v with capacity n (never smaller than needed for n bits).
func (v Vector) grow(n int) Vector {
	out := Vector{words: make([]uintptr, wordsFor(n)), n: n}
	copy(out.words, v.words)

	return out
}
