// Package bitvec encodes label lists as fixed-universe bit sequences.
//
// A Universe is an ordered, append-only list of labels; the position of a
// label is its bit index. Vector is an immutable bit sequence built on
// grailbio's []uintptr bitset primitives.
//
//	u := bitvec.NewUniverse("a", "b", "c")
//	v := bitvec.Encode([]string{"c", "a", "zzz"}, u) // "zzz" is dropped
//	labels, _ := bitvec.Decode(v, u)                 // [a c]
//
// Encoding never fails. Decoding fails with ErrOutOfRange when a set bit has
// no label in the universe.
package bitvec
