// SPDX-License-Identifier: MIT
//
// File: universe.go
// Role: Ordered, append-only label sequence; position is the canonical bit index.
// Determinism:
//   - Labels() returns labels in insertion order.
//   - Append() never reorders or removes existing labels.

package bitvec

// Universe is an ordered, append-only set of labels.
// The position of a label in the sequence is its bit index in every Vector
// encoded against this Universe.
type Universe struct {
	labels []string
	index  map[string]int
}

// NewUniverse returns a Universe holding labels in the given order.
// Duplicate labels keep their first position.
func NewUniverse(labels ...string) *Universe {
	u := &Universe{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	u.Append(labels...)

	return u
}

// Append adds labels that are not yet present to the end of the sequence and
// returns how many were actually added.
// Complexity: O(len(labels)).
func (u *Universe) Append(labels ...string) int {
	added := 0
	for _, l := range labels {
		if _, ok := u.index[l]; ok {
			continue // already known; positions are stable
		}
		u.index[l] = len(u.labels)
		u.labels = append(u.labels, l)
		added++
	}

	return added
}

// Index returns the bit index of label and whether it is known.
func (u *Universe) Index(label string) (int, bool) {
	if u == nil {
		return 0, false
	}
	i, ok := u.index[label]

	return i, ok
}

// Contains reports whether label is part of the universe.
func (u *Universe) Contains(label string) bool {
	_, ok := u.Index(label)

	return ok
}

// Label returns the label at bit index i or ErrOutOfRange.
func (u *Universe) Label(i int) (string, error) {
	if i < 0 || i >= u.Len() {
		return "", outOfRange(i, u.Len())
	}

	return u.labels[i], nil
}

// Len returns the number of labels. A nil Universe is empty.
func (u *Universe) Len() int {
	if u == nil {
		return 0
	}

	return len(u.labels)
}

// Labels returns a copy of the label sequence.
func (u *Universe) Labels() []string {
	if u == nil {
		return nil
	}
	out := make([]string, len(u.labels))
	copy(out, u.labels)

	return out
}
