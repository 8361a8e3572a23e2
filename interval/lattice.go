// SPDX-License-Identifier: MIT
//
// File: lattice.go
// Role: Concept lattice of intervals described by their relations to earlier intervals.
// Determinism:
//   - Earlier intervals are visited in (lo, id) order, Magic ones last.
// AI-HINT (file):
//   - Each Insert adds three attributes named after the new interval so that
//     later intervals can relate to it.

package interval

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/biogo/store/llrb"

	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/lattice"
)

// Attribute prefixes; the full attribute is prefix + id of the earlier interval.
const (
	AttrBefore   = "before:"
	AttrAfter    = "after:"
	AttrOverlaps = "overlaps:"
)

// endpoint orders intervals in the llrb index by lower bound, then id.
type endpoint[T cmp.Ordered] struct {
	iv Interval[T]
}

// Compare implements llrb.Comparable.
func (e endpoint[T]) Compare(c llrb.Comparable) int {
	o := c.(endpoint[T])
	if d := cmp.Compare(e.iv.lo, o.iv.lo); d != 0 {
		return d
	}

	return strings.Compare(e.iv.id, o.iv.id)
}

// Lattice feeds intervals into a lattice.Lattice. Not safe for concurrent use.
type Lattice[T cmp.Ordered] struct {
	concepts *lattice.Lattice
	index    llrb.Tree // ordinary intervals by (lo, id)
	magic    []Interval[T]
	ids      map[string]struct{}
}

// NewLattice returns an empty interval lattice; opts go to lattice.New.
func NewLattice[T cmp.Ordered](opts ...lattice.Option) (*Lattice[T], error) {
	l, err := lattice.New(nil, opts...)
	if err != nil {
		return nil, err
	}

	return &Lattice[T]{concepts: l, ids: make(map[string]struct{})}, nil
}

// Insert relates iv to every interval inserted before it, inserts iv into the
// concept lattice with those relations as attributes and returns its object concept.
//
// Steps:
//  1. Reject empty or repeated ids.
//  2. Derive before:/after:/overlaps: attributes against earlier intervals.
//  3. Extend the attribute universe with the three attributes naming iv.
//  4. Insert iv and index it.
func (l *Lattice[T]) Insert(iv Interval[T]) (concept.Concept, error) {
	if iv.id == "" {
		return concept.Concept{}, lattice.ErrEmptyObjectID
	}
	if _, dup := l.ids[iv.id]; dup {
		return concept.Concept{}, fmt.Errorf("%w: %q", lattice.ErrDuplicateObject, iv.id)
	}

	attrs := l.relations(iv)
	if _, err := l.concepts.ExtendAttributes(AttrBefore+iv.id, AttrAfter+iv.id, AttrOverlaps+iv.id); err != nil {
		return concept.Concept{}, fmt.Errorf("interval: %w", err)
	}
	c, err := l.concepts.Insert(iv.id, attrs)
	if err != nil {
		return concept.Concept{}, fmt.Errorf("interval: %w", err)
	}

	l.ids[iv.id] = struct{}{}
	if iv.magic {
		l.magic = append(l.magic, iv)
	} else {
		l.index.Insert(endpoint[T]{iv: iv})
	}

	return c, nil
}

// relations names the relation of iv to every indexed interval.
func (l *Lattice[T]) relations(iv Interval[T]) []string {
	attrs := make([]string, 0, len(l.ids))
	for _, p := range l.Intervals() {
		switch {
		case iv.Before(p):
			attrs = append(attrs, AttrBefore+p.id)
		case iv.After(p):
			attrs = append(attrs, AttrAfter+p.id)
		default:
			attrs = append(attrs, AttrOverlaps+p.id)
		}
	}

	return attrs
}

// Lattice returns the underlying concept lattice.
func (l *Lattice[T]) Lattice() *lattice.Lattice { return l.concepts }

// Len returns the number of inserted intervals.
func (l *Lattice[T]) Len() int { return len(l.ids) }

// Intervals returns the inserted intervals ordered by (lo, id), Magic ones last.
func (l *Lattice[T]) Intervals() []Interval[T] {
	out := make([]Interval[T], 0, len(l.ids))
	l.index.Do(func(c llrb.Comparable) bool {
		out = append(out, c.(endpoint[T]).iv)
		return false
	})

	return append(out, l.magic...)
}

// Preceding returns the inserted intervals that end at or before iv starts,
// ordered by lower bound. Only intervals starting below iv.Lo are examined.
func (l *Lattice[T]) Preceding(iv Interval[T]) []Interval[T] {
	var out []Interval[T]
	if iv.magic {
		return out
	}
	l.index.Do(func(c llrb.Comparable) bool {
		p := c.(endpoint[T]).iv
		if p.lo >= iv.lo {
			return true // every later entry starts too late
		}
		if p.Before(iv) {
			out = append(out, p)
		}
		return false
	})

	return out
}

// Following returns the inserted intervals that start at or after iv ends,
// ordered by lower bound.
func (l *Lattice[T]) Following(iv Interval[T]) []Interval[T] {
	var out []Interval[T]
	if iv.magic {
		return out
	}
	l.index.DoReverse(func(c llrb.Comparable) bool {
		p := c.(endpoint[T]).iv
		if p.lo < iv.hi {
			return true
		}
		out = append(out, p)
		return false
	})
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
