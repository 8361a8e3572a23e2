// SPDX-License-Identifier: MIT
// Package interval describes half-open ranges over an ordered domain and a
// concept lattice whose attributes are the ordering relations between them.
//
// For two ordinary intervals exactly one of Before, After and Overlaps holds.
// Touching intervals ([0,2) and [2,4)) do not overlap. The Magic interval is
// absorbing: it is never before or after anything and overlaps everything.
package interval

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrInvertedRange is returned by New when lo is not strictly below hi.
var ErrInvertedRange = errors.New("interval: range must satisfy lo < hi")

// MagicID is the id carried by Magic intervals.
const MagicID = "MAGIC"

// Interval is an identified half-open range [lo, hi).
type Interval[T cmp.Ordered] struct {
	id     string
	lo, hi T
	magic  bool
}

// New returns the interval id = [lo, hi) or ErrInvertedRange.
func New[T cmp.Ordered](id string, lo, hi T) (Interval[T], error) {
	if !(lo < hi) {
		return Interval[T]{}, fmt.Errorf("%w: %s=[%v,%v)", ErrInvertedRange, id, lo, hi)
	}

	return Interval[T]{id: id, lo: lo, hi: hi}, nil
}

// Magic returns the absorbing sentinel interval.
func Magic[T cmp.Ordered]() Interval[T] {
	return Interval[T]{id: MagicID, magic: true}
}

// ID returns the interval id.
func (i Interval[T]) ID() string { return i.id }

// Lo returns the inclusive lower bound (zero for Magic).
func (i Interval[T]) Lo() T { return i.lo }

// Hi returns the exclusive upper bound (zero for Magic).
func (i Interval[T]) Hi() T { return i.hi }

// IsMagic reports whether i is the sentinel.
func (i Interval[T]) IsMagic() bool { return i.magic }

// Before reports that i ends at or before o starts.
func (i Interval[T]) Before(o Interval[T]) bool {
	if i.magic || o.magic {
		return false
	}

	return i.hi <= o.lo
}

// After reports that i starts at or after o ends.
func (i Interval[T]) After(o Interval[T]) bool {
	if i.magic || o.magic {
		return false
	}

	return i.lo >= o.hi
}

// Overlaps reports that i and o share at least one point.
func (i Interval[T]) Overlaps(o Interval[T]) bool {
	if i.magic || o.magic {
		return true
	}

	return !i.Before(o) && !i.After(o)
}

// String renders "id[lo,hi)" or the magic id.
func (i Interval[T]) String() string {
	if i.magic {
		return i.id
	}

	return fmt.Sprintf("%s[%v,%v)", i.id, i.lo, i.hi)
}
