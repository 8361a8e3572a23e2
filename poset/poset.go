// Package poset provides a minimal generic partially ordered set.
//
// A Poset is a finite set of comparable elements together with a caller
// supplied order predicate leq. The predicate must be reflexive, antisymmetric
// and transitive; Poset does not verify this.
package poset

// Poset is a finite set with a partial order. Insertion order is kept so that
// every enumeration is deterministic.
type Poset[T comparable] struct {
	leq   func(a, b T) bool
	elems []T
	index map[T]struct{}
}

// New returns a Poset ordered by leq holding elems (duplicates are ignored).
func New[T comparable](leq func(a, b T) bool, elems ...T) *Poset[T] {
	p := &Poset[T]{leq: leq, index: make(map[T]struct{}, len(elems))}
	for _, e := range elems {
		p.Add(e)
	}

	return p
}

// Add inserts e and reports whether it was new.
func (p *Poset[T]) Add(e T) bool {
	if _, ok := p.index[e]; ok {
		return false
	}
	p.index[e] = struct{}{}
	p.elems = append(p.elems, e)

	return true
}

// Contains reports whether e is a member.
func (p *Poset[T]) Contains(e T) bool {
	_, ok := p.index[e]

	return ok
}

// Len returns the number of members.
func (p *Poset[T]) Len() int { return len(p.elems) }

// Elements returns the members in insertion order.
func (p *Poset[T]) Elements() []T {
	out := make([]T, len(p.elems))
	copy(out, p.elems)

	return out
}

// Leq reports a ≤ b under the poset's order.
func (p *Poset[T]) Leq(a, b T) bool { return p.leq(a, b) }

// Comparable reports whether a ≤ b or b ≤ a.
func (p *Poset[T]) Comparable(a, b T) bool { return p.leq(a, b) || p.leq(b, a) }

// Intersect returns the members present in both p and o, ordered by p's
// insertion order and by p's predicate.
func (p *Poset[T]) Intersect(o *Poset[T]) *Poset[T] {
	out := New(p.leq)
	for _, e := range p.elems {
		if o.Contains(e) {
			out.Add(e)
		}
	}

	return out
}

// Maximal returns the members that are not strictly below any other member.
// Complexity: O(n²) predicate calls.
func (p *Poset[T]) Maximal() []T {
	return p.extremes(func(e, f T) bool { return p.leq(e, f) })
}

// Minimal returns the members that are not strictly above any other member.
func (p *Poset[T]) Minimal() []T {
	return p.extremes(func(e, f T) bool { return p.leq(f, e) })
}

// extremes keeps e unless some other f satisfies dominated(e, f).
func (p *Poset[T]) extremes(dominated func(e, f T) bool) []T {
	out := make([]T, 0, len(p.elems))
	for _, e := range p.elems {
		keep := true
		for _, f := range p.elems {
			if f != e && dominated(e, f) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, e)
		}
	}

	return out
}
