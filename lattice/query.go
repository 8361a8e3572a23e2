// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: Read-only queries: extremes, closures, probabilities, neighbourhoods.
// Determinism:
//   - Closures are computed from the stored object intents, never from the graph,
//     so they do not depend on how the Hasse diagram was built.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/galois/bfs"
	"github.com/katalvlaran/galois/bitvec"
	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/dfs"
	"github.com/katalvlaran/galois/poset"
)

// Top returns the most specific concept: the full attribute universe and the
// objects carrying all of it (usually none).
func (l *Lattice) Top() concept.Concept { return l.label(l.top) }

// Bottom returns the most general concept: the empty intent and every inserted object.
func (l *Lattice) Bottom() concept.Concept { return l.label(l.bottom) }

// Size returns the number of concepts (vertices).
func (l *Lattice) Size() int { return l.graph.VertexCount() }

// Order returns the number of covering pairs (edges).
func (l *Lattice) Order() int { return l.graph.EdgeCount() }

// Objects returns the inserted object ids in insertion order.
func (l *Lattice) Objects() []string { return l.objects.Labels() }

// Attributes returns the attribute universe in index order.
func (l *Lattice) Attributes() []string { return l.attributes.Labels() }

// Graph exposes the backing Hasse diagram. Callers must treat it as read-only;
// use core.InducedSubgraph or prune.Apply to derive modified copies.
func (l *Lattice) Graph() *core.Graph[concept.Concept] { return l.graph }

// Closure returns the Galois closure of attributes: the objects carrying every
// listed attribute and the attributes those objects share. Unknown labels are
// ignored. An empty extent closes to the full attribute universe.
func (l *Lattice) Closure(attributes []string) concept.Concept {
	return l.close(bitvec.Encode(attributes, l.attributes))
}

// close computes (B', B'') for the encoded intent B.
func (l *Lattice) close(intent bitvec.Vector) concept.Concept {
	members := make([]int, 0, len(l.rows))
	common := bitvec.Full(l.attributes.Len())
	for i, row := range l.rows {
		if intent.SubsetOf(row) {
			members = append(members, i)
			common = common.And(row)
		}
	}
	extent := bitvec.FromIndices(members...).Resize(len(l.rows))

	return concept.FromVectors(extent, common, l.objects, l.attributes)
}

// LeastUpperBound closes each attribute list and combines the closures: the
// union of their extents with the intersection of their intents, closed again.
// Closing the intersected intent already absorbs the union of extents.
// Without arguments it returns the closure of the empty list.
func (l *Lattice) LeastUpperBound(lists ...[]string) concept.Concept {
	if len(lists) == 0 {
		return l.close(bitvec.New(0))
	}
	acc := l.Closure(lists[0])
	for _, list := range lists[1:] {
		acc = l.close(acc.Intent().And(l.Closure(list).Intent()))
	}

	return acc
}

// Marginal returns the fraction of objects carrying every listed attribute.
// The empty list yields 1 once any object exists; an empty lattice yields 0.
func (l *Lattice) Marginal(attributes []string) float64 {
	if len(l.rows) == 0 {
		return 0
	}

	return float64(l.Closure(attributes).Extent().Count()) / float64(len(l.rows))
}

// Conditional returns P(x | y): the objects carrying x ∪ y over the objects
// carrying y. It is 0 when no object carries y.
func (l *Lattice) Conditional(x, y []string) float64 {
	den := l.Closure(y).Extent().Count()
	if den == 0 {
		return 0
	}
	joint := make([]string, 0, len(x)+len(y))
	joint = append(append(joint, x...), y...)

	return float64(l.Closure(joint).Extent().Count()) / float64(den)
}

// Lookup returns the concept whose intent is exactly attributes, if it exists.
func (l *Lattice) Lookup(attributes []string) (concept.Concept, bool) {
	id, ok := l.byIntent[bitvec.Encode(attributes, l.attributes).Key()]
	if !ok {
		return concept.Concept{}, false
	}

	return l.label(id), true
}

// Concepts returns every concept as a linear extension of the order: each
// concept appears after all of its generalizations, starting at Bottom.
func (l *Lattice) Concepts() ([]concept.Concept, error) {
	order, err := dfs.TopologicalSort(l.graph)
	if err != nil {
		return nil, fmt.Errorf("lattice: concepts: %w", err)
	}
	out := make([]concept.Concept, len(order))
	for i, id := range order {
		out[i] = l.label(id)
	}

	return out, nil
}

// Generalizations returns the concepts strictly below c (smaller intents),
// nearest first. c is located by its intent.
func (l *Lattice) Generalizations(c concept.Concept) ([]concept.Concept, error) {
	return l.walk(c, bfs.Inbound)
}

// Specializations returns the concepts strictly above c (larger intents), nearest first.
func (l *Lattice) Specializations(c concept.Concept) ([]concept.Concept, error) {
	return l.walk(c, bfs.Outbound)
}

func (l *Lattice) walk(c concept.Concept, dir bfs.Direction) ([]concept.Concept, error) {
	id, ok := l.byIntent[c.Intent().Key()]
	if !ok {
		return nil, ErrConceptNotFound
	}
	res, err := bfs.BFS(l.graph, id, bfs.WithDirection(dir))
	if err != nil {
		return nil, err
	}
	out := make([]concept.Concept, 0, len(res.Order)-1)
	for _, v := range res.Order[1:] {
		out = append(out, l.label(v))
	}

	return out, nil
}

// GreatestLowerBound returns the most specific concept that generalizes both
// a and b, found as the maximum of the intersection of their down-sets.
func (l *Lattice) GreatestLowerBound(a, b concept.Concept) (concept.Concept, error) {
	da, err := l.downset(a)
	if err != nil {
		return concept.Concept{}, err
	}
	db, err := l.downset(b)
	if err != nil {
		return concept.Concept{}, err
	}
	top := da.Intersect(db).Maximal()
	if len(top) != 1 {
		return concept.Concept{}, fmt.Errorf("lattice: %d maximal common generalizations", len(top))
	}

	return l.label(top[0]), nil
}

// downset collects c and all its generalizations as a poset of vertex ids.
func (l *Lattice) downset(c concept.Concept) (*poset.Poset[int], error) {
	id, ok := l.byIntent[c.Intent().Key()]
	if !ok {
		return nil, ErrConceptNotFound
	}
	res, err := bfs.BFS(l.graph, id, bfs.WithDirection(bfs.Inbound))
	if err != nil {
		return nil, err
	}

	return poset.New(l.leq, res.Order...), nil
}

// ExtendAttributes appends labels to the attribute universe and returns how
// many were new. The top is kept at the full universe: an empty-extent top is
// relabeled in place, otherwise a new empty top is placed above the old one.
func (l *Lattice) ExtendAttributes(labels ...string) (int, error) {
	added := l.attributes.Append(labels...)
	if added == 0 {
		return 0, nil
	}
	full := bitvec.Full(l.attributes.Len())
	top := l.label(l.top)

	if top.Extent().IsEmpty() && l.top != l.bottom {
		delete(l.byIntent, top.Intent().Key())
		if err := l.graph.SetLabel(l.top, concept.FromVectors(top.Extent(), full, l.objects, l.attributes)); err != nil {
			return added, err
		}
		l.byIntent[full.Key()] = l.top
		// Covers into the top gained attributes; re-weight them.
		preds, err := l.graph.Predecessors(l.top)
		if err != nil {
			return added, err
		}
		for _, p := range preds {
			if err = l.graph.Orphan(p, l.top); err != nil {
				return added, err
			}
			if err = l.link(p, l.top); err != nil {
				return added, err
			}
		}

		return added, nil
	}

	old := l.top
	l.top = l.addConcept(bitvec.New(0), full)

	return added, l.link(old, l.top)
}
