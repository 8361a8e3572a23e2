// SPDX-License-Identifier: MIT
// Package prune filters graph vertices by label or weight.
//
// A Pruner only decides; it never mutates a graph. Apply derives a new graph
// holding the vertices the Pruner keeps, via core.InducedSubgraph.
package prune

import "github.com/katalvlaran/galois/core"

// Pruner flags vertices whose label equals a configured label or whose
// weight equals a configured weight. It remembers the last vertex examined.
// A Pruner is not safe for concurrent use.
type Pruner[L any] struct {
	eq      func(a, b L) bool
	labels  []L
	weights map[float64]struct{}
	parent  *core.Vertex[L]
}

// Builder accumulates Pruner settings.
type Builder[L any] struct {
	eq      func(a, b L) bool
	labels  []L
	weights []float64
}

// NewBuilder returns a Builder comparing labels with eq. eq may be nil when
// no labels are configured; otherwise configured labels never match.
func NewBuilder[L any](eq func(a, b L) bool) *Builder[L] {
	return &Builder[L]{eq: eq}
}

// WithLabels adds labels to prune.
func (b *Builder[L]) WithLabels(labels ...L) *Builder[L] {
	b.labels = append(b.labels, labels...)

	return b
}

// WithWeights adds vertex weights to prune.
func (b *Builder[L]) WithWeights(weights ...float64) *Builder[L] {
	b.weights = append(b.weights, weights...)

	return b
}

// Build returns a Pruner with copies of the accumulated settings.
func (b *Builder[L]) Build() *Pruner[L] {
	p := &Pruner[L]{
		eq:      b.eq,
		labels:  append([]L(nil), b.labels...),
		weights: make(map[float64]struct{}, len(b.weights)),
	}
	for _, w := range b.weights {
		p.weights[w] = struct{}{}
	}

	return p
}

// Comparable returns == as an equality for comparable labels.
func Comparable[L comparable]() func(a, b L) bool {
	return func(a, b L) bool { return a == b }
}

// PruneVertex reports whether v should be removed and records v as Parent.
// With no labels or weights configured it always returns false.
func (p *Pruner[L]) PruneVertex(v *core.Vertex[L]) bool {
	if v == nil {
		return false
	}
	p.parent = v
	if _, ok := p.weights[v.Weight()]; ok {
		return true
	}
	if p.eq == nil {
		return false
	}
	for _, l := range p.labels {
		if p.eq(v.Label(), l) {
			return true
		}
	}

	return false
}

// Parent returns the most recently examined vertex, or nil.
func (p *Pruner[L]) Parent() *core.Vertex[L] { return p.parent }

// Apply returns the subgraph of g induced by the vertices p keeps. Vertex ids
// are preserved; g is left untouched.
// Complexity: O(V·(|labels|) + E).
func Apply[L any](g *core.Graph[L], p *Pruner[L]) *core.Graph[L] {
	return core.InducedSubgraph(g, func(v *core.Vertex[L]) bool { return !p.PruneVertex(v) })
}
