// SPDX-License-Identifier: MIT
//
// File: lattice.go
// Role: Construction and incremental insertion (AddIntent).
// Determinism:
//   - For a fixed insertion sequence the vertex ids and edge order are fixed.
//   - The resulting set of concepts and covers does not depend on that sequence.
// AI-HINT (file):
//   - Bottom (∅ intent) and top (full intent) are seeded by New, so both exist
//     before the first Insert.
//   - An intent that already names a vertex merges the object into it.

package lattice

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/galois/bfs"
	"github.com/katalvlaran/galois/bitvec"
	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/poset"
)

// New returns a Lattice over the given attribute universe, holding only the
// bottom (∅ extent, ∅ intent) and top (∅ extent, full intent) concepts.
// With an empty universe the two coincide in a single vertex.
//
// Returns ErrGraphNotEmpty if WithGraph supplies a non-empty graph.
func New(attributes []string, opts ...Option) (*Lattice, error) {
	o := options{
		factory: func() *core.Graph[concept.Concept] { return core.NewGraph[concept.Concept]() },
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	g := o.factory()
	if g == nil {
		g = core.NewGraph[concept.Concept]()
	}
	if g.VertexCount() > 0 {
		return nil, ErrGraphNotEmpty
	}

	l := &Lattice{
		graph:      g,
		objects:    bitvec.NewUniverse(),
		attributes: bitvec.NewUniverse(attributes...),
		byIntent:   make(map[string]int),
		logger:     o.logger,
		hook:       o.hook,
	}
	m := l.attributes.Len()
	l.bottom = l.addConcept(bitvec.New(0), bitvec.New(m))
	l.top = l.bottom
	if m > 0 {
		l.top = l.addConcept(bitvec.New(0), bitvec.Full(m))
		if err := l.link(l.bottom, l.top); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Insert adds objectID with the given attributes and returns its object
// concept (the most specific concept whose extent contains objectID).
//
// Attributes missing from the universe are ignored. If the encoded intent
// already names a concept, the object joins that concept and every more
// general one; otherwise the concept is created and any meet concepts it
// implies are materialized with it.
//
// Steps:
//  1. Encode attributes against the attribute universe.
//  2. AddIntent from the top: find or create the concept for that intent.
//  3. Append objectID to the extent of that concept and all its generalizations.
//
// Complexity: O(|C|·|M|) vertex visits in the worst case, where C is the
// concept set; typical inserts touch a small neighbourhood.
func (l *Lattice) Insert(objectID string, attributes []string) (concept.Concept, error) {
	if objectID == "" {
		return concept.Concept{}, ErrEmptyObjectID
	}
	if l.objects.Contains(objectID) {
		return concept.Concept{}, fmt.Errorf("%w: %q", ErrDuplicateObject, objectID)
	}
	start := time.Now()

	intent := bitvec.Encode(attributes, l.attributes)
	_, merged := l.byIntent[intent.Key()]
	before := l.graph.VertexCount()

	id, err := l.addIntent(intent, l.top)
	if err != nil {
		return concept.Concept{}, fmt.Errorf("lattice: insert %q: %w", objectID, err)
	}
	l.objects.Append(objectID)
	l.rows = append(l.rows, intent)
	if err = l.propagate(id, len(l.rows)-1); err != nil {
		return concept.Concept{}, fmt.Errorf("lattice: insert %q: %w", objectID, err)
	}

	ev := InsertEvent{
		Object:   objectID,
		Concept:  l.label(id),
		Created:  l.graph.VertexCount() - before,
		Merged:   merged,
		Size:     l.graph.VertexCount(),
		Order:    l.graph.EdgeCount(),
		Duration: time.Since(start),
	}
	l.logger.Debug("lattice: insert",
		"object", objectID,
		"created", ev.Created,
		"merged", merged,
		"size", ev.Size,
		"order", ev.Order,
	)
	if l.hook != nil {
		l.hook(ev)
	}

	return ev.Concept, nil
}

// addIntent returns the vertex whose intent equals intent, creating it (and
// every meet it requires) below generator when absent.
// generator must be a vertex whose intent contains intent.
func (l *Lattice) addIntent(intent bitvec.Vector, generator int) (int, error) {
	generator, err := l.maximalConcept(intent, generator)
	if err != nil {
		return 0, err
	}
	gen := l.label(generator)
	if gen.Intent().Equal(intent) {
		return generator, nil
	}

	parents, err := l.graph.Predecessors(generator)
	if err != nil {
		return 0, err
	}
	candidates := poset.New(l.leq)
	for _, c := range parents {
		ci := l.label(c).Intent()
		if !ci.SubsetOf(intent) {
			if c, err = l.addIntent(ci.And(intent), c); err != nil {
				return 0, err
			}
		}
		candidates.Add(c)
	}

	id := l.addConcept(gen.Extent(), intent)
	for _, p := range candidates.Maximal() {
		if l.graph.HasEdge(p, generator) {
			if err = l.graph.Orphan(p, generator); err != nil {
				return 0, err
			}
		}
		if err = l.link(p, id); err != nil {
			return 0, err
		}
	}
	if err = l.link(id, generator); err != nil {
		return 0, err
	}

	return id, nil
}

// maximalConcept descends from generator through more general neighbours as
// long as their intent still contains intent. The vertex it stops at is the
// closure of intent in the current lattice.
func (l *Lattice) maximalConcept(intent bitvec.Vector, generator int) (int, error) {
	for {
		parents, err := l.graph.Predecessors(generator)
		if err != nil {
			return 0, err
		}
		next := -1
		for _, p := range parents {
			if intent.SubsetOf(l.label(p).Intent()) {
				next = p
				break
			}
		}
		if next < 0 {
			return generator, nil
		}
		generator = next
	}
}

// propagate sets bit object in the extent of id and of every generalization of id.
func (l *Lattice) propagate(id, object int) error {
	res, err := bfs.BFS(l.graph, id, bfs.WithDirection(bfs.Inbound))
	if err != nil {
		return err
	}
	for _, v := range res.Order {
		c := l.label(v)
		ext := c.Extent().With(object)
		if err = l.graph.SetLabel(v, concept.FromVectors(ext, c.Intent(), l.objects, l.attributes)); err != nil {
			return err
		}
		if err = l.graph.SetWeight(v, float64(ext.Count())); err != nil {
			return err
		}
	}

	return nil
}

// addConcept creates a vertex for (extent, intent) and indexes its intent.
func (l *Lattice) addConcept(extent, intent bitvec.Vector) int {
	id := l.graph.AddVertex(concept.FromVectors(extent, intent, l.objects, l.attributes))
	_ = l.graph.SetWeight(id, float64(extent.Count())) // id is fresh
	l.byIntent[intent.Key()] = id

	return id
}

// link records that to covers from, weighted by the attributes gained.
func (l *Lattice) link(from, to int) error {
	gained := l.label(to).Intent().Count() - l.label(from).Intent().Count()

	return l.graph.Adopt(from, to, float64(gained))
}

// label returns the concept stored at id, measured against the current
// object count. Ids handed out by the lattice stay live.
func (l *Lattice) label(id int) concept.Concept {
	c, _ := l.graph.Label(id)

	return concept.FromVectors(c.Extent(), c.Intent(), l.objects, l.attributes)
}

// leq orders vertex ids by intent inclusion.
func (l *Lattice) leq(a, b int) bool {
	return l.label(a).Intent().SubsetOf(l.label(b).Intent())
}
