// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries, plus the Vertex read surface.
// Determinism:
//   - Vertices() returns live vertices in ascending id order.
//   - Ids are assigned monotonically and never reused after RemoveVertex.
// Concurrency:
//   - Graph methods lock g.mu; Vertex accessors are unsynchronized reads.
// AI-HINT (file):
//   - IsEmpty means "no outgoing edges"; IsSingleton means "no edges at all".

package core

import "fmt"

// ID returns the arena id of v.
func (v *Vertex[L]) ID() int { return v.id }

// Label returns the vertex payload.
func (v *Vertex[L]) Label() L { return v.label }

// Weight returns the scalar vertex annotation.
func (v *Vertex[L]) Weight() float64 { return v.weight }

// Edges returns a copy of the outgoing adjacency list in adoption order.
func (v *Vertex[L]) Edges() []Edge {
	out := make([]Edge, len(v.out))
	copy(out, v.out)

	return out
}

// OutDegree counts outgoing edges, parallel copies and self-loops included.
func (v *Vertex[L]) OutDegree() int { return len(v.out) }

// InDegree counts incoming edges, parallel copies and self-loops included.
func (v *Vertex[L]) InDegree() int { return len(v.in) }

// IsEmpty reports whether v has no edges in either direction. A sink with
// incoming edges is not empty.
func (v *Vertex[L]) IsEmpty() bool { return v.InDegree()+v.OutDegree() == 0 }

// IsSingleton reports whether v has neither incoming nor outgoing edges.
func (v *Vertex[L]) IsSingleton() bool { return len(v.out) == 0 && len(v.in) == 0 }

// ShallowCopy returns a detached vertex with the same id, label and weight and no edges.
func (v *Vertex[L]) ShallowCopy() *Vertex[L] {
	return &Vertex[L]{id: v.id, label: v.label, weight: v.weight}
}

// String renders the vertex as "#id(label)".
func (v *Vertex[L]) String() string {
	return fmt.Sprintf("#%d(%v)", v.id, v.label)
}

// AddVertex appends a new vertex carrying label and returns its id.
// Complexity: O(1) amortized.
func (g *Graph[L]) AddVertex(label L) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.vertices)
	g.vertices = append(g.vertices, &Vertex[L]{id: id, label: label})
	g.live++

	return id
}

// RemoveVertex deletes the vertex and every edge incident to it.
// The id is not reused.
//
// Complexity: O(deg(v) · deg(neighbour)).
func (g *Graph[L]) RemoveVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, err := g.lookup(id)
	if err != nil {
		return err
	}
	// Detach from heads: every out-edge has a mirror in the head's in list.
	for _, e := range v.out {
		if e.Target != id {
			h := g.vertices[e.Target]
			h.in = dropOne(h.in, id)
		}
	}
	// Detach from tails.
	for _, e := range v.in {
		if e.Target != id {
			t := g.vertices[e.Target]
			t.out = dropOne(t.out, id)
		}
	}
	loops := 0
	for _, e := range v.out {
		if e.Target == id {
			loops++
		}
	}
	// Self-loops appear in both lists of v but count once.
	g.edges -= len(v.out) + len(v.in) - loops
	g.vertices[id] = nil
	g.live--

	return nil
}

// HasVertex reports whether id is a live vertex.
func (g *Graph[L]) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, err := g.lookup(id)

	return err == nil
}

// Vertex returns the live vertex with the given id.
// The returned pointer must be treated as read-only.
func (g *Graph[L]) Vertex(id int) (*Vertex[L], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.lookup(id)
}

// Label is a shortcut for Vertex(id).Label().
func (g *Graph[L]) Label(id int) (L, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, err := g.lookup(id)
	if err != nil {
		var zero L
		return zero, err
	}

	return v.label, nil
}

// SetLabel replaces the payload of vertex id.
func (g *Graph[L]) SetLabel(id int, label L) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, err := g.lookup(id)
	if err != nil {
		return err
	}
	v.label = label

	return nil
}

// SetWeight replaces the scalar annotation of vertex id.
func (g *Graph[L]) SetWeight(id int, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, err := g.lookup(id)
	if err != nil {
		return err
	}
	v.weight = w

	return nil
}

// Vertices returns the live vertices in ascending id order.
// Complexity: O(arena size).
func (g *Graph[L]) Vertices() []*Vertex[L] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex[L], 0, g.live)
	for _, v := range g.vertices {
		if v != nil {
			out = append(out, v)
		}
	}

	return out
}

// VertexCount returns the number of live vertices.
func (g *Graph[L]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live
}

// Degree returns the in- and out-degree of vertex id.
// A self-loop contributes one to each.
func (g *Graph[L]) Degree(id int) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, err := g.lookup(id)
	if err != nil {
		return 0, 0, err
	}

	return len(v.in), len(v.out), nil
}

// lookup resolves id to a live vertex. Caller holds g.mu.
func (g *Graph[L]) lookup(id int) (*Vertex[L], error) {
	if id < 0 || id >= len(g.vertices) || g.vertices[id] == nil {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return g.vertices[id], nil
}
