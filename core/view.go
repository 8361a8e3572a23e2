// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (cloning topology under a vertex filter).
// Determinism:
//   - Kept vertices keep their ids; dropped ids become empty arena slots.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.

package core

// InducedSubgraph returns a new Graph holding the vertices for which keep
// returns true and every edge whose endpoints are both kept. Labels are
// copied by value; parallel edges and self-loops are preserved.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph[L any](g *Graph[L], keep func(*Vertex[L]) bool) *Graph[L] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[L]{vertices: make([]*Vertex[L], len(g.vertices))}
	for id, v := range g.vertices {
		if v == nil || !keep(v) {
			continue
		}
		out.vertices[id] = v.ShallowCopy()
		out.live++
	}
	// Copy only edges between kept slots; in lists are rebuilt from out lists.
	for id, v := range g.vertices {
		if out.vertices[id] == nil {
			continue
		}
		for _, e := range v.out {
			h := out.vertices[e.Target]
			if h == nil {
				continue
			}
			out.vertices[id].out = append(out.vertices[id].out, e)
			h.in = append(h.in, Edge{Weight: e.Weight, Target: id})
			out.edges++
		}
	}

	return out
}

// Clone returns a deep copy of g's topology with labels copied by value.
func (g *Graph[L]) Clone() *Graph[L] {
	return InducedSubgraph(g, func(*Vertex[L]) bool { return true })
}
