// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: Adopt/Orphan/HasEdge/Successors/Predecessors/EdgeCount.
// Determinism:
//   - Successors/Predecessors follow adoption order; parallel edges repeat the id.
// Concurrency:
//   - Mutations under g.mu write lock; queries under read lock.
// AI-HINT (file):
//   - Adopt twice ⇒ two parallel edges; Orphan removes exactly one of them.
//   - A self-loop adds one entry to the vertex's out list AND one to its in list.

package core

import "fmt"

// Adopt records a new directed edge from→to with the given weight.
//
// Steps:
//  1. Resolve both endpoints (ErrVertexNotFound).
//  2. Append (weight,to) to from.out and (weight,from) to to.in.
//
// Complexity: O(1) amortized.
func (g *Graph[L]) Adopt(from, to int, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	f, err := g.lookup(from)
	if err != nil {
		return err
	}
	t, err := g.lookup(to)
	if err != nil {
		return err
	}
	f.out = append(f.out, Edge{Weight: weight, Target: to})
	t.in = append(t.in, Edge{Weight: weight, Target: from})
	g.edges++

	return nil
}

// Orphan removes exactly one edge from→to. Parallel copies stay in place.
// Returns ErrEdgeNotFound when no such edge exists.
//
// Complexity: O(deg(from) + deg(to)).
func (g *Graph[L]) Orphan(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	f, err := g.lookup(from)
	if err != nil {
		return err
	}
	t, err := g.lookup(to)
	if err != nil {
		return err
	}
	if indexOf(f.out, to) < 0 {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}
	f.out = dropOne(f.out, to)
	t.in = dropOne(t.in, from)
	g.edges--

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph[L]) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	f, err := g.lookup(from)
	if err != nil {
		return false
	}

	return indexOf(f.out, to) >= 0
}

// Successors returns the heads of id's outgoing edges in adoption order.
func (g *Graph[L]) Successors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, err := g.lookup(id)
	if err != nil {
		return nil, err
	}

	return targets(v.out), nil
}

// Predecessors returns the tails of id's incoming edges in adoption order.
func (g *Graph[L]) Predecessors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, err := g.lookup(id)
	if err != nil {
		return nil, err
	}

	return targets(v.in), nil
}

// EdgeCount returns the number of directed edges, parallel copies included.
func (g *Graph[L]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// targets projects an adjacency list to its endpoint ids.
func targets(list []Edge) []int {
	out := make([]int, len(list))
	for i, e := range list {
		out[i] = e.Target
	}

	return out
}

// indexOf returns the position of the first entry pointing at target, or -1.
func indexOf(list []Edge, target int) int {
	for i, e := range list {
		if e.Target == target {
			return i
		}
	}

	return -1
}

// dropOne removes the first entry pointing at target, preserving order.
func dropOne(list []Edge, target int) []Edge {
	i := indexOf(list, target)
	if i < 0 {
		return list
	}

	return append(list[:i], list[i+1:]...)
}
