// Package dfs provides depth-first algorithms on core graphs, currently the
// topological sort used to produce linear extensions of a lattice.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every edge u→v, u appears before v in the ordering. Parallel edges are
// harmless; a self-loop is a cycle.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/galois/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[L any] struct {
	graph *core.Graph[L] // the graph being sorted
	opts  topoOptions    // traversal options (cancellation)
	state map[int]int    // visitation state: White, Gray, Black
	order []int          // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are explored in ascending id order and successors in adoption order,
// so the result is deterministic for a given construction history.
// If g is nil, returns ErrGraphNil. If a cycle is detected, returns
// ErrCycleDetected. You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort[L any](g *core.Graph[L], options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	verts := g.Vertices()
	sorter := &topoSorter[L]{
		graph: g,
		opts:  opts,
		state: make(map[int]int, len(verts)),
		order: make([]int, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v.ID()] == White {
			if err := sorter.visit(v.ID()); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter[L]) visit(id int) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w: at vertex %d", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	succ, err := t.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, next := range succ {
		if err = t.visit(next); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
