// SPDX-License-Identifier: MIT
// Package bfs walks a core.Graph breadth first from one vertex.
//
// The lattice uses it in both directions: Inbound from a concept reaches every
// generalization (its down-set), Outbound every specialization. Depths are
// edge counts from the start, so in a lattice they are cover-chain lengths.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/galois/core"
)

// ErrNeighbors wraps a failed adjacency lookup during the walk.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

type item struct {
	id, depth int
}

type walker[L any] struct {
	g     *core.Graph[L]
	opts  Options
	queue []item
	res   *Result
}

// BFS walks g from start. Parallel edges and self-loops are harmless: each
// vertex is discovered once.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, the context error, or whatever OnVisit returned (wrapped).
func BFS[L any](g *core.Graph[L], start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[L]{
		g:     g,
		opts:  o,
		queue: make([]item, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.discover(start, 0)

	return w.res, w.run()
}

func (w *walker[L]) discover(id, depth int) {
	w.res.Depth[id] = depth
	w.opts.OnEnqueue(id, depth)
	w.queue = append(w.queue, item{id: id, depth: depth})
}

func (w *walker[L]) run() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		cur := w.queue[head]
		w.res.Order = append(w.res.Order, cur.id)
		if err := w.opts.OnVisit(cur.id, cur.depth); err != nil {
			return fmt.Errorf("bfs: visit %d: %w", cur.id, err)
		}
		if w.opts.MaxDepth > 0 && cur.depth >= w.opts.MaxDepth {
			continue
		}
		next, err := w.neighbors(cur.id)
		if err != nil {
			return err
		}
		for _, nb := range next {
			if w.res.Reached(nb) || !w.opts.FilterNeighbor(cur.id, nb) {
				continue
			}
			w.res.Parent[nb] = cur.id
			w.discover(nb, cur.depth+1)
		}
	}

	return nil
}

func (w *walker[L]) neighbors(id int) ([]int, error) {
	var (
		ids []int
		err error
	)
	if w.opts.Direction == Inbound {
		ids, err = w.g.Predecessors(id)
	} else {
		ids, err = w.g.Successors(id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: vertex %d: %v", ErrNeighbors, id, err)
	}

	return ids, nil
}
