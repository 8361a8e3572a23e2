// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start id names no vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation wraps every rejected Option.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Direction picks the adjacency followed from each vertex.
type Direction int

const (
	// Outbound walks u→v edges forward (Successors). In a concept lattice
	// that climbs towards more specific concepts.
	Outbound Direction = iota
	// Inbound walks edges backward (Predecessors), towards the bottom.
	Inbound
)

// Option adjusts a walk. A rejected value is remembered and reported by BFS
// as ErrOptionViolation before any vertex is touched.
type Option func(*Options)

// Options is the resolved configuration of one walk.
type Options struct {
	Ctx       context.Context
	Direction Direction

	// OnEnqueue sees each vertex once, with its depth, when it is discovered.
	OnEnqueue func(id, depth int)
	// OnVisit sees each vertex when it leaves the queue; an error ends the walk.
	OnVisit func(id, depth int) error

	// MaxDepth bounds discovery depth; 0 means unbounded.
	MaxDepth int
	// FilterNeighbor vetoes single edges curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions: background context, Outbound, unbounded, no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Direction:      Outbound,
		OnEnqueue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(int, int) bool { return true },
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection sets the walk direction.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d != Outbound && d != Inbound {
			o.err = fmt.Errorf("%w: direction %d", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovery past depth d. Negative d is rejected.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d < 0", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result records one walk. Order is the visit sequence; Depth and Parent are
// keyed by vertex id and only hold reached vertices (the start has no Parent).
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether id was discovered.
func (r *Result) Reached(id int) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo follows Parent links back from dest and returns start…dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: vertex %d not reached", dest)
	}
	path := []int{dest}
	for cur, ok := r.Parent[dest]; ok; cur, ok = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
