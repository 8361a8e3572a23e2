package dfs

import (
	"context"
	"errors"
)

// Colors of a vertex during a depth-first visit.
const (
	White = iota // unseen
	Gray         // on the current path
	Black        // finished
)

var (
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected means an edge led back to a Gray vertex. A concept
	// lattice never has one; hitting it signals a corrupted cover relation.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// TopoOption tunes TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext aborts the sort with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
