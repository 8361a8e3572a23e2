// SPDX-License-Identifier: MIT
// Package core defines the labeled, weighted directed multigraph used as the
// Hasse diagram of concept lattices and by every other graph-shaped layer.
//
// This file declares Vertex, Edge, Graph, the sentinel errors, and NewGraph.
//
// Errors:
//
//	ErrVertexNotFound - requested vertex id is not live in the arena.
//	ErrEdgeNotFound   - Orphan found no matching from→to edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced an id that is not a live vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates Orphan found no edge between the given endpoints.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is one directed adjacency entry: a weight and the id of the other endpoint.
// In a vertex's outgoing list Target is the head; in its incoming list Target is the tail.
type Edge struct {
	// Weight is an arbitrary edge annotation; the lattice stores the number of
	// attributes gained along the covering edge.
	Weight float64

	// Target is the arena id of the opposite endpoint.
	Target int
}

// Vertex is a node of the arena.
//
// ID is unique within its Graph and never reused. Label is the payload
// (a concept for lattices). Weight is a scalar annotation used by pruning.
type Vertex[L any] struct {
	id     int
	label  L
	weight float64

	out []Edge // outgoing, in adoption order; duplicates are parallel edges
	in  []Edge // incoming mirror of every other vertex's out list
}

// Graph is an arena of vertices addressed by integer id.
//
// It always permits parallel edges and self-loops. Adjacency is stored as id
// lists, never as live pointers between vertices, so removing a vertex only
// touches its neighbours' lists.
// mu guards every field; returned *Vertex values are read-only views.
type Graph[L any] struct {
	mu sync.RWMutex

	vertices []*Vertex[L] // arena; nil marks a removed slot
	live     int          // number of non-nil slots
	edges    int          // number of directed edges (parallel copies counted)
}

// GraphOption configures a Graph before first use.
type GraphOption[L any] func(g *Graph[L])

// WithCapacity preallocates room for n vertices.
func WithCapacity[L any](n int) GraphOption[L] {
	return func(g *Graph[L]) {
		if n > 0 {
			g.vertices = make([]*Vertex[L], 0, n)
		}
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1) unless WithCapacity is given.
func NewGraph[L any](opts ...GraphOption[L]) *Graph[L] {
	g := &Graph[L]{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
