// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Lattice state, construction options, insert events and sentinel errors.
// Determinism:
//   - Vertex ids grow with creation order; queries never depend on map order.
// Concurrency:
//   - A Lattice is NOT safe for concurrent use; callers serialize Insert and
//     every query themselves. The underlying core.Graph is locked per call only.

package lattice

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/galois/bitvec"
	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/core"
)

var (
	// ErrEmptyObjectID is returned by Insert for an empty object id.
	ErrEmptyObjectID = errors.New("lattice: empty object id")

	// ErrDuplicateObject is returned by Insert when the object id was already inserted.
	ErrDuplicateObject = errors.New("lattice: duplicate object")

	// ErrGraphNotEmpty is returned by New when WithGraph supplies a graph that already has vertices.
	ErrGraphNotEmpty = errors.New("lattice: backing graph is not empty")

	// ErrConceptNotFound is returned when a concept's intent names no vertex of the lattice.
	ErrConceptNotFound = errors.New("lattice: concept not found")
)

// InsertEvent describes one completed Insert. It is passed to the hook set by
// WithInsertHook.
type InsertEvent struct {
	Object   string          // inserted object id
	Concept  concept.Concept // object concept after the insert
	Created  int             // vertices materialized by this insert
	Merged   bool            // the object's intent already named a vertex
	Size     int             // vertex count after the insert
	Order    int             // edge count after the insert
	Duration time.Duration
}

// Option configures a Lattice at construction.
type Option func(*options)

type options struct {
	factory func() *core.Graph[concept.Concept]
	logger  *slog.Logger
	hook    func(InsertEvent)
}

// WithGraph sets the factory producing the backing graph. The graph returned
// must be empty. A nil factory keeps the default core.NewGraph.
func WithGraph(factory func() *core.Graph[concept.Concept]) Option {
	return func(o *options) {
		if factory != nil {
			o.factory = factory
		}
	}
}

// WithLogger routes insert diagnostics to l (Debug level). Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithInsertHook registers fn to be called after every successful Insert.
func WithInsertHook(fn func(InsertEvent)) Option {
	return func(o *options) { o.hook = fn }
}

// Lattice is an incrementally maintained concept lattice.
//
// Each vertex of the backing graph is labeled with a closed Concept and
// weighted with its extent cardinality. An edge u→v means v covers u
// (u.intent ⊂ v.intent with nothing in between) and is weighted by the number
// of attributes gained. Hence Predecessors are the more general neighbours and
// Successors the more specific ones.
type Lattice struct {
	graph      *core.Graph[concept.Concept]
	objects    *bitvec.Universe
	attributes *bitvec.Universe

	rows     []bitvec.Vector // intent of object i, indexed like objects
	byIntent map[string]int  // intent Key → vertex id
	top      int
	bottom   int

	logger *slog.Logger
	hook   func(InsertEvent)
}
