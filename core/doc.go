// Package core provides a labeled, weighted directed multigraph stored as an
// arena of vertices addressed by integer id.
//
// The Graph G = (V,E) supports:
//
//   - Parallel edges: Adopt(u,v,w) twice records two edges u→v.
//   - Self-loops: Adopt(v,v,w) adds one entry to v's out list and one to its in list.
//   - Exact removal: Orphan(u,v) removes exactly one u→v edge.
//   - Vertex payloads: any label type L plus a scalar Weight.
//
// Adjacency is kept as id lists on both endpoints, never as pointers between
// vertices, so the structure has no reference cycles to manage.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label L) int                 // O(1)
//	RemoveVertex(id int) error             // O(deg²)
//	SetLabel(id int, label L) error        // O(1)
//	SetWeight(id int, w float64) error     // O(1)
//
//	// Edge lifecycle
//	Adopt(from, to int, w float64) error   // O(1)
//	Orphan(from, to int) error             // O(deg)
//
//	// Queries
//	Successors / Predecessors / HasEdge / Degree / VertexCount / EdgeCount
//
//	// Views
//	InducedSubgraph(g, keep) / Clone()
//
// Errors:
//
//	ErrVertexNotFound - id is not a live vertex.
//	ErrEdgeNotFound   - Orphan found no matching edge.
//
// Concurrency: every Graph method takes g.mu; structures built on top of a
// Graph (such as a concept lattice) are not made safe by this.
package core
