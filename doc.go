// Package galois is an in-memory engine for formal concept analysis: objects
// described by attribute sets are folded, one at a time, into the lattice of
// their formal concepts, which then answers closure and probability queries.
//
// What is a concept?
//
//	A pair (extent, intent) where the intent is exactly the attributes every
//	object of the extent shares, and the extent is exactly the objects that
//	carry the whole intent. Concepts ordered by intent inclusion form a
//	complete lattice.
//
// Packages:
//
//	bitvec/     — attribute and object universes, bit-vector sets over them
//	concept/    — the Concept value: extent, intent, order and set algebra
//	core/       — the directed, weighted graph that stores the cover relation
//	poset/      — maximal/minimal elements and set operations over concept sets
//	bfs/, dfs/  — traversals over core graphs (up/down sets, linear extensions)
//	lattice/    — incremental construction (AddIntent) and queries
//	formal/     — formal contexts: objects, attributes and an incidence relation
//	crosstable/ — cross tables and their sums, products and complements
//	interval/   — half-open intervals related by before/after/overlaps
//	prune/      — filtered copies of a lattice graph
//	load/       — YAML and TSV context files
//	metrics/    — Prometheus collectors for lattice state and insert activity
//	cmd/fca     — command-line front end
//
// Quick example:
//
//	l, _ := lattice.New([]string{"a", "b", "c"})
//	l.Insert("x", []string{"a", "b"})
//	l.Insert("y", []string{"b", "c"})
//	fmt.Println(l.Closure([]string{"b"})) // ({x,y}, {b})
//
//	go get github.com/katalvlaran/galois
package galois
