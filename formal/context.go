// SPDX-License-Identifier: MIT
// Package formal models a formal context: objects, attributes and an
// incidence predicate between them.
//
// A Context is assembled with a Builder and can be materialized as a
// crosstable.CrossTable or fed object by object into a lattice.Lattice.
// The predicate is evaluated lazily, so a Context may describe relations
// that are cheaper to compute than to store.
package formal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/galois/bitvec"
	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/crosstable"
	"github.com/katalvlaran/galois/lattice"
)

// ErrNilRelation is returned by Build when no relation was configured.
var ErrNilRelation = errors.New("formal: relation is nil")

// Relation reports whether object carries attribute.
type Relation func(object, attribute string) bool

// IncidenceRelation returns a Relation backed by an object → attributes map.
// The map is copied; later changes to it are not observed.
func IncidenceRelation(incidence map[string][]string) Relation {
	set := make(map[string]map[string]struct{}, len(incidence))
	for obj, attrs := range incidence {
		row := make(map[string]struct{}, len(attrs))
		for _, a := range attrs {
			row[a] = struct{}{}
		}
		set[obj] = row
	}

	return func(object, attribute string) bool {
		_, ok := set[object][attribute]
		return ok
	}
}

// Context is an immutable (objects, attributes, relation) triple.
// Objects and attributes are deduplicated, keeping first occurrences.
type Context struct {
	objects    *bitvec.Universe
	attributes *bitvec.Universe
	relation   Relation
}

// Builder accumulates the parts of a Context.
type Builder struct {
	objects    []string
	attributes []string
	relation   Relation
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// WithObjects appends objects to the object list.
func (b *Builder) WithObjects(objects ...string) *Builder {
	b.objects = append(b.objects, objects...)

	return b
}

// WithAttributes appends attributes to the attribute list.
func (b *Builder) WithAttributes(attributes ...string) *Builder {
	b.attributes = append(b.attributes, attributes...)

	return b
}

// WithRelation sets the incidence predicate.
func (b *Builder) WithRelation(r Relation) *Builder {
	b.relation = r

	return b
}

// Build returns the Context or ErrNilRelation.
func (b *Builder) Build() (*Context, error) {
	if b.relation == nil {
		return nil, ErrNilRelation
	}

	return &Context{
		objects:    bitvec.NewUniverse(b.objects...),
		attributes: bitvec.NewUniverse(b.attributes...),
		relation:   b.relation,
	}, nil
}

// Objects returns the object labels in order.
func (c *Context) Objects() []string { return c.objects.Labels() }

// Attributes returns the attribute labels in order.
func (c *Context) Attributes() []string { return c.attributes.Labels() }

// Holds reports whether object carries attribute. Labels foreign to the
// context never hold.
func (c *Context) Holds(object, attribute string) bool {
	return c.objects.Contains(object) && c.attributes.Contains(attribute) && c.relation(object, attribute)
}

// Intent returns the attributes of object in attribute order.
func (c *Context) Intent(object string) []string {
	var out []string
	for _, a := range c.attributes.Labels() {
		if c.Holds(object, a) {
			out = append(out, a)
		}
	}

	return out
}

// AsCrossTable evaluates the relation for every pair and returns one row per
// object, with one column per attribute.
// Complexity: O(|G|·|M|) relation calls.
func (c *Context) AsCrossTable() *crosstable.CrossTable {
	t := crosstable.New(c.attributes.Len())
	for _, obj := range c.objects.Labels() {
		t.AddRow(bitvec.Encode(c.Intent(obj), c.attributes))
	}

	return t
}

// RowConcept returns object i of the table as a concept labeled with this
// context's universes.
func (c *Context) RowConcept(t *crosstable.CrossTable, i int) (concept.Concept, error) {
	row, err := t.Row(i)
	if err != nil {
		return concept.Concept{}, err
	}
	rc := row.AsConcept()

	return concept.FromVectors(rc.Extent(), rc.Intent(), c.objects, c.attributes), nil
}

// AsConceptLattice inserts every object into a new lattice over the context's
// attributes. factory supplies the backing graph (nil for the default);
// opts are passed through to lattice.New.
func (c *Context) AsConceptLattice(factory func() *core.Graph[concept.Concept], opts ...lattice.Option) (*lattice.Lattice, error) {
	opts = append([]lattice.Option{lattice.WithGraph(factory)}, opts...)
	l, err := lattice.New(c.attributes.Labels(), opts...)
	if err != nil {
		return nil, fmt.Errorf("formal: %w", err)
	}
	for _, obj := range c.objects.Labels() {
		if _, err = l.Insert(obj, c.Intent(obj)); err != nil {
			return nil, fmt.Errorf("formal: %w", err)
		}
	}

	return l, nil
}
