// SPDX-License-Identifier: MIT
// Package concept defines the immutable (extent, intent) pair of Formal
// Concept Analysis and its order relations.
//
// Order:
//
//	A ≤ B  ⇔  A.intent ⊆ B.intent
//
// More attributes means a more specific concept; the concept carrying the full
// attribute universe is the top of a lattice and the one with the empty intent
// is its bottom. All comparisons are derived from the intents alone.
package concept

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/galois/bitvec"
)

// Concept is an immutable pair of bit vectors: extent over the object
// universe and intent over the attribute universe. The universes are kept
// as read-only references for decoding. Universes only grow by appending, so
// labels of set bits never change; the object count used by Measure is
// frozen when the concept is made.
type Concept struct {
	extent     bitvec.Vector
	intent     bitvec.Vector
	objects    *bitvec.Universe
	attributes *bitvec.Universe
	population int // objects.Len() at construction
}

// FromVectors assembles a Concept from already encoded vectors.
// Either universe may be nil; decoding against a nil universe fails on any set bit.
func FromVectors(extent, intent bitvec.Vector, objects, attributes *bitvec.Universe) Concept {
	return Concept{
		extent:     extent,
		intent:     intent,
		objects:    objects,
		attributes: attributes,
		population: objects.Len(),
	}
}

// Extent returns the object bit vector.
func (c Concept) Extent() bitvec.Vector { return c.extent }

// Intent returns the attribute bit vector.
func (c Concept) Intent() bitvec.Vector { return c.intent }

// ObjectUniverse returns the universe the extent is encoded against.
func (c Concept) ObjectUniverse() *bitvec.Universe { return c.objects }

// AttributeUniverse returns the universe the intent is encoded against.
func (c Concept) AttributeUniverse() *bitvec.Universe { return c.attributes }

// Objects decodes the extent into object labels.
func (c Concept) Objects() ([]string, error) { return bitvec.Decode(c.extent, c.objects) }

// Attributes decodes the intent into attribute labels.
func (c Concept) Attributes() ([]string, error) { return bitvec.Decode(c.intent, c.attributes) }

// Measure returns |extent| / |object universe|, the marginal probability that
// a uniformly drawn object falls in the concept. The universe size is the one
// seen when c was built; objects appended later do not dilute it. An empty
// universe yields 0.
func (c Concept) Measure() float64 {
	n := c.population
	if n == 0 {
		return 0
	}

	return float64(c.extent.Count()) / float64(n)
}

// IsEmpty reports whether both extent and intent are empty.
func (c Concept) IsEmpty() bool { return c.extent.IsEmpty() && c.intent.IsEmpty() }

// Equal reports whether both extents and both intents carry the same bits.
func (c Concept) Equal(o Concept) bool {
	return c.extent.Equal(o.extent) && c.intent.Equal(o.intent)
}

// IsLessOrEqualTo reports c ≤ o (c.intent ⊆ o.intent).
func (c Concept) IsLessOrEqualTo(o Concept) bool { return c.intent.SubsetOf(o.intent) }

// IsGreaterOrEqualTo reports c ≥ o (c.intent ⊇ o.intent).
func (c Concept) IsGreaterOrEqualTo(o Concept) bool { return o.intent.SubsetOf(c.intent) }

// IsLessThan reports c < o (c.intent ⊂ o.intent).
func (c Concept) IsLessThan(o Concept) bool { return c.intent.ProperSubsetOf(o.intent) }

// IsGreaterThan reports c > o (c.intent ⊃ o.intent).
func (c Concept) IsGreaterThan(o Concept) bool { return o.intent.ProperSubsetOf(c.intent) }

// IsNonComparableTo reports that neither c ≤ o nor o ≤ c holds.
func (c Concept) IsNonComparableTo(o Concept) bool {
	return !c.IsLessOrEqualTo(o) && !c.IsGreaterOrEqualTo(o)
}

// Intersect returns the meet of c and o.
//
// The intent is the intersection of both intents. The extent keeps only the
// objects of an operand whose intent already equals that intersection, i.e.
// the objects whose closure matches the result; any other object carries
// strictly more attributes and belongs to a more specific concept.
func (c Concept) Intersect(o Concept) Concept {
	intent := c.intent.And(o.intent)
	extent := bitvec.New(max(c.extent.Len(), o.extent.Len()))
	if c.intent.Equal(intent) {
		extent = extent.Or(c.extent)
	}
	if o.intent.Equal(intent) {
		extent = extent.Or(o.extent)
	}

	return c.derive(extent, intent, o)
}

// Union returns the join of c and o: the union of both intents and the
// objects common to both extents. When one operand subsumes the other the
// result takes the more specific operand's intent.
func (c Concept) Union(o Concept) Concept {
	return c.derive(c.extent.And(o.extent), c.intent.Or(o.intent), o)
}

// derive builds a result concept, borrowing whichever universes are set.
func (c Concept) derive(extent, intent bitvec.Vector, o Concept) Concept {
	r := Concept{extent: extent, intent: intent, objects: c.objects, attributes: c.attributes, population: c.population}
	if r.objects == nil {
		r.objects, r.population = o.objects, o.population
	}
	if r.attributes == nil {
		r.attributes = o.attributes
	}

	return r
}

// String renders the concept as "({objects}, {attributes})". Bits without a
// label are printed by index.
func (c Concept) String() string {
	return fmt.Sprintf("({%s}, {%s})", render(c.extent, c.objects), render(c.intent, c.attributes))
}

// render lists the labels of v's set bits, falling back to "#i".
func render(v bitvec.Vector, u *bitvec.Universe) string {
	parts := make([]string, 0, v.Count())
	for _, i := range v.Indices() {
		if l, err := u.Label(i); err == nil {
			parts = append(parts, l)
		} else {
			parts = append(parts, fmt.Sprintf("#%d", i))
		}
	}

	return strings.Join(parts, ",")
}
