package concept

import "github.com/katalvlaran/galois/bitvec"

// Builder accumulates the inputs of a Concept. It is a transient value: Build
// copies everything it needs, so a Builder may be reused or discarded freely.
type Builder struct {
	objects    []string
	objectsU   *bitvec.Universe
	attributes []string
	attrsU     *bitvec.Universe
}

// NewBuilder returns an empty Builder. Building it unchanged yields the empty concept.
func NewBuilder() *Builder { return &Builder{} }

// WithObjects selects objects out of universe u for the extent.
// Objects missing from u are dropped.
func (b *Builder) WithObjects(objects []string, u *bitvec.Universe) *Builder {
	b.objects = append([]string(nil), objects...)
	b.objectsU = u

	return b
}

// WithAttributes selects attributes out of universe u for the intent.
// Attributes missing from u are dropped.
func (b *Builder) WithAttributes(attributes []string, u *bitvec.Universe) *Builder {
	b.attributes = append([]string(nil), attributes...)
	b.attrsU = u

	return b
}

// Build encodes the accumulated selections into an immutable Concept.
func (b *Builder) Build() Concept {
	return FromVectors(
		bitvec.Encode(b.objects, b.objectsU),
		bitvec.Encode(b.attributes, b.attrsU),
		b.objectsU,
		b.attrsU,
	)
}
