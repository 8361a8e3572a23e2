package formal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/formal"
)

var incidence = map[string][]string{
	"S": {"a", "b", "d", "f"},
	"T": {"a", "b", "d", "e"},
	"U": {"a", "b", "d", "e", "f", "g"},
	"V": {"a", "c", "e", "f"},
	"W": {"b", "d"},
	"X": {"a", "f"},
}

func fixture(t *testing.T) *formal.Context {
	t.Helper()
	ctx, err := formal.NewBuilder().
		WithObjects("S", "T", "U", "V", "W", "X").
		WithAttributes("a", "b", "c", "d", "e", "f", "g").
		WithRelation(formal.IncidenceRelation(incidence)).
		Build()
	require.NoError(t, err)

	return ctx
}

func TestBuilder(t *testing.T) {
	_, err := formal.NewBuilder().WithObjects("x").Build()
	require.ErrorIs(t, err, formal.ErrNilRelation)

	ctx, err := formal.NewBuilder().
		WithObjects("x", "y", "x").
		WithAttributes("p").
		WithAttributes("q", "p").
		WithRelation(func(o, a string) bool { return o == "x" || a == "q" }).
		Build()
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, ctx.Objects())
	require.Equal(t, []string{"p", "q"}, ctx.Attributes())
	require.True(t, ctx.Holds("x", "p"))
	require.False(t, ctx.Holds("y", "p"))
	require.True(t, ctx.Holds("y", "q"))
	require.False(t, ctx.Holds("z", "q"), "foreign object")
	require.False(t, ctx.Holds("x", "r"), "foreign attribute")
}

func TestIncidenceRelation_Copies(t *testing.T) {
	m := map[string][]string{"o": {"a"}}
	rel := formal.IncidenceRelation(m)
	m["o"] = append(m["o"], "b")
	require.True(t, rel("o", "a"))
	require.False(t, rel("o", "b"))
	require.False(t, rel("p", "a"))
}

func TestAsCrossTable(t *testing.T) {
	ctx := fixture(t)
	tbl := ctx.AsCrossTable()
	require.Equal(t, 6, tbl.Rows())
	require.Equal(t, 7, tbl.Columns())
	require.Equal(t, "xx.x.x.\nxx.xx..\nxx.xxxx\nx.x.xx.\n.x.x...\nx....x.", tbl.String())

	c, err := ctx.RowConcept(tbl, 4)
	require.NoError(t, err)
	require.Equal(t, "({W}, {b,d})", c.String())
	_, err = ctx.RowConcept(tbl, 6)
	require.Error(t, err)
}

func TestAsConceptLattice(t *testing.T) {
	ctx := fixture(t)

	calls := 0
	l, err := ctx.AsConceptLattice(func() *core.Graph[concept.Concept] {
		calls++
		return core.NewGraph[concept.Concept](core.WithCapacity[concept.Concept](16))
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, 12, l.Size())
	require.Equal(t, 18, l.Order())
	require.Equal(t, 0.5, l.Marginal([]string{"a", "b", "d"}))

	// Same lattice through the default factory.
	l2, err := ctx.AsConceptLattice(nil)
	require.NoError(t, err)
	require.Equal(t, l.Size(), l2.Size())
	require.Equal(t, l.Order(), l2.Order())
}
