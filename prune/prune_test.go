package prune_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/lattice"
	"github.com/katalvlaran/galois/prune"
)

func TestPruneVertex(t *testing.T) {
	g := core.NewGraph[string]()
	a, b, c := g.AddVertex("a"), g.AddVertex("b"), g.AddVertex("c")
	require.NoError(t, g.SetWeight(c, 2.5))

	va, _ := g.Vertex(a)
	vb, _ := g.Vertex(b)
	vc, _ := g.Vertex(c)

	none := prune.NewBuilder[string](nil).Build()
	require.Nil(t, none.Parent())
	for _, v := range []*core.Vertex[string]{va, vb, vc} {
		require.False(t, none.PruneVertex(v))
		require.Equal(t, v.ID(), none.Parent().ID())
	}
	require.False(t, none.PruneVertex(nil))
	require.Equal(t, c, none.Parent().ID())

	p := prune.NewBuilder(prune.Comparable[string]()).
		WithLabels("b").
		WithWeights(2.5).
		Build()
	require.False(t, p.PruneVertex(va))
	require.True(t, p.PruneVertex(vb))
	require.True(t, p.PruneVertex(vc))
	require.Equal(t, c, p.Parent().ID())

	// Labels without an equality never match.
	blind := prune.NewBuilder[string](nil).WithLabels("a").Build()
	require.False(t, blind.PruneVertex(va))
}

func TestApply(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 4; i++ {
		g.AddVertex(i)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}, {1, 1}} {
		require.NoError(t, g.Adopt(e[0], e[1], 0))
	}

	p := prune.NewBuilder(prune.Comparable[int]()).WithLabels(2).Build()
	out := prune.Apply(g, p)
	require.Equal(t, 3, out.VertexCount())
	require.Equal(t, 3, out.EdgeCount()) // 0→1, 0→3, 1→1
	require.False(t, out.HasVertex(2))
	require.True(t, out.HasEdge(1, 1))

	// Source untouched.
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 5, g.EdgeCount())
}

func TestApply_LatticeEmptyTop(t *testing.T) {
	l, err := lattice.New([]string{"a", "b", "c"})
	require.NoError(t, err)
	for id, attrs := range map[string][]string{"x": {"a"}, "y": {"b"}, "z": {"a", "c"}} {
		_, err = l.Insert(id, attrs)
		require.NoError(t, err)
	}
	// ∅, a, b, ac, abc
	require.Equal(t, 5, l.Size())
	require.Equal(t, 5, l.Order())

	p := prune.NewBuilder(func(a, b concept.Concept) bool { return a.Equal(b) }).
		WithWeights(0).
		Build()
	out := prune.Apply(l.Graph(), p)
	require.Equal(t, 4, out.VertexCount())
	require.Equal(t, 3, out.EdgeCount())
	for _, v := range out.Vertices() {
		require.False(t, v.Label().Extent().IsEmpty())
	}

	byLabel := prune.NewBuilder(func(a, b concept.Concept) bool { return a.Equal(b) }).
		WithLabels(l.Bottom()).
		Build()
	out = prune.Apply(l.Graph(), byLabel)
	require.Equal(t, 4, out.VertexCount())
	require.Equal(t, 5, l.Size(), "lattice graph untouched")
}
