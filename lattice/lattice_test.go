package lattice_test

import (
	"bytes"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/bitvec"
	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/lattice"
)

var universe = []string{"a", "b", "c", "d", "e", "f", "g"}

// fixture is the Davey–Priestley style context used throughout.
var fixture = []struct {
	id    string
	attrs []string
}{
	{"S", []string{"a", "b", "d", "f"}},
	{"T", []string{"a", "b", "d", "e"}},
	{"U", []string{"a", "b", "d", "e", "f", "g"}},
	{"V", []string{"a", "c", "e", "f"}},
	{"W", []string{"b", "d"}},
	{"X", []string{"a", "f"}},
}

// build inserts the fixture in the order given by perm (identity when nil).
func build(t *testing.T, perm []int, opts ...lattice.Option) *lattice.Lattice {
	t.Helper()
	l, err := lattice.New(universe, opts...)
	require.NoError(t, err)
	if perm == nil {
		perm = []int{0, 1, 2, 3, 4, 5}
	}
	for _, i := range perm {
		_, err = l.Insert(fixture[i].id, fixture[i].attrs)
		require.NoError(t, err)
	}

	return l
}

func objects(t *testing.T, c concept.Concept) []string {
	t.Helper()
	objs, err := c.Objects()
	require.NoError(t, err)
	sort.Strings(objs)

	return objs
}

func attributes(t *testing.T, c concept.Concept) []string {
	t.Helper()
	attrs, err := c.Attributes()
	require.NoError(t, err)

	return attrs
}

// signature renders every concept and every cover by labels, sorted, so two
// lattices built in different orders can be compared.
func signature(t *testing.T, l *lattice.Lattice) (concepts, covers []string) {
	t.Helper()
	g := l.Graph()
	name := func(c concept.Concept) string { return strings.Join(attributes(t, c), "") }
	for _, v := range g.Vertices() {
		c := v.Label()
		concepts = append(concepts, name(c)+"|"+strings.Join(objects(t, c), ""))
		succ, err := g.Successors(v.ID())
		require.NoError(t, err)
		for _, s := range succ {
			sc, err := g.Label(s)
			require.NoError(t, err)
			covers = append(covers, name(c)+"->"+name(sc))
		}
	}
	sort.Strings(concepts)
	sort.Strings(covers)

	return concepts, covers
}

func TestNew_Seeds(t *testing.T) {
	l, err := lattice.New(universe)
	require.NoError(t, err)
	require.Equal(t, 2, l.Size())
	require.Equal(t, 1, l.Order())
	require.Equal(t, universe, attributes(t, l.Top()))
	require.Empty(t, attributes(t, l.Bottom()))
	require.Zero(t, l.Marginal(nil))

	empty, err := lattice.New(nil)
	require.NoError(t, err)
	require.Equal(t, 1, empty.Size())
	require.Zero(t, empty.Order())
	require.True(t, empty.Top().Equal(empty.Bottom()))

	_, err = lattice.New(universe, lattice.WithGraph(func() *core.Graph[concept.Concept] {
		g := core.NewGraph[concept.Concept]()
		g.AddVertex(concept.NewBuilder().Build())
		return g
	}))
	require.ErrorIs(t, err, lattice.ErrGraphNotEmpty)
}

func TestInsert_FixtureShape(t *testing.T) {
	l := build(t, nil)

	require.Equal(t, 12, l.Size())
	require.Equal(t, 18, l.Order())

	top, bottom := l.Top(), l.Bottom()
	require.Equal(t, universe, attributes(t, top))
	require.True(t, top.Extent().IsEmpty())
	require.Empty(t, attributes(t, bottom))
	require.Equal(t, []string{"S", "T", "U", "V", "W", "X"}, objects(t, bottom))
	require.Equal(t, []string{"S", "T", "U", "V", "W", "X"}, l.Objects())

	_, covers := signature(t, l)
	require.Contains(t, covers, "->a")
	require.Contains(t, covers, "->bd")
	require.Contains(t, covers, "acef->abcdefg")
	require.Contains(t, covers, "abdefg->abcdefg")
	require.NotContains(t, covers, "->abcdefg")
}

func TestInsert_OrderIndependent(t *testing.T) {
	wantConcepts, wantCovers := signature(t, build(t, nil))
	for _, perm := range [][]int{
		{5, 4, 3, 2, 1, 0},
		{2, 0, 4, 1, 5, 3},
		{3, 5, 1, 4, 0, 2},
	} {
		gotConcepts, gotCovers := signature(t, build(t, perm))
		require.Equal(t, wantConcepts, gotConcepts, "perm %v", perm)
		require.Equal(t, wantCovers, gotCovers, "perm %v", perm)
	}
}

func TestInsert_MergeAndErrors(t *testing.T) {
	var events []lattice.InsertEvent
	l := build(t, nil, lattice.WithInsertHook(func(ev lattice.InsertEvent) { events = append(events, ev) }))
	require.Len(t, events, 6)
	require.Equal(t, 1, events[0].Created) // {a,b,d,f} splits the seeded cover
	require.Equal(t, 3, events[0].Size)

	// Same intent as X: no new vertex. The extent is every object carrying a and f.
	c, err := l.Insert("Y", []string{"f", "a"})
	require.NoError(t, err)
	require.Equal(t, []string{"S", "U", "V", "X", "Y"}, objects(t, c))
	require.Equal(t, []string{"a", "f"}, attributes(t, c))
	require.Equal(t, 12, l.Size())
	require.True(t, events[len(events)-1].Merged)
	require.Zero(t, events[len(events)-1].Created)

	// Foreign labels are dropped; the object falls to the bottom.
	c, err = l.Insert("Z", []string{"zzz"})
	require.NoError(t, err)
	require.Empty(t, attributes(t, c))
	require.Len(t, objects(t, l.Bottom()), 8)

	_, err = l.Insert("S", []string{"a"})
	require.ErrorIs(t, err, lattice.ErrDuplicateObject)
	_, err = l.Insert("", []string{"a"})
	require.ErrorIs(t, err, lattice.ErrEmptyObjectID)
}

func TestInsert_WeightsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := build(t, nil, lattice.WithLogger(logger))
	require.Contains(t, buf.String(), "lattice: insert")
	require.Contains(t, buf.String(), "object=X")

	g := l.Graph()
	for _, v := range g.Vertices() {
		require.Equal(t, float64(v.Label().Extent().Count()), v.Weight())
		for _, e := range v.Edges() {
			head, err := g.Label(e.Target)
			require.NoError(t, err)
			gained := head.Intent().Count() - v.Label().Intent().Count()
			require.Equal(t, float64(gained), e.Weight)
		}
	}
}

func TestLeastUpperBound(t *testing.T) {
	l := build(t, nil)

	v := l.LeastUpperBound([]string{"a", "c", "e", "f"})
	require.Equal(t, []string{"V"}, objects(t, v))
	require.Equal(t, []string{"a", "c", "e", "f"}, attributes(t, v))

	ae := l.LeastUpperBound([]string{"a", "e"})
	require.Equal(t, []string{"T", "U", "V"}, objects(t, ae))
	require.Equal(t, []string{"a", "e"}, attributes(t, ae))

	all := l.LeastUpperBound([]string{})
	require.Equal(t, []string{"S", "T", "U", "V", "W", "X"}, objects(t, all))
	require.Empty(t, attributes(t, all))

	// Closure may grow the intent.
	b := l.LeastUpperBound([]string{"b"})
	require.Equal(t, []string{"b", "d"}, attributes(t, b))

	// Two lists: S and T meet at {a,b,d}.
	st := l.LeastUpperBound([]string{"a", "b", "d", "f"}, []string{"a", "b", "d", "e"})
	require.Equal(t, []string{"a", "b", "d"}, attributes(t, st))
	require.Equal(t, []string{"S", "T", "U"}, objects(t, st))

	none := l.LeastUpperBound()
	require.True(t, none.Equal(all))
}

func TestMarginalAndConditional(t *testing.T) {
	l := build(t, nil)

	require.Zero(t, l.Marginal(universe))
	require.Equal(t, 1.0, l.Marginal(nil))
	require.Equal(t, 0.5, l.Marginal([]string{"a", "b", "d"}))

	acef, bd, a := []string{"a", "c", "e", "f"}, []string{"b", "d"}, []string{"a"}
	require.Zero(t, l.Conditional(acef, bd))
	require.Zero(t, l.Conditional(bd, acef))
	require.InDelta(t, 0.2, l.Conditional(acef, a), 1e-9)
	require.Equal(t, 1.0, l.Conditional(a, acef))
	require.Zero(t, l.Conditional(a, universe)) // empty denominator
}

func TestLookupAndNeighbourhoods(t *testing.T) {
	l := build(t, nil)

	s, ok := l.Lookup([]string{"a", "b", "d", "f"})
	require.True(t, ok)
	tc, ok := l.Lookup([]string{"a", "b", "d", "e"})
	require.True(t, ok)
	_, ok = l.Lookup([]string{"a", "b"})
	require.False(t, ok)

	meet, err := l.GreatestLowerBound(s, tc)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "d"}, attributes(t, meet))
	require.Equal(t, []string{"S", "T", "U"}, objects(t, meet))

	w, _ := l.Lookup([]string{"b", "d"})
	x, _ := l.Lookup([]string{"a", "f"})
	meet, err = l.GreatestLowerBound(w, x)
	require.NoError(t, err)
	require.True(t, meet.Equal(l.Bottom()))

	v, _ := l.Lookup([]string{"a", "c", "e", "f"})
	gen, err := l.Generalizations(v)
	require.NoError(t, err)
	require.Len(t, gen, 5) // aef, ae, af, a, ∅
	require.Equal(t, []string{"a", "e", "f"}, attributes(t, gen[0]))
	specific, err := l.Specializations(v)
	require.NoError(t, err)
	require.Len(t, specific, 1)
	require.True(t, specific[0].Equal(l.Top()))

	stray := concept.NewBuilder().WithAttributes([]string{"b"}, bitvec.NewUniverse(universe...)).Build()
	_, err = l.Generalizations(stray)
	require.ErrorIs(t, err, lattice.ErrConceptNotFound)
	_, err = l.GreatestLowerBound(stray, v)
	require.ErrorIs(t, err, lattice.ErrConceptNotFound)
}

func TestConcepts_LinearExtension(t *testing.T) {
	l := build(t, nil)
	all, err := l.Concepts()
	require.NoError(t, err)
	require.Len(t, all, 12)
	require.True(t, all[0].Equal(l.Bottom()))
	require.True(t, all[len(all)-1].Equal(l.Top()))
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			require.False(t, all[j].IsLessThan(all[i]), "%v listed after %v", all[j], all[i])
		}
	}
}

func TestExtendAttributes(t *testing.T) {
	l := build(t, nil)

	n, err := l.ExtendAttributes("h", "a")
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 12, l.Size())
	require.Equal(t, 18, l.Order())
	require.Len(t, attributes(t, l.Top()), 8)
	_, ok := l.Lookup(universe)
	require.False(t, ok)

	for _, v := range l.Graph().Vertices() {
		for _, e := range v.Edges() {
			head, _ := l.Graph().Label(e.Target)
			require.Equal(t, float64(head.Intent().Count()-v.Label().Intent().Count()), e.Weight)
		}
	}

	// An object with every attribute populates the top; the next extension
	// needs a fresh empty top above it.
	c, err := l.Insert("Y", append(append([]string{}, universe...), "h"))
	require.NoError(t, err)
	require.True(t, c.Equal(l.Top()))
	require.Equal(t, 12, l.Size())

	n, err = l.ExtendAttributes("i")
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 13, l.Size())
	require.Equal(t, 19, l.Order())
	require.True(t, l.Top().Extent().IsEmpty())
	require.Zero(t, l.Marginal(l.Attributes()))
	require.Equal(t, []string{"Y"}, objects(t, l.Closure(append(append([]string{}, universe...), "h"))))

	n, err = l.ExtendAttributes("i")
	require.NoError(t, err)
	require.Zero(t, n)
}

// TestInsert_ReturnedConceptIsSnapshot checks that a concept handed out by
// Insert keeps its measure while later objects arrive, and that fresh reads
// measure against the grown object set.
func TestInsert_ReturnedConceptIsSnapshot(t *testing.T) {
	l, err := lattice.New([]string{"a", "b"})
	require.NoError(t, err)
	c, err := l.Insert("S", []string{"a"})
	require.NoError(t, err)
	require.Equal(t, 1.0, c.Measure())

	for _, id := range []string{"T", "U"} {
		_, err = l.Insert(id, []string{"b"})
		require.NoError(t, err)
	}
	require.Equal(t, 1.0, c.Measure())
	require.Equal(t, []string{"S"}, objects(t, c))
	require.InDelta(t, 1.0/3.0, l.Closure([]string{"a"}).Measure(), 1e-12)
	require.InDelta(t, 1.0, l.Bottom().Measure(), 1e-12)
}
