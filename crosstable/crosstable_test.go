package crosstable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/bitvec"
	"github.com/katalvlaran/galois/crosstable"
)

// table builds a CrossTable from 'x'/'.' strings, one per row.
func table(t *testing.T, cols int, rows ...string) *crosstable.CrossTable {
	t.Helper()
	ct := crosstable.New(cols)
	for _, r := range rows {
		var idx []int
		for j, ch := range r {
			if ch == 'x' {
				idx = append(idx, j)
			}
		}
		ct.AddRow(bitvec.FromIndices(idx...))
	}
	require.Equal(t, len(rows), ct.Rows())

	return ct
}

func TestAddRow_GrowsColumns(t *testing.T) {
	ct := crosstable.New(0)
	require.Zero(t, ct.Rows())
	require.Zero(t, ct.Columns())

	require.Equal(t, 0, ct.AddRow(bitvec.FromIndices(2)))
	require.Equal(t, 1, ct.Rows())
	require.Equal(t, 3, ct.Columns())

	require.Equal(t, 1, ct.AddRow(bitvec.FromIndices(0)))
	require.Equal(t, 3, ct.Columns()) // narrower row keeps the width

	ct.AddRow(bitvec.FromIndices(6))
	require.Equal(t, 3, ct.Rows())
	require.Equal(t, 7, ct.Columns())

	ct.AddRow(bitvec.New(0))
	require.Equal(t, 4, ct.Rows())
	require.Equal(t, 7, ct.Columns())
}

func TestRow(t *testing.T) {
	ct := table(t, 3, "x.x", ".x.")

	r, err := ct.Row(1)
	require.NoError(t, err)
	require.Equal(t, 1, r.Index())
	require.Equal(t, []int{1}, r.Intent().Indices())

	c := r.AsConcept()
	require.Equal(t, []int{1}, c.Extent().Indices())
	require.Equal(t, []int{1}, c.Intent().Indices())
	require.Equal(t, "({#1}, {#1})", c.String())

	for _, i := range []int{-1, 2, 100} {
		_, err = ct.Row(i)
		require.ErrorIs(t, err, crosstable.ErrInvalidRow, "row %d", i)
	}
	require.True(t, ct.Holds(0, 2))
	require.False(t, ct.Holds(1, 2))
	require.False(t, ct.Holds(5, 0))
}

func TestAlgebra(t *testing.T) {
	a := table(t, 2, "x.", ".x")
	b := table(t, 3, "x.x")

	tests := []struct {
		name       string
		got        *crosstable.CrossTable
		rows, cols int
		want       string
	}{
		{"Complement", crosstable.Complement(a), 2, 2, ".x\nx."},
		{"HorizontalSum", crosstable.HorizontalSum(a, b), 3, 5, "x....\n.x...\n..x.x"},
		{"VerticalSum", crosstable.VerticalSum(a, b), 3, 5, "x.xxx\n.xxxx\n..x.x"},
		{"DirectProduct", crosstable.DirectProduct(a, b), 2, 5, "x.x.x\n.xx.x"},
		{"DirectProductSwapped", crosstable.DirectProduct(b, a), 2, 5, "x.xx.\nx.x.x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.rows, tc.got.Rows())
			require.Equal(t, tc.cols, tc.got.Columns())
			require.Equal(t, tc.want, tc.got.String())
		})
	}
}

func TestAlgebra_OperandsUntouched(t *testing.T) {
	a := table(t, 3, "x.x", "...")
	b := table(t, 2, "xx")
	before, err := a.Row(0)
	require.NoError(t, err)

	_ = crosstable.HorizontalSum(a, b)
	_ = crosstable.VerticalSum(a, b)
	_ = crosstable.DirectProduct(a, b)
	_ = crosstable.Complement(a)

	after, err := a.Row(0)
	require.NoError(t, err)
	require.True(t, before.Intent().Equal(after.Intent()))
	require.Equal(t, "x.x\n...", a.String())
	require.Equal(t, "xx", b.String())

	// Complement twice is the identity within the column range.
	require.Equal(t, a.String(), crosstable.Complement(crosstable.Complement(a)).String())
}
