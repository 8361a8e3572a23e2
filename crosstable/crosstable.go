// SPDX-License-Identifier: MIT
// Package crosstable materializes a formal context as an explicit object ×
// attribute incidence table and provides the classical context compositions.
//
// What & Why:
//
//	A CrossTable is the row-major view of a Context: row i is the intent of
//	object i as a bit vector over column indices. Tables are append-only;
//	every composition in algebra.go returns a new table and never touches
//	its operands.
//
// Complexity:
//
//	AddRow, Row, Rows and Columns run in O(1) (AddRow amortized).
//	Compositions run in O(rows · columns / wordsize) of their result.
package crosstable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/galois/bitvec"
	"github.com/katalvlaran/galois/concept"
)

// ErrInvalidRow indicates that a row index is outside [0, Rows()).
var ErrInvalidRow = errors.New("crosstable: invalid row index")

// Row is one object of a table: its position and its intent.
type Row struct {
	index  int
	intent bitvec.Vector
}

// Index returns the row position, which is also the object's bit index.
func (r Row) Index() int { return r.index }

// Intent returns the attribute bits of the row.
func (r Row) Intent() bitvec.Vector { return r.intent }

// AsConcept views the row as a concept whose extent is the single object
// Index(). No universes are attached, so String prints bit positions.
func (r Row) AsConcept() concept.Concept {
	return concept.FromVectors(bitvec.FromIndices(r.index), r.intent, nil, nil)
}

// CrossTable is an append-only list of rows over a column count.
type CrossTable struct {
	rows []bitvec.Vector // row intents in insertion order
	cols int             // number of columns, never below the widest row
}

// New returns an empty table with the given number of columns (negative is 0).
func New(columns int) *CrossTable {
	if columns < 0 {
		columns = 0
	}

	return &CrossTable{cols: columns}
}

// AddRow appends bits as a new row and returns its index.
// The column count grows to cover the highest set bit of bits.
// Complexity: O(1) amortized.
func (t *CrossTable) AddRow(bits bitvec.Vector) int {
	if h := bits.Highest(); h+1 > t.cols {
		t.cols = h + 1 // widen to the new highest bit
	}
	t.rows = append(t.rows, bits)

	return len(t.rows) - 1
}

// Row returns row i or ErrInvalidRow.
func (t *CrossTable) Row(i int) (Row, error) {
	if i < 0 || i >= len(t.rows) {
		return Row{}, fmt.Errorf("CrossTable.Row(%d): %w", i, ErrInvalidRow)
	}

	return Row{index: i, intent: t.rows[i]}, nil
}

// Rows returns the number of rows.
func (t *CrossTable) Rows() int { return len(t.rows) }

// Columns returns the number of columns.
func (t *CrossTable) Columns() int { return t.cols }

// Holds reports whether row i carries column j. Out-of-range positions read false.
func (t *CrossTable) Holds(i, j int) bool {
	if i < 0 || i >= len(t.rows) {
		return false
	}

	return t.rows[i].Test(j)
}

// String renders the table one row per line, 'x' for a set cell and '.' otherwise.
func (t *CrossTable) String() string {
	var sb strings.Builder
	for i, row := range t.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < t.cols; j++ {
			if row.Test(j) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
	}

	return sb.String()
}
