// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: Pure context compositions (complement, sums, product).
// Policy:
//   - Operands are read only; results share no storage with them.
//   - Columns of the second operand are placed after those of the first.

package crosstable

import "github.com/katalvlaran/galois/bitvec"

// Complement returns the table with every cell inside Columns() flipped.
func Complement(t *CrossTable) *CrossTable {
	out := New(t.cols)
	for _, row := range t.rows {
		out.rows = append(out.rows, row.Not(t.cols))
	}

	return out
}

// HorizontalSum returns the disjoint union of a and b: the rows of a over a's
// columns followed by the rows of b over b's columns, nothing in between.
// Shape: (a.Rows+b.Rows) × (a.Columns+b.Columns).
func HorizontalSum(a, b *CrossTable) *CrossTable {
	out := New(a.cols + b.cols)
	for _, row := range a.rows {
		out.rows = append(out.rows, row.Resize(out.cols))
	}
	for _, row := range b.rows {
		out.rows = append(out.rows, row.Shift(a.cols))
	}

	return out
}

// VerticalSum is HorizontalSum where every row of a additionally carries all
// of b's columns, stacking a's concepts above b's.
// Shape: (a.Rows+b.Rows) × (a.Columns+b.Columns).
func VerticalSum(a, b *CrossTable) *CrossTable {
	out := New(a.cols + b.cols)
	block := bitvec.Full(b.cols).Shift(a.cols) // all of b's columns
	for _, row := range a.rows {
		out.rows = append(out.rows, row.Or(block))
	}
	for _, row := range b.rows {
		out.rows = append(out.rows, row.Shift(a.cols))
	}

	return out
}

// DirectProduct pairs every row of a with every row of b: row i·b.Rows+j is
// a's row i beside b's row j. Shape: (a.Rows·b.Rows) × (a.Columns+b.Columns).
func DirectProduct(a, b *CrossTable) *CrossTable {
	out := New(a.cols + b.cols)
	for _, ra := range a.rows {
		left := ra.Resize(out.cols)
		for _, rb := range b.rows {
			out.rows = append(out.rows, left.Or(rb.Shift(a.cols)))
		}
	}

	return out
}
