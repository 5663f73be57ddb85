// Package sparse implements the blocked sparse row-echelon reduction of
// spec.md §4.8: a MatrixBuilder for assembling a sparse matrix one entry at
// a time, and GBRowEchelon, which reduces it to row echelon form over any
// field, eliminating each pivot column from the remaining rows in parallel
// via the parallel package.
package sparse

import (
	"sort"
	"time"

	"github.com/aklitzke/algebra-kernel/internal/klog"
	"github.com/aklitzke/algebra-kernel/parallel"
	"github.com/aklitzke/algebra-kernel/ring"
)

// DefaultBlockWidth is the row-batch size GBRowEchelon parallelizes
// elimination over, matching the original's hardcoded n = 256.
const DefaultBlockWidth = 256

// Entry is one sparse matrix entry: a value at a global column index. Rows
// are kept sorted by Col throughout this package, the Go equivalent of the
// original's sentinel-terminated sorted Vec<(usize, El<R>)>.
type Entry struct {
	Col int
	Val ring.Element
}

type sparseRow = []Entry

// MatrixBuilder accumulates a sparse matrix's rows before the final column
// count is known, mirroring SparseMatrixBuilder.
type MatrixBuilder struct {
	r        ring.Ring
	rows     []sparseRow
	colCount int
}

// NewMatrixBuilder starts an empty builder over ring r.
func NewMatrixBuilder(r ring.Ring) *MatrixBuilder {
	return &MatrixBuilder{r: r}
}

// AddCol reserves a new column and returns its index.
func (b *MatrixBuilder) AddCol() int {
	b.colCount++
	return b.colCount - 1
}

// AddZeroRow appends an all-zero row and returns its index.
func (b *MatrixBuilder) AddZeroRow() int {
	b.rows = append(b.rows, nil)
	return len(b.rows) - 1
}

// AddRow appends a row given as a sparse column -> value map, and returns
// its index. Zero values are dropped.
func (b *MatrixBuilder) AddRow(entries map[int]ring.Element) int {
	cols := make([]int, 0, len(entries))
	for c := range entries {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	row := make(sparseRow, 0, len(cols))
	for _, c := range cols {
		if v := entries[c]; !b.r.IsZero(v) {
			row = append(row, Entry{Col: c, Val: v})
		}
	}
	b.rows = append(b.rows, row)
	return len(b.rows) - 1
}

// Set assigns a single (row, col) entry, growing the row count if needed
// and keeping each row sorted by column. A zero value deletes the entry.
func (b *MatrixBuilder) Set(row, col int, value ring.Element) {
	for len(b.rows) <= row {
		b.rows = append(b.rows, nil)
	}
	r := b.rows[row]
	i := sort.Search(len(r), func(i int) bool { return r[i].Col >= col })
	if b.r.IsZero(value) {
		if i < len(r) && r[i].Col == col {
			b.rows[row] = append(r[:i], r[i+1:]...)
		}
		return
	}
	if i < len(r) && r[i].Col == col {
		r[i].Val = value
		return
	}
	r = append(r, Entry{})
	copy(r[i+1:], r[i:])
	r[i] = Entry{Col: col, Val: value}
	b.rows[row] = r
}

// Matrix is a frozen sparse matrix, ready for GBRowEchelon.
type Matrix struct {
	r          ring.Ring
	rows       []sparseRow
	colCount   int
	blockWidth int
}

// Build freezes the builder into a Matrix. blockWidth <= 0 uses
// DefaultBlockWidth.
func (b *MatrixBuilder) Build(blockWidth int) *Matrix {
	if blockWidth <= 0 {
		blockWidth = DefaultBlockWidth
	}
	rows := make([]sparseRow, len(b.rows))
	for i, row := range b.rows {
		rows[i] = append(sparseRow(nil), row...)
	}
	return &Matrix{r: b.r, rows: rows, colCount: b.colCount, blockWidth: blockWidth}
}

func (m *Matrix) RowCount() int     { return len(m.rows) }
func (m *Matrix) ColCount() int     { return m.colCount }
func (m *Matrix) Row(i int) []Entry { return m.rows[i] }

func entryAt(row sparseRow, col int) (ring.Element, bool) {
	i := sort.Search(len(row), func(i int) bool { return row[i].Col >= col })
	if i < len(row) && row[i].Col == col {
		return row[i].Val, true
	}
	return nil, false
}

// addRowLocal computes dstFactor*dst + srcFactor*src as a single merged,
// sorted row, following add_row_local's two-pointer merge of the two
// sorted entry lists (the original terminates each list with a
// usize::MAX sentinel column; a Go slice's length serves the same role).
func addRowLocal(r ring.Ring, dst, src sparseRow, dstFactor, srcFactor ring.Element) sparseRow {
	out := make(sparseRow, 0, len(dst)+len(src))
	i, j := 0, 0
	for i < len(dst) || j < len(src) {
		switch {
		case j >= len(src) || (i < len(dst) && dst[i].Col < src[j].Col):
			v := r.Mul(dst[i].Val, dstFactor)
			if !r.IsZero(v) {
				out = append(out, Entry{Col: dst[i].Col, Val: v})
			}
			i++
		case i >= len(dst) || src[j].Col < dst[i].Col:
			v := r.Mul(src[j].Val, srcFactor)
			if !r.IsZero(v) {
				out = append(out, Entry{Col: src[j].Col, Val: v})
			}
			j++
		default:
			v := r.Add(r.Mul(dst[i].Val, dstFactor), r.Mul(src[j].Val, srcFactor))
			if !r.IsZero(v) {
				out = append(out, Entry{Col: dst[i].Col, Val: v})
			}
			i++
			j++
		}
	}
	return out
}

// Stats reports reduction progress, replacing the original's global atomic
// round/timing counters (SHORT_REDUCTION_ROUND and friends) with a value
// returned to the caller instead of mutable static state.
type Stats struct {
	PivotRounds    int
	EliminationOps int
}

// GBRowEchelon reduces m to row echelon form over a field r (r must satisfy
// CheckedLeftDiv/IsUnit so pivots can be normalized to 1) and returns the
// reduced rows plus accumulated Stats, following gb_sparse_row_echelon /
// blocked_row_echelon: once a pivot is found and normalized, eliminating it
// from the remaining rows is batched in groups of m.blockWidth rows, each
// batch's rows processed in parallel since they touch disjoint row indices.
func GBRowEchelon(r ring.DivisibilityRing, m *Matrix) ([][]Entry, Stats) {
	start := time.Now()
	rows := make([]sparseRow, len(m.rows))
	for i, row := range m.rows {
		rows[i] = append(sparseRow(nil), row...)
	}

	var stats Stats
	pivotRow := 0
	for col := 0; col < m.colCount && pivotRow < len(rows); col++ {
		if pivotRow%m.blockWidth == 0 {
			klog.Printf(".")
		}
		pivotIdx := -1
		for i := pivotRow; i < len(rows); i++ {
			if v, ok := entryAt(rows[i], col); ok && !r.IsZero(v) {
				pivotIdx = i
				break
			}
		}
		if pivotIdx < 0 {
			continue
		}
		rows[pivotRow], rows[pivotIdx] = rows[pivotIdx], rows[pivotRow]
		stats.PivotRounds++

		pivotVal, _ := entryAt(rows[pivotRow], col)
		pivotInv, ok := r.CheckedLeftDiv(r.One(), pivotVal)
		if !ok {
			panic("sparse: pivot entry is not invertible")
		}
		rows[pivotRow] = addRowLocal(r, nil, rows[pivotRow], r.Zero(), pivotInv)
		pivot := rows[pivotRow]

		// Eliminate col from every other row (both the previously-settled
		// pivot rows above and the not-yet-pivoted rows below), so the
		// result is already reduced row echelon form rather than needing a
		// separate back-substitution pass: eliminate_interior_rows and
		// eliminate_exterior_rows in the original are this same operation
		// applied to the two row ranges on either side of the pivot block.
		eliminateRange := func(start, end int) {
			n := end - start
			if n <= 0 {
				return
			}
			parallel.ForEach(n, func() struct{} { return struct{}{} }, func(_ *struct{}, idx int) {
				i := start + idx
				if i == pivotRow {
					return
				}
				factor, ok := entryAt(rows[i], col)
				if !ok || r.IsZero(factor) {
					return
				}
				rows[i] = addRowLocal(r, rows[i], pivot, r.One(), r.Negate(factor))
			})
			stats.EliminationOps += n
		}
		for batchStart := 0; batchStart < pivotRow; batchStart += m.blockWidth {
			batchEnd := batchStart + m.blockWidth
			if batchEnd > pivotRow {
				batchEnd = pivotRow
			}
			eliminateRange(batchStart, batchEnd)
		}
		for batchStart := pivotRow + 1; batchStart < len(rows); batchStart += m.blockWidth {
			batchEnd := batchStart + m.blockWidth
			if batchEnd > len(rows) {
				batchEnd = len(rows)
			}
			eliminateRange(batchStart, batchEnd)
		}
		pivotRow++
	}

	out := make([][]Entry, len(rows))
	for i, row := range rows {
		out[i] = append([]Entry(nil), row...)
	}
	klog.Printf(" done in %s\n", time.Since(start))
	return out, stats
}

// Invert computes the inverse of a square matrix over a field by row
// reducing the augmented [A | I] matrix with GBRowEchelon and returning the
// right half of the result, the classical Gauss-Jordan construction the
// sparse_invert module is named for.
func Invert(r ring.DivisibilityRing, a *Matrix) [][]Entry {
	n := a.RowCount()
	if a.ColCount() != n {
		panic("sparse: Invert requires a square matrix")
	}
	b := NewMatrixBuilder(r)
	for i := 0; i < 2*n; i++ {
		b.AddCol()
	}
	for i := 0; i < n; i++ {
		row := make(map[int]ring.Element, len(a.Row(i))+1)
		for _, e := range a.Row(i) {
			row[e.Col] = e.Val
		}
		row[n+i] = r.One()
		b.AddRow(row)
	}
	reduced, _ := GBRowEchelon(r, b.Build(a.blockWidth))

	inverse := make([][]Entry, n)
	for i, row := range reduced {
		var right sparseRow
		for _, e := range row {
			if e.Col >= n {
				right = append(right, Entry{Col: e.Col - n, Val: e.Val})
			}
		}
		inverse[i] = right
	}
	return inverse
}
