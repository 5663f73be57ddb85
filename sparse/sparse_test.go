package sparse_test

import (
	"testing"

	"github.com/aklitzke/algebra-kernel/ring"
	"github.com/aklitzke/algebra-kernel/sparse"
	"github.com/aklitzke/algebra-kernel/zn"
)

func lookup(r ring.Ring, row []sparse.Entry, col int) ring.Element {
	for _, e := range row {
		if e.Col == col {
			return e.Val
		}
	}
	return r.Zero()
}

func assertEntry(t *testing.T, r ring.Ring, row []sparse.Entry, col int, want int32) {
	t.Helper()
	got := lookup(r, row, col)
	if !r.EqEl(got, r.FromInt(want)) {
		t.Errorf("col %d: got %s want %d", col, r.String(got), want)
	}
}

// buildPermutedIdentity builds the 4x4 matrix of spec.md §8 scenario 5: a
// permuted identity (rows 0,1 swapped relative to columns) with two
// off-diagonal entries in the bottom-right 2x2 block.
func buildPermutedIdentity(r ring.Ring) *sparse.Matrix {
	b := sparse.NewMatrixBuilder(r)
	for i := 0; i < 4; i++ {
		b.AddCol()
	}
	b.AddRow(map[int]ring.Element{1: r.One()})
	b.AddRow(map[int]ring.Element{0: r.One()})
	b.AddRow(map[int]ring.Element{2: r.One(), 3: r.FromInt(1)})
	b.AddRow(map[int]ring.Element{3: r.One(), 2: r.FromInt(6)})
	return b.Build(0)
}

func TestGBRowEchelonPermutedIdentity(t *testing.T) {
	r := zn.NewFast64(17)
	m := buildPermutedIdentity(r)
	reduced, stats := sparse.GBRowEchelon(r, m)

	if stats.PivotRounds != 4 {
		t.Fatalf("expected 4 pivots, got %d", stats.PivotRounds)
	}
	assertEntry(t, r, reduced[0], 0, 1)
	assertEntry(t, r, reduced[1], 1, 1)
	assertEntry(t, r, reduced[2], 2, 1)
	assertEntry(t, r, reduced[3], 3, 1)
	for _, row := range reduced {
		if len(row) != 1 {
			t.Fatalf("row-reduced permuted identity should have exactly one entry per row, got %v", row)
		}
	}
}

// TestInvertBottomRightScalar reproduces spec.md §8 scenario 5: after
// reducing the 4x4 permuted identity with its two off-diagonal entries,
// the bottom-right scalar of the inverse must equal 10 in Z/17Z.
func TestInvertBottomRightScalar(t *testing.T) {
	r := zn.NewFast64(17)
	m := buildPermutedIdentity(r)
	inv := sparse.Invert(r, m)

	assertEntry(t, r, inv[0], 1, 1)
	assertEntry(t, r, inv[1], 0, 1)
	assertEntry(t, r, inv[2], 2, 10)
	assertEntry(t, r, inv[2], 3, 7)
	assertEntry(t, r, inv[3], 2, 8)
	assertEntry(t, r, inv[3], 3, 10)
}

func TestMatrixBuilderSetOverwritesAndDeletes(t *testing.T) {
	r := zn.NewFast64(17)
	b := sparse.NewMatrixBuilder(r)
	b.AddCol()
	b.AddCol()
	b.AddZeroRow()
	b.Set(0, 1, r.FromInt(5))
	b.Set(0, 0, r.FromInt(3))
	b.Set(0, 1, r.Zero())
	m := b.Build(0)
	row := m.Row(0)
	if len(row) != 1 {
		t.Fatalf("expected one surviving entry, got %v", row)
	}
	assertEntry(t, r, row, 0, 3)
}
