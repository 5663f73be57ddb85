package bigint

import (
	"testing"

	"github.com/aklitzke/algebra-kernel/integer"
	"github.com/aklitzke/algebra-kernel/ring"
)

func mustParse(t *testing.T, s string, base int) ring.Element {
	t.Helper()
	v, err := Parse(s, base)
	if err != nil {
		t.Fatalf("parse %q base %d: %v", s, base, err)
	}
	return v
}

func TestAxioms(t *testing.T) {
	elements := make([]ring.Element, 0)
	for _, v := range []int32{0, 1, -1, 7, -7, 2138479, -2138479} {
		elements = append(elements, RING.FromInt(v))
	}
	ring.TestAxioms(t, RING, elements)
	ring.TestDivisibilityAxioms(t, RING, elements)
}

func TestSubAssign(t *testing.T) {
	x := mustParse(t, "4294836225", 10)
	y := mustParse(t, "4294967297", 10)
	z := mustParse(t, "-131072", 10)
	got := RING.Sub(x, y)
	if !RING.EqEl(got, z) {
		t.Fatalf("got %s, want %s", RING.String(got), RING.String(z))
	}
}

func TestShiftRight(t *testing.T) {
	x := mustParse(t, "9843a756781b34567f81394", 16)
	z := mustParse(t, "9843a756781b34567", 16)
	got := RING.EuclideanDivPow2(x, 24)
	if !RING.EqEl(got, z) {
		t.Fatalf("got %s, want %s", RING.String(got), RING.String(z))
	}

	negX := mustParse(t, "-9843a756781b34567f81394", 16)
	negZ := mustParse(t, "-9843a756781b34567", 16)
	gotNeg := RING.EuclideanDivPow2(negX, 24)
	if !RING.EqEl(gotNeg, negZ) {
		t.Fatalf("got %s, want %s", RING.String(gotNeg), RING.String(negZ))
	}
}

func TestRoundedDiv(t *testing.T) {
	cases := []struct {
		lhs, rhs, want int32
	}{
		{7, 3, 2},
		{-7, 3, -2},
		{7, -3, -2},
		{-7, -3, 2},
		{8, 3, 3},
		{-8, 3, -3},
	}
	for _, c := range cases {
		got := integer.RoundedDiv(RING, RING.FromInt(c.lhs), RING.FromInt(c.rhs))
		want := RING.FromInt(c.want)
		if !RING.EqEl(got, want) {
			t.Fatalf("rounded_div(%d, %d) = %s, want %d", c.lhs, c.rhs, RING.String(got), c.want)
		}
	}
}
