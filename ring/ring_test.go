package ring_test

import (
	"testing"

	"github.com/aklitzke/algebra-kernel/integer"
	"github.com/aklitzke/algebra-kernel/ring"
)

func TestPow(t *testing.T) {
	r := integer.RING64
	got := ring.Pow(r, int64(3), 4).(int64)
	if got != 81 {
		t.Fatalf("Pow(3, 4) = %d, want 81", got)
	}
	if got := ring.Pow(r, int64(5), 0).(int64); got != 1 {
		t.Fatalf("Pow(5, 0) = %d, want 1", got)
	}
}

func TestSumProd(t *testing.T) {
	r := integer.RING64
	xs := []ring.Element{int64(1), int64(2), int64(3), int64(4)}
	if got := ring.Sum(r, xs).(int64); got != 10 {
		t.Fatalf("Sum = %d, want 10", got)
	}
	if got := ring.Prod(r, xs).(int64); got != 24 {
		t.Fatalf("Prod = %d, want 24", got)
	}
}

func TestAxiomsOnStatic64(t *testing.T) {
	r := integer.RING64
	elements := make([]ring.Element, 0, 7)
	for _, v := range []int64{-3, -1, 0, 1, 2, 5, 7} {
		elements = append(elements, v)
	}
	ring.TestAxioms(t, r, elements)
}

func TestDivisibilityAxiomsOnStatic64(t *testing.T) {
	r := integer.RING64
	elements := make([]ring.Element, 0, 5)
	for _, v := range []int64{1, -1, 2, 3, 6} {
		elements = append(elements, v)
	}
	ring.TestDivisibilityAxioms(t, r, elements)
}
