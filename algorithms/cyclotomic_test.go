package algorithms_test

import (
	"testing"

	"github.com/aklitzke/algebra-kernel/algorithms"
	"github.com/aklitzke/algebra-kernel/poly"
	"github.com/aklitzke/algebra-kernel/ring"
	"github.com/aklitzke/algebra-kernel/zn"
)

func expectPoly(t *testing.T, p poly.Ring, got ring.Element, coeffs ...int32) {
	t.Helper()
	terms := make([]poly.Term, len(coeffs))
	for i, c := range coeffs {
		terms[i] = poly.Term{Coeff: p.Base.FromInt(c), Deg: i}
	}
	want := p.FromTerms(terms)
	if !p.EqEl(got, want) {
		t.Fatalf("got %s, want %s", p.String(got), p.String(want))
	}
}

func TestCyclotomicPolynomialOverZ7(t *testing.T) {
	base := zn.NewFast64(7)
	p := poly.New(base)

	// Phi_6 = X^2 - X + 1, which over Z/7Z is X^2 + 6X + 1.
	expectPoly(t, p, algorithms.CyclotomicPolynomial(p, 6), 1, 6, 1)

	// Phi_18 = X^6 - X^3 + 1, which over Z/7Z is X^6 + 6X^3 + 1.
	expectPoly(t, p, algorithms.CyclotomicPolynomial(p, 18), 1, 0, 0, 6, 0, 0, 1)
}

func TestCyclotomicPolynomialPrimeAndOne(t *testing.T) {
	base := zn.NewFast64(7)
	p := poly.New(base)

	// Phi_1 = X - 1, i.e. X + 6 over Z/7Z.
	expectPoly(t, p, algorithms.CyclotomicPolynomial(p, 1), 6, 1)

	// Phi_2 = X + 1.
	expectPoly(t, p, algorithms.CyclotomicPolynomial(p, 2), 1, 1)

	// Phi_3 = X^2 + X + 1.
	expectPoly(t, p, algorithms.CyclotomicPolynomial(p, 3), 1, 1, 1)

	// Phi_5 = X^4 + X^3 + X^2 + X + 1.
	expectPoly(t, p, algorithms.CyclotomicPolynomial(p, 5), 1, 1, 1, 1, 1)
}
