package extfield

import (
	"math/big"
	"testing"

	"github.com/aklitzke/algebra-kernel/internal/xrand"
	"github.com/aklitzke/algebra-kernel/poly"
	"github.com/aklitzke/algebra-kernel/ring"
	"github.com/aklitzke/algebra-kernel/zn"
)

// chiOverF7 builds X^2 - 3 over F_7, irreducible since 3 is a quadratic
// non-residue mod 7 (the residues are {1, 2, 4}).
func chiOverF7(base zn.Fast64) ring.Element {
	p := poly.New(base)
	return p.FromTerms([]poly.Term{
		{Coeff: base.FromInt(-3), Deg: 0},
		{Coeff: base.FromInt(1), Deg: 2},
	})
}

func TestNewRejectsReducible(t *testing.T) {
	base := zn.NewFast64(7)
	p := poly.New(base)
	// X^2 - 4 = (X-2)(X+2), reducible.
	reducible := p.FromTerms([]poly.Term{
		{Coeff: base.FromInt(-4), Deg: 0},
		{Coeff: base.FromInt(1), Deg: 2},
	})
	if _, err := New(base, big.NewInt(7), reducible); err == nil {
		t.Fatalf("expected New to reject a reducible modulus")
	}
}

func TestFieldAxioms(t *testing.T) {
	base := zn.NewFast64(7)
	f, err := New(base, big.NewInt(7), chiOverF7(base))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := poly.New(base)
	var elements []ring.Element
	for a := int32(0); a < 7; a++ {
		for b := int32(0); b < 7; b++ {
			elements = append(elements, p.FromTerms([]poly.Term{
				{Coeff: base.FromInt(a), Deg: 0},
				{Coeff: base.FromInt(b), Deg: 1},
			}))
		}
	}
	ring.TestAxioms(t, f, elements)
	ring.TestDivisibilityAxioms(t, f, elements)
}

func TestInvRoundTrip(t *testing.T) {
	base := zn.NewFast64(7)
	f, err := New(base, big.NewInt(7), chiOverF7(base))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := poly.New(base)
	x := p.FromTerms([]poly.Term{
		{Coeff: base.FromInt(2), Deg: 0},
		{Coeff: base.FromInt(5), Deg: 1},
	})
	inv := f.Inv(x)
	if got := f.Mul(x, inv); !f.IsOne(got) {
		t.Fatalf("x * x^-1 = %v, want 1", f.String(got))
	}
}

func TestFindIrreducibleAndInv(t *testing.T) {
	base := zn.NewFast64(1021)
	sampler := xrand.New([]byte("extfield-find-irreducible"))
	sample := func() ring.Element { return base.RandomElement(sampler.Uint64) }

	chi, err := FindIrreducible(base, big.NewInt(1021), 3, sample)
	if err != nil {
		t.Fatalf("FindIrreducible: %v", err)
	}
	f, err := New(base, big.NewInt(1021), chi)
	if err != nil {
		t.Fatalf("New with found chi: %v", err)
	}
	a := f.RandomElement(sample)
	for f.IsZero(a) {
		a = f.RandomElement(sample)
	}
	inv := f.Inv(a)
	if got := f.Mul(a, inv); !f.IsOne(got) {
		t.Fatalf("random element did not invert: %v", f.String(got))
	}
}

func TestMulMatrixMatchesMul(t *testing.T) {
	base := zn.NewFast64(7)
	f, err := New(base, big.NewInt(7), chiOverF7(base))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p := poly.New(base)
	e := p.FromTerms([]poly.Term{
		{Coeff: base.FromInt(3), Deg: 0},
		{Coeff: base.FromInt(1), Deg: 1},
	})
	x := p.FromTerms([]poly.Term{
		{Coeff: base.FromInt(5), Deg: 0},
		{Coeff: base.FromInt(6), Deg: 1},
	})
	want := f.Mul(e, x)
	m := f.MulMatrix(e)
	got := f.Zero()
	for row := 0; row < f.Theta; row++ {
		acc := base.Zero()
		for col := 0; col < f.Theta; col++ {
			acc = base.Add(acc, base.Mul(m[row][col], p.Coeff(x, col)))
		}
		got = f.Add(got, p.FromTerms([]poly.Term{{Coeff: acc, Deg: row}}))
	}
	if !f.EqEl(got, want) {
		t.Fatalf("MulMatrix*x = %v, want %v", f.String(got), f.String(want))
	}
}
