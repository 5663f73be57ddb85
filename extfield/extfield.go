// Package extfield implements a degree-theta finite free extension
// Base[X]/(chi) of any field Base, generalizing internal/kfield's
// hardcoded F_q[X]/(chi) (q a uint64 prime, chi a fixed-width uint64 slice)
// into an extension parameterized over an arbitrary ring.DivisibilityRing,
// the same way zn.Barett generalizes Z/nZ reduction over an arbitrary
// integer.Ring. Elements are poly.Element values already reduced modulo
// chi (degree < Theta); the field's own Mul/Inv keep that invariant.
package extfield

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/aklitzke/algebra-kernel/poly"
	"github.com/aklitzke/algebra-kernel/ring"
)

// Field describes K = Base[X]/(Chi). Order is the cardinality of Base
// (e.g. a prime modulus for Base == zn.Fast64, or the RNS total for
// Base == zn.RNS); it is taken as an explicit *big.Int because no
// ring.Ring method exposes a field's size, the same reason kfield.New
// took q as an explicit parameter.
type Field struct {
	Base  ring.DivisibilityRing
	Order *big.Int
	Theta int
	Chi   ring.Element
}

func (f Field) p() poly.Ring { return poly.New(f.Base) }

// New constructs Base[X]/(chi). chi must be monic of positive degree and
// irreducible over Base, the last verified with the Ben-Or/Frobenius test
// (isIrreducible below).
func New(base ring.DivisibilityRing, order *big.Int, chi ring.Element) (Field, error) {
	p := poly.New(base)
	deg, ok := p.Degree(chi)
	if !ok || deg <= 0 {
		return Field{}, fmt.Errorf("extfield: chi must have positive degree")
	}
	if !base.IsOne(p.Coeff(chi, deg)) {
		return Field{}, fmt.Errorf("extfield: chi must be monic")
	}
	if !isIrreducible(p, order, chi) {
		return Field{}, fmt.Errorf("extfield: chi is reducible")
	}
	return Field{Base: base, Order: new(big.Int).Set(order), Theta: deg, Chi: chi}, nil
}

// FindIrreducible samples monic degree-theta polynomials, drawing each
// non-leading coefficient from sample, until one is irreducible over base.
// sample is supplied by the caller rather than drawn from a package-level
// source, since ring.DivisibilityRing carries no notion of random sampling
// of its own (concrete rings like zn.Fast64 do, via their own
// RandomElement - see zn/properties.go).
func FindIrreducible(base ring.DivisibilityRing, order *big.Int, theta int, sample func() ring.Element) (ring.Element, error) {
	if theta <= 0 {
		return nil, errors.New("extfield: theta must be positive")
	}
	p := poly.New(base)
	const maxTries = 1 << 16
	for try := 0; try < maxTries; try++ {
		terms := make([]poly.Term, 0, theta+1)
		terms = append(terms, poly.Term{Coeff: base.One(), Deg: theta})
		for i := 0; i < theta; i++ {
			terms = append(terms, poly.Term{Coeff: sample(), Deg: i})
		}
		chi := p.FromTerms(terms)
		if isIrreducible(p, order, chi) {
			return chi, nil
		}
	}
	return nil, errors.New("extfield: failed to find irreducible polynomial")
}

func (f Field) reduce(x ring.Element) ring.Element {
	_, rem := f.p().EuclideanDivRem(x, f.Chi)
	return rem
}

// Zero returns the additive identity.
func (f Field) Zero() ring.Element { return f.p().Zero() }

// One returns the multiplicative identity.
func (f Field) One() ring.Element { return f.p().One() }

// NegOne returns -1.
func (f Field) NegOne() ring.Element { return f.p().Negate(f.p().One()) }

// FromInt embeds a 32-bit integer literal as a constant polynomial.
func (f Field) FromInt(value int32) ring.Element { return f.p().FromInt(value) }

// EmbedBase lifts a Base element into K as a constant polynomial.
func (f Field) EmbedBase(x ring.Element) ring.Element {
	return f.p().FromTerms([]poly.Term{{Coeff: x, Deg: 0}})
}

func (f Field) Add(lhs, rhs ring.Element) ring.Element { return f.p().Add(lhs, rhs) }
func (f Field) Sub(lhs, rhs ring.Element) ring.Element { return f.p().Sub(lhs, rhs) }
func (f Field) Negate(value ring.Element) ring.Element { return f.p().Negate(value) }

// Mul multiplies two reduced representatives and reduces the schoolbook
// product back down modulo Chi.
func (f Field) Mul(lhs, rhs ring.Element) ring.Element {
	return f.reduce(f.p().Mul(lhs, rhs))
}

func (f Field) MulInt(lhs ring.Element, rhs int32) ring.Element {
	return f.reduce(f.p().MulInt(lhs, rhs))
}

func (f Field) EqEl(lhs, rhs ring.Element) bool   { return f.p().EqEl(lhs, rhs) }
func (f Field) IsZero(value ring.Element) bool    { return f.p().IsZero(value) }
func (f Field) IsOne(value ring.Element) bool     { return f.p().IsOne(value) }
func (f Field) IsNegOne(value ring.Element) bool  { return f.p().IsNegOne(value) }
func (f Field) CloneEl(value ring.Element) ring.Element { return f.p().CloneEl(value) }
func (f Field) String(value ring.Element) string  { return f.p().String(value) }
func (f Field) IsCommutative() bool               { return f.Base.IsCommutative() }
func (f Field) IsNoetherian() bool                { return true }

// IsUnit reports whether value is invertible: every nonzero element of a
// field is a unit.
func (f Field) IsUnit(value ring.Element) bool { return !f.IsZero(value) }

// CheckedLeftDiv returns lhs * rhs^-1, or (nil, false) if rhs is zero.
func (f Field) CheckedLeftDiv(lhs, rhs ring.Element) (ring.Element, bool) {
	if f.IsZero(rhs) {
		return nil, false
	}
	return f.Mul(lhs, f.Inv(rhs)), true
}

// Pow raises base to a non-negative big.Int exponent by square-and-multiply.
func (f Field) Pow(base ring.Element, exp *big.Int) ring.Element {
	if exp.Sign() == 0 {
		return f.One()
	}
	result := f.One()
	cur := f.CloneEl(base)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = f.Mul(result, result)
		if exp.Bit(i) == 1 {
			result = f.Mul(result, cur)
		}
	}
	return result
}

// Inv returns a^-1 via Fermat's little theorem generalized to K: every
// nonzero element satisfies a^(|K|-1) = 1, so a^-1 = a^(|K|-2), with
// |K| = Order^Theta.
func (f Field) Inv(a ring.Element) ring.Element {
	if f.IsZero(a) {
		panic("extfield: inverse of zero element")
	}
	size := new(big.Int).Exp(f.Order, big.NewInt(int64(f.Theta)), nil)
	exp := new(big.Int).Sub(size, big.NewInt(2))
	return f.Pow(a, exp)
}

// RandomElement draws Theta uniform Base coefficients via sample.
func (f Field) RandomElement(sample func() ring.Element) ring.Element {
	terms := make([]poly.Term, f.Theta)
	for i := range terms {
		terms[i] = poly.Term{Coeff: sample(), Deg: i}
	}
	return f.p().FromTerms(terms)
}

// MulMatrix returns the Theta x Theta Base-matrix representing
// multiplication by e in the power basis 1, X, ..., X^(Theta-1): column j
// holds the coordinates of e * X^j.
func (f Field) MulMatrix(e ring.Element) [][]ring.Element {
	p := f.p()
	m := make([][]ring.Element, f.Theta)
	for i := range m {
		m[i] = make([]ring.Element, f.Theta)
	}
	for col := 0; col < f.Theta; col++ {
		basis := p.FromTerms([]poly.Term{{Coeff: f.Base.One(), Deg: col}})
		prod := f.Mul(e, basis)
		for row := 0; row < f.Theta; row++ {
			m[row][col] = p.Coeff(prod, row)
		}
	}
	return m
}

// EvalBasePolyAt evaluates a Base-coefficient polynomial (lowest degree
// first) at a K-point via Horner's method.
func (f Field) EvalBasePolyAt(coeff []ring.Element, at ring.Element) ring.Element {
	acc := f.Zero()
	for i := len(coeff) - 1; i >= 0; i-- {
		acc = f.Mul(acc, at)
		acc = f.Add(acc, f.EmbedBase(coeff[i]))
	}
	return acc
}

// polyGCD computes the monic gcd of a and b in p via the classical
// Euclidean algorithm, the generic analogue of internal/kfield's
// uint64-specialized polyGCD.
func polyGCD(p poly.Ring, a, b ring.Element) ring.Element {
	for !p.IsZero(b) {
		_, r := p.EuclideanDivRem(a, b)
		a, b = b, r
	}
	if p.IsZero(a) {
		return a
	}
	deg, _ := p.Degree(a)
	lead := p.Coeff(a, deg)
	invLead, ok := p.Base.CheckedLeftDiv(p.Base.One(), lead)
	if !ok {
		panic("extfield: leading coefficient not invertible during gcd normalization")
	}
	return p.Mul(a, p.FromTerms([]poly.Term{{Coeff: invLead, Deg: 0}}))
}

// polyPowMod computes base^exp mod modulus in p, reducing after every
// squaring and multiplication so intermediate degree never grows unbounded.
func polyPowMod(p poly.Ring, base ring.Element, exp *big.Int, modulus ring.Element) ring.Element {
	reduce := func(x ring.Element) ring.Element {
		_, rem := p.EuclideanDivRem(x, modulus)
		return rem
	}
	result := p.One()
	b := reduce(base)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = reduce(p.Mul(result, result))
		if exp.Bit(i) == 1 {
			result = reduce(p.Mul(result, b))
		}
	}
	return result
}

// isIrreducible implements the Ben-Or/Frobenius irreducibility test,
// generalized from internal/kfield's uint64-specialized version: chi of
// degree n over a field of size order is irreducible iff X^(order^n) = X
// mod chi and gcd(X^(order^i) - X, chi) = 1 for every 1 <= i <= n/2.
func isIrreducible(p poly.Ring, order *big.Int, chi ring.Element) bool {
	deg, ok := p.Degree(chi)
	if !ok || deg <= 0 {
		return false
	}
	x := p.Indeterminate()
	xp := p.Indeterminate()
	for i := 1; i <= deg/2; i++ {
		xp = polyPowMod(p, xp, order, chi)
		g := polyGCD(p, p.Sub(xp, x), chi)
		if gDeg, ok := p.Degree(g); ok && gDeg > 0 {
			return false
		}
	}
	xp = p.Indeterminate()
	for i := 0; i < deg; i++ {
		xp = polyPowMod(p, xp, order, chi)
	}
	return p.EqEl(xp, x)
}
