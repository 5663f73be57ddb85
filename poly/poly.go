// Package poly implements the minimal dense univariate polynomial ring this
// module's FFT and sparse-echelon components don't need, but the cyclotomic
// construction of algorithms.CyclotomicPolynomial does: spec.md §1 treats "the
// polynomial-ring implementations beyond what the FFT and echelon need" as
// out of scope, but the cyclotomic-polynomial testable property (spec.md §8
// scenario 2) requires dividing out factors of X^n - 1. The extfield
// package also builds its extension fields on this ring.
package poly

import (
	"fmt"
	"strings"

	"github.com/aklitzke/algebra-kernel/ring"
)

// Element is a polynomial stored as its coefficient vector, lowest degree
// first. The zero polynomial is the empty slice; Ring.normalize trims
// trailing (highest-degree) zero coefficients so equality is structural.
type Element []ring.Element

// Ring is the dense polynomial ring Base[X]. Base must support checked
// division so that long division (needed by CheckedLeftDiv, which
// algorithms.CyclotomicPolynomial relies on to divide out cyclotomic factors) can
// invert a divisor's leading coefficient.
type Ring struct {
	Base ring.DivisibilityRing
}

// New builds the polynomial ring over base.
func New(base ring.DivisibilityRing) Ring {
	return Ring{Base: base}
}

func el(x ring.Element) Element { return x.(Element) }

func (r Ring) normalize(e Element) Element {
	n := len(e)
	for n > 0 && r.Base.IsZero(e[n-1]) {
		n--
	}
	return e[:n:n]
}

// Degree returns the polynomial's degree, or (-1, false) for the zero
// polynomial.
func (r Ring) Degree(x ring.Element) (int, bool) {
	e := r.normalize(el(x))
	if len(e) == 0 {
		return -1, false
	}
	return len(e) - 1, true
}

// Coeff returns the coefficient of X^i, or Base.Zero() if i is out of range.
func (r Ring) Coeff(x ring.Element, i int) ring.Element {
	e := el(x)
	if i < 0 || i >= len(e) {
		return r.Base.Zero()
	}
	return e[i]
}

// Term is a single (coefficient, degree) pair, as produced by Terms and
// consumed by FromTerms.
type Term struct {
	Coeff ring.Element
	Deg   int
}

// Terms returns every nonzero term of x, ordered by increasing degree.
func (r Ring) Terms(x ring.Element) []Term {
	e := el(x)
	out := make([]Term, 0, len(e))
	for i, c := range e {
		if !r.Base.IsZero(c) {
			out = append(out, Term{Coeff: c, Deg: i})
		}
	}
	return out
}

// FromTerms builds a polynomial from a set of (coefficient, degree) terms;
// duplicate degrees are summed.
func (r Ring) FromTerms(terms []Term) ring.Element {
	maxDeg := -1
	for _, t := range terms {
		if t.Deg > maxDeg {
			maxDeg = t.Deg
		}
	}
	out := make(Element, maxDeg+1)
	for i := range out {
		out[i] = r.Base.Zero()
	}
	for _, t := range terms {
		out[t.Deg] = r.Base.Add(out[t.Deg], t.Coeff)
	}
	return r.normalize(out)
}

// Indeterminate returns X.
func (r Ring) Indeterminate() ring.Element {
	return r.normalize(Element{r.Base.Zero(), r.Base.One()})
}

func (r Ring) Zero() ring.Element { return Element{} }
func (r Ring) One() ring.Element  { return r.normalize(Element{r.Base.One()}) }
func (r Ring) NegOne() ring.Element {
	return r.normalize(Element{r.Base.NegOne()})
}
func (r Ring) FromInt(value int32) ring.Element {
	return r.normalize(Element{r.Base.FromInt(value)})
}

func (r Ring) Add(lhs, rhs ring.Element) ring.Element {
	a, b := el(lhs), el(rhs)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(Element, n)
	for i := 0; i < n; i++ {
		switch {
		case i < len(a) && i < len(b):
			out[i] = r.Base.Add(a[i], b[i])
		case i < len(a):
			out[i] = r.Base.CloneEl(a[i])
		default:
			out[i] = r.Base.CloneEl(b[i])
		}
	}
	return r.normalize(out)
}

func (r Ring) Negate(value ring.Element) ring.Element {
	e := el(value)
	out := make(Element, len(e))
	for i, c := range e {
		out[i] = r.Base.Negate(c)
	}
	return r.normalize(out)
}

func (r Ring) Sub(lhs, rhs ring.Element) ring.Element {
	return r.Add(lhs, r.Negate(rhs))
}

func (r Ring) Mul(lhs, rhs ring.Element) ring.Element {
	a, b := el(lhs), el(rhs)
	if len(a) == 0 || len(b) == 0 {
		return Element{}
	}
	out := make(Element, len(a)+len(b)-1)
	for i := range out {
		out[i] = r.Base.Zero()
	}
	for i, ac := range a {
		if r.Base.IsZero(ac) {
			continue
		}
		for j, bc := range b {
			if r.Base.IsZero(bc) {
				continue
			}
			out[i+j] = r.Base.Add(out[i+j], r.Base.Mul(ac, bc))
		}
	}
	return r.normalize(out)
}

func (r Ring) MulInt(lhs ring.Element, rhs int32) ring.Element {
	return r.Mul(lhs, r.FromInt(rhs))
}

func (r Ring) EqEl(lhs, rhs ring.Element) bool {
	a, b := r.normalize(el(lhs)), r.normalize(el(rhs))
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !r.Base.EqEl(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (r Ring) IsZero(value ring.Element) bool { return len(r.normalize(el(value))) == 0 }
func (r Ring) IsOne(value ring.Element) bool {
	e := r.normalize(el(value))
	return len(e) == 1 && r.Base.IsOne(e[0])
}
func (r Ring) IsNegOne(value ring.Element) bool {
	e := r.normalize(el(value))
	return len(e) == 1 && r.Base.IsNegOne(e[0])
}

func (r Ring) CloneEl(value ring.Element) ring.Element {
	e := el(value)
	out := make(Element, len(e))
	for i, c := range e {
		out[i] = r.Base.CloneEl(c)
	}
	return out
}

func (r Ring) String(value ring.Element) string {
	terms := r.Terms(value)
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		switch t.Deg {
		case 0:
			parts[i] = r.Base.String(t.Coeff)
		case 1:
			parts[i] = fmt.Sprintf("%s*X", r.Base.String(t.Coeff))
		default:
			parts[i] = fmt.Sprintf("%s*X^%d", r.Base.String(t.Coeff), t.Deg)
		}
	}
	return strings.Join(parts, " + ")
}

func (r Ring) IsCommutative() bool { return r.Base.IsCommutative() }
func (r Ring) IsNoetherian() bool  { return r.Base.IsNoetherian() }

// EuclideanDivRem performs standard long division, requiring the base
// ring's leading coefficients to be invertible (i.e. Base is a field) for
// every divisor it is given, matching the teacher's generic-over-a-field
// style elsewhere in this module (zn.Barett.Invert).
func (r Ring) EuclideanDivRem(lhs, rhs ring.Element) (ring.Element, ring.Element) {
	rhsDeg, ok := r.Degree(rhs)
	if !ok {
		panic("poly: division by zero polynomial")
	}
	rem := make(Element, len(el(lhs)))
	copy(rem, el(lhs))
	for i := range rem {
		rem[i] = r.Base.CloneEl(rem[i])
	}
	rem = r.normalize(rem)
	leadInv, ok := r.Base.CheckedLeftDiv(r.Base.One(), el(rhs)[rhsDeg])
	if !ok {
		panic("poly: divisor leading coefficient is not invertible")
	}
	quotient := Element{}
	for {
		remDeg, ok := r.Degree(rem)
		if !ok || remDeg < rhsDeg {
			break
		}
		coeff := r.Base.Mul(rem[remDeg], leadInv)
		shift := remDeg - rhsDeg
		for len(quotient) <= shift {
			quotient = append(quotient, r.Base.Zero())
		}
		quotient[shift] = r.Base.Add(quotient[shift], coeff)
		for j, rc := range el(rhs) {
			rem[shift+j] = r.Base.Sub(rem[shift+j], r.Base.Mul(coeff, rc))
		}
		rem = r.normalize(rem)
	}
	return r.normalize(quotient), rem
}

func (r Ring) EuclideanDiv(lhs, rhs ring.Element) ring.Element {
	q, _ := r.EuclideanDivRem(lhs, rhs)
	return q
}

func (r Ring) EuclideanDeg(value ring.Element) int64 {
	deg, ok := r.Degree(value)
	if !ok {
		return -1
	}
	return int64(deg)
}

func (r Ring) IsUnit(value ring.Element) bool {
	e := r.normalize(el(value))
	return len(e) == 1 && r.Base.IsUnit(e[0])
}

// CheckedLeftDiv returns a quotient q with rhs*q = lhs exactly, when the
// remainder of long division is zero.
func (r Ring) CheckedLeftDiv(lhs, rhs ring.Element) (ring.Element, bool) {
	if r.IsZero(rhs) {
		if r.IsZero(lhs) {
			return r.Zero(), true
		}
		return nil, false
	}
	q, rem := r.EuclideanDivRem(lhs, rhs)
	if !r.IsZero(rem) {
		return nil, false
	}
	return q, true
}

var _ ring.EuclideanRing = Ring{}
