package zn

import (
	"github.com/aklitzke/algebra-kernel/algorithms"
	"github.com/aklitzke/algebra-kernel/integer"
	"github.com/aklitzke/algebra-kernel/ring"
)

// Barett is Z/nZ implemented generically over any integer.Ring, using
// Barett reduction: k is chosen so 2^k > modulus^2, and x/modulus is
// approximated by (floor(2^k/modulus) * x) >> k, exact for 0 <= x < modulus^2.
type Barett struct {
	Int              integer.Ring
	modulus          ring.Element
	inverseModulus   ring.Element
	inverseModulusBitshift int
}

// BarettEl wraps the canonical representative, an element of Int in
// [0, modulus).
type BarettEl struct {
	v ring.Element
}

// NewBarett builds the Barett ring for the given modulus (>= 2) over base.
func NewBarett(base integer.Ring, modulus ring.Element) Barett {
	if base.Compare(modulus, base.FromInt(2)) < 0 {
		panic("zn: Barett modulus must be >= 2")
	}
	highestBit, _ := base.AbsHighestSetBit(modulus)
	k := highestBit*2 + 2
	inverseModulus := base.EuclideanDiv(ring.Pow(base, base.FromInt(2), uint64(k)), modulus)
	return Barett{Int: base, modulus: modulus, inverseModulus: inverseModulus, inverseModulusBitshift: k}
}

func (z Barett) projectLeqNSquare(n ring.Element) ring.Element {
	subtract := z.Int.Mul(n, z.inverseModulus)
	subtract = z.Int.EuclideanDivPow2(subtract, z.inverseModulusBitshift)
	subtract = z.Int.Mul(subtract, z.modulus)
	n = z.Int.Sub(n, subtract)
	if z.Int.Compare(n, z.modulus) >= 0 {
		n = z.Int.Sub(n, z.modulus)
	}
	return n
}

// Project reduces an arbitrary element of Int into [0, modulus).
func (z Barett) Project(n ring.Element) ring.Element {
	redN := n
	negated := z.Int.IsNeg(redN)
	if negated {
		redN = z.Int.Negate(redN)
	}
	switch {
	case z.Int.Compare(redN, z.modulus) < 0:
		// already reduced
	default:
		highest, ok := z.Int.AbsHighestSetBit(redN)
		modHighest, _ := z.Int.AbsHighestSetBit(z.modulus)
		if !ok {
			highest = 0
		}
		if highest+1 < modHighest*2 {
			redN = z.projectLeqNSquare(redN)
		} else {
			_, redN = z.Int.EuclideanDivRem(redN, z.modulus)
		}
	}
	result := BarettEl{v: redN}
	if negated {
		return z.Negate(result)
	}
	return result
}

func be(x ring.Element) BarettEl { return x.(BarettEl) }

func (z Barett) Zero() ring.Element   { return BarettEl{v: z.Int.Zero()} }
func (z Barett) One() ring.Element    { return BarettEl{v: z.Int.One()} }
func (z Barett) NegOne() ring.Element { return z.Negate(z.One()) }
func (z Barett) FromInt(value int32) ring.Element {
	return z.Project(z.Int.FromInt(value))
}

func (z Barett) Add(lhs, rhs ring.Element) ring.Element {
	v := z.Int.Add(be(lhs).v, be(rhs).v)
	if z.Int.Compare(v, z.modulus) >= 0 {
		v = z.Int.Sub(v, z.modulus)
	}
	return BarettEl{v: v}
}

func (z Barett) Sub(lhs, rhs ring.Element) ring.Element {
	v := z.Int.Sub(be(lhs).v, be(rhs).v)
	if z.Int.IsNeg(v) {
		v = z.Int.Add(v, z.modulus)
	}
	return BarettEl{v: v}
}

func (z Barett) Negate(value ring.Element) ring.Element {
	v := be(value).v
	if z.Int.IsZero(v) {
		return BarettEl{v: v}
	}
	return BarettEl{v: z.Int.Sub(z.modulus, v)}
}

func (z Barett) Mul(lhs, rhs ring.Element) ring.Element {
	product := z.Int.Mul(be(lhs).v, be(rhs).v)
	return BarettEl{v: z.projectLeqNSquare(product)}
}

func (z Barett) MulInt(lhs ring.Element, rhs int32) ring.Element {
	return z.Mul(lhs, z.FromInt(rhs))
}

func (z Barett) EqEl(lhs, rhs ring.Element) bool { return z.Int.EqEl(be(lhs).v, be(rhs).v) }
func (z Barett) IsZero(value ring.Element) bool  { return z.Int.IsZero(be(value).v) }
func (z Barett) IsOne(value ring.Element) bool   { return z.Int.IsOne(be(value).v) }
func (z Barett) IsNegOne(value ring.Element) bool {
	return z.Int.EqEl(z.Int.Add(be(value).v, z.Int.One()), z.modulus)
}
func (z Barett) CloneEl(value ring.Element) ring.Element {
	return BarettEl{v: z.Int.CloneEl(be(value).v)}
}
func (z Barett) String(value ring.Element) string { return z.Int.String(be(value).v) }
func (z Barett) IsCommutative() bool              { return true }
func (z Barett) IsNoetherian() bool               { return true }

// Modulus returns the modulus as an element of the base integer ring.
func (z Barett) Modulus() ring.Element { return z.modulus }

// SmallestPositiveLift returns the canonical representative in the base ring.
func (z Barett) SmallestPositiveLift(value ring.Element) ring.Element {
	return z.Int.CloneEl(be(value).v)
}

// Invert returns either the inverse of x, or a nontrivial factor of the
// modulus discovered along the way (the extended-Euclid gcd), matching the
// original's Result<ZnEl, El<I>> contract via (inverse, factor, isInverse).
func (z Barett) Invert(x ring.Element) (ring.Element, ring.Element, bool) {
	s, _, d := algorithms.EEA(z.Int, be(x).v, z.modulus)
	if z.Int.IsOne(d) || z.Int.IsNegOne(d) {
		return z.Project(s), nil, true
	}
	return nil, d, false
}

func (z Barett) IsUnit(value ring.Element) bool {
	_, _, ok := z.Invert(value)
	return ok
}

func (z Barett) CheckedLeftDiv(lhs, rhs ring.Element) (ring.Element, bool) {
	if z.IsZero(rhs) {
		if z.IsZero(lhs) {
			return z.Zero(), true
		}
		return nil, false
	}
	inv, _, ok := z.Invert(rhs)
	if !ok {
		return nil, false
	}
	return z.Mul(lhs, inv), true
}

var _ ring.Ring = Barett{}
var _ ring.DivisibilityRing = Barett{}
