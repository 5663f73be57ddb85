// Package bigint implements the arbitrary-precision sign-magnitude integer
// ring: a sign bit plus an unsigned magnitude. The magnitude arithmetic
// itself is delegated to math/big, but every operation that needs to
// combine two signed operands (add, sub, euclidean division, comparison)
// does its own sign dispatch the way the original's DefaultBigIntRing does,
// rather than handing signed values straight to math/big.
package bigint

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/aklitzke/algebra-kernel/integer"
	"github.com/aklitzke/algebra-kernel/ring"
)

// Element is a sign-magnitude arbitrary-precision integer: Neg is true for
// strictly negative values, and Abs holds the magnitude (always >= 0,
// regardless of Neg — zero is always represented with Neg == false).
type Element struct {
	Neg bool
	Abs *big.Int
}

func el(x ring.Element) Element { return x.(Element) }

func normalize(e Element) Element {
	if e.Abs.Sign() == 0 {
		e.Neg = false
	}
	return e
}

// Ring is the sign-magnitude big-integer ring.
type Ring struct{}

// RING is the canonical Ring instance.
var RING = Ring{}

func (Ring) Zero() ring.Element { return Element{Neg: false, Abs: new(big.Int)} }
func (Ring) One() ring.Element  { return Element{Neg: false, Abs: big.NewInt(1)} }
func (r Ring) NegOne() ring.Element {
	return r.Negate(r.One())
}

func (Ring) FromInt(value int32) ring.Element {
	neg := value < 0
	abs := int64(value)
	if neg {
		abs = -abs
	}
	return Element{Neg: neg, Abs: big.NewInt(abs)}
}

// FromUint64 wraps an unsigned 64-bit value as a non-negative Element.
func FromUint64(v uint64) ring.Element {
	return Element{Neg: false, Abs: new(big.Int).SetUint64(v)}
}

// FromBigInt wraps a signed *big.Int into the sign-magnitude representation.
func FromBigInt(v *big.Int) ring.Element {
	abs := new(big.Int).Abs(v)
	return normalize(Element{Neg: v.Sign() < 0, Abs: abs})
}

// ToBigInt converts back to a signed *big.Int.
func ToBigInt(x ring.Element) *big.Int {
	e := el(x)
	v := new(big.Int).Set(e.Abs)
	if e.Neg {
		v.Neg(v)
	}
	return v
}

func (r Ring) Add(lhs, rhs ring.Element) ring.Element {
	a, b := el(lhs), el(rhs)
	if a.Neg == b.Neg {
		return Element{Neg: a.Neg, Abs: new(big.Int).Add(a.Abs, b.Abs)}
	}
	switch a.Abs.Cmp(b.Abs) {
	case -1:
		return normalize(Element{Neg: b.Neg, Abs: new(big.Int).Sub(b.Abs, a.Abs)})
	case 0:
		return Element{Neg: false, Abs: new(big.Int)}
	default:
		return normalize(Element{Neg: a.Neg, Abs: new(big.Int).Sub(a.Abs, b.Abs)})
	}
}

func (r Ring) Negate(value ring.Element) ring.Element {
	e := el(value)
	return normalize(Element{Neg: !e.Neg, Abs: e.Abs})
}

func (r Ring) Sub(lhs, rhs ring.Element) ring.Element {
	return r.Add(lhs, r.Negate(rhs))
}

func (Ring) Mul(lhs, rhs ring.Element) ring.Element {
	a, b := el(lhs), el(rhs)
	return normalize(Element{Neg: a.Neg != b.Neg, Abs: new(big.Int).Mul(a.Abs, b.Abs)})
}

func (r Ring) MulInt(lhs ring.Element, rhs int32) ring.Element {
	return r.Mul(lhs, r.FromInt(rhs))
}

func (Ring) EqEl(lhs, rhs ring.Element) bool {
	a, b := el(lhs), el(rhs)
	return a.Neg == b.Neg && a.Abs.Cmp(b.Abs) == 0
}

func (Ring) IsZero(value ring.Element) bool { return el(value).Abs.Sign() == 0 }
func (Ring) IsOne(value ring.Element) bool {
	e := el(value)
	return !e.Neg && e.Abs.Cmp(big.NewInt(1)) == 0
}
func (Ring) IsNegOne(value ring.Element) bool {
	e := el(value)
	return e.Neg && e.Abs.Cmp(big.NewInt(1)) == 0
}

func (Ring) CloneEl(value ring.Element) ring.Element {
	e := el(value)
	return Element{Neg: e.Neg, Abs: new(big.Int).Set(e.Abs)}
}

func (Ring) String(value ring.Element) string {
	e := el(value)
	if e.Neg {
		return "-" + e.Abs.String()
	}
	return e.Abs.String()
}

func (Ring) IsCommutative() bool { return true }
func (Ring) IsNoetherian() bool  { return true }

func (Ring) IsUnit(value ring.Element) bool {
	e := el(value)
	return e.Abs.Cmp(big.NewInt(1)) == 0
}

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

// EuclideanDivRem divides rounding towards zero, so the remainder carries
// the sign of the dividend (or is zero).
func (Ring) EuclideanDivRem(lhs, rhs ring.Element) (ring.Element, ring.Element) {
	a, b := el(lhs), el(rhs)
	if b.Abs.Sign() == 0 {
		panic("bigint: division by zero")
	}
	q, rem := new(big.Int).QuoRem(a.Abs, b.Abs, new(big.Int))
	quo := normalize(Element{Neg: a.Neg != b.Neg, Abs: q})
	remEl := normalize(Element{Neg: a.Neg, Abs: rem})
	return quo, remEl
}

func (r Ring) EuclideanDiv(lhs, rhs ring.Element) ring.Element {
	q, _ := r.EuclideanDivRem(lhs, rhs)
	return q
}

func (Ring) EuclideanDeg(value ring.Element) int64 {
	e := el(value)
	if !e.Abs.IsInt64() {
		return -1
	}
	v := e.Abs.Int64()
	return v
}

func (Ring) Compare(lhs, rhs ring.Element) int {
	a, b := el(lhs), el(rhs)
	if a.Abs.Sign() == 0 && b.Abs.Sign() == 0 {
		return 0
	}
	switch {
	case a.Neg && !b.Neg:
		return -1
	case !a.Neg && b.Neg:
		return 1
	case !a.Neg && !b.Neg:
		return a.Abs.Cmp(b.Abs)
	default: // both negative
		return b.Abs.Cmp(a.Abs)
	}
}

func (Ring) IsNeg(value ring.Element) bool { return el(value).Neg }

func (Ring) ToFloatApprox(value ring.Element) float64 {
	e := el(value)
	f := new(big.Float).SetInt(e.Abs)
	v, _ := f.Float64()
	if e.Neg {
		v = -v
	}
	return v
}

func (Ring) FromFloatApprox(value float64) (ring.Element, bool) {
	bf := new(big.Float).SetFloat64(value)
	bi, _ := bf.Int(nil)
	return FromBigInt(bi), true
}

func (Ring) AbsIsBitSet(value ring.Element, i int) bool {
	e := el(value)
	if i < 0 {
		return false
	}
	return e.Abs.Bit(i) == 1
}

func (Ring) AbsHighestSetBit(value ring.Element) (int, bool) {
	e := el(value)
	if e.Abs.Sign() == 0 {
		return 0, false
	}
	return e.Abs.BitLen() - 1, true
}

func (Ring) AbsLowestSetBit(value ring.Element) (int, bool) {
	e := el(value)
	if e.Abs.Sign() == 0 {
		return 0, false
	}
	words := e.Abs.Bits()
	for i, w := range words {
		if w != 0 {
			return i*bits.UintSize + bits.TrailingZeros(uint(w)), true
		}
	}
	panic("bigint: nonzero value with no set bit")
}

func (Ring) EuclideanDivPow2(value ring.Element, power int) ring.Element {
	e := el(value)
	return normalize(Element{Neg: e.Neg, Abs: new(big.Int).Rsh(e.Abs, uint(power))})
}

func (Ring) MulPow2(value ring.Element, power int) ring.Element {
	e := el(value)
	return Element{Neg: e.Neg, Abs: new(big.Int).Lsh(e.Abs, uint(power))}
}

func (Ring) GetUniformlyRandomBits(log2BoundExclusive int, rng func() uint64) ring.Element {
	if log2BoundExclusive <= 0 {
		return Element{Neg: false, Abs: new(big.Int)}
	}
	blocks := log2BoundExclusive / 64
	inBlock := log2BoundExclusive % 64
	words := make([]big.Word, 0, blocks+1)
	for i := 0; i < blocks; i++ {
		words = append(words, big.Word(rng()))
	}
	if inBlock != 0 {
		mask := (uint64(1) << uint(inBlock)) - 1
		words = append(words, big.Word(rng()&mask))
	}
	abs := new(big.Int).SetBits(words)
	return Element{Neg: false, Abs: abs}
}

var _ ring.EuclideanRing = Ring{}
var _ integer.Ring = Ring{}

// RoundedDiv and friends are available via the integer package's free
// functions operating over this Ring, e.g. integer.RoundedDiv(bigint.RING, a, b).

// Parse reads a signed integer in the given base (2-36), matching the
// original's DefaultBigIntRingEl::parse.
func Parse(s string, base int) (ring.Element, error) {
	neg := false
	switch {
	case len(s) > 0 && s[0] == '-':
		neg, s = true, s[1:]
	case len(s) > 0 && s[0] == '+':
		s = s[1:]
	}
	abs, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("bigint: invalid literal %q in base %d", s, base)
	}
	return normalize(Element{Neg: neg, Abs: abs}), nil
}
