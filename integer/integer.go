// Package integer defines the contract for rings isomorphic to Z: ordering,
// bit access on the magnitude (absolute value), float approximation,
// rounded/power-of-two division, and uniform random sampling. It also
// provides a fixed-width int64 implementation used throughout this module
// for small exponents, bit counts, and moduli that fit comfortably in a
// machine word.
package integer

import (
	"fmt"
	"math/bits"

	"github.com/aklitzke/algebra-kernel/ring"
)

// Ring is an EuclideanRing that is additionally ordered, supports bit
// inspection on the magnitude of its elements, and can produce uniformly
// random elements below a bound. Euclidean division on an integer ring
// always rounds towards zero.
type Ring interface {
	ring.EuclideanRing

	Compare(lhs, rhs ring.Element) int
	IsNeg(value ring.Element) bool

	ToFloatApprox(value ring.Element) float64
	FromFloatApprox(value float64) (ring.Element, bool)

	AbsIsBitSet(value ring.Element, i int) bool
	AbsHighestSetBit(value ring.Element) (int, bool)
	AbsLowestSetBit(value ring.Element) (int, bool)

	EuclideanDivPow2(value ring.Element, power int) ring.Element
	MulPow2(value ring.Element, power int) ring.Element

	// GetUniformlyRandomBits returns a uniformly random integer in
	// [0, 2^log2BoundExclusive - 1], assuming rng supplies uniform random
	// 64-bit values.
	GetUniformlyRandomBits(log2BoundExclusive int, rng func() uint64) ring.Element
}

// RoundedDiv computes the rounded division of lhs by rhs, rounding ties away
// from zero. This matches the original's IntegerRing::rounded_div default
// implementation.
func RoundedDiv(r Ring, lhs, rhs ring.Element) ring.Element {
	rhsHalf := rhs
	if r.IsNeg(rhsHalf) {
		rhsHalf = r.Negate(rhsHalf)
	}
	rhsHalf = r.EuclideanDivPow2(rhsHalf, 1)
	if r.IsNeg(lhs) {
		return r.EuclideanDiv(r.Sub(lhs, rhsHalf), rhs)
	}
	return r.EuclideanDiv(r.Add(lhs, rhsHalf), rhs)
}

// PowerOfTwo returns 2^power as an element of r.
func PowerOfTwo(r Ring, power int) ring.Element {
	return r.MulPow2(r.One(), power)
}

// AbsLog2Ceil returns ceil(log2(abs(value))), or false for zero.
func AbsLog2Ceil(r Ring, value ring.Element) (int, bool) {
	highest, ok := r.AbsHighestSetBit(value)
	if !ok {
		return 0, false
	}
	lowest, _ := r.AbsLowestSetBit(value)
	if lowest == highest {
		return highest, true
	}
	return highest + 1, true
}

// GetUniformlyRandom returns a uniformly random element of r in
// [0, boundExclusive), rejection-sampling against the bit-width of the bound.
func GetUniformlyRandom(r Ring, boundExclusive ring.Element, rng func() uint64) ring.Element {
	if r.Compare(boundExclusive, r.Zero()) <= 0 {
		panic("integer: GetUniformlyRandom requires a strictly positive bound")
	}
	log2Ceil, _ := AbsHighestSetBitOrPanic(r, boundExclusive)
	log2Ceil++
	result := r.GetUniformlyRandomBits(log2Ceil, rng)
	for r.Compare(result, boundExclusive) >= 0 {
		result = r.GetUniformlyRandomBits(log2Ceil, rng)
	}
	return result
}

// AbsHighestSetBitOrPanic is AbsHighestSetBit but panics on zero, for callers
// that have already excluded that case.
func AbsHighestSetBitOrPanic(r Ring, value ring.Element) (int, bool) {
	bit, ok := r.AbsHighestSetBit(value)
	if !ok {
		panic("integer: highest set bit of zero is undefined")
	}
	return bit, ok
}

// Static64 is the integer ring backed by Go's native signed 64-bit
// arithmetic: the analogue of the original's StaticRing<i64>, used wherever
// a modulus, exponent, or index is known to fit in a machine word.
type Static64 struct{}

// RING64 is the canonical Static64 instance; comparable by value like every
// ring in this module.
var RING64 = Static64{}

func (Static64) Zero() ring.Element                          { return int64(0) }
func (Static64) One() ring.Element                            { return int64(1) }
func (Static64) NegOne() ring.Element                          { return int64(-1) }
func (Static64) FromInt(value int32) ring.Element              { return int64(value) }
func (Static64) Add(lhs, rhs ring.Element) ring.Element        { return lhs.(int64) + rhs.(int64) }
func (Static64) Sub(lhs, rhs ring.Element) ring.Element        { return lhs.(int64) - rhs.(int64) }
func (Static64) Negate(value ring.Element) ring.Element        { return -value.(int64) }
func (Static64) Mul(lhs, rhs ring.Element) ring.Element        { return lhs.(int64) * rhs.(int64) }
func (Static64) MulInt(lhs ring.Element, rhs int32) ring.Element {
	return lhs.(int64) * int64(rhs)
}
func (Static64) EqEl(lhs, rhs ring.Element) bool  { return lhs.(int64) == rhs.(int64) }
func (Static64) IsZero(value ring.Element) bool   { return value.(int64) == 0 }
func (Static64) IsOne(value ring.Element) bool    { return value.(int64) == 1 }
func (Static64) IsNegOne(value ring.Element) bool { return value.(int64) == -1 }
func (Static64) CloneEl(value ring.Element) ring.Element { return value.(int64) }
func (Static64) String(value ring.Element) string { return fmt.Sprintf("%d", value.(int64)) }
func (Static64) IsCommutative() bool { return true }
func (Static64) IsNoetherian() bool  { return true }

func (Static64) IsUnit(value ring.Element) bool {
	v := value.(int64)
	return v == 1 || v == -1
}

func (r Static64) CheckedLeftDiv(lhs, rhs ring.Element) (ring.Element, bool) {
	a, b := lhs.(int64), rhs.(int64)
	if b == 0 {
		if a == 0 {
			return int64(0), true
		}
		return nil, false
	}
	if a%b != 0 {
		return nil, false
	}
	return a / b, true
}

func (Static64) EuclideanDiv(lhs, rhs ring.Element) ring.Element {
	return lhs.(int64) / rhs.(int64)
}

func (Static64) EuclideanDivRem(lhs, rhs ring.Element) (ring.Element, ring.Element) {
	a, b := lhs.(int64), rhs.(int64)
	return a / b, a % b
}

func (Static64) EuclideanDeg(value ring.Element) int64 {
	v := value.(int64)
	if v < 0 {
		return -v
	}
	return v
}

func (Static64) Compare(lhs, rhs ring.Element) int {
	a, b := lhs.(int64), rhs.(int64)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (Static64) IsNeg(value ring.Element) bool { return value.(int64) < 0 }

func (Static64) ToFloatApprox(value ring.Element) float64 { return float64(value.(int64)) }

func (Static64) FromFloatApprox(value float64) (ring.Element, bool) {
	return int64(value), true
}

func (Static64) AbsIsBitSet(value ring.Element, i int) bool {
	v := value.(int64)
	if v < 0 {
		v = -v
	}
	if i < 0 || i >= 64 {
		return false
	}
	return uint64(v)&(uint64(1)<<uint(i)) != 0
}

func (Static64) AbsHighestSetBit(value ring.Element) (int, bool) {
	v := value.(int64)
	if v < 0 {
		v = -v
	}
	if v == 0 {
		return 0, false
	}
	return bits.Len64(uint64(v)) - 1, true
}

func (Static64) AbsLowestSetBit(value ring.Element) (int, bool) {
	v := value.(int64)
	if v < 0 {
		v = -v
	}
	if v == 0 {
		return 0, false
	}
	return bits.TrailingZeros64(uint64(v)), true
}

func (Static64) EuclideanDivPow2(value ring.Element, power int) ring.Element {
	v := value.(int64)
	neg := v < 0
	if neg {
		v = -v
	}
	v = v >> uint(power)
	if neg {
		v = -v
	}
	return v
}

func (Static64) MulPow2(value ring.Element, power int) ring.Element {
	return value.(int64) << uint(power)
}

func (Static64) GetUniformlyRandomBits(log2BoundExclusive int, rng func() uint64) ring.Element {
	if log2BoundExclusive <= 0 {
		return int64(0)
	}
	raw := rng()
	if log2BoundExclusive < 64 {
		raw &= (uint64(1) << uint(log2BoundExclusive)) - 1
	}
	return int64(raw)
}
