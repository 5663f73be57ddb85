// Package zn implements the Z/nZ family of rings: Fast64 (a heavily
// optimized fixed 64-bit modulus using 128-bit Barett-style reduction,
// moduli up to 41 bits), Barett (generic Barett reduction over any integer
// ring), and RNS (residue number system composition of several coprime
// component rings with a CRT-based total ring).
package zn

import (
	"fmt"
	"math/big"

	"github.com/aklitzke/algebra-kernel/ring"
)

// bitshift is the number of bits to which 1/modulus is approximated:
// floor(2^bitshift / modulus). 128-bit intermediate products (modeled here
// with math/big, since Go has no native uint128) must stay below this.
const bitshift = 84

// MaxModulusBits is the largest modulus bit-width Fast64 supports. One bit
// is sacrificed relative to bitshift/2 so that negate (repr_bound - value)
// stays within repr_bound.
const MaxModulusBits = bitshift/2 - 1

// Fast64El is an element of a Fast64 ring: a representative that may grow
// up to (and including) the ring's repr_bound, not just below the modulus.
type Fast64El uint64

// Fast64 is Z/nZ for n up to 41 bits, using precomputed 128-bit approximate
// reciprocals for reduction instead of hardware division.
type Fast64 struct {
	modulus     int64
	invModulus  *big.Int // floor(2^bitshift / modulus), fits comfortably in 128 bits
	reprBound   uint64
}

// NewFast64 builds the Fast64 ring for the given modulus, which must satisfy
// 1 < modulus < 2^41.
func NewFast64(modulus uint64) Fast64 {
	if modulus <= 1 {
		panic("zn: Fast64 modulus must be > 1")
	}
	shifted := new(big.Int).Lsh(big.NewInt(1), bitshift)
	invModulus := new(big.Int).Div(shifted, new(big.Int).SetUint64(modulus))

	leadingZeros := 128 - invModulus.BitLen()
	reprBound := uint64(1) << uint(leadingZeros/2)
	reprBound -= reprBound % modulus

	if reprBound < 2*modulus {
		panic("zn: Fast64 modulus too large for repr_bound invariant")
	}
	reprBoundSq := new(big.Int).Mul(new(big.Int).SetUint64(reprBound), new(big.Int).SetUint64(reprBound))
	if reprBoundSq.BitLen() > bitshift || (reprBoundSq.BitLen() == bitshift && reprBoundSq.Bit(bitshift) != 0) {
		panic("zn: Fast64 repr_bound^2 must fit in the bitshift budget")
	}
	if reprBound < (1 << 16) {
		panic("zn: Fast64 repr_bound must be at least 2^16")
	}
	return Fast64{modulus: int64(modulus), invModulus: invModulus, reprBound: reprBound}
}

func (z Fast64) modulusU64() uint64 { return uint64(z.modulus) }

// ReprBound exposes the representative bound, used by Fastmul and by the
// RNS ring when computing CRT unit vectors over a Fast64 component.
func (z Fast64) ReprBound() uint64 { return z.reprBound }

func (z Fast64) potentialReduce(val uint64) uint64 {
	if val > z.reprBound {
		return z.boundedReduce(new(big.Int).SetUint64(val))
	}
	return val
}

// boundedReduce reduces a value known to be < 2^bitshift (and <=
// repr_bound^2) to something below 2*modulus, congruent mod modulus.
func (z Fast64) boundedReduce(value *big.Int) uint64 {
	quotient := new(big.Int).Mul(value, z.invModulus)
	quotient.Rsh(quotient, bitshift)
	result := new(big.Int).Mul(quotient, big.NewInt(z.modulus))
	result.Sub(value, result)
	return result.Uint64()
}

func (z Fast64) completeReduce(value *big.Int) uint64 {
	result := z.boundedReduce(value)
	if result >= z.modulusU64() {
		result -= z.modulusU64()
	}
	return result
}

// fromBounded wraps a value already known to be <= repr_bound. Used
// internally wherever an operation's result is proven in-bound by
// construction, matching the original's debug-assert-only contract.
func (z Fast64) fromBounded(value uint64) ring.Element { return Fast64El(value) }

func f64(x ring.Element) uint64 { return uint64(x.(Fast64El)) }

func (z Fast64) Zero() ring.Element    { return Fast64El(0) }
func (z Fast64) One() ring.Element     { return Fast64El(1) }
func (z Fast64) NegOne() ring.Element  { return Fast64El(z.reprBound - 1) }

func (z Fast64) FromInt(value int32) ring.Element {
	if value < 0 {
		return z.Negate(z.fromBounded(z.potentialReduce(uint64(-int64(value)))))
	}
	return z.fromBounded(z.potentialReduce(uint64(value)))
}

func (z Fast64) Add(lhs, rhs ring.Element) ring.Element {
	sum := f64(lhs) + f64(rhs)
	return Fast64El(z.potentialReduce(sum))
}

func (z Fast64) Sub(lhs, rhs ring.Element) ring.Element {
	return z.Add(lhs, z.Negate(rhs))
}

func (z Fast64) Negate(value ring.Element) ring.Element {
	return Fast64El(z.reprBound - f64(value))
}

func (z Fast64) Mul(lhs, rhs ring.Element) ring.Element {
	product := new(big.Int).Mul(new(big.Int).SetUint64(f64(lhs)), new(big.Int).SetUint64(f64(rhs)))
	return Fast64El(z.boundedReduce(product))
}

func (z Fast64) MulInt(lhs ring.Element, rhs int32) ring.Element {
	return z.Mul(lhs, z.FromInt(rhs))
}

func (z Fast64) EqEl(lhs, rhs ring.Element) bool {
	a, b := f64(lhs), f64(rhs)
	if a >= b {
		return z.IsZero(z.fromBounded(a - b))
	}
	return z.IsZero(z.fromBounded(b - a))
}

func (z Fast64) IsZero(value ring.Element) bool {
	return z.completeReduce(new(big.Int).SetUint64(f64(value))) == 0
}

func (z Fast64) IsOne(value ring.Element) bool {
	v := f64(value)
	return v != 0 && z.IsZero(z.fromBounded(v-1))
}

func (z Fast64) IsNegOne(value ring.Element) bool {
	v := f64(value)
	return z.IsZero(z.fromBounded(v + 1))
}

func (z Fast64) CloneEl(value ring.Element) ring.Element { return value }

func (z Fast64) String(value ring.Element) string {
	return fmt.Sprintf("%d", z.completeReduce(new(big.Int).SetUint64(f64(value))))
}

func (z Fast64) IsCommutative() bool { return true }
func (z Fast64) IsNoetherian() bool  { return true }

// SmallestPositiveLift returns the canonical representative in [0, modulus).
func (z Fast64) SmallestPositiveLift(value ring.Element) int64 {
	return int64(z.completeReduce(new(big.Int).SetUint64(f64(value))))
}

func (z Fast64) Modulus() int64 { return z.modulus }

// eeaInt64 returns (gcd, s) with s*a + t*b = gcd for some t, via the
// standard iterative extended Euclidean algorithm.
func eeaInt64(a, b int64) (gcd, s int64) {
	oldR, r := a, b
	oldS, newS := int64(1), int64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, newS = newS, oldS-q*newS
	}
	return oldR, oldS
}

// IsUnit reports whether value is invertible mod the modulus, i.e.
// gcd(value, modulus) == 1.
func (z Fast64) IsUnit(value ring.Element) bool {
	g, _ := eeaInt64(int64(z.SmallestPositiveLift(value)), z.modulus)
	if g < 0 {
		g = -g
	}
	return g == 1
}

// CheckedLeftDiv returns x with rhs*x = lhs mod the modulus, via the
// extended Euclidean algorithm, when gcd(rhs, modulus) divides lhs.
func (z Fast64) CheckedLeftDiv(lhs, rhs ring.Element) (ring.Element, bool) {
	if z.IsZero(rhs) {
		if z.IsZero(lhs) {
			return z.Zero(), true
		}
		return nil, false
	}
	r := z.SmallestPositiveLift(rhs)
	g, s := eeaInt64(r, z.modulus)
	if g < 0 {
		g, s = -g, -s
	}
	l := z.SmallestPositiveLift(lhs)
	if l%g != 0 {
		return nil, false
	}
	quotientFactor := l / g
	inv := s
	result := new(big.Int).Mul(big.NewInt(quotientFactor), big.NewInt(inv))
	result.Mod(result, big.NewInt(z.modulus))
	return z.fromBounded(result.Uint64()), true
}

var _ ring.Ring = Fast64{}
var _ ring.DivisibilityRing = Fast64{}
