package zn

import (
	"github.com/aklitzke/algebra-kernel/algorithms"
	"github.com/aklitzke/algebra-kernel/bigint"
	"github.com/aklitzke/algebra-kernel/integer"
	"github.com/aklitzke/algebra-kernel/ring"
)

// The Z/nZ additional API from spec.md §3/§6: a smallest-symmetric-lift, a
// primality-derived field test, a full element enumerator, a uniform
// sampler, and the modulus expressed as an element of an arbitrary integer
// ring (Size). Implemented once per concrete Z/nZ type rather than through
// a shared helper, since each type's representative differs (Fast64's is
// not fully reduced between operations, Barett's always is, RNS's is a
// residue tuple with no single "the" representative until ToTotal).

// SmallestLift returns the representative in (-n/2, n/2] for Fast64.
func (z Fast64) SmallestLift(value ring.Element) int64 {
	lift := z.SmallestPositiveLift(value)
	if lift > z.modulus/2 {
		lift -= z.modulus
	}
	return lift
}

// IsField reports whether the modulus is prime.
func (z Fast64) IsField() bool { return algorithms.IsPrime(z.modulus) }

// Elements enumerates every residue class [0, modulus).
func (z Fast64) Elements() []ring.Element {
	out := make([]ring.Element, z.modulus)
	for i := range out {
		out[i] = z.fromBounded(uint64(i))
	}
	return out
}

// RandomElement samples uniformly from [0, modulus) using rng as a source
// of uniform 64-bit values (see internal/xrand.Sampler.Uint64 for the
// deterministic, reproducible instantiation this module's tests use).
func (z Fast64) RandomElement(rng func() uint64) ring.Element {
	return z.fromBounded(uint64(integer.GetUniformlyRandom(integer.RING64, int64(z.modulus), rng).(int64)))
}

// Size returns the modulus as an element of the given integer ring.
func (z Fast64) Size(intRing integer.Ring) ring.Element {
	return int64ToIntRing(intRing, z.modulus)
}

// SmallestLift returns the base ring's representative shifted into
// (-modulus/2, modulus/2], using the base ring's own ordered arithmetic so
// this works for any integer.Ring, not just bigint/Static64.
func (z Barett) SmallestLift(value ring.Element) ring.Element {
	lift := z.SmallestPositiveLift(value)
	half := z.Int.EuclideanDivPow2(z.modulus, 1)
	if z.Int.Compare(lift, half) > 0 {
		lift = z.Int.Sub(lift, z.modulus)
	}
	return lift
}

// IsField reports whether the modulus is prime. The modulus is converted to
// an int64 for the trial-division test; Barett rings used in this module
// never carry moduli beyond what int64 can hold (RNS keeps its larger total
// modulus in bigint directly and has its own IsField).
func (z Barett) IsField() bool {
	return algorithms.IsPrime(intRingToInt64(z.Int, z.modulus))
}

// Elements enumerates [0, modulus) by repeated increment in the base ring.
func (z Barett) Elements() []ring.Element {
	n := intRingToInt64(z.Int, z.modulus)
	out := make([]ring.Element, n)
	cur := z.Int.Zero()
	one := z.Int.One()
	for i := range out {
		out[i] = BarettEl{v: z.Int.CloneEl(cur)}
		cur = z.Int.Add(cur, one)
	}
	return out
}

// RandomElement samples uniformly from [0, modulus) in the base ring.
func (z Barett) RandomElement(rng func() uint64) ring.Element {
	return BarettEl{v: integer.GetUniformlyRandom(z.Int, z.modulus, rng)}
}

// Size returns the modulus re-expressed as an element of intRing.
func (z Barett) Size(intRing integer.Ring) ring.Element {
	if intRing == z.Int {
		return z.Int.CloneEl(z.modulus)
	}
	return int64ToIntRing(intRing, intRingToInt64(z.Int, z.modulus))
}

// SmallestLift reconstructs the total-ring representative via ToTotal, then
// shifts it into the symmetric range the same way Barett.SmallestLift does
// (RNS has no single component that alone determines the sign).
func (z RNS) SmallestLift(value ring.Element) ring.Element {
	total := bigint.RING
	lift := z.ToTotal(value)
	half := total.EuclideanDivPow2(z.modulus, 1)
	if total.Compare(lift, half) > 0 {
		lift = total.Sub(lift, z.modulus)
	}
	return lift
}

// IsField reports whether the total modulus is prime - true only for a
// degenerate single-component RNS ring, since a product of two or more
// primes is never itself prime; kept for API parity with the other Z/nZ
// family members.
func (z RNS) IsField() bool {
	if len(z.components) == 1 {
		return z.components[0].IsField()
	}
	return false
}

// Elements enumerates every residue class by lifting [0, modulus) through
// FromTotal. Intended for small total moduli only (as with Fast64/Barett's
// Elements, this is a test/demonstration helper, not a hot path).
func (z RNS) Elements() []ring.Element {
	n := bigint.ToBigInt(z.modulus).Uint64()
	out := make([]ring.Element, n)
	for i := range out {
		out[i] = z.FromTotal(bigint.FromUint64(uint64(i)))
	}
	return out
}

// RandomElement samples each component ring independently; the residues are
// pairwise independent uniforms modulo coprime moduli, so this is exactly
// uniform over the total modulus by CRT.
func (z RNS) RandomElement(rng func() uint64) ring.Element {
	out := make([]ring.Element, z.numComponents())
	for i, c := range z.components {
		out[i] = c.RandomElement(rng)
	}
	return RNSEl{residues: out}
}

// Size returns the total modulus as an element of intRing.
func (z RNS) Size(intRing integer.Ring) ring.Element {
	if intRing == bigint.RING {
		return bigint.RING.CloneEl(z.modulus)
	}
	return int64ToIntRing(intRing, bigint.ToBigInt(z.modulus).Int64())
}

// int64ToIntRing builds n as an element of an arbitrary integer ring by
// shift-and-add over its bits, the generic analogue of the original's
// "map an i64 constant into any IntegerRing" helper used wherever a
// concrete Z/nZ needs to hand its modulus to a caller-chosen ring.
func int64ToIntRing(r integer.Ring, n int64) ring.Element {
	if r == integer.RING64 {
		return n
	}
	if r == integer.Ring(bigint.RING) {
		if n < 0 {
			return bigint.RING.Negate(bigint.FromUint64(uint64(-n)))
		}
		return bigint.FromUint64(uint64(n))
	}
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	acc := r.Zero()
	for i := 63; i >= 0; i-- {
		acc = r.MulPow2(acc, 1)
		if u&(uint64(1)<<uint(i)) != 0 {
			acc = r.Add(acc, r.One())
		}
	}
	if neg {
		acc = r.Negate(acc)
	}
	return acc
}

// intRingToInt64 is int64ToIntRing's inverse for the two concrete integer
// rings this module ever needs to read a modulus back out of.
func intRingToInt64(r integer.Ring, v ring.Element) int64 {
	if r == integer.RING64 {
		return v.(int64)
	}
	if r == integer.Ring(bigint.RING) {
		return bigint.ToBigInt(v).Int64()
	}
	neg := r.IsNeg(v)
	abs := v
	if neg {
		abs = r.Negate(abs)
	}
	var u int64
	highest, ok := r.AbsHighestSetBit(abs)
	if ok {
		for i := highest; i >= 0; i-- {
			u <<= 1
			if r.AbsIsBitSet(abs, i) {
				u |= 1
			}
		}
	}
	if neg {
		u = -u
	}
	return u
}
