package zn

import (
	"math/bits"

	"github.com/aklitzke/algebra-kernel/bigint"
	"github.com/aklitzke/algebra-kernel/homomorphism"
	"github.com/aklitzke/algebra-kernel/integer"
	"github.com/aklitzke/algebra-kernel/ring"
)

// This file wires up the canonical maps spec.md §4.1/§4.4 requires: every
// Z/nZ family member maps in from the integer rings (Static64, bigint) -
// Fast64 via the three-branch dispatcher (mapInFromInt below), Barett via
// Project and RNS via FromTotal - and the three family
// members map to and from each other when their moduli agree, always by
// pivoting through bigint.RING - Barett's own base ring whenever it equals
// bigint.RING, and RNS's total ring always. Restricting the Barett side of
// these cross-family isomorphisms to Barett[bigint.RING] (rather than an
// arbitrary integer.Ring) is this port's resolution of spec.md §9's
// "implementors decide which maps are canonical": the corpus never needs a
// Fast64/RNS iso with a Barett built over anything other than the
// arbitrary-precision total ring, so that is the only pivot implemented.
// Because every cross-family map is defined as exactly one hop through
// bigint, the commuting-diagrams law (spec.md §4.1) holds trivially: there
// is only one path between any two of these three rings.

// mapInFromInt implements spec.md §4.1's three-branch integer-to-Z/nZ
// dispatcher: direct lift when abs(x) fits under the modulus's own bit
// budget, a bounded reduction when it fits under the codomain's bounded
// budget, and a full Euclidean reduction in the source ring otherwise.
// boundedBits <= 0 means the codomain offers no bounded-reduce fast path
// (e.g. a generic Barett ring), so every over-budget input takes the slow
// path.
func mapInFromInt(
	src integer.Ring, x ring.Element,
	modulusBitBudget, boundedBits int,
	lift func(ring.Element) ring.Element,
	boundedReduce func(ring.Element) ring.Element,
	fullReduce func(ring.Element) ring.Element,
) ring.Element {
	neg := src.IsNeg(x)
	abs := x
	if neg {
		abs = src.Negate(abs)
	}
	highest, ok := src.AbsHighestSetBit(abs)
	bitlen := 0
	if ok {
		bitlen = highest + 1
	}
	var result ring.Element
	switch {
	case bitlen < modulusBitBudget:
		result = lift(abs)
	case boundedBits > 0 && bitlen <= boundedBits:
		result = boundedReduce(abs)
	default:
		result = fullReduce(abs)
	}
	return result
}

func modulusBitBudget(modulus int64) int {
	n := uint64(modulus)
	budget := 0
	for (int64(1) << uint(budget)) < int64(n) {
		budget++
	}
	return budget
}

// HasCanonicalHom advertises Fast64 <- {Fast64, Static64, bigint.Ring}.
func (z Fast64) HasCanonicalHom(from ring.Ring) (any, bool) {
	switch from.(type) {
	case Fast64:
		return struct{}{}, true
	case integer.Static64, bigint.Ring:
		return struct{}{}, true
	}
	return nil, false
}

func (z Fast64) MapIn(from ring.Ring, x ring.Element, witness any) ring.Element {
	switch src := from.(type) {
	case Fast64:
		return z.fromBounded(z.potentialReduce(f64(x)))
	case integer.Static64:
		return z.mapInGeneric(src, x)
	case bigint.Ring:
		return z.mapInGeneric(src, x)
	case Barett:
		return z.mapInGeneric(src.Int, src.SmallestPositiveLift(x))
	case RNS:
		return z.mapInGeneric(bigint.RING, src.ToTotal(x))
	}
	panic("zn: Fast64.MapIn called with unsupported source ring")
}

func (z Fast64) mapInGeneric(src integer.Ring, x ring.Element) ring.Element {
	budget := modulusBitBudget(z.modulus)
	neg := src.IsNeg(x)
	// boundedReduce is exact below repr_bound^2, and the closures below pass
	// the value through int64, so the bounded branch stops at 63 bits.
	boundedBits := 2 * (bits.Len64(z.reprBound) - 1)
	if boundedBits > 63 {
		boundedBits = 63
	}
	v := mapInFromInt(src, x, budget, boundedBits,
		func(abs ring.Element) ring.Element {
			return z.fromBounded(uint64(intRingToInt64(src, abs)))
		},
		func(abs ring.Element) ring.Element {
			return z.fromBounded(z.potentialReduce(uint64(intRingToInt64(src, abs))))
		},
		func(abs ring.Element) ring.Element {
			modAsSrc := int64ToIntRing(src, z.modulus)
			_, rem := src.EuclideanDivRem(abs, modAsSrc)
			return z.fromBounded(uint64(intRingToInt64(src, rem)))
		},
	)
	if neg {
		v = z.Negate(v)
	}
	return v
}

// HasCanonicalIso advertises Fast64 <-> {Barett[bigint.RING], RNS} of equal
// modulus.
func (z Fast64) HasCanonicalIso(from ring.Ring) (any, bool) {
	switch src := from.(type) {
	case Barett:
		if _, ok := src.Int.(bigint.Ring); ok && intRingToInt64(src.Int, src.modulus) == z.modulus {
			return struct{}{}, true
		}
	case RNS:
		if bigint.ToBigInt(src.modulus).Int64() == z.modulus {
			return struct{}{}, true
		}
	}
	return nil, false
}

// MapOut is the inverse of MapIn: x is a Fast64 element, returned re-expressed
// in whichever domain ring `from` names.
func (z Fast64) MapOut(from ring.Ring, x ring.Element, witness any) ring.Element {
	lift := z.SmallestPositiveLift(x)
	switch dst := from.(type) {
	case Barett:
		return BarettEl{v: int64ToIntRing(dst.Int, lift)}
	case RNS:
		return dst.FromTotal(int64ToIntRing(bigint.RING, lift))
	}
	panic("zn: Fast64.MapOut called with unsupported target ring")
}

var _ homomorphism.CanHomFrom = Fast64{}
var _ homomorphism.CanonicalIso = Fast64{}

// HasCanonicalHom advertises Barett <- {Barett (matching base+modulus),
// Static64, bigint.Ring (when the Barett's own base is bigint), Fast64,
// RNS (the last two only when the Barett's base is bigint.RING)}.
func (z Barett) HasCanonicalHom(from ring.Ring) (any, bool) {
	switch src := from.(type) {
	case Barett:
		return struct{}{}, src.Int == z.Int && z.Int.EqEl(src.modulus, z.modulus)
	case integer.Static64, bigint.Ring:
		return struct{}{}, from == z.Int
	case Fast64:
		_, isBigint := z.Int.(bigint.Ring)
		return struct{}{}, isBigint && src.modulus == intRingToInt64(z.Int, z.modulus)
	case RNS:
		_, isBigint := z.Int.(bigint.Ring)
		return struct{}{}, isBigint && bigint.ToBigInt(src.modulus).Cmp(bigint.ToBigInt(z.modulus)) == 0
	}
	return nil, false
}

func (z Barett) MapIn(from ring.Ring, x ring.Element, witness any) ring.Element {
	switch src := from.(type) {
	case Barett:
		return z.Project(z.Int.CloneEl(be(x).v))
	case integer.Static64, bigint.Ring:
		return z.Project(x)
	case Fast64:
		return z.Project(int64ToIntRing(z.Int, int64(src.SmallestPositiveLift(x))))
	case RNS:
		return z.Project(src.ToTotal(x))
	}
	panic("zn: Barett.MapIn called with unsupported source ring")
}

// HasCanonicalIso advertises Barett[bigint.RING] <-> {Fast64, RNS}.
func (z Barett) HasCanonicalIso(from ring.Ring) (any, bool) {
	if _, isBigint := z.Int.(bigint.Ring); !isBigint {
		return nil, false
	}
	switch src := from.(type) {
	case Fast64:
		return struct{}{}, src.modulus == intRingToInt64(z.Int, z.modulus)
	case RNS:
		return struct{}{}, bigint.ToBigInt(src.modulus).Cmp(bigint.ToBigInt(z.modulus)) == 0
	}
	return nil, false
}

// MapOut is the inverse of MapIn: x is a Barett element, returned
// re-expressed in whichever domain ring `from` names. HasCanonicalIso only
// advertises these branches when z.Int is bigint.RING, so lift (an element
// of z.Int) is always safe to hand to Fast64.fromBounded/RNS.FromTotal here.
func (z Barett) MapOut(from ring.Ring, x ring.Element, witness any) ring.Element {
	lift := z.SmallestPositiveLift(x)
	switch dst := from.(type) {
	case Fast64:
		return dst.fromBounded(uint64(intRingToInt64(z.Int, lift)))
	case RNS:
		return dst.FromTotal(lift)
	}
	panic("zn: Barett.MapOut called with unsupported target ring")
}

var _ homomorphism.CanHomFrom = Barett{}
var _ homomorphism.CanonicalIso = Barett{}

// HasCanonicalHom advertises RNS <- {RNS (matching components), Fast64
// (single-component RNS only), Barett[bigint.RING], Static64, bigint.Ring}.
func (z RNS) HasCanonicalHom(from ring.Ring) (any, bool) {
	switch src := from.(type) {
	case RNS:
		if len(src.components) != len(z.components) {
			return nil, false
		}
		for i := range z.components {
			if src.components[i].modulus != z.components[i].modulus {
				return nil, false
			}
		}
		return struct{}{}, true
	case Fast64:
		return struct{}{}, len(z.components) == 1 && z.components[0].modulus == src.modulus
	case Barett:
		_, isBigint := src.Int.(bigint.Ring)
		return struct{}{}, isBigint && bigint.ToBigInt(z.modulus).Cmp(bigint.ToBigInt(barettModulusAsBigint(src))) == 0
	case integer.Static64, bigint.Ring:
		return struct{}{}, true
	}
	return nil, false
}

// barettModulusAsBigint re-exposes a Barett's modulus as a *big.Int-backed
// bigint element for comparison against RNS's total modulus, without
// truncating through int64 the way intRingToInt64 would for a Barett whose
// base genuinely isn't bigint (callers only reach this once isBigint holds).
func barettModulusAsBigint(z Barett) ring.Element { return z.Int.CloneEl(z.modulus) }

func (z RNS) MapIn(from ring.Ring, x ring.Element, witness any) ring.Element {
	switch src := from.(type) {
	case RNS:
		out := make([]ring.Element, len(z.components))
		for i, c := range z.components {
			out[i] = c.fromBounded(f64(src.AtComponent(x, i)))
		}
		return RNSEl{residues: out}
	case Fast64:
		return RNSEl{residues: []ring.Element{z.components[0].fromBounded(f64(x))}}
	case Barett:
		return z.FromTotal(z.projectBarettToTotal(src, x))
	case integer.Static64:
		return z.FromTotal(int64ToIntRing(bigint.RING, intRingToInt64(integer.RING64, x)))
	case bigint.Ring:
		return z.FromTotal(x)
	}
	panic("zn: RNS.MapIn called with unsupported source ring")
}

// projectBarettToTotal converts a Barett element (over any base) into the bigint
// total-ring representative RNS.FromTotal expects, going through the
// Barett's own SmallestPositiveLift and then this package's int64ToIntRing
// bridge when the base isn't already bigint.
func (z RNS) projectBarettToTotal(src Barett, x ring.Element) ring.Element {
	lift := src.SmallestPositiveLift(x)
	if _, ok := src.Int.(bigint.Ring); ok {
		return lift
	}
	return int64ToIntRing(bigint.RING, intRingToInt64(src.Int, lift))
}

// HasCanonicalIso advertises RNS <-> {Fast64 (single component), Barett
// [bigint.RING] of equal modulus}.
func (z RNS) HasCanonicalIso(from ring.Ring) (any, bool) {
	switch src := from.(type) {
	case Fast64:
		return struct{}{}, len(z.components) == 1 && z.components[0].modulus == src.modulus
	case Barett:
		_, isBigint := src.Int.(bigint.Ring)
		return struct{}{}, isBigint && bigint.ToBigInt(z.modulus).Cmp(bigint.ToBigInt(barettModulusAsBigint(src))) == 0
	}
	return nil, false
}

// MapOut is the inverse of MapIn: x is an RNS element, returned re-expressed
// in whichever domain ring `from` names. HasCanonicalIso only advertises the
// Barett branch when that Barett's base is bigint.RING, so wrapping the
// total directly as a BarettEl is safe here.
func (z RNS) MapOut(from ring.Ring, x ring.Element, witness any) ring.Element {
	total := z.ToTotal(x)
	switch dst := from.(type) {
	case Fast64:
		return dst.fromBounded(uint64(bigint.ToBigInt(total).Int64()))
	case Barett:
		return BarettEl{v: total}
	}
	panic("zn: RNS.MapOut called with unsupported target ring")
}

var _ homomorphism.CanHomFrom = RNS{}
var _ homomorphism.CanonicalIso = RNS{}
