package zn

import (
	"math/big"

	"github.com/aklitzke/algebra-kernel/algorithms"
	"github.com/aklitzke/algebra-kernel/bigint"
	"github.com/aklitzke/algebra-kernel/ring"
)

// RNS is Z/nZ for composite n = m1 * ... * mr, represented as a residue
// number system: a value is stored as its residues modulo each component
// Fast64 ring, plus (lazily, via ToTotal/FromTotal) its representative in
// the big-integer total ring. unitVectors holds the CRT idempotents
// u_i = (n/m_i)^(m_i - 1) mod n, precomputed so components combine into a
// total-ring representative with one multiply-accumulate per component.
type RNS struct {
	components  []Fast64
	total       bigint.Ring
	modulus     ring.Element // product of all component moduli, in bigint
	unitVectors []ring.Element // elements of the total ring
}

// RNSEl is a tuple of residues, one per component ring, in the same order
// as RNS.components.
type RNSEl struct {
	residues []ring.Element
}

// NewRNSFromPrimes builds an RNS ring from a list of distinct primes. The
// unit vectors rely on Fermat's little theorem ((n/m_i)^(m_i-1) = 1 mod m_i),
// so a composite component modulus yields wrong ToTotal results even when
// the moduli are pairwise coprime.
func NewRNSFromPrimes(primes []uint64) RNS {
	components := make([]Fast64, len(primes))
	for i, p := range primes {
		components[i] = NewFast64(p)
	}
	return NewRNS(components)
}

// NewRNS builds the RNS ring over the given component rings, which must be
// pairwise coprime.
func NewRNS(components []Fast64) RNS {
	if len(components) == 0 {
		panic("zn: RNS requires at least one component ring")
	}
	bi := bigint.RING
	totalModulus := bi.One()
	for _, c := range components {
		totalModulus = bi.Mul(totalModulus, bigint.FromUint64(uint64(c.Modulus())))
	}
	for _, c := range components {
		cMod := bigint.FromUint64(uint64(c.Modulus()))
		rest, ok := bi.CheckedLeftDiv(totalModulus, cMod)
		if !ok {
			panic("zn: RNS modulus not divisible by component modulus")
		}
		if !bi.IsOne(algorithms.SignedGCD(bi, rest, cMod)) {
			panic("zn: RNS component moduli must be pairwise coprime")
		}
	}
	unitVectors := make([]ring.Element, len(components))
	for i, c := range components {
		cMod := bigint.FromUint64(uint64(c.Modulus()))
		rest, _ := bi.CheckedLeftDiv(totalModulus, cMod)
		exponent := uint64(c.Modulus() - 1)
		unitVectors[i] = bigint.FromBigInt(new(big.Int).Exp(bigint.ToBigInt(rest), new(big.Int).SetUint64(exponent), bigint.ToBigInt(totalModulus)))
	}
	return RNS{components: components, total: bi, modulus: totalModulus, unitVectors: unitVectors}
}

func rn(x ring.Element) RNSEl { return x.(RNSEl) }

func (z RNS) numComponents() int { return len(z.components) }

// Component returns the i-th component ring.
func (z RNS) Component(i int) Fast64 { return z.components[i] }

// AtComponent returns the residue of value modulo the i-th component
// modulus.
func (z RNS) AtComponent(value ring.Element, i int) ring.Element {
	return rn(value).residues[i]
}

// FromCongruence builds an element from an explicit list of per-component
// residues, matching the original's from_congruence.
func (z RNS) FromCongruence(residues []ring.Element) ring.Element {
	if len(residues) != len(z.components) {
		panic("zn: RNS FromCongruence residue count mismatch")
	}
	out := make([]ring.Element, len(residues))
	copy(out, residues)
	return RNSEl{residues: out}
}

func (z RNS) elementwise(lhs, rhs RNSEl, op func(c Fast64, a, b ring.Element) ring.Element) RNSEl {
	out := make([]ring.Element, z.numComponents())
	for i, c := range z.components {
		out[i] = op(c, lhs.residues[i], rhs.residues[i])
	}
	return RNSEl{residues: out}
}

func (z RNS) Zero() ring.Element {
	out := make([]ring.Element, z.numComponents())
	for i, c := range z.components {
		out[i] = c.Zero()
	}
	return RNSEl{residues: out}
}

func (z RNS) One() ring.Element {
	out := make([]ring.Element, z.numComponents())
	for i, c := range z.components {
		out[i] = c.One()
	}
	return RNSEl{residues: out}
}

func (z RNS) NegOne() ring.Element { return z.Negate(z.One()) }

func (z RNS) FromInt(value int32) ring.Element {
	out := make([]ring.Element, z.numComponents())
	for i, c := range z.components {
		out[i] = c.FromInt(value)
	}
	return RNSEl{residues: out}
}

func (z RNS) Add(lhs, rhs ring.Element) ring.Element {
	return z.elementwise(rn(lhs), rn(rhs), func(c Fast64, a, b ring.Element) ring.Element { return c.Add(a, b) })
}
func (z RNS) Sub(lhs, rhs ring.Element) ring.Element {
	return z.elementwise(rn(lhs), rn(rhs), func(c Fast64, a, b ring.Element) ring.Element { return c.Sub(a, b) })
}
func (z RNS) Negate(value ring.Element) ring.Element {
	v := rn(value)
	out := make([]ring.Element, z.numComponents())
	for i, c := range z.components {
		out[i] = c.Negate(v.residues[i])
	}
	return RNSEl{residues: out}
}
func (z RNS) Mul(lhs, rhs ring.Element) ring.Element {
	return z.elementwise(rn(lhs), rn(rhs), func(c Fast64, a, b ring.Element) ring.Element { return c.Mul(a, b) })
}
func (z RNS) MulInt(lhs ring.Element, rhs int32) ring.Element {
	return z.Mul(lhs, z.FromInt(rhs))
}

func (z RNS) EqEl(lhs, rhs ring.Element) bool {
	a, b := rn(lhs), rn(rhs)
	for i, c := range z.components {
		if !c.EqEl(a.residues[i], b.residues[i]) {
			return false
		}
	}
	return true
}
func (z RNS) IsZero(value ring.Element) bool { return z.EqEl(value, z.Zero()) }
func (z RNS) IsOne(value ring.Element) bool  { return z.EqEl(value, z.One()) }
func (z RNS) IsNegOne(value ring.Element) bool { return z.EqEl(value, z.NegOne()) }
func (z RNS) CloneEl(value ring.Element) ring.Element {
	v := rn(value)
	out := make([]ring.Element, len(v.residues))
	copy(out, v.residues)
	return RNSEl{residues: out}
}
func (z RNS) String(value ring.Element) string {
	return z.total.String(z.ToTotal(value))
}
func (z RNS) IsCommutative() bool { return true }
func (z RNS) IsNoetherian() bool  { return true }

// ToTotal reconstructs the CRT representative in the big-integer total
// ring: sum_i residue_i * unitVectors_i, reduced mod the total modulus.
func (z RNS) ToTotal(value ring.Element) ring.Element {
	v := rn(value)
	acc := z.total.Zero()
	for i, c := range z.components {
		lift := bigint.FromUint64(uint64(c.SmallestPositiveLift(v.residues[i])))
		term := z.total.Mul(lift, z.unitVectors[i])
		acc = z.total.Add(acc, term)
	}
	_, rem := z.total.EuclideanDivRem(acc, z.modulus)
	if z.total.IsNeg(rem) {
		rem = z.total.Add(rem, z.modulus)
	}
	return rem
}

// FromTotal projects a big-integer value into the RNS representation by
// reducing it modulo each component.
func (z RNS) FromTotal(value ring.Element) ring.Element {
	out := make([]ring.Element, z.numComponents())
	for i, c := range z.components {
		cMod := bigint.FromUint64(uint64(c.Modulus()))
		_, rem := z.total.EuclideanDivRem(value, cMod)
		if z.total.IsNeg(rem) {
			rem = z.total.Add(rem, cMod)
		}
		out[i] = c.fromBounded(bigint.ToBigInt(rem).Uint64())
	}
	return RNSEl{residues: out}
}

// CheckedLeftDiv solves rhs*x = lhs componentwise (valid by CRT); it fails
// when any component has no solution.
func (z RNS) CheckedLeftDiv(lhs, rhs ring.Element) (ring.Element, bool) {
	out := make([]ring.Element, z.numComponents())
	for i, c := range z.components {
		q, ok := c.CheckedLeftDiv(rn(lhs).residues[i], rn(rhs).residues[i])
		if !ok {
			return nil, false
		}
		out[i] = q
	}
	return RNSEl{residues: out}, true
}

// IsUnit reports whether value is invertible in every component.
func (z RNS) IsUnit(value ring.Element) bool {
	_, ok := z.CheckedLeftDiv(z.One(), value)
	return ok
}

var _ ring.Ring = RNS{}
