package zn

import (
	"math/big"
	"math/bits"

	"github.com/aklitzke/algebra-kernel/ring"
)

// exactXShiftOverP computes floor(x * 2^(bitshift/2) / modulus) exactly via
// math/big, for the rare moduli where the native uint64 shift overflows.
func exactXShiftOverP(x, modulus uint64) uint64 {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(x), bitshift/2)
	v.Div(v, new(big.Int).SetUint64(modulus))
	return v.Uint64()
}

func bigUint64(x uint64) *big.Int { return new(big.Int).SetUint64(x) }

// Fastmul is Z/nZ optimized to be the *multiplicand* in a Fast64
// multiplication: each element carries a precomputed x_shift_over_p value
// (floor(x * 2^(bitshift/2) / modulus)) alongside its reduced residue, so
// the FFT twiddle-factor multiply in CooleyTuckeyButterfly below needs no
// division and no math/big product, only native 64-bit multiplies.
type Fastmul struct {
	base Fast64
}

// NewFastmul builds the Fastmul companion ring for base.
func NewFastmul(base Fast64) Fastmul { return Fastmul{base: base} }

// FastmulEl is an element of a Fastmul ring.
type FastmulEl struct {
	base        Fast64El
	xShiftOverP uint64
}

func (f Fastmul) recompute(el FastmulEl) FastmulEl {
	el.base = Fast64El(uint64(el.base) % f.base.modulusU64())
	el.xShiftOverP = (uint64(el.base) << (bitshift / 2)) / f.base.modulusU64()
	// the shift above can overflow 64 bits for large moduli; fall back to
	// the exact 128-bit computation via math/big in that case.
	if uint64(el.base) >= 1<<(64-bitshift/2) {
		el.xShiftOverP = exactXShiftOverP(uint64(el.base), f.base.modulusU64())
	}
	return el
}

func fm(x ring.Element) FastmulEl { return x.(FastmulEl) }

func (f Fastmul) Zero() ring.Element { return f.recompute(FastmulEl{base: 0}) }
func (f Fastmul) One() ring.Element  { return f.recompute(FastmulEl{base: 1}) }
func (f Fastmul) NegOne() ring.Element {
	return f.recompute(FastmulEl{base: Fast64El(f.base.modulusU64() - 1)})
}
func (f Fastmul) FromInt(value int32) ring.Element {
	return f.recompute(FastmulEl{base: f.base.FromInt(value).(Fast64El)})
}

func (f Fastmul) Add(lhs, rhs ring.Element) ring.Element {
	a, b := fm(lhs), fm(rhs)
	return f.recompute(FastmulEl{base: f.base.Add(a.base, b.base).(Fast64El)})
}
func (f Fastmul) Sub(lhs, rhs ring.Element) ring.Element {
	a, b := fm(lhs), fm(rhs)
	return f.recompute(FastmulEl{base: f.base.Sub(a.base, b.base).(Fast64El)})
}
func (f Fastmul) Negate(value ring.Element) ring.Element {
	return f.recompute(FastmulEl{base: f.base.Negate(fm(value).base).(Fast64El)})
}
func (f Fastmul) Mul(lhs, rhs ring.Element) ring.Element {
	a, b := fm(lhs), fm(rhs)
	return f.recompute(FastmulEl{base: f.base.Mul(a.base, b.base).(Fast64El)})
}
func (f Fastmul) MulInt(lhs ring.Element, rhs int32) ring.Element {
	return f.Mul(lhs, f.FromInt(rhs))
}
func (f Fastmul) EqEl(lhs, rhs ring.Element) bool {
	return f.base.EqEl(fm(lhs).base, fm(rhs).base)
}
func (f Fastmul) IsZero(value ring.Element) bool   { return f.base.IsZero(fm(value).base) }
func (f Fastmul) IsOne(value ring.Element) bool     { return f.base.IsOne(fm(value).base) }
func (f Fastmul) IsNegOne(value ring.Element) bool { return f.base.IsNegOne(fm(value).base) }
func (f Fastmul) CloneEl(value ring.Element) ring.Element { return value }
func (f Fastmul) String(value ring.Element) string { return f.base.String(fm(value).base) }
func (f Fastmul) IsCommutative() bool              { return true }
func (f Fastmul) IsNoetherian() bool               { return true }

// FromBase lifts an element of the underlying Fast64 ring into Fastmul,
// recomputing its x_shift_over_p companion value.
func (f Fastmul) FromBase(x ring.Element) ring.Element {
	return f.recompute(FastmulEl{base: x.(Fast64El)})
}

// ToBase strips the x_shift_over_p companion value, recovering the plain
// Fast64 element.
func (f Fastmul) ToBase(x ring.Element) ring.Element { return fm(x).base }

// MulAssignMapIn performs the division-free multiply-and-reduce that
// Fast64's FFT butterfly relies on: lhs (a bounded Fast64 representative)
// times a Fastmul twiddle factor, reduced back into Fast64's repr_bound.
func (f Fastmul) MulAssignMapIn(lhs ring.Element, twiddle FastmulEl) ring.Element {
	l := uint64(lhs.(Fast64El))
	product := l * uint64(twiddle.base)
	hi, lo := bits.Mul64(l, twiddle.xShiftOverP)
	quotient := hi<<(64-bitshift/2) | lo>>(bitshift/2)
	result := product - quotient*f.base.modulusU64()
	return Fast64El(result)
}

// CooleyTuckeyButterfly performs the Cooley-Tukey DIT butterfly
// (a, b) -> (a + twiddle*b, a - twiddle*b) with the twiddle factor supplied
// as a Fastmul element, matching ZnBase's CooleyTuckeyButterfly impl.
func (f Fastmul) CooleyTuckeyButterfly(values []ring.Element, twiddle FastmulEl, i1, i2 int) {
	a := values[i1].(Fast64El)
	b := f.MulAssignMapIn(values[i2], twiddle).(Fast64El)
	values[i1] = f.base.Add(a, b)
	values[i2] = f.base.Add(a, f.base.fromBounded(2*f.base.modulusU64()-uint64(b)))
}

// CooleyTuckeyInvButterfly performs the inverse-FFT butterfly variant,
// which bounded-reduces b (below 2*modulus) before combining so that
// 2*modulus - b cannot underflow.
func (f Fastmul) CooleyTuckeyInvButterfly(values []ring.Element, twiddle FastmulEl, i1, i2 int) {
	a := values[i1].(Fast64El)
	b := values[i2].(Fast64El)
	bReduced := f.base.fromBounded(f.base.boundedReduce(bigUint64(uint64(b)))).(Fast64El)
	values[i1] = f.base.Add(a, bReduced)
	values[i2] = f.base.Add(a, f.base.fromBounded(2*f.base.modulusU64()-uint64(bReduced)))
	values[i2] = f.MulAssignMapIn(values[i2], twiddle)
}
