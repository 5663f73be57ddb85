package fft

import (
	"github.com/aklitzke/algebra-kernel/ring"
	"github.com/aklitzke/algebra-kernel/zn"
)

// butterflyFn performs one Cooley-Tukey butterfly in place over values[i1]
// and values[i2], using the twiddle factor w (an element of the table's
// twiddle ring, which may differ from the value ring when accelerated).
type butterflyFn func(values []ring.Element, w ring.Element, i1, i2 int)

// CooleyTukey is the radix-2 FFT table of spec.md §4.5: an in-place,
// bit-reversed transform over any ring with a primitive 2^logN-th root of
// unity. The forward pass ("unordered") runs a decimation-in-frequency
// network from length n down to length 2 with no separate bit-reversal
// step, so its output lands at index i holding the evaluation at
// RootOfUnity()^bitrev(i); the inverse pass runs the matching
// decimation-in-time network from length 2 up to n, undoing exactly that.
type CooleyTukey struct {
	r              ring.DivisibilityRing
	n              int
	logN           int
	rootOfUnity    ring.Element
	invRootOfUnity ring.Element
	invN           ring.Element

	fwdTwiddles [][]ring.Element
	invTwiddles [][]ring.Element

	fwdButterfly butterflyFn
	invButterfly butterflyFn
}

func bitReverse(i, logN int) int {
	r := 0
	for b := 0; b < logN; b++ {
		r = (r << 1) | (i & 1)
		i >>= 1
	}
	return r
}

// twiddlesForLengths precomputes, for every length in lengths, the powers
// root^(n/length * i) for i in [0, length/2).
func twiddlesForLengths(r ring.Ring, root ring.Element, n int, lengths []int) [][]ring.Element {
	out := make([][]ring.Element, len(lengths))
	for idx, length := range lengths {
		half := length / 2
		w := Pow(r, root, n/length)
		table := make([]ring.Element, half)
		cur := r.One()
		for i := 0; i < half; i++ {
			table[i] = cur
			cur = r.Mul(cur, w)
		}
		out[idx] = table
	}
	return out
}

// Pow is ring.Pow restricted to a non-negative int exponent, convenient for
// this package's table construction.
func Pow(r ring.Ring, x ring.Element, k int) ring.Element {
	return ring.Pow(r, x, uint64(k))
}

func forwardLengths(n, logN int) []int {
	out := make([]int, logN)
	length := n
	for s := 0; s < logN; s++ {
		out[s] = length
		length /= 2
	}
	return out
}

func inverseLengths(n, logN int) []int {
	out := make([]int, logN)
	length := 2
	for s := 0; s < logN; s++ {
		out[s] = length
		length *= 2
	}
	return out
}

// NewCooleyTukey builds the radix-2 table for a ring with rootOfUnity a
// primitive 2^logN-th root of unity.
func NewCooleyTukey(r ring.DivisibilityRing, rootOfUnity ring.Element, logN int) *CooleyTukey {
	if logN < 1 {
		panic("fft: CooleyTukey requires logN >= 1")
	}
	n := 1 << uint(logN)
	invRoot, ok := r.CheckedLeftDiv(r.One(), rootOfUnity)
	if !ok {
		panic("fft: CooleyTukey root of unity must be invertible")
	}
	invN, ok := r.CheckedLeftDiv(r.One(), r.FromInt(int32(n)))
	if !ok {
		panic("fft: CooleyTukey length must be invertible in the given ring")
	}
	t := &CooleyTukey{
		r:              r,
		n:              n,
		logN:           logN,
		rootOfUnity:    rootOfUnity,
		invRootOfUnity: invRoot,
		invN:           invN,
	}
	t.fwdTwiddles = twiddlesForLengths(r, rootOfUnity, n, forwardLengths(n, logN))
	t.invTwiddles = twiddlesForLengths(r, invRoot, n, inverseLengths(n, logN))
	t.fwdButterfly = t.defaultForwardButterfly
	t.invButterfly = t.defaultInverseButterfly
	return t
}

// NewCooleyTukeyFastmul builds a radix-2 table over a zn.Fast64 ring whose
// butterflies go through the Shoup-style zn.Fastmul twiddle multiply of
// spec.md §4.3, avoiding a 128-bit product per butterfly.
func NewCooleyTukeyFastmul(base zn.Fast64, rootOfUnity ring.Element, logN int) *CooleyTukey {
	t := NewCooleyTukey(base, rootOfUnity, logN)
	fm := zn.NewFastmul(base)

	lift := func(tables [][]ring.Element) [][]ring.Element {
		out := make([][]ring.Element, len(tables))
		for s, row := range tables {
			lifted := make([]ring.Element, len(row))
			for i, w := range row {
				lifted[i] = fm.FromBase(w)
			}
			out[s] = lifted
		}
		return out
	}
	t.fwdTwiddles = lift(t.fwdTwiddles)
	t.invTwiddles = lift(t.invTwiddles)

	// The forward (decimation-in-frequency) combine step is "add, then
	// multiply the difference by the twiddle" -- the shape zn.Fastmul
	// implements as CooleyTuckeyInvButterfly. The inverse (decimation-in-time)
	// combine step is "multiply first, then add/subtract" -- zn.Fastmul's
	// CooleyTuckeyButterfly.
	t.fwdButterfly = func(values []ring.Element, w ring.Element, i1, i2 int) {
		fm.CooleyTuckeyInvButterfly(values, w.(zn.FastmulEl), i1, i2)
	}
	t.invButterfly = func(values []ring.Element, w ring.Element, i1, i2 int) {
		fm.CooleyTuckeyButterfly(values, w.(zn.FastmulEl), i1, i2)
	}
	return t
}

func (t *CooleyTukey) defaultForwardButterfly(values []ring.Element, w ring.Element, i1, i2 int) {
	u, v := values[i1], values[i2]
	values[i1] = t.r.Add(u, v)
	values[i2] = t.r.Mul(t.r.Sub(u, v), w)
}

func (t *CooleyTukey) defaultInverseButterfly(values []ring.Element, w ring.Element, i1, i2 int) {
	u := values[i1]
	v := t.r.Mul(values[i2], w)
	values[i1] = t.r.Add(u, v)
	values[i2] = t.r.Sub(u, v)
}

func (t *CooleyTukey) Len() int           { return t.n }
func (t *CooleyTukey) Ring() ring.Ring     { return t.r }
func (t *CooleyTukey) RootOfUnity() ring.Element { return t.rootOfUnity }

func (t *CooleyTukey) UnorderedFFTPermutation(i int) int    { return bitReverse(i, t.logN) }
func (t *CooleyTukey) UnorderedFFTPermutationInv(i int) int { return bitReverse(i, t.logN) }

func (t *CooleyTukey) UnorderedFFT(values []ring.Element) {
	if len(values) != t.n {
		panic("fft: CooleyTukey value slice has the wrong length")
	}
	for s := 0; s < t.logN; s++ {
		length := t.n >> uint(s)
		half := length / 2
		table := t.fwdTwiddles[s]
		for start := 0; start < t.n; start += length {
			for i := 0; i < half; i++ {
				t.fwdButterfly(values, table[i], start+i, start+i+half)
			}
		}
	}
}

func (t *CooleyTukey) UnorderedInvFFT(values []ring.Element) {
	if len(values) != t.n {
		panic("fft: CooleyTukey value slice has the wrong length")
	}
	for s := 0; s < t.logN; s++ {
		length := 2 << uint(s)
		half := length / 2
		table := t.invTwiddles[s]
		for start := 0; start < t.n; start += length {
			for i := 0; i < half; i++ {
				t.invButterfly(values, table[i], start+i, start+i+half)
			}
		}
	}
	for i := range values {
		values[i] = t.r.Mul(values[i], t.invN)
	}
}

var _ Table = (*CooleyTukey)(nil)
