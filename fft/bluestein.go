package fft

import "github.com/aklitzke/algebra-kernel/ring"

// Bluestein computes a length-n FFT of arbitrary n (not necessarily a power
// of two) by rewriting it as a chirp convolution and evaluating that
// convolution with a power-of-two CooleyTukey table of size m >= 2n+1,
// following spec.md §4.6.
//
// Bluestein's fft/inv_fft are already ordered (no bit-reversed "unordered"
// stage in the original either), so FFT/InvFFT and the Table methods
// UnorderedFFT/UnorderedInvFFT compute the same thing.
type Bluestein struct {
	m              *CooleyTukey
	bUnordered     []ring.Element
	invRootOfUnity ring.Element
	n              int
	r              ring.DivisibilityRing
}

// NewBluestein builds the table for a length-n transform, given a primitive
// 2n-th root of unity and a primitive root of unity for the power-of-two
// convolution length m = 1<<log2M (which must be at least 2n+1).
func NewBluestein(r ring.DivisibilityRing, rootOfUnity2n, rootOfUnityM ring.Element, n, log2M int) *Bluestein {
	m := 1 << uint(log2M)
	if m < 2*n+1 {
		panic("fft: Bluestein requires a convolution length of at least 2n+1")
	}
	b := make([]ring.Element, m)
	for i := range b {
		b[i] = r.Zero()
	}
	b[0] = r.One()
	for i := 1; i < n; i++ {
		b[i] = Pow(r, rootOfUnity2n, i*i)
		b[m-i] = r.CloneEl(b[i])
	}
	invRootOfUnity := Pow(r, rootOfUnity2n, 2*n-1)

	mTable := NewCooleyTukey(r, rootOfUnityM, log2M)
	mTable.UnorderedFFT(b)

	return &Bluestein{m: mTable, bUnordered: b, invRootOfUnity: invRootOfUnity, n: n, r: r}
}

func (bl *Bluestein) Len() int                 { return bl.n }
func (bl *Bluestein) Ring() ring.Ring           { return bl.r }
func (bl *Bluestein) RootOfUnity() ring.Element {
	// fftBase evaluates at powers of invRootOfUnity^2, a primitive n-th root.
	return bl.r.Mul(bl.invRootOfUnity, bl.invRootOfUnity)
}

// Bluestein's convolution has no separate bit-reversal stage: its
// "unordered" transform is already in natural order, so it satisfies Table
// with an identity permutation, making it composable as either side of a
// GenComposer mixed-radix table.
func (bl *Bluestein) UnorderedFFTPermutation(i int) int    { return i }
func (bl *Bluestein) UnorderedFFTPermutationInv(i int) int { return i }

func (bl *Bluestein) fftBase(values []ring.Element, inv bool) {
	if len(values) != bl.n {
		panic("fft: Bluestein value slice has the wrong length")
	}
	r := bl.r
	buffer := make([]ring.Element, bl.m.Len())
	for i := 0; i < bl.n; i++ {
		idx := i
		if inv {
			idx = (bl.n - i) % bl.n
		}
		tw := Pow(r, bl.invRootOfUnity, i*i)
		buffer[i] = r.Mul(values[idx], tw)
	}
	for i := bl.n; i < bl.m.Len(); i++ {
		buffer[i] = r.Zero()
	}

	bl.m.UnorderedFFT(buffer)
	for i := range buffer {
		buffer[i] = r.Mul(buffer[i], bl.bUnordered[i])
	}
	bl.m.UnorderedInvFFT(buffer)

	for i := 0; i < bl.n; i++ {
		tw := Pow(r, bl.invRootOfUnity, i*i)
		values[i] = r.Mul(buffer[i], tw)
	}

	if inv {
		invN, ok := r.CheckedLeftDiv(r.One(), r.FromInt(int32(bl.n)))
		if !ok {
			panic("fft: Bluestein: n is not invertible in the given ring")
		}
		for i := range values {
			values[i] = r.Mul(values[i], invN)
		}
	}
}

// FFT computes the ordered forward length-n transform in place.
func (bl *Bluestein) FFT(values []ring.Element) { bl.fftBase(values, false) }

// InvFFT computes the ordered inverse length-n transform in place.
func (bl *Bluestein) InvFFT(values []ring.Element) { bl.fftBase(values, true) }

func (bl *Bluestein) UnorderedFFT(values []ring.Element)    { bl.fftBase(values, false) }
func (bl *Bluestein) UnorderedInvFFT(values []ring.Element) { bl.fftBase(values, true) }

var _ Table = (*Bluestein)(nil)
