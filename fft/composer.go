package fft

import "github.com/aklitzke/algebra-kernel/ring"

// GenComposer composes two Tables of coprime lengths into a single
// length-(left.Len()*right.Len()) table, following spec.md §4.7: a strided
// pass through the left table, a flat twiddle multiply, then a contiguous
// pass through the right table.
type GenComposer struct {
	left, right            Table
	r                      ring.Ring
	rootOfUnity            ring.Element
	twiddles, invTwiddles  []ring.Element
}

// NewGenComposer builds the composed table. rootOfUnity must be a primitive
// (left.Len()*right.Len())-th root of unity such that
// rootOfUnity^right.Len() == left.RootOfUnity() and
// rootOfUnity^left.Len() == right.RootOfUnity().
func NewGenComposer(r ring.DivisibilityRing, rootOfUnity ring.Element, left, right Table) *GenComposer {
	n := left.Len() * right.Len()
	rootOfUnityPow := func(i int64) ring.Element {
		if i < 0 {
			m := int64(n)
			i = ((i % m) + m) % m
		}
		return ring.Pow(r, rootOfUnity, uint64(i))
	}
	twiddles := createTwiddleFactors(rootOfUnityPow, left, right)
	invTwiddles := createTwiddleFactors(func(i int64) ring.Element { return rootOfUnityPow(-i) }, left, right)
	return &GenComposer{left: left, right: right, r: r, rootOfUnity: rootOfUnity, twiddles: twiddles, invTwiddles: invTwiddles}
}

func createTwiddleFactors(pow func(int64) ring.Element, left, right Table) []ring.Element {
	n := left.Len() * right.Len()
	rlen := right.Len()
	out := make([]ring.Element, n)
	for i := 0; i < n; i++ {
		ri := i % rlen
		li := i / rlen
		out[i] = pow(int64(left.UnorderedFFTPermutation(li)) * int64(ri))
	}
	return out
}

func (c *GenComposer) Len() int                 { return c.left.Len() * c.right.Len() }
func (c *GenComposer) Ring() ring.Ring           { return c.r }
func (c *GenComposer) RootOfUnity() ring.Element { return c.rootOfUnity }

func (c *GenComposer) UnorderedFFTPermutation(i int) int {
	rlen := c.right.Len()
	return c.left.UnorderedFFTPermutation(i/rlen) + c.left.Len()*c.right.UnorderedFFTPermutation(i%rlen)
}

func (c *GenComposer) UnorderedFFTPermutationInv(i int) int {
	llen := c.left.Len()
	return c.left.UnorderedFFTPermutationInv(i%llen)*c.right.Len() + c.right.UnorderedFFTPermutationInv(i/llen)
}

func (c *GenComposer) UnorderedFFT(values []ring.Element) {
	rlen, llen := c.right.Len(), c.left.Len()
	strided := make([]ring.Element, llen)
	for i := 0; i < rlen; i++ {
		for j := 0; j < llen; j++ {
			strided[j] = values[j*rlen+i]
		}
		c.left.UnorderedFFT(strided)
		for j := 0; j < llen; j++ {
			values[j*rlen+i] = strided[j]
		}
	}
	for i := range values {
		values[i] = c.r.Mul(values[i], c.invTwiddles[i])
	}
	for i := 0; i < llen; i++ {
		c.right.UnorderedFFT(values[i*rlen : (i+1)*rlen])
	}
}

func (c *GenComposer) UnorderedInvFFT(values []ring.Element) {
	rlen, llen := c.right.Len(), c.left.Len()
	for i := 0; i < llen; i++ {
		c.right.UnorderedInvFFT(values[i*rlen : (i+1)*rlen])
	}
	for i := range values {
		values[i] = c.r.Mul(values[i], c.twiddles[i])
	}
	strided := make([]ring.Element, llen)
	for i := 0; i < rlen; i++ {
		for j := 0; j < llen; j++ {
			strided[j] = values[j*rlen+i]
		}
		c.left.UnorderedInvFFT(strided)
		for j := 0; j < llen; j++ {
			values[j*rlen+i] = strided[j]
		}
	}
}

var _ Table = (*GenComposer)(nil)
