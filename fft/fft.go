// Package fft implements the FFT engines of spec.md §4.5-4.7: an in-place
// bit-reversed radix-2 Cooley-Tukey transform, Bluestein's algorithm for
// arbitrary lengths via chirp-convolution, and a mixed-radix composer that
// factors a length-N transform into two coprime-free sub-transforms.
//
// Every table implements Table and is built once, read-only thereafter
// (spec.md §5: FFT tables are synchronous, suspension-free, and safe to use
// from any goroutine once constructed).
package fft

import "github.com/aklitzke/algebra-kernel/ring"

// Table is the contract every FFT engine in this package implements,
// mirroring the original's FFTTable trait (spec.md §6).
type Table interface {
	Len() int
	Ring() ring.Ring
	RootOfUnity() ring.Element

	// UnorderedFFTPermutation(i) returns j such that UnorderedFFT(values)[i]
	// is the evaluation at RootOfUnity()^j.
	UnorderedFFTPermutation(i int) int
	UnorderedFFTPermutationInv(i int) int

	// UnorderedFFT/UnorderedInvFFT mutate values in place, leaving them in
	// the table's own permuted order (see UnorderedFFTPermutation).
	UnorderedFFT(values []ring.Element)
	UnorderedInvFFT(values []ring.Element)
}

// FFT computes the ordered forward transform: UnorderedFFT followed by
// undoing the table's permutation so that output[j] is the evaluation at
// RootOfUnity()^j.
func FFT(t Table, values []ring.Element) {
	t.UnorderedFFT(values)
	n := t.Len()
	out := make([]ring.Element, n)
	for i := 0; i < n; i++ {
		out[t.UnorderedFFTPermutation(i)] = values[i]
	}
	copy(values, out)
}

// InvFFT computes the ordered inverse transform: it is the exact inverse
// of FFT.
func InvFFT(t Table, values []ring.Element) {
	n := t.Len()
	tmp := make([]ring.Element, n)
	for i := 0; i < n; i++ {
		tmp[i] = values[t.UnorderedFFTPermutation(i)]
	}
	t.UnorderedInvFFT(tmp)
	copy(values, tmp)
}
