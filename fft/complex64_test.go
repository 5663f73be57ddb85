package fft_test

import (
	"math/rand"
	"testing"

	"github.com/aklitzke/algebra-kernel/fft"
	"github.com/aklitzke/algebra-kernel/ring"
)

func TestComplex64RingAxioms(t *testing.T) {
	r := fft.ComplexRing
	elements := []ring.Element{
		fft.Complex64El(0),
		fft.Complex64El(1),
		fft.Complex64El(-1),
		fft.Complex64El(complex(2, 3)),
		fft.Complex64El(complex(-1.5, 0.5)),
	}
	ring.TestAxioms(t, r, elements)
}

func TestComplex64RoundTripWithinErrorEstimate(t *testing.T) {
	const logN = 6
	n := 1 << logN
	omega := fft.NewComplexRootOfUnity(n)
	table := fft.NewCooleyTukey(fft.ComplexRing, omega, logN)

	src := rand.New(rand.NewSource(7))
	original := make([]ring.Element, n)
	for i := range original {
		original[i] = fft.Complex64El(complex(src.NormFloat64(), src.NormFloat64()))
	}
	values := make([]ring.Element, n)
	copy(values, original)

	fft.FFT(table, values)
	fft.InvFFT(table, values)

	tol := fft.ErrorEstimate(n, 0)
	for i := range values {
		if !fft.ApproxEqual(values[i], original[i], tol) {
			t.Fatalf("round trip mismatch at %d: got %v, want %v (tol %g)", i, values[i], original[i], tol)
		}
	}
}

func TestComplex64CheckedLeftDivByZero(t *testing.T) {
	r := fft.ComplexRing
	if _, ok := r.CheckedLeftDiv(fft.Complex64El(1), fft.Complex64El(0)); ok {
		t.Fatalf("CheckedLeftDiv by zero should fail")
	}
}
