package fft_test

import (
	"testing"

	"github.com/aklitzke/algebra-kernel/fft"
	"github.com/aklitzke/algebra-kernel/ring"
	"github.com/aklitzke/algebra-kernel/zn"
)

func ints(r ring.Ring, xs ...int32) []ring.Element {
	out := make([]ring.Element, len(xs))
	for i, x := range xs {
		out[i] = r.FromInt(x)
	}
	return out
}

func assertEqual(t *testing.T, r ring.Ring, got []ring.Element, want []int32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		w := r.FromInt(want[i])
		if !r.EqEl(got[i], w) {
			t.Errorf("index %d: got %s want %d", i, r.String(got[i]), want[i])
		}
	}
}

func TestBluesteinMatchesWorkedExample(t *testing.T) {
	r := zn.NewFast64(241)
	// a 5-th root of unity is 91; root_of_unity_2n = 36, root_of_unity_m = 111.
	bl := fft.NewBluestein(r, r.FromInt(36), r.FromInt(111), 5, 4)
	values := ints(r, 1, 3, 2, 0, 7)
	bl.FFT(values)
	assertEqual(t, r, values, []int32{13, 137, 202, 206, 170})
}

func TestBluesteinRoundTrip(t *testing.T) {
	r := zn.NewFast64(241)
	bl := fft.NewBluestein(r, r.FromInt(36), r.FromInt(111), 5, 4)
	original := ints(r, 1, 3, 2, 0, 7)
	values := ints(r, 1, 3, 2, 0, 7)
	bl.FFT(values)
	bl.InvFFT(values)
	for i := range values {
		if !r.EqEl(values[i], original[i]) {
			t.Fatalf("round trip mismatch at %d: got %s want %s", i, r.String(values[i]), r.String(original[i]))
		}
	}
}

// findGenerator brute-forces a generator of the multiplicative group of a
// small prime modulus, for test setup only.
func findGenerator(r zn.Fast64, modulus int64) ring.Element {
	order := modulus - 1
	factors := primeFactors(order)
	for g := int64(2); g < modulus; g++ {
		candidate := r.FromInt(int32(g))
		isGenerator := true
		for _, p := range factors {
			if r.IsOne(ring.Pow(r, candidate, uint64(order/p))) {
				isGenerator = false
				break
			}
		}
		if isGenerator {
			return candidate
		}
	}
	panic("fft_test: no generator found")
}

func primeFactors(n int64) []int64 {
	var out []int64
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			out = append(out, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}

func TestCooleyTukeyRoundTrip(t *testing.T) {
	const modulus = 97
	r := zn.NewFast64(modulus)
	g := findGenerator(r, modulus)
	// (modulus-1) = 96 = 8 * 12, so g^12 has order 8.
	root := ring.Pow(r, g, 12)
	table := fft.NewCooleyTukey(r, root, 3)

	values := ints(r, 1, 0, 0, 1, 0, 1, 1, 1)
	original := ints(r, 1, 0, 0, 1, 0, 1, 1, 1)

	fft.FFT(table, values)
	fft.InvFFT(table, values)
	for i := range values {
		if !r.EqEl(values[i], original[i]) {
			t.Fatalf("round trip mismatch at %d: got %s want %s", i, r.String(values[i]), r.String(original[i]))
		}
	}
}

func TestCooleyTukeyFastmulMatchesGeneric(t *testing.T) {
	const modulus = 97
	r := zn.NewFast64(modulus)
	g := findGenerator(r, modulus)
	root := ring.Pow(r, g, 12)

	generic := fft.NewCooleyTukey(r, root, 3)
	accelerated := fft.NewCooleyTukeyFastmul(r, root, 3)

	a := ints(r, 1, 0, 0, 1, 0, 1, 1, 1)
	b := ints(r, 1, 0, 0, 1, 0, 1, 1, 1)

	generic.UnorderedFFT(a)
	accelerated.UnorderedFFT(b)
	for i := range a {
		if !r.EqEl(a[i], b[i]) {
			t.Fatalf("fastmul-accelerated butterfly diverged at %d: got %s want %s", i, r.String(b[i]), r.String(a[i]))
		}
	}
}

func TestGenComposerRoundTrip(t *testing.T) {
	const modulus = 1409
	r := zn.NewFast64(modulus)
	g := findGenerator(r, modulus) // order 1408 = 2^7 * 11
	z := ring.Pow(r, g, 2)          // order 704 = 2^6 * 11

	left := fft.NewCooleyTukey(r, ring.Pow(r, z, 44), 4)                 // root order 16
	right := fft.NewBluestein(r, ring.Pow(r, z, 32), ring.Pow(r, z, 22), 11, 5) // root order 22, m=32
	composer := fft.NewGenComposer(r, ring.Pow(r, z, 4), left, right)    // root order 176

	const n = 16 * 11
	values := make([]ring.Element, n)
	original := make([]ring.Element, n)
	for i := 0; i < n; i++ {
		values[i] = r.FromInt(int32(i))
		original[i] = r.FromInt(int32(i))
	}

	fft.FFT(composer, values)
	fft.InvFFT(composer, values)
	for i := range values {
		if !r.EqEl(values[i], original[i]) {
			t.Fatalf("composed round trip mismatch at %d: got %s want %s", i, r.String(values[i]), r.String(original[i]))
		}
	}

	for i := 0; i < n; i++ {
		if composer.UnorderedFFTPermutationInv(composer.UnorderedFFTPermutation(i)) != i {
			t.Fatalf("permutation is not self-consistent at %d", i)
		}
	}
}
