package fft

import (
	"fmt"
	"math"

	"github.com/aklitzke/algebra-kernel/ring"
)

// Complex64 is the one approximate-arithmetic ring this module provides:
// spec.md §1 scopes out "numeric-analysis-style approximate arithmetic"
// except for "a marked complex-float FFT variant", and §4.5 names an
// error-estimation hook that only this ring needs. Grounded on
// Preimage_Sampler/bigcomplex.go's BigComplex (Add/Sub/Mul/Conj over
// arbitrary-precision real/imaginary parts), collapsed here to plain
// complex128 since spec.md only asks for a float approximation, not an
// arbitrary-precision one - the arbitrary-precision twiddle computation
// that file and ntru/cembed.go's psiPow/psiInvPow tables use is instead
// how NewComplexRootOfUnity below computes its root to full float64
// precision before the table is built.
type Complex64 struct{}

// ComplexRing is the canonical Complex64 instance.
var ComplexRing = Complex64{}

// Complex64El is a complex128 wrapped as a ring.Element.
type Complex64El complex128

func c128(x ring.Element) complex128 { return complex128(x.(Complex64El)) }

func (Complex64) Zero() ring.Element   { return Complex64El(0) }
func (Complex64) One() ring.Element    { return Complex64El(1) }
func (Complex64) NegOne() ring.Element { return Complex64El(-1) }
func (Complex64) FromInt(value int32) ring.Element {
	return Complex64El(complex(float64(value), 0))
}

func (Complex64) Add(lhs, rhs ring.Element) ring.Element {
	return Complex64El(c128(lhs) + c128(rhs))
}
func (Complex64) Sub(lhs, rhs ring.Element) ring.Element {
	return Complex64El(c128(lhs) - c128(rhs))
}
func (Complex64) Negate(value ring.Element) ring.Element {
	return Complex64El(-c128(value))
}
func (Complex64) Mul(lhs, rhs ring.Element) ring.Element {
	return Complex64El(c128(lhs) * c128(rhs))
}
func (z Complex64) MulInt(lhs ring.Element, rhs int32) ring.Element {
	return z.Mul(lhs, z.FromInt(rhs))
}

// EqEl is exact complex128 equality. Callers comparing round-trip FFT
// results should use ApproxEqual with ErrorEstimate's bound instead, the
// same way the original only ever checks complex-float results up to an
// error estimate rather than through the generic ring-axiom equality.
func (Complex64) EqEl(lhs, rhs ring.Element) bool { return c128(lhs) == c128(rhs) }
func (z Complex64) IsZero(value ring.Element) bool { return z.EqEl(value, z.Zero()) }
func (z Complex64) IsOne(value ring.Element) bool  { return z.EqEl(value, z.One()) }
func (z Complex64) IsNegOne(value ring.Element) bool { return z.EqEl(value, z.NegOne()) }

func (Complex64) CloneEl(value ring.Element) ring.Element { return value }
func (Complex64) String(value ring.Element) string {
	return fmt.Sprintf("%v", c128(value))
}
func (Complex64) IsCommutative() bool { return true }
func (Complex64) IsNoetherian() bool  { return true }

func (Complex64) IsUnit(value ring.Element) bool { return c128(value) != 0 }
func (Complex64) CheckedLeftDiv(lhs, rhs ring.Element) (ring.Element, bool) {
	r := c128(rhs)
	if r == 0 {
		return nil, false
	}
	return Complex64El(c128(lhs) / r), true
}

var _ ring.DivisibilityRing = Complex64{}

// ApproxEqual reports whether lhs and rhs agree to within tol in absolute
// value, the comparison every complex-float FFT test uses in place of
// exact EqEl.
func ApproxEqual(lhs, rhs ring.Element, tol float64) bool {
	d := c128(lhs) - c128(rhs)
	return math.Hypot(real(d), imag(d)) <= tol
}

// NewComplexRootOfUnity returns a primitive n-th root of unity
// e^(-2*pi*i/n), computed to full float64 precision via math.Cos/Sin (the
// same "compute once at full precision" approach
// Preimage_Sampler/bigcomplex.go uses for its own twiddle tables, minus
// the arbitrary-precision big.Float step this ring doesn't carry).
func NewComplexRootOfUnity(n int) ring.Element {
	theta := -2 * math.Pi / float64(n)
	return Complex64El(complex(math.Cos(theta), math.Sin(theta)))
}

// machineEpsilon is float64's unit roundoff, 2^-53.
const machineEpsilon = 1.1102230246251565e-16

// ErrorEstimate bounds the absolute error a length-n Cooley-Tukey
// transform over Complex64 accumulates, per spec.md §4.5: proportional to
// n * (epsRoot + epsMach), where epsRoot is the caller's own estimate of
// how imprecise the table's root of unity is (0 when it was computed via
// NewComplexRootOfUnity, which is accurate to machine precision) and
// epsMach is float64's unit roundoff.
func ErrorEstimate(n int, epsRoot float64) float64 {
	return float64(n) * (epsRoot + machineEpsilon)
}
