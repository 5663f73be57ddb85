// Package algorithms collects the generic number-theoretic algorithms this
// module's rings build on: the extended Euclidean algorithm, discrete
// logarithms, and cyclotomic polynomial construction.
package algorithms

import (
	"github.com/aklitzke/algebra-kernel/integer"
	"github.com/aklitzke/algebra-kernel/ring"
)

// EEA runs the iterative extended Euclidean algorithm over any integer.Ring,
// returning (s, t, gcd) with s*a + t*b = gcd. gcd's sign matches the
// standard convention of this module: non-negative, except in the
// degenerate a == b == 0 case where it is zero.
func EEA(r integer.Ring, a, b ring.Element) (s, t, gcd ring.Element) {
	oldR, curR := a, b
	oldS, curS := r.One(), r.Zero()
	oldT, curT := r.Zero(), r.One()
	for !r.IsZero(curR) {
		q := r.EuclideanDiv(oldR, curR)
		oldR, curR = curR, r.Sub(oldR, r.Mul(q, curR))
		oldS, curS = curS, r.Sub(oldS, r.Mul(q, curS))
		oldT, curT = curT, r.Sub(oldT, r.Mul(q, curT))
	}
	if r.IsNeg(oldR) {
		oldR = r.Negate(oldR)
		oldS = r.Negate(oldS)
		oldT = r.Negate(oldT)
	}
	return oldS, oldT, oldR
}

// SignedGCD returns the non-negative gcd of a and b.
func SignedGCD(r integer.Ring, a, b ring.Element) ring.Element {
	_, _, gcd := EEA(r, a, b)
	return gcd
}
