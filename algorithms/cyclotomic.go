package algorithms

import (
	"github.com/aklitzke/algebra-kernel/poly"
	"github.com/aklitzke/algebra-kernel/ring"
)

// substitutePower returns f(X^power), built by scaling every term's degree
// by power.
func substitutePower(p poly.Ring, f ring.Element, power int) ring.Element {
	terms := p.Terms(f)
	out := make([]poly.Term, len(terms))
	for i, t := range terms {
		out[i] = poly.Term{Coeff: t.Coeff, Deg: t.Deg * power}
	}
	return p.FromTerms(out)
}

// CyclotomicPolynomial constructs the n-th cyclotomic polynomial over the
// base ring of p, following the classical recurrence Phi_n(X) =
// prod_{p|n}(X^{n/p^{v_p(n)-1}} - 1) / prod... collapsed into the single
// pass the original performs: repeatedly divide out one prime factor at a
// time, substituting X -> X^p before dividing, and finally substitute by
// the accumulated prime-power factor. Requires p.Base to be a field (so
// CheckedLeftDiv never fails) for n with more than one distinct prime
// factor.
func CyclotomicPolynomial(p poly.Ring, n int) ring.Element {
	current := p.Sub(p.Indeterminate(), p.One())
	powerOfX := 1
	for _, pe := range Factor(int64(n)) {
		prime := int(pe.P)
		for i := 1; i < pe.E; i++ {
			powerOfX *= prime
		}
		substituted := substitutePower(p, current, prime)
		quotient, ok := p.CheckedLeftDiv(substituted, current)
		if !ok {
			panic("algorithms: cyclotomic construction requires exact division")
		}
		current = quotient
	}
	return substitutePower(p, current, powerOfX)
}
