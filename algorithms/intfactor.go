package algorithms

// PrimePower is one (prime, exponent) factor of an integer, as produced by
// Factor.
type PrimePower struct {
	P int64
	E int
}

// Factor trial-divides n into its prime-power factorization. This is the
// minimal int_factor helper algorithms.CyclotomicPolynomial and DiscreteLog need
// (spec.md §9 Open Question (a): int_factor is not ported as a top-level
// module, only this trial-division core survives, in service of the two
// algorithms that need it).
func Factor(n int64) []PrimePower {
	if n <= 0 {
		panic("algorithms: Factor requires a positive integer")
	}
	var out []PrimePower
	for p := int64(2); p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		e := 0
		for n%p == 0 {
			n /= p
			e++
		}
		out = append(out, PrimePower{P: p, E: e})
	}
	if n > 1 {
		out = append(out, PrimePower{P: n, E: 1})
	}
	return out
}

// IsPrime reports whether n is prime via trial division, the same kernel
// Factor uses. Z/nZ's "ring is a field precisely when n is prime" (spec.md
// §3) is decided with this, so `IsField` stays a thin wrapper rather than a
// separate Miller-Rabin implementation - moduli tested against are always
// small enough (well under 2^41, the Fast64 ceiling) for trial division to
// be instant.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	factors := Factor(n)
	return len(factors) == 1 && factors[0].E == 1
}
