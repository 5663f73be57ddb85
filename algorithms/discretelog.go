package algorithms

import (
	"math/bits"

	"github.com/aklitzke/algebra-kernel/ring"
)

// monoidPow computes x^e in a monoid given only op/identity, via repeated
// squaring. e must be non-negative.
func monoidPow[T any](x T, e int64, op func(a, b T) T, identity T) T {
	if e == 0 {
		return identity
	}
	result := identity
	base := x
	first := true
	for e > 0 {
		if e&1 == 1 {
			if first {
				result = base
				first = false
			} else {
				result = op(result, base)
			}
		}
		base = op(base, base)
		e >>= 1
	}
	return result
}

func isqrtFloor(n int64) int64 {
	if n < 0 {
		panic("algorithms: isqrtFloor of negative value")
	}
	if n == 0 {
		return 0
	}
	x := int64(1) << uint((bits.Len64(uint64(n))+1)/2)
	for {
		y := (x + n/x) / 2
		if y >= x {
			break
		}
		x = y
	}
	for x*x > n {
		x--
	}
	return x
}

// BabyGiantStep computes the discrete logarithm of value with respect to
// base in the monoid given by op/identity, bounded by baseOrderBound (an
// upper bound on the true logarithm, typically the order of base). keyFn
// turns a monoid element into a comparable string key, playing the role of
// the original's Hash + Eq bound on T via its RingElementWrapper.
func BabyGiantStep[T any](value, base T, baseOrderBound int64, op func(a, b T) T, identity T, keyFn func(T) string) (int64, bool) {
	n := isqrtFloor(baseOrderBound) + 1
	giantStep := monoidPow(base, n, op, identity)

	giantSteps := make(map[string]int64, n)
	current := identity
	for j := int64(0); j < n; j++ {
		giantSteps[keyFn(current)] = j
		current = op(current, giantStep)
	}

	current = value
	for i := int64(0); i < n; i++ {
		if j, ok := giantSteps[keyFn(current)]; ok {
			return j*n - i, true
		}
		current = op(current, base)
	}
	return 0, false
}

// powerPDiscreteLog computes the discrete logarithm of value with respect
// to pEBase in the cyclic subgroup of order p^e, via the Pohlig-Hellman
// lifting-the-exponent construction (Hensel-style digit-by-digit recovery
// in base p).
func powerPDiscreteLog[T any](value T, pEBase T, p int64, e int, op func(a, b T) T, identity T, keyFn func(T) string) (int64, bool) {
	pow := func(x T, exp int64) T { return monoidPow(x, exp, op, identity) }
	pPow := func(exp int) int64 {
		r := int64(1)
		for i := 0; i < exp; i++ {
			r *= p
		}
		return r
	}
	pBase := pow(pEBase, pPow(e-1))
	fillLog := int64(0)
	current := value
	for i := 0; i < e; i++ {
		log, ok := BabyGiantStep(pow(current, pPow(e-i-1)), pBase, p, op, identity, keyFn)
		if !ok {
			return 0, false
		}
		pI := pPow(i)
		fill := (p - log) * pI
		current = op(current, pow(pEBase, fill))
		fillLog += fill
	}
	return pPow(e) - fillLog, true
}

// eeaInt64CRT solves x == a (mod n1), x == b (mod n2) for coprime n1, n2,
// returning the unique solution in [0, n1*n2).
func eeaInt64CRT(a, n1, b, n2 int64) int64 {
	g, s, _ := extgcd64(n1, n2)
	if g != 1 {
		panic("algorithms: CRT requires coprime moduli")
	}
	// a + n1*k == b (mod n2)  =>  k == (b - a) * n1^-1 (mod n2)
	diff := ((b-a)%n2 + n2) % n2
	k := mulmod64(diff, ((s%n2)+n2)%n2, n2)
	total := n1 * n2
	return ((a+n1*k)%total + total) % total
}

func extgcd64(a, b int64) (gcd, s, t int64) {
	oldR, r := a, b
	oldS, curS := int64(1), int64(0)
	oldT, curT := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, curS = curS, oldS-q*curS
		oldT, curT = curT, oldT-q*curT
	}
	return oldR, oldS, oldT
}

func mulmod64(a, b, m int64) int64 {
	// moduli in this module's discrete-log use (order of a Z/nZ additive
	// group, or q-1 for a finite field) fit comfortably under 2^31, so a
	// plain 64-bit product never overflows; no need for a 128-bit path.
	return (a % m) * (b % m) % m
}

// DiscreteLog computes the discrete logarithm of value with respect to
// base in a monoid where base has the given finite order, by Pohlig-Hellman:
// factor the order, solve the discrete log modulo each prime-power
// component, and recombine via CRT.
func DiscreteLog[T any](value, base T, order int64, op func(a, b T) T, identity T, keyFn func(T) string) (int64, bool) {
	currentLog := int64(0)
	currentSize := int64(1)
	first := true
	for _, pe := range Factor(order) {
		size := int64(1)
		for i := 0; i < pe.E; i++ {
			size *= pe.P
		}
		power := order / size
		log, ok := powerPDiscreteLog(monoidPow(value, power, op, identity), monoidPow(base, power, op, identity), pe.P, pe.E, op, identity, keyFn)
		if !ok {
			return 0, false
		}
		if first {
			currentLog, currentSize = log, size
			first = false
		} else {
			currentLog = eeaInt64CRT(currentLog, currentSize, log, size)
			currentSize *= size
		}
	}
	return currentLog, true
}

// FiniteFieldLog computes the discrete logarithm of value with respect to
// base in the multiplicative group of the field r (size q, order q-1),
// using DiscreteLog over r's Mul/One.
func FiniteFieldLog(r ring.Ring, value, base ring.Element, fieldSize int64) (int64, bool) {
	op := func(a, b ring.Element) ring.Element { return r.Mul(a, b) }
	keyFn := func(x ring.Element) string { return r.String(x) }
	return DiscreteLog(value, base, fieldSize-1, op, r.One(), keyFn)
}
