// Package nttbridge cross-validates this kernel's own Cooley-Tukey FFT
// over zn.Fast64 against lattigo/v4/ring's NTT, one RNS component prime at
// a time. It plays the same role the teacher's ntru.BuildRings/ConvolveRNS
// pair plays for NTRU polynomial arithmetic (ntru/ring.go, ntru/ntt.go):
// one lattigo *ring.Ring per modulus, used here as an independent oracle
// rather than as the kernel's own multiplication path.
package nttbridge

import (
	"fmt"

	lattigoring "github.com/tuneinsight/lattigo/v4/ring"

	"github.com/aklitzke/algebra-kernel/bigint"
	"github.com/aklitzke/algebra-kernel/fft"
	"github.com/aklitzke/algebra-kernel/homomorphism"
	"github.com/aklitzke/algebra-kernel/internal/klog"
	"github.com/aklitzke/algebra-kernel/ring"
	"github.com/aklitzke/algebra-kernel/zn"
)

// Prime is one RNS component: a modulus, together with the roots of unity
// this package's own negacyclic NTT needs. Omega is a primitive N-th root
// of unity (what fft.CooleyTukey is built from); Psi is a primitive 2N-th
// root with Psi^2 = Omega mod Modulus, used to twist the cyclic transform
// into a negacyclic one over Z[X]/(X^N+1), matching lattigo's own
// convention for ring.NewRing. Finding such roots is the caller's
// responsibility, the same contract fft.NewBluestein already places on its
// own caller-supplied roots (spec.md §7: a length/root mismatch is a
// programmer error, not something this package searches for at runtime).
type Prime struct {
	Modulus uint64
	Omega   uint64
	Psi     uint64
}

type limb struct {
	prime    Prime
	fast     zn.Fast64
	table    *fft.CooleyTukey
	lattigoR *lattigoring.Ring
	psi      ring.Element
	psiInv   ring.Element
}

// Bridge wraps one lattigo NTT ring and one Cooley-Tukey/Fast64 table per
// RNS component prime, all sharing the same ring degree N = 2^logN.
type Bridge struct {
	n     int
	logN  int
	limbs []limb
}

// New builds a Bridge for ring degree N = 2^logN over the given component
// primes. Every prime must be NTT-friendly (congruent to 1 mod 2N);
// lattigo's ring.NewRing rejects any that aren't.
func New(logN int, primes []Prime) (*Bridge, error) {
	if logN <= 0 {
		return nil, fmt.Errorf("nttbridge: logN must be positive")
	}
	n := 1 << uint(logN)
	limbs := make([]limb, len(primes))
	for i, p := range primes {
		lr, err := lattigoring.NewRing(n, []uint64{p.Modulus})
		if err != nil {
			return nil, fmt.Errorf("nttbridge: lattigo ring for modulus %d: %w", p.Modulus, err)
		}
		fastRing := zn.NewFast64(p.Modulus)
		hom, ok := homomorphism.TryCanHom(bigint.RING, fastRing)
		if !ok {
			return nil, fmt.Errorf("nttbridge: no canonical hom bigint -> Fast64(%d)", p.Modulus)
		}
		omega := hom.Map(bigint.FromUint64(p.Omega))
		psi := hom.Map(bigint.FromUint64(p.Psi))
		psiInv, ok := fastRing.CheckedLeftDiv(fastRing.One(), psi)
		if !ok {
			return nil, fmt.Errorf("nttbridge: psi not invertible mod %d", p.Modulus)
		}
		table := fft.NewCooleyTukeyFastmul(fastRing, omega, logN)
		limbs[i] = limb{prime: p, fast: fastRing, table: table, lattigoR: lr, psi: psi, psiInv: psiInv}
		klog.Printf("[nttbridge] limb %d ready: modulus=%d\n", i, p.Modulus)
	}
	return &Bridge{n: n, logN: logN, limbs: limbs}, nil
}

// NumLimbs returns the number of RNS component primes.
func (b *Bridge) NumLimbs() int { return len(b.limbs) }

// N returns the ring degree shared by every limb.
func (b *Bridge) N() int { return b.n }

// Modulus returns the i-th component modulus.
func (b *Bridge) Modulus(i int) uint64 { return b.limbs[i].prime.Modulus }

func (l *limb) bigintHom() homomorphism.CanHom {
	hom, _ := homomorphism.TryCanHom(bigint.RING, l.fast)
	return hom
}

// toFast lifts a coefficient vector (each entry < modulus) into Fast64
// elements.
func (l *limb) toFast(coeffs []uint64) []ring.Element {
	hom := l.bigintHom()
	out := make([]ring.Element, len(coeffs))
	for i, c := range coeffs {
		out[i] = hom.Map(bigint.FromUint64(c))
	}
	return out
}

// ConvolveNegacyclic computes a*b mod (X^N+1) over the i-th component
// modulus using this kernel's own Cooley-Tukey table: twist by powers of
// Psi, cyclic-convolve via the unordered forward/inverse FFT, untwist by
// powers of Psi^-1. This is the textbook negacyclic-via-twist reduction
// that lattigo's own NTT performs internally for X^N+1 rings.
func (b *Bridge) ConvolveNegacyclic(limbIdx int, a, c []uint64) []uint64 {
	l := &b.limbs[limbIdx]
	fr := l.fast
	n := b.n
	if len(a) != n || len(c) != n {
		panic("nttbridge: coefficient vector length must equal N")
	}

	ta := l.toFast(a)
	tc := l.toFast(c)
	psiPow := fr.One()
	for i := 0; i < n; i++ {
		ta[i] = fr.Mul(ta[i], psiPow)
		tc[i] = fr.Mul(tc[i], psiPow)
		psiPow = fr.Mul(psiPow, l.psi)
	}

	l.table.UnorderedFFT(ta)
	l.table.UnorderedFFT(tc)
	prod := make([]ring.Element, n)
	for i := range prod {
		prod[i] = fr.Mul(ta[i], tc[i])
	}
	l.table.UnorderedInvFFT(prod)

	out := make([]uint64, n)
	psiInvPow := fr.One()
	for i := 0; i < n; i++ {
		v := fr.Mul(prod[i], psiInvPow)
		out[i] = uint64(fr.SmallestPositiveLift(v))
		psiInvPow = fr.Mul(psiInvPow, l.psiInv)
	}
	return out
}

// ConvolveNegacyclicLattigo computes the same a*b mod (X^N+1) product via
// lattigo's NTT, used as the cross-validation oracle for
// ConvolveNegacyclic.
func (b *Bridge) ConvolveNegacyclicLattigo(limbIdx int, a, c []uint64) []uint64 {
	l := &b.limbs[limbIdx]
	r := l.lattigoR
	n := b.n

	pa, pc := r.NewPoly(), r.NewPoly()
	for i := 0; i < n; i++ {
		pa.Coeffs[0][i] = a[i]
		pc.Coeffs[0][i] = c[i]
	}

	r.MForm(pa, pa)
	r.MForm(pc, pc)
	r.NTT(pa, pa)
	r.NTT(pc, pc)
	res := r.NewPoly()
	r.MulCoeffsMontgomery(pa, pc, res)
	r.InvNTT(res, res)
	r.InvMForm(res, res)

	out := make([]uint64, n)
	copy(out, res.Coeffs[0][:n])
	return out
}

// Verify runs both convolution paths for the i-th limb and reports the
// first coefficient where they disagree, the way the teacher's test suite
// cross-checks lattigo-backed arithmetic against a second implementation
// (tests/ntt_test.go).
func (b *Bridge) Verify(limbIdx int, a, c []uint64) error {
	got := b.ConvolveNegacyclic(limbIdx, a, c)
	want := b.ConvolveNegacyclicLattigo(limbIdx, a, c)
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("nttbridge: limb %d mismatch at coefficient %d: kernel=%d lattigo=%d",
				limbIdx, i, got[i], want[i])
		}
	}
	return nil
}
