package zn

import (
	"testing"

	"github.com/aklitzke/algebra-kernel/bigint"
	"github.com/aklitzke/algebra-kernel/homomorphism"
	"github.com/aklitzke/algebra-kernel/integer"
	"github.com/aklitzke/algebra-kernel/internal/xrand"
	"github.com/aklitzke/algebra-kernel/ring"
)

func TestFast64Axioms(t *testing.T) {
	z := NewFast64(97)
	var elements []ring.Element
	for i := int64(0); i < 97; i++ {
		elements = append(elements, z.fromBounded(uint64(i)))
	}
	ring.TestAxioms(t, z, elements)
	ring.TestDivisibilityAxioms(t, z, elements)
}

func TestBarettAxioms(t *testing.T) {
	z := NewBarett(bigint.RING, bigint.FromUint64(97))
	var elements []ring.Element
	for i := uint64(0); i < 97; i++ {
		elements = append(elements, BarettEl{v: bigint.FromUint64(i)})
	}
	ring.TestAxioms(t, z, elements)
	ring.TestDivisibilityAxioms(t, z, elements)
}

func TestRNSAxioms(t *testing.T) {
	z := NewRNSFromPrimes([]uint64{97, 101})
	elements := z.Elements()
	if len(elements) != 97*101 {
		t.Fatalf("Elements: got %d, want %d", len(elements), 97*101)
	}
	sample := elements[:50]
	ring.TestAxioms(t, z, sample)
	ring.TestDivisibilityAxioms(t, z, sample)
}

// TestCanonicalIsoRoundTrip checks spec.md §8's "Z/nZ canonical isomorphisms"
// scenario: Fast64, Barett[bigint.RING] and a single-component RNS sharing
// modulus 97 all agree on every element, in both directions.
func TestCanonicalIsoRoundTrip(t *testing.T) {
	const modulus = 97

	f := NewFast64(modulus)
	b := NewBarett(bigint.RING, bigint.FromUint64(modulus))
	r := NewRNSFromPrimes([]uint64{modulus})

	fIso, ok := homomorphism.TryCanIso(b, f)
	if !ok {
		t.Fatalf("expected Fast64 <-> Barett canonical iso to be advertised")
	}
	bIso, ok := homomorphism.TryCanIso(f, b)
	if !ok {
		t.Fatalf("expected Barett <-> Fast64 canonical iso to be advertised")
	}
	rIso, ok := homomorphism.TryCanIso(b, r)
	if !ok {
		t.Fatalf("expected RNS <-> Barett canonical iso to be advertised")
	}

	for i := int64(0); i < modulus; i++ {
		fEl := f.fromBounded(uint64(i))
		bEl := BarettEl{v: bigint.FromUint64(uint64(i))}

		if got := fIso.Map(bEl); !f.EqEl(got, fEl) {
			t.Fatalf("Barett->Fast64 at %d: got %v, want %v", i, got, fEl)
		}
		if got := fIso.MapOut(fEl); !b.EqEl(got, bEl) {
			t.Fatalf("Fast64->Barett (MapOut) at %d: got %v, want %v", i, got, bEl)
		}
		if got := bIso.Map(fEl); !b.EqEl(got, bEl) {
			t.Fatalf("Fast64->Barett at %d: got %v, want %v", i, got, bEl)
		}

		rEl := r.FromTotal(bigint.FromUint64(uint64(i)))
		if got := rIso.Map(bEl); !r.EqEl(got, rEl) {
			t.Fatalf("Barett->RNS at %d: got %v, want %v", i, got, rEl)
		}
		if got := rIso.MapOut(rEl); !b.EqEl(got, bEl) {
			t.Fatalf("RNS->Barett (MapOut) at %d: got %v, want %v", i, got, bEl)
		}
	}
}

// TestCanonicalHomFromInt checks the three-branch integer dispatcher lands
// on the same residue regardless of which integer ring the value started in,
// across all three branches (direct lift, bounded reduce, full reduce).
func TestCanonicalHomFromInt(t *testing.T) {
	z := NewFast64(1009)

	hom64, ok := homomorphism.TryCanHom(integer.RING64, z)
	if !ok {
		t.Fatalf("expected Fast64 <- Static64 canonical hom to be advertised")
	}
	homBig, ok := homomorphism.TryCanHom(bigint.RING, z)
	if !ok {
		t.Fatalf("expected Fast64 <- bigint.Ring canonical hom to be advertised")
	}

	cases := []int64{0, 1, 500, 1008, 1009, 5000, -7, -1009, 1<<40 - 1, 1<<62 + 12345}
	for _, v := range cases {
		want := z.fromBounded(uint64(((v % 1009) + 1009) % 1009))

		got64 := hom64.Map(v)
		if !z.EqEl(got64, want) {
			t.Fatalf("Static64 hom at %d: got %v, want %v", v, got64, want)
		}

		gotBig := homBig.Map(bigint.FromUint64(uint64(v)))
		if v < 0 {
			gotBig = homBig.Map(bigint.RING.Negate(bigint.FromUint64(uint64(-v))))
		}
		if !z.EqEl(gotBig, want) {
			t.Fatalf("bigint hom at %d: got %v, want %v", v, gotBig, want)
		}
	}
}

// TestRandomElementCoverage is spec.md §8's uniform-sampling coverage
// property: 1000 samples from a small modulus touch every residue class and
// never exceed modulus-1, using internal/xrand as the deterministic source
// of uniform 64-bit draws.
func TestRandomElementCoverage(t *testing.T) {
	const b = 17
	z := NewFast64(b)
	sampler := xrand.New([]byte("zn-random-element-coverage"))

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		el := z.RandomElement(sampler.Uint64)
		lift := z.SmallestPositiveLift(el)
		if lift < 0 || lift >= b {
			t.Fatalf("sample %d out of range [0, %d): %d", i, b, lift)
		}
		seen[lift] = true
	}
	for i := int64(0); i < b; i++ {
		if !seen[i] {
			t.Fatalf("residue %d never sampled in 1000 draws", i)
		}
	}
}

func TestSmallestLift(t *testing.T) {
	z := NewFast64(10)
	if got := z.SmallestLift(z.fromBounded(7)); got != -3 {
		t.Fatalf("SmallestLift(7) mod 10: got %d, want -3", got)
	}
	if got := z.SmallestLift(z.fromBounded(3)); got != 3 {
		t.Fatalf("SmallestLift(3) mod 10: got %d, want 3", got)
	}

	b := NewBarett(bigint.RING, bigint.FromUint64(10))
	got := bigint.ToBigInt(b.SmallestLift(BarettEl{v: bigint.FromUint64(7)})).Int64()
	if got != -3 {
		t.Fatalf("Barett SmallestLift(7) mod 10: got %d, want -3", got)
	}
}

func TestIsField(t *testing.T) {
	if !NewFast64(97).IsField() {
		t.Fatalf("97 should be prime")
	}
	if NewFast64(100).IsField() {
		t.Fatalf("100 should not be prime")
	}

	r := NewRNSFromPrimes([]uint64{97, 101})
	if r.IsField() {
		t.Fatalf("a two-component RNS ring is never a field")
	}
	single := NewRNSFromPrimes([]uint64{97})
	if !single.IsField() {
		t.Fatalf("a single-component RNS ring over a prime should be a field")
	}
}

func TestSize(t *testing.T) {
	z := NewFast64(97)
	if got := z.Size(integer.RING64).(int64); got != 97 {
		t.Fatalf("Size(RING64): got %d, want 97", got)
	}
	if got := bigint.ToBigInt(z.Size(bigint.RING)).Int64(); got != 97 {
		t.Fatalf("Size(bigint.RING): got %d, want 97", got)
	}
}
