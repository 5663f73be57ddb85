package ring

// TestAxioms checks the universal ring laws from spec.md §8 against a
// representative element set. The bigint, zn, extfield and fft (Complex64)
// tests call this on their rings, and this package's own tests call it on
// integer.Static64; it is the Go analogue of the original's
// generic_tests::test_ring_axioms helper.
import "testing"

func TestAxioms(t *testing.T, r Ring, elements []Element) {
	t.Helper()
	zero, one := r.Zero(), r.One()
	for _, a := range elements {
		if !r.EqEl(r.Add(a, zero), a) {
			t.Fatalf("a + 0 != a for %s", r.String(a))
		}
		if !r.EqEl(r.Mul(a, one), a) {
			t.Fatalf("a * 1 != a for %s", r.String(a))
		}
		if !r.IsZero(r.Sub(a, a)) {
			t.Fatalf("a - a != 0 for %s", r.String(a))
		}
	}
	for _, a := range elements {
		for _, b := range elements {
			if !r.EqEl(r.Add(a, b), r.Add(b, a)) {
				t.Fatalf("addition not commutative for %s, %s", r.String(a), r.String(b))
			}
			if r.IsCommutative() && !r.EqEl(r.Mul(a, b), r.Mul(b, a)) {
				t.Fatalf("multiplication not commutative for %s, %s", r.String(a), r.String(b))
			}
		}
	}
	for _, a := range elements {
		for _, b := range elements {
			for _, c := range elements {
				if !r.EqEl(r.Add(r.Add(a, b), c), r.Add(a, r.Add(b, c))) {
					t.Fatalf("addition not associative")
				}
				if !r.EqEl(r.Mul(r.Mul(a, b), c), r.Mul(a, r.Mul(b, c))) {
					t.Fatalf("multiplication not associative")
				}
				if !r.EqEl(r.Mul(a, r.Add(b, c)), r.Add(r.Mul(a, b), r.Mul(a, c))) {
					t.Fatalf("left distributivity fails")
				}
				if !r.EqEl(r.Mul(r.Add(a, b), c), r.Add(r.Mul(a, c), r.Mul(b, c))) {
					t.Fatalf("right distributivity fails")
				}
			}
		}
	}
}

// TestDivisibilityAxioms checks spec.md §8's divisibility properties.
func TestDivisibilityAxioms(t *testing.T, r DivisibilityRing, elements []Element) {
	t.Helper()
	for _, a := range elements {
		for _, b := range elements {
			if r.IsZero(a) {
				continue
			}
			ab := r.Mul(a, b)
			c, ok := r.CheckedLeftDiv(ab, a)
			if !ok || !r.EqEl(r.Mul(a, c), ab) {
				t.Fatalf("checked_left_div(a*b, a) failed for a=%s b=%s", r.String(a), r.String(b))
			}
		}
	}
}
