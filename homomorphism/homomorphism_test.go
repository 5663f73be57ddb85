package homomorphism_test

import (
	"testing"

	"github.com/aklitzke/algebra-kernel/bigint"
	"github.com/aklitzke/algebra-kernel/homomorphism"
)

func TestIdentity(t *testing.T) {
	id := homomorphism.Identity(bigint.RING)
	x := bigint.FromUint64(41)
	got := id.Map(x)
	if !bigint.RING.EqEl(got, x) {
		t.Fatalf("Identity.Map(x) != x")
	}
}

func TestIntHom(t *testing.T) {
	hom := homomorphism.IntHom(bigint.RING)
	got := hom.Map(int32(17))
	if !bigint.RING.EqEl(got, bigint.FromUint64(17)) {
		t.Fatalf("IntHom.Map(17) != 17 in bigint")
	}
}

func TestMulAssignMap(t *testing.T) {
	id := homomorphism.Identity(bigint.RING)
	lhs := bigint.FromUint64(6)
	id.MulAssignMap(&lhs, bigint.FromUint64(7))
	if !bigint.RING.EqEl(lhs, bigint.FromUint64(42)) {
		t.Fatalf("MulAssignMap: got %s, want 42", bigint.RING.String(lhs))
	}
}
