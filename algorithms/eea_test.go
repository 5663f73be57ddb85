package algorithms

import (
	"testing"

	"github.com/aklitzke/algebra-kernel/integer"
)

func TestEEABezoutIdentity(t *testing.T) {
	r := integer.RING64
	cases := []struct{ a, b int64 }{
		{240, 46}, {46, 240}, {17, 5}, {-17, 5}, {17, -5}, {-17, -5}, {0, 7}, {7, 0},
	}
	for _, c := range cases {
		s, tt, gcd := EEA(r, c.a, c.b)
		lhs := s.(int64)*c.a + tt.(int64)*c.b
		if lhs != gcd.(int64) {
			t.Fatalf("EEA(%d, %d): %d*%d + %d*%d = %d, want gcd %d",
				c.a, c.b, s, c.a, tt, c.b, lhs, gcd)
		}
		if gcd.(int64) < 0 {
			t.Fatalf("EEA(%d, %d): gcd %d should be non-negative", c.a, c.b, gcd)
		}
	}
}

func TestEEAZeroZero(t *testing.T) {
	r := integer.RING64
	_, _, gcd := EEA(r, int64(0), int64(0))
	if gcd.(int64) != 0 {
		t.Fatalf("EEA(0, 0) gcd = %d, want 0", gcd)
	}
}

func TestSignedGCDKnownValues(t *testing.T) {
	r := integer.RING64
	cases := []struct{ a, b, want int64 }{
		{240, 46, 2}, {17, 5, 1}, {-100, 75, 25}, {12, 12, 12},
	}
	for _, c := range cases {
		got := SignedGCD(r, c.a, c.b).(int64)
		if got != c.want {
			t.Fatalf("SignedGCD(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
