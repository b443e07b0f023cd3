package kyber

import "testing"

func canonical(a int32) int16 {
	return int16(((a % Q) + Q) % Q)
}

// TestMontgomeryReduce checks the congruence got*2^16 = a (mod q) and the
// output bound over the whole admissible input range, sampled coarsely.
func TestMontgomeryReduce(t *testing.T) {
	lo := int32(-Q) * (1 << 15)
	hi := int32(Q) * (1 << 15)
	for a := lo; a < hi; a += 9973 {
		got := montgomeryReduce(a)
		if got <= -Q || got >= Q {
			t.Fatalf("montgomeryReduce(%d) = %d out of (-q, q)", a, got)
		}
		if canonical(int32(got)*(1<<16)) != canonical(a) {
			t.Fatalf("montgomeryReduce(%d) = %d: wrong residue", a, got)
		}
	}
}

// TestBarrettReduce exhausts the int16 range and compares against int32
// modular reduction.
func TestBarrettReduce(t *testing.T) {
	for a := -32768; a <= 32767; a++ {
		got := barrettReduce(int16(a))
		if got < 0 || got > Q {
			t.Fatalf("barrettReduce(%d) = %d out of [0, q]", a, got)
		}
		if canonical(int32(got)) != canonical(int32(a)) {
			t.Fatalf("barrettReduce(%d) = %d: wrong residue", a, got)
		}
	}
}

// TestCsubq exhausts [0, 2q).
func TestCsubq(t *testing.T) {
	for a := 0; a < 2*Q; a++ {
		got := csubq(int16(a))
		want := int16(a % Q)
		if got != want {
			t.Fatalf("csubq(%d) = %d, want %d", a, got, want)
		}
	}
}

// TestCaddq exhausts (-q, q).
func TestCaddq(t *testing.T) {
	for a := -Q + 1; a < Q; a++ {
		got := caddq(int16(a))
		if got != canonical(int32(a)) {
			t.Fatalf("caddq(%d) = %d, want %d", a, got, canonical(int32(a)))
		}
	}
}
