package kyber

import "golang.org/x/crypto/sha3"

// hashH computes H = SHA3-256.
func hashH(out *[SymBytes]byte, in ...[]byte) {
	h := sha3.New256()
	for _, b := range in {
		h.Write(b)
	}
	h.Sum(out[:0])
}

// hashG computes G = SHA3-512, returning the two 32-byte halves.
func hashG(in ...[]byte) (a, b [SymBytes]byte) {
	h := sha3.New512()
	for _, x := range in {
		h.Write(x)
	}
	var sum [64]byte
	h.Sum(sum[:0])
	copy(a[:], sum[:32])
	copy(b[:], sum[32:])
	wipe(sum[:])
	return
}

// prf fills out with SHAKE256(seed || nonce). The nonce domain-separates the
// per-component sampling streams; callers increment it per draw and never
// reuse a value within one key or encapsulation operation.
func prf(out, seed []byte, nonce byte) {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{nonce})
	h.Read(out)
}

// kdf fills out with SHAKE256 over the concatenated inputs. Used to derive
// the implicit-rejection secret from z and the ciphertext.
func kdf(out []byte, in ...[]byte) {
	h := sha3.NewShake256()
	for _, b := range in {
		h.Write(b)
	}
	h.Read(out)
}

// rejSample fills coefficients of p starting at offset from 12-bit chunks
// of buf, discarding values >= q. Returns the new offset.
func rejSample(p *Poly, offset int, buf []byte) int {
	for i := 0; i+3 <= len(buf) && offset < N; i += 3 {
		d1 := (uint16(buf[i]) | uint16(buf[i+1])<<8) & 0xFFF
		d2 := (uint16(buf[i+1])>>4 | uint16(buf[i+2])<<4) & 0xFFF
		if d1 < Q {
			p[offset] = int16(d1)
			offset++
		}
		if offset < N && d2 < Q {
			p[offset] = int16(d2)
			offset++
		}
	}
	return offset
}

// expandMatrix deterministically derives the K×K public matrix A (or its
// transpose) in the NTT domain from the 32-byte seed rho. Cell (i,j) is
// rejection-sampled from SHAKE128(rho || j || i), or rho || i || j when
// transposed. The output is bit-identical for identical seeds and indices;
// this is an interoperability requirement, not merely determinism.
func (ps *ParameterSet) expandMatrix(rho []byte, transposed bool) Mat {
	a := ps.newMat()
	// Each SHAKE128 block is 168 bytes; three blocks cover the expected
	// 256 samples with high probability, extra blocks are squeezed on demand.
	buf := make([]byte, 3*168)
	for i := 0; i < ps.K; i++ {
		for j := 0; j < ps.K; j++ {
			xof := sha3.NewShake128()
			xof.Write(rho)
			if transposed {
				xof.Write([]byte{byte(i), byte(j)})
			} else {
				xof.Write([]byte{byte(j), byte(i)})
			}
			xof.Read(buf)
			ctr := rejSample(&a[i][j], 0, buf)
			for ctr < N {
				xof.Read(buf[:168])
				ctr = rejSample(&a[i][j], ctr, buf[:168])
			}
		}
	}
	return a
}
