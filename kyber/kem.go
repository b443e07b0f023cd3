package kyber

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// PublicKey is an encapsulation key for one parameter set.
type PublicKey struct {
	ps    *ParameterSet
	bytes []byte
}

// SecretKey is a decapsulation key. It holds, back to back, the PKE secret
// vector, a copy of the public key, H(pk) and the implicit-rejection seed z.
type SecretKey struct {
	ps    *ParameterSet
	bytes []byte
}

// Ciphertext carries an encapsulation against one public key.
type Ciphertext struct {
	ps    *ParameterSet
	bytes []byte
}

// Set returns the parameter set the key belongs to.
func (pk *PublicKey) Set() *ParameterSet { return pk.ps }

// Set returns the parameter set the key belongs to.
func (sk *SecretKey) Set() *ParameterSet { return sk.ps }

// Set returns the parameter set the ciphertext belongs to.
func (ct *Ciphertext) Set() *ParameterSet { return ct.ps }

// Bytes returns the encoded public key.
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, len(pk.bytes))
	copy(out, pk.bytes)
	return out
}

// Bytes returns the encoded secret key.
func (sk *SecretKey) Bytes() []byte {
	out := make([]byte, len(sk.bytes))
	copy(out, sk.bytes)
	return out
}

// Bytes returns the encoded ciphertext.
func (ct *Ciphertext) Bytes() []byte {
	out := make([]byte, len(ct.bytes))
	copy(out, ct.bytes)
	return out
}

// PublicKey extracts the embedded public key from a secret key.
func (sk *SecretKey) PublicKey() *PublicKey {
	ps := sk.ps
	pk := make([]byte, ps.PublicKeySize)
	copy(pk, sk.bytes[ps.polyVecBytes():ps.polyVecBytes()+ps.PublicKeySize])
	return &PublicKey{ps: ps, bytes: pk}
}

// Zeroize overwrites the secret key material. The key must not be used
// afterwards.
func (sk *SecretKey) Zeroize() {
	wipe(sk.bytes)
}

// PublicKeyFromBytes decodes a public key for this parameter set. The input
// must be exactly PublicKeySize bytes.
func (ps *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != ps.PublicKeySize {
		return nil, fmt.Errorf("%s public key: got %d bytes, want %d: %w",
			ps.Name, len(b), ps.PublicKeySize, ErrInvalidKeySize)
	}
	pk := make([]byte, ps.PublicKeySize)
	copy(pk, b)
	return &PublicKey{ps: ps, bytes: pk}, nil
}

// SecretKeyFromBytes decodes a secret key for this parameter set. The input
// must be exactly SecretKeySize bytes.
func (ps *ParameterSet) SecretKeyFromBytes(b []byte) (*SecretKey, error) {
	if len(b) != ps.SecretKeySize {
		return nil, fmt.Errorf("%s secret key: got %d bytes, want %d: %w",
			ps.Name, len(b), ps.SecretKeySize, ErrInvalidKeySize)
	}
	sk := make([]byte, ps.SecretKeySize)
	copy(sk, b)
	return &SecretKey{ps: ps, bytes: sk}, nil
}

// CiphertextFromBytes decodes a ciphertext for this parameter set. The input
// must be exactly CiphertextSize bytes.
func (ps *ParameterSet) CiphertextFromBytes(b []byte) (*Ciphertext, error) {
	if len(b) != ps.CiphertextSize {
		return nil, fmt.Errorf("%s ciphertext: got %d bytes, want %d: %w",
			ps.Name, len(b), ps.CiphertextSize, ErrInvalidCiphertext)
	}
	ct := make([]byte, ps.CiphertextSize)
	copy(ct, b)
	return &Ciphertext{ps: ps, bytes: ct}, nil
}

// GenerateKeyPair draws a fresh keypair from rand. Pass crypto/rand.Reader
// for production keys or NewSeededReader for reproducible ones.
func (ps *ParameterSet) GenerateKeyPair(rand io.Reader) (*PublicKey, *SecretKey, error) {
	var d, z [SymBytes]byte
	defer wipe(d[:])
	defer wipe(z[:])
	if _, err := io.ReadFull(rand, d[:]); err != nil {
		return nil, nil, fmt.Errorf("drawing keypair seed: %w", ErrRandomness)
	}
	if _, err := io.ReadFull(rand, z[:]); err != nil {
		return nil, nil, fmt.Errorf("drawing rejection seed: %w", ErrRandomness)
	}
	return ps.keyPairFromSeeds(d[:], z[:])
}

// keyPairFromSeeds builds a keypair from the PKE seed d and the
// implicit-rejection seed z, both 32 bytes.
func (ps *ParameterSet) keyPairFromSeeds(d, z []byte) (*PublicKey, *SecretKey, error) {
	pkb := make([]byte, ps.PublicKeySize)
	skb := make([]byte, ps.SecretKeySize)
	if err := ps.pkeKeyPair(pkb, skb, d); err != nil {
		return nil, nil, err
	}
	off := ps.polyVecBytes()
	copy(skb[off:], pkb)
	off += ps.PublicKeySize
	var hpk [SymBytes]byte
	hashH(&hpk, pkb)
	copy(skb[off:], hpk[:])
	off += SymBytes
	copy(skb[off:], z)
	return &PublicKey{ps: ps, bytes: pkb}, &SecretKey{ps: ps, bytes: skb}, nil
}

// Encapsulate draws a fresh message from rand and produces a ciphertext and
// the 32-byte shared secret it encapsulates.
func (pk *PublicKey) Encapsulate(rand io.Reader) (*Ciphertext, []byte, error) {
	var m [SymBytes]byte
	defer wipe(m[:])
	if _, err := io.ReadFull(rand, m[:]); err != nil {
		return nil, nil, fmt.Errorf("drawing encapsulation message: %w", ErrRandomness)
	}
	return pk.encapsulate(m[:])
}

// encapsulate runs the deterministic part of encapsulation on the 32-byte
// message m. The message is hashed before use so that even biased caller
// randomness never reaches the encryption directly.
func (pk *PublicKey) encapsulate(m []byte) (*Ciphertext, []byte, error) {
	ps := pk.ps

	var mh, hpk [SymBytes]byte
	defer wipe(mh[:])
	hashH(&mh, m)
	hashH(&hpk, pk.bytes)

	kr1, kr2 := hashG(mh[:], hpk[:])
	defer wipe(kr1[:])
	defer wipe(kr2[:])

	ctb := make([]byte, ps.CiphertextSize)
	if err := ps.pkeEncrypt(ctb, pk.bytes, mh[:], kr2[:]); err != nil {
		return nil, nil, err
	}

	ss := make([]byte, SharedSecretSize)
	copy(ss, kr1[:])
	return &Ciphertext{ps: ps, bytes: ctb}, ss, nil
}

// Decapsulate recovers the shared secret from ct. A ciphertext that was not
// honestly produced against this key yields a pseudorandom secret derived
// from the rejection seed; the caller sees no error and no timing signal
// either way.
func (sk *SecretKey) Decapsulate(ct *Ciphertext) ([]byte, error) {
	ps := sk.ps
	if ct.ps != ps {
		return nil, fmt.Errorf("decapsulating %s ciphertext with %s key: %w",
			ct.ps.Name, ps.Name, ErrInvalidCiphertext)
	}
	if len(ct.bytes) != ps.CiphertextSize {
		return nil, fmt.Errorf("%s ciphertext: got %d bytes, want %d: %w",
			ps.Name, len(ct.bytes), ps.CiphertextSize, ErrInvalidCiphertext)
	}

	skpke := sk.bytes[:ps.polyVecBytes()]
	pkb := sk.bytes[ps.polyVecBytes() : ps.polyVecBytes()+ps.PublicKeySize]
	hpk := sk.bytes[ps.polyVecBytes()+ps.PublicKeySize : ps.polyVecBytes()+ps.PublicKeySize+SymBytes]
	z := sk.bytes[ps.SecretKeySize-SymBytes:]

	var m [SymBytes]byte
	defer wipe(m[:])
	ps.pkeDecrypt(m[:], skpke, ct.bytes)

	kr1, kr2 := hashG(m[:], hpk)
	defer wipe(kr1[:])
	defer wipe(kr2[:])

	cmp := make([]byte, ps.CiphertextSize)
	if err := ps.pkeEncrypt(cmp, pkb, m[:], kr2[:]); err != nil {
		return nil, err
	}

	// Re-encryption check. The comparison and the secret selection are both
	// constant-time; an attacker probing with forged ciphertexts learns
	// nothing about which branch was taken.
	ok := subtle.ConstantTimeCompare(cmp, ct.bytes)

	reject := make([]byte, SharedSecretSize)
	kdf(reject, z, ct.bytes)

	ss := make([]byte, SharedSecretSize)
	copy(ss, reject)
	subtle.ConstantTimeCopy(ok, ss, kr1[:])
	wipe(reject)
	return ss, nil
}
