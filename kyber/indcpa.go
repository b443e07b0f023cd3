package kyber

// The IND-CPA public-key encryption layer underneath the KEM. Keys and
// ciphertexts at this level are raw byte slices; the exported types and the
// Fujisaki-Okamoto transform live in kem.go.
//
// The public key stores the vector t = A*s + e in the NTT domain followed
// by the matrix seed rho. The PKE secret key is the packed NTT-domain
// secret vector s.

// pkeKeyPair derives a PKE keypair deterministically from the 32-byte seed
// d and writes the packed keys into pk and sk.
func (ps *ParameterSet) pkeKeyPair(pk, sk, d []byte) error {
	rho, sigma := hashG(d)

	a := ps.expandMatrix(rho[:], false)

	s := ps.newPolyVec()
	e := ps.newPolyVec()
	defer s.wipe()
	defer e.wipe()
	nonce := byte(0)
	for i := 0; i < ps.K; i++ {
		if err := s[i].getNoise(sigma[:], nonce, ps.Eta1); err != nil {
			return err
		}
		nonce++
	}
	for i := 0; i < ps.K; i++ {
		if err := e[i].getNoise(sigma[:], nonce, ps.Eta1); err != nil {
			return err
		}
		nonce++
	}
	wipe(sigma[:])

	s.ntt()
	s.reduce()
	e.ntt()

	t := ps.newPolyVec()
	for i := 0; i < ps.K; i++ {
		innerProduct(&t[i], a[i], s)
		t[i].toMont()
	}
	t.add(t, e)
	t.reduce()

	packVec(sk, s)
	packVec(pk, t)
	copy(pk[ps.polyVecBytes():], rho[:])
	return nil
}

// pkeEncrypt encrypts the 32-byte msg under pk with the 32-byte coins and
// writes the compressed ciphertext into ct. Encryption is deterministic in
// (pk, msg, coins); decapsulation relies on this to re-encrypt and compare.
func (ps *ParameterSet) pkeEncrypt(ct, pk, msg, coins []byte) error {
	t := ps.newPolyVec()
	unpackVec(t, pk)
	rho := pk[ps.polyVecBytes():]

	at := ps.expandMatrix(rho, true)

	r := ps.newPolyVec()
	e1 := ps.newPolyVec()
	var e2, mp, v Poly
	defer r.wipe()
	defer e1.wipe()
	defer e2.wipe()
	defer mp.wipe()
	defer v.wipe()
	nonce := byte(0)
	for i := 0; i < ps.K; i++ {
		if err := r[i].getNoise(coins, nonce, ps.Eta1); err != nil {
			return err
		}
		nonce++
	}
	for i := 0; i < ps.K; i++ {
		if err := e1[i].getNoise(coins, nonce, ps.Eta2); err != nil {
			return err
		}
		nonce++
	}
	if err := e2.getNoise(coins, nonce, ps.Eta2); err != nil {
		return err
	}

	r.ntt()
	r.reduce()

	u := ps.newPolyVec()
	for i := 0; i < ps.K; i++ {
		innerProduct(&u[i], at[i], r)
	}
	innerProduct(&v, t, r)

	u.invNTT()
	v.invNTT()

	u.add(u, e1)
	u.reduce()

	mp.fromMsg(msg)
	v.add(&v, &e2)
	v.add(&v, &mp)
	v.reduce()

	compressVec(ct[:ps.polyVecCompressedBytes()], u, uint(ps.DU))
	compressPoly(ct[ps.polyVecCompressedBytes():], &v, uint(ps.DV))
	return nil
}

// pkeDecrypt recovers the 32-byte message from ct using the packed secret
// vector sk. It cannot fail: any same-length byte string decodes to some
// message.
func (ps *ParameterSet) pkeDecrypt(msg, sk, ct []byte) {
	u := ps.newPolyVec()
	var v, mp Poly
	decompressVec(u, ct[:ps.polyVecCompressedBytes()], uint(ps.DU))
	decompressPoly(&v, ct[ps.polyVecCompressedBytes():], uint(ps.DV))

	s := ps.newPolyVec()
	defer s.wipe()
	defer mp.wipe()
	unpackVec(s, sk)

	u.ntt()
	innerProduct(&mp, s, u)
	mp.invNTT()

	mp.sub(&v, &mp)
	mp.reduce()
	mp.toMsg(msg)
}
