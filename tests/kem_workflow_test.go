package tests

import (
	"bytes"
	"crypto/rand"
	"os"
	"testing"

	kyber "ML-KEM/kyber"
	"ML-KEM/kyber/keys"
)

// encapFixture generates a keypair and one honest encapsulation.
func encapFixture(t *testing.T, ps *kyber.ParameterSet) (*kyber.SecretKey, *kyber.Ciphertext, []byte) {
	t.Helper()
	pk, sk, err := ps.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	ct, ss, err := pk.Encapsulate(rand.Reader)
	if err != nil {
		t.Fatalf("encapsulate: %v", err)
	}
	return sk, ct, ss
}

// TestKEMTamperSweep flips every byte of a Kyber768 ciphertext in turn and
// requires decapsulation to succeed with a secret that differs from the
// honest one at every position. This exercises the re-encryption check over
// both ciphertext components, not just a sampled handful of bytes.
func TestKEMTamperSweep(t *testing.T) {
	ps := kyber.Kyber768
	sk, ct, ss := encapFixture(t, ps)
	raw := ct.Bytes()
	for pos := 0; pos < len(raw); pos++ {
		mangled := append([]byte(nil), raw...)
		mangled[pos] ^= 0xff
		forged, err := ps.CiphertextFromBytes(mangled)
		if err != nil {
			t.Fatalf("pos %d: %v", pos, err)
		}
		got, err := sk.Decapsulate(forged)
		if err != nil {
			t.Fatalf("pos %d: decapsulate: %v", pos, err)
		}
		if bytes.Equal(got, ss) {
			t.Fatalf("pos %d: tampered ciphertext reproduced the shared secret", pos)
		}
	}
}

// TestKEMPersistenceRoundTrip drives the same path the CLI uses: keys and
// ciphertext serialized through the JSON bundles, reloaded, and
// decapsulated.
func TestKEMPersistenceRoundTrip(t *testing.T) {
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
	ps := kyber.Kyber512
	pk, sk, err := ps.GenerateKeyPair(rand.Reader)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	if err := keys.SavePublic(keys.NewPublicKey(ps.Name, pk.Bytes())); err != nil {
		t.Fatalf("save public: %v", err)
	}
	if err := keys.SavePrivate(keys.NewPrivateKey(ps.Name, sk.Bytes())); err != nil {
		t.Fatalf("save private: %v", err)
	}

	storedPK, err := keys.LoadPublic()
	if err != nil {
		t.Fatalf("load public: %v", err)
	}
	rawPK, err := storedPK.Raw()
	if err != nil {
		t.Fatalf("decode public: %v", err)
	}
	pk2, err := kyber.ByName(storedPK.Set).PublicKeyFromBytes(rawPK)
	if err != nil {
		t.Fatalf("parse public: %v", err)
	}
	ct, ssA, err := pk2.Encapsulate(rand.Reader)
	if err != nil {
		t.Fatalf("encapsulate: %v", err)
	}
	if err := keys.SaveCiphertext("kem_keys/ciphertext.json", keys.NewCiphertext(ps.Name, ct.Bytes())); err != nil {
		t.Fatalf("save ciphertext: %v", err)
	}

	storedSK, err := keys.LoadPrivate()
	if err != nil {
		t.Fatalf("load private: %v", err)
	}
	rawSK, err := storedSK.Raw()
	if err != nil {
		t.Fatalf("decode private: %v", err)
	}
	sk2, err := kyber.ByName(storedSK.Set).SecretKeyFromBytes(rawSK)
	if err != nil {
		t.Fatalf("parse private: %v", err)
	}
	bundle, err := keys.LoadCiphertext("kem_keys/ciphertext.json")
	if err != nil {
		t.Fatalf("load ciphertext: %v", err)
	}
	rawCT, err := bundle.Raw()
	if err != nil {
		t.Fatalf("decode ciphertext: %v", err)
	}
	ct2, err := kyber.ByName(bundle.Set).CiphertextFromBytes(rawCT)
	if err != nil {
		t.Fatalf("parse ciphertext: %v", err)
	}
	ssB, err := sk2.Decapsulate(ct2)
	if err != nil {
		t.Fatalf("decapsulate: %v", err)
	}
	if !bytes.Equal(ssA, ssB) {
		t.Fatal("persisted keys do not reproduce the shared secret")
	}
}

// TestKEMScenarioKyber768 walks one fixed-seed Kyber768 exchange end to end:
// sizes, agreement, and the behavior after corrupting the first ciphertext
// byte.
func TestKEMScenarioKyber768(t *testing.T) {
	ps := kyber.Kyber768
	seed := make([]byte, 32)
	seed[0] = 42
	rng, err := kyber.NewSeededReader(seed)
	if err != nil {
		t.Fatalf("rng: %v", err)
	}
	pk, sk, err := ps.GenerateKeyPair(rng)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	if got := len(pk.Bytes()); got != 1184 {
		t.Fatalf("public key is %d bytes, want 1184", got)
	}
	ct, ss1, err := pk.Encapsulate(rng)
	if err != nil {
		t.Fatalf("encapsulate: %v", err)
	}
	if got := len(ct.Bytes()); got != 1088 {
		t.Fatalf("ciphertext is %d bytes, want 1088", got)
	}
	ss2, err := sk.Decapsulate(ct)
	if err != nil {
		t.Fatalf("decapsulate: %v", err)
	}
	if !bytes.Equal(ss1, ss2) {
		t.Fatal("shared secrets disagree")
	}
	raw := ct.Bytes()
	raw[0] ^= 0xFF
	forged, err := ps.CiphertextFromBytes(raw)
	if err != nil {
		t.Fatalf("rebuild ciphertext: %v", err)
	}
	ss3, err := sk.Decapsulate(forged)
	if err != nil {
		t.Fatalf("decapsulate forged: %v", err)
	}
	if len(ss3) != 32 || bytes.Equal(ss3, ss1) {
		t.Fatal("corrupted ciphertext did not trigger implicit rejection")
	}
}

// TestKEMSeededEndToEnd reproduces an entire keygen/encap/decap run from one
// seed on every parameter set.
func TestKEMSeededEndToEnd(t *testing.T) {
	seed := []byte("end to end reproducibility seed.")
	for _, ps := range kyber.ParameterSets {
		run := func() ([]byte, []byte, []byte) {
			rng, err := kyber.NewSeededReader(seed)
			if err != nil {
				t.Fatalf("rng: %v", err)
			}
			pk, sk, err := ps.GenerateKeyPair(rng)
			if err != nil {
				t.Fatalf("keygen: %v", err)
			}
			ct, ss, err := pk.Encapsulate(rng)
			if err != nil {
				t.Fatalf("encapsulate: %v", err)
			}
			got, err := sk.Decapsulate(ct)
			if err != nil {
				t.Fatalf("decapsulate: %v", err)
			}
			if !bytes.Equal(ss, got) {
				t.Fatalf("%s: round trip failed", ps.Name)
			}
			return ct.Bytes(), ss, sk.Bytes()
		}
		ct1, ss1, sk1 := run()
		ct2, ss2, sk2 := run()
		if !bytes.Equal(ct1, ct2) || !bytes.Equal(ss1, ss2) || !bytes.Equal(sk1, sk2) {
			t.Fatalf("%s: seeded run not reproducible", ps.Name)
		}
	}
}
