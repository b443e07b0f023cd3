package keys

import (
	"encoding/base64"
	"encoding/json"
	"os"
)

// PrivateKey represents a KEM decapsulation key persisted to JSON. The key
// material is stored base64-encoded; the file is written with owner-only
// permissions.
type PrivateKey struct {
	Version string `json:"version"`
	Set     string `json:"set"`
	Bytes   string `json:"bytes"`
	SeedHex string `json:"seed,omitempty"`
}

// NewPrivateKey wraps raw secret key bytes for persistence.
func NewPrivateKey(set string, raw []byte) *PrivateKey {
	return &PrivateKey{
		Version: "kyber-private-v1",
		Set:     set,
		Bytes:   base64.StdEncoding.EncodeToString(raw),
	}
}

// Raw decodes the key material.
func (sk *PrivateKey) Raw() ([]byte, error) {
	return base64.StdEncoding.DecodeString(sk.Bytes)
}

// SavePrivate writes the private key to ./kem_keys/private.json.
func SavePrivate(sk *PrivateKey) error {
	if sk == nil {
		return nil
	}
	if err := os.MkdirAll("kem_keys", 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile("kem_keys/private.json", os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sk)
}

// LoadPrivate reads the private key from ./kem_keys/private.json.
func LoadPrivate() (*PrivateKey, error) {
	data, err := os.ReadFile("kem_keys/private.json")
	if err != nil {
		return nil, err
	}
	var sk PrivateKey
	if err := json.Unmarshal(data, &sk); err != nil {
		return nil, err
	}
	return &sk, nil
}
