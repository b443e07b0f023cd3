package keys

import (
	"encoding/base64"
	"encoding/json"
	"os"
)

// PublicKey represents a KEM public key persisted to JSON.
type PublicKey struct {
	Version string `json:"version"`
	Set     string `json:"set"`
	Bytes   string `json:"bytes"`
}

// NewPublicKey wraps raw public key bytes for persistence.
func NewPublicKey(set string, raw []byte) *PublicKey {
	return &PublicKey{
		Version: "kyber-public-v1",
		Set:     set,
		Bytes:   base64.StdEncoding.EncodeToString(raw),
	}
}

// Raw decodes the key material.
func (pk *PublicKey) Raw() ([]byte, error) {
	return base64.StdEncoding.DecodeString(pk.Bytes)
}

// SavePublic writes the public key to ./kem_keys/public.json.
func SavePublic(pk *PublicKey) error {
	if pk == nil {
		return nil
	}
	if err := os.MkdirAll("kem_keys", 0o755); err != nil {
		return err
	}
	f, err := os.Create("kem_keys/public.json")
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(pk)
}

// LoadPublic reads the public key from ./kem_keys/public.json.
func LoadPublic() (*PublicKey, error) {
	data, err := os.ReadFile("kem_keys/public.json")
	if err != nil {
		return nil, err
	}
	var pk PublicKey
	if err := json.Unmarshal(data, &pk); err != nil {
		return nil, err
	}
	return &pk, nil
}
