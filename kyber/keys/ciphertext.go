package keys

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"time"
)

// Ciphertext holds an encapsulation bundle persisted to JSON. The shared
// secret itself is never written; only the public ciphertext and enough
// metadata to decapsulate it later.
type Ciphertext struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Set       string `json:"set"`
	Bytes     string `json:"bytes"`
}

// NewCiphertext creates a ciphertext bundle with timestamp.
func NewCiphertext(set string, raw []byte) *Ciphertext {
	return &Ciphertext{
		Version:   "kyber-ciphertext-v1",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Set:       set,
		Bytes:     base64.StdEncoding.EncodeToString(raw),
	}
}

// Raw decodes the ciphertext bytes.
func (ct *Ciphertext) Raw() ([]byte, error) {
	return base64.StdEncoding.DecodeString(ct.Bytes)
}

// SaveCiphertext writes the bundle to path.
func SaveCiphertext(path string, ct *Ciphertext) error {
	if ct == nil {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(ct)
}

// LoadCiphertext reads a bundle from path.
func LoadCiphertext(path string) (*Ciphertext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ct Ciphertext
	if err := json.Unmarshal(data, &ct); err != nil {
		return nil, err
	}
	return &ct, nil
}
