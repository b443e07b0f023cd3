package kyber

import (
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// NewSeededReader returns a deterministic randomness source keyed by seed.
// Feeding the same seed to GenerateKeyPair or Encapsulate reproduces the
// same keys and ciphertexts, which is what test vectors and reproducible
// sweeps need. Never use it for production keys.
func NewSeededReader(seed []byte) (io.Reader, error) {
	prng, err := utils.NewKeyedPRNG(seed)
	if err != nil {
		return nil, fmt.Errorf("keyed prng: %w", err)
	}
	return prng, nil
}
