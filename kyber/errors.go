package kyber

import "errors"

// Errors returned at the deserialization and randomness boundaries. Size
// validation always happens before any arithmetic touches a buffer; a
// ciphertext of the right size but bogus content is NOT an error — it
// decapsulates to a pseudorandom shared secret (implicit rejection).
var (
	ErrInvalidKeySize    = errors.New("kyber: invalid key size")
	ErrInvalidCiphertext = errors.New("kyber: invalid ciphertext size")
	ErrRandomness        = errors.New("kyber: randomness source failure")
	ErrInternal          = errors.New("kyber: internal arithmetic error")
)
