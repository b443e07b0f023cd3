package kyber

// wipe overwrites b with zeros. Buffers holding seeds, noise or decrypted
// messages go through here once they are no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Zeroize overwrites a caller-held secret buffer, typically a shared secret
// that has been consumed. Best effort only: Go may have copied the bytes
// during garbage collection.
func Zeroize(b []byte) {
	wipe(b)
}
