// Package kyber implements the Kyber key-encapsulation mechanism over the
// ring Z_q[X]/(X^256+1) with q = 3329, at the three standard security levels
// Kyber512, Kyber768 and Kyber1024.
//
// The API is organised around ParameterSet values: pick a set, call
// GenerateKeyPair, then Encapsulate against the public key and Decapsulate
// with the secret key. Decapsulation never fails on a well-sized ciphertext;
// a forged ciphertext yields a pseudorandom secret derived from the
// rejection seed stored in the secret key, with no observable timing or
// error difference.
//
// All arithmetic on secret-derived data is branch-free, and intermediate
// buffers holding seeds, noise or decrypted messages are zeroized before
// the functions return.
//
// The operations are pure CPU-bound functions with no shared mutable state;
// they may run concurrently as long as each call gets its own randomness
// source.
package kyber
