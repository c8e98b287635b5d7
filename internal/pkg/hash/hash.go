// Package hash provides password hashing behind a small interface so the
// algorithm can be swapped or faked in tests.
package hash

// Hash hashes and verifies secrets.
type Hash interface {
	// Hash hashes plaintext and returns the encoded digest.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
