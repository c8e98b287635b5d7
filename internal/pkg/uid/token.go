package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken generates opaque hex tokens, used for emailed password reset
// links.
type RandomToken struct {
	size int
}

// NewRandomToken constructs a generator producing tokens of size random bytes
// (hex encoded, so twice that many characters).
func NewRandomToken(size int) *RandomToken {
	if size <= 0 {
		size = 20
	}
	return &RandomToken{size: size}
}

// Generate returns a new random hex token.
func (t *RandomToken) Generate() string {
	b := make([]byte, t.size)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
