package uid

import "github.com/google/uuid"

// UUID generates RFC 4122 version 4 identifiers.
type UUID struct{}

// NewUUID constructs a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new random UUID string.
func (*UUID) Generate() string {
	return uuid.NewString()
}
