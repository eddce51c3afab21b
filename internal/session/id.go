package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// idSize is the entropy of a session ID in bytes. 256 bits keeps the
// ID itself the only secret a session cookie carries.
const idSize = 32

// GenerateID generates a cryptographically secure session ID.
func GenerateID() (string, error) {
	b := make([]byte, idSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
