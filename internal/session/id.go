package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// idEntropyBytes sizes session identifiers at 256 bits, enough that
// guessing one is not a practical attack.
const idEntropyBytes = 32

// GenerateID returns a new cryptographically random session
// identifier, base64url-encoded without padding so it is cookie-safe.
func GenerateID() (string, error) {
	b := make([]byte, idEntropyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
