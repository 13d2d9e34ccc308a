package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateOpaqueToken returns a random hex string for refresh,
// confirmation and reset tokens.
func GenerateOpaqueToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
