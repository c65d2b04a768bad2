// Package token issues the opaque bearer tokens that prove client identity.
// Tokens carry no structure; validity is a credential lookup.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// EntropyBytes is the number of random bytes per token. 16 bytes keeps the
// collision probability negligible without a uniqueness check.
const EntropyBytes = 16

// Issue generates a new opaque bearer token, hex encoded
func Issue() (string, error) {
	buf := make([]byte, EntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read token entropy: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
