package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

const apiKeyPrefix = "agx_"

// GeneratedKey is the result of creating a new API key. Plaintext is
// returned exactly once; only the hash is persisted.
type GeneratedKey struct {
	Plaintext string
	Hash      string
	Prefix    string
}

// GenerateAPIKey creates a new random API key.
func GenerateAPIKey() (GeneratedKey, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return GeneratedKey{}, fmt.Errorf("generate api key: %w", err)
	}
	plaintext := apiKeyPrefix + hex.EncodeToString(raw)
	return GeneratedKey{
		Plaintext: plaintext,
		Hash:      HashAPIKey(plaintext),
		Prefix:    plaintext[:len(apiKeyPrefix)+8],
	}, nil
}

// IsAPIKey reports whether a bearer credential looks like an API key
// rather than a JWT.
func IsAPIKey(token string) bool {
	return len(token) > len(apiKeyPrefix) && token[:len(apiKeyPrefix)] == apiKeyPrefix
}

// HashAPIKey returns the hex SHA-256 of a key. Lookups by hash are
// effectively constant-time comparisons because the hash is the unique key.
func HashAPIKey(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// SecureCompare reports whether two strings are equal in constant time.
// Used for the worker shared secret where no hash lookup is involved.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
