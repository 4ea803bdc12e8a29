package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of plaintext. The transform is
// deliberately unsalted and deterministic: stored digests are compared by
// recomputing the digest of a login attempt.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether plaintext hashes to digest.
func VerifyPassword(plaintext, digest string) bool {
	computed := HashPassword(plaintext)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
