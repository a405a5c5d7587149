// Package password implements the fixed-salt keyed password hash used for
// employee credentials. The salt is deployment-wide configuration, not
// per-user; hashes are stored hex-encoded.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations = 4096
	keyLength  = 32
)

// Hash derives the stored hash for a password under the configured salt
func Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return hex.EncodeToString(key)
}

// Verify reports whether the password hashes to the stored value.
// Comparison is constant-time.
func Verify(password, salt, storedHash string) bool {
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
