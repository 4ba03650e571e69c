// Package security computes and compares password digests.
//
// The digest is a single-round SHA-256 hash, which is deterministic
// and unsalted. That is adequate for a demonstration store but not for
// production use; a salted, iterated password-hashing function can be
// substituted here without changing the register/authenticate contract.
package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Digest returns the lowercase hexadecimal SHA-256 digest of plain.
func Digest(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// Compare reports whether digest matches the digest of plain. The
// comparison runs in constant time.
func Compare(digest, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(digest), []byte(Digest(plain))) == 1
}
