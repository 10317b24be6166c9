// Package auth implements the credential primitives of the server:
// password hashing/verification, signed access tokens, and the ownership
// check applied before resource mutation.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest of plaintext. bcrypt embeds
// a fresh random salt in each digest, so hashing the same password twice
// yields different digests.
func HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether digest was produced from plaintext.
// The comparison time does not depend on where a mismatch occurs, and a
// malformed digest (e.g. corrupted storage) simply yields false.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
