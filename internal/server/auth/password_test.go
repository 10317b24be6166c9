package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ, got %q twice", h1)
	}
	if h1 == "secret1" || h2 == "secret1" {
		t.Fatalf("digest must not contain the plaintext")
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword("correct horse", digest) {
		t.Fatalf("expected match for the original password")
	}
	if CheckPassword("battery staple", digest) {
		t.Fatalf("expected mismatch for a different password")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must never verify")
	}
	if CheckPassword("anything", "") {
		t.Fatalf("empty digest must never verify")
	}
}
