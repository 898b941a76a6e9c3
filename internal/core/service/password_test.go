package service

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !VerifyPassword("s3cret-pass", hash) {
		t.Fatalf("expected stored hash to verify against original password")
	}
	if VerifyPassword("other-pass", hash) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash 1: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("hash 2: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password should differ (salt)")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$corrupt"} {
		if VerifyPassword("anything", hash) {
			t.Fatalf("malformed hash %q verified", hash)
		}
	}
}
