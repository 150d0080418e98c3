package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}

	// Same input must not produce the same hash (random salt).
	hash2, err := HashPassword("hunter2", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password are identical")
	}
}

func TestNewSessionToken(t *testing.T) {
	a, err := NewSessionToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if len(a) != 64 {
		t.Fatalf("token length = %d, want 64", len(a))
	}
	b, err := NewSessionToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if a == b {
		t.Error("two tokens are identical")
	}
}
