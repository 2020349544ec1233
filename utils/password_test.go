package utils

import "testing"

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "secret1") {
		t.Error("correct password must verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("wrong password must not verify")
	}
}
