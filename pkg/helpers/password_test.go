package helpers

import (
	"strings"
	"testing"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher()

	digest, err := h.Hash("Password1!")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "Password1!" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("digest %q is not a bcrypt hash", digest)
	}

	if !h.Compare("Password1!", digest) {
		t.Error("Compare should accept the original plaintext")
	}
	if h.Compare("Wrong1!pass", digest) {
		t.Error("Compare should reject a different plaintext")
	}
	if h.Compare("Password1!", "not-a-digest") {
		t.Error("Compare should reject a malformed digest")
	}
}

func TestBcryptHashesAreSalted(t *testing.T) {
	h := NewBcryptHasher()
	a, err := h.Hash("Password1!")
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.Hash("Password1!")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("two hashes of the same input should differ")
	}
}
