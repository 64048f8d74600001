package crypto

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "pw1" || hash == "" {
		t.Fatalf("hash must not be empty or the plaintext, got %q", hash)
	}
	if !CheckPasswordHash(hash, "pw1") {
		t.Error("correct password did not verify")
	}
	if CheckPasswordHash(hash, "pw2") {
		t.Error("wrong password verified")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("same input")
	if err != nil {
		t.Fatal(err)
	}
	second, err := HashPassword("same input")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ (fresh salt per call)")
	}
}

func TestCheckMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"truncated", "$2a$12$short"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if CheckPasswordHash(tc.hash, "pw1") {
				t.Errorf("malformed hash %q verified", tc.hash)
			}
		})
	}
}

func TestHashPrefix(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(hash, "$2a$12$") {
		t.Errorf("expected cost-12 bcrypt hash, got %q", hash)
	}
}
