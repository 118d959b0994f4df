package security

import (
	"strings"
	"testing"
)

func TestGenerateSessionTokenLengthAndAlphabet(t *testing.T) {
	t.Parallel()

	token, errGen := GenerateSessionToken()
	if errGen != nil {
		t.Fatalf("generate token: %v", errGen)
	}
	if len(token) != SessionTokenLength {
		t.Fatalf("token length = %d, want %d", len(token), SessionTokenLength)
	}
	for _, r := range token {
		if !strings.ContainsRune(tokenAlphabet, r) {
			t.Fatalf("token contains unexpected character %q", r)
		}
	}
}

func TestGenerateSessionTokenUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		token, errGen := GenerateSessionToken()
		if errGen != nil {
			t.Fatalf("generate token: %v", errGen)
		}
		if _, ok := seen[token]; ok {
			t.Fatalf("duplicate token generated")
		}
		seen[token] = struct{}{}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, errHash := HashPassword("admin123")
	if errHash != nil {
		t.Fatalf("hash password: %v", errHash)
	}
	if !CheckPassword(hash, "admin123") {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword(hash, "admin124") {
		t.Fatalf("wrong password accepted")
	}
}
