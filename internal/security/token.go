package security

import (
	"crypto/rand"
	"math/big"
)

// SessionTokenLength is the number of characters in an issued session
// token.
const SessionTokenLength = 60

// tokenAlphabet holds the characters used for opaque session tokens.
const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateSessionToken returns a new cryptographically random opaque
// token of SessionTokenLength alphanumeric characters.
func GenerateSessionToken() (string, error) {
	return randomString(SessionTokenLength)
}

// randomString builds a random string of length n from tokenAlphabet
// using crypto/rand.
func randomString(n int) (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = tokenAlphabet[idx.Int64()]
	}
	return string(out), nil
}
