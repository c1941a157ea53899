package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	tokenEntropy = 16 // random bytes fed to the digest
	tokenDigest  = 16 // digest size, 32 hex characters
)

// GenerateToken returns a new session token: 16 random bytes hashed with BLAKE2b
// to 128 bits and rendered as 32 uppercase hex characters.
func GenerateToken() (string, error) {
	b := make([]byte, tokenEntropy)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}

	h, err := blake2b.New(tokenDigest, nil)
	if err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	h.Write(b)

	return strings.ToUpper(hex.EncodeToString(h.Sum(nil))), nil
}
