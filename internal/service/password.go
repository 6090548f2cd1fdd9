package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// initialPasswordAlphabet avoids ambiguous characters so a provisioned
// password survives being read over the phone or copied from a terminal.
const initialPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const initialPasswordLength = 16

// HashPassword bcrypt-hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// generateInitialPassword returns a random per-account password for newly
// provisioned users. Each account gets its own secret; it is returned once
// from the create call and never stored in the clear.
func generateInitialPassword() (string, error) {
	buf := make([]byte, initialPasswordLength)
	max := big.NewInt(int64(len(initialPasswordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		buf[i] = initialPasswordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
