package password

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
)

// Hash hashes a credential using bcrypt
func Hash(credential string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(credential), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a credential with a stored hash
func Verify(credential, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential))
	return err == nil
}

// HashToken hashes a token using SHA256 (for refresh tokens)
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
