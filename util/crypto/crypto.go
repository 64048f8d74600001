// Package crypto provides password hashing and verification for stored credentials.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor for stored password hashes.
const bcryptCost = 12

// HashPassword generates a salted bcrypt hash of the given password.
// Each call produces a different hash for the same input.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}

// CheckPasswordHash verifies the given password against a stored bcrypt hash.
// A malformed hash counts as a mismatch, not a fault.
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
