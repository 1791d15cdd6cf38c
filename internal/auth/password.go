package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost mirrors the cost the rest of the platform was provisioned
// with; existing hashes in the user store were generated at 10.
const bcryptCost = 10

// HashPassword transforms a plaintext password into a salted bcrypt hash.
// The plaintext must never be stored or logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the candidate password matches the stored hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
