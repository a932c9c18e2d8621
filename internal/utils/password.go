package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash for storing a user credential. The hash
// embeds its own salt and cost, so nothing else needs to be persisted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the stored
// bcrypt hash. Callers treat a mismatch the same as an unknown account.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
