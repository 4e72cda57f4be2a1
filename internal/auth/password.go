package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor. Fixed at build time, never
// request-controlled.
const PasswordCost = 12

// HashPassword produces a salted one-way hash of the raw password. Two calls
// with the same input yield different hashes because of the per-call salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash. The
// comparison is constant-time and the result never says why it failed.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
