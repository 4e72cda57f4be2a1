package auth

import (
	"regexp"
	"strings"
)

// Deliberately loose: non-whitespace local part, @, a domain with a dot.
// Accepting the odd malformed address beats rejecting a real one; full
// RFC 5322 conformance is not a goal.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// NormalizeEmail lowercases and trims so lookups and uniqueness are
// case-insensitive. Applied before every comparison or write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail checks the structural email pattern after trimming.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// IsStrongPassword requires length >= 8 with at least one uppercase letter,
// one lowercase letter and one digit. Symbols are allowed but not required;
// the user-facing message still uses the historical "alpha numeric" wording.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return upper && lower && digit
}
