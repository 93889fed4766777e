// Package account holds the credential domain: user records, password
// strength rules and the one-way hash.
//
// Hashing is unsalted SHA-256 so that user files written by earlier versions
// of the dashboard keep authenticating. Known weakness; a migration to a
// salted KDF would invalidate every stored credential.
package account

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode"
)

// User is one registered credential holder. PasswordHash never leaves the
// service layer.
type User struct {
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
	IsAdmin      bool
}

// Info is the externally visible view of a user, without the hash.
type Info struct {
	Username  string
	Email     string
	CreatedAt time.Time
	LastLogin *time.Time
	IsAdmin   bool
}

func (u User) Info() Info {
	return Info{
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		IsAdmin:   u.IsAdmin,
	}
}

// HashPassword returns the hex SHA-256 digest of the password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

const passwordSymbols = "!@#$%^&*()_+-=[]{};:'\",.<>?/\\|`~"

// ValidatePassword checks the five strength rules. All rules are evaluated;
// the failures are joined into one message so the user sees everything that
// is wrong at once.
func ValidatePassword(password string) error {
	var failures []string

	if len(password) < 8 {
		failures = append(failures, "at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(passwordSymbols, r) {
			hasSymbol = true
		}
	}

	if !hasUpper {
		failures = append(failures, "at least 1 uppercase letter (A-Z)")
	}
	if !hasLower {
		failures = append(failures, "at least 1 lowercase letter (a-z)")
	}
	if !hasDigit {
		failures = append(failures, "at least 1 digit (0-9)")
	}
	if !hasSymbol {
		failures = append(failures, "at least 1 special character (!@#$%^&*)")
	}

	if len(failures) > 0 {
		return &WeakPasswordError{Failures: failures}
	}

	return nil
}

// WeakPasswordError lists every strength rule the candidate password missed.
type WeakPasswordError struct {
	Failures []string
}

func (e *WeakPasswordError) Error() string {
	return "password must have: " + strings.Join(e.Failures, ", ")
}

// ValidateEmail applies a deliberately loose check: the address must contain
// both "@" and ".". Mail delivery is out of scope, so anything stricter only
// rejects working addresses.
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
