package identity

import (
	"regexp"
	"strings"

	"github.com/farmstore/backend/internal/domain/shared"
)

var nonDigits = regexp.MustCompile(`\D`)

// User is a store account. Customers sign in with a phone number; staff
// accounts additionally carry the admin flag that gates the back office.
type User struct {
	shared.BaseEntity
	Phone        string // normalized, unique
	Username     string
	PasswordHash string
	IsAdmin      bool
}

// NewUser creates a user with a normalized phone number.
func NewUser(phone, username, passwordHash string) (*User, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 64 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Username must be between 3 and 64 characters")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password hash is required")
	}
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Phone:        normalized,
		Username:     username,
		PasswordHash: passwordHash,
	}, nil
}

// NormalizePhone canonicalizes Russian phone numbers: all non-digits are
// stripped, a leading 8 on an 11-digit number becomes 7, and the result is
// stored as +7XXXXXXXXXX. "8 (900) 123-45-67" and "+7 900 123 45 67" map to
// the same account.
func NormalizePhone(raw string) (string, error) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) == 11 && strings.HasPrefix(digits, "8") {
		digits = "7" + digits[1:]
	}
	if len(digits) == 10 {
		digits = "7" + digits
	}
	if len(digits) != 11 || !strings.HasPrefix(digits, "7") {
		return "", shared.NewDomainError("INVALID_INPUT", "Phone number must be a valid Russian number")
	}
	return "+" + digits, nil
}
