package entity

import (
	"strings"
	"unicode"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 128

	passwordSpecialSet = `!@#$%^&*(),.?":{}|<>`
)

// Password wraps either a plaintext candidate or a stored digest.
// Complexity rules apply to plaintext only; digests are wrapped via
// PasswordFromHash and never re-checked.
type Password struct {
	value string
}

// NewPassword validates a plaintext candidate and wraps it.
func NewPassword(plain string) (Password, error) {
	if err := ValidatePassword(plain); err != nil {
		return Password{}, err
	}
	return Password{value: plain}, nil
}

// PasswordFromHash wraps a stored digest without plaintext validation.
func PasswordFromHash(digest string) Password {
	return Password{value: digest}
}

// ValidatePassword checks a plaintext candidate against the password
// policy without constructing a Password. Used before hashing.
func ValidatePassword(plain string) error {
	if plain == "" {
		return &InvalidPasswordError{Reason: ReasonRequired}
	}
	if len(plain) < passwordMinLength {
		return &InvalidPasswordError{Reason: ReasonTooShort}
	}
	if len(plain) > passwordMaxLength {
		return &InvalidPasswordError{Reason: ReasonTooLong}
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range plain {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialSet, r):
			hasSpecial = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return &InvalidPasswordError{Reason: ReasonComplexity}
	}
	return nil
}

func (p Password) Value() string { return p.value }

func (p Password) Equals(other Password) bool { return p.value == other.value }
