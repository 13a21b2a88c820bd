package entity

import "regexp"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const emailMaxLength = 255

// Email is a self-validating value object around an email address.
// Instances are immutable and compare by value.
type Email struct {
	value string
}

// NewEmail validates and wraps an email address.
func NewEmail(raw string) (Email, error) {
	if raw == "" {
		return Email{}, &InvalidEmailError{Reason: ReasonRequired}
	}
	if !emailRegex.MatchString(raw) {
		return Email{}, &InvalidEmailError{Reason: ReasonFormat}
	}
	if len(raw) > emailMaxLength {
		return Email{}, &InvalidEmailError{Reason: ReasonTooLong}
	}
	return Email{value: raw}, nil
}

func (e Email) Value() string { return e.value }

func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }
