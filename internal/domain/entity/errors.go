package entity

import "fmt"

// Validation reason codes carried by domain errors so the transport
// layer can expose which rule failed without re-parsing messages.
const (
	ReasonRequired   = "required"
	ReasonFormat     = "format"
	ReasonTooLong    = "too-long"
	ReasonTooShort   = "too-short"
	ReasonComplexity = "complexity"
	ReasonBadFormat  = "bad-format"
)

// InvalidEmailError is returned when an Email value object cannot be
// constructed from the given string.
type InvalidEmailError struct {
	Reason string
}

func (e *InvalidEmailError) Error() string {
	switch e.Reason {
	case ReasonRequired:
		return "email is required"
	case ReasonTooLong:
		return "email is too long"
	default:
		return "email format is invalid"
	}
}

// InvalidPasswordError is returned for plaintext candidates that fail
// the password policy.
type InvalidPasswordError struct {
	Reason string
}

func (e *InvalidPasswordError) Error() string {
	switch e.Reason {
	case ReasonRequired:
		return "password is required"
	case ReasonTooShort:
		return fmt.Sprintf("password must be at least %d characters long", passwordMinLength)
	case ReasonTooLong:
		return fmt.Sprintf("password must not exceed %d characters", passwordMaxLength)
	default:
		return "password must contain at least one lowercase letter, one uppercase letter, one number and one special character"
	}
}

// InvalidUserIDError is returned when a string is not a valid user
// identifier in the store's native ObjectID format.
type InvalidUserIDError struct {
	Reason string
}

func (e *InvalidUserIDError) Error() string {
	if e.Reason == ReasonRequired {
		return "user id is required"
	}
	return "user id must be a valid object id"
}

// UserAlreadyExistsError is returned when registration collides with an
// existing account.
type UserAlreadyExistsError struct {
	Email string
}

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("user with email %s already exists", e.Email)
}

// UserNotFoundError is returned by strict lookups for an id with no
// backing record.
type UserNotFoundError struct {
	ID string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user with id %s not found", e.ID)
}
